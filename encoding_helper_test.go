package boardrules

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateBoard(t *testing.T) {
	//
	// ⎢ O · · · X ⎥
	// ⎢ · O · X · ⎥ // this line is to break rotational symmetry
	// ⎢ · · · · · ⎥
	// ⎢ · · · · · ⎥
	// ⎢ X · · · O ⎥

	m, n := 5, 5
	board := []float32{
		-1, 0, 0, 0, 1,
		0, -1, 0, 1, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		1, 0, 0, 0, -1,
	}
	t.Logf("0:\n%v", board)

	rot1, err := RotateBoard(board, m, n)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("1:\n%v", rot1)
	expected := []float32{
		1, 0, 0, 0, -1,
		0, 1, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, -1, 0, 0, 0,
		-1, 0, 0, 0, 1,
	}
	if diff := cmp.Diff(expected, rot1); diff != "" {
		t.Errorf("Unexpected rotation (-want +got):\n%s", diff)
	}

	rot2, err := RotateBoard(rot1, m, n)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("2:\n%v", rot2)

	rot3, err := RotateBoard(rot2, m, n)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("3:\n%v", rot3)

	rot4, err := RotateBoard(rot3, m, n)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("4:\n%v", rot4)

	assert.Equal(t, board, rot4, "After 4 rotations the board should be the same")

	_, err = RotateBoard(board, 5, 4)
	assert.Error(t, err)
	_, err = RotateBoard(board[:4], 2, 2)
	assert.NoError(t, err)
	_, err = RotateBoard(board, 2, 2)
	assert.Error(t, err)
}

func TestRotations(t *testing.T) {
	ex := Example{
		Board: []float32{
			1, 0,
			0, 0,

			1, 1,
			1, 1,
		},
		Policy: []float32{0, 0.5, 0, 0, 0.5},
		Value:  1,
	}
	exs := Rotations(2)(ex)
	require.Len(t, exs, 4)
	assert.Equal(t, ex, exs[0])

	// the stone at the top left goes to the bottom left, and the policy's top right to the top left
	assert.Equal(t, []float32{0, 0, 1, 0, 1, 1, 1, 1}, exs[1].Board)
	assert.Equal(t, []float32{0.5, 0, 0, 0, 0.5}, exs[1].Policy)
	for _, e := range exs {
		assert.Equal(t, float32(1), e.Value)
		assert.Equal(t, float32(0.5), e.Policy[4], "the pass is not rotated")
	}
}

func TestPrepareExamples(t *testing.T) {
	exs := make([]Example, 3)
	for i := range exs {
		exs[i] = Example{
			Board:  make([]float32, 2*4),
			Policy: make([]float32, 5),
			Value:  float32(i),
		}
	}
	Xs, Policies, Values, err := PrepareExamples(exs, 2, 1337)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 2, 2}, []int(Xs.Shape()))
	assert.Equal(t, []int{3, 5}, []int(Policies.Shape()))
	assert.Equal(t, []int{3}, []int(Values.Shape()))
	assert.ElementsMatch(t, []float32{0, 1, 2}, Values.Data())

	_, _, _, err = PrepareExamples(nil, 2, 1337)
	assert.Error(t, err)

	exs[1].Policy = exs[1].Policy[:4]
	_, _, _, err = PrepareExamples(exs, 2, 1337)
	assert.Error(t, err)
}
