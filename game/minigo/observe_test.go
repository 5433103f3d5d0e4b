package minigo

import (
	"strings"
	"testing"

	"github.com/boardrules/boardrules/game"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	g := New(DefaultWidth)
	play(t, g, 12, 0)

	black, err := g.Observe(BlackP)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 5, 2}, []int(black.Shape()))

	at := func(x, y, plane int) bool {
		v, err := black.At(x, y, plane)
		require.NoError(t, err)
		return v.(bool)
	}
	assert.True(t, at(2, 2, 0), "own stone at 12")
	assert.False(t, at(2, 2, 1))
	assert.True(t, at(0, 0, 1), "opponent stone at 0")
	assert.False(t, at(0, 0, 0))
	assert.False(t, at(4, 4, 0))
	assert.False(t, at(4, 4, 1))

	// the planes swap for the other player
	white, err := g.Observe(WhiteP)
	require.NoError(t, err)
	bb := black.Data().([]bool)
	wb := white.Data().([]bool)
	for i := 0; i < 25; i++ {
		assert.Equal(t, bb[i*2], wb[i*2+1], "point %d", i)
		assert.Equal(t, bb[i*2+1], wb[i*2], "point %d", i)
	}

	for _, p := range []game.Player{game.Player(game.None), 7} {
		_, err := g.Observe(p)
		assert.Error(t, err, "player %v", p)
	}
}

func TestFeatures(t *testing.T) {
	g := New(3)
	play(t, g, 4)

	// White to move: own stones are positive
	expected := []float32{
		0, 0, 0,
		0, -1, 0,
		0, 0, 0,

		-1, -1, -1,
		-1, -1, -1,
		-1, -1, -1,
	}
	if diff := cmp.Diff(expected, g.Features()); diff != "" {
		t.Errorf("Unexpected features (-want +got):\n%s", diff)
	}

	play(t, g, 0)
	expected = []float32{
		-1, 0, 0,
		0, 1, 0,
		0, 0, 0,

		1, 1, 1,
		1, 1, 1,
		1, 1, 1,
	}
	if diff := cmp.Diff(expected, g.Features()); diff != "" {
		t.Errorf("Unexpected features (-want +got):\n%s", diff)
	}
}

func TestToDot(t *testing.T) {
	g := New(DefaultWidth)
	play(t, g, 12, 13, 0)

	dot, err := g.ToDot()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dot, "graph G {"), dot)
	assert.Contains(t, dot, "X0")
	assert.Contains(t, dot, "X1")
	assert.Contains(t, dot, "O0")
	assert.Contains(t, dot, "X0--O0")
	assert.NotContains(t, dot, "X1--O0")
}
