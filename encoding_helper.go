package boardrules

import (
	"math/rand"

	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// RotateBoard rotates a square board a quarter turn.
func RotateBoard(board []float32, m, n int) ([]float32, error) {
	if m != n {
		return nil, errors.Errorf("Cannot handle m %d, n %d. This function only takes square boards", m, n)
	}
	if len(board) != m*n {
		return nil, errors.Errorf("Expected a board of %d. Got %d", m*n, len(board))
	}
	copied := make([]float32, len(board))
	copy(copied, board)
	it := MakeIterator(copied, m, n)
	for i := 0; i < m/2; i++ {
		mi1 := m - i - 1
		for j := i; j < mi1; j++ {
			mj1 := m - j - 1
			tmp := it[i][j]
			// right to top
			it[i][j] = it[j][mi1]

			// bottom to right
			it[j][mi1] = it[mi1][mj1]

			// left to bottom
			it[mi1][mj1] = it[mj1][i]

			// tmp is left
			it[mj1][i] = tmp
		}
	}
	ReturnIterator(m, n, it)
	return copied, nil
}

// Rotations returns an augmenter that adds the three rotations of an example on a width x width board.
// Every plane of the board is rotated, and so is the policy. The pass stays where it is.
func Rotations(width int) Augmenter {
	size := width * width
	return func(ex Example) []Example {
		retVal := []Example{ex}
		cur := ex
		for r := 0; r < 3; r++ {
			next := Example{
				Board:  make([]float32, 0, len(cur.Board)),
				Policy: make([]float32, 0, len(cur.Policy)),
				Value:  cur.Value,
			}
			for start := 0; start+size <= len(cur.Board); start += size {
				plane, err := RotateBoard(cur.Board[start:start+size], width, width)
				if err != nil {
					panic(err) // unreachable: the planes are cut to size
				}
				next.Board = append(next.Board, plane...)
			}
			policy, err := RotateBoard(cur.Policy[:size], width, width)
			if err != nil {
				panic(err)
			}
			next.Policy = append(next.Policy, policy...)
			next.Policy = append(next.Policy, cur.Policy[size:]...)
			retVal = append(retVal, next)
			cur = next
		}
		return retVal
	}
}

// PrepareExamples shuffles the examples, and packs them into tensors of shape
// (len(examples), planes, width, width), (len(examples), action space) and (len(examples)).
func PrepareExamples(examples []Example, width int, seed int64) (Xs, Policies, Values *tensor.Dense, err error) {
	if len(examples) == 0 {
		return nil, nil, nil, errors.New("No examples to prepare")
	}
	shuffleExamples(examples, seed)

	size := width * width
	boardLen, policyLen := len(examples[0].Board), len(examples[0].Policy)
	if boardLen == 0 || boardLen%size != 0 {
		return nil, nil, nil, errors.Errorf("Expected boards made of planes of %d. Got %d", size, boardLen)
	}
	var XsBacking, PoliciesBacking, ValuesBacking []float32
	for i, ex := range examples {
		if len(ex.Board) != boardLen || len(ex.Policy) != policyLen {
			return nil, nil, nil, errors.Errorf("Example %d has a board of %d and a policy of %d. Expected %d and %d", i, len(ex.Board), len(ex.Policy), boardLen, policyLen)
		}
		XsBacking = append(XsBacking, ex.Board...)
		PoliciesBacking = append(PoliciesBacking, ex.Policy...)
		ValuesBacking = append(ValuesBacking, ex.Value)
	}

	n := len(examples)
	Xs = tensor.New(tensor.WithBacking(XsBacking), tensor.WithShape(n, boardLen/size, width, width))
	Policies = tensor.New(tensor.WithBacking(PoliciesBacking), tensor.WithShape(n, policyLen))
	Values = tensor.New(tensor.WithBacking(ValuesBacking), tensor.WithShape(n))
	return
}

func shuffleExamples(examples []Example, seed int64) {
	r := rand.New(rand.NewSource(seed))
	for i := range examples {
		j := r.Intn(i + 1)
		examples[i], examples[j] = examples[j], examples[i]
	}
}
