package minigo

import (
	"github.com/boardrules/boardrules/game"
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
	"gorgonia.org/vecf32"
)

// Observe returns the board as seen by the given player, as a (width, width, 2) tensor of bools.
// Plane 0 holds the player's stones, plane 1 the opponent's. Empty points are false in both planes.
func (g *Game) Observe(p game.Player) (*tensor.Dense, error) {
	if !IsValid(p) {
		return nil, errors.Errorf("Cannot observe the board as %v. Expected Black or White", p)
	}
	own := game.Colour(p)
	backing := make([]bool, int(g.size)*2)
	for i := int32(0); i < g.size; i++ {
		switch g.colourAt(game.Single(i)) {
		case None:
		case own:
			backing[i*2] = true
		default:
			backing[i*2+1] = true
		}
	}
	w := int(g.width)
	return tensor.New(tensor.WithShape(w, w, 2), tensor.WithBacking(backing)), nil
}

// EncodeTwoPlayerBoard encodes black as 1, white as -1 for each stone placed
func EncodeTwoPlayerBoard(a []game.Colour, prealloc []float32) []float32 {
	if len(prealloc) != len(a) {
		prealloc = make([]float32, len(a))
	}

	for i := range a {
		switch a[i] {
		case game.Black:
			prealloc[i] = 1
		case game.White:
			prealloc[i] = -1
		default:
			prealloc[i] = 0
		}
	}
	return prealloc
}

// Features encodes the game for a neural network. It returns two planes of width*width:
// the first holds the stones of the player to move as 1 and the opponent's as -1,
// the second is filled with 1 if Black is to move and -1 if White is.
func (g *Game) Features() []float32 {
	size := int(g.size)
	retVal := make([]float32, 2*size)
	EncodeTwoPlayerBoard(g.Board(), retVal[:size])

	encodedPlayer := float32(1)
	if g.ToMove() == WhiteP {
		vecf32.Scale(retVal[:size], -1)
		encodedPlayer = -1
	}
	for i := size; i < 2*size; i++ {
		retVal[i] = encodedPlayer
	}
	return retVal
}
