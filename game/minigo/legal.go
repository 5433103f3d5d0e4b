package minigo

import (
	"github.com/boardrules/boardrules/game"
)

// check returns the reason why the move may not be played, or nil if it may.
// m must be a placement on the board. check does not modify the board.
//
// The rules are exactly those that place enforces: a placement is suicide if, after it is made,
// its group would have no liberties and it would not have captured anything.
// That is the case when every neighbour is occupied, every friendly neighbouring group has p as its
// only liberty, and no opposing neighbouring group has p as its only liberty.
func (b *board) check(m game.PlayerMove, ko game.Single) error {
	p := m.Single
	c := game.Colour(m.Player)
	if !b.isEmpty(p) {
		return OccupiedPointError(m)
	}
	if p == ko {
		return KoViolationError(m)
	}

	me, op := b.of(c), b.of(c.Opponent())
	for _, q := range b.nbrs[p] {
		if b.isEmpty(q) {
			return nil
		}
		if id, ok := me.groupAt(q); ok {
			if me.libs[id].Count() > 1 {
				return nil
			}
			continue
		}
		if h := op.plane[q]; op.libs[h].Count() == 1 {
			return nil // captures
		}
	}
	return SuicideError(m)
}

// check checks that the move may be made in the current state of the game.
func (g *Game) check(m game.PlayerMove) error {
	if g.ended {
		return GameOverError(m)
	}
	if m.Player != g.ToMove() {
		return WrongPlayerError(m)
	}
	if m.Single.IsPass() {
		return nil
	}
	if !g.onBoard(m.Single) {
		return OutOfBoundsError(m)
	}
	return g.board.check(m, g.ko)
}

// IsLegal returns true if the player to move may play at p.
func (g *Game) IsLegal(p game.Single) bool {
	return g.check(game.PlayerMove{Player: g.ToMove(), Single: p}) == nil
}

// LegalActions returns a mask over all the actions. The last entry is the pass.
// Once the game has ended, no action is legal.
func (g *Game) LegalActions() []bool {
	retVal := make([]bool, g.ActionSpace())
	if g.ended {
		return retVal
	}
	for i := int32(0); i < g.size; i++ {
		retVal[i] = g.IsLegal(game.Single(i))
	}
	retVal[g.size] = true
	return retVal
}

// LegalMoves returns the legal placements of the player to move.
func (g *Game) LegalMoves() []game.Single {
	var retVal []game.Single
	for i, ok := range g.LegalActions()[:g.size] {
		if ok {
			retVal = append(retVal, game.Single(i))
		}
	}
	return retVal
}
