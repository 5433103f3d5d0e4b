package minigo

import (
	"github.com/boardrules/boardrules/game"
)

// place puts a stone of colour c at p, merging it with its friendly neighbours and capturing the
// opposing groups it takes the last liberty of. The move must have been checked first: place does
// not roll back.
//
// place returns the number of stones captured and the resulting ko point (noPoint if there is none).
func (b *board) place(c game.Colour, p game.Single) (captured int, ko game.Single) {
	me, op := b.of(c), b.of(c.Opponent())
	id := me.newGroup(p)
	b.zobrist.update(c, p)

	candidate := noPoint
	for _, q := range b.nbrs[p] {
		if g, ok := me.groupAt(q); ok {
			id = b.merge(c, id, g, p)
			continue
		}
		if h, ok := op.groupAt(q); ok {
			if dead := b.touch(c, id, h, p); dead {
				n := b.capture(c, h)
				captured += n
				if n == 1 {
					candidate = q
				}
			}
			continue
		}
		me.libs[id].Set(uint(q))
	}

	// A square is a ko square if:
	//	- it was the site of the only stone captured this turn
	//	- it is the only liberty of the capturing group
	ko = noPoint
	if captured == 1 && me.libs[id].Count() == 1 && me.libs[id].Test(uint(candidate)) {
		ko = candidate
	}
	return captured, ko
}
