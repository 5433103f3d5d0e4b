package minigo

import (
	"github.com/boardrules/boardrules/game"
)

// merge merges the groups x and y of colour c, which are connected through the stone at p.
// The lower id survives. The surviving id is returned.
func (b *board) merge(c game.Colour, x, y groupID, p game.Single) groupID {
	me, op := b.of(c), b.of(c.Opponent())
	if x == y {
		me.libs[x].Clear(uint(p))
		return x
	}
	small, large := x, y
	if large < small {
		small, large = large, small
	}

	for s, ok := me.stones[large].NextSet(0); ok; s, ok = me.stones[large].NextSet(s + 1) {
		me.plane[s] = small
	}
	me.stones[small].InPlaceUnion(me.stones[large])

	me.libs[small].InPlaceUnion(me.libs[large])
	me.libs[small].Clear(uint(p))

	// keep the adjacency symmetric: whoever pointed at large now points at small
	for h, ok := me.adj[large].NextSet(0); ok; h, ok = me.adj[large].NextSet(h + 1) {
		op.adj[h].Clear(uint(large))
		op.adj[h].Set(uint(small))
	}
	me.adj[small].InPlaceUnion(me.adj[large])

	me.free(large)
	return small
}

// touch records that the group id of colour c touches the opposing group h through the stone at p.
// p is no longer a liberty of h. touch reports whether h is left without liberties.
func (b *board) touch(c game.Colour, id, h groupID, p game.Single) (dead bool) {
	me, op := b.of(c), b.of(c.Opponent())
	me.adj[id].Set(uint(h))
	op.adj[h].Set(uint(id))
	op.libs[h].Clear(uint(p))
	return op.libs[h].None()
}

// capture removes the group h of colour c.Opponent() from the board. Every vacated point becomes a
// liberty of the groups of colour c that border it. capture returns the number of stones removed.
func (b *board) capture(c game.Colour, h groupID) int {
	me, op := b.of(c), b.of(c.Opponent())
	stones := op.stones[h]
	for s, ok := stones.NextSet(0); ok; s, ok = stones.NextSet(s + 1) {
		pt := game.Single(s)
		op.plane[pt] = noGroup
		b.zobrist.update(c.Opponent(), pt)
		for _, q := range b.nbrs[pt] {
			if id, ok := me.groupAt(q); ok {
				me.libs[id].Set(s)
			}
		}
	}
	for g, ok := op.adj[h].NextSet(0); ok; g, ok = op.adj[h].NextSet(g + 1) {
		me.adj[g].Clear(uint(h))
	}
	n := int(stones.Count())
	op.free(h)
	return n
}

// liberties returns the number of liberties of the group with a stone at p.
func (b *board) liberties(p game.Single) int {
	c := b.colourAt(p)
	if c == None {
		return 0
	}
	t := b.of(c)
	return int(t.libs[t.plane[p]].Count())
}
