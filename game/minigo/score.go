package minigo

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/boardrules/boardrules/game"
)

// Result is the outcome of scoring a board.
type Result struct {
	Territory [2]int // empty points enclosed by each colour, indexed by game.Colour.Index
	Prisoners [2]int // opposing stones captured by each colour
	Score     [2]int // territory minus the colour's own stones lost
	Reward    game.Reward
}

// reach marks every empty point that can be reached from a stone of colour c, travelling only
// through empty points.
func (b *board) reach(c game.Colour) *bitset.BitSet {
	marked := bitset.New(uint(b.size))
	t := b.of(c)
	stack := make([]game.Single, 0, b.size)
	for p, id := range t.plane {
		if id != noGroup {
			stack = append(stack, game.Single(p))
		}
	}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, q := range b.nbrs[p] {
			if b.isEmpty(q) && !marked.Test(uint(q)) {
				marked.Set(uint(q))
				stack = append(stack, q)
			}
		}
	}
	return marked
}

// territory counts, for each colour, the empty points that its stones reach and the opponent's stones
// don't. Regions that touch both colours count for neither; so do regions that touch no stone at all.
func (b *board) territory() (retVal [2]int) {
	black, white := b.reach(Black), b.reach(White)
	retVal[Black.Index()] = int(black.Difference(white).Count())
	retVal[White.Index()] = int(white.Difference(black).Count())
	return retVal
}

// score scores the board. The captures are indexed by the capturing colour.
func (b *board) score(captures [2]int) Result {
	var r Result
	r.Territory = b.territory()
	r.Prisoners = captures
	for _, c := range []game.Colour{Black, White} {
		r.Score[c.Index()] = r.Territory[c.Index()] - captures[c.Opponent().Index()]
	}
	switch bs, ws := r.Score[Black.Index()], r.Score[White.Index()]; {
	case bs > ws:
		r.Reward = game.Win(BlackP)
	case bs < ws:
		r.Reward = game.Win(WhiteP)
	}
	return r
}
