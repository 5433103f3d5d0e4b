package minigo

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/boardrules/boardrules/game"
	"github.com/pkg/errors"
)

// play steps through the moves, failing the test if any of them ends the game.
func play(t *testing.T, g *Game, moves ...game.Single) {
	t.Helper()
	for i, m := range moves {
		if _, terminated := g.Step(m); terminated {
			t.Fatalf("Move %d (%d) ended the game: %v\n%v", i, m, g.Err(), g)
		}
	}
}

// checkInvariants recomputes the groups of the board from scratch and compares them with what the
// tables have incrementally maintained.
func checkInvariants(t *testing.T, g *Game) {
	t.Helper()
	b := g.board
	size := int(b.size)

	for p := 0; p < size; p++ {
		if b.tables[0].plane[p] != noGroup && b.tables[1].plane[p] != noGroup {
			t.Fatalf("Point %d is in both planes\n%v", p, g)
		}
	}

	for _, c := range []game.Colour{Black, White} {
		me, op := b.of(c), b.of(c.Opponent())
		seen := bitset.New(uint(size))
		used := bitset.New(uint(size))

		for p := 0; p < size; p++ {
			id := me.plane[p]
			if id == noGroup || seen.Test(uint(p)) {
				continue
			}
			if used.Test(uint(id)) {
				t.Fatalf("%v group id %d is used by two disconnected groups\n%v", c, id, g)
			}
			used.Set(uint(id))

			// flood fill the chain
			stones := bitset.New(uint(size))
			libs := bitset.New(uint(size))
			adj := bitset.New(uint(size))
			stack := []game.Single{game.Single(p)}
			stones.Set(uint(p))
			for len(stack) > 0 {
				s := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if me.plane[s] != id {
					t.Fatalf("%v stone at %d has id %d, expected %d\n%v", c, s, me.plane[s], id, g)
				}
				for _, q := range b.nbrs[s] {
					switch {
					case b.isEmpty(q):
						libs.Set(uint(q))
					case me.plane[q] != noGroup:
						if !stones.Test(uint(q)) {
							stones.Set(uint(q))
							stack = append(stack, q)
						}
					default:
						adj.Set(uint(op.plane[q]))
					}
				}
			}
			seen.InPlaceUnion(stones)

			if !me.alive.Test(uint(id)) {
				t.Fatalf("%v group %d is on the board but not alive\n%v", c, id, g)
			}
			if !stones.Equal(me.stones[id]) {
				t.Fatalf("%v group %d stones: expected %v, got %v\n%v", c, id, stones, me.stones[id], g)
			}
			if !libs.Equal(me.libs[id]) {
				t.Fatalf("%v group %d liberties: expected %v, got %v\n%v", c, id, libs, me.libs[id], g)
			}
			if !adj.Equal(me.adj[id]) {
				t.Fatalf("%v group %d adjacency: expected %v, got %v\n%v", c, id, adj, me.adj[id], g)
			}
			if libs.None() {
				t.Fatalf("%v group %d has no liberties\n%v", c, id, g)
			}
			for h, ok := adj.NextSet(0); ok; h, ok = adj.NextSet(h + 1) {
				if !op.adj[h].Test(uint(id)) {
					t.Fatalf("Adjacency is not symmetric: %v group %d lists %d, but not the other way around\n%v", c, id, h, g)
				}
			}
		}
		if !used.Equal(me.alive) {
			t.Fatalf("%v alive ids: expected %v, got %v\n%v", c, used, me.alive, g)
		}
	}

	if ko, ok := g.Ko(); ok && !b.isEmpty(ko) {
		t.Fatalf("Ko point %d is not empty\n%v", ko, g)
	}
}

// checkMask checks that the legal action mask agrees with what Step does on a scratch copy.
func checkMask(t *testing.T, g *Game) {
	t.Helper()
	mask := g.LegalActions()
	if len(mask) != g.ActionSpace() {
		t.Fatalf("Expected a mask of %d. Got %d", g.ActionSpace(), len(mask))
	}
	for p := 0; p < int(g.size); p++ {
		scratch := g.Clone().(*Game)
		_, terminated := scratch.Step(game.Single(p))
		if terminated == mask[p] {
			t.Fatalf("Point %d: mask says legal=%t, Step says terminated=%t (%v)\n%v", p, mask[p], terminated, scratch.Err(), g)
		}
		if terminated {
			if !IsIllegalMove(scratch.Err()) {
				t.Fatalf("Point %d: expected an illegal move error. Got %v", p, scratch.Err())
			}
			if !scratch.board.Eq(g.board) {
				t.Fatalf("Point %d: an illegal move must leave the board unchanged\n%v\n%v", p, g, scratch)
			}
		}
	}
	if !mask[len(mask)-1] {
		t.Fatalf("Pass should always be legal")
	}
	checkPlacements(t, g)
}

// checkPlacements makes every placement of the player to move on a copy of the board, without the
// legality check, and checks that the mask forbids exactly the placements that leave the new group
// without liberties and capture nothing.
func checkPlacements(t *testing.T, g *Game) {
	t.Helper()
	if g.ended {
		return
	}
	mask := g.LegalActions()
	c := game.Colour(g.ToMove())
	ko, isKo := g.Ko()
	for p := game.Single(0); int32(p) < g.size; p++ {
		if !g.board.isEmpty(p) || (isKo && p == ko) {
			continue
		}
		b := g.board.Clone()
		captured, _ := b.place(c, p)
		me := b.of(c)
		suicide := captured == 0 && me.libs[me.plane[p]].None()
		if suicide == mask[p] {
			t.Fatalf("Point %d: placing gives suicide=%t (captured %d), but the mask says legal=%t\n%v", p, suicide, captured, mask[p], g)
		}
		if suicide {
			if _, ok := errors.Cause(g.board.check(game.PlayerMove{Player: g.ToMove(), Single: p}, g.ko)).(SuicideError); !ok {
				t.Fatalf("Point %d: expected a suicide error\n%v", p, g)
			}
		}
	}
}
