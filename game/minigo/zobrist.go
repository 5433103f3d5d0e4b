package minigo

import (
	"math/rand"

	"github.com/boardrules/boardrules/game"
)

// zobrist is a data structure for calculating Zobrist hashes.
// https://en.wikipedia.org/wiki/Zobrist_hashing
//
// The table is a matrix of (BOARDSIZE * BOARDSIZE, 2), stored row major.
// It is seeded by the board width, so that two games of the same width hash the same positions alike.
// The table is never written to after creation, so clones share it.
type zobrist struct {
	table []uint32
	hash  uint32
}

func makeZobrist(width int) zobrist {
	r := rand.New(rand.NewSource(int64(width)))
	table := make([]uint32, width*width*2)
	for i := range table {
		table[i] = r.Uint32()
	}
	return zobrist{table: table}
}

// update xors the stone of colour c at p in or out of the hash.
func (z *zobrist) update(c game.Colour, p game.Single) uint32 {
	z.hash ^= z.table[int(p)*2+c.Index()]
	return z.hash
}
