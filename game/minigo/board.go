package minigo

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/boardrules/boardrules/game"
)

// groupID is a handle into the per-colour group tables.
type groupID int32

const noGroup groupID = -1

// table holds everything the board knows about the stones of one colour.
//
// Group ids index into libs, adj and stones. A slot is only meaningful while its id is alive.
type table struct {
	plane  []groupID        // group id of every point, noGroup if the point has no stone of this colour
	alive  *bitset.BitSet   // ids that are currently allocated
	libs   []*bitset.BitSet // points that are liberties of the group
	adj    []*bitset.BitSet // ids of opposing groups that touch the group
	stones []*bitset.BitSet // points of the group
}

func makeTable(size int) table {
	t := table{
		plane:  make([]groupID, size),
		alive:  bitset.New(uint(size)),
		libs:   make([]*bitset.BitSet, size),
		adj:    make([]*bitset.BitSet, size),
		stones: make([]*bitset.BitSet, size),
	}
	for i := range t.plane {
		t.plane[i] = noGroup
		t.libs[i] = bitset.New(uint(size))
		t.adj[i] = bitset.New(uint(size))
		t.stones[i] = bitset.New(uint(size))
	}
	return t
}

func (t *table) clone() table {
	retVal := table{
		plane:  make([]groupID, len(t.plane)),
		alive:  t.alive.Clone(),
		libs:   make([]*bitset.BitSet, len(t.libs)),
		adj:    make([]*bitset.BitSet, len(t.adj)),
		stones: make([]*bitset.BitSet, len(t.stones)),
	}
	copy(retVal.plane, t.plane)
	for i := range t.libs {
		retVal.libs[i] = t.libs[i].Clone()
		retVal.adj[i] = t.adj[i].Clone()
		retVal.stones[i] = t.stones[i].Clone()
	}
	return retVal
}

func (t *table) reset() {
	for i := range t.plane {
		t.plane[i] = noGroup
		t.libs[i].ClearAll()
		t.adj[i].ClearAll()
		t.stones[i].ClearAll()
	}
	t.alive.ClearAll()
}

func (t *table) eq(other *table) bool {
	if len(t.plane) != len(other.plane) || !t.alive.Equal(other.alive) {
		return false
	}
	for i, id := range t.plane {
		if other.plane[i] != id {
			return false
		}
	}
	for i, ok := t.alive.NextSet(0); ok; i, ok = t.alive.NextSet(i + 1) {
		if !t.libs[i].Equal(other.libs[i]) || !t.adj[i].Equal(other.adj[i]) || !t.stones[i].Equal(other.stones[i]) {
			return false
		}
	}
	return true
}

// board is the arena of both colours' group tables, along with the geometry of the board.
type board struct {
	width  int32
	size   int32
	tables [2]table
	nbrs   [][]game.Single // on-board orthogonal neighbours of every point. Read only.
	zobrist
}

func newBoard(width int) *board {
	size := width * width
	return &board{
		width:   int32(width),
		size:    int32(size),
		tables:  [2]table{makeTable(size), makeTable(size)},
		nbrs:    makeNeighbours(width),
		zobrist: makeZobrist(width),
	}
}

func makeNeighbours(width int) [][]game.Single {
	retVal := make([][]game.Single, width*width)
	for p := range retVal {
		row, col := p/width, p%width
		nb := make([]game.Single, 0, 4)
		if row > 0 {
			nb = append(nb, game.Single(p-width))
		}
		if row < width-1 {
			nb = append(nb, game.Single(p+width))
		}
		if col > 0 {
			nb = append(nb, game.Single(p-1))
		}
		if col < width-1 {
			nb = append(nb, game.Single(p+1))
		}
		retVal[p] = nb
	}
	return retVal
}

// Clone clones the board. The neighbour lists and the zobrist table are immutable and are shared.
func (b *board) Clone() *board {
	return &board{
		width:   b.width,
		size:    b.size,
		tables:  [2]table{b.tables[0].clone(), b.tables[1].clone()},
		nbrs:    b.nbrs,
		zobrist: b.zobrist,
	}
}

// Eq checks that both are equal
func (b *board) Eq(other *board) bool {
	if b == other {
		return true
	}
	if b.width != other.width || b.hash != other.hash {
		return false
	}
	return b.tables[0].eq(&other.tables[0]) && b.tables[1].eq(&other.tables[1])
}

// Reset resets the board state
func (b *board) Reset() {
	b.tables[0].reset()
	b.tables[1].reset()
	b.hash = 0
}

func (b *board) of(c game.Colour) *table { return &b.tables[c.Index()] }

func (b *board) onBoard(p game.Single) bool { return p >= 0 && int32(p) < b.size }

// colourAt returns the colour of the stone at p, or None.
func (b *board) colourAt(p game.Single) game.Colour {
	switch {
	case b.tables[0].plane[p] != noGroup:
		return Black
	case b.tables[1].plane[p] != noGroup:
		return White
	}
	return None
}

func (b *board) isEmpty(p game.Single) bool {
	return b.tables[0].plane[p] == noGroup && b.tables[1].plane[p] == noGroup
}

// colours returns the board as a slice of colours.
func (b *board) colours(prealloc []game.Colour) []game.Colour {
	if len(prealloc) != int(b.size) {
		prealloc = make([]game.Colour, b.size)
	}
	for i := range prealloc {
		prealloc[i] = b.colourAt(game.Single(i))
	}
	return prealloc
}

// ltoi takes a coordinate and return a single
func (b *board) ltoi(c game.Coord) game.Single { return game.Single(int32(c.X)*b.width + int32(c.Y)) }

// itol takes a single and returns a coordinate
func (b *board) itol(s game.Single) game.Coord {
	return game.Coord{X: int16(int32(s) / b.width), Y: int16(int32(s) % b.width)}
}
