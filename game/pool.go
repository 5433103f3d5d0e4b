package game

import (
	"sync"
)

var (
	iterMu   sync.Mutex
	iterPool = make(map[int32]*sync.Pool)
)

func borrowIterator(m int32) [][]Colour {
	iterMu.Lock()
	p, ok := iterPool[m]
	iterMu.Unlock()
	if ok {
		if it, ok := p.Get().([][]Colour); ok {
			return it
		}
	}
	return make([][]Colour, m)
}

// ReturnIterator returns an iterator made by MakeIterator to the pool.
func ReturnIterator(m, n int32, it [][]Colour) {
	for i := range it {
		it[i] = nil
	}
	iterMu.Lock()
	p, ok := iterPool[m]
	if !ok {
		p = &sync.Pool{}
		iterPool[m] = p
	}
	iterMu.Unlock()
	p.Put(it)
}
