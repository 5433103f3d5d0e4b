package boardrules

import (
	"sync"
)

type poolKey struct{ m, n int }

var (
	iterMu   sync.Mutex
	iterPool = make(map[poolKey]*sync.Pool)
)

func borrowIterator(m, n int) [][]float32 {
	iterMu.Lock()
	p, ok := iterPool[poolKey{m, n}]
	iterMu.Unlock()
	if ok {
		if it, ok := p.Get().([][]float32); ok {
			return it
		}
	}
	return make([][]float32, m)
}

// ReturnIterator hands an iterator made by MakeIterator back to the pool.
func ReturnIterator(m, n int, it [][]float32) {
	for i := range it {
		it[i] = nil
	}
	k := poolKey{m, n}
	iterMu.Lock()
	p, ok := iterPool[k]
	if !ok {
		p = &sync.Pool{}
		iterPool[k] = p
	}
	iterMu.Unlock()
	p.Put(it)
}
