package minigo

import (
	"fmt"

	"github.com/boardrules/boardrules/game"
)

// allocate returns the smallest id that is not alive, and marks it alive.
func (t *table) allocate() groupID {
	id, ok := t.alive.NextClear(0)
	if !ok || id >= uint(len(t.plane)) {
		// there can never be more groups of a colour than there are points
		panic(fmt.Sprintf("group ids exhausted: %d alive", t.alive.Count()))
	}
	t.alive.Set(id)
	return groupID(id)
}

// free marks id as available for reuse, and clears its slot.
func (t *table) free(id groupID) {
	t.alive.Clear(uint(id))
	t.libs[id].ClearAll()
	t.adj[id].ClearAll()
	t.stones[id].ClearAll()
}

// newGroup allocates a singleton group at p.
func (t *table) newGroup(p game.Single) groupID {
	id := t.allocate()
	t.plane[p] = id
	t.stones[id].Set(uint(p))
	return id
}

// groupAt returns the id of the group with a stone at p, if any.
func (t *table) groupAt(p game.Single) (groupID, bool) {
	id := t.plane[p]
	return id, id != noGroup
}
