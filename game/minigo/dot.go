package minigo

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
	"github.com/boardrules/boardrules/game"
	"github.com/pkg/errors"
)

func groupName(c game.Colour, id uint) string {
	if c == Black {
		return fmt.Sprintf("X%d", id)
	}
	return fmt.Sprintf("O%d", id)
}

// ToDot returns the live groups and the adjacency between them as a graphviz graph.
func (g *Game) ToDot() (string, error) {
	graph := gographviz.NewGraph()
	if err := graph.SetName("G"); err != nil {
		return "", errors.WithStack(err)
	}
	if err := graph.SetDir(false); err != nil {
		return "", errors.WithStack(err)
	}

	for _, c := range []game.Colour{Black, White} {
		t := g.of(c)
		for id, ok := t.alive.NextSet(0); ok; id, ok = t.alive.NextSet(id + 1) {
			attrs := map[string]string{
				"label": fmt.Sprintf(`"%v #%d\nstones: %d\nliberties: %d"`, c, id, t.stones[id].Count(), t.libs[id].Count()),
				"shape": "box",
			}
			if err := graph.AddNode("G", groupName(c, id), attrs); err != nil {
				return "", errors.WithMessage(err, "Unable to add group")
			}
		}
	}

	// adjacency is symmetric, so the edges are read off Black's side only
	t := g.of(Black)
	for id, ok := t.alive.NextSet(0); ok; id, ok = t.alive.NextSet(id + 1) {
		for h, ok := t.adj[id].NextSet(0); ok; h, ok = t.adj[id].NextSet(h + 1) {
			if err := graph.AddEdge(groupName(Black, id), groupName(White, h), false, nil); err != nil {
				return "", errors.WithMessage(err, "Unable to add adjacency")
			}
		}
	}
	return graph.String(), nil
}
