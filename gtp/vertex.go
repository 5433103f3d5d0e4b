package gtp

import (
	"strconv"

	"github.com/boardrules/boardrules/game"
	"github.com/boardrules/boardrules/game/minigo"
	"github.com/pkg/errors"
)

// columns are lettered from the left, skipping I.
const letters = "abcdefghjklmnopqrst"

func parseColour(a string) (game.Player, error) {
	switch a {
	case "b", "black":
		return minigo.BlackP, nil
	case "w", "white":
		return minigo.WhiteP, nil
	}
	return game.Player(game.None), errors.Errorf("Invalid color %q", a)
}

// parseVertex parses a vertex such as "c3" or "pass" on a board of the given width.
// Rows are numbered from the bottom.
func parseVertex(a string, width int) (game.Single, error) {
	if a == "pass" {
		return minigo.Pass, nil
	}
	if len(a) < 2 {
		return 0, errors.Errorf("Invalid vertex %q", a)
	}
	col := -1
	for i := 0; i < width && i < len(letters); i++ {
		if letters[i] == a[0] {
			col = i
			break
		}
	}
	if col < 0 {
		return 0, errors.Errorf("Invalid vertex %q", a)
	}
	n, err := strconv.Atoi(a[1:])
	if err != nil {
		return 0, errors.WithMessagef(err, "Invalid vertex %q", a)
	}
	if n < 1 || n > width {
		return 0, errors.Errorf("Invalid vertex %q", a)
	}
	row := width - n
	return game.Single(row*width + col), nil
}

// vertex formats a point as a GTP vertex.
func vertex(p game.Single, width int) string {
	if p.IsPass() {
		return "pass"
	}
	row, col := int(p)/width, int(p)%width
	return string(letters[col]-'a'+'A') + strconv.Itoa(width-row)
}
