// package boardrules plays games of mini-Go between agents, and records and renders them.
package boardrules

import (
	"github.com/boardrules/boardrules/game"
	"github.com/boardrules/boardrules/game/minigo"
)

type Config struct {
	Name     string
	Game     minigo.Config
	MaxMoves int // moves after which both agents are made to pass. 0 means no limit.

	// extensions
	OutputEncoder OutputEncoder
	Augmenter     Augmenter
}

// DefaultConfig plays on the 5x5 board.
func DefaultConfig() Config {
	return Config{
		Name:     "mini-go",
		Game:     minigo.DefaultConfig(),
		MaxMoves: 200,
	}
}

// IsValid returns true if the config can be used to make an arena.
func (c Config) IsValid() bool { return c.Game.IsValid() && c.MaxMoves >= 0 }

// Mover picks the next move of a game. The move is an action of the game: a point, or minigo.Pass.
type Mover interface {
	Move(g *minigo.Game) game.Single
}

// MoverFunc is a function that is a Mover.
type MoverFunc func(g *minigo.Game) game.Single

func (f MoverFunc) Move(g *minigo.Game) game.Single { return f(g) }

// OutputEncoder encodes the entire meta state as whatever.
//
// An example OutputEncoder is the GifEncoder. Another example would be a logger.
type OutputEncoder interface {
	Encode(ms game.MetaState) error
	Flush() error
}

// Augmenter takes an example, and creates more examples from it.
type Augmenter func(a Example) []Example

// Example is a representation of an example.
type Example struct {
	Board  []float32 // the features of the position, as minigo.Game.Features encodes them
	Policy []float32 // the distribution the move was drawn from, over the action space
	Value  float32   // the outcome of the game for the player to move: 1, -1 or 0
}
