// package minigo implements the rules of a small-board variant of Go (the board game).
//
// The default board is 5x5, but the width is a construction-time parameter.
// Unlike a board that only stores colours, the engine keeps track of the groups on the board
// incrementally: every stone carries the id of the group it belongs to, and every group knows its
// liberties and the opposing groups it touches. This makes captures, suicide and ko checks local
// operations instead of board-wide flood fills.
//
// The rules are:
//	- two consecutive passes end the game. The game is then scored by territory minus prisoners lost.
//	- suicide is illegal.
//	- a single-stone capture that leaves the capturing group with the captured point as its only
//	  liberty forbids the immediate recapture (ko).
//	- an illegal move ends the game. The player who made it loses.
package minigo

import (
	"github.com/boardrules/boardrules/game"
	"github.com/pkg/errors"
)

const (
	None  = game.None
	Black = game.Black
	White = game.White

	BlackP = game.Player(game.Black)
	WhiteP = game.Player(game.White)

	Pass = game.Pass

	// DefaultWidth is the width of the board that the variant is played on.
	DefaultWidth = 5

	// MaxWidth is the largest board the engine is willing to build.
	MaxWidth = 19
)

// noPoint marks the absence of a point, as in "no ko".
const noPoint game.Single = -1

// Config configures a game.
type Config struct {
	Width int // the board is Width x Width
}

// DefaultConfig returns the configuration of the 5x5 variant.
func DefaultConfig() Config { return Config{Width: DefaultWidth} }

// IsValid returns true if the config can be used to create a game.
func (c Config) IsValid() bool { return c.Width >= 2 && c.Width <= MaxWidth }

// NewFromConfig creates a new game from the config.
func NewFromConfig(conf Config) (*Game, error) {
	if !conf.IsValid() {
		return nil, errors.Errorf("Invalid board width %d. Expected a width between 2 and %d", conf.Width, MaxWidth)
	}
	return New(conf.Width), nil
}

// Opponent returns the colour of the opponent player
func Opponent(p game.Player) game.Player {
	switch game.Colour(p) {
	case game.White:
		return BlackP
	case game.Black:
		return WhiteP
	}
	panic("Unreachable")
}

// IsValid checks that a player is indeed valid
func IsValid(p game.Player) bool { return game.Colour(p) == game.Black || game.Colour(p) == game.White }
