package minigo

import (
	"fmt"

	"github.com/boardrules/boardrules/game"
	"github.com/pkg/errors"
)

// OccupiedPointError is returned when a stone is placed on a point that already holds a stone.
type OccupiedPointError game.PlayerMove

func (err OccupiedPointError) Error() string {
	return fmt.Sprintf("Unable to make %v - point is occupied", game.PlayerMove(err))
}

// KoViolationError is returned when a stone is placed on the ko point.
type KoViolationError game.PlayerMove

func (err KoViolationError) Error() string {
	return fmt.Sprintf("Unable to make %v - illegal ko recapture", game.PlayerMove(err))
}

// SuicideError is returned when a stone would leave its own group without liberties, capturing nothing.
type SuicideError game.PlayerMove

func (err SuicideError) Error() string {
	return fmt.Sprintf("Unable to make %v - suicide is not a valid option", game.PlayerMove(err))
}

// OutOfBoundsError is returned when the move is neither a point on the board nor a pass.
type OutOfBoundsError game.PlayerMove

func (err OutOfBoundsError) Error() string {
	return fmt.Sprintf("Unable to make %v - impossible move", game.PlayerMove(err))
}

// WrongPlayerError is returned when a move is made by the player who is not to move.
type WrongPlayerError game.PlayerMove

func (err WrongPlayerError) Error() string {
	return fmt.Sprintf("Unable to make %v - not the player to move", game.PlayerMove(err))
}

// GameOverError is returned when a move is made after the game ended.
type GameOverError game.PlayerMove

func (err GameOverError) Error() string {
	return fmt.Sprintf("Unable to make %v - the game has ended", game.PlayerMove(err))
}

// IsIllegalMove returns true if the cause of err is one of the ways a move can break the rules.
func IsIllegalMove(err error) bool {
	switch errors.Cause(err).(type) {
	case OccupiedPointError, KoViolationError, SuicideError, OutOfBoundsError, WrongPlayerError:
		return true
	}
	return false
}
