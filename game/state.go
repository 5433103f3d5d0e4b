package game

import (
	"fmt"
)

type Colour int32

const (
	None Colour = iota
	Black
	White
)

func (cl Colour) Format(s fmt.State, c rune) {
	switch c {
	case 'v': // used in debug
		switch cl {
		case None:
			fmt.Fprint(s, "None")
		case Black:
			fmt.Fprint(s, "Black")
		case White:
			fmt.Fprint(s, "White")
		}
	case 's': // used in board games
		switch cl {
		case None:
			fmt.Fprint(s, "·")
		case Black:
			fmt.Fprint(s, "X")
		case White:
			fmt.Fprint(s, "O")
		}
	}
}

// Index returns the index of the colour in per-colour pairs such as Reward. Black is 0, White is 1.
// None has no index and returns -1.
func (cl Colour) Index() int {
	switch cl {
	case Black:
		return 0
	case White:
		return 1
	}
	return -1
}

// Opponent returns the other colour. None is its own opponent.
func (cl Colour) Opponent() Colour {
	switch cl {
	case Black:
		return White
	case White:
		return Black
	}
	return None
}

// Player represents a player. It's also a colour.
type Player Colour

func (p Player) Format(s fmt.State, c rune) { Colour(p).Format(s, c) }

// PlayerMove is a tuple indicating the player and the move to be made.
type PlayerMove struct {
	Player
	Single
}

// Eq returns true if both are equal
func (p PlayerMove) Eq(other PlayerMove) bool {
	return p.Player == other.Player && p.Single == other.Single
}

func (p PlayerMove) Format(s fmt.State, c rune) { fmt.Fprintf(s, "%v@%d", p.Player, p.Single) }

// Coordinate is a representation of coordinates. This is typically a move
type Coordinate interface {
	IsResignation() bool
	IsPass() bool
}

// Coord represents a (row, col) coordinate.
//
// The Coord uses a standard computer cartesian coordinates
//		- (0, 0) represents the top left
//		- (4, 4) represents the bottom right of a 5x5 board
//		- (255, 255) represents a "pass" move
// 		- (254, 254) represents a "resign" move
type Coord struct {
	X, Y int16
}

func (c Coord) Add(other Coord) Coord { return Coord{c.X + other.X, c.Y + other.Y} }

func (c Coord) Eq(other Coord) bool { return c.X == other.X && c.Y == other.Y }

// IsResignation returns true when the coordinate represents a "resignation" move
func (c Coord) IsResignation() bool { return c.X == 254 && c.Y == 254 }

// IsPass returns true when the coordinate represents a "pass" move
func (c Coord) IsPass() bool { return c.X == 255 && c.Y == 255 }

// Single represents a coordinate as a single number, utilized in a rowmajor fashion.
//		- 0 represents the top left
//		- 4 represents the top right of a 5x5 board
//		- 5 represents (1, 0)
// 		- -1 represents the "pass" move
//		- -2 represents the "resignation" move
type Single int32

const (
	Pass   Single = -1
	Resign Single = -2
)

// IsResignation returns true when the coordinate represents a "resignation" move
func (c Single) IsResignation() bool { return c == Resign }

// IsPass returns true when the coordinate represents a "pass" move
func (c Single) IsPass() bool { return c == Pass }

// Reward is the per-player payoff of a transition, indexed by Colour.Index.
type Reward [2]int

// Of returns the reward of the given player.
func (r Reward) Of(p Player) int {
	i := Colour(p).Index()
	if i < 0 {
		return 0
	}
	return r[i]
}

// Win returns the zero-sum reward where p wins. A None player yields a draw.
func Win(p Player) (r Reward) {
	switch Colour(p) {
	case Black:
		r = Reward{1, -1}
	case White:
		r = Reward{-1, 1}
	}
	return r
}

// Winner returns the player with the positive reward, or None for a draw.
func (r Reward) Winner() Player {
	switch {
	case r[0] > r[1]:
		return Player(Black)
	case r[1] > r[0]:
		return Player(White)
	}
	return Player(None)
}

// State is any game that implements these and are able to report back
type State interface {
	// These methods represent the game state
	BoardSize() (int, int) // returns the board size
	Board() []Colour       // returns the board state
	ActionSpace() int      // returns the number of permissible actions, including the pass
	Hash() Zobrist         // returns the hash of the board
	ToMove() Player        // returns the next player to move (terminology is a bit confusing - this means the current player)
	Passes() int           // returns number of consecutive passes that have been made
	MoveNumber() int       // returns count of moves so far that led to this point.
	LastMove() PlayerMove  // returns the last move that was made

	// Meta-game stuff
	Score(p Player) float32             // score of the given player
	Ended() (ended bool, winner Player) // has the game ended? if yes, then who's the winner?

	// interactions
	Check(m PlayerMove) bool  // check if the placement is legal
	Apply(m PlayerMove) State // should return a GameState. The required side effect is the NextToMove has to change.
	Reset()                   // reset state

	// generics
	Eq(other State) bool
	Clone() State
}

// Stepper is the reinforcement learning contract of a game: a transition function
// over actions (points, or Pass) that reports the reward and whether the episode terminated.
type Stepper interface {
	State

	// Step applies the action for the player to move. It never fails: an illegal action
	// terminates the episode with the mover losing.
	Step(action Single) (reward Reward, terminated bool)

	// LegalActions returns a mask over [0, ActionSpace()). The last entry is the pass.
	LegalActions() []bool
}

// Zobrist is a type representing a "zobrist" hash.
type Zobrist uint32

// MetaState is what output encoders are fed with.
type MetaState interface {
	Name() string // name of the game
	GameNumber() int
	Score(a Player) float64
	State() State
}

type CoordConverter interface {
	Ltoi(Coord) Single
	Itol(Single) Coord
}
