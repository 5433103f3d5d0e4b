package minigo

import (
	"fmt"

	"github.com/boardrules/boardrules/game"
	"github.com/pkg/errors"
)

var _ game.Stepper = &Game{}
var _ game.CoordConverter = &Game{}

// Game implements game.State and game.Stepper.
//
// A Game is mutated in place by Step. It is not safe for concurrent use; use Clone to get a
// scratch copy. Independent games share no mutable state.
type Game struct {
	*board

	turn     int         // number of moves made, passes and illegal moves included
	captures [2]int      // agehama. Opposing stones captured by each colour
	ko       game.Single // point the player to move may not play at, or noPoint
	passed   bool        // the previous move was a pass
	last     game.PlayerMove

	// terminal state
	ended  bool
	reward game.Reward
	result *Result // set when the game ends by two passes
	err    error   // set when the game ends by an illegal move
}

// New creates a new game on a width x width board. Black moves first.
func New(width int) *Game {
	return &Game{
		board: newBoard(width),
		ko:    noPoint,
		last:  game.PlayerMove{Player: game.Player(game.None), Single: Pass},
	}
}

func (g *Game) BoardSize() (int, int) { return int(g.width), int(g.width) }

// Board returns a freshly allocated view of the colours on the board.
func (g *Game) Board() []game.Colour { return g.colours(nil) }

// ActionSpace is the number of points on the board, plus the pass.
func (g *Game) ActionSpace() int { return int(g.size) + 1 }

func (g *Game) Hash() game.Zobrist { return game.Zobrist(g.hash) }

func (g *Game) ToMove() game.Player {
	if g.turn%2 == 0 {
		return BlackP
	}
	return WhiteP
}

// Passes returns the number of consecutive passes that led to this point.
func (g *Game) Passes() int {
	switch {
	case g.result != nil:
		return 2
	case g.passed:
		return 1
	}
	return 0
}

func (g *Game) MoveNumber() int { return g.turn }

func (g *Game) LastMove() game.PlayerMove { return g.last }

// Captures returns the number of opposing stones the player has captured.
func (g *Game) Captures(p game.Player) int { return g.captures[game.Colour(p).Index()] }

// Ko returns the point the player to move may not play at, if there is one.
func (g *Game) Ko() (game.Single, bool) { return g.ko, g.ko != noPoint }

// Score returns the score the player would get if the game were to end now.
func (g *Game) Score(p game.Player) float32 {
	if !IsValid(p) {
		panic("unreachable")
	}
	r := g.board.score(g.captures)
	return float32(r.Score[game.Colour(p).Index()])
}

// Result returns the scoring of the game. It is only available when the game ended by two passes.
func (g *Game) Result() (Result, bool) {
	if g.result == nil {
		return Result{}, false
	}
	return *g.result, true
}

// Ended returns whether the game has ended, and who won. A draw is won by None.
func (g *Game) Ended() (ended bool, winner game.Player) {
	if !g.ended {
		return false, game.Player(game.None)
	}
	return true, g.reward.Winner()
}

// Reward returns the reward of the last transition that ended the game. It is zero while the game is running.
func (g *Game) Reward() game.Reward { return g.reward }

// Err returns the reason the game was ended by an illegal move, if it was.
func (g *Game) Err() error { return g.err }

// Check returns true if the move is legal.
func (g *Game) Check(m game.PlayerMove) bool { return g.check(m) == nil }

// Validate returns why the move is illegal, or nil if it is legal.
func (g *Game) Validate(m game.PlayerMove) error { return g.check(m) }

// Step makes the action for the player to move.
//
// If the action is illegal, the game ends: the player to move gets -1 and the opponent +1.
// The board is left as it was before the illegal action; the turn is still counted.
// The second of two consecutive passes ends the game and scores it.
// Stepping a game that has ended does nothing and returns a zero reward.
//
// The pass may be given either as Pass or as the last index of the action mask.
func (g *Game) Step(action game.Single) (reward game.Reward, terminated bool) {
	if g.ended {
		return game.Reward{}, true
	}
	if action == game.Single(g.size) {
		action = Pass
	}
	m := game.PlayerMove{Player: g.ToMove(), Single: action}
	if err := g.check(m); err != nil {
		return g.illegal(m, err), true
	}

	g.last = m
	if action.IsPass() {
		return g.pass()
	}

	g.passed = false
	captured, ko := g.board.place(game.Colour(m.Player), action)
	g.captures[game.Colour(m.Player).Index()] += captured
	g.ko = ko
	g.turn++
	return game.Reward{}, false
}

func (g *Game) pass() (game.Reward, bool) {
	g.turn++
	g.ko = noPoint
	if !g.passed {
		g.passed = true
		return game.Reward{}, false
	}
	r := g.board.score(g.captures)
	g.result = &r
	g.ended = true
	g.reward = r.Reward
	return g.reward, true
}

func (g *Game) illegal(m game.PlayerMove, err error) game.Reward {
	g.last = m
	g.turn++
	g.passed = false
	g.ended = true
	g.reward = game.Win(Opponent(m.Player))
	g.err = errors.WithMessage(err, "Illegal move")
	return g.reward
}

// Apply returns a copy of the game with the move applied. An illegal move ends the copy.
func (g *Game) Apply(m game.PlayerMove) game.State {
	retVal := g.Clone().(*Game)
	if m.Player != retVal.ToMove() && !retVal.ended {
		retVal.illegal(m, WrongPlayerError(m))
		return retVal
	}
	retVal.Step(m.Single)
	return retVal
}

// Reset resets the game to the empty board with Black to move.
func (g *Game) Reset() {
	g.board.Reset()
	g.turn = 0
	g.captures = [2]int{}
	g.ko = noPoint
	g.passed = false
	g.last = game.PlayerMove{Player: game.Player(game.None), Single: Pass}
	g.ended = false
	g.reward = game.Reward{}
	g.result = nil
	g.err = nil
}

func (g *Game) Eq(other game.State) bool {
	ot, ok := other.(*Game)
	if !ok {
		return false
	}

	// easy to check stuff first
	if g.turn != ot.turn ||
		g.captures != ot.captures ||
		g.ko != ot.ko ||
		g.passed != ot.passed ||
		g.ended != ot.ended ||
		g.reward != ot.reward {
		return false
	}

	// specifically unchecked: last, err

	return g.board.Eq(ot.board)
}

func (g *Game) Clone() game.State {
	retVal := &Game{
		board:    g.board.Clone(),
		turn:     g.turn,
		captures: g.captures,
		ko:       g.ko,
		passed:   g.passed,
		last:     g.last,
		ended:    g.ended,
		reward:   g.reward,
		err:      g.err,
	}
	if g.result != nil {
		r := *g.result
		retVal.result = &r
	}
	return retVal
}

// Format implements fmt.Formatter. %s prints the board, %v additionally prints the game's state.
func (g *Game) Format(s fmt.State, c rune) {
	board := g.Board()
	it := game.MakeIterator(board, g.width, g.width)
	defer game.ReturnIterator(g.width, g.width, it)
	switch c {
	case 's', 'v':
		for _, row := range it {
			fmt.Fprint(s, "⎢ ")
			for _, col := range row {
				fmt.Fprintf(s, "%s ", col)
			}
			fmt.Fprint(s, "⎥\n")
		}
	}
	if c == 'v' {
		fmt.Fprintf(s, "Move: %d. To move: %v. Captures: X %d, O %d\n", g.turn, g.ToMove(), g.captures[0], g.captures[1])
		if g.ko != noPoint {
			fmt.Fprintf(s, "Ko: %d\n", g.ko)
		}
		if ended, winner := g.Ended(); ended {
			fmt.Fprintf(s, "Ended. Winner: %v\n", winner)
		}
	}
}

func (g *Game) Itol(c game.Single) game.Coord { return g.itol(c) }

// Ltoi takes a coordinate and return a single
func (g *Game) Ltoi(c game.Coord) game.Single { return g.ltoi(c) }
