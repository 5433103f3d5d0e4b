package gtp

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/boardrules/boardrules/game"
	"github.com/boardrules/boardrules/game/minigo"
	"github.com/pkg/errors"
)

type Command interface {
	Do(id int, args []string, e *Engine) (int, string, error)
}

type stdlib func(e *Engine) string

type stdlib2 func(e *Engine, args []string) (string, error)

func (f stdlib) Do(id int, args []string, e *Engine) (int, string, error) {
	str := f(e)
	return id, str, nil
}

func (f stdlib2) Do(id int, args []string, e *Engine) (int, string, error) {
	str, err := f(e, args)
	return id, str, err
}

func protocolVersion(e *Engine) string { return "2" }
func name(e *Engine) string            { return e.name }
func version(e *Engine) string         { return e.version }

func listCommands(e *Engine) string {
	cmds := make([]string, 0, len(e.known))
	for c := range e.known {
		cmds = append(cmds, c)
	}
	sort.Strings(cmds)
	return strings.Join(cmds, "\n")
}

func quit(e *Engine) string { e.done = true; return "" }

func clearBoard(e *Engine) string {
	e.g.Reset()
	e.history = e.history[:0]
	return ""
}

func showboard(e *Engine) string { return "\n" + strings.TrimRight(fmt.Sprintf("%v", e.g), "\n") }

func knownCommand(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"known_command\"")
	}
	if _, ok := e.known[args[0]]; ok {
		return "true", nil
	}
	return "false", nil
}

func boardSize(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"boardsize\"")
	}
	width, err := strconv.Atoi(args[0])
	if err != nil {
		return "", errors.WithMessage(err, "Unable to parse first argument of boardsize")
	}
	g, err := minigo.NewFromConfig(minigo.Config{Width: width})
	if err != nil {
		return "", errors.New("unacceptable size")
	}
	e.g = g
	e.history = e.history[:0]
	return "", nil
}

func play(e *Engine, args []string) (string, error) {
	if len(args) < 2 {
		return "", errors.New("Not enough arguments for \"play\"")
	}
	p, err := parseColour(args[0])
	if err != nil {
		return "", err
	}
	w, _ := e.g.BoardSize()
	s, err := parseVertex(args[1], w)
	if err != nil {
		return "", err
	}
	if err := e.move(game.PlayerMove{Player: p, Single: s}); err != nil {
		return "", errors.WithMessage(err, "illegal move")
	}
	return "", nil
}

func genmove(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"genmove\"")
	}
	if e.Generate == nil {
		return "", errors.New("Unable to generate moves. No generator found")
	}
	p, err := parseColour(args[0])
	if err != nil {
		return "", err
	}
	if p != e.g.ToMove() {
		return "", errors.Errorf("Unable to generate a move for %v. %v is to move", p, e.g.ToMove())
	}
	s := e.Generate(e.g)
	if err := e.move(game.PlayerMove{Player: p, Single: s}); err != nil {
		return "", errors.WithMessage(err, "Generated an illegal move")
	}
	w, _ := e.g.BoardSize()
	return vertex(s, w), nil
}

func undo(e *Engine, args []string) (string, error) {
	if len(e.history) == 0 {
		return "", errors.New("cannot undo")
	}
	last := len(e.history) - 1
	e.g = e.history[last]
	e.history = e.history[:last]
	return "", nil
}

func finalScore(e *Engine) string {
	r, ok := e.g.Result()
	if !ok {
		b, w := e.g.Score(minigo.BlackP), e.g.Score(minigo.WhiteP)
		r.Score = [2]int{int(b), int(w)}
	}
	switch d := r.Score[0] - r.Score[1]; {
	case d > 0:
		return fmt.Sprintf("B+%d", d)
	case d < 0:
		return fmt.Sprintf("W+%d", -d)
	}
	return "0"
}

func legalMoves(e *Engine) string {
	w, _ := e.g.BoardSize()
	var buf bytes.Buffer
	for i, p := range e.g.LegalMoves() {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(vertex(p, w))
	}
	return buf.String()
}

// move validates and makes the move, keeping the game before it for undo.
// An illegal move leaves the game as it was.
func (e *Engine) move(m game.PlayerMove) error {
	if err := e.g.Validate(m); err != nil {
		return err
	}
	e.history = append(e.history, e.g.Clone().(*minigo.Game))
	reward, terminated := e.g.Step(m.Single)
	e.log.Info().Str("move", fmt.Sprintf("%v", m)).Int("moveNumber", e.g.MoveNumber()).Msg("played")
	if terminated {
		e.log.Info().Ints("reward", reward[:]).Str("winner", fmt.Sprintf("%v", reward.Winner())).Msg("game ended")
	}
	return nil
}

func StandardLib() map[string]Command {
	return map[string]Command{
		"protocol_version": stdlib(protocolVersion),
		"name":             stdlib(name),
		"version":          stdlib(version),
		"list_commands":    stdlib(listCommands),
		"quit":             stdlib(quit),
		"clear_board":      stdlib(clearBoard),
		"showboard":        stdlib(showboard),
		"final_score":      stdlib(finalScore),
		"legal_moves":      stdlib(legalMoves),

		"known_command": stdlib2(knownCommand),
		"boardsize":     stdlib2(boardSize),
		"play":          stdlib2(play),
		"genmove":       stdlib2(genmove),
		"undo":          stdlib2(undo),
	}
}
