// package gtp implements a Go Text Protocol front end for a minigo game.
//
// See https://www.lysator.liu.se/%7Egunnar/gtp/gtp2-spec-draft2/gtp2-spec.html
package gtp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/boardrules/boardrules/game"
	"github.com/boardrules/boardrules/game/minigo"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Generator picks a move for the player to move.
type Generator func(g *minigo.Game) game.Single

// Engine is a GTP session. It owns exactly one game.
type Engine struct {
	g       *minigo.Game
	history []*minigo.Game // games before each move, for undo

	known map[string]Command

	ch   chan string
	ret  chan string
	done bool

	Generate      Generator
	name, version string
	log           zerolog.Logger
}

// New creates a new engine. If g is nil, a game on the default board is created.
// If known is nil, the standard library of commands is used.
func New(g *minigo.Game, name, version string, known map[string]Command) *Engine {
	if g == nil {
		g = minigo.New(minigo.DefaultWidth)
	}
	if known == nil {
		known = StandardLib()
	}
	return &Engine{
		g:       g,
		known:   known,
		name:    name,
		version: version,
		log:     zerolog.Nop(),
	}
}

// WithLogger sets the logger that the session logs commands and game events to.
func (e *Engine) WithLogger(l zerolog.Logger) *Engine {
	e.log = l
	return e
}

// Start starts the command loop. Commands are sent on input, and responses are read from output.
// The output channel is closed after the response to "quit".
func (e *Engine) Start() (input chan<- string, output <-chan string) {
	e.ch = make(chan string)
	e.ret = make(chan string)
	go e.start()
	return e.ch, e.ret
}

// Done returns true once "quit" has been executed by Exec.
// It must not be called while the loop started by Start is running: that loop owns the engine,
// and its callers learn of "quit" by the output channel being closed.
func (e *Engine) Done() bool { return e.done }

// State returns the game of the session.
func (e *Engine) State() *minigo.Game { return e.g }

// Exec runs a single command line and returns the response.
// An empty string is returned for lines that have no command.
func (e *Engine) Exec(cmd string) string {
	id, x, args, err := e.parse(cmd)
	if x == nil && err == nil {
		return ""
	}
	if err != nil {
		e.log.Debug().Str("cmd", cmd).Err(err).Msg("unable to parse command")
		return handleErr(id, err)
	}
	id, result, err := x.Do(id, args, e)
	if err != nil {
		e.log.Debug().Str("cmd", cmd).Err(err).Msg("command failed")
	}
	return handleResult(id, result, err)
}

func (e *Engine) start() {
	for cmd := range e.ch {
		resp := e.Exec(cmd)
		if resp == "" {
			continue
		}
		e.ret <- resp
		if e.done {
			close(e.ret)
			return
		}
	}
	close(e.ret)
}

// parse parses a command line. The id is optional; -1 is returned when there is none.
func (e *Engine) parse(cmd string) (id int, x Command, args []string, err error) {
	cmd = preprocess(cmd)
	tokens := strings.Fields(cmd)
	if len(tokens) == 0 {
		return -1, nil, nil, nil
	}
	if id, err = strconv.Atoi(tokens[0]); err == nil {
		// we've consumed ID
		tokens = tokens[1:]
	} else {
		// set err to nil because ID is optional
		err = nil
		id = -1
	}

	if len(tokens) == 0 {
		return id, nil, nil, nil // GNUGo does nothing when there are no tokens left. An ID may be passed in but it'll be ignored
	}

	var ok bool
	if x, ok = e.known[tokens[0]]; !ok {
		return id, nil, nil, errors.Errorf("Unknown command %q", tokens[0])
	}
	if len(tokens) > 1 {
		args = tokens[1:]
	}
	return
}

// preprocess drops comments and control characters, and lowercases the line.
func preprocess(a string) string {
	if i := strings.IndexByte(a, '#'); i >= 0 {
		a = a[:i]
	}
	a = strings.Map(func(r rune) rune {
		switch {
		case r == '\t':
			return ' '
		case r < 32 || r == 127:
			return -1
		}
		return r
	}, a)
	return strings.ToLower(strings.TrimSpace(a))
}

func handleErr(id int, err error) string {
	if id != -1 {
		return fmt.Sprintf("? %d %v\n\n", id, err)
	}
	return fmt.Sprintf("? %v\n\n", err)
}

func handleResult(id int, result string, err error) string {
	if err != nil {
		return handleErr(id, err)
	}

	if id != -1 {
		return fmt.Sprintf("= %d %v\n\n", id, result)
	}
	return fmt.Sprintf("= %v\n\n", result)
}
