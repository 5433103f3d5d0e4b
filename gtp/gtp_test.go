package gtp

import (
	"testing"

	"github.com/boardrules/boardrules/game"
	"github.com/boardrules/boardrules/game/minigo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_General(t *testing.T) {
	assert := assert.New(t)
	e := New(nil, "xx", "1", nil)
	var x string

	ch, ret := e.Start()
	ch <- "version"
	x = <-ret
	assert.Equal("= 1\n\n", x)

	ch <- "known_command hello"
	x = <-ret
	assert.Equal("= false\n\n", x)

	ch <- "known_command name"
	x = <-ret
	assert.Equal("= true\n\n", x)

	ch <- "completelyUnheardOfCommand xxx"
	x = <-ret
	assert.Equal("? Unknown command \"completelyunheardofcommand\"\n\n", x)

	ch <- "3 protocol_version # with a comment"
	x = <-ret
	assert.Equal("= 3 2\n\n", x)

	ch <- "quit"
	x = <-ret
	assert.Equal("= \n\n", x)
	_, open := <-ret
	assert.False(open, "the output is closed after quit")
}

func TestExecQuit(t *testing.T) {
	e := New(nil, "xx", "1", nil)
	assert.Equal(t, "= xx\n\n", e.Exec("name"))
	assert.False(t, e.Done())
	assert.Equal(t, "= \n\n", e.Exec("quit"))
	assert.True(t, e.Done())
}

func TestPlay(t *testing.T) {
	assert := assert.New(t)
	e := New(nil, "xx", "1", nil)

	assert.Equal("= \n\n", e.Exec("play b c3"))
	assert.Equal(minigo.Black, e.State().Board()[12])
	assert.Equal("= B+24\n\n", e.Exec("final_score"))

	assert.Equal("? illegal move: Unable to make Black@7 - not the player to move\n\n", e.Exec("play black c4"))
	assert.Equal("? illegal move: Unable to make White@12 - point is occupied\n\n", e.Exec("play w c3"))
	assert.Equal(1, e.State().MoveNumber(), "illegal moves are refused and leave the game as it was")
	ended, _ := e.State().Ended()
	assert.False(ended)

	assert.Equal("? Invalid vertex \"z9\"\n\n", e.Exec("play w z9"))
	assert.Equal("? Invalid color \"red\"\n\n", e.Exec("play red a1"))
	assert.Equal("? Not enough arguments for \"play\"\n\n", e.Exec("play w"))

	assert.Equal("= \n\n", e.Exec("2 play w A5"))
	assert.Equal(minigo.White, e.State().Board()[0])
	assert.Equal("= 0\n\n", e.Exec("final_score"), "every empty point is reached by both colours")
}

func TestUndo(t *testing.T) {
	assert := assert.New(t)
	e := New(nil, "xx", "1", nil)

	assert.Equal("? cannot undo\n\n", e.Exec("undo"))
	e.Exec("play b c3")
	e.Exec("play w a5")
	assert.Equal("= \n\n", e.Exec("undo"))
	assert.Equal(1, e.State().MoveNumber())
	assert.Equal(minigo.None, e.State().Board()[0])
	assert.Equal(minigo.WhiteP, e.State().ToMove())

	e.Exec("clear_board")
	assert.Equal(0, e.State().MoveNumber())
	assert.Equal("? cannot undo\n\n", e.Exec("undo"))
}

func TestPassPass(t *testing.T) {
	assert := assert.New(t)
	e := New(nil, "xx", "1", nil)
	e.Exec("play b pass")
	e.Exec("play w pass")
	ended, winner := e.State().Ended()
	assert.True(ended)
	assert.Equal(game.Player(game.None), winner)
	assert.Equal("= 0\n\n", e.Exec("final_score"))
	assert.Equal("? illegal move: Unable to make Black@12 - the game has ended\n\n", e.Exec("play b c3"))
}

func TestBoardsize(t *testing.T) {
	assert := assert.New(t)
	e := New(nil, "xx", "1", nil)

	assert.Equal("? unacceptable size\n\n", e.Exec("boardsize 25"))
	assert.Equal("= \n\n", e.Exec("boardsize 2"))
	w, h := e.State().BoardSize()
	assert.Equal(2, w)
	assert.Equal(2, h)

	e.Exec("play b a1")
	assert.Equal("= A2 B2 B1\n\n", e.Exec("legal_moves"))
	assert.Equal("= \n⎢ · · ⎥\n⎢ X · ⎥\nMove: 1. To move: White. Captures: X 0, O 0\n\n", e.Exec("showboard"))
}

func TestGenmove(t *testing.T) {
	assert := assert.New(t)
	e := New(nil, "xx", "1", nil)
	assert.Equal("? Unable to generate moves. No generator found\n\n", e.Exec("genmove b"))

	e.Generate = func(g *minigo.Game) game.Single {
		moves := g.LegalMoves()
		if len(moves) == 0 {
			return minigo.Pass
		}
		return moves[len(moves)-1]
	}
	assert.Equal("= E1\n\n", e.Exec("genmove b"))
	assert.Equal("? Unable to generate a move for Black. White is to move\n\n", e.Exec("genmove b"))
	assert.Equal("= D1\n\n", e.Exec("genmove w"))
	assert.Equal(2, e.State().MoveNumber())
}

func TestVertex(t *testing.T) {
	var vertexTests = []struct {
		s string
		p game.Single
	}{
		{"a5", 0},
		{"e5", 4},
		{"c3", 12},
		{"a1", 20},
		{"e1", 24},
		{"pass", minigo.Pass},
	}
	for _, vt := range vertexTests {
		p, err := parseVertex(vt.s, 5)
		require.NoError(t, err, vt.s)
		assert.Equal(t, vt.p, p, vt.s)
	}
	assert.Equal(t, "J1", vertex(80, 9), "there is no I column")
	_, err := parseVertex("i1", 9)
	assert.Error(t, err)
	_, err = parseVertex("a0", 5)
	assert.Error(t, err)
}
