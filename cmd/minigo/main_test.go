package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/boardrules/boardrules"
	"github.com/boardrules/boardrules/game"
	"github.com/boardrules/boardrules/game/minigo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoves(t *testing.T) {
	moves, err := parseMoves("12, 0,pass,25", 5)
	require.NoError(t, err)
	assert.Equal(t, []game.Single{12, 0, minigo.Pass, minigo.Pass}, moves)

	_, err = parseMoves("12,x", 5)
	assert.Error(t, err)
}

func TestSelfPlay(t *testing.T) {
	conf := config{
		size:     minigo.DefaultWidth,
		games:    2,
		seed:     1,
		examples: t.TempDir(),
	}
	arenaConf := boardrules.DefaultConfig()
	arenaConf.Augmenter = boardrules.Rotations(conf.size)
	script := &boardrules.Script{Moves: []game.Single{12, 0}}
	arena, err := boardrules.NewArena(arenaConf, script, script)
	require.NoError(t, err)

	var buf bytes.Buffer
	stats := boardrules.MakeStatistics()
	require.NoError(t, selfPlay(arena, conf, &stats, boardPrinter{&buf}))

	// one final board per game
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("Ended.")))
	for _, name := range []string{"boards.npy", "policies.npy", "values.npy"} {
		fi, err := os.Stat(filepath.Join(conf.examples, name))
		require.NoError(t, err, name)
		assert.NotZero(t, fi.Size(), name)
	}
}
