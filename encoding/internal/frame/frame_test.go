package frame

import (
	"testing"

	"github.com/boardrules/boardrules/game"
	"github.com/boardrules/boardrules/game/minigo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type meta struct {
	g *minigo.Game
}

func (m meta) Name() string                { return "test" }
func (m meta) GameNumber() int             { return 1 }
func (m meta) Score(p game.Player) float64 { return float64(m.g.Score(p)) }
func (m meta) State() game.State           { return m.g }

func TestRenderer_Draw(t *testing.T) {
	g := minigo.New(minigo.DefaultWidth)
	r := New(1000, 1000)

	im, delay, err := r.Draw(meta{g})
	require.NoError(t, err)
	assert.Equal(t, 0, delay)
	assert.Equal(t, r.W, im.Bounds().Dx())
	assert.Equal(t, r.H, im.Bounds().Dy())
	assert.True(t, r.W > 0 && r.W <= 1000)

	// the size is fixed by the first frame
	w, h := r.W, r.H
	g.Step(minigo.Pass)
	g.Step(minigo.Pass)
	im, delay, err = r.Draw(meta{g})
	require.NoError(t, err)
	assert.Equal(t, EndDelay, delay)
	assert.Equal(t, w, im.Bounds().Dx())
	assert.Equal(t, h, im.Bounds().Dy())
}

func TestRenderer_Clamped(t *testing.T) {
	r := New(50, 60)
	im, _, err := r.Draw(meta{minigo.New(minigo.DefaultWidth)})
	require.NoError(t, err)
	assert.Equal(t, 60, im.Bounds().Dx())
	assert.Equal(t, 50, im.Bounds().Dy())
}
