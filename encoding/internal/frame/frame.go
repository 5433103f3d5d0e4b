// package frame draws a game into an image, for the encoders that turn games into animations.
package frame

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	"github.com/boardrules/boardrules/game"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

var regular *truetype.Font

const (
	dpi             = 144.0
	fontsize        = 12.0
	lineheight      = 1.2
	dummyLongString = `Game Number: 10000, Move: 1000`

	// EndDelay is how long the last frame of a game is shown for, in hundredths of a second.
	EndDelay = 300
)

func init() {
	var err error
	if regular, err = truetype.Parse(gomono.TTF); err != nil {
		panic(err)
	}
}

// Palette is the palette of the frames.
var Palette = color.Palette{
	color.Gray{0},
	color.Gray{253},
}

// Renderer draws frames. The size of the frames is fixed by the first state it draws.
type Renderer struct {
	H, W int
	font.Drawer

	maxH, maxW  int // maxHeight and maxWidth
	padH, padW  int // padding so everything don't start at the topleft
	initialized bool
}

// New creates a renderer whose frames are at most h by w pixels.
func New(h, w int) *Renderer {
	return &Renderer{
		H:    -1,
		W:    -1,
		maxH: h,
		maxW: w,
		padH: 10,
		padW: 10,

		Drawer: font.Drawer{
			Src: image.Black,
		},
	}
}

func lineHeight() int { return int(math.Ceil(fontsize * lineheight * dpi / 72)) }

func (r *Renderer) setup(lines []string) {
	r.Drawer.Face = truetype.NewFace(regular, &truetype.Options{
		Size:    fontsize,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})

	// first calculate how long the max length will be
	maxW := font.MeasureString(r.Face, dummyLongString).Ceil()
	for _, l := range lines {
		if w := font.MeasureString(r.Face, l).Ceil(); w > maxW {
			maxW = w
		}
	}
	dy := lineHeight()
	w := maxW + 2*r.padW
	h := (len(lines)+4)*dy + 2*r.padH // + 4 is for the extra lines: game name, game number, score and winner

	if w >= r.maxW {
		w = r.maxW
		r.padW = 0
	}
	if h >= r.maxH {
		h = r.maxH
		r.padH = 0
	}
	r.H = h
	r.W = w
	r.initialized = true
}

// Draw draws the state of the game. It returns the frame, and how long it should be shown for
// in hundredths of a second.
func (r *Renderer) Draw(ms game.MetaState) (*image.Paletted, int, error) {
	g := ms.State()
	if g == nil {
		return nil, 0, errors.Errorf("Game %d of %q has no state", ms.GameNumber(), ms.Name())
	}
	text := strings.Split(strings.TrimRight(fmt.Sprintf("%s", g), "\n"), "\n")
	if !r.initialized {
		r.setup(text)
	}

	im := image.NewPaletted(image.Rect(0, 0, r.W, r.H), Palette)
	draw.Draw(im, im.Bounds(), image.White, image.Point{}, draw.Src)
	r.Dst = im

	dy := lineHeight()
	y := r.padH + dy
	line := func(s string) {
		r.Dot = fixed.P(r.padW, y)
		r.DrawString(s)
		y += dy
	}
	for _, s := range text {
		line(s)
	}
	line(ms.Name())
	line(fmt.Sprintf("Game Number: %d, Move: %d", ms.GameNumber(), g.MoveNumber()))
	line(fmt.Sprintf("Score: X %v, O %v", ms.Score(game.Player(game.Black)), ms.Score(game.Player(game.White))))

	var delay int
	if ended, winner := g.Ended(); ended {
		delay = EndDelay
		if winner == game.Player(game.None) {
			line("Draw")
		} else {
			line(fmt.Sprintf("Winner: %v", winner))
		}
	}
	return im, delay, nil
}
