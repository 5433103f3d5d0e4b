package gif

import (
	"image/gif"
	"io"

	"github.com/boardrules/boardrules/encoding/internal/frame"
	"github.com/boardrules/boardrules/game"
	"github.com/pkg/errors"
)

// Encoder is a structure that encodes a game state according to the boardrules.OutputEncoder interface
type Encoder struct {
	*frame.Renderer
	io.Writer

	out *gif.GIF
}

// NewGifEncoder with height and width
func NewGifEncoder(h, w int) *Encoder {
	return &Encoder{
		Renderer: frame.New(h, w),
		out:      &gif.GIF{LoopCount: -1},
	}
}

// Encode a game
func (enc *Encoder) Encode(ms game.MetaState) error {
	im, delay, err := enc.Draw(ms)
	if err != nil {
		return err
	}
	enc.out.Image = append(enc.out.Image, im)
	enc.out.Delay = append(enc.out.Delay, delay)
	return nil
}

// Frames returns the number of frames encoded so far.
func (enc *Encoder) Frames() int { return len(enc.out.Image) }

// Flush writes the gif into the writer
func (enc *Encoder) Flush() error {
	if enc.Writer == nil {
		return errors.New("No writer to flush the gif to")
	}
	if len(enc.out.Image) == 0 {
		return errors.New("Nothing to flush: no frames were encoded")
	}
	return errors.WithStack(gif.EncodeAll(enc.Writer, enc.out))
}
