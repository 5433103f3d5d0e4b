package mjpeg

import (
	"bytes"
	"image/jpeg"
	"net/http"

	"github.com/boardrules/boardrules/encoding/internal/frame"
	"github.com/boardrules/boardrules/game"
	"github.com/mattn/go-mjpeg"
	"github.com/pkg/errors"
)

// Encoder is a structure that encodes a game state according to the boardrules.OutputEncoder interface.
// Every encoded state becomes the current frame of a motion JPEG stream that can be served over HTTP.
type Encoder struct {
	*frame.Renderer

	stream *mjpeg.Stream
	last   []byte
}

func (e *Encoder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	e.stream.ServeHTTP(w, r)
}

// NewEncoder with height and width
func NewEncoder(h, w int) *Encoder {
	return &Encoder{
		Renderer: frame.New(h, w),
		stream:   mjpeg.NewStream(),
	}
}

// Encode a game
func (enc *Encoder) Encode(ms game.MetaState) error {
	im, _, err := enc.Draw(ms)
	if err != nil {
		return err
	}
	var b bytes.Buffer
	if err = jpeg.Encode(&b, im, nil); err != nil {
		return errors.WithMessage(err, "Unable to encode frame")
	}
	enc.last = b.Bytes()
	if err = enc.stream.Update(enc.last); err != nil {
		return errors.WithMessage(err, "Unable to update stream")
	}
	return nil
}

// Last returns the last JPEG frame that was encoded.
func (enc *Encoder) Last() []byte { return enc.last }

func (enc *Encoder) Flush() error { return nil }

// Close closes the stream.
func (enc *Encoder) Close() error { return enc.stream.Close() }
