package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/boardrules/boardrules"
	"github.com/boardrules/boardrules/game"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type info struct {
	Game   int         `json:"game"`
	Winner game.Player `json:"winner"`
	Black  float64     `json:"black"`
	White  float64     `json:"white"`
}

type move struct {
	Game   int         `json:"game"`
	Player game.Player `json:"player"`
	Single game.Single `json:"single"`
}

// wsEncoder streams the moves and results of the games to websocket clients.
// Messages are dropped when no client keeps up.
type wsEncoder struct {
	msgs chan interface{}
}

var upgrader = websocket.Upgrader{} // use default options

func newWSEncoder() *wsEncoder {
	return &wsEncoder{msgs: make(chan interface{}, 256)}
}

func (enc *wsEncoder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("upgrade")
		return
	}
	defer c.Close()
	for {
		select {
		case msg := <-enc.msgs:
			b, err := json.Marshal(msg)
			if err != nil {
				log.Warn().Err(err).Msg("marshal")
				continue
			}
			if err = c.WriteMessage(websocket.TextMessage, b); err != nil {
				log.Warn().Err(err).Msg("write")
				return
			}
		case <-r.Context().Done():
			return
		}
	}
}

func (enc *wsEncoder) send(msg interface{}) {
	select {
	case enc.msgs <- msg:
	default:
	}
}

// Encode a game
func (enc *wsEncoder) Encode(ms game.MetaState) error {
	g := ms.State()
	if g.MoveNumber() > 0 {
		last := g.LastMove()
		enc.send(move{Game: ms.GameNumber(), Player: last.Player, Single: last.Single})
	}
	if ended, winner := g.Ended(); ended {
		enc.send(info{
			Game:   ms.GameNumber(),
			Winner: winner,
			Black:  ms.Score(game.Player(game.Black)),
			White:  ms.Score(game.Player(game.White)),
		})
	}
	return nil
}

func (enc *wsEncoder) Flush() error { return nil }

// boardPrinter writes the final board of every game.
type boardPrinter struct{ w io.Writer }

func (p boardPrinter) Encode(ms game.MetaState) error {
	if ended, _ := ms.State().Ended(); !ended {
		return nil
	}
	_, err := fmt.Fprintf(p.w, "%v\n", ms.State())
	return errors.WithStack(err)
}

func (p boardPrinter) Flush() error { return nil }

// multiEncoder fans the states out to several encoders.
type multiEncoder []boardrules.OutputEncoder

func (m multiEncoder) Encode(ms game.MetaState) error {
	for _, enc := range m {
		if err := enc.Encode(ms); err != nil {
			return err
		}
	}
	return nil
}

func (m multiEncoder) Flush() error {
	for _, enc := range m {
		if err := enc.Flush(); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
