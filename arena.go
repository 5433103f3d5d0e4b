package boardrules

import (
	"fmt"

	"github.com/boardrules/boardrules/game"
	"github.com/boardrules/boardrules/game/minigo"
	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Arena plays games between two agents. Agent A plays Black in even numbered games, and White in odd numbered ones.
type Arena struct {
	game *minigo.Game
	A, B *Agent

	// state
	currentPlayer *Agent
	maxMoves      int
	logger        zerolog.Logger

	// extensions
	enc OutputEncoder
	aug Augmenter

	name       string
	gameNumber int // which game is this in
}

// MakeArena makes an arena given a config and the movers of both agents.
func MakeArena(conf Config, a, b Mover) (Arena, error) {
	if !conf.IsValid() {
		return Arena{}, errors.Errorf("Invalid config %+v", conf)
	}
	g, err := minigo.NewFromConfig(conf.Game)
	if err != nil {
		return Arena{}, err
	}
	name := conf.Name
	if name == "" {
		name = "UNKNOWN GAME"
	}
	return Arena{
		game:     g,
		A:        NewAgent("A", a),
		B:        NewAgent("B", b),
		maxMoves: conf.MaxMoves,
		logger:   zerolog.Nop(),
		enc:      conf.OutputEncoder,
		aug:      conf.Augmenter,
		name:     name,
	}, nil
}

func NewArena(conf Config, a, b Mover) (*Arena, error) {
	ar, err := MakeArena(conf, a, b)
	if err != nil {
		return nil, err
	}
	return &ar, nil
}

// WithLogger sets the logger that the arena reports games to.
func (a *Arena) WithLogger(l zerolog.Logger) *Arena {
	a.logger = l
	return a
}

// Rewinder is a Mover that plays its moves over again in every game.
type Rewinder interface {
	Rewind()
}

// Play plays a game, and returns a winner. If it is a draw, the returned colour is None.
// When record is true, an example is made of every position in which a placement or pass was chosen.
// A nil encoder or augmenter falls back to the one in the config of the arena.
// The game is left in its final state until the next call to Play.
func (a *Arena) Play(record bool, enc OutputEncoder, aug Augmenter) (winner game.Player, examples []Example, err error) {
	if enc == nil {
		enc = a.enc
	}
	if aug == nil {
		aug = a.aug
	}
	for _, m := range []Mover{a.A.Mover, a.B.Mover} {
		if r, ok := m.(Rewinder); ok {
			r.Rewind()
		}
	}
	a.game.Reset()
	if a.gameNumber%2 == 0 {
		a.A.Player = minigo.BlackP
		a.B.Player = minigo.WhiteP
		a.currentPlayer = a.A
	} else {
		a.A.Player = minigo.WhiteP
		a.B.Player = minigo.BlackP
		a.currentPlayer = a.B
	}
	log := a.logger.With().Int("game", a.gameNumber).Logger()
	log.Debug().Bool("record", record).Msg("playing")

	if enc != nil {
		if err = enc.Encode(a); err != nil {
			return winner, nil, errors.WithMessage(err, "Unable to encode the initial state")
		}
	}

	var reward game.Reward
	var ended bool
	for !ended {
		forced := a.maxMoves > 0 && a.game.MoveNumber() >= a.maxMoves
		var policy []float32
		if p, ok := a.currentPlayer.Mover.(Policier); ok && record && !forced {
			if policy = p.Policy(a.game); !validPolicies(policy) {
				policy = nil
			}
		}

		best := minigo.Pass
		if !forced {
			best = a.currentPlayer.Move(a.game)
		}
		log.Debug().Str("player", fmt.Sprintf("%v", a.currentPlayer.Player)).Int32("move", int32(best)).Msg("move")

		if record {
			if policy == nil {
				policy = a.oneHot(best)
			}
			ex := Example{
				Board:  a.game.Features(),
				Policy: policy,
				// The value is filled in once the game is over. For now it holds the colour of the player to move
				Value: float32(a.currentPlayer.Player),
			}
			if aug != nil {
				examples = append(examples, aug(ex)...)
			} else {
				examples = append(examples, ex)
			}
		}

		reward, ended = a.game.Step(best)
		a.switchPlayer()
		if enc != nil {
			if err = enc.Encode(a); err != nil {
				return winner, nil, errors.WithMessage(err, "Unable to encode state")
			}
		}
	}
	winner = reward.Winner()
	if err := a.game.Err(); err != nil {
		log.Warn().Err(err).Msg("game ended by an illegal move")
	}

	for i := range examples {
		switch {
		case winner == game.Player(game.None):
			examples[i].Value = 0
		case examples[i].Value == float32(winner):
			examples[i].Value = 1
		default:
			examples[i].Value = -1
		}
	}
	switch {
	case winner == game.Player(game.None):
		a.A.Draw++
		a.B.Draw++
	case winner == a.A.Player:
		a.A.Wins++
		a.B.Loss++
	case winner == a.B.Player:
		a.B.Wins++
		a.A.Loss++
	}
	log.Info().
		Str("winner", fmt.Sprintf("%v", winner)).
		Ints("reward", reward[:]).
		Int("moves", a.game.MoveNumber()).
		Msg("game over")
	a.gameNumber++
	return winner, examples, nil
}

// Tournament plays n games, updating the statistics after each, and flushes the encoder at the end.
// A nil encoder falls back to the one in the config of the arena.
func (a *Arena) Tournament(n int, stats *Statistics, enc OutputEncoder) error {
	_, err := a.tournament(n, false, stats, enc)
	return err
}

// SelfPlay is a Tournament that records the examples of every game.
func (a *Arena) SelfPlay(n int, stats *Statistics, enc OutputEncoder) ([]Example, error) {
	return a.tournament(n, true, stats, enc)
}

func (a *Arena) tournament(n int, record bool, stats *Statistics, enc OutputEncoder) (examples []Example, err error) {
	if enc == nil {
		enc = a.enc
	}
	a.A.resetStats()
	a.B.resetStats()
	for i := 0; i < n; i++ {
		_, ex, err := a.Play(record, enc, nil)
		if err != nil {
			return examples, err
		}
		examples = append(examples, ex...)
		if stats != nil {
			stats.Update(a.A)
			stats.Update(a.B)
		}
	}
	a.logger.Info().
		Float32("aWins", a.A.Wins).Float32("aLoss", a.A.Loss).Float32("aDraw", a.A.Draw).
		Float32("bWins", a.B.Wins).Float32("bLoss", a.B.Loss).Float32("bDraw", a.B.Draw).
		Msg("tournament over")
	if enc != nil {
		err = enc.Flush()
	}
	return examples, err
}

// oneHot puts all the weight of a policy on the move.
func (a *Arena) oneHot(best game.Single) []float32 {
	retVal := make([]float32, a.game.ActionSpace())
	switch {
	case best.IsPass():
		retVal[len(retVal)-1] = 1
	case best >= 0 && int(best) < len(retVal)-1:
		retVal[best] = 1
	}
	return retVal
}

func (a *Arena) GameNumber() int             { return a.gameNumber }
func (a *Arena) Name() string                { return a.name }
func (a *Arena) Score(p game.Player) float64 { return float64(a.game.Score(p)) }
func (a *Arena) State() game.State           { return a.game }

// Game returns the game being played.
func (a *Arena) Game() *minigo.Game { return a.game }

func validPolicies(policy []float32) bool {
	for _, v := range policy {
		if math32.IsInf(v, 0) {
			return false
		}
		if math32.IsNaN(v) {
			return false
		}
	}
	return true
}

func (a *Arena) switchPlayer() {
	switch a.currentPlayer {
	case a.A:
		a.currentPlayer = a.B
	case a.B:
		a.currentPlayer = a.A
	}
}
