package boardrules

import (
	"sync"

	"github.com/boardrules/boardrules/game"
	"github.com/boardrules/boardrules/game/minigo"
	"golang.org/x/exp/rand"
)

// An Agent is a player, scripted or random
type Agent struct {
	Mover
	Player game.Player

	// Statistics
	Wins float32
	Loss float32
	Draw float32
	sync.Mutex

	name string
}

// NewAgent creates an agent that plays the moves of the mover.
func NewAgent(name string, m Mover) *Agent {
	return &Agent{
		Mover: m,
		name:  name,
	}
}

func (a *Agent) Name() string { return a.name }

func (a *Agent) resetStats() {
	a.Lock()
	a.Wins = 0
	a.Loss = 0
	a.Draw = 0
	a.Unlock()
}

// RandomMover plays uniformly among the legal placements. It passes with probability PassProb,
// and whenever there is no legal placement.
type RandomMover struct {
	PassProb float64
	r        *rand.Rand
}

// NewRandomMover creates a random mover. Movers made with the same seed make the same moves.
func NewRandomMover(seed uint64, passProb float64) *RandomMover {
	return &RandomMover{
		PassProb: passProb,
		r:        rand.New(rand.NewSource(seed)),
	}
}

func (m *RandomMover) Move(g *minigo.Game) game.Single {
	legal := g.LegalMoves()
	if len(legal) == 0 || m.r.Float64() < m.PassProb {
		return minigo.Pass
	}
	return legal[m.r.Intn(len(legal))]
}

// Policy returns the distribution that Move draws from.
func (m *RandomMover) Policy(g *minigo.Game) []float32 {
	retVal := make([]float32, g.ActionSpace())
	legal := g.LegalMoves()
	pass := len(retVal) - 1
	if len(legal) == 0 {
		retVal[pass] = 1
		return retVal
	}
	p := float32(1-m.PassProb) / float32(len(legal))
	for _, s := range legal {
		retVal[s] = p
	}
	retVal[pass] = float32(m.PassProb)
	return retVal
}

// Script replays a fixed list of moves, then passes.
type Script struct {
	Moves []game.Single
	i     int
}

func (s *Script) Move(g *minigo.Game) game.Single {
	if s.i >= len(s.Moves) {
		return minigo.Pass
	}
	m := s.Moves[s.i]
	s.i++
	return m
}

// Rewind makes the script start over.
func (s *Script) Rewind() { s.i = 0 }

// Policier is a Mover that can report the distribution it draws its moves from.
type Policier interface {
	Policy(g *minigo.Game) []float32
}

// Policy puts all the weight on the next move of the script.
func (s *Script) Policy(g *minigo.Game) []float32 {
	retVal := make([]float32, g.ActionSpace())
	next := game.Single(len(retVal) - 1)
	if s.i < len(s.Moves) && !s.Moves[s.i].IsPass() {
		next = s.Moves[s.i]
	}
	if next >= 0 && int(next) < len(retVal) {
		retVal[next] = 1
	}
	return retVal
}
