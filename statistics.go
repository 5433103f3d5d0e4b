package boardrules

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Statistics records the running win rate of every agent after every game of a tournament.
type Statistics struct {
	Creation []string
	Wins     map[string][]float32
	Losses   map[string][]float32
	Draws    map[string][]float32
}

func MakeStatistics() Statistics {
	return Statistics{
		Creation: make([]string, 0, 64),
		Wins:     make(map[string][]float32),
		Losses:   make(map[string][]float32),
		Draws:    make(map[string][]float32),
	}
}

// Update records the running win rate of the agent.
func (s *Statistics) Update(A *Agent) {
	A.Lock()
	defer A.Unlock()
	aname := A.Name()

	if _, ok := s.Wins[aname]; !ok {
		s.Creation = append(s.Creation, aname)
	}

	s.Wins[aname] = append(s.Wins[aname], A.Wins)
	s.Losses[aname] = append(s.Losses[aname], A.Loss)
	s.Draws[aname] = append(s.Draws[aname], A.Draw)
}

// Write writes the win rates as CSV: a header with the agents' names, then one row per game.
func (s *Statistics) Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(s.Creation); err != nil {
		return errors.WithStack(err)
	}
	var rows int
	for _, agent := range s.Creation {
		if len(s.Wins[agent]) > rows {
			rows = len(s.Wins[agent])
		}
	}
	records := make([][]string, rows)
	for j := range records {
		record := make([]string, len(s.Creation))
		for i, agent := range s.Creation {
			if j >= len(s.Wins[agent]) {
				continue
			}
			win := s.Wins[agent][j]
			winRate := win / (win + s.Losses[agent][j] + s.Draws[agent][j])
			record[i] = strconv.FormatFloat(float64(winRate), 'f', 3, 32)
		}
		records[j] = record
	}
	if err := cw.WriteAll(records); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// Dump writes the statistics into the named file.
func (s *Statistics) Dump(filename string) error {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()
	return s.Write(f)
}
