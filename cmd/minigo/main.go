// Command minigo plays games of mini-Go.
//
// By default two random agents play against each other. With -replay both sides play a fixed list of
// moves. With -gtp the program speaks the Go Text Protocol on stdin and stdout.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/boardrules/boardrules"
	"github.com/boardrules/boardrules/encoding/gif"
	"github.com/boardrules/boardrules/encoding/mjpeg"
	"github.com/boardrules/boardrules/game"
	"github.com/boardrules/boardrules/game/minigo"
	"github.com/boardrules/boardrules/gtp"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorgonia.org/tensor"
)

type config struct {
	size     int
	gtp      bool
	replay   string
	games    int
	maxMoves int
	seed     uint64
	passProb float64
	gif      string
	http     string
	stats    string
	examples string
	logLevel string
}

func (c config) validate() error {
	if !(minigo.Config{Width: c.size}).IsValid() {
		return errors.Errorf("Invalid board size %d", c.size)
	}
	if c.games < 1 {
		return errors.Errorf("Expected at least one game. Got %d", c.games)
	}
	if c.maxMoves < 0 {
		return errors.Errorf("Invalid move limit %d", c.maxMoves)
	}
	if c.passProb < 0 || c.passProb > 1 {
		return errors.Errorf("Invalid pass probability %v", c.passProb)
	}
	return nil
}

func parseFlags() config {
	var c config
	flag.IntVar(&c.size, "size", minigo.DefaultWidth, "width of the board")
	flag.BoolVar(&c.gtp, "gtp", false, "speak GTP on stdin and stdout")
	flag.StringVar(&c.replay, "replay", "", "comma separated moves to replay, e.g. 12,0,pass")
	flag.IntVar(&c.games, "games", 1, "number of games to play")
	flag.IntVar(&c.maxMoves, "max-moves", 200, "moves after which both players pass. 0 means no limit")
	flag.Uint64Var(&c.seed, "seed", 1, "seed of the random players")
	flag.Float64Var(&c.passProb, "pass-prob", 0.05, "probability that a random player passes")
	flag.StringVar(&c.gif, "gif", "", "write the games as an animated gif to this file")
	flag.StringVar(&c.http, "http", "", "serve the games as an mjpeg stream on /mjpeg and a websocket on /ws at this address")
	flag.StringVar(&c.stats, "stats", "", "write the win rates as csv to this file")
	flag.StringVar(&c.examples, "examples", "", "record the games and write the examples as .npy files into this directory")
	flag.StringVar(&c.logLevel, "log-level", "info", "log level")
	flag.Parse()
	return c
}

func parseMoves(a string, width int) ([]game.Single, error) {
	var retVal []game.Single
	for _, tok := range strings.Split(a, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if strings.EqualFold(tok, "pass") {
			retVal = append(retVal, minigo.Pass)
			continue
		}
		p, err := strconv.Atoi(tok)
		if err != nil {
			return nil, errors.WithMessagef(err, "Unable to parse move %q", tok)
		}
		if p == width*width {
			p = int(minigo.Pass)
		}
		retVal = append(retVal, game.Single(p))
	}
	return retVal, nil
}

func setupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return errors.WithMessage(err, "Unable to parse log level")
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return nil
}

func main() {
	conf := parseFlags()
	if err := setupLogging(conf.logLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := conf.validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	var err error
	if conf.gtp {
		err = runGTP(conf)
	} else {
		err = runArena(conf)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed")
	}
}

func runGTP(conf config) error {
	g, err := minigo.NewFromConfig(minigo.Config{Width: conf.size})
	if err != nil {
		return err
	}
	e := gtp.New(g, "minigo", "1", nil).WithLogger(log.Logger)
	e.Generate = boardrules.NewRandomMover(conf.seed, conf.passProb).Move

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if resp := e.Exec(scanner.Text()); resp != "" {
			fmt.Print(resp)
		}
		if e.Done() {
			return nil
		}
	}
	return errors.WithStack(scanner.Err())
}

func runArena(conf config) error {
	var a, b boardrules.Mover
	if conf.replay != "" {
		moves, err := parseMoves(conf.replay, conf.size)
		if err != nil {
			return err
		}
		script := &boardrules.Script{Moves: moves}
		a, b = script, script
	} else {
		a = boardrules.NewRandomMover(conf.seed, conf.passProb)
		b = boardrules.NewRandomMover(conf.seed+1, conf.passProb)
	}

	arenaConf := boardrules.DefaultConfig()
	arenaConf.Game.Width = conf.size
	arenaConf.MaxMoves = conf.maxMoves
	if conf.examples != "" {
		arenaConf.Augmenter = boardrules.Rotations(conf.size)
	}
	arena, err := boardrules.NewArena(arenaConf, a, b)
	if err != nil {
		return err
	}
	arena.WithLogger(log.Logger)

	var encs multiEncoder
	if conf.gif != "" {
		gifFile, err := os.Create(conf.gif)
		if err != nil {
			return errors.WithStack(err)
		}
		defer gifFile.Close()
		enc := gif.NewGifEncoder(600, 600)
		enc.Writer = gifFile
		encs = append(encs, enc)
	}
	if conf.http != "" {
		stream := mjpeg.NewEncoder(600, 600)
		defer stream.Close()
		ws := newWSEncoder()
		encs = append(encs, stream, ws)

		mux := http.NewServeMux()
		mux.Handle("/mjpeg", stream)
		mux.Handle("/ws", ws)
		go func() {
			log.Info().Str("addr", conf.http).Msg("serving")
			if err := http.ListenAndServe(conf.http, mux); err != nil {
				log.Error().Err(err).Msg("http server stopped")
			}
		}()
	}
	encs = append(encs, boardPrinter{os.Stdout})
	stats := boardrules.MakeStatistics()
	if conf.examples == "" {
		err = arena.Tournament(conf.games, &stats, encs)
	} else {
		err = selfPlay(arena, conf, &stats, encs)
	}
	if err != nil {
		return err
	}
	if conf.stats != "" {
		return stats.Dump(conf.stats)
	}
	return nil
}

// selfPlay plays the games, recording every position in its four rotations, and writes the examples
// as boards.npy, policies.npy and values.npy.
func selfPlay(arena *boardrules.Arena, conf config, stats *boardrules.Statistics, enc boardrules.OutputEncoder) error {
	examples, err := arena.SelfPlay(conf.games, stats, enc)
	if err != nil {
		return err
	}
	Xs, policies, values, err := boardrules.PrepareExamples(examples, conf.size, int64(conf.seed))
	if err != nil {
		return err
	}
	if err = os.MkdirAll(conf.examples, 0755); err != nil {
		return errors.WithStack(err)
	}
	for name, t := range map[string]*tensor.Dense{"boards.npy": Xs, "policies.npy": policies, "values.npy": values} {
		if err = writeNpy(filepath.Join(conf.examples, name), t); err != nil {
			return err
		}
	}
	log.Info().Int("examples", len(examples)).Str("dir", conf.examples).Msg("examples written")
	return nil
}

func writeNpy(filename string, t *tensor.Dense) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.WithStack(err)
	}
	if err = t.WriteNpy(f); err != nil {
		f.Close()
		return errors.WithMessagef(err, "Unable to write %v", filename)
	}
	return errors.WithStack(f.Close())
}
