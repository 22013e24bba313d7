package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/icco/filler"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

var opts struct {
	Seed    uint64         `short:"s" long:"seed" description:"Seed for reproducible boards (0 picks one at random)"`
	LogFile flags.Filename `short:"l" long:"log-file" description:"Write debug logs to this file"`
	NoHints bool           `long:"no-hints" description:"Hide how many cells each color would capture"`
}

func main() {
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	log, err := newLogger(string(opts.LogFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not open log: %+v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	// The board owns the terminal, so the engine logs wherever we do.
	filler.SetLogger(log)

	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Infow("Starting up", "seed", seed)

	p := tea.NewProgram(
		initialModel(rand.New(rand.NewPCG(seed, seed)), !opts.NoHints, log),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		log.Errorw("program failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func newLogger(path string) (*zap.SugaredLogger, error) {
	if path == "" {
		return zap.NewNop().Sugar(), nil
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return l.Sugar(), nil
}
