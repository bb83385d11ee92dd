package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/vovakirdan/fuelrun/internal/config"
	"github.com/vovakirdan/fuelrun/internal/core"
	"github.com/vovakirdan/fuelrun/internal/games/fuelrun"
	"github.com/vovakirdan/fuelrun/internal/platform/tui"
	"github.com/vovakirdan/fuelrun/internal/registry"
	"github.com/vovakirdan/fuelrun/internal/storage"
)

// loadConfig reads the game config and applies the difficulty preset.
// An empty preset keeps the file's difficulty settings.
func loadConfig(path, preset string) (config.FuelRunConfig, error) {
	cfg, err := config.LoadFuelRun(path)
	if err != nil {
		return cfg, err
	}
	if preset != "" {
		p, err := config.ParsePreset(preset)
		if err != nil {
			return cfg, err
		}
		config.ApplyFuelRunPreset(&cfg, p)
	}
	return cfg, nil
}

// setupGame returns a hook that hands the config and logger to every
// Fuel Run game the platform creates.
func setupGame(cfg config.FuelRunConfig) func(registry.Game) {
	return func(g registry.Game) {
		if fr, ok := g.(*fuelrun.Game); ok {
			fr.Configure(cfg)
			fr.SetLogger(logger)
		}
	}
}

// runtimeConfig builds the runtime config from the global flags and the
// terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the run database, or returns nil with a warning so play
// can go on without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database, runs will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// seedOrNow returns the --seed flag, or a time-based seed when it is unset.
func seedOrNow() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

func unknownGame(id string) error {
	return fmt.Errorf("unknown game %q, run 'fuelrun list' to see available variants", id)
}

// recorder converts a possibly nil store into a run recorder.
func recorder(store *storage.Store) tui.ScoreRecorder {
	if store == nil {
		return nil
	}
	return store
}

// openOutput opens path for writing. "-" is stdout and "" is no output at all;
// neither needs closing.
func openOutput(path string) (io.Writer, func() error, error) {
	noop := func() error { return nil }
	switch path {
	case "":
		return nil, noop, nil
	case "-":
		return os.Stdout, noop, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, noop, err
	}
	return f, f.Close, nil
}
