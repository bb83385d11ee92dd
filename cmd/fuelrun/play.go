package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fuelrun/internal/platform/tui"
	"github.com/vovakirdan/fuelrun/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start playing the specified variant.

Controls:
  A/D, Left/Right  - Turn
  Space/K          - Fire (and thrust)
  P                - Pause
  R                - Reset the run
  Esc              - Leave (when paused or out of the run)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Screenshot to ~/.fuelrun/screenshots

Difficulty options:
  easy   - More fuel, slower enemy waves, progression from zero
  normal - Start at 30% difficulty, progresses to max
  hard   - Less fuel, waves ramp faster, starts at 70%
  fixed  - No progression, stays at config's initial level

Examples:
  fuelrun play fuelrun
  fuelrun play fuelrun_scatter --difficulty hard
  fuelrun play fuelrun --config ./my-fuelrun.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return unknownGame(gameID)
	}

	gameCfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	setupGame(gameCfg)(game)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Debug("starting game", "game", gameID, "fps", flagFPS, "seed", flagSeed)
	if err := tui.Run(game, recorder(store), logger, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
