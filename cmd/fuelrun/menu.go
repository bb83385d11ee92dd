package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fuelrun/internal/platform/tui"
	"github.com/vovakirdan/fuelrun/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
After a run ends, you return to the menu to fly again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Best runs
  Q            - Quit

Examples:
  fuelrun menu
  fuelrun menu --fps 30
  fuelrun menu --db ./runs.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}
	setup := setupGame(gameCfg)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", menuResult.GameID, "error", err)
			continue
		}
		setup(game)

		// Each run from the menu gets a fresh seed unless one was pinned.
		runCfg := cfg
		runCfg.Seed = seedOrNow()
		if err := tui.Run(game, recorder(store), logger, runCfg); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}
