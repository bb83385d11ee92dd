// fuelrun is a top-down arcade shooter for the terminal. The gun is the
// only engine: every shot pushes the vehicle forward.
//
// Usage:
//
//	fuelrun list              - List available variants
//	fuelrun play <variant>    - Play a variant
//	fuelrun menu              - Start menu to pick variants interactively
//	fuelrun serve             - Start SSH server for remote play
//	fuelrun scores <variant>  - Show the best runs for a variant
//	fuelrun sim               - Run the autopilot headless and export telemetry
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.fuelrun/runs.db)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/fuelrun/internal/games/fuelrun"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger = newLogger()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fuelrun",
	Short: "Fuel Run - fly on recoil, burn your ammo, collect fuel",
	Long: `Fuel Run is a terminal arcade shooter. Your vehicle has no engine:
every shot pushes it forward, and every shot burns fuel. Destroyed enemies
drop canisters that refill the tank, and a roaming target awards stars.

Available commands:
  list     - Show all available variants
  play     - Play a specific variant directly
  menu     - Interactive picker menu
  serve    - Start SSH server for remote play
  scores   - View the best runs
  sim      - Fly the autopilot headless

Examples:
  fuelrun list
  fuelrun play fuelrun
  fuelrun menu
  fuelrun serve --ssh :2222
  fuelrun sim --frames 3600 --seed 7 --csv run.csv`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "fuelrun",
	})
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.fuelrun/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}
