package main

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fuelrun/internal/registry"
	"github.com/vovakirdan/fuelrun/internal/storage"
)

var (
	flagLimit  int
	flagRunID  string
	flagClear  bool
	flagExport string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show recorded runs",
	Long: `Without a variant, summarize every variant that has recorded runs.
With a variant, list its best runs and totals.

Examples:
  fuelrun scores
  fuelrun scores fuelrun
  fuelrun scores fuelrun_scatter --limit 25
  fuelrun scores fuelrun --export runs.csv
  fuelrun scores --run 3f2a9c1e-...`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show a single run by its ID")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run of the variant")
	scoresCmd.Flags().StringVar(&flagExport, "export", "", "Write every run of the variant as CSV (- for stdout)")
}

func runScores(cmd *cobra.Command, args []string) error {
	var info registry.GameInfo
	if len(args) == 1 {
		var ok bool
		if info, ok = registry.Info(args[0]); !ok {
			return unknownGame(args[0])
		}
	}
	if (flagClear || flagExport != "") && info.ID == "" {
		return errors.New("--clear and --export need a variant")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	switch {
	case flagRunID != "":
		return printRun(out, store, flagRunID)
	case info.ID == "":
		return printSummary(out, store)
	case flagClear:
		if err := store.ClearRuns(info.ID); err != nil {
			return err
		}
		logger.Info("runs cleared", "game", info.ID)
		return nil
	case flagExport != "":
		w, closeOut, err := openOutput(flagExport)
		if err != nil {
			return fmt.Errorf("creating export file: %w", err)
		}
		defer closeOut()
		return exportRuns(w, store, info.ID)
	}
	return printTopRuns(out, store, info, flagLimit)
}

func printTopRuns(out io.Writer, store *storage.Store, info registry.GameInfo, limit int) error {
	runs, err := store.TopRuns(info.ID, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Best Runs - %s\n\n", info.Title)
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintf(out, "\nPlay 'fuelrun play %s' to set the first high score!\n", info.ID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-7s  %-5s  %-5s  %-6s  %-7s  %s\n", "Rank", "Score", "Kills", "Stars", "Fuel", "Frames", "Date")
	fmt.Fprintf(out, "  %-4s  %-7s  %-5s  %-5s  %-6s  %-7s  %s\n", "----", "-----", "-----", "-----", "----", "------", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-7d  %-5d  %-5d  %-6d  %-7d  %s\n",
			i+1, r.Score, r.Kills, r.Targets, r.FuelCollected, r.Frames, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(info.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nBest: %d  |  Runs: %d  |  Average: %.0f  |  Kills: %d  |  Stars: %d\n",
		stats.HighScore, stats.RunsCount, stats.AvgScore, stats.TotalKills, stats.TotalTargets)
	return nil
}

// printSummary lists one line per variant that has runs.
func printSummary(out io.Writer, store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	fmt.Fprintf(out, "  %-18s  %-5s  %-7s  %-7s  %-8s  %s\n", "Variant", "Runs", "Best", "Average", "Longest", "Last played")
	for _, id := range ids {
		st := all[id]
		fmt.Fprintf(out, "  %-18s  %-5d  %-7d  %-7.0f  %-8d  %s\n",
			id, st.RunsCount, st.HighScore, st.AvgScore, st.LongestRun, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printRun(out io.Writer, store *storage.Store, runID string) error {
	r, err := store.RunByID(runID)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("no run with ID %q", runID)
	}
	fmt.Fprintf(out, "Run %s (%s)\n", r.RunID, r.GameID)
	fmt.Fprintf(out, "  Score:  %d\n  Kills:  %d\n  Stars:  %d\n  Fuel:   %d\n  Frames: %d\n  Date:   %s\n",
		r.Score, r.Kills, r.Targets, r.FuelCollected, r.Frames, r.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

// exportRuns writes every run of gameID as CSV with a header row.
func exportRuns(w io.Writer, store *storage.Store, gameID string) error {
	runs, err := store.AllRuns(gameID)
	if err != nil {
		return err
	}
	if err := gocsv.Marshal(runs, w); err != nil {
		return fmt.Errorf("writing runs: %w", err)
	}
	return nil
}
