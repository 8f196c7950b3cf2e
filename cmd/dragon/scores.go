package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dragon-arcade/internal/platform/tui"
	"github.com/vovakirdan/dragon-arcade/internal/storage"
)

var (
	flagLimit     int
	flagScoresTUI bool
	flagClear     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the biggest dragons grown so far.

Examples:
  dragon scores
  dragon scores --limit 25
  dragon scores --tui`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse runs in an interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole run history")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening run history: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Run history cleared.")
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.BrowseRuns(store, width, height)
	}

	return printRuns(cmd.OutOrStdout(), store, flagLimit)
}

// printRuns writes the top runs as a plain table.
func printRuns(w io.Writer, store *storage.Store, limit int) error {
	runs, err := store.TopRuns(limit)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	fmt.Fprintln(w, "Dragon Eat Dragon - Biggest Dragons")
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'dragon play' to grow the first dragon!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-5s  %-9s  %-5s  %-4s  %-6s  %s\n", "Rank", "Size", "Outcome", "Eaten", "Hits", "Time", "Date")
	fmt.Fprintf(w, "  %-4s  %-5s  %-9s  %-5s  %-4s  %-6s  %s\n", "----", "----", "-------", "-----", "----", "----", "----")

	for i, r := range runs {
		secs := int(r.Duration.Seconds())
		fmt.Fprintf(w, "  %-4d  %-5d  %-9s  %-5d  %-4d  %-6s  %s\n",
			i+1, r.FinalSize, r.Outcome, r.Eaten, r.Hits,
			fmt.Sprintf("%d:%02d", secs/60, secs%60),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Runs: %d  OMEGA: %d  Best: %d  Average: %.0f\n",
			stats.Runs, stats.Wins, stats.BestSize, stats.AvgSize)
	}
	return nil
}
