package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyrush/internal/platform/tui"
	"github.com/vovakirdan/skyrush/internal/storage"
)

var flagScoresPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run leaderboard",
	Long: `Display the top runs.

By default opens the interactive leaderboard. Use --plain to print the
top 10 runs to stdout instead.

Examples:
  skyrush scores
  skyrush scores --plain`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print to stdout instead of the interactive view")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if !flagScoresPlain {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing leaderboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Top Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'skyrush play' to get on the board!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-4s  %-4s  %s\n", "Rank", "Score", "Dist", "Lvl", "Won", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-4s  %-4s  %s\n", "----", "-----", "----", "---", "---", "----")

	for i, entry := range runs {
		won := "-"
		if entry.Won {
			won = "yes"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-7.0fm  %-4d  %-4s  %s\n",
			i+1, entry.Score, entry.Distance, entry.Level, won, dateStr)
	}

	fmt.Println()
	if best, bestErr := store.BestScore(); bestErr == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
