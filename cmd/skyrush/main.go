// skyrush is a terminal lane-runner: dodge the corridor, collect gems,
// and spell the word to clear each level.
//
// Usage:
//
//	skyrush play              - Play in the current terminal
//	skyrush simulate          - Run a headless simulation (autopilot)
//	skyrush scores            - Show the run leaderboard
//	skyrush serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.skyrush/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyrush",
	Short: "SKYRUSH - An endless lane-runner in your terminal",
	Long: `SKYRUSH is a terminal lane-runner. The corridor scrolls toward you;
switch lanes, jump hazards, collect gems and spell the target word to
clear each level. Seven levels, one run.

Available commands:
  play      - Play in the current terminal
  simulate  - Run a headless autopilot simulation
  scores    - View the run leaderboard
  serve     - Start SSH server for remote play

Examples:
  skyrush play
  skyrush play --seed 42
  skyrush simulate --seconds 120
  skyrush serve --ssh :2222
  skyrush scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyrush/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
