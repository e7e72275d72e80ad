// arkanoid is a terminal brick-breaker.
//
// Usage:
//
//	arkanoid play            - Play in the current terminal
//	arkanoid serve           - Start SSH server for remote play
//	arkanoid scores          - Show the leaderboard
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible serves
//	--db <path>     - Set database path (default: ~/.arkanoid/scores.db)
//	--levels <dir>  - Directory with custom level files
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/breakline/arkanoid/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagLevels string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - brick-breaker in your terminal",
	Long: `Arkanoid is a terminal brick-breaker: a paddle, a ball, ten levels of
bricks, and a shared leaderboard.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View the leaderboard

Examples:
  arkanoid play
  arkanoid play --difficulty hard
  arkanoid play --levels ./mylevels
  arkanoid serve --ssh :2222
  arkanoid scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory with level%d.txt files")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
