// stardodge is a terminal arcade game where you steer a ship through a
// field of falling asteroids.
//
// Usage:
//
//	stardodge play          - Play locally in the current terminal
//	stardodge serve         - Start SSH server for remote play
//	stardodge scores        - Show the top runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.stardodge/scores.db)
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
	Use:   "stardodge",
	Short: "Stardodge - dodge falling asteroids in your terminal",
	Long: `Stardodge is a terminal arcade game. Steer your ship with the mouse
or arrow keys and survive the asteroid field as long as you can.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View the top runs

Examples:
  stardodge play
  stardodge play --seed 42
  stardodge serve --ssh :2222
  stardodge scores --interactive`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.stardodge/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
