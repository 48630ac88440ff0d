package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/stardodge/stardodge/internal/config"
	"github.com/stardodge/stardodge/internal/core"
	"github.com/stardodge/stardodge/internal/platform/tui"
	"github.com/stardodge/stardodge/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a play session in the current terminal.

Controls:
  Mouse        - Steer the ship
  Arrows/WASD  - Nudge the steering target
  Enter/Space  - Start
  P            - Pause
  R            - Restart (after game over)
  Esc          - Quit to title
  Q/Ctrl+C     - Quit

Examples:
  stardodge play
  stardodge play --seed 42
  stardodge play --config ./my-tuning.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Refuse to start when the playable surface would be unusable.
	if surfaceW, surfaceH := core.FitSurface(width, height); core.SurfaceTooSmall(surfaceW, surfaceH) {
		fmt.Fprintln(os.Stderr, "Error: terminal is too small to play (need at least 27x16)")
		os.Exit(1)
	}

	cfg := core.RuntimeConfig{
		Cols:     width,
		Rows:     height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(gameCfg, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
