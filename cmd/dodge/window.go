package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/platform/window"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start Block Dodge in a desktop window drawn at playfield resolution.

Controls:
  Left/H/A     - Move left (hold to repeat)
  Right/L/D    - Move right (hold to repeat)
  Space        - Restart (after game over)
  Q/Esc        - Quit

Examples:
  dodge window
  dodge window --scale 2`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", 1, "Window pixels per playfield unit")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger()
	defer closeLog()

	gameCfg := loadConfig(logger)
	store := openStore(logger)

	runErr := window.Run(window.Options{
		Game:     gameCfg,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Scale:    flagScale,
		Store:    store,
		Logger:   logger,
		Player:   playerName(),
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running window: %v\n", runErr)
		os.Exit(1)
	}
}
