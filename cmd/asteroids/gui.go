package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/platform/gui"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a desktop window",
	Long: `Open asteroids in a desktop window with vector graphics.

The window reads real key state, so rotation and thrust follow the keys
exactly. Gamepads with a standard layout steer with the left stick.

Controls:
  Left/Right, A/D  - Rotate (or left stick)
  Up/W             - Thrust (or South button)
  Space/F/J/Ctrl   - Fire (or RT / East button)
  Enter/Space      - Start, continue after losing a life
  P                - Pause (or Start button)
  Z/X              - Zoom out/in
  Esc              - Back to menu, exit from the menu

Examples:
  asteroids gui
  asteroids gui --difficulty hard --fps 120`,
	Args: cobra.NoArgs,
	Run:  runGUI,
}

func init() {
	guiCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	guiCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runGUI(_ *cobra.Command, _ []string) {
	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg := runtimeConfig()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "error", err)
		store = nil
	}

	runErr := gui.Run(asteroids.New(), store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
