package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-scenes/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the player with a scene picker menu",
	Long: `Start the player in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a scene.
Leaving a scene with Esc returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play scene
  Tab          - Run history
  Q            - Quit

Examples:
  scenes menu
  scenes menu --fps 30
  scenes menu --db ./history.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := menu(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func menu() error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsHistory {
			goBack, err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from history
		}

		sceneID := menuResult.SceneID
		if sceneID == "" {
			return nil
		}

		sc, world, err := buildScene(sceneID, "", cfg)
		if err != nil {
			// A broken scene config should not end the session
			logger.Error("could not build scene", "scene", sceneID, "error", err)
			continue
		}

		back, err := playInteractive(sc, world, store, cfg, logger)
		if err != nil {
			return err
		}
		if !back {
			return nil
		}

		// Fresh seed per scene unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = runtimeConfig().Seed
		}
	}
}
