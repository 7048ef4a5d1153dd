package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-scenes/internal/core"
	"github.com/vovakirdan/tui-scenes/internal/engine"
	"github.com/vovakirdan/tui-scenes/internal/platform/tui"
	"github.com/vovakirdan/tui-scenes/internal/registry"
	"github.com/vovakirdan/tui-scenes/internal/render"
	"github.com/vovakirdan/tui-scenes/internal/storage"
)

var (
	flagConfig     string
	flagHeadless   bool
	flagTicks      uint64
	flagFrameEvery uint64
)

var playCmd = &cobra.Command{
	Use:   "play <scene>",
	Short: "Play a scene",
	Long: `Start playing the specified scene.

Controls:
  P/Space      - Pause/resume
  N            - Step one tick while paused
  Left/Right   - Orbit the camera
  Up/Down      - Tilt the camera
  +/-          - Zoom in/out
  0            - Reset the view
  Ctrl+S       - Save a text screenshot
  ?            - Toggle full help
  Q/Ctrl+C     - Quit

Headless mode runs the same loop without the viewer and writes plain-text
frames to stdout. --fps 0 runs it as fast as possible.

Examples:
  scenes play mems
  scenes play xmas --seed 42
  scenes play ufo --config ./my-ufo.yaml
  scenes play vacuum --headless --ticks 600 --frame-every 60`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom scene config YAML")
	playCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Run without the viewer, printing frames to stdout")
	playCmd.Flags().Uint64Var(&flagTicks, "ticks", 0, "Headless: stop after this many ticks (0 = until interrupted)")
	playCmd.Flags().Uint64Var(&flagFrameEvery, "frame-every", 1, "Headless: print every Nth frame")
}

func runPlay(_ *cobra.Command, args []string) {
	sceneID := args[0]

	// Check if scene exists
	if !registry.Exists(sceneID) {
		unknownScene(sceneID)
	}

	if err := play(sceneID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play(sceneID string) error {
	logger, closeLog, err := newLogger(!flagHeadless)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := runtimeConfig()
	sc, world, err := buildScene(sceneID, flagConfig, cfg)
	if err != nil {
		return err
	}
	logger.Debug("scene built", "scene", sceneID, "seed", cfg.Seed, "objects", world.Registry.Len())

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if flagHeadless {
		stats, err := playHeadless(world, cfg, logger)
		recordRun(store, logger, sceneID, cfg.Seed, stats, endReason(stats, flagTicks, err))
		return err
	}

	_, err = playInteractive(sc, world, store, cfg, logger)
	return err
}

// playInteractive runs the viewer and records the run. It reports whether
// the user asked to go back to the menu.
func playInteractive(sc registry.Scene, world *engine.World, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (back bool, err error) {
	res, err := tui.Run(sc.Title(), world, cfg, logger)
	recordRun(store, logger, sc.ID(), cfg.Seed, res.Stats, endReason(res.Stats, 0, err))
	if err != nil {
		return false, fmt.Errorf("running %s: %w", sc.ID(), err)
	}
	return res.Back, nil
}

// playHeadless drives the world with a ticker and prints frames to stdout
// until the tick limit or an interrupt.
func playHeadless(world *engine.World, cfg core.RuntimeConfig, logger *log.Logger) (engine.Stats, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// One row is taken by the frame header
	sink := render.NewFrameWriter(os.Stdout, render.NewCamera(world.View), cfg.ScreenW, max(cfg.ScreenH-1, 1), flagFrameEvery)

	var lim engine.Limiter
	if cfg.TickRate > 0 {
		ticker := engine.NewTickerLimiter(cfg.TickRate)
		defer ticker.Stop()
		lim = ticker
	}

	return engine.Loop(ctx, engine.NewRunner(world, logger), sink, lim, flagTicks)
}

// endReason classifies how a run stopped. A zero limit means the run had none.
func endReason(stats engine.Stats, limit uint64, err error) string {
	switch {
	case err != nil:
		return storage.EndError
	case limit > 0 && stats.Ticks >= limit:
		return storage.EndLimit
	default:
		return storage.EndQuit
	}
}
