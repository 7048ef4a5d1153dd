package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-scenes/internal/core"
	"github.com/vovakirdan/tui-scenes/internal/engine"
	"github.com/vovakirdan/tui-scenes/internal/registry"
	"github.com/vovakirdan/tui-scenes/internal/storage"
)

// runtimeConfig builds the runtime config from the terminal size and the
// global flags. A zero seed is replaced by a time based one so the run
// history records the seed that was actually used.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// newLogger creates the process logger. Interactive sessions own the
// terminal, so they log to a file; headless runs log to stderr unless a
// file was requested. The returned func closes the log file.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	var (
		w       io.Writer = os.Stderr
		closeFn           = func() {}
	)

	path := flagLogFile
	if path == "" && interactive {
		path = "~/.scenes/scenes.log"
	}
	if path != "" {
		f, err := openLogFile(path)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "scenes",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

func openLogFile(path string) (*os.File, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// openStore opens the run history. A missing database is only a warning:
// scenes still play, their runs are just not recorded.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// buildScene creates the scene and constructs its world.
func buildScene(id, configPath string, cfg core.RuntimeConfig) (registry.Scene, *engine.World, error) {
	sc, err := registry.Create(id)
	if err != nil {
		return nil, nil, err
	}
	sc.SetConfigPath(configPath)

	world, err := sc.Build(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("building %s: %w", id, err)
	}
	return sc, world, nil
}

// recordRun saves a finished run. Failures are logged and otherwise ignored.
func recordRun(store *storage.Store, logger *log.Logger, id string, seed int64, stats engine.Stats, reason string) {
	logger.Info("run finished",
		"scene", id,
		"ticks", stats.Ticks,
		"skipped", stats.Failures,
		"elapsed", stats.Elapsed.Round(time.Millisecond),
		"end", reason,
	)
	if store == nil || stats.Ticks == 0 {
		return
	}
	_, err := store.SaveRun(storage.Run{
		SceneID:   id,
		Seed:      seed,
		Ticks:     stats.Ticks,
		Failures:  stats.Failures,
		Duration:  stats.Elapsed,
		EndReason: reason,
	})
	if err != nil {
		logger.Warn("could not record run", "scene", id, "error", err)
	}
}

// unknownScene reports an unregistered scene ID and exits.
func unknownScene(id string) {
	fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", id)
	fmt.Fprintln(os.Stderr, "Run 'scenes list' to see available scenes.")
	os.Exit(1)
}
