package engine

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-scenes/internal/anim"
)

// Stats summarizes a run.
type Stats struct {
	Ticks    uint64
	Failures int
	Elapsed  time.Duration
}

// Runner advances a World one tick at a time.
// It is driven by a single goroutine and is not safe for concurrent use.
type Runner struct {
	world  *World
	logger *log.Logger
	stats  Stats
	start  time.Time
}

// NewRunner creates a runner for the world. A nil logger discards output.
func NewRunner(w *World, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{world: w, logger: logger}
}

// World returns the world being run.
func (r *Runner) World() *World {
	return r.world
}

// Step advances the clock, runs every pass and returns the resulting frame.
// The registry is sealed on the first step. Failures are logged and the
// affected objects keep their previous state for this tick.
func (r *Runner) Step() Frame {
	if r.stats.Ticks == 0 {
		r.world.Registry.Seal()
		r.start = time.Now()
		r.logger.Debug("scene started", "scene", r.world.Name, "objects", r.world.Registry.Len())
	}

	r.world.Clock = r.world.Clock.Tick()
	c := r.world.Clock

	r.stats.Failures += anim.UpdateAll(r.world.Registry, c, r.world.Passes, func(f anim.Failure) {
		r.logger.Warn("update skipped",
			"scene", r.world.Name,
			"tick", c.Ticks,
			"handle", f.Handle,
			"rule", f.Rule,
			"error", f.Err,
		)
	})
	r.stats.Ticks++
	r.stats.Elapsed = time.Since(r.start)

	return Frame{
		Tick:    c.Ticks,
		Clock:   c,
		Objects: r.world.Registry.Snapshot(),
	}
}

// Stats returns counters for the ticks run so far.
func (r *Runner) Stats() Stats {
	return r.stats
}
