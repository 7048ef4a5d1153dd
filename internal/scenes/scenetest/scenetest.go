// Package scenetest runs built worlds for many ticks and checks that every
// object stays within its valid attribute ranges.
package scenetest

import (
	"testing"

	"github.com/vovakirdan/tui-scenes/internal/engine"
	"github.com/vovakirdan/tui-scenes/internal/scene"
)

// LongRun is the tick count used for long-run invariant checks.
const LongRun = 10000

// Run steps w for n ticks. It fails the test on the first skipped update or
// out-of-range attribute and returns the last frame.
func Run(t testing.TB, w *engine.World, n int) engine.Frame {
	t.Helper()

	r := engine.NewRunner(w, nil)
	var f engine.Frame
	for i := 0; i < n; i++ {
		f = r.Step()
		if fails := r.Stats().Failures; fails != 0 {
			t.Fatalf("tick %d: %d updates skipped", f.Tick, fails)
		}
		if err := Check(f.Objects); err != nil {
			t.Fatalf("tick %d: %v", f.Tick, err)
		}
	}
	return f
}

// Check validates every object against the rules of its kind.
func Check(objs []scene.Object) error {
	for _, o := range objs {
		if err := o.Validate(o.Kind); err != nil {
			return err
		}
	}
	return nil
}
