package mems

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/tui-scenes/internal/config"
	"github.com/vovakirdan/tui-scenes/internal/engine"
	"github.com/vovakirdan/tui-scenes/internal/scene"
	"github.com/vovakirdan/tui-scenes/internal/scenes/scenetest"
)

func TestBuildDefault(t *testing.T) {
	w, err := BuildWorld(config.DefaultMEMSConfig())
	if err != nil {
		t.Fatalf("BuildWorld() failed: %v", err)
	}
	// wafer + dome + 36 rings + 36 glows
	if n := w.Registry.Len(); n != 74 {
		t.Errorf("Len() = %d, want 74", n)
	}
	if w.Clock.DT != 0.05 || w.Clock.DAngle != 0.01 {
		t.Errorf("clock = %+v", w.Clock)
	}
}

func TestLongRunStaysValid(t *testing.T) {
	w, err := BuildWorld(config.DefaultMEMSConfig())
	if err != nil {
		t.Fatal(err)
	}
	scenetest.Run(t, w, scenetest.LongRun)
}

func TestRingsTurnAndGlowPulses(t *testing.T) {
	cfg := config.DefaultMEMSConfig()
	w, err := BuildWorld(cfg)
	if err != nil {
		t.Fatal(err)
	}

	before := w.Registry.Snapshot()
	f := engine.NewRunner(w, nil).Step()

	ring := f.Objects[2]
	if ring.Kind != scene.KindRing {
		t.Fatalf("object 3 is %v, want ring", ring.Kind)
	}
	p := before[2].Pos
	step := cfg.Rings.RotationStep
	want := r3.Vec{
		X: p.X*math.Cos(step) - p.Z*math.Sin(step),
		Z: p.X*math.Sin(step) + p.Z*math.Cos(step),
	}
	if r3.Norm(r3.Sub(ring.Pos, want)) > 1e-12 {
		t.Errorf("ring pos = %+v, want %+v", ring.Pos, want)
	}

	glow := f.Objects[2+36]
	if glow.Pos != ring.Pos {
		t.Errorf("glow at %+v, ring at %+v", glow.Pos, ring.Pos)
	}
	intensity := 0.5 + 0.5*math.Sin(f.Clock.T+glow.Pos.X+glow.Pos.Z)
	if math.Abs(glow.Color.G-0.8*intensity) > 1e-12 || math.Abs(glow.Color.B-intensity) > 1e-12 {
		t.Errorf("glow colour = %+v, want intensity %v", glow.Color, intensity)
	}
	if glow.Color.R != 0.1 {
		t.Errorf("glow red = %v, want 0.1", glow.Color.R)
	}
}

func TestBuildRejectsNegativeGrid(t *testing.T) {
	cfg := config.DefaultMEMSConfig()
	cfg.Rings.Rows = -4
	if _, err := BuildWorld(cfg); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("BuildWorld() error = %v, want ErrInvalidConfig", err)
	}
}
