package orbit

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-scenes/internal/config"
	"github.com/vovakirdan/tui-scenes/internal/engine"
	"github.com/vovakirdan/tui-scenes/internal/scenes/scenetest"
)

func TestLongRunStaysInsideBox(t *testing.T) {
	cfg := config.DefaultOrbitConfig()
	w, err := BuildWorld(cfg)
	if err != nil {
		t.Fatalf("BuildWorld() failed: %v", err)
	}

	f := scenetest.Run(t, w, scenetest.LongRun)
	cone := f.Objects[1]
	half := cfg.Box.Size / 2
	if math.Abs(cone.Pos.X) > half || math.Abs(cone.Pos.Y) > half || math.Abs(cone.Pos.Z) > half {
		t.Errorf("cone left the box: %+v", cone.Pos)
	}
	if math.Abs(math.Hypot(cone.Pos.X, cone.Pos.Z)-cfg.Path.Radius) > 1e-9 {
		t.Errorf("cone off its orbit: %+v", cone.Pos)
	}
	// Spin keeps the axis vertical and its length.
	if math.Abs(cone.Axis.Y-cfg.Cone.Height) > 1e-9 {
		t.Errorf("cone axis drifted: %+v", cone.Axis)
	}
}

func TestOrbitFollowsClock(t *testing.T) {
	w, err := BuildWorld(config.DefaultOrbitConfig())
	if err != nil {
		t.Fatal(err)
	}
	r := engine.NewRunner(w, nil)
	var f engine.Frame
	for i := 0; i < 10; i++ {
		f = r.Step()
	}

	cone := f.Objects[1]
	wantX := 1.2 * math.Sin(f.Clock.Angle)
	wantY := 0.8 * math.Sin(f.Clock.T)
	wantZ := 1.2 * math.Cos(f.Clock.Angle)
	if math.Abs(cone.Pos.X-wantX) > 1e-12 || math.Abs(cone.Pos.Y-wantY) > 1e-12 || math.Abs(cone.Pos.Z-wantZ) > 1e-12 {
		t.Errorf("cone at %+v, want (%v, %v, %v)", cone.Pos, wantX, wantY, wantZ)
	}

	// Up turned by 10 spin steps about Y.
	angle := math.Atan2(-cone.Up.Z, cone.Up.X)
	if math.Abs(angle-10*0.05) > 1e-9 {
		t.Errorf("spin angle = %v, want 0.5", angle)
	}
}
