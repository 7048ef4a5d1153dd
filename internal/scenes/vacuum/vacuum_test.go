package vacuum

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/tui-scenes/internal/config"
	"github.com/vovakirdan/tui-scenes/internal/engine"
	"github.com/vovakirdan/tui-scenes/internal/scene"
	"github.com/vovakirdan/tui-scenes/internal/scenes/scenetest"
)

func particles(objs []scene.Object, n int) []scene.Object {
	return objs[len(objs)-n:]
}

func TestVacuumLongRun(t *testing.T) {
	cfg := config.DefaultVacuumConfig()
	w, err := BuildWorld(cfg, 42)
	if err != nil {
		t.Fatalf("BuildWorld() failed: %v", err)
	}
	if n := w.Registry.Len(); n != 57 {
		t.Errorf("Len() = %d, want 57", n)
	}

	bound := particleBound(cfg.Chamber)
	slack := cfg.Particles.MaxSpeed + 1e-9

	r := engine.NewRunner(w, nil)
	for i := 0; i < scenetest.LongRun; i++ {
		f := r.Step()
		if err := scenetest.Check(f.Objects); err != nil {
			t.Fatalf("tick %d: %v", f.Tick, err)
		}
		for _, p := range particles(f.Objects, cfg.Particles.Count) {
			if math.Abs(p.Pos.X) > bound.X+slack || math.Abs(p.Pos.Y) > bound.Y+slack || math.Abs(p.Pos.Z) > bound.Z+slack {
				t.Fatalf("tick %d: particle %d escaped to %+v", f.Tick, p.Handle, p.Pos)
			}
		}
		body := f.Objects[0]
		if body.Opacity < cfg.Chamber.Opacity || body.Opacity > cfg.Chamber.Opacity+cfg.Chamber.GlowAmp+1e-12 {
			t.Fatalf("tick %d: chamber opacity %v", f.Tick, body.Opacity)
		}
	}
	if r.Stats().Failures != 0 {
		t.Errorf("Failures = %d", r.Stats().Failures)
	}
}

func TestVacuumSeedIsDeterministic(t *testing.T) {
	cfg := config.DefaultVacuumConfig()
	a, _ := BuildWorld(cfg, 7)
	b, _ := BuildWorld(cfg, 7)
	c, _ := BuildWorld(cfg, 8)

	pa := particles(a.Registry.Snapshot(), cfg.Particles.Count)
	pb := particles(b.Registry.Snapshot(), cfg.Particles.Count)
	pc := particles(c.Registry.Snapshot(), cfg.Particles.Count)
	for i := range pa {
		if pa[i].Pos != pb[i].Pos || pa[i].Velocity != pb[i].Velocity {
			t.Fatalf("particle %d differs for the same seed", i)
		}
	}
	if pa[0].Pos == pc[0].Pos {
		t.Error("different seeds placed the first particle identically")
	}
}

func TestFieldsLongRunAndAntiPhase(t *testing.T) {
	cfg := config.DefaultFieldsConfig()
	w, err := BuildFieldsWorld(cfg, 1)
	if err != nil {
		t.Fatalf("BuildFieldsWorld() failed: %v", err)
	}
	if n := w.Registry.Len(); n != 80 {
		t.Errorf("Len() = %d, want 80", n)
	}

	var outer, inner scene.Object
	find := func(objs []scene.Object) {
		for _, o := range objs {
			if o.Kind != scene.KindRing {
				continue
			}
			switch o.Radius {
			case cfg.OuterField.Radius:
				outer = o
			case cfg.InnerField.Radius:
				inner = o
			}
		}
	}

	r := engine.NewRunner(w, nil)
	for i := 0; i < scenetest.LongRun; i++ {
		f := r.Step()
		if err := scenetest.Check(f.Objects); err != nil {
			t.Fatalf("tick %d: %v", f.Tick, err)
		}
		find(f.Objects)
		du := outer.Opacity - cfg.OuterField.Opacity
		di := inner.Opacity - cfg.InnerField.Opacity
		if math.Abs(du+di) > 1e-12 {
			t.Fatalf("tick %d: outer %+.6f and inner %+.6f not in anti-phase", f.Tick, du, di)
		}
		if outer.Color.G > 1 {
			t.Fatalf("tick %d: outer colour not clamped: %+v", f.Tick, outer.Color)
		}
	}
	if r.Stats().Failures != 0 {
		t.Errorf("Failures = %d", r.Stats().Failures)
	}
}

func TestFieldsWithoutLabels(t *testing.T) {
	cfg := config.DefaultFieldsConfig()
	cfg.Labels = false
	w, err := BuildFieldsWorld(cfg, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, o := range w.Registry.Snapshot() {
		if o.Kind == scene.KindLabel {
			t.Fatal("label created with labels disabled")
		}
	}
}

func TestBuildRejectsNegativeCounts(t *testing.T) {
	vac := config.DefaultVacuumConfig()
	vac.Particles.Count = -1
	if _, err := BuildWorld(vac, 1); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("BuildWorld() with particles.count=-1: error = %v, want ErrInvalidConfig", err)
	}

	vac = config.DefaultVacuumConfig()
	vac.Rings.Cols = -1
	if _, err := BuildWorld(vac, 1); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("BuildWorld() with rings.cols=-1: error = %v, want ErrInvalidConfig", err)
	}

	fields := config.DefaultFieldsConfig()
	fields.Coils.Turns = -2
	if _, err := BuildFieldsWorld(fields, 1); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("BuildFieldsWorld() with coils.turns=-2: error = %v, want ErrInvalidConfig", err)
	}
}
