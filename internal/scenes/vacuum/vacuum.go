// Package vacuum implements the vacuum chamber scenes.
//
// Both scenes share the chamber hardware, a rotating MEMS ring array and
// gas particles bouncing inside the chamber. "vacuum" adds a glowing
// chamber wall and a static containment ring; "fields" adds labelled inner
// and outer containment fields pulsing in anti-phase and phased drive coils.
package vacuum

import (
	"github.com/vovakirdan/tui-scenes/internal/anim"
	"github.com/vovakirdan/tui-scenes/internal/config"
	"github.com/vovakirdan/tui-scenes/internal/core"
	"github.com/vovakirdan/tui-scenes/internal/engine"
	"github.com/vovakirdan/tui-scenes/internal/registry"
	"github.com/vovakirdan/tui-scenes/internal/scenes/kit"
)

// Scene builds the vacuum chamber.
type Scene struct {
	configPath string
}

// New creates a new vacuum chamber scene.
func New() *Scene {
	return &Scene{}
}

func init() {
	registry.Register("vacuum", func() registry.Scene {
		return New()
	})
	registry.Register("fields", func() registry.Scene {
		return NewFields()
	})
}

// ID returns the unique identifier for this scene.
func (s *Scene) ID() string {
	return "vacuum"
}

// Title returns the display name for this scene.
func (s *Scene) Title() string {
	return "Vacuum Chamber Visualization"
}

// SetConfigPath sets a custom config file path.
func (s *Scene) SetConfigPath(path string) {
	s.configPath = path
}

// Build loads the configuration and constructs the world.
// The seed drives particle placement and velocities.
func (s *Scene) Build(rt core.RuntimeConfig) (*engine.World, error) {
	cfg, err := config.LoadVacuum(s.configPath)
	if err != nil {
		return nil, err
	}
	return BuildWorld(cfg, rt.Seed)
}

// BuildWorld constructs the scene from an explicit configuration.
func BuildWorld(cfg config.VacuumConfig, seed int64) (*engine.World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := kit.NewBuilder()
	rng := kit.Rand(seed)

	body := addChamber(b, cfg.Chamber, cfg.Plates)
	passes := []anim.Pass{
		anim.Bind(body, anim.OpacityWave{Wave: anim.Wave{
			Base:    cfg.Chamber.Opacity,
			Amp:     cfg.Chamber.GlowAmp,
			Freq:    1,
			Source:  anim.SourceAngle,
			Rectify: true,
		}}),
	}
	passes = append(passes, addRings(b, cfg.Rings)...)
	addField(b, cfg.Field, cfg.Chamber.Length/2+fieldSetback)
	passes = append(passes, addParticles(b, cfg.Particles, cfg.Chamber, rng)...)

	return kit.World("vacuum", b, cfg.Clock, cfg.View, passes)
}
