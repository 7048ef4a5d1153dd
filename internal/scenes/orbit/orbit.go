// Package orbit implements a red cone that orbits inside a glass cube,
// bouncing gently between its faces while spinning about its own axis.
package orbit

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/tui-scenes/internal/anim"
	"github.com/vovakirdan/tui-scenes/internal/config"
	"github.com/vovakirdan/tui-scenes/internal/core"
	"github.com/vovakirdan/tui-scenes/internal/engine"
	"github.com/vovakirdan/tui-scenes/internal/registry"
	"github.com/vovakirdan/tui-scenes/internal/scene"
	"github.com/vovakirdan/tui-scenes/internal/scenes/kit"
)

// Scene builds the orbiting cone.
type Scene struct {
	configPath string
}

// New creates a new orbit scene.
func New() *Scene {
	return &Scene{}
}

func init() {
	registry.Register("orbit", func() registry.Scene {
		return New()
	})
}

// ID returns the unique identifier for this scene.
func (s *Scene) ID() string {
	return "orbit"
}

// Title returns the display name for this scene.
func (s *Scene) Title() string {
	return "Cone inside Box (orbit + bounce)"
}

// SetConfigPath sets a custom config file path.
func (s *Scene) SetConfigPath(path string) {
	s.configPath = path
}

// Build loads the configuration and constructs the world.
func (s *Scene) Build(_ core.RuntimeConfig) (*engine.World, error) {
	cfg, err := config.LoadOrbit(s.configPath)
	if err != nil {
		return nil, err
	}
	return BuildWorld(cfg)
}

// BuildWorld constructs the scene from an explicit configuration.
func BuildWorld(cfg config.OrbitConfig) (*engine.World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := kit.NewBuilder()

	b.Add(scene.KindBox, scene.Attributes{
		Size:    r3.Vec{X: cfg.Box.Size, Y: cfg.Box.Size, Z: cfg.Box.Size},
		Color:   cfg.Box.Color,
		Opacity: cfg.Box.Opacity,
	})
	cone := b.Add(scene.KindCone, scene.Attributes{
		Pos:     r3.Vec{X: 1},
		Axis:    r3.Vec{Y: cfg.Cone.Height},
		Up:      r3.Vec{X: 1},
		Radius:  cfg.Cone.Radius,
		Color:   cfg.Cone.Color,
		Opacity: 1,
	})

	spin, err := anim.NewSpin(r3.Vec{Y: 1}, cfg.Cone.Spin)
	if err != nil {
		return nil, fmt.Errorf("orbit: cone spin: %w", err)
	}
	path := anim.Orbit{Radius: cfg.Path.Radius, Bounce: cfg.Path.Bounce}

	passes := []anim.Pass{anim.Bind(cone, path, spin)}
	return kit.World("orbit", b, cfg.Clock, cfg.View, passes)
}
