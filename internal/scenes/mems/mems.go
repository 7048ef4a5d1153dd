// Package mems implements the MEMS toroidal cavity array: a 6x6 grid of
// glowing rings on a wafer under a glass dome, slowly turning about the
// vertical axis while a brightness wave travels across the grid.
package mems

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/tui-scenes/internal/anim"
	"github.com/vovakirdan/tui-scenes/internal/config"
	"github.com/vovakirdan/tui-scenes/internal/core"
	"github.com/vovakirdan/tui-scenes/internal/engine"
	"github.com/vovakirdan/tui-scenes/internal/registry"
	"github.com/vovakirdan/tui-scenes/internal/scene"
	"github.com/vovakirdan/tui-scenes/internal/scenes/kit"
)

// Scene builds the MEMS array.
type Scene struct {
	configPath string
}

// New creates a new MEMS scene.
func New() *Scene {
	return &Scene{}
}

func init() {
	registry.Register("mems", func() registry.Scene {
		return New()
	})
}

// ID returns the unique identifier for this scene.
func (s *Scene) ID() string {
	return "mems"
}

// Title returns the display name for this scene.
func (s *Scene) Title() string {
	return "MEMS Toroidal Cavity Array"
}

// SetConfigPath sets a custom config file path.
func (s *Scene) SetConfigPath(path string) {
	s.configPath = path
}

// Build loads the configuration and constructs the world.
func (s *Scene) Build(_ core.RuntimeConfig) (*engine.World, error) {
	cfg, err := config.LoadMEMS(s.configPath)
	if err != nil {
		return nil, err
	}
	return BuildWorld(cfg)
}

// BuildWorld constructs the scene from an explicit configuration.
func BuildWorld(cfg config.MEMSConfig) (*engine.World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := kit.NewBuilder()

	b.Add(scene.KindBox, scene.Attributes{
		Pos:     r3.Vec{Y: -cfg.Wafer.Thickness / 2},
		Size:    r3.Vec{X: cfg.Wafer.Size, Y: cfg.Wafer.Thickness, Z: cfg.Wafer.Size},
		Color:   cfg.Wafer.Color,
		Opacity: cfg.Wafer.Opacity,
	})
	b.Add(scene.KindSphere, scene.Attributes{
		Radius:  cfg.Wafer.Size * cfg.Dome.RadiusFactor,
		Color:   cfg.Dome.Color,
		Opacity: cfg.Dome.Opacity,
	})

	turn := anim.OriginRotation{Step: cfg.Rings.RotationStep}
	pulse := glowPulse(cfg.Glow.Peak)

	var passes []anim.Pass
	for _, ring := range kit.RingGrid(b, cfg.Rings, 0) {
		passes = append(passes, anim.Bind(ring, turn))
	}
	for _, p := range kit.GridPositions(cfg.Rings.Cols, cfg.Rings.Rows, cfg.Rings.Spacing, 0) {
		glow := b.Add(scene.KindSphere, scene.Attributes{
			Pos:      p,
			Radius:   cfg.Glow.Radius,
			Color:    core.ColorCyan,
			Opacity:  cfg.Glow.Opacity,
			Emissive: true,
		})
		// Colour reads the position after this tick's turn.
		passes = append(passes, anim.Bind(glow, turn, pulse))
	}

	return kit.World("mems", b, cfg.Clock, cfg.View, passes)
}

// glowPulse scales the green and blue channels of peak by
// 0.5 + 0.5*sin(t + x + z), so a wave of brightness crosses the grid.
func glowPulse(peak core.Color) anim.ColorWave {
	channel := func(v float64) anim.Wave {
		return anim.Wave{Base: v / 2, Amp: v / 2, Freq: 1, PhaseFrom: anim.PhaseXZ}
	}
	return anim.ColorWave{
		R: anim.Const(peak.R),
		G: channel(peak.G),
		B: channel(peak.B),
	}
}
