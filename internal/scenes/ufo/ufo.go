// Package ufo implements a flying saucer that orbits inside a glass cube.
// The body turns as it flies; its dome and rim lights are rigid offsets
// carried around with it, and the rim lights cycle from red to green.
package ufo

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/tui-scenes/internal/anim"
	"github.com/vovakirdan/tui-scenes/internal/config"
	"github.com/vovakirdan/tui-scenes/internal/core"
	"github.com/vovakirdan/tui-scenes/internal/engine"
	"github.com/vovakirdan/tui-scenes/internal/registry"
	"github.com/vovakirdan/tui-scenes/internal/scene"
	"github.com/vovakirdan/tui-scenes/internal/scenes/kit"
)

// Scene builds the UFO.
type Scene struct {
	configPath string
}

// New creates a new UFO scene.
func New() *Scene {
	return &Scene{}
}

func init() {
	registry.Register("ufo", func() registry.Scene {
		return New()
	})
}

// ID returns the unique identifier for this scene.
func (s *Scene) ID() string {
	return "ufo"
}

// Title returns the display name for this scene.
func (s *Scene) Title() string {
	return "UFO inside Box"
}

// SetConfigPath sets a custom config file path.
func (s *Scene) SetConfigPath(path string) {
	s.configPath = path
}

// Build loads the configuration and constructs the world.
func (s *Scene) Build(_ core.RuntimeConfig) (*engine.World, error) {
	cfg, err := config.LoadUFO(s.configPath)
	if err != nil {
		return nil, err
	}
	return BuildWorld(cfg)
}

// BuildWorld constructs the scene from an explicit configuration.
func BuildWorld(cfg config.UFOConfig) (*engine.World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := kit.NewBuilder()
	path := anim.Orbit{Radius: cfg.Path.Radius, Bounce: cfg.Path.Bounce}

	b.Add(scene.KindBox, scene.Attributes{
		Size:    r3.Vec{X: cfg.Box.Size, Y: cfg.Box.Size, Z: cfg.Box.Size},
		Color:   cfg.Box.Color,
		Opacity: cfg.Box.Opacity,
	})

	saucer := b.Add(scene.KindEllipsoid, scene.Attributes{
		Size:    cfg.Saucer.Size.R3(),
		Color:   cfg.Saucer.Color,
		Opacity: 1,
	})
	dome := b.Add(scene.KindSphere, scene.Attributes{
		Pos:     cfg.Dome.Offset.R3(),
		Radius:  cfg.Dome.Radius,
		Color:   cfg.Dome.Color,
		Opacity: cfg.Dome.Opacity,
	})

	passes := []anim.Pass{
		anim.Bind(saucer, path),
		anim.Bind(dome, carried(path, cfg.Dome.Offset.R3(), cfg.SpinRate)),
	}

	for i := 0; i < cfg.Lights.Count; i++ {
		a := 2 * math.Pi * float64(i) / float64(cfg.Lights.Count)
		offset := r3.Vec{
			X: cfg.Lights.RimRadius * math.Cos(a),
			Y: cfg.Lights.Drop,
			Z: cfg.Lights.RimRadius * math.Sin(a),
		}
		light := b.Add(scene.KindSphere, scene.Attributes{
			Pos:      offset,
			Radius:   cfg.Lights.Radius,
			Color:    core.ColorRed,
			Opacity:  1,
			Emissive: true,
		})
		passes = append(passes, anim.Bind(light,
			carried(path, offset, cfg.SpinRate),
			rimPulse(cfg.Lights.PulseFreq, float64(i)),
		))
	}

	return kit.World("ufo", b, cfg.Clock, cfg.View, passes)
}

// carried keeps an offset fixed in the saucer's frame as it orbits and turns.
func carried(path anim.Orbit, offset r3.Vec, rate float64) anim.RotatingOffset {
	return anim.RotatingOffset{Parent: path, Offset: offset, Rate: rate}
}

// rimPulse fades a light between red and green: with
// h = (sin(freq*t + phase) + 1) / 2 the colour is (1-h, h, 0).
func rimPulse(freq, phase float64) anim.ColorWave {
	return anim.ColorWave{
		R: anim.Wave{Base: 0.5, Amp: 0.5, Freq: freq, Phase: phase, AntiPhase: true},
		G: anim.Wave{Base: 0.5, Amp: 0.5, Freq: freq, Phase: phase},
		B: anim.Const(0),
	}
}
