package vacuum

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/tui-scenes/internal/anim"
	"github.com/vovakirdan/tui-scenes/internal/config"
	"github.com/vovakirdan/tui-scenes/internal/core"
	"github.com/vovakirdan/tui-scenes/internal/scene"
	"github.com/vovakirdan/tui-scenes/internal/scenes/kit"
)

// Fixed hardware placement, in chamber units.
const (
	baseDrop     = 0.7  // Gap between the chamber bottom and the base top
	baseHeight   = 0.5  // Base slab height
	plateInset   = 0.15 // Plate distance inside each chamber end
	fieldSetback = 0.7  // Outer field ring distance past the right end
)

// addChamber creates the chamber body, end caps, viewing window, base and
// support plates. It returns the body.
func addChamber(b *kit.Builder, ch config.ChamberConfig, plates config.PlatesConfig) scene.Handle {
	half := ch.Length / 2
	along := func(l float64) r3.Vec { return r3.Vec{X: l} }

	body := b.Add(scene.KindCylinder, scene.Attributes{
		Pos:     r3.Vec{X: -half},
		Axis:    along(ch.Length),
		Radius:  ch.Radius,
		Color:   ch.Color,
		Opacity: ch.Opacity,
	})
	for _, x := range []float64{-half - ch.CapThickness/2, half + ch.CapThickness/2} {
		b.Add(scene.KindCylinder, scene.Attributes{
			Pos:     r3.Vec{X: x},
			Axis:    along(ch.CapThickness),
			Radius:  ch.Radius,
			Color:   ch.CapColor,
			Opacity: 1,
		})
	}
	b.Add(scene.KindCylinder, scene.Attributes{
		Pos:     r3.Vec{X: half + ch.CapThickness},
		Axis:    along(ch.WindowLength),
		Radius:  ch.WindowRadius,
		Color:   ch.WindowColor,
		Opacity: ch.WindowOpacity,
	})

	b.Add(scene.KindBox, scene.Attributes{
		Pos:     r3.Vec{Y: -ch.Radius - baseDrop},
		Size:    r3.Vec{X: ch.Length * 1.3, Y: baseHeight, Z: ch.Radius * 1.6},
		Color:   ch.BaseColor,
		Opacity: 1,
	})
	for _, x := range []float64{-half + plateInset, half - plateInset} {
		b.Add(scene.KindBox, scene.Attributes{
			Pos:     r3.Vec{X: x, Y: -ch.Radius/2 - baseDrop},
			Size:    r3.Vec{X: plates.Thickness, Y: ch.Radius * 0.9, Z: ch.Radius * 1.1},
			Color:   plates.Color,
			Opacity: plates.Opacity,
		})
	}
	return body
}

// addField creates a static containment field ring centred on the chamber axis at x.
func addField(b *kit.Builder, f config.FieldRing, x float64) scene.Handle {
	return b.Add(scene.KindRing, scene.Attributes{
		Pos:       r3.Vec{X: x},
		Axis:      r3.Vec{X: 1},
		Radius:    f.Radius,
		Thickness: f.Thickness,
		Color:     f.Color,
		Opacity:   f.Opacity,
		Emissive:  true,
	})
}

// particleBound is the box the gas particles bounce inside.
func particleBound(ch config.ChamberConfig) r3.Vec {
	return r3.Vec{X: ch.Length / 2.5, Y: ch.Radius * 0.7, Z: ch.Radius * 0.7}
}

// addParticles scatters gas particles through the chamber with random
// velocities and returns their update passes.
func addParticles(b *kit.Builder, pc config.ParticleConfig, ch config.ChamberConfig, rng *rand.Rand) []anim.Pass {
	bound := particleBound(ch)
	drift := anim.Drift{Bound: bound}
	shimmer := anim.ColorWave{
		R: anim.Wave{Base: 0.4, Amp: 0.4, Freq: 1, Source: anim.SourceAngle, PhaseFrom: anim.PhaseX},
		G: anim.Wave{Base: 0.7, Amp: 0.3, Freq: 1.5, Source: anim.SourceAngle, PhaseFrom: anim.PhaseZ},
		B: anim.Const(1),
	}
	speed := func() float64 { return anim.Uniform(rng, -pc.MaxSpeed, pc.MaxSpeed) }

	passes := make([]anim.Pass, 0, pc.Count)
	for i := 0; i < pc.Count; i++ {
		h := b.Add(scene.KindSphere, scene.Attributes{
			Pos: r3.Vec{
				X: anim.Uniform(rng, -bound.X, bound.X),
				Y: anim.Uniform(rng, -bound.Y, bound.Y),
				Z: anim.Uniform(rng, -bound.Z, bound.Z),
			},
			Velocity: r3.Vec{X: speed(), Y: speed(), Z: speed()},
			Radius:   pc.Radius,
			Color:    core.RGB(0.5, 0.8, 1),
			Opacity:  pc.Opacity,
			Emissive: true,
		})
		// Colour reads the position after this tick's move.
		passes = append(passes, anim.Bind(h, drift, shimmer))
	}
	return passes
}

// addRings creates the MEMS ring array and its rotation passes.
func addRings(b *kit.Builder, rc config.RingArray) []anim.Pass {
	turn := anim.OriginRotation{Step: rc.RotationStep}
	var passes []anim.Pass
	for _, h := range kit.RingGrid(b, rc, 0) {
		passes = append(passes, anim.Bind(h, turn))
	}
	return passes
}
