package anim

import (
	"math"

	"github.com/vovakirdan/tui-scenes/internal/scene"
)

// Source selects which clock value drives a wave.
type Source int

const (
	SourceTime  Source = iota // Clock.T
	SourceAngle               // Clock.Angle
)

// PhaseFrom adds a per-object phase taken from the object's position,
// which turns a set of identical waves into a travelling wave.
type PhaseFrom int

const (
	PhaseNone PhaseFrom = iota
	PhaseX
	PhaseZ
	PhaseXZ
)

func (p PhaseFrom) of(a scene.Attributes) float64 {
	switch p {
	case PhaseX:
		return a.Pos.X
	case PhaseZ:
		return a.Pos.Z
	case PhaseXZ:
		return a.Pos.X + a.Pos.Z
	}
	return 0
}

// Wave is the periodic function base + amp*sin(freq*x + phase).
type Wave struct {
	Base  float64
	Amp   float64
	Freq  float64
	Phase float64

	Source    Source
	PhaseFrom PhaseFrom

	// Rectify uses |sin| instead of sin.
	Rectify bool
	// AntiPhase shifts the wave by exactly π: the sine is negated rather
	// than evaluated at x+π, so paired waves cancel without rounding error.
	AntiPhase bool
}

// Const returns a wave that always yields v.
func Const(v float64) Wave {
	return Wave{Base: v}
}

// Value evaluates the wave for an object at the given clock.
func (w Wave) Value(c Clock, a scene.Attributes) float64 {
	if w.Amp == 0 {
		return w.Base
	}

	x := c.T
	if w.Source == SourceAngle {
		x = c.Angle
	}

	s := math.Sin(w.Freq*x + w.Phase + w.PhaseFrom.of(a))
	if w.AntiPhase {
		s = -s
	}
	if w.Rectify {
		s = math.Abs(s)
	}
	return w.Base + w.Amp*s
}
