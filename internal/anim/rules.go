package anim

import (
	"errors"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/tui-scenes/internal/core"
	"github.com/vovakirdan/tui-scenes/internal/scene"
)

// ErrZeroAxis is returned when a rotation is configured about a zero-length axis.
var ErrZeroAxis = errors.New("anim: rotation axis has zero length")

// axisEpsilon is the smallest axis length a rotation accepts.
const axisEpsilon = 1e-9

// minRadius keeps animated radii strictly positive.
const minRadius = 1e-3

// Rule computes new attributes for one object from its current attributes
// and the clock. Rules hold no per-object state beyond their configuration.
type Rule interface {
	Apply(a *scene.Attributes, c Clock) error
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc func(a *scene.Attributes, c Clock) error

// Apply implements Rule.
func (f RuleFunc) Apply(a *scene.Attributes, c Clock) error {
	return f(a, c)
}

// Orbit moves an object around Center on a horizontal circle of Radius,
// driven by the clock angle, while bouncing vertically with amplitude Bounce.
type Orbit struct {
	Center r3.Vec
	Radius float64
	Bounce float64
}

// Position returns the orbit position at the given clock.
func (o Orbit) Position(c Clock) r3.Vec {
	return r3.Add(o.Center, r3.Vec{
		X: o.Radius * math.Sin(c.Angle),
		Y: o.Bounce * math.Sin(c.T),
		Z: o.Radius * math.Cos(c.Angle),
	})
}

// Apply implements Rule.
func (o Orbit) Apply(a *scene.Attributes, c Clock) error {
	a.Pos = o.Position(c)
	return nil
}

// RotatingOffset places an object at a fixed offset from an orbiting parent.
// The offset is turned about the world vertical axis by angle*Rate.
type RotatingOffset struct {
	Parent Orbit
	Offset r3.Vec
	Rate   float64
}

// Apply implements Rule.
func (r RotatingOffset) Apply(a *scene.Attributes, c Clock) error {
	theta := c.Angle * r.Rate
	cos, sin := math.Cos(theta), math.Sin(theta)
	rotated := r3.Vec{
		X: cos*r.Offset.X + sin*r.Offset.Z,
		Y: r.Offset.Y,
		Z: -sin*r.Offset.X + cos*r.Offset.Z,
	}
	a.Pos = r3.Add(r.Parent.Position(c), rotated)
	return nil
}

// Spin turns an object's orientation (Axis and Up) by Step radians about
// About every tick. The angle accumulates through the vectors themselves.
type Spin struct {
	About r3.Vec
	Step  float64
}

// NewSpin returns a Spin, rejecting a zero-length rotation axis.
func NewSpin(about r3.Vec, step float64) (Spin, error) {
	if r3.Norm(about) < axisEpsilon {
		return Spin{}, ErrZeroAxis
	}
	return Spin{About: about, Step: step}, nil
}

// Apply implements Rule. A (near) zero axis leaves the object untouched.
func (s Spin) Apply(a *scene.Attributes, _ Clock) error {
	if r3.Norm(s.About) < axisEpsilon {
		return nil
	}
	if r3.Norm(a.Axis) >= axisEpsilon {
		a.Axis = r3.Rotate(a.Axis, s.Step, s.About)
	}
	if r3.Norm(a.Up) >= axisEpsilon {
		a.Up = r3.Rotate(a.Up, s.Step, s.About)
	}
	return nil
}

// OpacityWave drives opacity from a wave, clamped to [0, 1].
type OpacityWave struct {
	Wave Wave
}

// Apply implements Rule.
func (o OpacityWave) Apply(a *scene.Attributes, c Clock) error {
	a.Opacity = core.ClampF(o.Wave.Value(c, *a), 0, 1)
	return nil
}

// RadiusWave drives the radius from a wave, never below a small positive floor.
type RadiusWave struct {
	Wave Wave
}

// Apply implements Rule.
func (r RadiusWave) Apply(a *scene.Attributes, c Clock) error {
	a.Radius = math.Max(r.Wave.Value(c, *a), minRadius)
	return nil
}

// ColorWave drives each colour channel from its own wave, clamped to [0, 1].
type ColorWave struct {
	R, G, B Wave
}

// Apply implements Rule.
func (w ColorWave) Apply(a *scene.Attributes, c Clock) error {
	a.Color = core.RGB(w.R.Value(c, *a), w.G.Value(c, *a), w.B.Value(c, *a)).Clamped()
	return nil
}

// Twinkle sets radius to base + amp*|sin(angle*f)| with f drawn uniformly
// from [FreqLo, FreqHi) on every application.
type Twinkle struct {
	Base, Amp      float64
	FreqLo, FreqHi float64
	Rand           *rand.Rand
}

// Apply implements Rule.
func (t Twinkle) Apply(a *scene.Attributes, c Clock) error {
	f := Uniform(t.Rand, t.FreqLo, t.FreqHi)
	a.Radius = math.Max(t.Base+t.Amp*math.Abs(math.Sin(c.Angle*f)), minRadius)
	return nil
}

// Drift integrates a particle's velocity and reflects it at an axis-aligned box.
// The bound is checked after the move, so a particle may overshoot by one
// tick's displacement before it turns around.
type Drift struct {
	Bound r3.Vec
}

// Apply implements Rule.
func (d Drift) Apply(a *scene.Attributes, _ Clock) error {
	a.Pos = r3.Add(a.Pos, a.Velocity)
	if math.Abs(a.Pos.X) > d.Bound.X {
		a.Velocity.X = -a.Velocity.X
	}
	if math.Abs(a.Pos.Y) > d.Bound.Y {
		a.Velocity.Y = -a.Velocity.Y
	}
	if math.Abs(a.Pos.Z) > d.Bound.Z {
		a.Velocity.Z = -a.Velocity.Z
	}
	return nil
}

// Snowfall lowers an object by Rate every tick. Once it falls below Floor it
// restarts at a random height in [ResetLow, ResetHigh) and a random spot in
// the plane |x| <= SpreadX, |z| <= SpreadZ.
type Snowfall struct {
	Rate                float64
	Floor               float64
	ResetLow, ResetHigh float64
	SpreadX, SpreadZ    float64
	Rand                *rand.Rand
}

// Apply implements Rule.
func (s Snowfall) Apply(a *scene.Attributes, _ Clock) error {
	a.Pos.Y -= s.Rate
	if a.Pos.Y < s.Floor {
		a.Pos.Y = Uniform(s.Rand, s.ResetLow, s.ResetHigh)
		a.Pos.X = Uniform(s.Rand, -s.SpreadX, s.SpreadX)
		a.Pos.Z = Uniform(s.Rand, -s.SpreadZ, s.SpreadZ)
	}
	return nil
}

// OriginRotation turns an object's position about the world origin by Step
// radians per tick in the XZ plane.
type OriginRotation struct {
	Step float64
}

// Apply implements Rule.
func (o OriginRotation) Apply(a *scene.Attributes, _ Clock) error {
	a.Pos = rotateXZ(a.Pos, r3.Vec{}, o.Step)
	return nil
}

// PivotSpin turns an object about its own fixed centre Pivot by Step radians
// per tick in the XZ plane. Triangle vertices turn with it.
type PivotSpin struct {
	Pivot r3.Vec
	Step  float64
}

// Apply implements Rule.
func (p PivotSpin) Apply(a *scene.Attributes, _ Clock) error {
	a.Pos = rotateXZ(a.Pos, p.Pivot, p.Step)
	for i, v := range a.Vertices {
		a.Vertices[i] = rotateXZ(v, p.Pivot, p.Step)
	}
	return nil
}

// rotateXZ rotates p about the vertical line through pivot:
// x' = x cos - z sin, z' = x sin + z cos (relative to pivot).
func rotateXZ(p, pivot r3.Vec, step float64) r3.Vec {
	cos, sin := math.Cos(step), math.Sin(step)
	d := r3.Sub(p, pivot)
	return r3.Vec{
		X: d.X*cos - d.Z*sin + pivot.X,
		Y: p.Y,
		Z: d.X*sin + d.Z*cos + pivot.Z,
	}
}

// Uniform returns a value in [lo, hi) drawn from r.
func Uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
