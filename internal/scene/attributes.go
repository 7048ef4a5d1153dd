package scene

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/tui-scenes/internal/core"
)

// Validation errors.
var (
	ErrInvalidAttributes = errors.New("scene: invalid attributes")
	ErrUnknownHandle     = errors.New("scene: unknown handle")
	ErrSealed            = errors.New("scene: registry is sealed")
)

// minTriangleArea is the smallest doubled area accepted for a triangle.
const minTriangleArea = 1e-12

// Attributes are the mutable render attributes of one object.
// Which fields matter depends on the object's Kind.
type Attributes struct {
	Pos  r3.Vec // Centre (sphere, box, ellipsoid, ring, label) or base (cylinder, cone)
	Axis r3.Vec // Direction and length for cylinder/cone, normal for ring
	Up   r3.Vec // Secondary orientation vector, turned by in-place spin

	Radius    float64 // Sphere, cylinder, cone, ring
	Size      r3.Vec  // Box and ellipsoid extents
	Thickness float64 // Ring tube radius

	Color    core.Color
	Opacity  float64
	Emissive bool

	Vertices [3]r3.Vec // Triangle corners in world space
	Text     string    // Label text

	// Velocity is only used by particles, which integrate it every tick.
	Velocity r3.Vec
}

// ValidationError describes one attribute that is out of its valid range.
type ValidationError struct {
	Kind   Kind
	Field  string
	Value  any
	Reason string
}

// Error implements error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("scene: invalid %s %s=%v: %s", e.Kind, e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidAttributes.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidAttributes
}

// Validate checks the attributes against the ranges allowed for kind.
func (a Attributes) Validate(kind Kind) error {
	invalid := func(field string, value any, reason string) error {
		return &ValidationError{Kind: kind, Field: field, Value: value, Reason: reason}
	}

	if kind < KindBox || kind > KindLabel {
		return invalid("kind", int(kind), "unknown kind")
	}

	vectors := []struct {
		name string
		v    r3.Vec
	}{{"pos", a.Pos}, {"axis", a.Axis}, {"up", a.Up}, {"velocity", a.Velocity}}
	for _, f := range vectors {
		if !finite(f.v) {
			return invalid(f.name, f.v, "not a finite vector")
		}
	}
	if math.IsNaN(a.Opacity) || a.Opacity < 0 || a.Opacity > 1 {
		return invalid("opacity", a.Opacity, "must be in [0, 1]")
	}
	if !a.Color.Valid() {
		return invalid("color", a.Color, "channels must be in [0, 1]")
	}
	if math.IsNaN(a.Thickness) || a.Thickness < 0 {
		return invalid("thickness", a.Thickness, "must not be negative")
	}

	if kind.usesRadius() && !(a.Radius > 0) {
		return invalid("radius", a.Radius, "must be positive")
	}
	if kind.usesSize() && !(a.Size.X > 0 && a.Size.Y > 0 && a.Size.Z > 0) {
		return invalid("size", a.Size, "every extent must be positive")
	}
	if kind.usesAxis() && r3.Norm(a.Axis) == 0 {
		return invalid("axis", a.Axis, "must not be zero")
	}

	switch kind {
	case KindTriangle:
		for i, v := range a.Vertices {
			if !finite(v) {
				return invalid(fmt.Sprintf("vertices[%d]", i), v, "not a finite vector")
			}
		}
		e1 := r3.Sub(a.Vertices[1], a.Vertices[0])
		e2 := r3.Sub(a.Vertices[2], a.Vertices[0])
		if r3.Norm(r3.Cross(e1, e2)) < minTriangleArea {
			return invalid("vertices", a.Vertices, "triangle is degenerate")
		}
	case KindLabel:
		if a.Text == "" {
			return invalid("text", a.Text, "label needs text")
		}
	}

	return nil
}

func finite(v r3.Vec) bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
