// Package scene holds the renderable objects of a scene.
//
// A Registry owns every object, each tagged with its Kind and mutable
// Attributes. Objects are created once before the animation loop starts;
// after Seal the set of objects is fixed and only attributes change.
package scene

// Kind enumerates the primitive shapes a scene can contain.
type Kind int

const (
	KindBox Kind = iota
	KindSphere
	KindEllipsoid
	KindCylinder
	KindCone
	KindRing
	KindTriangle
	KindLabel
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindSphere:
		return "sphere"
	case KindEllipsoid:
		return "ellipsoid"
	case KindCylinder:
		return "cylinder"
	case KindCone:
		return "cone"
	case KindRing:
		return "ring"
	case KindTriangle:
		return "triangle"
	case KindLabel:
		return "label"
	default:
		return "unknown"
	}
}

// usesRadius reports whether Radius is meaningful (and required) for the kind.
func (k Kind) usesRadius() bool {
	switch k {
	case KindSphere, KindCylinder, KindCone, KindRing:
		return true
	}
	return false
}

// usesSize reports whether Size is meaningful (and required) for the kind.
func (k Kind) usesSize() bool {
	return k == KindBox || k == KindEllipsoid
}

// usesAxis reports whether the kind needs a non-zero Axis.
func (k Kind) usesAxis() bool {
	switch k {
	case KindCylinder, KindCone, KindRing:
		return true
	}
	return false
}
