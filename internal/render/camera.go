// Package render turns scene snapshots into character cells.
//
// A Camera projects world coordinates onto a terminal-sized grid and a
// Rasterizer draws every object kind into a core.Screen with a depth buffer.
package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/tui-scenes/internal/core"
	"github.com/vovakirdan/tui-scenes/internal/engine"
)

const (
	nearPlane   = 0.1
	maxPitch    = math.Pi/2 - 0.05
	minDistance = 1.0
	maxDistance = 200.0

	// DefaultFOV is the vertical field of view in radians.
	DefaultFOV = math.Pi / 3
	// CellAspect is the height of a terminal cell divided by its width.
	CellAspect = 2.0
)

var worldUp = r3.Vec{Y: 1}

// Camera is a perspective camera orbiting a target point.
type Camera struct {
	Target   r3.Vec
	Yaw      float64 // Rotation about the vertical axis; 0 puts the eye on +Z
	Pitch    float64 // Elevation above the horizontal plane
	Distance float64
	FOV      float64
	Aspect   float64

	home placement
}

// placement is what Reset restores.
type placement struct {
	target     r3.Vec
	yaw, pitch float64
	distance   float64
}

// NewCamera places a camera at the view's eye, looking at its target.
func NewCamera(v engine.View) Camera {
	d := r3.Sub(v.Eye, v.Target)
	dist := r3.Norm(d)
	if dist < minDistance {
		d = r3.Vec{Z: 12}
		dist = 12
	}

	c := Camera{
		Target:   v.Target,
		Yaw:      math.Atan2(d.X, d.Z),
		Pitch:    core.ClampF(math.Asin(d.Y/dist), -maxPitch, maxPitch),
		Distance: dist,
		FOV:      DefaultFOV,
		Aspect:   CellAspect,
	}
	c.home = placement{target: c.Target, yaw: c.Yaw, pitch: c.Pitch, distance: c.Distance}
	return c
}

// Orbit turns the camera around the target by delta radians.
func (c *Camera) Orbit(delta float64) {
	c.Yaw += delta
}

// Tilt raises or lowers the camera by delta radians.
func (c *Camera) Tilt(delta float64) {
	c.Pitch = core.ClampF(c.Pitch+delta, -maxPitch, maxPitch)
}

// Zoom scales the distance to the target. Factors below 1 move closer.
func (c *Camera) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	c.Distance = core.ClampF(c.Distance*factor, minDistance, maxDistance)
}

// Reset restores the initial placement.
func (c *Camera) Reset() {
	c.Target = c.home.target
	c.Yaw = c.home.yaw
	c.Pitch = c.home.pitch
	c.Distance = c.home.distance
}

// Eye returns the camera position in world space.
func (c Camera) Eye() r3.Vec {
	cp := math.Cos(c.Pitch)
	return r3.Add(c.Target, r3.Vec{
		X: c.Distance * cp * math.Sin(c.Yaw),
		Y: c.Distance * math.Sin(c.Pitch),
		Z: c.Distance * cp * math.Cos(c.Yaw),
	})
}

// basis returns the eye position and the forward, right and up unit vectors.
func (c Camera) basis() (eye, fwd, right, up r3.Vec) {
	eye = c.Eye()
	fwd = r3.Unit(r3.Sub(c.Target, eye))
	right = r3.Unit(r3.Cross(fwd, worldUp))
	up = r3.Cross(right, fwd)
	return eye, fwd, right, up
}

// Projection maps world points onto a w x h cell grid for one frame.
type Projection struct {
	eye, fwd, right, up r3.Vec

	cx, cy float64
	scale  float64 // rows per world unit at depth 1
	aspect float64
}

// Projection prepares a projection for a w x h grid.
func (c Camera) Projection(w, h int) Projection {
	eye, fwd, right, up := c.basis()
	fov := c.FOV
	if fov <= 0 {
		fov = DefaultFOV
	}
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = CellAspect
	}
	return Projection{
		eye:    eye,
		fwd:    fwd,
		right:  right,
		up:     up,
		cx:     float64(w) / 2,
		cy:     float64(h) / 2,
		scale:  float64(h) / 2 / math.Tan(fov/2),
		aspect: aspect,
	}
}

// Point is a projected position: screen column, row and view depth.
type Point struct {
	X, Y, Z float64
}

// Project maps p to the grid. ok is false for points behind the near plane.
func (p Projection) Project(v r3.Vec) (pt Point, ok bool) {
	d := r3.Sub(v, p.eye)
	z := r3.Dot(d, p.fwd)
	if z < nearPlane {
		return Point{}, false
	}
	k := p.scale / z
	return Point{
		X: p.cx + r3.Dot(d, p.right)*k*p.aspect,
		Y: p.cy - r3.Dot(d, p.up)*k,
		Z: z,
	}, true
}

// RowsPerUnit returns how many rows one world unit spans at depth z.
func (p Projection) RowsPerUnit(z float64) float64 {
	if z < nearPlane {
		return 0
	}
	return p.scale / z
}

// Project maps a single point onto a w x h grid.
func (c Camera) Project(v r3.Vec, w, h int) (Point, bool) {
	return c.Projection(w, h).Project(v)
}
