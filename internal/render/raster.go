package render

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/tui-scenes/internal/core"
	"github.com/vovakirdan/tui-scenes/internal/scene"
)

// shades runs from faint to dense.
var shades = []rune(".:-=+*#%@")

// minVisibleOpacity hides objects that would not register on screen.
const minVisibleOpacity = 0.02

// opaqueThreshold separates objects that write the depth buffer from
// translucent ones drawn afterwards, far to near.
const opaqueThreshold = 0.9

const circleSegments = 32

// Rasterizer draws scene objects into a screen using a per-cell depth buffer.
// A Rasterizer reuses its buffers between frames and is not safe for
// concurrent use.
type Rasterizer struct {
	depth []float64
	w, h  int

	dst  *core.Screen
	proj Projection
}

// NewRasterizer returns an empty rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{}
}

// Draw clears dst and renders the objects as seen from cam.
func (r *Rasterizer) Draw(dst *core.Screen, objs []scene.Object, cam Camera) {
	r.dst = dst
	r.proj = cam.Projection(dst.Width(), dst.Height())
	r.reset(dst.Width(), dst.Height())
	dst.Clear()

	var translucent []scene.Object
	for _, o := range objs {
		switch {
		case o.Opacity < minVisibleOpacity:
		case o.Opacity >= opaqueThreshold || o.Kind == scene.KindLabel:
			r.drawObject(o, true)
		default:
			translucent = append(translucent, o)
		}
	}

	eye := cam.Eye()
	sort.SliceStable(translucent, func(i, j int) bool {
		return r3.Norm2(r3.Sub(translucent[i].Pos, eye)) > r3.Norm2(r3.Sub(translucent[j].Pos, eye))
	})
	for _, o := range translucent {
		r.drawObject(o, false)
	}
}

func (r *Rasterizer) reset(w, h int) {
	if w != r.w || h != r.h {
		r.w, r.h = w, h
		r.depth = make([]float64, w*h)
	}
	for i := range r.depth {
		r.depth[i] = math.Inf(1)
	}
}

func (r *Rasterizer) drawObject(o scene.Object, opaque bool) {
	switch o.Kind {
	case scene.KindSphere:
		r.drawEllipse(o, opaque, o.Radius, o.Radius, o.Radius)
	case scene.KindEllipsoid:
		r.drawEllipse(o, opaque, math.Max(o.Size.X, o.Size.Z)/2, o.Size.Y/2, math.Min(o.Size.X, o.Size.Z)/2)
	case scene.KindBox:
		r.drawBox(o, opaque)
	case scene.KindCylinder:
		r.drawCylinder(o, opaque)
	case scene.KindCone:
		r.drawCone(o, opaque)
	case scene.KindRing:
		r.drawCircle(o, opaque, o.Pos, o.Axis, o.Radius)
	case scene.KindTriangle:
		r.drawTriangle(o, opaque)
	case scene.KindLabel:
		r.drawLabel(o)
	}
}

// plot writes one cell if it is nearer than what is already there.
func (r *Rasterizer) plot(x, y int, z float64, ch rune, c core.Color, opaque bool) {
	if x < 0 || x >= r.w || y < 0 || y >= r.h {
		return
	}
	i := y*r.w + x
	if z >= r.depth[i] {
		return
	}
	if opaque {
		r.depth[i] = z
	}
	r.dst.SetCell(x, y, core.Cell{Rune: ch, Color: c, Styled: true})
}

// shade picks a glyph for an object's coverage at one cell.
func shade(o scene.Object, weight float64) rune {
	v := o.Opacity * (0.35 + 0.65*o.Color.Lightness()) * weight
	i := int(v * float64(len(shades)))
	return shades[core.Clamp(i, 0, len(shades)-1)]
}

// drawEllipse fills the silhouette of an ellipsoid with semi-axes
// (rx, ry, rz); rz only contributes depth.
func (r *Rasterizer) drawEllipse(o scene.Object, opaque bool, rx, ry, rz float64) {
	c, ok := r.proj.Project(o.Pos)
	if !ok {
		return
	}
	k := r.proj.RowsPerUnit(c.Z)
	sx := math.Max(rx*k*r.proj.aspect, 0.5)
	sy := math.Max(ry*k, 0.5)

	minX := int(core.ClampF(math.Floor(c.X-sx), 0, float64(r.w-1)))
	maxX := int(core.ClampF(math.Ceil(c.X+sx), 0, float64(r.w-1)))
	minY := int(core.ClampF(math.Floor(c.Y-sy), 0, float64(r.h-1)))
	maxY := int(core.ClampF(math.Ceil(c.Y+sy), 0, float64(r.h-1)))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := (float64(x) + 0.5 - c.X) / sx
			dy := (float64(y) + 0.5 - c.Y) / sy
			d2 := dx*dx + dy*dy
			if d2 > 1 {
				continue
			}
			bulge := math.Sqrt(1 - d2)
			// Light from the upper left.
			light := 0.55 + 0.45*core.ClampF(bulge-0.4*dx-0.4*dy, 0, 1)
			r.plot(x, y, c.Z-rz*bulge, shade(o, light), o.Color, opaque)
		}
	}
}

// line draws a depth-interpolated segment between two world points.
// Segments with an end behind the camera are skipped.
func (r *Rasterizer) line(a, b r3.Vec, o scene.Object, opaque bool) {
	pa, ok := r.proj.Project(a)
	if !ok {
		return
	}
	pb, ok := r.proj.Project(b)
	if !ok {
		return
	}

	steps := int(math.Max(math.Abs(pb.X-pa.X), math.Abs(pb.Y-pa.Y))) + 1
	if steps > 4*(r.w+r.h) {
		steps = 4 * (r.w + r.h)
	}
	ch := shade(o, 1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := pa.X + (pb.X-pa.X)*t
		y := pa.Y + (pb.Y-pa.Y)*t
		z := pa.Z + (pb.Z-pa.Z)*t
		r.plot(int(math.Floor(x)), int(math.Floor(y)), z, ch, o.Color, opaque)
	}
}

func (r *Rasterizer) drawBox(o scene.Object, opaque bool) {
	h := r3.Scale(0.5, o.Size)
	var corners [8]r3.Vec
	for i := range corners {
		s := r3.Vec{X: -1, Y: -1, Z: -1}
		if i&1 != 0 {
			s.X = 1
		}
		if i&2 != 0 {
			s.Y = 1
		}
		if i&4 != 0 {
			s.Z = 1
		}
		corners[i] = r3.Add(o.Pos, r3.Vec{X: s.X * h.X, Y: s.Y * h.Y, Z: s.Z * h.Z})
	}
	for i := range corners {
		for _, bit := range []int{1, 2, 4} {
			if j := i | bit; j != i {
				r.line(corners[i], corners[j], o, opaque)
			}
		}
	}
}

// circle returns points on a circle of radius around center, in the plane
// normal to axis.
func circle(center, axis r3.Vec, radius float64, n int) []r3.Vec {
	normal := r3.Unit(axis)
	ref := worldUp
	if math.Abs(normal.Y) > 0.9 {
		ref = r3.Vec{X: 1}
	}
	u := r3.Unit(r3.Cross(normal, ref))
	v := r3.Cross(normal, u)

	pts := make([]r3.Vec, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = r3.Add(center, r3.Add(r3.Scale(radius*math.Cos(a), u), r3.Scale(radius*math.Sin(a), v)))
	}
	return pts
}

func (r *Rasterizer) polyline(pts []r3.Vec, o scene.Object, opaque bool) {
	for i := range pts {
		r.line(pts[i], pts[(i+1)%len(pts)], o, opaque)
	}
}

func (r *Rasterizer) drawCircle(o scene.Object, opaque bool, center, axis r3.Vec, radius float64) {
	r.polyline(circle(center, axis, radius, circleSegments), o, opaque)
}

// drawCylinder draws both end caps and four connecting edges.
// The cylinder runs from Pos to Pos+Axis.
func (r *Rasterizer) drawCylinder(o scene.Object, opaque bool) {
	top := r3.Add(o.Pos, o.Axis)
	base := circle(o.Pos, o.Axis, o.Radius, circleSegments)
	lid := circle(top, o.Axis, o.Radius, circleSegments)
	r.polyline(base, o, opaque)
	r.polyline(lid, o, opaque)
	for i := 0; i < circleSegments; i += circleSegments / 4 {
		r.line(base[i], lid[i], o, opaque)
	}
}

// drawCone draws the base circle and edges to the apex at Pos+Axis.
func (r *Rasterizer) drawCone(o scene.Object, opaque bool) {
	apex := r3.Add(o.Pos, o.Axis)
	base := circle(o.Pos, o.Axis, o.Radius, circleSegments)
	r.polyline(base, o, opaque)
	for i := 0; i < circleSegments; i += circleSegments / 8 {
		r.line(base[i], apex, o, opaque)
	}
}

// drawTriangle fills the projected triangle.
func (r *Rasterizer) drawTriangle(o scene.Object, opaque bool) {
	var p [3]Point
	for i, v := range o.Vertices {
		pt, ok := r.proj.Project(v)
		if !ok {
			return
		}
		p[i] = pt
	}

	area := edge(p[0], p[1], p[2])
	if math.Abs(area) < 1e-9 {
		r.line(o.Vertices[0], o.Vertices[1], o, opaque)
		r.line(o.Vertices[1], o.Vertices[2], o, opaque)
		return
	}

	minX := int(math.Floor(math.Min(p[0].X, math.Min(p[1].X, p[2].X))))
	maxX := int(math.Ceil(math.Max(p[0].X, math.Max(p[1].X, p[2].X))))
	minY := int(math.Floor(math.Min(p[0].Y, math.Min(p[1].Y, p[2].Y))))
	maxY := int(math.Ceil(math.Max(p[0].Y, math.Max(p[1].Y, p[2].Y))))
	minX, maxX = core.Clamp(minX, 0, r.w-1), core.Clamp(maxX, 0, r.w-1)
	minY, maxY = core.Clamp(minY, 0, r.h-1), core.Clamp(maxY, 0, r.h-1)

	ch := shade(o, 1)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			q := Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			w0 := edge(p[1], p[2], q) / area
			w1 := edge(p[2], p[0], q) / area
			w2 := edge(p[0], p[1], q) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := w0*p[0].Z + w1*p[1].Z + w2*p[2].Z
			r.plot(x, y, z, ch, o.Color, opaque)
		}
	}
}

func edge(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// drawLabel centres the text on the projected position.
func (r *Rasterizer) drawLabel(o scene.Object) {
	p, ok := r.proj.Project(o.Pos)
	if !ok {
		return
	}
	runes := []rune(o.Text)
	x0 := int(math.Round(p.X)) - len(runes)/2
	y := int(math.Floor(p.Y))
	for i, ch := range runes {
		r.plot(x0+i, y, p.Z, ch, o.Color, true)
	}
}
