package render

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/tui-scenes/internal/anim"
	"github.com/vovakirdan/tui-scenes/internal/core"
	"github.com/vovakirdan/tui-scenes/internal/engine"
	"github.com/vovakirdan/tui-scenes/internal/scene"
)

func frontCamera() Camera {
	return NewCamera(engine.View{Eye: r3.Vec{Z: 10}})
}

func sphere(h scene.Handle, pos r3.Vec, c core.Color, opacity float64) scene.Object {
	return scene.Object{
		Handle: h,
		Kind:   scene.KindSphere,
		Attributes: scene.Attributes{
			Pos:     pos,
			Radius:  0.5,
			Color:   c,
			Opacity: opacity,
		},
	}
}

func TestProjectCenterAndAxes(t *testing.T) {
	p := frontCamera().Projection(80, 24)

	c, ok := p.Project(r3.Vec{})
	if !ok {
		t.Fatal("origin not visible")
	}
	if math.Abs(c.X-40) > 1e-9 || math.Abs(c.Y-12) > 1e-9 || math.Abs(c.Z-10) > 1e-9 {
		t.Errorf("origin projects to %+v, want (40, 12, 10)", c)
	}

	right, _ := p.Project(r3.Vec{X: 1})
	if right.X <= c.X {
		t.Errorf("+X projects to column %v, want right of %v", right.X, c.X)
	}
	up, _ := p.Project(r3.Vec{Y: 1})
	if up.Y >= c.Y {
		t.Errorf("+Y projects to row %v, want above %v", up.Y, c.Y)
	}
	// Cells are twice as tall as wide.
	if dx, dy := right.X-c.X, c.Y-up.Y; math.Abs(dx-2*dy) > 1e-9 {
		t.Errorf("column span %v, row span %v, want 2:1", dx, dy)
	}

	if _, ok := p.Project(r3.Vec{Z: 20}); ok {
		t.Error("point behind the camera reported visible")
	}
}

func TestCameraControls(t *testing.T) {
	cam := frontCamera()

	cam.Zoom(0.0001)
	if cam.Distance != minDistance {
		t.Errorf("Distance = %v, want clamped to %v", cam.Distance, minDistance)
	}
	cam.Tilt(10)
	if cam.Pitch != maxPitch {
		t.Errorf("Pitch = %v, want clamped to %v", cam.Pitch, maxPitch)
	}
	cam.Orbit(math.Pi / 2)

	cam.Reset()
	if cam.Distance != 10 || cam.Pitch != 0 || cam.Yaw != 0 {
		t.Errorf("Reset() left %+v", cam)
	}

	cam.Orbit(math.Pi / 2)
	eye := cam.Eye()
	if math.Abs(eye.X-10) > 1e-9 || math.Abs(eye.Z) > 1e-9 {
		t.Errorf("Eye() after quarter orbit = %+v, want (10, 0, 0)", eye)
	}
}

func TestDrawDepthOrdering(t *testing.T) {
	near := sphere(1, r3.Vec{Z: 2}, core.ColorRed, 1)
	far := sphere(2, r3.Vec{Z: -2}, core.ColorBlue, 1)

	for _, objs := range [][]scene.Object{{near, far}, {far, near}} {
		s := core.NewScreen(80, 24)
		NewRasterizer().Draw(s, objs, frontCamera())
		if got := s.GetCell(40, 12); got.Color != core.ColorRed || got.Rune == ' ' {
			t.Errorf("centre cell = %+v, want the near red sphere", got)
		}
	}
}

func TestDrawTranslucency(t *testing.T) {
	glass := sphere(1, r3.Vec{Z: 2}, core.ColorGreen, 0.3)
	solid := sphere(2, r3.Vec{}, core.ColorRed, 1)

	s := core.NewScreen(80, 24)
	NewRasterizer().Draw(s, []scene.Object{glass, solid}, frontCamera())
	if got := s.GetCell(40, 12); got.Color != core.ColorGreen {
		t.Errorf("translucent sphere in front not drawn over solid: %+v", got)
	}

	hidden := sphere(3, r3.Vec{Z: -3}, core.ColorBlue, 0.3)
	s2 := core.NewScreen(80, 24)
	NewRasterizer().Draw(s2, []scene.Object{hidden, solid}, frontCamera())
	if got := s2.GetCell(40, 12); got.Color != core.ColorRed {
		t.Errorf("translucent sphere behind solid shows through: %+v", got)
	}

	invisible := sphere(4, r3.Vec{}, core.ColorWhite, 0)
	s3 := core.NewScreen(80, 24)
	NewRasterizer().Draw(s3, []scene.Object{invisible}, frontCamera())
	if strings.TrimSpace(s3.String()) != "" {
		t.Error("zero-opacity object was drawn")
	}
}

func TestDrawEveryKindStaysOnScreen(t *testing.T) {
	objs := []scene.Object{
		{Handle: 1, Kind: scene.KindBox, Attributes: scene.Attributes{Size: r3.Vec{X: 2, Y: 2, Z: 2}, Color: core.ColorCyan, Opacity: 1}},
		{Handle: 2, Kind: scene.KindEllipsoid, Attributes: scene.Attributes{Size: r3.Vec{X: 1.8, Y: 0.4, Z: 1.8}, Color: core.Gray(0.5), Opacity: 1}},
		{Handle: 3, Kind: scene.KindCylinder, Attributes: scene.Attributes{Axis: r3.Vec{Y: 2}, Radius: 1, Color: core.ColorWhite, Opacity: 1}},
		{Handle: 4, Kind: scene.KindCone, Attributes: scene.Attributes{Axis: r3.Vec{Y: 1}, Radius: 0.5, Color: core.ColorGreen, Opacity: 1}},
		{Handle: 5, Kind: scene.KindRing, Attributes: scene.Attributes{Axis: r3.Vec{Z: 1}, Radius: 3, Thickness: 0.1, Color: core.ColorMagenta, Opacity: 1}},
		{Handle: 6, Kind: scene.KindTriangle, Attributes: scene.Attributes{
			Vertices: [3]r3.Vec{{X: -1}, {X: 1}, {Y: 1}}, Color: core.ColorYellow, Opacity: 1,
		}},
		{Handle: 7, Kind: scene.KindLabel, Attributes: scene.Attributes{Pos: r3.Vec{Y: -4.5}, Text: "chamber", Color: core.ColorWhite, Opacity: 1}},
		// Far off to the side: clipped, never panics.
		sphere(8, r3.Vec{X: 500}, core.ColorRed, 1),
	}

	s := core.NewScreen(80, 24)
	NewRasterizer().Draw(s, objs, frontCamera())

	out := s.String()
	if !strings.Contains(out, "chamber") {
		t.Error("label text not drawn")
	}
	for _, want := range []core.Color{core.ColorCyan, core.ColorMagenta, core.ColorYellow} {
		found := false
		for y := 0; y < s.Height() && !found; y++ {
			for x := 0; x < s.Width(); x++ {
				if s.GetCell(x, y).Color == want {
					found = true
					break
				}
			}
		}
		if !found {
			t.Errorf("no cell drawn in colour %+v", want)
		}
	}
}

func TestDrawHugeSphereFillsScreen(t *testing.T) {
	// The camera sits inside the sphere, whose projected bounds dwarf the screen.
	dome := sphere(1, r3.Vec{Z: 8}, core.ColorRed, 1)
	dome.Radius = 1e5

	s := core.NewScreen(80, 24)
	NewRasterizer().Draw(s, []scene.Object{dome}, frontCamera())

	for _, p := range [][2]int{{0, 0}, {79, 0}, {40, 12}, {0, 23}, {79, 23}} {
		if got := s.GetCell(p[0], p[1]); got.Color != core.ColorRed {
			t.Errorf("cell %v = %+v, want the red sphere", p, got)
		}
	}
}

func TestFrameWriterEvery(t *testing.T) {
	var buf bytes.Buffer
	fw := NewFrameWriter(&buf, frontCamera(), 40, 12, 2)

	objs := []scene.Object{sphere(1, r3.Vec{}, core.ColorRed, 1)}
	for tick := uint64(1); tick <= 4; tick++ {
		f := engine.Frame{Tick: tick, Clock: anim.Clock{Ticks: tick}, Objects: objs}
		if err := fw.Present(context.Background(), f); err != nil {
			t.Fatal(err)
		}
	}

	out := buf.String()
	if strings.Count(out, "-- tick") != 2 || !strings.Contains(out, "-- tick 2") || !strings.Contains(out, "-- tick 4") {
		t.Errorf("output headers wrong:\n%s", out)
	}
}
