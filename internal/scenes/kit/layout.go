package kit

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/tui-scenes/internal/config"
	"github.com/vovakirdan/tui-scenes/internal/scene"
)

// GridPositions lays out cols x rows points in the plane y, centred on the
// vertical axis, column-major.
func GridPositions(cols, rows int, spacing, y float64) []r3.Vec {
	x0 := -float64(cols-1) * spacing / 2
	z0 := -float64(rows-1) * spacing / 2

	pts := make([]r3.Vec, 0, cols*rows)
	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			pts = append(pts, r3.Vec{X: x0 + float64(i)*spacing, Y: y, Z: z0 + float64(j)*spacing})
		}
	}
	return pts
}

// RingGrid creates the rings of a ring array in the plane y.
func RingGrid(b *Builder, cfg config.RingArray, y float64) []scene.Handle {
	var hs []scene.Handle
	for _, p := range GridPositions(cfg.Cols, cfg.Rows, cfg.Spacing, y) {
		hs = append(hs, b.Add(scene.KindRing, scene.Attributes{
			Pos:       p,
			Axis:      cfg.Axis.R3(),
			Radius:    cfg.Radius,
			Thickness: cfg.Thickness,
			Color:     cfg.Color,
			Opacity:   1,
			Emissive:  true,
		}))
	}
	return hs
}
