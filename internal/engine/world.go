// Package engine runs a scene: it owns the tick loop that advances the
// frame clock, applies every update pass and hands the result to a sink.
package engine

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/tui-scenes/internal/anim"
	"github.com/vovakirdan/tui-scenes/internal/core"
	"github.com/vovakirdan/tui-scenes/internal/scene"
)

// View is the initial camera placement of a scene.
type View struct {
	Eye        r3.Vec
	Target     r3.Vec
	Background core.Color
}

// DefaultView looks at the origin from the front, slightly above.
func DefaultView() View {
	return View{Eye: r3.Vec{Y: 3, Z: 12}}
}

// World is a fully built scene, ready to be animated.
type World struct {
	Name     string
	Registry *scene.Registry
	Clock    anim.Clock
	Passes   []anim.Pass
	View     View
}

// Frame is the state handed to a sink after one tick.
type Frame struct {
	Tick    uint64
	Clock   anim.Clock
	Objects []scene.Object
}
