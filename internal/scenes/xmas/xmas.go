// Package xmas implements the Christmas night scene: a decorated tree with a
// spinning star, presents, distant mountains, the moon, a twinkling sky and
// endlessly falling snow.
package xmas

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/tui-scenes/internal/anim"
	"github.com/vovakirdan/tui-scenes/internal/config"
	"github.com/vovakirdan/tui-scenes/internal/core"
	"github.com/vovakirdan/tui-scenes/internal/engine"
	"github.com/vovakirdan/tui-scenes/internal/registry"
	"github.com/vovakirdan/tui-scenes/internal/scene"
	"github.com/vovakirdan/tui-scenes/internal/scenes/kit"
)

const (
	groundSize     = 200
	ornamentJitter = 0.3

	skyTwinkleBase = 0.05
	skyTwinkleAmp  = 0.05
)

var (
	ribbonColor  = core.RGB(1, 0.84, 0)
	mountainGray = core.RGB(0.6, 0.65, 0.7)
)

// Scene builds the Christmas night.
type Scene struct {
	configPath string
}

// New creates a new Christmas scene.
func New() *Scene {
	return &Scene{}
}

func init() {
	registry.Register("xmas", func() registry.Scene {
		return New()
	})
}

// ID returns the unique identifier for this scene.
func (s *Scene) ID() string {
	return "xmas"
}

// Title returns the display name for this scene.
func (s *Scene) Title() string {
	return "Christmas Night"
}

// SetConfigPath sets a custom config file path.
func (s *Scene) SetConfigPath(path string) {
	s.configPath = path
}

// Build loads the configuration and constructs the world.
// The seed drives ornaments, presents, mountains, stars and snow.
func (s *Scene) Build(rt core.RuntimeConfig) (*engine.World, error) {
	cfg, err := config.LoadXmas(s.configPath)
	if err != nil {
		return nil, err
	}
	return BuildWorld(cfg, rt.Seed)
}

// builder carries the shared state of one scene construction.
type builder struct {
	*kit.Builder
	cfg    config.XmasConfig
	rng    *rand.Rand
	passes []anim.Pass
}

// BuildWorld constructs the scene from an explicit configuration.
func BuildWorld(cfg config.XmasConfig, seed int64) (*engine.World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := &builder{Builder: kit.NewBuilder(), cfg: cfg, rng: kit.Rand(seed)}

	b.tree()
	b.ornaments()
	b.star()
	b.presents()
	b.mountains()
	b.Add(scene.KindSphere, scene.Attributes{
		Pos:      cfg.Moon.Pos.R3(),
		Radius:   cfg.Moon.Radius,
		Color:    cfg.Moon.Color,
		Opacity:  1,
		Emissive: true,
	})
	b.sky()
	b.snow()

	return kit.World("xmas", b.Builder, cfg.Clock, cfg.View, b.passes)
}

func (b *builder) uniform(lo, hi float64) float64 {
	return anim.Uniform(b.rng, lo, hi)
}

// floor is the ground level: the bottom of the trunk.
func (b *builder) floor() float64 {
	return -b.cfg.Tree.Height / 2
}

// levelHeight is the height of one cone layer.
func (b *builder) levelHeight() float64 {
	return b.cfg.Tree.Height / float64(b.cfg.Tree.Levels+1)
}

// levelBase returns the bottom of layer i.
func (b *builder) levelBase(i int) float64 {
	trunk := b.cfg.Tree.Height / 6
	return b.floor() + trunk + float64(i)*b.levelHeight()*0.8
}

func (b *builder) levelRadius(i int) float64 {
	return b.cfg.Tree.BaseRadius - float64(i)*b.cfg.Tree.LevelShrink
}

func (b *builder) tree() {
	t := b.cfg.Tree
	b.Add(scene.KindBox, scene.Attributes{
		Pos:     r3.Vec{Y: b.floor() - 0.5},
		Size:    r3.Vec{X: groundSize, Y: 0.1, Z: groundSize},
		Color:   t.GroundColor,
		Opacity: 1,
	})
	b.Add(scene.KindCylinder, scene.Attributes{
		Pos:     r3.Vec{Y: b.floor()},
		Axis:    r3.Vec{Y: t.Height / 6},
		Radius:  t.TrunkRadius,
		Color:   t.TrunkColor,
		Opacity: 1,
	})
	for i := 0; i < t.Levels; i++ {
		b.Add(scene.KindCone, scene.Attributes{
			Pos:     r3.Vec{Y: b.levelBase(i)},
			Axis:    r3.Vec{Y: b.levelHeight()},
			Radius:  b.levelRadius(i),
			Color:   core.RGB(0, 0.5+float64(i)*0.1, 0).Clamped(),
			Opacity: 1,
		})
	}
}

// ornaments hangs baubles around the layers, keeping clear of the star.
// Candidates that land too high are dropped, so fewer than Count may appear.
func (b *builder) ornaments() {
	o := b.cfg.Ornaments
	if b.cfg.Tree.Levels <= 0 || len(o.Colors) == 0 {
		return
	}
	for i := 0; i < o.Count; i++ {
		level := b.rng.IntN(b.cfg.Tree.Levels)
		y := b.levelBase(level) + b.uniform(-ornamentJitter, ornamentJitter)
		if y > b.cfg.Tree.Height/4 {
			continue
		}
		r := b.levelRadius(level) * b.uniform(0.7, 0.95)
		theta := b.uniform(0, 2*math.Pi)
		b.Add(scene.KindSphere, scene.Attributes{
			Pos:      r3.Vec{X: r * math.Cos(theta), Y: y, Z: r * math.Sin(theta)},
			Radius:   b.uniform(o.MinRadius, o.MaxRadius),
			Color:    o.Colors[b.rng.IntN(len(o.Colors))],
			Opacity:  1,
			Emissive: true,
		})
	}
}

// StarCenter returns where the star sits for a tree of the given height.
func StarCenter(treeHeight float64) r3.Vec {
	return r3.Vec{Y: treeHeight/2.8 + 0.8}
}

// star builds a five-pointed star from 20 triangles: a ten-point outline in
// the XY plane joined to a front and a back tip.
func (b *builder) star() {
	size := b.cfg.Star.Size
	center := StarCenter(b.cfg.Tree.Height)

	var outline [10]r3.Vec
	for i := range outline {
		a := math.Pi/2 + float64(i)*math.Pi/5
		r := size
		if i%2 == 1 {
			r = size * 0.4
		}
		outline[i] = r3.Add(center, r3.Vec{X: r * math.Cos(a), Y: r * math.Sin(a)})
	}
	front := r3.Add(center, r3.Vec{Z: size / 2})
	back := r3.Add(center, r3.Vec{Z: -size / 2})

	spin := anim.PivotSpin{Pivot: center, Step: b.cfg.Star.Spin}
	twinkle := anim.ColorWave{
		R: anim.Const(1),
		G: anim.Wave{Base: 0.7, Amp: 0.3, Freq: 6, Source: anim.SourceAngle},
		B: anim.Wave{Base: 0.2, Amp: 0.1, Freq: 3, Source: anim.SourceAngle},
	}
	for i := range outline {
		p1, p2 := outline[i], outline[(i+1)%len(outline)]
		for _, tip := range []r3.Vec{front, back} {
			face := b.Add(scene.KindTriangle, scene.Attributes{
				Pos:      center,
				Vertices: [3]r3.Vec{p1, p2, tip},
				Color:    core.ColorYellow,
				Opacity:  1,
			})
			b.passes = append(b.passes, anim.Bind(face, spin, twinkle))
		}
	}
}

// presents scatters wrapped boxes around the trunk, each with two ribbons.
func (b *builder) presents() {
	wraps := []core.Color{core.ColorRed, core.ColorGreen}
	for i := 0; i < b.cfg.Presents; i++ {
		a := b.uniform(0, 2*math.Pi)
		r := b.uniform(1.5, 3.5)
		pos := r3.Vec{X: r * math.Cos(a), Y: b.floor() + 0.3, Z: r * math.Sin(a)}
		wrap := wraps[b.rng.IntN(len(wraps))]
		size := r3.Vec{X: b.uniform(0.7, 1.2), Y: b.uniform(0.5, 0.8), Z: b.uniform(0.7, 1.2)}

		b.Add(scene.KindBox, scene.Attributes{Pos: pos, Size: size, Color: wrap, Opacity: 1})
		b.Add(scene.KindBox, scene.Attributes{
			Pos:     pos,
			Size:    r3.Vec{X: 0.08, Y: size.Y + 0.01, Z: size.Z + 0.01},
			Color:   ribbonColor,
			Opacity: 1,
		})
		b.Add(scene.KindBox, scene.Attributes{
			Pos:     pos,
			Size:    r3.Vec{X: size.X + 0.01, Y: size.Y + 0.01, Z: 0.08},
			Color:   ribbonColor,
			Opacity: 1,
		})
	}
}

// mountains lines up a range of peaks behind the tree.
func (b *builder) mountains() {
	n := b.cfg.Mountains
	for i := 0; i < n; i++ {
		slot := float64(i - n/2)
		height := b.uniform(6, 12)
		radius := b.uniform(10, 16)
		b.Add(scene.KindCone, scene.Attributes{
			Pos: r3.Vec{
				X: slot*15 + b.uniform(-3, 3),
				Y: b.floor() - 0.5,
				Z: -40 + b.uniform(-5, 5),
			},
			Axis:    r3.Vec{Y: height},
			Radius:  radius,
			Color:   mountainGray,
			Opacity: 0.9,
		})
	}
}

// sky fills the backdrop with stars. Each tick a few of them, picked at
// random, get a new radius.
func (b *builder) sky() {
	s := b.cfg.Sky
	stars := make([]scene.Handle, 0, s.Count)
	for i := 0; i < s.Count; i++ {
		stars = append(stars, b.Add(scene.KindSphere, scene.Attributes{
			Pos:      r3.Vec{X: b.uniform(-100, 100), Y: b.uniform(5, 40), Z: b.uniform(-120, -40)},
			Radius:   b.uniform(0.05, 0.15),
			Color:    core.ColorWhite,
			Opacity:  1,
			Emissive: true,
		}))
	}
	b.passes = append(b.passes, anim.Sample{
		Handles: stars,
		N:       s.Twinkling,
		Rule: anim.Twinkle{
			Base:   skyTwinkleBase,
			Amp:    skyTwinkleAmp,
			FreqLo: s.FreqLo,
			FreqHi: s.FreqHi,
			Rand:   b.rng,
		},
		Rand: b.rng,
	})
}

// snow creates the flakes. A flake that falls below the ground restarts
// above the tree at a random spot.
func (b *builder) snow() {
	s := b.cfg.Snow
	fall := anim.Snowfall{
		Rate:      s.Rate,
		Floor:     b.floor(),
		ResetLow:  s.ResetLow,
		ResetHigh: s.ResetHigh,
		SpreadX:   s.Spread,
		SpreadZ:   s.Spread,
		Rand:      b.rng,
	}
	for i := 0; i < s.Count; i++ {
		flake := b.Add(scene.KindSphere, scene.Attributes{
			Pos:     r3.Vec{X: b.uniform(-s.Spread, s.Spread), Y: b.uniform(0, 8), Z: b.uniform(-s.Spread, s.Spread)},
			Radius:  s.Radius,
			Color:   core.ColorWhite,
			Opacity: 1,
		})
		b.passes = append(b.passes, anim.Bind(flake, fall))
	}
}
