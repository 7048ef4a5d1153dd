// Package kit holds the pieces shared by the scene builders: a sticky-error
// object builder, world assembly and layouts that recur across scenes.
package kit

import (
	"fmt"
	"math/rand/v2"

	"github.com/vovakirdan/tui-scenes/internal/anim"
	"github.com/vovakirdan/tui-scenes/internal/config"
	"github.com/vovakirdan/tui-scenes/internal/engine"
	"github.com/vovakirdan/tui-scenes/internal/scene"
)

// Builder creates objects in a fresh registry. After the first failure every
// further Add is a no-op and Err reports that failure.
type Builder struct {
	reg *scene.Registry
	err error
}

// NewBuilder returns a builder over an empty registry.
func NewBuilder() *Builder {
	return &Builder{reg: scene.NewRegistry()}
}

// Add creates one object and returns its handle, or 0 after a failure.
func (b *Builder) Add(kind scene.Kind, a scene.Attributes) scene.Handle {
	if b.err != nil {
		return 0
	}
	h, err := b.reg.Create(kind, a)
	if err != nil {
		b.err = fmt.Errorf("create %s #%d: %w", kind, b.reg.Len()+1, err)
		return 0
	}
	return h
}

// Err returns the first creation error.
func (b *Builder) Err() error {
	return b.err
}

// Registry returns the registry being filled.
func (b *Builder) Registry() *scene.Registry {
	return b.reg
}

// World assembles a world from a finished builder.
func World(name string, b *Builder, clock config.ClockConfig, view config.ViewConfig, passes []anim.Pass) (*engine.World, error) {
	if err := b.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	c, err := anim.NewClock(clock.DT, clock.DAngle)
	if err != nil {
		return nil, fmt.Errorf("%s: clock: %w", name, err)
	}
	return &engine.World{
		Name:     name,
		Registry: b.Registry(),
		Clock:    c,
		Passes:   passes,
		View: engine.View{
			Eye:        view.Eye.R3(),
			Target:     view.Target.R3(),
			Background: view.Background,
		},
	}, nil
}

// Rand returns the random source shared by every draw in one scene.
func Rand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}
