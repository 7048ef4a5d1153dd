// Package anim drives scene animation: a fixed-step frame clock and the
// per-frame update rules that turn (object, clock) into new attributes.
package anim

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadStep is returned for a clock increment that would run time backwards.
var ErrBadStep = errors.New("anim: clock step must be a non-negative number")

// Clock is the simulated frame clock of a scene.
// T and Angle only ever grow by DT and DAngle per tick; neither is wrapped.
type Clock struct {
	T      float64 // Simulated time
	Angle  float64 // Angular accumulator
	Ticks  uint64  // Number of ticks since start
	DT     float64 // Time increment per tick
	DAngle float64 // Angle increment per tick
}

// NewClock returns a clock at t=0, angle=0 advancing by the given steps.
func NewClock(dt, dAngle float64) (Clock, error) {
	for _, v := range []float64{dt, dAngle} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return Clock{}, fmt.Errorf("%w: got %v", ErrBadStep, v)
		}
	}
	return Clock{DT: dt, DAngle: dAngle}, nil
}

// Tick returns the clock advanced by one step. The clock performs no waiting.
func (c Clock) Tick() Clock {
	c.T += c.DT
	c.Angle += c.DAngle
	c.Ticks++
	return c
}
