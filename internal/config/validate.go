package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("config: invalid value")

// checker records the first failed check.
type checker struct {
	err error
}

func (c *checker) fail(format string, args ...any) {
	if c.err == nil {
		c.err = fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
	}
}

func (c *checker) count(name string, n int) {
	if n < 0 {
		c.fail("%s must not be negative, got %d", name, n)
	}
}

func (c *checker) positive(name string, v float64) {
	if !(v > 0) {
		c.fail("%s must be positive, got %v", name, v)
	}
}

func (c *checker) ordered(lo, hi string, a, b float64) {
	if !(a <= b) {
		c.fail("%s (%v) must not exceed %s (%v)", lo, a, hi, b)
	}
}

func (c *checker) rings(cfg RingArray) {
	c.count("rings.cols", cfg.Cols)
	c.count("rings.rows", cfg.Rows)
	c.positive("rings.spacing", cfg.Spacing)
	c.positive("rings.radius", cfg.Radius)
}

func (c *checker) chamber(cfg ChamberConfig) {
	c.positive("chamber.radius", cfg.Radius)
	c.positive("chamber.length", cfg.Length)
}

func (c *checker) particles(cfg ParticleConfig) {
	c.count("particles.count", cfg.Count)
	c.positive("particles.radius", cfg.Radius)
	if cfg.MaxSpeed < 0 {
		c.fail("particles.max_speed must not be negative, got %v", cfg.MaxSpeed)
	}
}

// Validate checks the MEMS configuration.
func (cfg MEMSConfig) Validate() error {
	var c checker
	c.positive("wafer.size", cfg.Wafer.Size)
	c.positive("dome.radius_factor", cfg.Dome.RadiusFactor)
	c.positive("glow.radius", cfg.Glow.Radius)
	c.rings(cfg.Rings)
	return c.err
}

// Validate checks the orbiting cone configuration.
func (cfg OrbitConfig) Validate() error {
	var c checker
	c.positive("box.size", cfg.Box.Size)
	c.positive("cone.radius", cfg.Cone.Radius)
	c.positive("cone.height", cfg.Cone.Height)
	return c.err
}

// Validate checks the UFO configuration.
func (cfg UFOConfig) Validate() error {
	var c checker
	c.positive("box.size", cfg.Box.Size)
	c.positive("dome.radius", cfg.Dome.Radius)
	c.count("lights.count", cfg.Lights.Count)
	c.positive("lights.radius", cfg.Lights.Radius)
	return c.err
}

// Validate checks the vacuum chamber configuration.
func (cfg VacuumConfig) Validate() error {
	var c checker
	c.chamber(cfg.Chamber)
	c.rings(cfg.Rings)
	c.particles(cfg.Particles)
	return c.err
}

// Validate checks the containment field configuration.
func (cfg FieldsConfig) Validate() error {
	var c checker
	c.chamber(cfg.Chamber)
	c.rings(cfg.Rings)
	c.count("coils.turns", cfg.Coils.Turns)
	c.particles(cfg.Particles)
	return c.err
}

// Validate checks the Christmas scene configuration.
func (cfg XmasConfig) Validate() error {
	var c checker
	c.positive("tree.height", cfg.Tree.Height)
	c.count("tree.levels", cfg.Tree.Levels)
	c.count("ornaments.count", cfg.Ornaments.Count)
	c.ordered("ornaments.min_radius", "ornaments.max_radius", cfg.Ornaments.MinRadius, cfg.Ornaments.MaxRadius)
	c.count("presents", cfg.Presents)
	c.count("mountains", cfg.Mountains)
	c.count("sky.count", cfg.Sky.Count)
	c.count("sky.twinkling", cfg.Sky.Twinkling)
	c.ordered("sky.freq_lo", "sky.freq_hi", cfg.Sky.FreqLo, cfg.Sky.FreqHi)
	c.count("snow.count", cfg.Snow.Count)
	c.positive("snow.radius", cfg.Snow.Radius)
	c.ordered("snow.reset_low", "snow.reset_high", cfg.Snow.ResetLow, cfg.Snow.ResetHigh)
	return c.err
}
