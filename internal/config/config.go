// Package config provides YAML-based scene configuration: one typed
// structure per scene holding its counts, spacings, colours and rates.
package config

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/tui-scenes/internal/core"
)

// Vec is a 3-vector in YAML form.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// R3 converts the vector for use in scene attributes.
func (v Vec) R3() r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// ClockConfig sets the per-tick increments of the frame clock.
type ClockConfig struct {
	DT     float64 `yaml:"dt"`     // Simulated time per tick
	DAngle float64 `yaml:"dangle"` // Angle per tick
}

// ViewConfig is the initial camera placement and backdrop.
type ViewConfig struct {
	Eye        Vec        `yaml:"eye"`
	Target     Vec        `yaml:"target"`
	Background core.Color `yaml:"background"`
}

// BoxConfig describes a see-through cube centred on the origin.
type BoxConfig struct {
	Size    float64    `yaml:"size"`
	Color   core.Color `yaml:"color"`
	Opacity float64    `yaml:"opacity"`
}

// PathConfig is a horizontal orbit with a vertical bounce.
type PathConfig struct {
	Radius float64 `yaml:"radius"`
	Bounce float64 `yaml:"bounce"`
}

// MEMSConfig contains all configuration for the MEMS ring array under a dome.
type MEMSConfig struct {
	Clock ClockConfig `yaml:"clock"`
	View  ViewConfig  `yaml:"view"`
	Wafer MEMSWafer   `yaml:"wafer"`
	Dome  MEMSDome    `yaml:"dome"`
	Rings RingArray   `yaml:"rings"`
	Glow  MEMSGlow    `yaml:"glow"`
}

// MEMSWafer defines the substrate slab.
type MEMSWafer struct {
	Size      float64    `yaml:"size"`
	Thickness float64    `yaml:"thickness"`
	Color     core.Color `yaml:"color"`
	Opacity   float64    `yaml:"opacity"`
}

// MEMSDome defines the enclosure; its radius is a fraction of the wafer size.
type MEMSDome struct {
	RadiusFactor float64    `yaml:"radius_factor"`
	Color        core.Color `yaml:"color"`
	Opacity      float64    `yaml:"opacity"`
}

// MEMSGlow defines the pulsing sphere at the centre of each ring.
// Peak is the colour at full intensity; the red channel does not pulse.
type MEMSGlow struct {
	Radius  float64    `yaml:"radius"`
	Opacity float64    `yaml:"opacity"`
	Peak    core.Color `yaml:"peak"`
}

// RingArray is a grid of rings turning about the vertical axis through the origin.
type RingArray struct {
	Cols         int        `yaml:"cols"`
	Rows         int        `yaml:"rows"`
	Spacing      float64    `yaml:"spacing"`
	Radius       float64    `yaml:"radius"`
	Thickness    float64    `yaml:"thickness"`
	Axis         Vec        `yaml:"axis"`
	Color        core.Color `yaml:"color"`
	RotationStep float64    `yaml:"rotation_step"` // Radians per tick
}

// OrbitConfig contains all configuration for the cone orbiting inside a box.
type OrbitConfig struct {
	Clock ClockConfig `yaml:"clock"`
	View  ViewConfig  `yaml:"view"`
	Box   BoxConfig   `yaml:"box"`
	Path  PathConfig  `yaml:"path"`
	Cone  OrbitCone   `yaml:"cone"`
}

// OrbitCone defines the moving cone and its spin.
type OrbitCone struct {
	Radius float64    `yaml:"radius"`
	Height float64    `yaml:"height"`
	Color  core.Color `yaml:"color"`
	Spin   float64    `yaml:"spin"` // Radians per tick about the vertical axis
}

// UFOConfig contains all configuration for the UFO scene.
type UFOConfig struct {
	Clock    ClockConfig `yaml:"clock"`
	View     ViewConfig  `yaml:"view"`
	Box      BoxConfig   `yaml:"box"`
	Path     PathConfig  `yaml:"path"`
	Saucer   UFOSaucer   `yaml:"saucer"`
	Dome     UFODome     `yaml:"dome"`
	Lights   UFOLights   `yaml:"lights"`
	SpinRate float64     `yaml:"spin_rate"` // Body rotation as a multiple of the clock angle
}

// UFOSaucer defines the saucer body.
type UFOSaucer struct {
	Size  Vec        `yaml:"size"`
	Color core.Color `yaml:"color"`
}

// UFODome defines the cockpit dome on top of the saucer.
type UFODome struct {
	Offset  Vec        `yaml:"offset"`
	Radius  float64    `yaml:"radius"`
	Color   core.Color `yaml:"color"`
	Opacity float64    `yaml:"opacity"`
}

// UFOLights defines the rim lights and their colour pulse.
type UFOLights struct {
	Count     int     `yaml:"count"`
	RimRadius float64 `yaml:"rim_radius"`
	Drop      float64 `yaml:"drop"` // Vertical offset below the saucer centre
	Radius    float64 `yaml:"radius"`
	PulseFreq float64 `yaml:"pulse_freq"`
}

// ChamberConfig describes the vacuum chamber and its fixed hardware.
type ChamberConfig struct {
	Radius        float64    `yaml:"radius"`
	Length        float64    `yaml:"length"`
	Color         core.Color `yaml:"color"`
	Opacity       float64    `yaml:"opacity"`
	GlowAmp       float64    `yaml:"glow_amp"`
	CapThickness  float64    `yaml:"cap_thickness"`
	CapColor      core.Color `yaml:"cap_color"`
	WindowRadius  float64    `yaml:"window_radius"`
	WindowLength  float64    `yaml:"window_length"`
	WindowColor   core.Color `yaml:"window_color"`
	WindowOpacity float64    `yaml:"window_opacity"`
	BaseColor     core.Color `yaml:"base_color"`
}

// PlatesConfig describes the two support plates under the chamber.
type PlatesConfig struct {
	Thickness float64    `yaml:"thickness"`
	Color     core.Color `yaml:"color"`
	Opacity   float64    `yaml:"opacity"`
}

// FieldRing describes a containment field ring.
type FieldRing struct {
	Radius    float64    `yaml:"radius"`
	Thickness float64    `yaml:"thickness"`
	Color     core.Color `yaml:"color"`
	Opacity   float64    `yaml:"opacity"`
	PulseAmp  float64    `yaml:"pulse_amp"`
}

// ParticleConfig describes the gas particles drifting inside the chamber.
type ParticleConfig struct {
	Count    int     `yaml:"count"`
	Radius   float64 `yaml:"radius"`
	Opacity  float64 `yaml:"opacity"`
	MaxSpeed float64 `yaml:"max_speed"` // Per-axis velocity bound, units per tick
}

// VacuumConfig contains all configuration for the vacuum chamber scene.
type VacuumConfig struct {
	Clock     ClockConfig    `yaml:"clock"`
	View      ViewConfig     `yaml:"view"`
	Chamber   ChamberConfig  `yaml:"chamber"`
	Plates    PlatesConfig   `yaml:"plates"`
	Rings     RingArray      `yaml:"rings"`
	Field     FieldRing      `yaml:"field"`
	Particles ParticleConfig `yaml:"particles"`
}

// FieldsConfig contains all configuration for the chamber with inner and
// outer containment fields and drive coils.
type FieldsConfig struct {
	Clock      ClockConfig    `yaml:"clock"`
	View       ViewConfig     `yaml:"view"`
	Chamber    ChamberConfig  `yaml:"chamber"`
	Plates     PlatesConfig   `yaml:"plates"`
	Rings      RingArray      `yaml:"rings"`
	OuterField FieldRing      `yaml:"outer_field"`
	InnerField FieldRing      `yaml:"inner_field"`
	Coils      CoilConfig     `yaml:"coils"`
	Particles  ParticleConfig `yaml:"particles"`
	Labels     bool           `yaml:"labels"`
}

// CoilConfig describes the solenoid turns wrapped around the chamber.
type CoilConfig struct {
	Turns        int        `yaml:"turns"`
	RadiusFactor float64    `yaml:"radius_factor"` // Multiple of the chamber radius
	Thickness    float64    `yaml:"thickness"`
	Color        core.Color `yaml:"color"`
	Opacity      float64    `yaml:"opacity"`
	PulseAmp     float64    `yaml:"pulse_amp"`
	PhaseStep    float64    `yaml:"phase_step"` // Phase added per turn
}

// XmasConfig contains all configuration for the Christmas night scene.
type XmasConfig struct {
	Clock     ClockConfig   `yaml:"clock"`
	View      ViewConfig    `yaml:"view"`
	Tree      XmasTree      `yaml:"tree"`
	Ornaments XmasOrnaments `yaml:"ornaments"`
	Star      XmasStar      `yaml:"star"`
	Presents  int           `yaml:"presents"`
	Mountains int           `yaml:"mountains"`
	Moon      XmasMoon      `yaml:"moon"`
	Sky       XmasSky       `yaml:"sky"`
	Snow      XmasSnow      `yaml:"snow"`
}

// XmasTree defines the trunk and the stacked cone layers.
type XmasTree struct {
	Height      float64    `yaml:"height"`
	Levels      int        `yaml:"levels"`
	BaseRadius  float64    `yaml:"base_radius"`
	LevelShrink float64    `yaml:"level_shrink"` // Radius lost per level
	TrunkRadius float64    `yaml:"trunk_radius"`
	TrunkColor  core.Color `yaml:"trunk_color"`
	GroundColor core.Color `yaml:"ground_color"`
}

// XmasOrnaments defines the baubles hung on the tree.
type XmasOrnaments struct {
	Count     int          `yaml:"count"`
	MinRadius float64      `yaml:"min_radius"`
	MaxRadius float64      `yaml:"max_radius"`
	Colors    []core.Color `yaml:"colors"`
}

// XmasStar defines the spinning star on the treetop.
type XmasStar struct {
	Size float64 `yaml:"size"`
	Spin float64 `yaml:"spin"` // Radians per tick
}

// XmasMoon defines the moon.
type XmasMoon struct {
	Pos    Vec        `yaml:"pos"`
	Radius float64    `yaml:"radius"`
	Color  core.Color `yaml:"color"`
}

// XmasSky defines the background stars and how many twinkle per tick.
type XmasSky struct {
	Count     int     `yaml:"count"`
	Twinkling int     `yaml:"twinkling"`
	FreqLo    float64 `yaml:"freq_lo"`
	FreqHi    float64 `yaml:"freq_hi"`
}

// XmasSnow defines the falling snow.
type XmasSnow struct {
	Count     int     `yaml:"count"`
	Radius    float64 `yaml:"radius"`
	Rate      float64 `yaml:"rate"` // Fall per tick
	ResetLow  float64 `yaml:"reset_low"`
	ResetHigh float64 `yaml:"reset_high"`
	Spread    float64 `yaml:"spread"`
}
