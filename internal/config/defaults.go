package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-scenes/internal/core"
)

//go:embed defaults/mems.yaml
var defaultMEMSYAML []byte

//go:embed defaults/orbit.yaml
var defaultOrbitYAML []byte

//go:embed defaults/ufo.yaml
var defaultUFOYAML []byte

//go:embed defaults/vacuum.yaml
var defaultVacuumYAML []byte

//go:embed defaults/fields.yaml
var defaultFieldsYAML []byte

//go:embed defaults/xmas.yaml
var defaultXmasYAML []byte

var (
	black = core.ColorBlack
	cyan  = core.ColorCyan
)

// DefaultMEMSConfig returns the default MEMS array configuration.
func DefaultMEMSConfig() MEMSConfig {
	return MEMSConfig{
		Clock: ClockConfig{DT: 0.05, DAngle: 0.01},
		View:  ViewConfig{Eye: Vec{Y: 4, Z: 9}, Background: black},
		Wafer: MEMSWafer{
			Size:      6,
			Thickness: 0.2,
			Color:     core.RGB(0.3, 0.3, 0.35),
			Opacity:   0.7,
		},
		Dome: MEMSDome{RadiusFactor: 0.7, Color: cyan, Opacity: 0.25},
		Rings: RingArray{
			Cols:         6,
			Rows:         6,
			Spacing:      0.8,
			Radius:       0.3,
			Thickness:    0.08,
			Axis:         Vec{Y: 1},
			Color:        core.RGB(0.2, 0.7, 1),
			RotationStep: 0.01,
		},
		Glow: MEMSGlow{Radius: 0.05, Opacity: 0.5, Peak: core.RGB(0.1, 0.8, 1)},
	}
}

// DefaultOrbitConfig returns the default orbiting cone configuration.
func DefaultOrbitConfig() OrbitConfig {
	return OrbitConfig{
		Clock: ClockConfig{DT: 0.05, DAngle: 0.03},
		View:  ViewConfig{Eye: Vec{Y: 2, Z: 9}, Background: black},
		Box:   BoxConfig{Size: 4, Color: cyan, Opacity: 0.3},
		Path:  PathConfig{Radius: 1.2, Bounce: 0.8},
		Cone:  OrbitCone{Radius: 0.5, Height: 1, Color: core.ColorRed, Spin: 0.05},
	}
}

// DefaultUFOConfig returns the default UFO configuration.
func DefaultUFOConfig() UFOConfig {
	return UFOConfig{
		Clock:  ClockConfig{DT: 0.05, DAngle: 0.03},
		View:   ViewConfig{Eye: Vec{Y: 2, Z: 9}, Background: black},
		Box:    BoxConfig{Size: 4, Color: cyan, Opacity: 0.3},
		Path:   PathConfig{Radius: 1.2, Bounce: 0.8},
		Saucer: UFOSaucer{Size: Vec{X: 1.8, Y: 0.4, Z: 1.8}, Color: core.Gray(0.5)},
		Dome:   UFODome{Offset: Vec{Y: 0.35}, Radius: 0.4, Color: core.ColorGreen, Opacity: 0.7},
		Lights: UFOLights{
			Count:     8,
			RimRadius: 0.9,
			Drop:      -0.1,
			Radius:    0.08,
			PulseFreq: 2,
		},
		SpinRate: 1.5,
	}
}

func defaultChamber() ChamberConfig {
	return ChamberConfig{
		Radius:        3,
		Length:        8,
		Color:         core.RGB(0.2, 0.9, 1),
		Opacity:       0.25,
		GlowAmp:       0.05,
		CapThickness:  0.2,
		CapColor:      core.Gray(0.6),
		WindowRadius:  1,
		WindowLength:  0.3,
		WindowColor:   cyan,
		WindowOpacity: 0.4,
		BaseColor:     core.RGB(0.1, 0.7, 0.3),
	}
}

func defaultChamberRings() RingArray {
	return RingArray{
		Cols:         3,
		Rows:         3,
		Spacing:      1.2,
		Radius:       0.4,
		Thickness:    0.1,
		Axis:         Vec{X: 1},
		Color:        core.ColorRed,
		RotationStep: 0.02,
	}
}

func defaultParticles() ParticleConfig {
	return ParticleConfig{Count: 40, Radius: 0.08, Opacity: 0.8, MaxSpeed: 0.02}
}

// DefaultVacuumConfig returns the default vacuum chamber configuration.
func DefaultVacuumConfig() VacuumConfig {
	return VacuumConfig{
		Clock:   ClockConfig{DT: 0, DAngle: 0.02},
		View:    ViewConfig{Eye: Vec{X: 12, Y: 3, Z: 9}, Background: black},
		Chamber: defaultChamber(),
		Plates:  PlatesConfig{Thickness: 0.1, Color: core.RGB(0.8, 0.85, 0.9), Opacity: 0.9},
		Rings:   defaultChamberRings(),
		Field: FieldRing{
			Radius:    2.8,
			Thickness: 0.25,
			Color:     core.RGB(0.3, 0.9, 1),
			Opacity:   0.25,
		},
		Particles: defaultParticles(),
	}
}

// DefaultFieldsConfig returns the default containment field configuration.
func DefaultFieldsConfig() FieldsConfig {
	return FieldsConfig{
		Clock:   ClockConfig{DT: 0, DAngle: 0.02},
		View:    ViewConfig{Eye: Vec{X: 12, Y: 3, Z: 9}, Background: black},
		Chamber: defaultChamber(),
		Plates:  PlatesConfig{Thickness: 0.08, Color: core.RGB(0.82, 0.84, 0.87), Opacity: 0.95},
		Rings:   defaultChamberRings(),
		OuterField: FieldRing{
			Radius:    2.8,
			Thickness: 0.25,
			Color:     core.RGB(0.22, 0.9, 1),
			Opacity:   0.37,
			PulseAmp:  0.12,
		},
		InnerField: FieldRing{
			Radius:    2.5,
			Thickness: 0.18,
			Color:     core.RGB(0.7, 0.4, 0.9),
			Opacity:   0.34,
			PulseAmp:  0.12,
		},
		Coils: CoilConfig{
			Turns:        18,
			RadiusFactor: 1.25,
			Thickness:    0.03,
			Color:        core.RGB(0.6, 0.6, 0.65),
			Opacity:      0.6,
			PulseAmp:     0.15,
			PhaseStep:    0.3,
		},
		Particles: defaultParticles(),
		Labels:    true,
	}
}

// DefaultXmasConfig returns the default Christmas scene configuration.
func DefaultXmasConfig() XmasConfig {
	return XmasConfig{
		Clock: ClockConfig{DT: 0, DAngle: 0.02},
		View: ViewConfig{
			Eye:        Vec{Y: 1, Z: 26},
			Background: core.RGB(0.02, 0.02, 0.05),
		},
		Tree: XmasTree{
			Height:      12,
			Levels:      5,
			BaseRadius:  4,
			LevelShrink: 0.7,
			TrunkRadius: 0.5,
			TrunkColor:  core.RGB(0.55, 0.27, 0.07),
			GroundColor: core.RGB(0.9, 0.9, 1),
		},
		Ornaments: XmasOrnaments{
			Count:     180,
			MinRadius: 0.12,
			MaxRadius: 0.18,
			Colors: []core.Color{
				core.ColorRed, core.ColorBlue, core.ColorCyan, core.ColorMagenta,
				core.ColorOrange, core.ColorYellow, core.ColorGreen,
			},
		},
		Star:      XmasStar{Size: 0.8, Spin: 0.02},
		Presents:  6,
		Mountains: 7,
		Moon:      XmasMoon{Pos: Vec{X: 15, Y: 15, Z: -60}, Radius: 3, Color: core.RGB(1, 1, 0.9)},
		Sky:       XmasSky{Count: 200, Twinkling: 8, FreqLo: 3, FreqHi: 6},
		Snow: XmasSnow{
			Count:     200,
			Radius:    0.05,
			Rate:      0.05,
			ResetLow:  5,
			ResetHigh: 10,
			Spread:    10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a scene.
func GetDefaultYAML(sceneID string) []byte {
	switch sceneID {
	case "mems":
		return defaultMEMSYAML
	case "orbit":
		return defaultOrbitYAML
	case "ufo":
		return defaultUFOYAML
	case "vacuum":
		return defaultVacuumYAML
	case "fields":
		return defaultFieldsYAML
	case "xmas":
		return defaultXmasYAML
	default:
		return nil
	}
}
