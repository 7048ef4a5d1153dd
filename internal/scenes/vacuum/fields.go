package vacuum

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/tui-scenes/internal/anim"
	"github.com/vovakirdan/tui-scenes/internal/config"
	"github.com/vovakirdan/tui-scenes/internal/core"
	"github.com/vovakirdan/tui-scenes/internal/engine"
	"github.com/vovakirdan/tui-scenes/internal/scene"
	"github.com/vovakirdan/tui-scenes/internal/scenes/kit"
)

// Field pulse shape. Both fields pulse at the same frequency; the inner one
// is exactly half a period behind.
const (
	fieldPulseFreq = 2.0

	outerShiftAmp  = 0.15
	outerShiftFreq = 1.3

	innerShiftAmp   = 0.2
	innerShiftFreq  = 1.7
	innerShiftPhase = math.Pi / 4

	coilPulseFreq = 2.0
)

// Fields builds the chamber with containment fields and drive coils.
type Fields struct {
	configPath string
}

// NewFields creates a new containment fields scene.
func NewFields() *Fields {
	return &Fields{}
}

// ID returns the unique identifier for this scene.
func (s *Fields) ID() string {
	return "fields"
}

// Title returns the display name for this scene.
func (s *Fields) Title() string {
	return "Vacuum Chamber with Containment Fields"
}

// SetConfigPath sets a custom config file path.
func (s *Fields) SetConfigPath(path string) {
	s.configPath = path
}

// Build loads the configuration and constructs the world.
func (s *Fields) Build(rt core.RuntimeConfig) (*engine.World, error) {
	cfg, err := config.LoadFields(s.configPath)
	if err != nil {
		return nil, err
	}
	return BuildFieldsWorld(cfg, rt.Seed)
}

// BuildFieldsWorld constructs the scene from an explicit configuration.
func BuildFieldsWorld(cfg config.FieldsConfig, seed int64) (*engine.World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := kit.NewBuilder()
	rng := kit.Rand(seed)
	ch := cfg.Chamber
	label := func(text string, pos r3.Vec) {
		if cfg.Labels {
			b.Add(scene.KindLabel, scene.Attributes{Pos: pos, Text: text, Color: core.ColorWhite, Opacity: 1})
		}
	}

	addChamber(b, ch, cfg.Plates)
	passes := addRings(b, cfg.Rings)
	label("MEMS Array", r3.Vec{Y: 0.9})

	outerX := ch.Length/2 + fieldSetback
	outer := addField(b, cfg.OuterField, outerX)
	label("Outer Field", r3.Vec{X: outerX + 0.7, Y: 0.9})

	inner := addField(b, cfg.InnerField, 0)
	label("Inner Field", r3.Vec{Y: 1.1, Z: -2.2})

	passes = append(passes,
		anim.Bind(outer,
			anim.OpacityWave{Wave: fieldPulse(cfg.OuterField, false)},
			anim.ColorWave{
				R: anim.Const(cfg.OuterField.Color.R),
				G: anim.Wave{Base: cfg.OuterField.Color.G, Amp: outerShiftAmp, Freq: outerShiftFreq, Source: anim.SourceAngle},
				B: anim.Const(cfg.OuterField.Color.B),
			},
		),
		anim.Bind(inner,
			anim.OpacityWave{Wave: fieldPulse(cfg.InnerField, true)},
			anim.ColorWave{
				R: anim.Wave{Base: cfg.InnerField.Color.R, Amp: innerShiftAmp, Freq: innerShiftFreq, Phase: innerShiftPhase, Source: anim.SourceAngle},
				G: anim.Const(cfg.InnerField.Color.G),
				B: anim.Const(cfg.InnerField.Color.B),
			},
		),
	)

	coilRadius := ch.Radius * cfg.Coils.RadiusFactor
	start, end := -ch.Length/2+0.3, ch.Length/2-0.3
	for i := 0; i < cfg.Coils.Turns; i++ {
		x := start
		if cfg.Coils.Turns > 1 {
			x += (end - start) * float64(i) / float64(cfg.Coils.Turns-1)
		}
		turn := b.Add(scene.KindRing, scene.Attributes{
			Pos:       r3.Vec{X: x},
			Axis:      r3.Vec{X: 1},
			Radius:    coilRadius,
			Thickness: cfg.Coils.Thickness,
			Color:     cfg.Coils.Color,
			Opacity:   cfg.Coils.Opacity,
		})
		passes = append(passes, anim.Bind(turn, anim.OpacityWave{Wave: anim.Wave{
			Base:   cfg.Coils.Opacity,
			Amp:    cfg.Coils.PulseAmp,
			Freq:   coilPulseFreq,
			Phase:  cfg.Coils.PhaseStep * float64(i),
			Source: anim.SourceAngle,
		}}))
	}
	label("Drive coils (simulated turns)", r3.Vec{Y: -(coilRadius + 0.6)})

	passes = append(passes, addParticles(b, cfg.Particles, ch, rng)...)

	return kit.World("fields", b, cfg.Clock, cfg.View, passes)
}

// fieldPulse is opacity + amp*sin(2*angle), shifted by exactly half a period
// when anti is set.
func fieldPulse(f config.FieldRing, anti bool) anim.Wave {
	return anim.Wave{
		Base:      f.Opacity,
		Amp:       f.PulseAmp,
		Freq:      fieldPulseFreq,
		Source:    anim.SourceAngle,
		AntiPhase: anti,
	}
}
