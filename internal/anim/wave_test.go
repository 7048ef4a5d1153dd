package anim

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/tui-scenes/internal/scene"
)

func TestWaveAntiPhaseIsExact(t *testing.T) {
	outer := Wave{Amp: 0.12, Freq: 2, Source: SourceAngle}
	inner := outer
	inner.AntiPhase = true

	c, _ := NewClock(0.05, 0.02)
	for i := 0; i < 5000; i++ {
		c = c.Tick()
		o := outer.Value(c, scene.Attributes{})
		n := inner.Value(c, scene.Attributes{})
		if o != -n {
			t.Fatalf("tick %d: outer %v and inner %v are not exact opposites", i, o, n)
		}
	}
}

func TestWaveSourcesAndPhase(t *testing.T) {
	c := Clock{T: 1.5, Angle: 0.25}
	a := scene.Attributes{Pos: r3.Vec{X: 0.5, Z: 2}}

	tests := []struct {
		name string
		w    Wave
		want float64
	}{
		{"const", Const(0.3), 0.3},
		{"time", Wave{Base: 1, Amp: 2, Freq: 1}, 1 + 2*math.Sin(1.5)},
		{"angle", Wave{Amp: 1, Freq: 3, Source: SourceAngle}, math.Sin(0.75)},
		{"phase x", Wave{Amp: 1, Freq: 1, PhaseFrom: PhaseX}, math.Sin(2.0)},
		{"phase xz", Wave{Amp: 1, Freq: 1, PhaseFrom: PhaseXZ}, math.Sin(4.0)},
		{"rectify", Wave{Amp: 1, Freq: 1, Phase: math.Pi}, math.Sin(1.5 + math.Pi)},
	}
	tests[5].w.Rectify = true
	tests[5].want = math.Abs(tests[5].want)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.w.Value(c, a)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Value() = %v, want %v", got, tt.want)
			}
		})
	}
}
