package core

import (
	"math"
	"testing"
)

func TestColorValid(t *testing.T) {
	tests := []struct {
		name  string
		c     Color
		valid bool
	}{
		{"black", ColorBlack, true},
		{"white", ColorWhite, true},
		{"mid", RGB(0.2, 0.7, 1.0), true},
		{"over", RGB(0.2, 1.05, 1), false},
		{"negative", RGB(-0.01, 0, 0), false},
		{"nan", RGB(math.NaN(), 0, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.Valid(); got != tc.valid {
				t.Errorf("Valid() = %v, expected %v", got, tc.valid)
			}
		})
	}
}

func TestColorClamped(t *testing.T) {
	c := RGB(1.4, -0.2, math.NaN()).Clamped()
	if c != RGB(1, 0, 0) {
		t.Errorf("Clamped() = %+v, expected red", c)
	}
	if !c.Valid() {
		t.Error("clamped colour should be valid")
	}
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		c   Color
		hex string
	}{
		{ColorBlack, "#000000"},
		{ColorWhite, "#ffffff"},
		{ColorRed, "#ff0000"},
		{ColorCyan, "#00ffff"},
		{RGB(2, 0, 0), "#ff0000"}, // out of range clamps
	}

	for _, tc := range tests {
		if got := tc.c.Hex(); got != tc.hex {
			t.Errorf("Hex(%+v) = %s, expected %s", tc.c, got, tc.hex)
		}
	}
}

func TestColorLightness(t *testing.T) {
	if l := ColorBlack.Lightness(); l > 0.01 {
		t.Errorf("black lightness = %f", l)
	}
	if l := ColorWhite.Lightness(); l < 0.99 {
		t.Errorf("white lightness = %f", l)
	}
	if Gray(0.3).Lightness() >= Gray(0.7).Lightness() {
		t.Error("lightness should grow with gray level")
	}
}

func TestGray(t *testing.T) {
	g := Gray(0.6)
	if g.R != 0.6 || g.G != 0.6 || g.B != 0.6 {
		t.Errorf("Gray(0.6) = %+v", g)
	}
	if s := g.Scale(0.5); math.Abs(s.G-0.3) > 1e-12 {
		t.Errorf("Scale(0.5) = %+v", s)
	}
}
