package scene

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/tui-scenes/internal/core"
)

func sphereAttrs() Attributes {
	return Attributes{
		Pos:     r3.Vec{X: 1},
		Radius:  0.5,
		Color:   core.ColorRed,
		Opacity: 1,
	}
}

func TestRegistryCreateGetSet(t *testing.T) {
	r := NewRegistry()

	h, err := r.Create(KindSphere, sphereAttrs())
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if h == 0 {
		t.Fatal("Create() returned the zero handle")
	}

	got, err := r.Get(h)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got.Radius != 0.5 || got.Pos.X != 1 {
		t.Errorf("Get() = %+v", got)
	}

	got.Pos = r3.Vec{Y: 2}
	if err := r.Set(h, got); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	again, _ := r.Get(h)
	if again.Pos.Y != 2 {
		t.Errorf("Set() did not store position, got %+v", again.Pos)
	}

	kind, err := r.Kind(h)
	if err != nil || kind != KindSphere {
		t.Errorf("Kind() = %v, %v", kind, err)
	}
}

func TestRegistryRejectsInvalidCreate(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		mut   func(a *Attributes)
		field string
	}{
		{"negative radius", KindSphere, func(a *Attributes) { a.Radius = -1 }, "radius"},
		{"zero radius", KindRing, func(a *Attributes) { a.Axis = r3.Vec{Y: 1}; a.Radius = 0 }, "radius"},
		{"opacity above one", KindSphere, func(a *Attributes) { a.Opacity = 1.2 }, "opacity"},
		{"opacity below zero", KindSphere, func(a *Attributes) { a.Opacity = -0.1 }, "opacity"},
		{"colour out of range", KindSphere, func(a *Attributes) { a.Color = core.RGB(0.2, 1.5, 1) }, "color"},
		{"nan position", KindSphere, func(a *Attributes) { a.Pos.X = math.NaN() }, "pos"},
		{"box without size", KindBox, func(a *Attributes) { a.Size = r3.Vec{X: 1, Y: 0, Z: 1} }, "size"},
		{"cone without axis", KindCone, func(a *Attributes) {}, "axis"},
		{"label without text", KindLabel, func(a *Attributes) {}, "text"},
		{"degenerate triangle", KindTriangle, func(a *Attributes) {
			a.Vertices = [3]r3.Vec{{X: 0}, {X: 1}, {X: 2}}
		}, "vertices"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRegistry()
			a := sphereAttrs()
			tc.mut(&a)

			_, err := r.Create(tc.kind, a)
			if !errors.Is(err, ErrInvalidAttributes) {
				t.Fatalf("Create() error = %v, expected ErrInvalidAttributes", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error should be a *ValidationError, got %T", err)
			}
			if verr.Field != tc.field {
				t.Errorf("Field = %q, expected %q", verr.Field, tc.field)
			}
			if r.Len() != 0 {
				t.Error("rejected object should not be registered")
			}
		})
	}
}

func TestRegistrySetRejectsInvalidAndKeepsState(t *testing.T) {
	r := NewRegistry()
	h, _ := r.Create(KindSphere, sphereAttrs())

	bad := sphereAttrs()
	bad.Opacity = 2
	if err := r.Set(h, bad); !errors.Is(err, ErrInvalidAttributes) {
		t.Fatalf("Set() error = %v, expected ErrInvalidAttributes", err)
	}

	got, _ := r.Get(h)
	if got.Opacity != 1 {
		t.Errorf("object should keep previous opacity, got %f", got.Opacity)
	}
}

func TestRegistryUnknownHandle(t *testing.T) {
	r := NewRegistry()
	r.Create(KindSphere, sphereAttrs())

	for _, h := range []Handle{0, -1, 2} {
		if _, err := r.Get(h); !errors.Is(err, ErrUnknownHandle) {
			t.Errorf("Get(%d) error = %v, expected ErrUnknownHandle", h, err)
		}
		if err := r.Set(h, sphereAttrs()); !errors.Is(err, ErrUnknownHandle) {
			t.Errorf("Set(%d) error = %v, expected ErrUnknownHandle", h, err)
		}
	}
}

func TestRegistrySeal(t *testing.T) {
	r := NewRegistry()
	h, _ := r.Create(KindSphere, sphereAttrs())
	r.Seal()

	if !r.Sealed() {
		t.Fatal("Sealed() should be true after Seal()")
	}
	if _, err := r.Create(KindSphere, sphereAttrs()); !errors.Is(err, ErrSealed) {
		t.Errorf("Create() after Seal error = %v, expected ErrSealed", err)
	}

	// Attributes stay mutable
	a, _ := r.Get(h)
	a.Opacity = 0.3
	if err := r.Set(h, a); err != nil {
		t.Errorf("Set() after Seal failed: %v", err)
	}
}

func TestRegistryOrderAndSnapshot(t *testing.T) {
	r := NewRegistry()
	var hs []Handle
	for i := 0; i < 5; i++ {
		a := sphereAttrs()
		a.Pos = r3.Vec{X: float64(i)}
		h, err := r.Create(KindSphere, a)
		if err != nil {
			t.Fatalf("Create() failed: %v", err)
		}
		hs = append(hs, h)
	}

	if r.Len() != 5 {
		t.Fatalf("Len() = %d, expected 5", r.Len())
	}
	for i, h := range r.Handles() {
		if h != hs[i] {
			t.Errorf("Handles()[%d] = %d, expected %d", i, h, hs[i])
		}
	}

	snap := r.Snapshot()
	snap[0].Pos.X = 99
	a, _ := r.Get(hs[0])
	if a.Pos.X != 0 {
		t.Error("Snapshot should be a copy")
	}
	if snap[3].Pos.X != 3 || snap[3].Kind != KindSphere {
		t.Errorf("Snapshot()[3] = %+v", snap[3])
	}
}

func TestValidateTriangleAndLabel(t *testing.T) {
	tri := Attributes{
		Vertices: [3]r3.Vec{{X: 0}, {X: 1}, {Y: 1}},
		Color:    core.ColorYellow,
		Opacity:  1,
	}
	if err := tri.Validate(KindTriangle); err != nil {
		t.Errorf("valid triangle rejected: %v", err)
	}

	label := Attributes{Text: "MEMS Array", Color: core.ColorWhite, Opacity: 1}
	if err := label.Validate(KindLabel); err != nil {
		t.Errorf("valid label rejected: %v", err)
	}
}

func TestKindString(t *testing.T) {
	if KindRing.String() != "ring" || KindEllipsoid.String() != "ellipsoid" {
		t.Error("unexpected kind names")
	}
	if Kind(42).String() != "unknown" {
		t.Error("out of range kind should be unknown")
	}
}
