package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/tui-scenes/internal/anim"
	"github.com/vovakirdan/tui-scenes/internal/core"
	"github.com/vovakirdan/tui-scenes/internal/engine"
	"github.com/vovakirdan/tui-scenes/internal/registry"
	"github.com/vovakirdan/tui-scenes/internal/scene"
)

func testWorld(t *testing.T) *engine.World {
	t.Helper()

	reg := scene.NewRegistry()
	h, err := reg.Create(scene.KindSphere, scene.Attributes{
		Pos:     r3.Vec{X: 1},
		Radius:  0.5,
		Color:   core.ColorRed,
		Opacity: 1,
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	clock, err := anim.NewClock(0.05, 0.01)
	if err != nil {
		t.Fatalf("NewClock() failed: %v", err)
	}

	return &engine.World{
		Name:     "test",
		Registry: reg,
		Clock:    clock,
		Passes:   []anim.Pass{anim.Bind(h, anim.Orbit{Radius: 1})},
		View:     engine.DefaultView(),
	}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// send feeds messages through Update and returns the resulting model.
func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func ticks(m Model) uint64 {
	return m.Stats().Ticks
}

func TestViewerPauseAndStep(t *testing.T) {
	m := NewModel("Test", testWorld(t), core.DefaultConfig(), nil)
	tick := TickMsg{}

	m = send(t, m, tick)
	if ticks(m) != 1 {
		t.Fatalf("Expected 1 tick, got %d", ticks(m))
	}

	// Pause takes effect on the next tick without advancing
	m = send(t, m, runeKey('p'), tick, tick)
	if !m.paused || ticks(m) != 1 {
		t.Fatalf("Expected paused at tick 1, got paused=%v ticks=%d", m.paused, ticks(m))
	}

	// Single step while paused
	m = send(t, m, runeKey('n'), tick, tick)
	if ticks(m) != 2 {
		t.Errorf("Expected step to tick 2, got %d", ticks(m))
	}
	if m.frame.Tick != 2 {
		t.Errorf("Frame not updated by step: tick %d", m.frame.Tick)
	}

	// Resume
	m = send(t, m, runeKey('p'), tick)
	if m.paused || ticks(m) != 3 {
		t.Errorf("Expected resumed at tick 3, got paused=%v ticks=%d", m.paused, ticks(m))
	}
}

func TestViewerStepIgnoredWhileRunning(t *testing.T) {
	m := NewModel("Test", testWorld(t), core.DefaultConfig(), nil)

	m = send(t, m, runeKey('n'), TickMsg{})
	if ticks(m) != 1 {
		t.Errorf("Step while running should not add ticks, got %d", ticks(m))
	}
}

func TestViewerCameraKeys(t *testing.T) {
	m := NewModel("Test", testWorld(t), core.DefaultConfig(), nil)
	yaw, pitch, dist := m.camera.Yaw, m.camera.Pitch, m.camera.Distance

	m = send(t, m,
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyUp},
		runeKey('+'),
		TickMsg{},
	)
	if m.camera.Yaw <= yaw {
		t.Errorf("Orbit right did not turn the camera: %v -> %v", yaw, m.camera.Yaw)
	}
	if m.camera.Pitch <= pitch {
		t.Errorf("Tilt up did not raise the camera: %v -> %v", pitch, m.camera.Pitch)
	}
	if m.camera.Distance >= dist {
		t.Errorf("Zoom in did not move closer: %v -> %v", dist, m.camera.Distance)
	}

	m = send(t, m, runeKey('0'), TickMsg{})
	if m.camera.Yaw != yaw || m.camera.Pitch != pitch || m.camera.Distance != dist {
		t.Error("Reset view did not restore the camera")
	}
}

func TestViewerQuitAndBack(t *testing.T) {
	m := NewModel("Test", testWorld(t), core.DefaultConfig(), nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("Expected quit command")
	}
	if v := next.View(); v != "" {
		t.Errorf("Expected empty view after quit, got %q", v)
	}

	m = send(t, NewModel("Test", testWorld(t), core.DefaultConfig(), nil), tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsGoingBack() {
		t.Error("Expected esc to go back")
	}
}

func TestViewerResizeKeepsHUD(t *testing.T) {
	m := NewModel("Test", testWorld(t), core.DefaultConfig(), nil)

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.screen.Width() != 100 || m.screen.Height() != 40-hudHeight {
		t.Errorf("Screen is %dx%d, want 100x%d", m.screen.Width(), m.screen.Height(), 40-hudHeight)
	}

	m = send(t, m, runeKey('?'))
	if m.screen.Height() != 40-m.hudLines() || m.hudLines() <= hudHeight {
		t.Errorf("Full help should shrink the scene area, got height %d", m.screen.Height())
	}
}

func TestViewerViewShowsStatus(t *testing.T) {
	m := NewModel("Test Scene", testWorld(t), core.DefaultConfig(), nil)
	m = send(t, m, TickMsg{}, runeKey('p'), TickMsg{})

	v := m.View()
	if !strings.Contains(v, "Test Scene") || !strings.Contains(v, "tick 1") {
		t.Errorf("Status line missing from view:\n%s", v)
	}
	if !strings.Contains(v, "PAUSED") {
		t.Error("Paused marker missing from view")
	}
}

func TestScreenRendererKeepsText(t *testing.T) {
	s := core.NewScreen(20, 2)
	s.DrawTextColor(2, 0, "hello", core.ColorCyan)
	s.DrawText(2, 1, "world")

	out := NewScreenRenderer(core.ColorBlack).Render(s)
	if !strings.Contains(out, "hello") || !strings.Contains(out, "world") {
		t.Errorf("Rendered output lost text:\n%q", out)
	}
	if n := strings.Count(out, "\n"); n != 1 {
		t.Errorf("Expected 2 rows, got %d newlines", n)
	}
}

type stubScene struct{ id string }

func (s stubScene) ID() string           { return s.id }
func (s stubScene) Title() string        { return "Stub " + s.id }
func (s stubScene) SetConfigPath(string) {}

func (s stubScene) Build(core.RuntimeConfig) (*engine.World, error) {
	return nil, nil
}

func init() {
	registry.Register("tui_stub_a", func() registry.Scene { return stubScene{id: "tui_stub_a"} })
	registry.Register("tui_stub_b", func() registry.Scene { return stubScene{id: "tui_stub_b"} })
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	if len(m.items) < 2 {
		t.Fatalf("Expected registered scenes in menu, got %d", len(m.items))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Expected quit command after select")
	}

	menu := next.(MenuModel)
	if menu.Selected() == nil || menu.Selected().SceneID != m.items[1].SceneID {
		t.Errorf("Selected %+v, want %s", menu.Selected(), m.items[1].SceneID)
	}
}

func TestMenuHistory(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsHistory() {
		t.Error("Expected tab to open history")
	}
}

func TestHistoryWithoutStore(t *testing.T) {
	m := NewHistoryModel(nil, 120, 40)

	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("Expected empty history message")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	h := next.(HistoryModel)
	if h.sceneCursor != 1 {
		t.Errorf("Expected tab to move to the next scene, cursor %d", h.sceneCursor)
	}
}
