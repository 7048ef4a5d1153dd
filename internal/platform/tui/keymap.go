package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-scenes/internal/core"
)

// ViewerKeyMap defines the key bindings of the scene viewer.
type ViewerKeyMap struct {
	Pause      key.Binding
	Step       key.Binding
	OrbitLeft  key.Binding
	OrbitRight key.Binding
	TiltUp     key.Binding
	TiltDown   key.Binding
	ZoomIn     key.Binding
	ZoomOut    key.Binding
	ResetView  key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ViewerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.OrbitLeft, k.TiltUp, k.ZoomIn, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ViewerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Step, k.ResetView},
		{k.OrbitLeft, k.OrbitRight, k.TiltUp, k.TiltDown},
		{k.ZoomIn, k.ZoomOut, k.Screenshot},
		{k.Help, k.Back, k.Quit},
	}
}

// DefaultViewerKeyMap returns default key bindings.
func DefaultViewerKeyMap() ViewerKeyMap {
	return ViewerKeyMap{
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p/space", "pause"),
		),
		Step: key.NewBinding(
			key.WithKeys("n", "."),
			key.WithHelp("n", "step"),
		),
		OrbitLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "orbit left"),
		),
		OrbitRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "orbit right"),
		),
		TiltUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "tilt up"),
		),
		TiltDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "tilt down"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "zoom out"),
		),
		ResetView: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "reset view"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a viewer action.
// Keys without a binding map to ActionNone.
func (k ViewerKeyMap) Action(msg tea.KeyMsg) core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.Back, core.ActionBack},
		{k.Pause, core.ActionPause},
		{k.Step, core.ActionStep},
		{k.OrbitLeft, core.ActionOrbitLeft},
		{k.OrbitRight, core.ActionOrbitRight},
		{k.TiltUp, core.ActionTiltUp},
		{k.TiltDown, core.ActionTiltDown},
		{k.ZoomIn, core.ActionZoomIn},
		{k.ZoomOut, core.ActionZoomOut},
		{k.ResetView, core.ActionResetView},
		{k.Help, core.ActionHelp},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}

// MenuKeyMap defines the key bindings of the scene picker.
type MenuKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	History key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.History, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		History: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "history"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
