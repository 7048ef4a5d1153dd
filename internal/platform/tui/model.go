package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-scenes/internal/core"
	"github.com/vovakirdan/tui-scenes/internal/engine"
	"github.com/vovakirdan/tui-scenes/internal/render"
)

// Camera steps applied per key press.
const (
	orbitStep = 0.1
	tiltStep  = 0.05
	zoomIn    = 0.9
	zoomOut   = 1 / zoomIn

	hudHeight = 2
)

var (
	hudStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model for playing a scene.
type Model struct {
	title    string
	runner   *engine.Runner
	camera   *render.Camera
	raster   *render.Rasterizer
	screen   *core.Screen
	renderer *ScreenRenderer
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     ViewerKeyMap
	help     help.Model

	inputFrame core.InputFrame
	frame      engine.Frame
	paused     bool
	quitting   bool
	goingBack  bool
	status     string
}

// NewModel creates a new Bubble Tea model for the given world.
func NewModel(title string, world *engine.World, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cam := render.NewCamera(world.View)

	return Model{
		title:      title,
		runner:     engine.NewRunner(world, logger),
		camera:     &cam,
		raster:     render.NewRasterizer(),
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-hudHeight, 1)),
		renderer:   NewScreenRenderer(world.View.Background),
		logger:     logger,
		config:     cfg,
		keys:       DefaultViewerKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		frame:      engine.Frame{Clock: world.Clock, Objects: world.Registry.Snapshot()},
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Quitting, help and screenshots act
// at once; everything else is applied on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.goingBack = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.fitScreen()
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.fitScreen()
	return m, nil
}

// fitScreen sizes the scene area to the window minus the HUD.
func (m *Model) fitScreen() {
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-m.hudLines(), 1))
}

// handleTick applies the input gathered since the last tick and advances
// the scene unless it is paused.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	step := m.applyInput()
	m.inputFrame.Clear()

	if !m.paused || step {
		m.frame = m.runner.Step()
	}

	return m, tickCmd(m.config.TickRate)
}

// applyInput updates the camera and pause state. It reports whether a
// single step was requested while paused.
func (m *Model) applyInput() (step bool) {
	in := m.inputFrame
	if in.Has(core.ActionPause) {
		m.paused = !m.paused
	}
	if in.Has(core.ActionOrbitLeft) {
		m.camera.Orbit(-orbitStep)
	}
	if in.Has(core.ActionOrbitRight) {
		m.camera.Orbit(orbitStep)
	}
	if in.Has(core.ActionTiltUp) {
		m.camera.Tilt(tiltStep)
	}
	if in.Has(core.ActionTiltDown) {
		m.camera.Tilt(-tiltStep)
	}
	if in.Has(core.ActionZoomIn) {
		m.camera.Zoom(zoomIn)
	}
	if in.Has(core.ActionZoomOut) {
		m.camera.Zoom(zoomOut)
	}
	if in.Has(core.ActionResetView) {
		m.camera.Reset()
	}
	return m.paused && in.Has(core.ActionStep)
}

// hudLines is the number of rows below the scene: the status line plus the
// help view.
func (m Model) hudLines() int {
	if !m.help.ShowAll {
		return hudHeight
	}
	rows := 1
	for _, col := range m.keys.FullHelp() {
		rows = max(rows, len(col))
	}
	return 1 + rows
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.raster.Draw(m.screen, m.frame.Objects, *m.camera)

	dir := filepath.Join(os.Getenv("HOME"), ".scenes", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.runner.World().Name, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.status = "saved " + filepath.Base(path)
}

// View renders the current frame followed by the status line and help.
func (m Model) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	m.raster.Draw(m.screen, m.frame.Objects, *m.camera)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderer.Render(m.screen),
		m.statusLine(),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

func (m Model) statusLine() string {
	c := m.frame.Clock
	line := hudStyle.Render(fmt.Sprintf("%s  tick %d  t=%.2f  angle=%.2f", m.title, c.Ticks, c.T, c.Angle))
	if m.paused {
		line += "  " + pausedStyle.Render("PAUSED")
	}
	if n := m.runner.Stats().Failures; n > 0 {
		line += "  " + warnStyle.Render(fmt.Sprintf("%d updates skipped", n))
	}
	if m.status != "" {
		line += "  " + helpStyle.Render(m.status)
	}
	return line
}

// Stats returns counters for the ticks run so far.
func (m Model) Stats() engine.Stats {
	return m.runner.Stats()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m Model) IsGoingBack() bool {
	return m.goingBack
}

// RunResult holds the outcome of an interactive session.
type RunResult struct {
	Stats engine.Stats
	Back  bool // The user asked to return to the menu
}

// Run plays the world until the user quits or goes back.
func Run(title string, world *engine.World, cfg core.RuntimeConfig, logger *log.Logger) (RunResult, error) {
	model := NewModel(title, world, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return RunResult{Stats: model.Stats()}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return RunResult{Stats: model.Stats()}, nil
	}
	return RunResult{Stats: m.Stats(), Back: m.IsGoingBack()}, nil
}
