package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-scenes/internal/core"
)

// styleKey identifies a foreground/background pair. An empty fg means the
// terminal's default foreground.
type styleKey struct {
	fg, bg string
}

// ScreenRenderer converts Screen buffers to styled strings.
// Styles are built once per colour pair and reused across frames.
type ScreenRenderer struct {
	background string
	styles     map[styleKey]lipgloss.Style
}

// NewScreenRenderer creates a renderer that paints every cell over bg.
func NewScreenRenderer(bg core.Color) *ScreenRenderer {
	return &ScreenRenderer{
		background: bg.Hex(),
		styles:     make(map[styleKey]lipgloss.Style),
	}
}

func (r *ScreenRenderer) style(k styleKey) lipgloss.Style {
	if s, ok := r.styles[k]; ok {
		return s
	}
	s := lipgloss.NewStyle().Background(lipgloss.Color(k.bg))
	if k.fg != "" {
		s = s.Foreground(lipgloss.Color(k.fg))
	}
	r.styles[k] = s
	return s
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colour to minimize ANSI escape sequences.
func (r *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			k := r.keyOf(s.GetCell(x, y))

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if r.keyOf(cell) != k {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.style(k).Render(run.String()))
		}
	}
	return sb.String()
}

func (r *ScreenRenderer) keyOf(c core.Cell) styleKey {
	if !c.Styled {
		return styleKey{bg: r.background}
	}
	return styleKey{fg: c.Color.Hex(), bg: r.background}
}
