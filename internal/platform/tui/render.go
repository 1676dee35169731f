package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blocky/internal/core"
)

// styleFor converts a cell style to a lipgloss style.
func styleFor(st core.Style) lipgloss.Style {
	s := lipgloss.NewStyle()
	if st.FG != "" {
		s = s.Foreground(lipgloss.Color(st.FG))
	}
	if st.BG != "" {
		s = s.Background(lipgloss.Color(st.BG))
	}
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[core.Style]lipgloss.Style)
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		cells := s.Cells(y)
		for x := 0; x < len(cells); {
			start := cells[x].Style

			var run strings.Builder
			for x < len(cells) && cells[x].Style == start {
				run.WriteRune(cells[x].Rune)
				x++
			}

			if start == (core.Style{}) {
				sb.WriteString(run.String())
				continue
			}
			style, ok := styles[start]
			if !ok {
				style = styleFor(start)
				styles[start] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
