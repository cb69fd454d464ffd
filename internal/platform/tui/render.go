package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hangart/internal/core"
)

var (
	wordStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// RenderScreen converts a Screen buffer to a string for display.
// The picture rows stay flat text; the last statusLines rows are styled:
// the word line, the counters, then the hint line.
func RenderScreen(s *core.Screen, statusLines int) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	first := s.Height() - statusLines
	if statusLines <= 0 || first <= 0 {
		first = s.Height()
	}

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		row := s.Row(y)
		switch {
		case y < first:
			sb.WriteString(row)
		case y == first:
			sb.WriteString(wordStyle.Render(row))
		case y == s.Height()-1:
			sb.WriteString(hintStyle.Render(row))
		default:
			sb.WriteString(statusStyle.Render(row))
		}
	}
	return sb.String()
}
