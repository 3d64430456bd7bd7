package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/jumping-chick/internal/core"
)

type colorPair struct {
	fg, bg core.Color
}

// styleCache maps a fg/bg pair to its lipgloss style. A frame only uses a
// handful of pairs.
var styleCache = map[colorPair]lipgloss.Style{}

func styleFor(p colorPair) lipgloss.Style {
	if st, ok := styleCache[p]; ok {
		return st
	}
	st := lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.fg.Hex())).
		Background(lipgloss.Color(p.bg.Hex()))
	styleCache[p] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := colorPair{cell.FG, cell.BG}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colorPair{cell.FG, cell.BG}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
