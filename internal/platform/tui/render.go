package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dragon-arcade/internal/core"
)

// colorStyles maps color roles to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorPlayer:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorEdible:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorThreat:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorRock:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorHeart:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorText:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorFrame:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
}

// footerStyle dims the key help below the playfield.
var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one color are emitted as a single styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}
