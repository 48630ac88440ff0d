package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stardodge/stardodge/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderCanvas converts a canvas to a styled string for display,
// indented by the canvas centering offsets. Adjacent cells with the
// same color are grouped to minimize ANSI escape sequences.
func RenderCanvas(c *core.Canvas) string {
	var sb strings.Builder
	sb.Grow(c.Cols()*c.Rows()*2 + c.Rows())

	indent := strings.Repeat(" ", c.OffsetCol())
	for row := 0; row < c.Rows(); row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(indent)

		col := 0
		for col < c.Cols() {
			cell := c.GetCell(col, row)
			startColor := cell.Color

			// Collect consecutive cells with the same color.
			var run strings.Builder
			for col < c.Cols() {
				cell = c.GetCell(col, row)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				col++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
