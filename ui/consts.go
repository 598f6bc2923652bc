package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// The folio wordmark, 6 rows tall.
var wordmarkRaw = `███████╗ ██████╗ ██╗     ██╗ ██████╗
██╔════╝██╔═══██╗██║     ██║██╔═══██╗
█████╗  ██║   ██║██║     ██║██║   ██║
██╔══╝  ██║   ██║██║     ██║██║   ██║
██║     ╚██████╔╝███████╗██║╚██████╔╝
╚═╝      ╚═════╝ ╚══════╝╚═╝ ╚═════╝`

// Wordmark renders the wordmark, fading from foam to iris row by row.
func Wordmark(theme Theme) string {
	lines := strings.Split(wordmarkRaw, "\n")
	for i, l := range lines {
		c := theme.Foam
		if i >= len(lines)/2 {
			c = theme.Iris
		}
		lines[i] = lipgloss.NewStyle().Foreground(c).Render(l)
	}
	return strings.Join(lines, "\n")
}

// WordmarkWidth is the column width of the wordmark.
func WordmarkWidth() int {
	return lipgloss.Width(wordmarkRaw)
}
