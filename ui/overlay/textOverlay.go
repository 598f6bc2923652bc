package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kastheco/folio/ui"
)

// TextOverlay is a dismissable box of prerendered text. Any key closes it.
type TextOverlay struct {
	title string
	body  string
	theme ui.Theme
}

func NewTextOverlay(title, body string, theme ui.Theme) *TextOverlay {
	return &TextOverlay{title: title, body: body, theme: theme}
}

// HandleKeyPress always closes the overlay.
func (o *TextOverlay) HandleKeyPress(tea.KeyMsg) bool { return true }

func (o *TextOverlay) Render() string {
	content := o.body
	if o.title != "" {
		content = lipgloss.NewStyle().Foreground(o.theme.Iris).Bold(true).Render(o.title) + "\n\n" + content
	}
	hint := lipgloss.NewStyle().Foreground(o.theme.Muted).Render("press any key")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(o.theme.Overlay).
		Padding(1, 2).
		Render(content + "\n\n" + hint)
}
