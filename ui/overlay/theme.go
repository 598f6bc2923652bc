package overlay

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/kastheco/folio/ui"
)

// HuhTheme returns a huh theme drawn from the portfolio palette.
func HuhTheme(theme ui.Theme) *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(theme.Iris)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(theme.Iris).Bold(true)
	t.Focused.NoteTitle = t.Focused.NoteTitle.Foreground(theme.Iris).Bold(true).MarginBottom(1)
	t.Focused.Description = t.Focused.Description.Foreground(theme.Muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(theme.Love)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(theme.Love)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(theme.Iris)
	t.Focused.NextIndicator = t.Focused.NextIndicator.Foreground(theme.Iris)
	t.Focused.PrevIndicator = t.Focused.PrevIndicator.Foreground(theme.Iris)
	t.Focused.Option = t.Focused.Option.Foreground(theme.Text)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(theme.Foam)
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(theme.Text)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(theme.Base).Background(theme.Iris)
	t.Focused.Next = t.Focused.FocusedButton
	t.Focused.BlurredButton = t.Focused.BlurredButton.Foreground(theme.Subtle).Background(theme.Overlay)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base
	t.Blurred.NextIndicator = lipgloss.NewStyle()
	t.Blurred.PrevIndicator = lipgloss.NewStyle()

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
