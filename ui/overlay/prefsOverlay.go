package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/kastheco/folio/ui"
)

// PrefsOverlay edits the persisted preferences with a huh form.
type PrefsOverlay struct {
	form      *huh.Form
	theme     ui.Theme
	mode      string
	snap      bool
	submitted bool
	canceled  bool
	width     int
}

// NewPrefsOverlay opens the form seeded with the current values.
func NewPrefsOverlay(theme ui.Theme, mode ui.Mode, snap bool, width int) *PrefsOverlay {
	p := &PrefsOverlay{theme: theme, mode: string(mode), snap: snap, width: width}

	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("theme").
				Title("theme").
				Value(&p.mode).
				Options(
					huh.NewOption("dark", string(ui.ModeDark)),
					huh.NewOption("light", string(ui.ModeLight)),
				),
			huh.NewConfirm().
				Key("snap").
				Title("scroll snap").
				Affirmative("on").
				Negative("off").
				Value(&p.snap),
		),
	).
		WithTheme(HuhTheme(theme)).
		WithWidth(max(p.width-6, 30)).
		WithShowHelp(false).
		WithShowErrors(false)

	_ = p.form.Init()
	return p
}

func (p *PrefsOverlay) updateForm(msg tea.Msg) {
	updated, _ := p.form.Update(msg)
	if form, ok := updated.(*huh.Form); ok {
		p.form = form
	}
}

// HandleKeyPress processes a key and reports whether the overlay should
// close.
func (p *PrefsOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyEsc:
		p.canceled = true
		return true
	case tea.KeyEnter:
		p.submitted = true
		return true
	case tea.KeyTab:
		p.updateForm(huh.NextField())
		return false
	case tea.KeyShiftTab:
		p.updateForm(huh.PrevField())
		return false
	default:
		p.updateForm(msg)
		return false
	}
}

// Render returns the boxed form.
func (p *PrefsOverlay) Render() string {
	title := lipgloss.NewStyle().Foreground(p.theme.Iris).Bold(true).MarginBottom(1).Render("preferences")
	hint := lipgloss.NewStyle().Foreground(p.theme.Muted).MarginTop(1).Render("tab next · enter save · esc cancel")

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(p.theme.Iris).
		Padding(1, 2).
		Width(max(p.width, 36)).
		Render(title + "\n" + p.form.View() + "\n" + hint)
}

// Mode returns the chosen theme mode.
func (p *PrefsOverlay) Mode() ui.Mode {
	if m, ok := ui.ParseMode(p.mode); ok {
		return m
	}
	return ui.ModeDark
}

// ScrollSnap returns the chosen snap setting.
func (p *PrefsOverlay) ScrollSnap() bool { return p.snap }

func (p *PrefsOverlay) IsSubmitted() bool { return p.submitted }
func (p *PrefsOverlay) IsCanceled() bool  { return p.canceled }
