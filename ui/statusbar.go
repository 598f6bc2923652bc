package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SectionGlyph represents where one section sits relative to the reader.
type SectionGlyph int

const (
	SectionGlyphPassed SectionGlyph = iota
	SectionGlyphCurrent
	SectionGlyphAhead
)

// StatusBarData holds the contextual information displayed in the status bar.
type StatusBarData struct {
	Name    string // owner name; empty falls back to "folio"
	Section string // active section label
	Index   int    // zero-based index of the active section
	Total   int
	Snap    bool
	Percent int // scroll progress, 0-100
}

// StatusBar is the optional bottom status line.
type StatusBar struct {
	width int
	theme Theme
	data  StatusBarData
}

// NewStatusBar creates a new StatusBar.
func NewStatusBar(theme Theme) *StatusBar {
	return &StatusBar{theme: theme}
}

// SetSize sets the terminal width for the status bar.
func (s *StatusBar) SetSize(width int) {
	s.width = width
}

func (s *StatusBar) SetTheme(theme Theme) {
	s.theme = theme
}

// SetData updates the status bar content.
func (s *StatusBar) SetData(data StatusBarData) {
	s.data = data
}

func (s *StatusBar) style(fg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(fg).Background(s.theme.Surface)
}

func (s *StatusBar) glyph(g SectionGlyph) string {
	switch g {
	case SectionGlyphPassed:
		return s.style(s.theme.Foam).Render("●")
	case SectionGlyphCurrent:
		return s.style(s.theme.Iris).Render("◆")
	case SectionGlyphAhead:
		return s.style(s.theme.Muted).Render("○")
	default:
		return ""
	}
}

// Glyphs returns the progress glyph of every section.
func (d StatusBarData) Glyphs() []SectionGlyph {
	out := make([]SectionGlyph, d.Total)
	for i := range out {
		switch {
		case i < d.Index:
			out[i] = SectionGlyphPassed
		case i == d.Index:
			out[i] = SectionGlyphCurrent
		default:
			out[i] = SectionGlyphAhead
		}
	}
	return out
}

const statusBarSep = " │ "

func (s *StatusBar) String() string {
	if s.width < 10 {
		return ""
	}

	name := s.data.Name
	if name == "" {
		name = "folio"
	}
	parts := make([]string, 0, 5)
	parts = append(parts, s.style(s.theme.Iris).Bold(true).Render(name))

	if s.data.Section != "" {
		label := s.data.Section
		if s.data.Total > 0 {
			label = fmt.Sprintf("%s %d/%d", label, s.data.Index+1, s.data.Total)
		}
		parts = append(parts, s.style(s.theme.Text).Render(label))
	}

	if s.data.Total > 0 {
		var glyphs strings.Builder
		for _, g := range s.data.Glyphs() {
			glyphs.WriteString(s.glyph(g))
		}
		parts = append(parts, glyphs.String())
	}

	snap := "snap off"
	snapColor := s.theme.Muted
	if s.data.Snap {
		snap, snapColor = "snap on", s.theme.Foam
	}
	parts = append(parts, s.style(snapColor).Render(snap))
	parts = append(parts, s.style(s.theme.Subtle).Render(fmt.Sprintf("%d%%", s.data.Percent)))

	sep := s.style(s.theme.Overlay).Render(statusBarSep)
	content := strings.Join(parts, sep)

	return lipgloss.NewStyle().
		Background(s.theme.Surface).
		Foreground(s.theme.Text).
		Padding(0, 1).
		MaxWidth(s.width).
		Width(s.width).
		Render(content)
}
