package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/kastheco/folio/section"
)

// HeaderHideThreshold is the offset in rows above which scrolling down
// hides the header.
const HeaderHideThreshold = 4

const menuPanelWidth = 28

// MenuHit is the result of a click while the mobile menu is open.
type MenuHit int

const (
	MenuOutside MenuHit = iota
	MenuInside
	MenuClose
	MenuItem
	MenuTheme
)

// Header is the sticky top bar. Below the mobile breakpoint its links move
// into a slide-in panel.
type Header struct {
	registry *section.Registry
	theme    Theme
	name     string

	width      int
	height     int
	breakpoint Breakpoint

	active      string
	location    string
	shown       bool
	lastOffset  int
	menuOpen    bool
	tocExpanded bool
}

// NewHeader returns a visible header. name is shown as the logo.
func NewHeader(registry *section.Registry, theme Theme, name string) *Header {
	return &Header{
		registry: registry,
		theme:    theme,
		name:     name,
		active:   registry.First(),
		shown:    true,
	}
}

func (h *Header) SetSize(width, height int) {
	h.width, h.height = width, height
	h.breakpoint = BreakpointFor(width)
	if h.breakpoint != Mobile {
		h.menuOpen = false
	}
}

func (h *Header) SetTheme(theme Theme)   { h.theme = theme }
func (h *Header) SetActive(id string)    { h.active = id }
func (h *Header) SetLocation(loc string) { h.location = loc }

// SetTOCExpanded hides the header on tablet and mobile while the table of
// contents is expanded.
func (h *Header) SetTOCExpanded(expanded bool) { h.tocExpanded = expanded }

// OnScroll updates visibility from the new scroll offset.
func (h *Header) OnScroll(offset int) {
	switch {
	case offset < h.lastOffset || offset < HeaderHideThreshold:
		h.shown = true
	case offset > h.lastOffset && offset > HeaderHideThreshold:
		h.shown = false
	}
	h.lastOffset = offset
}

// Visible reports whether the bar is on screen.
func (h *Header) Visible() bool {
	if h.breakpoint != Desktop && h.tocExpanded {
		return false
	}
	return h.shown
}

func (h *Header) MenuOpen() bool { return h.menuOpen }

// OpenMenu opens the slide-in panel. Only valid below the mobile breakpoint.
func (h *Header) OpenMenu() {
	if h.breakpoint == Mobile {
		h.menuOpen = true
	}
}

func (h *Header) CloseMenu() { h.menuOpen = false }

func (h *Header) ToggleMenu() {
	if h.menuOpen {
		h.CloseMenu()
	} else {
		h.OpenMenu()
	}
}

// MenuRect is the area of the open panel.
func (h *Header) MenuRect() Rect {
	if !h.menuOpen {
		return Rect{}
	}
	w := min(menuPanelWidth, h.width)
	return Rect{X: h.width - w, Y: 0, W: w, H: h.height}
}

// Menu rows: title, blank, one per section, blank, theme toggle.
const menuFirstItemRow = 2

// ClickMenu classifies a click at (x, y) against the open panel. For
// MenuItem the section id is returned as well.
func (h *Header) ClickMenu(x, y int) (MenuHit, string) {
	r := h.MenuRect()
	if r.Empty() || !r.Contains(x, y) {
		return MenuOutside, ""
	}
	row := y - r.Y
	switch {
	case row == 0 && x >= r.X+r.W-4:
		return MenuClose, ""
	case row >= menuFirstItemRow && row < menuFirstItemRow+h.registry.Len():
		return MenuItem, h.registry.At(row - menuFirstItemRow).ID
	case row == menuFirstItemRow+h.registry.Len()+1:
		return MenuTheme, ""
	}
	return MenuInside, ""
}

func (h *Header) themeLabel() string {
	if h.theme.Mode == ModeLight {
		return "☾ dark mode"
	}
	return "☀ light mode"
}

// View renders the one-row bar, or "" when hidden.
func (h *Header) View() string {
	if !h.Visible() || h.width <= 0 {
		return ""
	}
	bg := h.theme.Surface
	base := lipgloss.NewStyle().Background(bg).Foreground(h.theme.Text)
	logo := zone.Mark(ZoneLogo, base.Foreground(h.theme.Iris).Bold(true).Render(" ◆ "+strings.ToLower(h.name)+" "))

	var right []string
	if h.breakpoint == Mobile {
		right = append(right, zone.Mark(ZoneMenuButton, base.Render(" ≡ ")))
	} else {
		for _, d := range h.registry.All() {
			style := base.Foreground(h.theme.Subtle)
			if d.ID == h.active {
				style = base.Foreground(h.theme.Iris).Bold(true).Underline(true)
			}
			right = append(right, zone.Mark(NavItemZoneID(d.ID), style.Render(d.Label)))
		}
		right = append(right,
			zone.Mark(ZoneDownloadCV, base.Foreground(h.theme.Foam).Render("⇩ cv")),
			zone.Mark(ZoneThemeToggle, base.Foreground(h.theme.Gold).Render(h.themeLabel())),
		)
	}
	rightStr := strings.Join(right, base.Render("  ")) + base.Render(" ")

	left := logo
	if h.location != "" && h.breakpoint == Desktop {
		left += base.Foreground(h.theme.Muted).Render(" " + h.location)
	}

	gap := h.width - lipgloss.Width(left) - lipgloss.Width(rightStr)
	if gap < 1 {
		return base.Width(h.width).MaxWidth(h.width).Render(left)
	}
	return left + base.Render(strings.Repeat(" ", gap)) + rightStr
}

// MenuView renders the slide-in panel.
func (h *Header) MenuView() string {
	r := h.MenuRect()
	if r.Empty() {
		return ""
	}
	base := lipgloss.NewStyle().Background(h.theme.Overlay).Foreground(h.theme.Text).Width(r.W)
	lines := make([]string, 0, r.H)

	title := lipgloss.NewStyle().Foreground(h.theme.Iris).Bold(true).Render(" Menu")
	closeBtn := lipgloss.NewStyle().Foreground(h.theme.Love).Render(" ✕ ")
	pad := max(0, r.W-lipgloss.Width(title)-lipgloss.Width(closeBtn))
	lines = append(lines, base.Render(title+strings.Repeat(" ", pad)+closeBtn), base.Render(""))

	for _, d := range h.registry.All() {
		style := lipgloss.NewStyle().Foreground(h.theme.Subtle)
		marker := "  "
		if d.ID == h.active {
			style = lipgloss.NewStyle().Foreground(h.theme.Iris).Bold(true)
			marker = "▸ "
		}
		lines = append(lines, base.Render(" "+marker+style.Render(string(d.Icon)+" "+d.Label)))
	}
	lines = append(lines, base.Render(""))
	lines = append(lines, base.Render("   "+lipgloss.NewStyle().Foreground(h.theme.Gold).Render(h.themeLabel())))
	for len(lines) < r.H {
		lines = append(lines, base.Render(""))
	}
	return strings.Join(lines, "\n")
}
