package app

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/kastheco/folio/keys"
	"github.com/kastheco/folio/ui"
	"github.com/kastheco/folio/ui/overlay"
)

// wheelStep is the number of rows one wheel notch scrolls.
const wheelStep = 3

// handleKey processes a key press. It reports whether the program should
// quit.
func (m *home) handleKey(msg tea.KeyMsg) bool {
	if m.modal != nil {
		if m.modal.HandleKeyPress(msg) {
			m.closeModal()
		}
		return false
	}

	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return false
	}
	if idx, ok := keys.SectionIndex(name); ok {
		if idx < m.registry.Len() {
			m.navigate(m.registry.At(idx).ID)
		}
		return false
	}

	switch name {
	case keys.KeyQuit:
		return true
	case keys.KeyDown:
		m.afterScroll(m.page.ScrollBy(1))
	case keys.KeyUp:
		m.afterScroll(m.page.ScrollBy(-1))
	case keys.KeyPageDown:
		m.afterScroll(m.page.ScrollBy(max(1, m.height-2)))
	case keys.KeyPageUp:
		m.afterScroll(m.page.ScrollBy(-max(1, m.height-2)))
	case keys.KeyTop:
		m.navigate(m.registry.First())
	case keys.KeyBottom:
		if n := m.registry.Len(); n > 0 {
			m.navigate(m.registry.At(n - 1).ID)
		}
	case keys.KeyNextSection:
		m.navigate(m.registry.Next(m.active.Current()))
	case keys.KeyPrevSection:
		m.navigate(m.registry.Prev(m.active.Current()))
	case keys.KeyToggleTheme:
		m.toggleTheme()
	case keys.KeyToggleSnap:
		m.toggleSnap()
	case keys.KeyMenu:
		m.header.ToggleMenu()
	case keys.KeyTOC:
		m.toc.Toggle()
	case keys.KeyDownloadCV:
		m.queue(m.downloadCV())
	case keys.KeyCopyEmail:
		m.copyEmail()
	case keys.KeyPrefs:
		m.modal = overlay.NewPrefsOverlay(m.theme, m.theme.Mode, m.prefs.ScrollSnapEnabled(), min(50, m.width-4))
	case keys.KeyStatusBar:
		m.showStatus = !m.showStatus
	case keys.KeyHelp:
		m.modal = overlay.NewTextOverlay("keys", helpContent(m.theme), m.theme)
	case keys.KeyVersion:
		m.modal = overlay.NewTextOverlay("", versionContent(m.theme, m.version), m.theme)
	case keys.KeyEscape:
		m.header.CloseMenu()
		m.toc.Close()
	}
	return false
}

func (m *home) closeModal() {
	if p, ok := m.modal.(*overlay.PrefsOverlay); ok && p.IsSubmitted() {
		m.applyPrefs(p.Mode(), p.ScrollSnap())
	}
	m.modal = nil
}

// handleMouse routes a mouse event. Open dialogs swallow the mouse; the
// mobile menu, then the table of contents, then the header get the first
// look at presses.
func (m *home) handleMouse(msg tea.MouseMsg) {
	if m.modal != nil {
		return
	}

	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			m.afterScroll(m.page.ScrollBy(wheelStep))
			return
		case tea.MouseButtonWheelUp:
			m.afterScroll(m.page.ScrollBy(-wheelStep))
			return
		}
	}

	if m.header.MenuOpen() {
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return
		}
		hit, id := m.header.ClickMenu(msg.X, msg.Y)
		switch hit {
		case ui.MenuOutside, ui.MenuClose:
			m.header.CloseMenu()
		case ui.MenuItem:
			m.navigate(id)
		case ui.MenuTheme:
			m.toggleTheme()
		}
		return
	}

	if m.toc.HandleMouse(msg) {
		return
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || !m.header.Visible() {
		return
	}
	switch {
	case zone.Get(ui.ZoneLogo).InBounds(msg):
		m.navigate(m.registry.First())
	case zone.Get(ui.ZoneMenuButton).InBounds(msg):
		m.header.ToggleMenu()
	case zone.Get(ui.ZoneThemeToggle).InBounds(msg):
		m.toggleTheme()
	case zone.Get(ui.ZoneDownloadCV).InBounds(msg):
		m.queue(m.downloadCV())
	default:
		for _, d := range m.registry.All() {
			if zone.Get(ui.NavItemZoneID(d.ID)).InBounds(msg) {
				m.navigate(d.ID)
				return
			}
		}
	}
}
