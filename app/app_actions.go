package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kastheco/folio/cv"
	"github.com/kastheco/folio/keys"
	"github.com/kastheco/folio/log"
	"github.com/kastheco/folio/ui"
	"github.com/kastheco/folio/ui/overlay"
)

// cvDownloadTimeout caps a CV download so its toast always resolves.
const cvDownloadTimeout = 30 * time.Second

// cvDownloadedMsg reports the end of a CV download.
type cvDownloadedMsg struct {
	path string
	err  error
}

func (m *home) toggleTheme() {
	next, err := m.prefs.ToggleTheme()
	if err != nil {
		m.handleError(fmt.Errorf("save theme: %w", err))
	}
	mode, _ := ui.ParseMode(next)
	m.applyTheme(mode)
}

func (m *home) applyTheme(mode ui.Mode) {
	if mode == m.theme.Mode {
		return
	}
	m.theme = ui.ThemeFor(mode)
	m.page.SetTheme(m.theme)
	m.header.SetTheme(m.theme)
	m.toc.SetTheme(m.theme)
	m.status.SetTheme(m.theme)
	m.toasts.SetTheme(m.theme)
	if m.setBackground != nil {
		m.setBackground(m.theme)
	}
	// Re-rendering can change section heights.
	m.observer.Check()
}

func (m *home) toggleSnap() {
	on, err := m.prefs.ToggleScrollSnap()
	if err != nil {
		m.handleError(fmt.Errorf("save scroll snap: %w", err))
		return
	}
	if on {
		m.toasts.Info("scroll snap on")
		m.snap.OnScroll()
	} else {
		m.toasts.Info("scroll snap off")
	}
}

// applyPrefs stores the values chosen in the preferences dialog.
func (m *home) applyPrefs(mode ui.Mode, snap bool) {
	if err := m.prefs.SetTheme(string(mode)); err != nil {
		m.handleError(fmt.Errorf("save theme: %w", err))
	}
	m.applyTheme(mode)
	if snap != m.prefs.ScrollSnapEnabled() {
		if err := m.prefs.SetScrollSnapEnabled(snap); err != nil {
			m.handleError(fmt.Errorf("save scroll snap: %w", err))
		}
		if snap {
			m.snap.OnScroll()
		}
	}
	m.toasts.Success("preferences saved")
}

// downloadCV starts a download unless one is already running.
func (m *home) downloadCV() tea.Cmd {
	if m.downloadToast != "" {
		return nil
	}
	fetcher, err := cv.NewFetcher(m.cfg.CV)
	if err != nil {
		if errors.Is(err, cv.ErrNoSource) {
			m.toasts.Error("no cv configured")
			return nil
		}
		m.handleError(err)
		return nil
	}
	m.downloadToast = m.toasts.Loading("downloading cv")
	parent, timeout := m.ctx, m.downloadTimeout
	dir, name := m.cfg.CV.DownloadDir, m.cfg.CV.FileName
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()
		path, err := cv.Download(ctx, fetcher, dir, name)
		return cvDownloadedMsg{path: path, err: err}
	}
}

func (m *home) handleDownloaded(msg cvDownloadedMsg) {
	id := m.downloadToast
	m.downloadToast = ""
	if msg.err != nil {
		log.ErrorLog.Printf("cv download: %v", msg.err)
		m.toasts.Resolve(id, overlay.ToastError, "cv download failed")
		return
	}
	log.InfoLog.Printf("cv saved to %s", msg.path)
	m.toasts.Resolve(id, overlay.ToastSuccess, "saved "+filepath.Base(msg.path))
}

func (m *home) copyEmail() {
	email := m.data.Contact.Email
	if email == "" {
		m.toasts.Error("no email address")
		return
	}
	if err := m.copyText(email); err != nil {
		m.handleError(fmt.Errorf("copy email: %w", err))
		return
	}
	m.toasts.Success("copied " + email)
}

func (m *home) handleError(err error) {
	log.ErrorLog.Printf("%v", err)
	m.toasts.Error(err.Error())
}

func helpContent(theme ui.Theme) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Foam).Width(12)
	descStyle := lipgloss.NewStyle().Foreground(theme.Text)
	lines := make([]string, 0, len(keys.HelpOrder))
	for _, name := range keys.HelpOrder {
		help := keys.GlobalkeyBindings[name].Help()
		lines = append(lines, keyStyle.Render(help.Key)+descStyle.Render(help.Desc))
	}
	return strings.Join(lines, "\n")
}

func versionContent(theme ui.Theme, version string) string {
	if version == "" {
		version = "dev"
	}
	return ui.Wordmark(theme) + "\n\n" + lipgloss.NewStyle().Foreground(theme.Subtle).Render("folio "+version)
}
