package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kastheco/folio/config"
	"github.com/kastheco/folio/log"
	"github.com/kastheco/folio/page"
	"github.com/kastheco/folio/prefs"
	"github.com/kastheco/folio/sched"
	"github.com/kastheco/folio/scroll"
	"github.com/kastheco/folio/section"
	"github.com/kastheco/folio/ui"
	"github.com/kastheco/folio/ui/overlay"
)

// TestMain runs before all tests to set up the test environment
func TestMain(m *testing.M) {
	log.Initialize(false)
	zone.NewGlobal()
	lipgloss.SetColorProfile(termenv.Ascii)
	code := m.Run()
	log.Close()
	os.Exit(code)
}

type harness struct {
	m      *home
	clock  *sched.Manual
	store  *prefs.MemoryStore
	copied []string
	bgs    []ui.Mode
}

func newHarness(t *testing.T, opts Options, width, height int) *harness {
	t.Helper()
	h := &harness{clock: sched.NewManual(), store: prefs.NewMemoryStore()}
	if opts.Prefs == nil {
		opts.Prefs = prefs.Load(h.store)
	}
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	h.m = newHome(context.Background(), opts, h.clock)
	h.m.copyText = func(s string) error {
		h.copied = append(h.copied, s)
		return nil
	}
	h.m.setBackground = func(th ui.Theme) { h.bgs = append(h.bgs, th.Mode) }
	h.m.Init()
	h.m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	require.True(t, h.m.page.LaidOut())
	return h
}

func (h *harness) key(s string) tea.Cmd {
	var msg tea.KeyMsg
	switch s {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	_, cmd := h.m.Update(msg)
	return cmd
}

func (h *harness) mouse(action tea.MouseAction, button tea.MouseButton, x, y int) {
	h.m.Update(tea.MouseMsg{X: x, Y: y, Action: action, Button: button})
}

// finishAnimation feeds frames until the smooth scroll lands.
func (h *harness) finishAnimation(t *testing.T) {
	t.Helper()
	for i := 0; h.m.page.Animating(); i++ {
		require.Less(t, i, 1000, "animation did not settle")
		h.m.Update(page.FrameMsg{})
	}
}

func (h *harness) top(t *testing.T, id string) int {
	t.Helper()
	top, ok := h.m.page.SectionTop(id)
	require.True(t, ok, id)
	return top
}

func TestNewHomeDefaults(t *testing.T) {
	h := newHarness(t, Options{}, 140, 40)
	m := h.m

	assert.Equal(t, ui.ModeDark, m.theme.Mode)
	assert.True(t, m.prefs.ScrollSnapEnabled())
	assert.Equal(t, []string{section.Home, section.Projects, section.Experience, section.Hobbies, section.Contact}, m.registry.IDs())
	assert.Equal(t, section.Home, m.active.Current())
	assert.True(t, m.header.Visible())
	assert.True(t, m.toc.Visible())
}

func TestViewComposesPage(t *testing.T) {
	h := newHarness(t, Options{}, 140, 40)
	h.clock.Advance(ui.BlinkerTypeDuration)

	out := ansi.Strip(h.m.View())
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 40)
	assert.Contains(t, out, "Hi, I'm Ada")
	assert.Contains(t, lines[0], "ada marin", "header is drawn over the first row")
	assert.Contains(t, out, "●", "table of contents marker")
}

func TestSectionKeysNavigate(t *testing.T) {
	h := newHarness(t, Options{}, 140, 40)

	h.key("2")
	require.True(t, h.m.page.Animating())
	h.finishAnimation(t)
	assert.Equal(t, h.top(t, section.Projects), h.m.page.Offset())
	assert.Equal(t, section.Projects, h.m.active.Current())

	h.key("n")
	h.finishAnimation(t)
	assert.Equal(t, section.Experience, h.m.active.Current())

	h.key("p")
	h.finishAnimation(t)
	assert.Equal(t, section.Projects, h.m.active.Current())

	h.key("G")
	h.finishAnimation(t)
	assert.Equal(t, section.Contact, h.m.active.Current())

	h.key("g")
	h.finishAnimation(t)
	assert.Zero(t, h.m.page.Offset())
	assert.Equal(t, section.Home, h.m.active.Current())
}

func TestLineScrollAndWheel(t *testing.T) {
	h := newHarness(t, Options{}, 140, 40)
	h.key("down")
	assert.Equal(t, 1, h.m.page.Offset())
	h.mouse(tea.MouseActionPress, tea.MouseButtonWheelDown, 10, 10)
	assert.Equal(t, 1+wheelStep, h.m.page.Offset())
	h.mouse(tea.MouseActionPress, tea.MouseButtonWheelUp, 10, 10)
	assert.Equal(t, 1, h.m.page.Offset())
}

// scrollIntoProjects leaves a quarter of home on screen.
func scrollIntoProjects(t *testing.T, h *harness) {
	t.Helper()
	h.clock.Advance(scroll.SnapDebounce)
	require.Equal(t, section.Home, h.m.snap.Current())

	h.m.afterScroll(h.m.page.ScrollToOffset(h.top(t, section.Projects) - 10))
	h.m.Update(nil)
}

func TestSnapAfterScrollSettles(t *testing.T) {
	h := newHarness(t, Options{}, 140, 40)
	scrollIntoProjects(t, h)
	assert.Equal(t, section.Projects, h.m.active.Current())

	h.clock.Advance(scroll.SnapDebounce)
	require.True(t, h.m.page.Animating())
	h.finishAnimation(t)
	assert.Equal(t, h.top(t, section.Projects), h.m.page.Offset())
	assert.Equal(t, section.Projects, h.m.snap.Current())
}

func TestSnapDisabledByPreference(t *testing.T) {
	h := newHarness(t, Options{}, 140, 40)
	h.key("s")
	require.False(t, h.m.prefs.ScrollSnapEnabled())
	v, err := h.store.Get(prefs.KeyScrollSnap)
	require.NoError(t, err)
	assert.Equal(t, "false", v)
	assert.Contains(t, h.m.toasts.View(), "scroll snap off")

	h.m.afterScroll(h.m.page.ScrollToOffset(h.top(t, section.Projects) - 10))
	h.clock.Advance(scroll.SnapDebounce)
	assert.False(t, h.m.page.Animating())
	assert.Equal(t, h.top(t, section.Projects)-10, h.m.page.Offset())
}

func TestDragScrubPausesSnapping(t *testing.T) {
	h := newHarness(t, Options{}, 140, 40)
	r := h.m.toc.Rect()
	row := h.m.toc.MarkerRow(section.Home)
	x := r.X + 1

	h.mouse(tea.MouseActionPress, tea.MouseButtonLeft, x, row)
	require.True(t, h.m.toc.Dragging())
	assert.False(t, h.m.snapEnabled())

	h.mouse(tea.MouseActionMotion, tea.MouseButtonNone, x, row+2)
	want := scroll.ScrubOffset(0, 2, h.m.page.Scrollable(), h.m.toc.TrackHeight())
	assert.Equal(t, want, h.m.page.Offset())

	h.clock.Advance(scroll.SnapDebounce)
	assert.False(t, h.m.page.Animating(), "no snapping mid-drag")

	h.mouse(tea.MouseActionRelease, tea.MouseButtonLeft, x, row+2)
	assert.False(t, h.m.toc.Dragging())
	assert.True(t, h.m.snapEnabled())
	assert.Equal(t, want, h.m.page.Offset(), "a drag is not a click")
}

func TestDeepLinkResolvesAfterLayout(t *testing.T) {
	h := &harness{clock: sched.NewManual(), store: prefs.NewMemoryStore()}
	m := newHome(context.Background(), Options{Fragment: "#experience", Prefs: prefs.Load(h.store)}, h.clock)
	m.Init()
	assert.Equal(t, "#experience", m.location.Fragment())
	assert.Equal(t, 1, m.deepLink.Attempts(), "page not laid out yet")

	m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	h.clock.Advance(scroll.DeepLinkBackoff[0])

	top, ok := m.page.SectionTop(section.Experience)
	require.True(t, ok)
	assert.Equal(t, top, m.page.Offset())
	assert.False(t, m.page.Animating(), "deep links jump")
	assert.Equal(t, "", m.location.Fragment(), "fragment cleared")
	assert.Equal(t, section.Experience, m.active.Current())
}

func TestDeepLinkUnknownSection(t *testing.T) {
	h := newHarness(t, Options{Fragment: "nope"}, 140, 40)
	h.clock.Advance(5 * scroll.DeepLinkBackoff[4])
	assert.Zero(t, h.m.page.Offset())
	assert.Zero(t, h.m.deepLink.Attempts())
}

func TestToggleTheme(t *testing.T) {
	h := newHarness(t, Options{}, 140, 40)
	h.key("t")
	assert.Equal(t, ui.ModeLight, h.m.theme.Mode)
	v, err := h.store.Get(prefs.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, prefs.ThemeLight, v)
	assert.Equal(t, []ui.Mode{ui.ModeLight}, h.bgs)

	h.key("t")
	assert.Equal(t, ui.ModeDark, h.m.theme.Mode)
}

func TestThemeOverrideIsNotPersisted(t *testing.T) {
	h := newHarness(t, Options{Theme: ui.ModeLight}, 140, 40)
	assert.Equal(t, ui.ModeLight, h.m.theme.Mode)
	assert.Equal(t, prefs.ThemeDark, h.m.prefs.Theme())
	_, err := h.store.Get(prefs.KeyTheme)
	assert.ErrorIs(t, err, prefs.ErrNotFound)
}

func TestPrefsDialog(t *testing.T) {
	h := newHarness(t, Options{}, 140, 40)

	h.key(",")
	require.IsType(t, &overlay.PrefsOverlay{}, h.m.modal)
	assert.Contains(t, ansi.Strip(h.m.View()), "preferences")

	h.key("t")
	assert.Equal(t, ui.ModeDark, h.m.theme.Mode, "keys go to the dialog")

	h.key("esc")
	assert.Nil(t, h.m.modal)
	assert.NotContains(t, h.m.toasts.View(), "preferences saved")

	h.key(",")
	h.key("enter")
	assert.Nil(t, h.m.modal)
	assert.Contains(t, h.m.toasts.View(), "preferences saved")
}

func TestHelpAndVersionDialogs(t *testing.T) {
	h := newHarness(t, Options{Version: "1.2.3"}, 140, 40)

	h.key("?")
	require.NotNil(t, h.m.modal)
	assert.Contains(t, ansi.Strip(h.m.View()), "next section")
	h.key("x")
	assert.Nil(t, h.m.modal)

	h.key("v")
	assert.Contains(t, ansi.Strip(h.m.View()), "folio 1.2.3")
	h.key("q")
	assert.Nil(t, h.m.modal, "q closes the dialog instead of quitting")
}

func TestDownloadCV(t *testing.T) {
	src := filepath.Join(t.TempDir(), "source.pdf")
	require.NoError(t, os.WriteFile(src, []byte("%PDF-1.4 fake"), 0o644))
	cfg := config.DefaultConfig()
	cfg.CV = config.CVConfig{Path: src, FileName: "ada-marin.pdf", DownloadDir: t.TempDir()}

	h := newHarness(t, Options{Config: cfg}, 140, 40)
	cmd := h.m.downloadCV()
	require.NotNil(t, cmd)
	assert.Contains(t, h.m.toasts.View(), "downloading cv")
	assert.Nil(t, h.m.downloadCV(), "one download at a time")

	msg := cmd()
	done, ok := msg.(cvDownloadedMsg)
	require.True(t, ok)
	require.NoError(t, done.err)

	h.m.Update(done)
	assert.Equal(t, "", h.m.downloadToast)
	assert.Contains(t, h.m.toasts.View(), "saved ada-marin.pdf")
	got, err := os.ReadFile(filepath.Join(cfg.CV.DownloadDir, "ada-marin.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(got))
}

func TestDownloadCVFailure(t *testing.T) {
	h := newHarness(t, Options{}, 140, 40)
	assert.Nil(t, h.m.downloadCV())
	assert.Contains(t, h.m.toasts.View(), "no cv configured")

	h.m.downloadToast = h.m.toasts.Loading("downloading cv")
	h.m.Update(cvDownloadedMsg{err: errors.New("boom")})
	assert.Contains(t, h.m.toasts.View(), "cv download failed")
}

func TestDownloadCVTimesOut(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer srv.Close()
	defer close(release)

	cfg := config.DefaultConfig()
	cfg.CV = config.CVConfig{URL: srv.URL, FileName: "ada-marin.pdf", DownloadDir: t.TempDir()}
	h := newHarness(t, Options{Config: cfg}, 140, 40)
	assert.Equal(t, cvDownloadTimeout, h.m.downloadTimeout)
	h.m.downloadTimeout = 50 * time.Millisecond

	cmd := h.m.downloadCV()
	require.NotNil(t, cmd)
	done, ok := cmd().(cvDownloadedMsg)
	require.True(t, ok)
	require.ErrorIs(t, done.err, context.DeadlineExceeded)

	h.m.Update(done)
	assert.Equal(t, "", h.m.downloadToast)
	assert.Contains(t, h.m.toasts.View(), "cv download failed")
	assert.NotNil(t, h.m.downloadCV(), "a new download can start")
}

func TestHotPathLogsAreRateLimited(t *testing.T) {
	h := newHarness(t, Options{}, 140, 40)
	assert.False(t, h.m.resizeLog.ShouldLog(), "the first resize already logged")

	h.m.scrollLog = log.NewEvery(time.Hour)
	h.key("down")
	h.key("down")
	assert.False(t, h.m.scrollLog.ShouldLog())

	raw, err := os.ReadFile(log.LogFile())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "resize: 140x40 breakpoint=")
	assert.Contains(t, string(raw), "scroll: offset=1 active=home")
}

func TestCopyEmail(t *testing.T) {
	h := newHarness(t, Options{}, 140, 40)
	h.key("c")
	assert.Equal(t, []string{"ada@example.com"}, h.copied)
	assert.Contains(t, h.m.toasts.View(), "copied ada@example.com")

	h.m.copyText = func(string) error { return errors.New("no clipboard") }
	h.key("c")
	assert.Contains(t, h.m.toasts.View(), "no clipboard")
}

func TestMobileMenu(t *testing.T) {
	h := newHarness(t, Options{}, 60, 30)
	assert.False(t, h.m.toc.Visible())

	h.key("m")
	require.True(t, h.m.header.MenuOpen())
	r := h.m.header.MenuRect()
	assert.Contains(t, ansi.Strip(h.m.View()), "Menu")

	// Second item row.
	h.mouse(tea.MouseActionPress, tea.MouseButtonLeft, r.X+3, 3)
	assert.False(t, h.m.header.MenuOpen())
	h.finishAnimation(t)
	assert.Equal(t, h.top(t, section.Projects), h.m.page.Offset())

	h.key("m")
	h.mouse(tea.MouseActionPress, tea.MouseButtonLeft, 0, 10)
	assert.False(t, h.m.header.MenuOpen(), "clicking outside closes")
}

func TestTabletTOCClosesAfterNavigate(t *testing.T) {
	h := newHarness(t, Options{}, 100, 40)
	require.False(t, h.m.toc.Visible())

	h.key("T")
	require.True(t, h.m.toc.Expanded())
	assert.False(t, h.m.header.Visible(), "header yields to the expanded contents")

	r := h.m.toc.Rect()
	h.mouse(tea.MouseActionPress, tea.MouseButtonLeft, r.X+1, h.m.toc.MarkerRow(section.Contact))
	h.clock.Advance(ui.TOCCollapseDelay)
	h.m.Update(nil)
	assert.False(t, h.m.toc.Visible())
	assert.True(t, h.m.header.Visible())
}

func TestEscapeClosesNavigation(t *testing.T) {
	h := newHarness(t, Options{}, 100, 40)
	h.key("T")
	require.True(t, h.m.toc.Visible())
	h.key("esc")
	assert.False(t, h.m.toc.Visible())
}

func TestQuit(t *testing.T) {
	h := newHarness(t, Options{}, 140, 40)
	cmd := h.key("q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Zero(t, h.clock.Pending(), "timers cancelled on quit")
}

func TestStatusLine(t *testing.T) {
	h := newHarness(t, Options{}, 140, 40)
	last := func() string {
		lines := strings.Split(ansi.Strip(h.m.View()), "\n")
		return lines[len(lines)-1]
	}
	assert.NotContains(t, last(), "snap on")

	h.key("i")
	assert.Contains(t, last(), "Ada Marin")
	assert.Contains(t, last(), "Home 1/5")
	assert.Contains(t, last(), "snap on")
	assert.Contains(t, last(), "0%")

	h.key("2")
	h.finishAnimation(t)
	assert.Contains(t, last(), "Projects 2/5")

	h.key("s")
	assert.Contains(t, last(), "snap off")

	h.key("i")
	assert.NotContains(t, last(), "Projects 2/5")
}
