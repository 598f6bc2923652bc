package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/kastheco/folio/config"
	"github.com/kastheco/folio/content"
	"github.com/kastheco/folio/log"
	"github.com/kastheco/folio/page"
	"github.com/kastheco/folio/prefs"
	"github.com/kastheco/folio/sched"
	"github.com/kastheco/folio/scroll"
	"github.com/kastheco/folio/section"
	"github.com/kastheco/folio/ui"
	"github.com/kastheco/folio/ui/overlay"
)

// observerBand is how many rows either side of the viewport midline count as
// "in view" for the active-section tracker.
const observerBand = 1

// Options configure one portfolio session.
type Options struct {
	Config  *config.Config
	Content *content.Data
	Prefs   *prefs.Preferences
	// Fragment is the deep link target, with or without a leading '#'.
	Fragment string
	// Theme overrides the stored theme for this session only.
	Theme   ui.Mode
	Version string
}

// Run is the main entrypoint into the application.
func Run(ctx context.Context, opts Options) error {
	loop := sched.NewLoop(nil)
	defer loop.Close()

	h := newHome(ctx, opts, loop)
	h.loop = loop
	bg := ui.NewTerminalBackground(os.Stdout)
	bg.Set(h.theme)
	defer bg.Restore()
	h.setBackground = bg.Set

	zone.NewGlobal()
	p := tea.NewProgram(
		h,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // hover expands the table of contents
		tea.WithContext(ctx),
	)
	loop.Attach(p.Send)
	_, err := p.Run()
	h.teardown()
	return err
}

type home struct {
	ctx     context.Context
	cfg     *config.Config
	data    *content.Data
	prefs   *prefs.Preferences
	version string

	// -- Scroll machinery --

	registry *section.Registry
	active   *section.Active
	page     *page.Page
	observer *scroll.MidlineObserver
	tracker  *scroll.VisibilityTracker
	snap     *scroll.SnapController
	deepLink *scroll.DeepLinkResolver
	location *fragmentLocation

	sched sched.Scheduler
	// loop is set when sched is the production loop.
	loop *sched.Loop

	// -- UI Components --

	theme   ui.Theme
	header  *ui.Header
	toc     *ui.TOC
	status  *ui.StatusBar
	hero    *ui.Blinker
	spinner spinner.Model
	toasts  *overlay.ToastManager
	// modal is the open dialog, if any.
	modal modal

	width  int
	height int
	// showStatus draws the status line over the bottom row.
	showStatus bool

	// framing is set while a page.FrameMsg is in flight.
	framing bool
	// toastTicking is set while an overlay.ToastTickMsg is in flight.
	toastTicking bool
	// downloadToast is the loading toast of the running CV download.
	downloadToast string
	// downloadTimeout bounds each CV download.
	downloadTimeout time.Duration
	// resizeLog and scrollLog keep hot-path logging to one line a second.
	resizeLog *log.Every
	scrollLog *log.Every

	// cmds collects commands queued by callbacks during one Update.
	cmds []tea.Cmd

	// copyText writes to the system clipboard.
	copyText func(string) error
	// setBackground repaints the terminal background after a theme change.
	setBackground func(ui.Theme)
}

// modal is a dialog drawn over the page that takes every key until it closes.
type modal interface {
	HandleKeyPress(tea.KeyMsg) bool
	Render() string
}

func newHome(ctx context.Context, opts Options, s sched.Scheduler) *home {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	data := opts.Content
	if data == nil {
		data = content.Default()
	}
	p := opts.Prefs
	if p == nil {
		p = prefs.Load(prefs.NewMemoryStore())
	}

	mode, _ := ui.ParseMode(p.Theme())
	if opts.Theme != "" {
		mode = opts.Theme
	}
	theme := ui.ThemeFor(mode)

	h := &home{
		ctx:      ctx,
		cfg:      cfg,
		data:     data,
		prefs:    p,
		version:  opts.Version,
		sched:    s,
		theme:    theme,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		copyText: clipboard.WriteAll,

		downloadTimeout: cvDownloadTimeout,
		resizeLog:       log.NewEvery(time.Second),
		scrollLog:       log.NewEvery(time.Second),
	}

	h.registry = section.Build(data)
	h.active = section.NewActive(h.registry)
	h.page = page.New(h.registry, data, theme)
	h.header = ui.NewHeader(h.registry, theme, data.Contact.Name)
	h.toc = ui.NewTOC(h.registry, theme, s, h.page, h.navigate, func() { h.afterScroll(true) })
	h.status = ui.NewStatusBar(theme)
	h.toasts = overlay.NewToastManager(&h.spinner, theme)

	h.active.OnChange(func(id string) {
		h.header.SetActive(id)
		h.toc.SetActive(id)
		log.InfoLog.Printf("active section: %s", id)
	})

	h.observer = scroll.NewMidlineObserver(h.page, observerBand)
	h.tracker = scroll.NewVisibilityTracker(h.active, nil)
	h.snap = scroll.NewSnapController(h.registry.IDs(), h.page, h.page, s, scroll.SnapOptions{
		Enabled:         h.snapEnabled,
		Mobile:          func() bool { return ui.BreakpointFor(h.width) == ui.Mobile },
		DisableOnMobile: cfg.Features.DisableMobileScrollSnap,
	})

	h.location = &fragmentLocation{fragment: opts.Fragment, onReplace: h.header.SetLocation}
	if opts.Fragment != "" {
		h.header.SetLocation("#" + strings.TrimPrefix(opts.Fragment, "#"))
	}
	h.deepLink = scroll.NewDeepLinkResolver(h.registry, h.page, h.page, h.location, s)
	h.deepLink.OnResolved = func(id string) {
		log.InfoLog.Printf("deep link resolved to %s", id)
		h.afterScroll(true)
	}

	greeting := heroText(data)
	if cfg.IsHeroAnimated() {
		h.hero = ui.NewBlinker(s, greeting, func() { h.page.SetHero(h.hero.View()) })
		h.page.SetHero(h.hero.View())
	} else {
		h.page.SetHero(greeting)
	}

	return h
}

func heroText(data *content.Data) string {
	if name := data.Contact.FirstName(); name != "" {
		return fmt.Sprintf("Hi, I'm %s", name)
	}
	return "Hi"
}

// snapEnabled gates the snap controller: the preference must be on and the
// table of contents must not be mid-drag.
func (m *home) snapEnabled() bool {
	return m.prefs.ScrollSnapEnabled() && !m.toc.Dragging()
}

func (m *home) Init() tea.Cmd {
	m.tracker.Start(m.observer, m.registry.IDs())
	m.snap.Start()
	m.deepLink.Resolve()
	if m.hero != nil {
		m.hero.Start()
	}
	return tea.Batch(
		m.spinner.Tick,
		tea.SetWindowTitle(m.windowTitle()),
	)
}

func (m *home) windowTitle() string {
	if name := m.data.Contact.Name; name != "" {
		return name + " · folio"
	}
	return "folio"
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case sched.FireMsg:
		if m.loop != nil {
			m.loop.Handle(msg)
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case page.FrameMsg:
		m.framing = false
		m.afterScroll(m.page.Step())
	case overlay.ToastTickMsg:
		m.toastTicking = false
		m.toasts.Tick()
	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
	case cvDownloadedMsg:
		m.handleDownloaded(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		if m.handleKey(msg) {
			m.teardown()
			return m, tea.Quit
		}
	}
	m.sync()
	return m, m.flush(cmd)
}

// queue schedules cmd to be returned from the current Update.
func (m *home) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.cmds = append(m.cmds, cmd)
	}
}

// flush returns every queued command plus the frame and toast tickers when
// they are needed.
func (m *home) flush(extra tea.Cmd) tea.Cmd {
	cmds := append(m.cmds, extra)
	m.cmds = nil
	if m.page.Animating() && !m.framing {
		m.framing = true
		cmds = append(cmds, page.Frame())
	}
	if m.toasts.Active() && !m.toastTicking {
		m.toastTicking = true
		cmds = append(cmds, toastTick())
	}
	return tea.Batch(cmds...)
}

func toastTick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(time.Time) tea.Msg { return overlay.ToastTickMsg{} })
}

func (m *home) resize(width, height int) {
	m.width, m.height = width, height
	m.page.SetSize(width, height)
	m.header.SetSize(width, height)
	m.toc.SetSize(width, height)
	m.status.SetSize(width)
	m.observer.Check()
	m.snap.OnScroll()
	if m.resizeLog.ShouldLog() {
		log.InfoLog.Printf("resize: %dx%d breakpoint=%s", width, height, ui.BreakpointFor(width))
	}
}

// afterScroll propagates a scroll offset change to the observers.
func (m *home) afterScroll(changed bool) {
	if !changed {
		return
	}
	m.observer.Check()
	m.header.OnScroll(m.page.Offset())
	m.snap.OnScroll()
	if m.scrollLog.ShouldLog() {
		log.InfoLog.Printf("scroll: offset=%d active=%s", m.page.Offset(), m.active.Current())
	}
}

// sync pushes cross-component state that may have changed during Update.
func (m *home) sync() {
	m.header.SetTOCExpanded(m.toc.Expanded())
}

// navigate smooth-scrolls to id and closes the navigation surfaces.
func (m *home) navigate(id string) {
	if !m.page.ScrollTo(id, true) {
		log.WarningLog.Printf("navigate: unknown section %q", id)
		return
	}
	m.header.CloseMenu()
	m.toc.AfterNavigate()
}

func (m *home) teardown() {
	m.tracker.Stop()
	m.observer.Disconnect()
	m.snap.Stop()
	m.deepLink.Stop()
	m.toc.Stop()
	if m.hero != nil {
		m.hero.Stop()
	}
	if m.loop != nil {
		m.loop.Close()
	}
}

func (m *home) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	view := m.page.View()
	if hv := m.header.View(); hv != "" {
		view = overlay.PlaceOverlay(0, 0, hv, view)
	}
	if r := m.toc.Rect(); !r.Empty() {
		view = overlay.PlaceOverlay(r.X, r.Y, m.toc.View(), view)
	}
	if r := m.toc.ToggleRect(); !r.Empty() {
		view = overlay.PlaceOverlay(r.X, r.Y, m.toc.ToggleView(), view)
	}
	if m.header.MenuOpen() {
		r := m.header.MenuRect()
		view = overlay.PlaceOverlay(r.X, r.Y, m.header.MenuView(), view)
	}
	if m.showStatus {
		m.status.SetData(m.statusData())
		if sv := m.status.String(); sv != "" {
			view = overlay.PlaceOverlay(0, m.height-1, sv, view)
		}
	}
	if m.modal != nil {
		view = overlay.Center(m.modal.Render(), view, m.width, m.height)
	}
	view = m.toasts.Overlay(view, m.width)

	// zone markers inflate widths until scanned
	view = zone.Scan(view)
	return ui.FillBackground(view, m.width, m.height)
}

func (m *home) statusData() ui.StatusBarData {
	d := ui.StatusBarData{
		Name:  m.data.Contact.Name,
		Total: m.registry.Len(),
		Snap:  m.prefs.ScrollSnapEnabled(),
	}
	id := m.active.Current()
	if desc, ok := m.registry.Get(id); ok {
		d.Section = desc.Label
		d.Index = m.registry.Index(id)
	}
	if limit := m.page.Scrollable(); limit > 0 {
		d.Percent = m.page.Offset() * 100 / limit
	} else {
		d.Percent = 100
	}
	return d
}

// fragmentLocation is the deep link "address bar". Clearing it also clears
// the location shown in the header.
type fragmentLocation struct {
	fragment  string
	onReplace func(string)
}

func (l *fragmentLocation) Fragment() string { return l.fragment }

func (l *fragmentLocation) Replace(fragment string) {
	l.fragment = fragment
	if l.onReplace != nil {
		l.onReplace(fragment)
	}
}
