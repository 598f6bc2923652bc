package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kastheco/folio/sched"
	"github.com/kastheco/folio/scroll"
	"github.com/kastheco/folio/section"
)

const (
	// TOCCollapseDelay is how long the table of contents stays open after a
	// navigation.
	TOCCollapseDelay = 300 * time.Millisecond
	// TOCRedispatchDelay is the pause between releasing a drag and replaying
	// a scroll event so snapping resumes.
	TOCRedispatchDelay = 100 * time.Millisecond
)

// ScrollPort is the part of the page the drag scrub drives.
type ScrollPort interface {
	Offset() int
	Scrollable() int
	ScrollToOffset(offset int) bool
}

// TOC is the floating table of contents on the right edge. Desktop keeps it
// visible and expands it on hover; tablet hides it behind a toggle; mobile
// never shows it.
type TOC struct {
	registry *section.Registry
	theme    Theme
	sched    sched.Scheduler
	port     ScrollPort

	onNavigate func(id string)
	onScroll   func()

	width      int
	height     int
	breakpoint Breakpoint

	active   string
	visible  bool
	expanded bool
	hovering bool

	dragging        bool
	dragMoved       bool
	dragStartY      int
	dragStartOffset int

	collapseTask   sched.Task
	redispatchTask sched.Task
}

// NewTOC wires the widget. onNavigate is called for marker clicks and
// onScroll whenever the widget itself changed the scroll offset.
func NewTOC(registry *section.Registry, theme Theme, s sched.Scheduler, port ScrollPort, onNavigate func(id string), onScroll func()) *TOC {
	return &TOC{
		registry:   registry,
		theme:      theme,
		sched:      s,
		port:       port,
		onNavigate: onNavigate,
		onScroll:   onScroll,
		active:     registry.First(),
		breakpoint: Desktop,
		visible:    true,
	}
}

// SetSize applies the screen size and resets visibility for the new
// breakpoint.
func (t *TOC) SetSize(width, height int) {
	bp := BreakpointFor(width)
	changed := bp != t.breakpoint || t.width == 0
	t.width, t.height, t.breakpoint = width, height, bp
	if !changed {
		return
	}
	switch bp {
	case Desktop:
		t.visible, t.expanded = true, false
	case Tablet:
		t.visible, t.expanded = false, false
	}
}

func (t *TOC) SetTheme(theme Theme) { t.theme = theme }
func (t *TOC) SetActive(id string)  { t.active = id }

// Visible reports whether the widget is on screen.
func (t *TOC) Visible() bool {
	return t.breakpoint != Mobile && t.visible
}

// Expanded reports whether labels are shown.
func (t *TOC) Expanded() bool {
	return t.Visible() && t.expanded
}

func (t *TOC) Dragging() bool { return t.dragging }

// Toggle is the toggle button (tablet) or keyboard focus (desktop).
func (t *TOC) Toggle() {
	switch t.breakpoint {
	case Tablet:
		t.visible = !t.visible
		t.expanded = !t.expanded
	case Desktop:
		t.expanded = !t.expanded
	}
}

// Close hides a tablet overlay and collapses a desktop one.
func (t *TOC) Close() {
	if t.breakpoint == Tablet {
		t.visible = false
	}
	t.expanded = false
}

// AfterNavigate collapses the widget (and hides it on tablet) shortly
// after a navigation.
func (t *TOC) AfterNavigate() {
	if t.collapseTask != nil {
		t.collapseTask.Stop()
	}
	t.collapseTask = t.sched.AfterFunc(TOCCollapseDelay, func() {
		t.collapseTask = nil
		if t.dragging {
			return
		}
		t.Close()
	})
}

// Stop cancels pending timers.
func (t *TOC) Stop() {
	if t.collapseTask != nil {
		t.collapseTask.Stop()
		t.collapseTask = nil
	}
	if t.redispatchTask != nil {
		t.redispatchTask.Stop()
		t.redispatchTask = nil
	}
}

func (t *TOC) innerWidth() int {
	if !t.expanded {
		return 3
	}
	longest := 0
	for _, d := range t.registry.All() {
		longest = max(longest, lipgloss.Width(d.Label))
	}
	// " ● " + icon + " " + label + " "
	return 3 + 2 + longest + 1
}

// Rect is the widget's screen area including its border.
func (t *TOC) Rect() Rect {
	if !t.Visible() || t.registry.Len() == 0 {
		return Rect{}
	}
	w := t.innerWidth() + 2
	h := 2*t.registry.Len() + 1
	return Rect{X: t.width - w - 1, Y: max(0, (t.height-h)/2), W: w, H: h}
}

// ToggleRect is the tablet toggle button. Empty outside tablet.
func (t *TOC) ToggleRect() Rect {
	if t.breakpoint != Tablet {
		return Rect{}
	}
	if r := t.Rect(); !r.Empty() {
		return Rect{X: r.X + r.W - 3, Y: max(0, r.Y-1), W: 3, H: 1}
	}
	return Rect{X: t.width - 4, Y: t.height / 2, W: 3, H: 1}
}

// TrackHeight is the height the drag scrub maps onto the page.
func (t *TOC) TrackHeight() int {
	return t.Rect().H
}

// markerAt returns the section whose marker row is at y.
func (t *TOC) markerAt(y int) (string, bool) {
	r := t.Rect()
	row := y - r.Y - 1
	if row < 0 || row%2 != 0 {
		return "", false
	}
	i := row / 2
	if i >= t.registry.Len() {
		return "", false
	}
	return t.registry.At(i).ID, true
}

// MarkerRow returns the screen row of id's marker.
func (t *TOC) MarkerRow(id string) int {
	return t.Rect().Y + 1 + 2*t.registry.Index(id)
}

// HandleMouse processes a mouse event and reports whether it was consumed.
func (t *TOC) HandleMouse(msg tea.MouseMsg) bool {
	switch msg.Action {
	case tea.MouseActionMotion:
		return t.motion(msg.X, msg.Y)
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return false
		}
		return t.press(msg.X, msg.Y)
	case tea.MouseActionRelease:
		return t.release(msg.X, msg.Y)
	}
	return false
}

func (t *TOC) motion(x, y int) bool {
	if t.dragging {
		target := scroll.ScrubOffset(t.dragStartOffset, y-t.dragStartY, t.port.Scrollable(), t.TrackHeight())
		if t.port.ScrollToOffset(target) {
			t.dragMoved = true
			if t.onScroll != nil {
				t.onScroll()
			}
		}
		return true
	}
	if t.breakpoint != Desktop {
		return false
	}
	inside := t.Rect().Contains(x, y)
	switch {
	case inside && !t.hovering:
		t.hovering = true
		t.expanded = true
	case !inside && t.hovering:
		t.hovering = false
		t.expanded = false
	}
	return inside
}

func (t *TOC) press(x, y int) bool {
	if t.ToggleRect().Contains(x, y) {
		t.Toggle()
		return true
	}
	r := t.Rect()
	if r.Empty() {
		return false
	}
	if !r.Contains(x, y) {
		if t.breakpoint == Tablet {
			t.visible = false
			t.expanded = false
		}
		return false
	}
	id, ok := t.markerAt(y)
	if !ok {
		return true
	}
	if id == t.active {
		t.dragging = true
		t.dragMoved = false
		t.dragStartY = y
		t.dragStartOffset = t.port.Offset()
		return true
	}
	if t.onNavigate != nil {
		t.onNavigate(id)
	}
	return true
}

func (t *TOC) release(x, y int) bool {
	if !t.dragging {
		return false
	}
	t.dragging = false
	if !t.dragMoved && t.onNavigate != nil {
		t.onNavigate(t.active)
	}
	if t.breakpoint == Desktop && !t.Rect().Contains(x, y) {
		t.hovering = false
		t.expanded = false
	}
	if t.redispatchTask != nil {
		t.redispatchTask.Stop()
	}
	t.redispatchTask = t.sched.AfterFunc(TOCRedispatchDelay, func() {
		t.redispatchTask = nil
		if t.onScroll != nil {
			t.onScroll()
		}
	})
	return true
}

// View renders the widget, or "" when hidden.
func (t *TOC) View() string {
	r := t.Rect()
	if r.Empty() {
		return ""
	}
	inner := t.innerWidth()
	bg := lipgloss.NewStyle().Background(t.theme.Surface)
	line := lipgloss.NewStyle().Foreground(t.theme.Overlay).Background(t.theme.Surface)

	rows := make([]string, 0, 2*t.registry.Len()-1)
	for i, d := range t.registry.All() {
		if i > 0 {
			rows = append(rows, bg.Width(inner).Render(line.Render(" │ ")))
		}
		marker := lipgloss.NewStyle().Foreground(t.theme.Muted).Background(t.theme.Surface).Render(" ○ ")
		label := lipgloss.NewStyle().Foreground(t.theme.Subtle).Background(t.theme.Surface)
		if d.ID == t.active {
			glyph := " ● "
			if t.dragging {
				glyph = " ◆ "
			}
			marker = lipgloss.NewStyle().Foreground(t.theme.Iris).Background(t.theme.Surface).Bold(true).Render(glyph)
			label = label.Foreground(t.theme.Iris).Bold(true)
		}
		row := marker
		if t.expanded {
			row += label.Render(string(d.Icon) + " " + d.Label)
		}
		rows = append(rows, bg.Width(inner).Render(row))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.theme.Overlay).
		BorderBackground(t.theme.Surface).
		Render(strings.Join(rows, "\n"))
}

// ToggleView renders the tablet toggle button.
func (t *TOC) ToggleView() string {
	if t.ToggleRect().Empty() {
		return ""
	}
	glyph := " › "
	if t.visible {
		glyph = " ‹ "
	}
	return lipgloss.NewStyle().Foreground(t.theme.Iris).Background(t.theme.Overlay).Render(glyph)
}
