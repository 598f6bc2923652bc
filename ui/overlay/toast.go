package overlay

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/kastheco/folio/ui"
)

// ToastKind identifies what a toast reports.
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastSuccess
	ToastError
	ToastLoading
)

// phase is where a toast is in its slide-in, hold, slide-out cycle.
type phase int

const (
	phaseIn phase = iota
	phaseHold
	phaseOut
	phaseGone
)

const (
	SlideInDuration  = 300 * time.Millisecond
	SlideOutDuration = 200 * time.Millisecond

	InfoDismissAfter    = 3 * time.Second
	SuccessDismissAfter = 3 * time.Second
	ErrorDismissAfter   = 5 * time.Second

	MinToastWidth = 24
	MaxToastWidth = 56
	MaxToasts     = 4
)

// ToastTickMsg drives toast animation while any toast is alive.
type ToastTickMsg struct{}

type toast struct {
	id      string
	kind    ToastKind
	message string
	phase   phase
	since   time.Time
	hold    time.Duration // 0 holds until resolved
	width   int
}

func holdFor(kind ToastKind) time.Duration {
	switch kind {
	case ToastError:
		return ErrorDismissAfter
	case ToastSuccess:
		return SuccessDismissAfter
	case ToastLoading:
		return 0
	default:
		return InfoDismissAfter
	}
}

// toastWidth is icon + space + message + padding + border.
func toastWidth(msg string) int {
	w := 2 + 1 + runewidth.StringWidth(msg) + 4
	return min(max(w, MinToastWidth), MaxToastWidth)
}

// ToastManager stacks transient notifications in the top-right corner.
type ToastManager struct {
	toasts  []*toast
	spinner *spinner.Model
	theme   ui.Theme
	now     func() time.Time
	seq     uint64
}

// NewToastManager creates a manager that draws loading toasts with s.
func NewToastManager(s *spinner.Model, theme ui.Theme) *ToastManager {
	return &ToastManager{spinner: s, theme: theme, now: time.Now}
}

// SetClock replaces the time source.
func (tm *ToastManager) SetClock(now func() time.Time) { tm.now = now }

func (tm *ToastManager) SetTheme(theme ui.Theme) { tm.theme = theme }

func (tm *ToastManager) Info(msg string) string    { return tm.add(ToastInfo, msg) }
func (tm *ToastManager) Success(msg string) string { return tm.add(ToastSuccess, msg) }
func (tm *ToastManager) Error(msg string) string   { return tm.add(ToastError, msg) }

// Loading shows a toast that stays until Resolve is called with its id.
func (tm *ToastManager) Loading(msg string) string { return tm.add(ToastLoading, msg) }

// Resolve turns the toast with id into a kind toast with msg and starts its
// dismissal timer. Unknown ids are ignored.
func (tm *ToastManager) Resolve(id string, kind ToastKind, msg string) {
	for _, t := range tm.toasts {
		if t.id != id {
			continue
		}
		t.kind, t.message, t.width = kind, msg, toastWidth(msg)
		t.phase, t.since, t.hold = phaseHold, tm.now(), holdFor(kind)
		return
	}
}

// Active reports whether any toast still needs ticking.
func (tm *ToastManager) Active() bool {
	for _, t := range tm.toasts {
		if t.phase != phaseGone {
			return true
		}
	}
	return false
}

// Len returns the number of live toasts.
func (tm *ToastManager) Len() int { return len(tm.toasts) }

func (tm *ToastManager) add(kind ToastKind, msg string) string {
	now := tm.now()
	// Repeating a visible toast restarts its timer.
	for _, t := range tm.toasts {
		if t.kind == kind && t.message == msg && (t.phase == phaseIn || t.phase == phaseHold) {
			if t.phase == phaseHold {
				t.since = now
			}
			return t.id
		}
	}

	tm.seq++
	t := &toast{
		id:      fmt.Sprintf("toast-%d", tm.seq),
		kind:    kind,
		message: msg,
		phase:   phaseIn,
		since:   now,
		hold:    holdFor(kind),
		width:   toastWidth(msg),
	}
	tm.evict()
	tm.toasts = append(tm.toasts, t)
	return t.id
}

// evict drops the oldest toasts, loading ones last, to make room for one
// more.
func (tm *ToastManager) evict() {
	for len(tm.toasts) >= MaxToasts {
		victim := 0
		for i, t := range tm.toasts {
			if t.kind != ToastLoading {
				victim = i
				break
			}
		}
		tm.toasts = append(tm.toasts[:victim], tm.toasts[victim+1:]...)
	}
}

// Tick advances every toast's phase and forgets finished ones.
func (tm *ToastManager) Tick() {
	now := tm.now()
	alive := tm.toasts[:0]
	for _, t := range tm.toasts {
		elapsed := now.Sub(t.since)
		switch t.phase {
		case phaseIn:
			if elapsed >= SlideInDuration {
				t.phase, t.since = phaseHold, now
			}
		case phaseHold:
			if t.hold > 0 && elapsed >= t.hold {
				t.phase, t.since = phaseOut, now
			}
		case phaseOut:
			if elapsed >= SlideOutDuration {
				t.phase = phaseGone
			}
		}
		if t.phase != phaseGone {
			alive = append(alive, t)
		}
	}
	tm.toasts = alive
}

func (tm *ToastManager) color(kind ToastKind) lipgloss.Color {
	switch kind {
	case ToastError:
		return tm.theme.Love
	case ToastLoading:
		return tm.theme.Gold
	case ToastSuccess:
		return tm.theme.Pine
	default:
		return tm.theme.Foam
	}
}

func (tm *ToastManager) icon(kind ToastKind) string {
	switch kind {
	case ToastSuccess:
		return "✓"
	case ToastError:
		return "✗"
	case ToastLoading:
		if tm.spinner != nil {
			return tm.spinner.View()
		}
		return "…"
	default:
		return "▸"
	}
}

// offset is how far right of its resting place t is drawn.
func (tm *ToastManager) offset(t *toast) int {
	full := float64(t.width + 2)
	elapsed := float64(tm.now().Sub(t.since))
	switch t.phase {
	case phaseIn:
		p := min(elapsed/float64(SlideInDuration), 1)
		p = 1 - (1-p)*(1-p)
		return int(full * (1 - p))
	case phaseOut:
		p := min(elapsed/float64(SlideOutDuration), 1)
		return int(full * p * p)
	}
	return 0
}

func (tm *ToastManager) render(t *toast) string {
	c := tm.color(t.kind)
	icon := lipgloss.NewStyle().Foreground(c).Background(tm.theme.Surface).Render(tm.icon(t.kind))
	body := lipgloss.NewStyle().Foreground(tm.theme.Text).Background(tm.theme.Surface).Render(" " + t.message)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c).
		BorderBackground(tm.theme.Surface).
		Background(tm.theme.Surface).
		Padding(0, 1).
		Width(t.width - 2).
		Render(icon + body)
}

// View renders the toast stack right-aligned, or "" when empty.
func (tm *ToastManager) View() string {
	var rows []string
	for _, t := range tm.toasts {
		if t.phase == phaseGone {
			continue
		}
		rows = append(rows, tm.render(t))
	}
	if len(rows) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Right, rows...)
}

// Overlay draws the stack onto bg, a width-wide screen, one row below the
// top.
func (tm *ToastManager) Overlay(bg string, width int) string {
	view := tm.View()
	if view == "" {
		return bg
	}
	widest, slide := 0, 0
	for _, t := range tm.toasts {
		widest = max(widest, t.width)
		slide = max(slide, tm.offset(t))
	}
	return PlaceOverlay(max(0, width-widest-2+slide), 1, view, bg)
}
