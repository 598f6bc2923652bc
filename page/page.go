// Package page is the single scrollable document that holds every section.
package page

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/kastheco/folio/content"
	"github.com/kastheco/folio/section"
	"github.com/kastheco/folio/ui"
)

const (
	fps = 60
	// Spring tuning for smooth scrolls: quick, no overshoot.
	springFrequency = 7.0
	springDamping   = 1.0
)

// FrameMsg advances a running scroll animation by one frame.
type FrameMsg struct{}

// Frame schedules the next animation frame.
func Frame() tea.Cmd {
	return tea.Tick(time.Second/fps, func(time.Time) tea.Msg { return FrameMsg{} })
}

// Page lays the registry's sections out one after another, each at least one
// viewport tall, and owns the scroll offset.
type Page struct {
	registry *section.Registry
	data     *content.Data
	theme    ui.Theme
	now      func() time.Time

	width  int
	height int

	hero  string
	cache map[string][]string

	lines   []string
	tops    map[string]int
	heights map[string]int
	offset  int
	vp      viewport.Model

	spring    harmonica.Spring
	pos, vel  float64
	target    int
	animating bool
}

func New(registry *section.Registry, data *content.Data, theme ui.Theme) *Page {
	p := &Page{
		registry: registry,
		data:     data,
		theme:    theme,
		now:      time.Now,
		cache:    make(map[string][]string),
		tops:     make(map[string]int),
		heights:  make(map[string]int),
		vp:       viewport.New(0, 0),
		spring:   harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
	}
	return p
}

// SetClock overrides the clock used for ages and durations.
func (p *Page) SetClock(now func() time.Time) {
	p.now = now
	p.invalidate()
}

// SetSize resizes the viewport and lays the document out again.
func (p *Page) SetSize(width, height int) {
	if width == p.width && height == p.height {
		return
	}
	p.width, p.height = width, height
	p.vp.Width, p.vp.Height = width, height
	p.invalidate()
}

// SetTheme re-renders every section with theme.
func (p *Page) SetTheme(theme ui.Theme) {
	p.theme = theme
	p.invalidate()
}

// SetHero replaces the hero title text. Only the home section is re-rendered.
func (p *Page) SetHero(text string) {
	if text == p.hero {
		return
	}
	p.hero = text
	delete(p.cache, section.Home)
	p.layout()
}

func (p *Page) invalidate() {
	p.cache = make(map[string][]string)
	p.layout()
}

// LaidOut reports whether the page has a size and sections to show.
func (p *Page) LaidOut() bool {
	return p.width > 0 && p.height > 0 && len(p.lines) > 0
}

func (p *Page) layout() {
	p.lines = p.lines[:0]
	p.tops = make(map[string]int, p.registry.Len())
	p.heights = make(map[string]int, p.registry.Len())
	if p.width <= 0 || p.height <= 0 {
		p.offset = 0
		return
	}
	for _, id := range p.registry.IDs() {
		body, ok := p.cache[id]
		if !ok {
			body = strings.Split(p.renderSection(id), "\n")
			p.cache[id] = body
		}
		p.tops[id] = len(p.lines)
		p.lines = append(p.lines, body...)
		for i := len(body); i < p.height; i++ {
			p.lines = append(p.lines, "")
		}
		p.heights[id] = len(p.lines) - p.tops[id]
	}
	p.vp.SetContent(strings.Join(p.lines, "\n"))
	p.target = p.clamp(p.target)
	p.setOffset(p.offset)
}

// Rect implements scroll.Geometry.
func (p *Page) Rect(id string) (section.Rect, bool) {
	top, ok := p.tops[id]
	if !ok {
		return section.Rect{}, false
	}
	return section.Rect{Top: top - p.offset, Bottom: top + p.heights[id] - p.offset}, true
}

// ViewportHeight implements scroll.Geometry.
func (p *Page) ViewportHeight() int { return p.height }

func (p *Page) Width() int { return p.width }

// Offset is the index of the first document row on screen.
func (p *Page) Offset() int { return p.offset }

// ContentHeight is the number of document rows.
func (p *Page) ContentHeight() int { return len(p.lines) }

// Scrollable is the largest valid offset.
func (p *Page) Scrollable() int {
	return max(0, len(p.lines)-p.height)
}

// SectionTop returns the document row where id starts.
func (p *Page) SectionTop(id string) (int, bool) {
	top, ok := p.tops[id]
	return top, ok
}

// ScrollBy moves the offset by delta rows and cancels any animation. It
// reports whether the offset changed.
func (p *Page) ScrollBy(delta int) bool {
	return p.ScrollToOffset(p.offset + delta)
}

// ScrollToOffset jumps to offset, clamped to [0, Scrollable()].
func (p *Page) ScrollToOffset(offset int) bool {
	p.animating = false
	return p.setOffset(offset)
}

// ScrollTo implements scroll.Scroller: aligns the section's top with the
// viewport top, animated when smooth is set.
func (p *Page) ScrollTo(id string, smooth bool) bool {
	top, ok := p.tops[id]
	if !ok {
		return false
	}
	if !smooth {
		p.ScrollToOffset(top)
		return true
	}
	p.AnimateTo(top)
	return true
}

// AnimateTo starts (or retargets) a spring animation toward offset.
func (p *Page) AnimateTo(offset int) {
	p.target = p.clamp(offset)
	if !p.animating {
		p.pos = float64(p.offset)
		p.vel = 0
	}
	p.animating = p.target != p.offset
}

// Animating reports whether a smooth scroll is in flight.
func (p *Page) Animating() bool { return p.animating }

// Step advances the animation one frame and reports whether the offset
// moved.
func (p *Page) Step() bool {
	if !p.animating {
		return false
	}
	p.pos, p.vel = p.spring.Update(p.pos, p.vel, float64(p.target))
	if math.Abs(p.pos-float64(p.target)) < 0.5 && math.Abs(p.vel) < 0.5 {
		p.animating = false
		return p.setOffset(p.target)
	}
	return p.setOffset(int(math.Round(p.pos)))
}

func (p *Page) clamp(offset int) int {
	return min(max(offset, 0), p.Scrollable())
}

func (p *Page) setOffset(offset int) bool {
	offset = p.clamp(offset)
	changed := offset != p.offset
	p.offset = offset
	p.vp.SetYOffset(offset)
	return changed
}

// View renders the visible rows.
func (p *Page) View() string {
	if !p.LaidOut() {
		return ""
	}
	return p.vp.View()
}
