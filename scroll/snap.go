package scroll

import (
	"time"

	"github.com/kastheco/folio/log"
	"github.com/kastheco/folio/sched"
	"github.com/kastheco/folio/section"
)

const (
	// SnapDebounce is how long scrolling must be quiet before a snap decision.
	SnapDebounce = 150 * time.Millisecond
	// SnapThreshold is the visible percentage below which the current
	// section gives way to the most visible one.
	SnapThreshold = 50.0
)

// SnapOptions gate the controller.
type SnapOptions struct {
	// Enabled reports the user's scroll-snap preference. nil means enabled.
	Enabled func() bool
	// Mobile reports whether the viewport is below the mobile breakpoint.
	Mobile func() bool
	// DisableOnMobile turns snapping off entirely when Mobile is true.
	DisableOnMobile bool
}

// SnapController snaps the container to the most visible section once
// scrolling settles and the tracked section has dropped below
// SnapThreshold. It never touches the active section state.
type SnapController struct {
	ids      []string
	geom     Geometry
	scroller Scroller
	sched    sched.Scheduler
	opts     SnapOptions

	current string
	pending sched.Task
	stopped bool
	last    section.VisibilityMap
}

func NewSnapController(ids []string, geom Geometry, scroller Scroller, s sched.Scheduler, opts SnapOptions) *SnapController {
	return &SnapController{
		ids:      append([]string(nil), ids...),
		geom:     geom,
		scroller: scroller,
		sched:    s,
		opts:     opts,
	}
}

// Start runs the initial settle check.
func (c *SnapController) Start() {
	c.OnScroll()
}

// OnScroll restarts the debounce window.
func (c *SnapController) OnScroll() {
	if c.stopped || c.geom == nil {
		return
	}
	if c.opts.DisableOnMobile && c.opts.Mobile != nil && c.opts.Mobile() {
		return
	}
	if c.pending != nil {
		c.pending.Stop()
	}
	c.pending = c.sched.AfterFunc(SnapDebounce, c.settle)
}

// Current returns the section the controller is tracking, "" before the
// first settle.
func (c *SnapController) Current() string {
	return c.current
}

// LastMeasure returns the visibility map of the most recent settle.
func (c *SnapController) LastMeasure() section.VisibilityMap {
	return c.last
}

// Stop cancels a pending settle. Later scroll events are ignored.
func (c *SnapController) Stop() {
	c.stopped = true
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

func (c *SnapController) settle() {
	c.pending = nil
	if c.stopped {
		return
	}
	if c.opts.Enabled != nil && !c.opts.Enabled() {
		return
	}

	vm := Measure(c.geom, c.ids)
	c.last = vm
	candidate := mostVisible(vm, c.ids)

	if c.current == "" || candidate == "" {
		c.current = candidate
		return
	}

	visible := vm[c.current]
	switch {
	case visible < SnapThreshold && candidate != c.current:
		if c.scroller.ScrollTo(candidate, true) {
			// Adopt before the animation ends so its scroll events do not
			// trigger another snap.
			c.current = candidate
		} else {
			log.WarningLog.Printf("snap target %q vanished", candidate)
		}
	case visible >= SnapThreshold:
		c.current = candidate
	}
}
