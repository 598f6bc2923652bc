package scroll

import (
	"strings"
	"time"

	"github.com/kastheco/folio/log"
	"github.com/kastheco/folio/sched"
	"github.com/kastheco/folio/section"
)

// DeepLinkBackoff is the delay before each retry when the target section is
// not laid out yet.
var DeepLinkBackoff = []time.Duration{
	100 * time.Millisecond,
	200 * time.Millisecond,
	400 * time.Millisecond,
	800 * time.Millisecond,
	1600 * time.Millisecond,
}

// DeepLinkResolver scrolls to the section named by the location fragment on
// mount and then clears the fragment.
type DeepLinkResolver struct {
	registry *section.Registry
	geom     Geometry
	scroller Scroller
	loc      Location
	sched    sched.Scheduler

	// OnResolved is called with the section id after a successful jump.
	OnResolved func(id string)

	attempts int
	pending  sched.Task
	done     bool
}

func NewDeepLinkResolver(r *section.Registry, geom Geometry, scroller Scroller, loc Location, s sched.Scheduler) *DeepLinkResolver {
	return &DeepLinkResolver{registry: r, geom: geom, scroller: scroller, loc: loc, sched: s}
}

// Resolve handles the fragment once. Unknown ids are ignored and the page
// stays at its default position.
func (d *DeepLinkResolver) Resolve() {
	if d.done || d.loc == nil {
		return
	}
	d.done = true
	id := strings.TrimPrefix(d.loc.Fragment(), "#")
	if id == "" {
		return
	}
	if !d.registry.Has(id) {
		log.InfoLog.Printf("deep link %q does not name a section", id)
		return
	}
	d.try(id)
}

// Attempts returns how many retries have been scheduled so far.
func (d *DeepLinkResolver) Attempts() int {
	return d.attempts
}

// Stop cancels a pending retry.
func (d *DeepLinkResolver) Stop() {
	d.done = true
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}

func (d *DeepLinkResolver) try(id string) {
	d.pending = nil
	if d.geom != nil {
		if _, ok := d.geom.Rect(id); ok && d.scroller.ScrollTo(id, false) {
			d.loc.Replace("")
			if d.OnResolved != nil {
				d.OnResolved(id)
			}
			return
		}
	}
	if d.attempts >= len(DeepLinkBackoff) {
		log.InfoLog.Printf("deep link %q abandoned after %d attempts", id, d.attempts)
		return
	}
	delay := DeepLinkBackoff[d.attempts]
	d.attempts++
	d.pending = d.sched.AfterFunc(delay, func() { d.try(id) })
}
