package scroll

import "github.com/kastheco/folio/section"

// Entry is one intersection change for an observed section.
type Entry struct {
	ID           string
	Intersecting bool
}

// Observer watches sections and reports intersection changes. The returned
// func detaches the subscription.
type Observer interface {
	Observe(ids []string, fn func([]Entry)) (unsubscribe func())
}

// MidlineObserver treats a section as intersecting when it overlaps a band
// of rows centred on the viewport midpoint. It re-evaluates on Check and
// reports only sections whose state changed, plus every section on the
// first evaluation of a subscription.
type MidlineObserver struct {
	geom   Geometry
	band   int
	nextID int
	subs   map[int]*subscription
	order  []int
}

type subscription struct {
	ids    []string
	fn     func([]Entry)
	state  map[string]bool
	primed bool
}

// NewMidlineObserver returns an observer over geom. band is the number of
// rows on each side of the midline row; 0 watches the midline row only.
func NewMidlineObserver(geom Geometry, band int) *MidlineObserver {
	if band < 0 {
		band = 0
	}
	return &MidlineObserver{geom: geom, band: band, subs: make(map[int]*subscription)}
}

func (o *MidlineObserver) Observe(ids []string, fn func([]Entry)) func() {
	if o.geom == nil {
		return func() {}
	}
	o.nextID++
	id := o.nextID
	sub := &subscription{
		ids:   append([]string(nil), ids...),
		fn:    fn,
		state: make(map[string]bool, len(ids)),
	}
	o.subs[id] = sub
	o.order = append(o.order, id)
	o.evaluate(sub)
	return func() { o.remove(id) }
}

// Check re-evaluates every subscription. Call it after the scroll offset or
// viewport size changes.
func (o *MidlineObserver) Check() {
	if o.geom == nil {
		return
	}
	for _, id := range append([]int(nil), o.order...) {
		if sub, ok := o.subs[id]; ok {
			o.evaluate(sub)
		}
	}
}

// Disconnect drops every subscription.
func (o *MidlineObserver) Disconnect() {
	o.subs = make(map[int]*subscription)
	o.order = nil
}

func (o *MidlineObserver) remove(id int) {
	delete(o.subs, id)
	for i, v := range o.order {
		if v == id {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
}

func (o *MidlineObserver) evaluate(sub *subscription) {
	vh := o.geom.ViewportHeight()
	var entries []Entry
	for _, id := range sub.ids {
		r, ok := o.geom.Rect(id)
		in := ok && o.intersects(r, vh)
		if sub.primed && sub.state[id] == in {
			continue
		}
		sub.state[id] = in
		entries = append(entries, Entry{ID: id, Intersecting: in})
	}
	sub.primed = true
	if len(entries) > 0 {
		sub.fn(entries)
	}
}

func (o *MidlineObserver) intersects(r section.Rect, vh int) bool {
	if vh <= 0 || r.Height() <= 0 {
		return false
	}
	mid := vh / 2
	lo, hi := mid-o.band, mid+o.band+1
	return r.Top < hi && r.Bottom > lo
}
