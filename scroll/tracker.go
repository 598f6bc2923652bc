package scroll

import "github.com/kastheco/folio/section"

// VisibilityTracker feeds observer reports into the active section state.
type VisibilityTracker struct {
	active      *section.Active
	onChange    func(id string)
	unsubscribe func()

	// order and inBand mirror the observer: which targets currently cross
	// the midline band, in page order.
	order  []string
	inBand map[string]bool
}

// NewVisibilityTracker returns a tracker that updates active and calls
// onChange (which may be nil) once per real change.
func NewVisibilityTracker(active *section.Active, onChange func(id string)) *VisibilityTracker {
	return &VisibilityTracker{active: active, onChange: onChange}
}

// Start subscribes to obs. A nil observer means the container is not mounted
// yet and nothing is observed.
func (t *VisibilityTracker) Start(obs Observer, ids []string) {
	t.Stop()
	t.order = append(t.order[:0], ids...)
	t.inBand = make(map[string]bool, len(ids))
	if obs == nil {
		return
	}
	t.unsubscribe = obs.Observe(ids, t.report)
}

// Stop detaches from the observer.
func (t *VisibilityTracker) Stop() {
	if t.unsubscribe != nil {
		t.unsubscribe()
		t.unsubscribe = nil
	}
}

// Last intersecting entry wins. When a batch only carries leaving entries
// and the active section is no longer in the band, the in-band section
// nearest to it in page order takes over. Repeats are absorbed by
// Active.Set.
func (t *VisibilityTracker) report(entries []Entry) {
	next := ""
	for _, e := range entries {
		if t.inBand != nil {
			t.inBand[e.ID] = e.Intersecting
		}
		if e.Intersecting && t.active.Has(e.ID) {
			next = e.ID
		}
	}
	if next == "" {
		next = t.fallback()
	}
	if next == "" {
		return
	}
	if t.active.Set(next) && t.onChange != nil {
		t.onChange(next)
	}
}

// fallback returns the in-band section closest to the current one, or ""
// when the current section is still in the band or nothing is.
func (t *VisibilityTracker) fallback() string {
	cur := t.active.Current()
	if t.inBand[cur] {
		return ""
	}
	at := -1
	for i, id := range t.order {
		if id == cur {
			at = i
			break
		}
	}
	best, dist := "", -1
	for i, id := range t.order {
		if !t.inBand[id] || !t.active.Has(id) {
			continue
		}
		d := i - at
		if d < 0 {
			d = -d
		}
		if dist < 0 || d < dist {
			best, dist = id, d
		}
	}
	return best
}
