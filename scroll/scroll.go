// Package scroll keeps the active section, snapping and deep links consistent
// with a single scrollable container.
package scroll

import "github.com/kastheco/folio/section"

// Geometry exposes the container's layout. Rect reports false for a section
// that is not laid out yet.
type Geometry interface {
	Rect(id string) (section.Rect, bool)
	ViewportHeight() int
}

// Scroller moves the container so the section's top edge meets the viewport
// top. Smooth scrolls are fire-and-forget. It reports false when the section
// cannot be found.
type Scroller interface {
	ScrollTo(id string, smooth bool) bool
}

// Location is the address the page was opened with.
type Location interface {
	Fragment() string
	// Replace swaps the current fragment without recording history.
	Replace(fragment string)
}

// Measure computes the visible-area percentage of every section in ids.
// Sections without a layout are 0%.
func Measure(geom Geometry, ids []string) section.VisibilityMap {
	vm := make(section.VisibilityMap, len(ids))
	vh := geom.ViewportHeight()
	for _, id := range ids {
		r, ok := geom.Rect(id)
		if !ok {
			vm[id] = 0
			continue
		}
		vm[id] = section.Visibility(r, vh)
	}
	return vm
}

// mostVisible returns the id with the highest percentage. Ties keep the
// earlier section; all-zero maps return "".
func mostVisible(vm section.VisibilityMap, ids []string) string {
	best, top := "", 0.0
	for _, id := range ids {
		if v := vm[id]; v > top {
			best, top = id, v
		}
	}
	return best
}
