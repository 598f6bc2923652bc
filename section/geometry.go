package section

// Rect is a section's vertical extent relative to the top of the viewport.
// Top may be negative when the section starts above the viewport.
type Rect struct {
	Top    int
	Bottom int
}

func (r Rect) Height() int { return r.Bottom - r.Top }

// VisibilityMap maps a section id to its visible-area percentage (0-100).
// One is built per settled scroll and then discarded.
type VisibilityMap map[string]float64

// Visibility returns how much of r is on screen, as a percentage of the
// section height clamped to the viewport height. A section taller than the
// viewport that fills the screen is 100% visible.
func Visibility(r Rect, viewportHeight int) float64 {
	height := r.Height()
	if height > viewportHeight {
		height = viewportHeight
	}
	if height <= 0 || viewportHeight <= 0 {
		return 0
	}
	visible := min(viewportHeight, r.Bottom) - max(0, r.Top)
	if visible < 0 {
		visible = 0
	}
	if visible > height {
		visible = height
	}
	return float64(visible) / float64(height) * 100
}
