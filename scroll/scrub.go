package scroll

import "math"

// ScrubOffset maps a pointer drag of dy rows along a track of trackHeight
// rows onto the container, starting from start. The result is clamped to
// [0, scrollable].
func ScrubOffset(start, dy, scrollable, trackHeight int) int {
	if scrollable <= 0 {
		return 0
	}
	offset := float64(start)
	if trackHeight > 0 {
		offset += float64(dy) * float64(scrollable) / float64(trackHeight)
	}
	return int(math.Round(min(max(offset, 0), float64(scrollable))))
}
