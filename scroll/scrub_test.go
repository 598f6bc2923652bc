package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrubOffset(t *testing.T) {
	tests := []struct {
		name                         string
		start, dy, scrollable, track int
		want                         int
	}{
		{"proportional", 10, 5, 200, 20, 60},
		{"upward", 100, -4, 200, 20, 60},
		{"clamped to bottom", 150, 10, 200, 20, 200},
		{"clamped to top", 20, -10, 200, 20, 0},
		{"rounds to nearest row", 0, 1, 10, 3, 3},
		{"zero track leaves offset", 30, 5, 200, 0, 30},
		{"nothing to scroll", 0, 5, 0, 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScrubOffset(tt.start, tt.dy, tt.scrollable, tt.track))
		})
	}
}
