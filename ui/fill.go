package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// FillBackground makes s exactly height lines, each no wider than width, so
// the alt-screen renderer never leaves stale rows behind.
func FillBackground(s string, width, height int) string {
	if height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, l := range lines {
		if width > 0 && ansi.StringWidth(l) > width {
			lines[i] = ansi.Truncate(l, width, "")
		}
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
