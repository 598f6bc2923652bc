package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// PlaceOverlay draws fg on top of bg with its top-left corner at (x, y).
// Cells of bg outside fg's bounding box are kept, styling included. fg is
// clipped at the right and bottom edges of bg.
func PlaceOverlay(x, y int, fg, bg string) string {
	if fg == "" {
		return bg
	}
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")

	bgW := 0
	for _, l := range bgLines {
		bgW = max(bgW, ansi.StringWidth(l))
	}
	fgW := 0
	for _, l := range fgLines {
		fgW = max(fgW, ansi.StringWidth(l))
	}
	x = max(0, min(x, bgW))
	y = max(0, y)
	fgW = min(fgW, bgW-x)
	if fgW <= 0 {
		return bg
	}

	for i, fl := range fgLines {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		bl := bgLines[row]
		if n := ansi.StringWidth(bl); n < x {
			bl += strings.Repeat(" ", x-n)
		}
		if n := ansi.StringWidth(fl); n < fgW {
			fl += strings.Repeat(" ", fgW-n)
		} else if n > fgW {
			fl = ansi.Truncate(fl, fgW, "")
		}
		left := ansi.Cut(bl, 0, x)
		right := ansi.Cut(bl, x+fgW, max(bgW, x+fgW))
		bgLines[row] = left + "\x1b[0m" + fl + "\x1b[0m" + right
	}
	return strings.Join(bgLines, "\n")
}

// Center draws fg in the middle of a width x height bg.
func Center(fg, bg string, width, height int) string {
	fgW, fgH := 0, 0
	for _, l := range strings.Split(fg, "\n") {
		fgW = max(fgW, ansi.StringWidth(l))
		fgH++
	}
	return PlaceOverlay(max(0, (width-fgW)/2), max(0, (height-fgH)/2), fg, bg)
}

// TopRight draws fg against the right edge of bg, margin cells in from the
// edge and row y from the top.
func TopRight(fg, bg string, width, y, margin int) string {
	fgW := 0
	for _, l := range strings.Split(fg, "\n") {
		fgW = max(fgW, ansi.StringWidth(l))
	}
	return PlaceOverlay(max(0, width-fgW-margin), y, fg, bg)
}
