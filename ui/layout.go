package ui

// Breakpoint classifies the terminal width.
type Breakpoint int

const (
	Mobile Breakpoint = iota
	Tablet
	Desktop
)

// Column widths at which the layout changes.
const (
	MobileMaxWidth = 80
	TabletMaxWidth = 120
)

// BreakpointFor returns the breakpoint for a terminal width.
func BreakpointFor(width int) Breakpoint {
	switch {
	case width <= MobileMaxWidth:
		return Mobile
	case width <= TabletMaxWidth:
		return Tablet
	default:
		return Desktop
	}
}

func (b Breakpoint) String() string {
	switch b {
	case Mobile:
		return "mobile"
	case Tablet:
		return "tablet"
	default:
		return "desktop"
	}
}

// Rect is a screen area in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }
