package ui

import (
	"io"

	"github.com/muesli/termenv"
)

// TerminalBackground repaints the terminal's default background so cells
// without an explicit background use the theme base colour.
type TerminalBackground struct {
	out *termenv.Output
	// prev is the background the terminal reported before the first Set, or
	// NoColor when it could not be queried.
	prev termenv.Color
}

// NewTerminalBackground queries the current background of w. Call it before
// the program starts reading input: the query reads the terminal's reply.
func NewTerminalBackground(w io.Writer) *TerminalBackground {
	out := termenv.NewOutput(w)
	return &TerminalBackground{out: out, prev: out.BackgroundColor()}
}

// Set emits OSC 11 with the theme base colour.
func (b *TerminalBackground) Set(theme Theme) {
	if theme.Base == "" {
		return
	}
	b.out.SetBackgroundColor(termenv.RGBColor(theme.Base))
}

// Restore puts back the queried background, or asks the terminal to reset
// its default with OSC 111 when none was known.
func (b *TerminalBackground) Restore() {
	if c, ok := b.prev.(termenv.RGBColor); ok {
		b.out.SetBackgroundColor(c)
		return
	}
	_, _ = b.out.WriteString(termenv.OSC + "111" + termenv.ST)
}
