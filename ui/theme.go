package ui

import "github.com/charmbracelet/lipgloss"

// Mode is the persisted colour scheme.
type Mode string

const (
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// ParseMode accepts "dark" or "light".
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeDark, ModeLight:
		return Mode(s), true
	}
	return "", false
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeLight {
		return ModeDark
	}
	return ModeLight
}

// Theme is the token set for one mode.
type Theme struct {
	Mode Mode

	// Base tones
	Base    lipgloss.Color
	Surface lipgloss.Color
	Overlay lipgloss.Color
	Muted   lipgloss.Color
	Subtle  lipgloss.Color
	Text    lipgloss.Color

	// Semantic colors
	Love lipgloss.Color // error, danger
	Gold lipgloss.Color // warning
	Rose lipgloss.Color // accent, secondary
	Pine lipgloss.Color // link
	Foam lipgloss.Color // info
	Iris lipgloss.Color // highlight, primary

	// GlamourStyle is the glamour standard style matching the mode.
	GlamourStyle string
}

// Rosé Pine Moon and Dawn palettes
// https://rosepinetheme.com/palette/
var (
	Moon = Theme{
		Mode:         ModeDark,
		Base:         lipgloss.Color("#232136"),
		Surface:      lipgloss.Color("#2a273f"),
		Overlay:      lipgloss.Color("#393552"),
		Muted:        lipgloss.Color("#6e6a86"),
		Subtle:       lipgloss.Color("#908caa"),
		Text:         lipgloss.Color("#e0def4"),
		Love:         lipgloss.Color("#eb6f92"),
		Gold:         lipgloss.Color("#f6c177"),
		Rose:         lipgloss.Color("#ea9a97"),
		Pine:         lipgloss.Color("#3e8fb0"),
		Foam:         lipgloss.Color("#9ccfd8"),
		Iris:         lipgloss.Color("#c4a7e7"),
		GlamourStyle: "dark",
	}

	Dawn = Theme{
		Mode:         ModeLight,
		Base:         lipgloss.Color("#faf4ed"),
		Surface:      lipgloss.Color("#fffaf3"),
		Overlay:      lipgloss.Color("#f2e9e1"),
		Muted:        lipgloss.Color("#9893a5"),
		Subtle:       lipgloss.Color("#797593"),
		Text:         lipgloss.Color("#575279"),
		Love:         lipgloss.Color("#b4637a"),
		Gold:         lipgloss.Color("#ea9d34"),
		Rose:         lipgloss.Color("#d7827e"),
		Pine:         lipgloss.Color("#286983"),
		Foam:         lipgloss.Color("#56949f"),
		Iris:         lipgloss.Color("#907aa9"),
		GlamourStyle: "light",
	}
)

// ThemeFor returns the palette for mode, defaulting to dark.
func ThemeFor(mode Mode) Theme {
	if mode == ModeLight {
		return Dawn
	}
	return Moon
}
