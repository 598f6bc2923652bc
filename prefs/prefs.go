package prefs

import (
	"errors"
	"strconv"

	"github.com/kastheco/folio/log"
)

// Keys under which the preferences are stored.
const (
	KeyTheme      = "theme"
	KeyScrollSnap = "scrollSnapEnabled"
)

// Theme values.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Defaults applied when a value is missing or unreadable.
const (
	DefaultTheme             = ThemeDark
	DefaultScrollSnapEnabled = true
)

// Preferences is the in-memory view of the stored preferences. Every setter
// writes through to the store.
type Preferences struct {
	store      Store
	theme      string
	scrollSnap bool
}

// Load reads both preferences from store. Missing, unreadable or corrupt
// values fall back to the defaults; Load never fails.
func Load(store Store) *Preferences {
	p := &Preferences{store: store, theme: DefaultTheme, scrollSnap: DefaultScrollSnapEnabled}
	if store == nil {
		return p
	}

	if v, err := store.Get(KeyTheme); err == nil {
		if v == ThemeDark || v == ThemeLight {
			p.theme = v
		} else {
			log.WarningLog.Printf("ignoring invalid theme preference %q", v)
		}
	} else if !errors.Is(err, ErrNotFound) {
		log.WarningLog.Printf("could not read theme preference: %v", err)
	}

	if v, err := store.Get(KeyScrollSnap); err == nil {
		if b, perr := strconv.ParseBool(v); perr == nil {
			p.scrollSnap = b
		} else {
			log.WarningLog.Printf("ignoring invalid scroll snap preference %q", v)
		}
	} else if !errors.Is(err, ErrNotFound) {
		log.WarningLog.Printf("could not read scroll snap preference: %v", err)
	}
	return p
}

func (p *Preferences) Theme() string { return p.theme }

func (p *Preferences) ScrollSnapEnabled() bool { return p.scrollSnap }

// SetTheme stores theme, which must be "dark" or "light". The in-memory
// value changes even when the write fails.
func (p *Preferences) SetTheme(theme string) error {
	if theme != ThemeDark && theme != ThemeLight {
		return errors.New("theme must be dark or light")
	}
	p.theme = theme
	return p.write(KeyTheme, theme)
}

// ToggleTheme flips between dark and light and returns the new theme.
func (p *Preferences) ToggleTheme() (string, error) {
	next := ThemeLight
	if p.theme == ThemeLight {
		next = ThemeDark
	}
	return next, p.SetTheme(next)
}

func (p *Preferences) SetScrollSnapEnabled(enabled bool) error {
	p.scrollSnap = enabled
	return p.write(KeyScrollSnap, strconv.FormatBool(enabled))
}

// ToggleScrollSnap flips scroll snapping and returns the new value.
func (p *Preferences) ToggleScrollSnap() (bool, error) {
	next := !p.scrollSnap
	return next, p.SetScrollSnapEnabled(next)
}

func (p *Preferences) write(key, value string) error {
	if p.store == nil {
		return nil
	}
	return p.store.Set(key, value)
}
