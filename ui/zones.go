package ui

// Zone ID constants for bubblezone hit detection.
// These are used both in render paths (zone.Mark) and input paths (zone.Get().InBounds).
const (
	ZoneLogo        = "zone-logo"
	ZoneThemeToggle = "zone-theme-toggle"
	ZoneMenuButton  = "zone-menu-button"
	ZoneDownloadCV  = "zone-download-cv"
)

// NavItemZoneID returns the zone ID for a header navigation link.
func NavItemZoneID(sectionID string) string {
	return "zone-nav-" + sectionID
}
