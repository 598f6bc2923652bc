package content

import (
	"fmt"
	"strings"
	"time"
)

// Present is the end-date literal for ongoing roles.
const Present = "present"

var dateLayouts = []string{"2006-01-02", "2006-01", "2006"}

// ParseDate parses YYYY-MM-DD, YYYY-MM or YYYY.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// resolveEnd treats the Present literal as now.
func resolveEnd(s string, now time.Time) (time.Time, error) {
	if strings.EqualFold(strings.TrimSpace(s), Present) {
		return now, nil
	}
	return ParseDate(s)
}

// yearsBetween counts whole years from start to end.
func yearsBetween(start, end time.Time) int {
	years := end.Year() - start.Year()
	if end.Month() < start.Month() || (end.Month() == start.Month() && end.Day() < start.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// monthsBetween counts whole months from start to end.
func monthsBetween(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// Age returns whole years since birthDate; 0 when the date is invalid.
func Age(birthDate string, now time.Time) int {
	t, err := ParseDate(birthDate)
	if err != nil {
		return 0
	}
	return yearsBetween(t, now)
}

// YearsOfExperience returns whole years since firstJobDate.
func YearsOfExperience(firstJobDate string, now time.Time) int {
	return Age(firstJobDate, now)
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// Duration formats the span between two dates as "2 years 3 months",
// "6 months" or "1 year".
func Duration(startDate, endDate string, now time.Time) string {
	start, err := ParseDate(startDate)
	if err != nil {
		return ""
	}
	end, err := resolveEnd(endDate, now)
	if err != nil {
		return ""
	}
	years := yearsBetween(start, end)
	months := monthsBetween(start, end) % 12
	switch {
	case years == 0:
		return plural(months, "month")
	case months == 0:
		return plural(years, "year")
	default:
		return plural(years, "year") + " " + plural(months, "month")
	}
}

// DateRange formats "Jan 2020 - Present" style ranges.
func DateRange(startDate, endDate string) string {
	start, err := ParseDate(startDate)
	if err != nil {
		return ""
	}
	end := "Present"
	if !strings.EqualFold(strings.TrimSpace(endDate), Present) {
		t, err := ParseDate(endDate)
		if err != nil {
			return ""
		}
		end = t.Format("Jan 2006")
	}
	return start.Format("Jan 2006") + " - " + end
}
