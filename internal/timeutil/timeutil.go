package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBack returns the calendar date n days before t, formatted in loc.
// A nil loc keeps t's own location.
func DaysBack(t time.Time, n int, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return FormatDate(t.AddDate(0, 0, -n))
}

// ResolveLocation returns a location for name, falling back to UTC when name is empty or unknown.
func ResolveLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
