package normalize

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Raw is one upstream event decoded without a schema.
type Raw = map[string]any

// lookup walks a dot-separated path through nested objects.
func lookup(raw Raw, path string) (any, bool) {
	var cur any = raw
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[part]
		if !ok {
			return nil, false
		}
	}
	if cur == nil {
		return nil, false
	}
	return cur, true
}

// firstString returns the first non-empty string found at any of the paths.
func firstString(raw Raw, paths []string) string {
	for _, p := range paths {
		v, ok := lookup(raw, p)
		if !ok {
			continue
		}
		var s string
		switch val := v.(type) {
		case string:
			s = val
		case json.Number:
			s = val.String()
		case float64:
			s = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			s = strconv.FormatBool(val)
		default:
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return ""
}

// firstInt returns the first integer found at any of the paths. Scores arrive as numbers,
// numeric strings, empty strings or null; anything unparseable is treated as missing.
func firstInt(raw Raw, paths []string) *int {
	for _, p := range paths {
		v, ok := lookup(raw, p)
		if !ok {
			continue
		}
		switch val := v.(type) {
		case json.Number:
			if n, err := val.Int64(); err == nil {
				i := int(n)
				return &i
			}
			if f, err := val.Float64(); err == nil {
				i := int(f)
				return &i
			}
		case float64:
			i := int(val)
			return &i
		case string:
			s := strings.TrimSpace(val)
			if s == "" {
				continue
			}
			if n, err := strconv.Atoi(s); err == nil {
				return &n
			}
		}
	}
	return nil
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// parseTimestamp accepts full timestamps; timestamps without a zone are taken as UTC.
func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// parseDateTime combines a YYYY-MM-DD date with an optional HH:MM[:SS] time (UTC).
func parseDateTime(date, clock string) (time.Time, bool) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Time{}, false
	}
	if len(date) > 10 {
		return parseTimestamp(date)
	}
	clock = strings.TrimSpace(clock)
	if clock != "" {
		for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02 15:04"} {
			if t, err := time.Parse(layout, date+" "+clock); err == nil {
				return t.UTC(), true
			}
		}
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

func syntheticID(parts ...string) string {
	return strings.ToLower(strings.Join(parts, ":"))
}

func prefixed(source, id string) string {
	if id == "" {
		return ""
	}
	return fmt.Sprintf("%s-%s", source, id)
}
