// Package cli holds parsing helpers shared by command flags.
package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Matches: "2h ago", "30m ago", "1d ago", "2w ago", "1mo ago"
var relativeAgoRegex = regexp.MustCompile(`^(\d+)\s*(mo|w|d|h|m)\s+ago$`)

var absoluteLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", time.DateOnly}

// ParseDate parses a date flag value. Besides YYYY-MM-DD and RFC 3339 it
// accepts "today", "yesterday", a weekday name for its most recent
// occurrence (today included) and "<n><unit> ago" with units m, h, d, w
// and mo. Dates without a zone are read in now's location.
func ParseDate(s string, now time.Time) (time.Time, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	input := strings.ToLower(raw)

	switch input {
	case "today":
		return startOfDay(now), nil
	case "yesterday":
		return startOfDay(now).AddDate(0, 0, -1), nil
	}
	if weekday, ok := weekdays[strings.TrimPrefix(input, "last ")]; ok {
		base := startOfDay(now)
		delta := (int(base.Weekday()) - int(weekday) + 7) % 7
		if delta == 0 && strings.HasPrefix(input, "last ") {
			delta = 7
		}
		return base.AddDate(0, 0, -delta), nil
	}

	if m := relativeAgoRegex.FindStringSubmatch(input); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 {
			return time.Time{}, fmt.Errorf("invalid relative date %q", raw)
		}
		return ago(now, n, m[2]), nil
	}

	for _, layout := range absoluteLayouts {
		if t, err := time.ParseInLocation(layout, raw, now.Location()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", raw)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func ago(now time.Time, n int, unit string) time.Time {
	switch unit {
	case "mo":
		return now.AddDate(0, -n, 0)
	case "w":
		return now.AddDate(0, 0, -7*n)
	case "d":
		return now.AddDate(0, 0, -n)
	case "h":
		return now.Add(-time.Duration(n) * time.Hour)
	default:
		return now.Add(-time.Duration(n) * time.Minute)
	}
}

var weekdays = map[string]time.Weekday{
	"sun":       time.Sunday,
	"sunday":    time.Sunday,
	"mon":       time.Monday,
	"monday":    time.Monday,
	"tue":       time.Tuesday,
	"tues":      time.Tuesday,
	"tuesday":   time.Tuesday,
	"wed":       time.Wednesday,
	"wednesday": time.Wednesday,
	"thu":       time.Thursday,
	"thurs":     time.Thursday,
	"thursday":  time.Thursday,
	"fri":       time.Friday,
	"friday":    time.Friday,
	"sat":       time.Saturday,
	"saturday":  time.Saturday,
}
