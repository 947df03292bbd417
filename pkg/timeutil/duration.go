// Package timeutil parses and renders the compact durations used by --since
// and the relative ages shown next to lists.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	day  = 24 * time.Hour
	week = 7 * day
)

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap       = map[string]time.Duration{
		"s":       time.Second,
		"sec":     time.Second,
		"secs":    time.Second,
		"second":  time.Second,
		"seconds": time.Second,
		"m":       time.Minute,
		"min":     time.Minute,
		"mins":    time.Minute,
		"minute":  time.Minute,
		"minutes": time.Minute,
		"h":       time.Hour,
		"hr":      time.Hour,
		"hrs":     time.Hour,
		"hour":    time.Hour,
		"hours":   time.Hour,
		"d":       day,
		"day":     day,
		"days":    day,
		"w":       week,
		"wk":      week,
		"wks":     week,
		"week":    week,
		"weeks":   week,
	}
	units = []struct {
		label string
		value time.Duration
	}{
		{"w", week},
		{"d", day},
		{"h", time.Hour},
		{"m", time.Minute},
		{"s", time.Second},
	}
)

// ParseWindow parses a duration such as "1w", "3d" or "1w2d6h". An empty
// input yields zero, meaning no window.
func ParseWindow(input string) (time.Duration, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return 0, nil
	}
	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("invalid duration segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration value %q: %w", matches[1], err)
		}
		base, ok := unitMap[matches[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported duration unit %q", matches[2])
		}
		total += time.Duration(value) * base
		remaining = strings.TrimSpace(remaining[len(matches[0]):])
	}
	if total <= 0 {
		return 0, fmt.Errorf("duration must be greater than zero")
	}
	return total, nil
}

// FormatWindow renders d with week, day, hour, minute and second tokens.
func FormatWindow(d time.Duration) string {
	var parts []string
	remaining := d
	for _, u := range units {
		if remaining < u.value {
			continue
		}
		count := remaining / u.value
		remaining -= count * u.value
		parts = append(parts, fmt.Sprintf("%d%s", count, u.label))
	}
	if len(parts) == 0 {
		return "0s"
	}
	return strings.Join(parts, "")
}

// Age renders how long before now t was, in its largest unit.
func Age(now, t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	d := now.Sub(t)
	if d < time.Minute {
		return "just now"
	}
	for _, u := range units {
		if d >= u.value {
			return fmt.Sprintf("%d%s ago", d/u.value, u.label)
		}
	}
	return "just now"
}
