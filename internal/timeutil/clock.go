// Package timeutil converts between the three time representations used by
// the planner: "HH:MM" clock strings, integer minutes since midnight, and
// the decimal-hour form used by schedule configuration (8.5 = 08:30).
// Everything downstream of configuration load works in integer minutes.
package timeutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	MinutesPerHour = 60
	MinutesPerDay  = 24 * 60
)

// ClockToMinutes parses an "HH:MM" string into minutes since midnight.
func ClockToMinutes(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q: expected HH:MM", clock)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", clock, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", clock, err)
	}
	if h < 0 || h > 23 {
		return 0, fmt.Errorf("hour out of range in %q", clock)
	}
	if m < 0 || m > 59 {
		return 0, fmt.Errorf("minute out of range in %q", clock)
	}
	return h*MinutesPerHour + m, nil
}

// MinutesToClock formats minutes since midnight as "HH:MM".
// Values are clamped into [0, MinutesPerDay).
func MinutesToClock(min int) string {
	if min < 0 {
		min = 0
	}
	if min >= MinutesPerDay {
		min = MinutesPerDay - 1
	}
	return fmt.Sprintf("%02d:%02d", min/MinutesPerHour, min%MinutesPerHour)
}

// DecimalHoursToMinutes converts a decimal-hour value (e.g. 8.5 for 08:30)
// to integer minutes since midnight, rounding to the nearest minute.
// The conversion happens exactly once, at configuration load.
func DecimalHoursToMinutes(hours float64) int {
	return int(math.Round(hours * MinutesPerHour))
}

// MinutesToDecimalHours is the inverse of DecimalHoursToMinutes, used only
// when writing configuration back out in its legacy decimal form.
func MinutesToDecimalHours(min int) float64 {
	return float64(min) / MinutesPerHour
}

// FormatDuration renders a minute count as a compact duration like
// "2h05m" or "45m".
func FormatDuration(min int) string {
	if min < 0 {
		min = 0
	}
	h := min / MinutesPerHour
	m := min % MinutesPerHour
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh%02dm", h, m)
}
