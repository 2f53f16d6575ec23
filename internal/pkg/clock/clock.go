// Package clock provides wall-clock arithmetic over "HH:MM" strings.
// Punch times are stored as minute-of-day integers; 0 means "no time"
// to callers that checked for an empty string first, so empty and
// malformed input deliberately parse to 0 instead of failing.
package clock

import (
	"strconv"
	"strings"
)

// ParseMinutes converts an "HH:MM" string to a minute-of-day integer.
// Empty or malformed input yields 0. Callers must treat 0 as "absent",
// not midnight, when the source string could be empty.
func ParseMinutes(s string) int {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0
	}

	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0
	}

	return hours*60 + minutes
}

// HoursBetween returns the signed duration in hours from start to end.
// The result is negative when end precedes start; shifts crossing
// midnight are not supported.
func HoursBetween(start, end string) float64 {
	return float64(ParseMinutes(end)-ParseMinutes(start)) / 60.0
}
