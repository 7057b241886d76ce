package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimestamp converts a trim time string to seconds.
//
// Accepted forms: "HH:MM:SS", "MM:SS" and plain seconds ("90" or "90.5").
// Fractional seconds are allowed in the last component.
func ParseTimestamp(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty timestamp")
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid timestamp %q: use HH:MM:SS, MM:SS or seconds", s)
	}

	secs, err := strconv.ParseFloat(parts[len(parts)-1], 64)
	if err != nil || secs < 0 {
		return 0, fmt.Errorf("invalid timestamp %q: use HH:MM:SS, MM:SS or seconds", s)
	}

	total := secs
	multiplier := 60.0
	for i := len(parts) - 2; i >= 0; i-- {
		n, err := strconv.Atoi(parts[i])
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid timestamp %q: use HH:MM:SS, MM:SS or seconds", s)
		}
		total += float64(n) * multiplier
		multiplier *= 60
	}

	return total, nil
}
