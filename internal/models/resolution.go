package models

import (
	"fmt"
	"strconv"
	"strings"
)

// StreamResolution holds a video stream's native pixel dimensions.
type StreamResolution struct {
	Width  int
	Height int
}

// Valid reports whether both dimensions are positive.
func (r StreamResolution) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

func (r StreamResolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// ParseDimensions parses an output dimension string into a resolution.
//
// Supported formats:
//   - WIDTHxHEIGHT, e.g. "1920x1080"
//   - HEIGHTp, e.g. "1080p" (16:9 assumed)
func ParseDimensions(s string) (StreamResolution, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return StreamResolution{}, fmt.Errorf("empty dimension string")
	}

	if strings.Contains(s, "x") {
		parts := strings.Split(s, "x")
		if len(parts) == 2 {
			w, errW := strconv.Atoi(parts[0])
			h, errH := strconv.Atoi(parts[1])
			if errW == nil && errH == nil && w > 0 && h > 0 {
				return StreamResolution{Width: w, Height: h}, nil
			}
		}
		return StreamResolution{}, fmt.Errorf("invalid dimensions %q: use WIDTHxHEIGHT like 1920x1080", s)
	}

	if strings.HasSuffix(s, "p") {
		h, err := strconv.Atoi(strings.TrimSuffix(s, "p"))
		if err == nil && h > 0 {
			return StreamResolution{Width: h * 16 / 9, Height: h}, nil
		}
		return StreamResolution{}, fmt.Errorf("invalid dimensions %q: use HEIGHTp like 1080p", s)
	}

	return StreamResolution{}, fmt.Errorf("invalid dimensions %q: use WIDTHxHEIGHT or HEIGHTp", s)
}
