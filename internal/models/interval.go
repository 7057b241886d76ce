package models

import "fmt"

// SharingInterval is a half-open time range [Start, End) in seconds during
// which screen sharing was active. An interval with Unbounded set runs to
// the end of the recording and End is meaningless.
type SharingInterval struct {
	Start     float64
	End       float64
	Unbounded bool
}

// Contains reports whether t falls inside the interval using half-open
// semantics: Start is included, End is not.
func (iv SharingInterval) Contains(t float64) bool {
	if t < iv.Start {
		return false
	}
	return iv.Unbounded || t < iv.End
}

// String renders the interval for status output, e.g. "12.50s - 80.00s"
// or "12.50s - end".
func (iv SharingInterval) String() string {
	if iv.Unbounded {
		return fmt.Sprintf("%.2fs - end", iv.Start)
	}
	return fmt.Sprintf("%.2fs - %.2fs", iv.Start, iv.End)
}

// TrimWindow restricts processing to [Start, End] of the source timeline.
// A zero Start means "from the beginning"; HasEnd distinguishes "to the
// end" from an explicit end time.
type TrimWindow struct {
	Start  float64
	End    float64
	HasEnd bool
}

// Duration returns the window length in seconds, or 0 when the window is
// open-ended.
func (w TrimWindow) Duration() float64 {
	if !w.HasEnd {
		return 0
	}
	return w.End - w.Start
}
