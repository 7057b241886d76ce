// Package intervals derives screen-sharing intervals from the chapter
// markers Zoom embeds in the screen-share recording.
package intervals

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kartoza/kartoza-meeting-compositor/internal/models"
)

// Canonical marker phrases. Zoom titles carry extra text around them
// ("Alice started sharing - Sharing Started"), so matching is by
// case-insensitive substring.
const (
	sharingStartedPhrase = "sharing started"
	sharingStoppedPhrase = "sharing stopped"
)

// ErrUnorderedMetadata is returned when chapter markers are not sorted by
// timestamp. Reordering them silently could hide a corrupted source file,
// so this is surfaced instead of repaired.
var ErrUnorderedMetadata = errors.New("chapter markers are not in timestamp order")

// Extract pairs "Sharing Started" / "Sharing Stopped" markers into a
// sorted, non-overlapping sequence of half-open sharing intervals,
// optionally clipped and rebased to a trim window.
//
// Recovery policy for noisy metadata: a stop with no open start is
// ignored, and a second start while an interval is open is redundant
// (the first start wins). A start that is never stopped yields an
// unbounded interval. Unrelated chapter titles are skipped.
func Extract(markers []models.ChapterMarker, trim *models.TrimWindow) ([]models.SharingInterval, error) {
	var (
		result    []models.SharingInterval
		openStart float64
		open      bool
		lastTime  float64
		haveLast  bool
	)

	for _, m := range markers {
		if haveLast && m.Start < lastTime {
			return nil, fmt.Errorf("%w: marker %q at %.3fs follows %.3fs", ErrUnorderedMetadata, m.Title, m.Start, lastTime)
		}
		lastTime = m.Start
		haveLast = true

		title := strings.ToLower(m.Title)
		switch {
		case strings.Contains(title, sharingStartedPhrase):
			if !open {
				openStart = m.Start
				open = true
			}
		case strings.Contains(title, sharingStoppedPhrase):
			if !open {
				continue // dangling stop, ignore
			}
			if m.Start > openStart {
				result = append(result, models.SharingInterval{Start: openStart, End: m.Start})
			}
			open = false
		}
	}

	// Sharing never stopped: runs to the end of the recording.
	if open {
		result = append(result, models.SharingInterval{Start: openStart, Unbounded: true})
	}

	if trim != nil {
		result = Clip(result, *trim)
	}

	return result, nil
}

// Clip truncates intervals to the trim window and rebases them onto the
// trimmed timeline, dropping intervals that fall wholly outside.
func Clip(ivs []models.SharingInterval, w models.TrimWindow) []models.SharingInterval {
	var out []models.SharingInterval

	for _, iv := range ivs {
		if w.HasEnd && iv.Start >= w.End {
			continue // beyond the window
		}
		if !iv.Unbounded && iv.End <= w.Start {
			continue // before the window
		}

		start := iv.Start - w.Start
		if start < 0 {
			start = 0
		}

		clipped := models.SharingInterval{Start: start, Unbounded: iv.Unbounded}
		if !iv.Unbounded {
			clipped.End = iv.End - w.Start
		}
		if w.HasEnd {
			limit := w.End - w.Start
			if clipped.Unbounded || clipped.End > limit {
				clipped.End = limit
				clipped.Unbounded = false
			}
		}

		if clipped.Unbounded || clipped.End > clipped.Start {
			out = append(out, clipped)
		}
	}

	return out
}
