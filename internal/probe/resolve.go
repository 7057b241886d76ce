package probe

import (
	"fmt"

	"github.com/kartoza/kartoza-meeting-compositor/internal/models"
)

// Resolution returns the camera stream's native dimensions. The camera
// resolution is authoritative for the output canvas, so missing or zero
// dimensions are fatal.
func (r *Result) Resolution() (models.StreamResolution, error) {
	stream := r.VideoStream()
	if stream == nil {
		return models.StreamResolution{}, fmt.Errorf("%w: %s has no video stream", ErrResolutionUndetectable, r.Path)
	}

	res := models.StreamResolution{Width: stream.Width, Height: stream.Height}
	if !res.Valid() {
		return models.StreamResolution{}, fmt.Errorf("%w: %s reports %s", ErrResolutionUndetectable, r.Path, res)
	}
	return res, nil
}

// Markers converts raw chapters into the extractor's input form. Only
// existence of the share stream is validated here; its resolution never
// influences the canvas, so share frames are scaled down to camera
// geometry and never the reverse.
func (r *Result) Markers() []models.ChapterMarker {
	markers := make([]models.ChapterMarker, 0, len(r.Chapters))
	for _, c := range r.Chapters {
		markers = append(markers, models.ChapterMarker{Title: c.Title, Start: c.Start, End: c.End})
	}
	return markers
}
