package models

// ChapterMarker is one chapter record embedded in a recording's container
// metadata. Zoom writes these to the screen-share track to mark sharing
// state transitions ("Sharing Started" / "Sharing Stopped").
type ChapterMarker struct {
	Title string
	// Start is the chapter start time in seconds from the beginning of
	// the recording.
	Start float64
	// End is the chapter end time in seconds, or 0 when the container
	// did not record one.
	End float64
}
