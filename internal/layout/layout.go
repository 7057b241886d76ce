// Package layout computes pane geometry for the active (sharing)
// composition modes. It is pure: same mode and canvas always produce the
// same geometry, and which geometry applies never varies over time.
package layout

import (
	"errors"
	"fmt"

	"github.com/kartoza/kartoza-meeting-compositor/internal/models"
)

var (
	// ErrEmptyCanvas means the canvas resolution has a zero dimension.
	ErrEmptyCanvas = errors.New("canvas has a zero dimension")
	// ErrInvalidGeometry means a computed pane dimension came out
	// non-positive. Dimensions are never clamped.
	ErrInvalidGeometry = errors.New("computed pane geometry is not positive")
)

// Diagonal layout proportions and margin.
const (
	diagonalShareFraction  = 0.72
	diagonalCameraFraction = 0.25
	diagonalMargin         = 20
)

// Pane positions one scaled stream on the canvas. Width is the target
// scale width; the height follows the source aspect ratio and is
// letterboxed against the background up to PadHeight where set.
type Pane struct {
	Width     int
	PadWidth  int // padded box width, 0 = no padding stage
	PadHeight int // padded box height, 0 = no padding stage
}

// Geometry describes where the two panes sit while sharing is active.
type Geometry struct {
	Mode   models.LayoutMode
	Canvas models.StreamResolution

	Share  Pane
	Camera Pane

	// Overlay placement of the camera pane for diagonal mode, in
	// pixels from the top-left corner. Unused for side-by-side.
	CameraX int
	CameraY int
}

// Compute derives pane geometry for the given mode and canvas. All
// emitted dimensions are positive even integers; libx264's 4:2:0 chroma
// subsampling cannot encode odd dimensions.
func Compute(mode models.LayoutMode, canvas models.StreamResolution) (Geometry, error) {
	if canvas.Width == 0 || canvas.Height == 0 {
		return Geometry{}, fmt.Errorf("%w: %s", ErrEmptyCanvas, canvas)
	}
	if !canvas.Valid() {
		return Geometry{}, fmt.Errorf("%w: canvas %s", ErrInvalidGeometry, canvas)
	}

	g := Geometry{Mode: mode, Canvas: canvas}

	switch mode {
	case models.LayoutSideBySide:
		half := evenFloor(canvas.Width / 2)
		g.Share = Pane{Width: half, PadWidth: half, PadHeight: canvas.Height}
		g.Camera = Pane{Width: half, PadWidth: half, PadHeight: canvas.Height}

	case models.LayoutDiagonal:
		shareW := evenRound(float64(canvas.Width) * diagonalShareFraction)
		camW := evenRound(float64(canvas.Width) * diagonalCameraFraction)
		g.Share = Pane{Width: shareW, PadWidth: canvas.Width, PadHeight: canvas.Height}
		g.Camera = Pane{Width: camW}
		g.CameraX = canvas.Width - camW - diagonalMargin
		// Camera height is unknown until scale time; reserve space
		// assuming the common 4:3 webcam aspect, as the corner
		// anchor only needs a stable box.
		g.CameraY = canvas.Height - evenRound(float64(camW)*0.75) - diagonalMargin

	default:
		return Geometry{}, fmt.Errorf("%w: unknown layout %q", ErrInvalidGeometry, mode)
	}

	for _, d := range []int{g.Share.Width, g.Camera.Width} {
		if d <= 0 {
			return Geometry{}, fmt.Errorf("%w: mode %s on canvas %s", ErrInvalidGeometry, mode, canvas)
		}
	}

	return g, nil
}

// evenFloor rounds n down to the nearest even integer.
func evenFloor(n int) int {
	return n &^ 1
}

// evenRound rounds f to the nearest even integer, never below zero.
func evenRound(f float64) int {
	n := int(f/2 + 0.5)
	return n * 2
}
