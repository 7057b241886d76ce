package layout

import (
	"errors"
	"testing"

	"github.com/kartoza/kartoza-meeting-compositor/internal/models"
)

func TestCompute_SideBySide1080p(t *testing.T) {
	g, err := Compute(models.LayoutSideBySide, models.StreamResolution{Width: 1920, Height: 1080})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if g.Share.Width != 960 {
		t.Errorf("expected share pane width 960, got %d", g.Share.Width)
	}
	if g.Camera.Width != 960 {
		t.Errorf("expected camera pane width 960, got %d", g.Camera.Width)
	}
	if g.Share.PadHeight != 1080 || g.Camera.PadHeight != 1080 {
		t.Errorf("expected panes padded to canvas height, got %d/%d", g.Share.PadHeight, g.Camera.PadHeight)
	}
}

func TestCompute_Diagonal1080p(t *testing.T) {
	g, err := Compute(models.LayoutDiagonal, models.StreamResolution{Width: 1920, Height: 1080})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 1920*0.72 = 1382.4 -> 1382, 1920*0.25 = 480
	if g.Share.Width != 1382 {
		t.Errorf("expected share pane width 1382, got %d", g.Share.Width)
	}
	if g.Camera.Width != 480 {
		t.Errorf("expected camera pane width 480, got %d", g.Camera.Width)
	}
	if g.CameraX != 1920-480-20 {
		t.Errorf("expected camera x %d, got %d", 1920-480-20, g.CameraX)
	}
	if g.CameraY >= 1080 || g.CameraY <= 0 {
		t.Errorf("camera y %d outside canvas", g.CameraY)
	}
}

func TestCompute_AllDimensionsPositiveAndEven(t *testing.T) {
	canvases := []models.StreamResolution{
		{Width: 1920, Height: 1080},
		{Width: 1280, Height: 720},
		{Width: 854, Height: 480},
		{Width: 640, Height: 360},
		{Width: 3840, Height: 2160},
		{Width: 1366, Height: 768},
	}
	modes := []models.LayoutMode{models.LayoutSideBySide, models.LayoutDiagonal}

	for _, canvas := range canvases {
		for _, mode := range modes {
			g, err := Compute(mode, canvas)
			if err != nil {
				t.Errorf("Compute(%s, %s): unexpected error: %v", mode, canvas, err)
				continue
			}

			dims := map[string]int{
				"share width":  g.Share.Width,
				"camera width": g.Camera.Width,
			}
			if g.Share.PadWidth > 0 {
				dims["share pad width"] = g.Share.PadWidth
				dims["share pad height"] = g.Share.PadHeight
			}
			if g.Camera.PadWidth > 0 {
				dims["camera pad width"] = g.Camera.PadWidth
				dims["camera pad height"] = g.Camera.PadHeight
			}

			for name, d := range dims {
				if d <= 0 {
					t.Errorf("Compute(%s, %s): %s = %d, want positive", mode, canvas, name, d)
				}
				if d%2 != 0 {
					t.Errorf("Compute(%s, %s): %s = %d, want even", mode, canvas, name, d)
				}
			}
		}
	}
}

func TestCompute_EmptyCanvas(t *testing.T) {
	_, err := Compute(models.LayoutSideBySide, models.StreamResolution{Width: 0, Height: 1080})
	if !errors.Is(err, ErrEmptyCanvas) {
		t.Errorf("expected ErrEmptyCanvas, got %v", err)
	}

	_, err = Compute(models.LayoutDiagonal, models.StreamResolution{Width: 1920, Height: 0})
	if !errors.Is(err, ErrEmptyCanvas) {
		t.Errorf("expected ErrEmptyCanvas, got %v", err)
	}
}

func TestCompute_NegativeCanvas(t *testing.T) {
	_, err := Compute(models.LayoutSideBySide, models.StreamResolution{Width: -1920, Height: 1080})
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry, got %v", err)
	}
}

func TestCompute_UnknownMode(t *testing.T) {
	_, err := Compute(models.LayoutMode("mosaic"), models.StreamResolution{Width: 1920, Height: 1080})
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry, got %v", err)
	}
}

func TestEvenHelpers(t *testing.T) {
	if evenFloor(961) != 960 {
		t.Errorf("evenFloor(961) = %d, want 960", evenFloor(961))
	}
	if evenFloor(960) != 960 {
		t.Errorf("evenFloor(960) = %d, want 960", evenFloor(960))
	}
	if evenRound(1382.4) != 1382 {
		t.Errorf("evenRound(1382.4) = %d, want 1382", evenRound(1382.4))
	}
	if evenRound(983.04) != 984 {
		t.Errorf("evenRound(983.04) = %d, want 984", evenRound(983.04))
	}
}
