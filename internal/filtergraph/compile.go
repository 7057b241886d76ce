package filtergraph

import (
	"fmt"

	"github.com/kartoza/kartoza-meeting-compositor/internal/intervals"
	"github.com/kartoza/kartoza-meeting-compositor/internal/layout"
	"github.com/kartoza/kartoza-meeting-compositor/internal/models"
)

// Well-known input labels: the camera file is ffmpeg input 0, the
// screen-share file input 1.
const (
	cameraInput = "0:v"
	slidesInput = "1:v"
)

// Inputs carries everything Compile needs. All configuration arrives
// explicitly; the compiler reads no globals, no clock and no files, so a
// dry run can inspect the program without side effects.
type Inputs struct {
	// Intervals are sharing intervals on the output timeline. When
	// Trim is also set they are clipped and rebased here.
	Intervals  []models.SharingInterval
	Canvas     models.StreamResolution
	Geometry   layout.Geometry
	Background models.BackgroundSpec
	// Trim clips the interval set to the window. The container-level
	// clipping of both pipelines lives in the render invocation
	// (-ss before inputs, -t on output), which neither re-encodes
	// audio nor resamples video.
	Trim *models.TrimWindow
	// ScaleCamera forces the speaker pipeline through a scale+pad
	// stage, used when the output canvas differs from the camera's
	// native resolution.
	ScaleCamera bool
}

// Compile builds the composition program. Compilation is all-or-nothing:
// on any validation failure no partial program is returned.
func Compile(in Inputs) (*Program, error) {
	if in.Canvas.Width == 0 || in.Canvas.Height == 0 {
		return nil, fmt.Errorf("%w: %s", layout.ErrEmptyCanvas, in.Canvas)
	}
	if !in.Canvas.Valid() {
		return nil, fmt.Errorf("%w: canvas %s", layout.ErrInvalidGeometry, in.Canvas)
	}
	if in.Geometry.Canvas != in.Canvas {
		return nil, fmt.Errorf("%w: geometry computed for %s, canvas is %s",
			layout.ErrInvalidGeometry, in.Geometry.Canvas, in.Canvas)
	}
	if in.Geometry.Share.Width <= 0 || in.Geometry.Camera.Width <= 0 {
		return nil, fmt.Errorf("%w: share %d, camera %d",
			layout.ErrInvalidGeometry, in.Geometry.Share.Width, in.Geometry.Camera.Width)
	}

	ivs := in.Intervals
	if in.Trim != nil {
		ivs = intervals.Clip(ivs, *in.Trim)
	}

	p := &Program{Output: "v"}
	fill := in.Background.FillColor()

	// A background canvas is only materialized when it can show:
	// an image, or a fill color other than plain black (pad already
	// fills black for free).
	bgLabel := ""
	switch {
	case in.Background.Kind == models.BackgroundImage:
		p.Chains = append(p.Chains, Chain{
			Body: fmt.Sprintf(
				"movie=%s:loop=0,setpts=N/(FRAME_RATE*TB),scale=%d:%d:force_original_aspect_ratio=decrease,pad=%d:%d:(ow-iw)/2:(oh-ih)/2:%s",
				in.Background.Image, in.Canvas.Width, in.Canvas.Height, in.Canvas.Width, in.Canvas.Height, fill),
			Outputs: []string{"bg"},
		})
		bgLabel = "bg"
	case fill != models.DefaultBackgroundColor:
		p.Chains = append(p.Chains, Chain{
			Body:    fmt.Sprintf("color=c=%s:s=%dx%d", fill, in.Canvas.Width, in.Canvas.Height),
			Outputs: []string{"bg"},
		})
		bgLabel = "bg"
	}

	// Degenerate path: no sharing anywhere, the program is the
	// speaker-only pipeline end to end and carries no selector.
	if len(ivs) == 0 {
		appendSpeakerChains(p, in, cameraInput, bgLabel, "v")
		return p, nil
	}

	// Camera feeds both pipelines.
	p.Chains = append(p.Chains, Chain{
		Inputs:  []string{cameraInput},
		Body:    "split=2",
		Outputs: []string{"cam_full", "cam_half"},
	})

	appendSpeakerChains(p, in, "cam_full", bgLabel, "cam_speaker")

	switch in.Geometry.Mode {
	case models.LayoutDiagonal:
		appendDiagonalChains(p, in, fill)
	default:
		appendSideBySideChains(p, in, fill)
	}

	// The time-gated selector: the active composition is overlaid on
	// the speaker pipeline only while t lies inside a sharing
	// interval; outside, the untouched speaker frame passes through.
	p.Selector = activeExpr(ivs)
	p.Chains = append(p.Chains, Chain{
		Inputs:  []string{"cam_speaker", "combined"},
		Body:    fmt.Sprintf("overlay=enable='%s':x=0:y=0", p.Selector),
		Outputs: []string{"v"},
	})

	return p, nil
}

// appendSpeakerChains emits the speaker-only pipeline from the given
// camera label to out. Without scaling or a background canvas this is a
// bare copy, deliberately keeping the dominant path free of resampling.
func appendSpeakerChains(p *Program, in Inputs, camLabel, bgLabel, out string) {
	fill := in.Background.FillColor()

	switch {
	case bgLabel != "":
		p.Chains = append(p.Chains, Chain{
			Inputs: []string{camLabel},
			Body: fmt.Sprintf(
				"scale=%d:-1:force_original_aspect_ratio=decrease,pad=%d:%d:(ow-iw)/2:(oh-ih)/2:%s",
				in.Canvas.Width, in.Canvas.Width, in.Canvas.Height, fill),
			Outputs: []string{"cam_speaker_sized"},
		})
		p.Chains = append(p.Chains, Chain{
			Inputs:  []string{bgLabel, "cam_speaker_sized"},
			Body:    "overlay=(W-w)/2:(H-h)/2",
			Outputs: []string{out},
		})
	case in.ScaleCamera:
		p.Chains = append(p.Chains, Chain{
			Inputs: []string{camLabel},
			Body: fmt.Sprintf(
				"scale=%d:-1:force_original_aspect_ratio=decrease,pad=%d:%d:(ow-iw)/2:(oh-ih)/2:%s",
				in.Canvas.Width, in.Canvas.Width, in.Canvas.Height, fill),
			Outputs: []string{out},
		})
	default:
		p.Chains = append(p.Chains, Chain{
			Inputs:  []string{camLabel},
			Body:    "copy",
			Outputs: []string{out},
		})
	}
}

// appendSideBySideChains emits the 50/50 active pipeline: slides on the
// left half, camera on the right, each letterboxed to canvas height.
func appendSideBySideChains(p *Program, in Inputs, fill string) {
	cam := in.Geometry.Camera
	share := in.Geometry.Share

	p.Chains = append(p.Chains, Chain{
		Inputs: []string{"cam_half"},
		Body: fmt.Sprintf(
			"scale=%d:-1:force_original_aspect_ratio=decrease,pad=%d:%d:(ow-iw)/2:(oh-ih)/2:%s",
			cam.Width, cam.PadWidth, cam.PadHeight, fill),
		Outputs: []string{"cam_side"},
	})
	p.Chains = append(p.Chains, Chain{
		Inputs: []string{slidesInput},
		Body: fmt.Sprintf(
			"scale=%d:-1:force_original_aspect_ratio=decrease,pad=%d:%d:(ow-iw)/2:(oh-ih)/2:%s",
			share.Width, share.PadWidth, share.PadHeight, fill),
		Outputs: []string{"slides"},
	})
	p.Chains = append(p.Chains, Chain{
		Inputs:  []string{"slides", "cam_side"},
		Body:    "hstack=inputs=2",
		Outputs: []string{"combined"},
	})
}

// appendDiagonalChains emits the active pipeline with large slides on
// the left and a small camera overlay in the bottom-right corner.
func appendDiagonalChains(p *Program, in Inputs, fill string) {
	g := in.Geometry

	p.Chains = append(p.Chains, Chain{
		Inputs:  []string{"cam_half"},
		Body:    fmt.Sprintf("scale=%d:-1:force_original_aspect_ratio=decrease", g.Camera.Width),
		Outputs: []string{"cam_small"},
	})
	p.Chains = append(p.Chains, Chain{
		Inputs: []string{slidesInput},
		Body: fmt.Sprintf(
			"scale=%d:-1:force_original_aspect_ratio=decrease,pad=%d:%d:0:(oh-ih)/2:%s",
			g.Share.Width, g.Share.PadWidth, g.Share.PadHeight, fill),
		Outputs: []string{"slides_pad"},
	})
	p.Chains = append(p.Chains, Chain{
		Inputs:  []string{"slides_pad", "cam_small"},
		Body:    fmt.Sprintf("overlay=%d:%d", g.CameraX, g.CameraY),
		Outputs: []string{"combined"},
	})
}
