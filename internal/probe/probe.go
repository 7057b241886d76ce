// Package probe extracts stream metadata and chapter markers from video
// files using ffprobe.
package probe

import (
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
)

// ErrResolutionUndetectable means the file's video stream metadata lacks
// usable pixel dimensions. Fatal to a compose run: the camera stream
// sizes the whole output canvas.
var ErrResolutionUndetectable = errors.New("could not detect video resolution")

// Stream describes one stream inside a probed container.
type Stream struct {
	CodecType string
	CodecName string
	Width     int
	Height    int
	FPS       float64
}

// Chapter is a raw chapter record from container metadata.
type Chapter struct {
	Title string
	Start float64
	End   float64
}

// Result holds everything a single ffprobe run yields.
type Result struct {
	Path     string
	Streams  []Stream
	Chapters []Chapter
	Duration float64 // seconds, 0 if unknown
}

// Probe runs ffprobe against the file and decodes streams, chapters and
// format metadata in one pass.
func Probe(path string) (*Result, error) {
	cmd := exec.Command("ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		"-show_chapters",
		"-show_format",
		path,
	)

	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed for %s: %w", path, err)
	}

	result, err := Parse(output)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output for %s: %w", path, err)
	}
	result.Path = path
	return result, nil
}

// Parse decodes raw ffprobe JSON output. Split from Probe so fixtures
// can exercise the decoding without an ffprobe binary.
func Parse(data []byte) (*Result, error) {
	var raw struct {
		Streams []struct {
			CodecType  string `json:"codec_type"`
			CodecName  string `json:"codec_name"`
			Width      int    `json:"width"`
			Height     int    `json:"height"`
			RFrameRate string `json:"r_frame_rate"`
		} `json:"streams"`
		Chapters []struct {
			StartTime string `json:"start_time"`
			EndTime   string `json:"end_time"`
			Tags      struct {
				Title string `json:"title"`
			} `json:"tags"`
		} `json:"chapters"`
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	result := &Result{}

	for _, s := range raw.Streams {
		stream := Stream{
			CodecType: s.CodecType,
			CodecName: s.CodecName,
			Width:     s.Width,
			Height:    s.Height,
		}
		// Frame rate arrives as "num/den".
		var num, den int
		if _, err := fmt.Sscanf(s.RFrameRate, "%d/%d", &num, &den); err == nil && den > 0 {
			stream.FPS = float64(num) / float64(den)
		}
		result.Streams = append(result.Streams, stream)
	}

	for _, c := range raw.Chapters {
		chapter := Chapter{Title: c.Tags.Title}
		if v, err := strconv.ParseFloat(c.StartTime, 64); err == nil {
			chapter.Start = v
		}
		if v, err := strconv.ParseFloat(c.EndTime, 64); err == nil {
			chapter.End = v
		}
		result.Chapters = append(result.Chapters, chapter)
	}

	if raw.Format.Duration != "" {
		if v, err := strconv.ParseFloat(raw.Format.Duration, 64); err == nil {
			result.Duration = v
		}
	}

	return result, nil
}

// VideoStream returns the first video stream, or nil when the container
// has none.
func (r *Result) VideoStream() *Stream {
	for i := range r.Streams {
		if r.Streams[i].CodecType == "video" {
			return &r.Streams[i]
		}
	}
	return nil
}

// HasVideo reports whether the container holds at least one video stream.
func (r *Result) HasVideo() bool {
	return r.VideoStream() != nil
}
