package probe

import (
	"errors"
	"testing"
)

const cameraJSON = `{
  "streams": [
    {"codec_type": "video", "codec_name": "h264", "width": 1920, "height": 1080, "r_frame_rate": "30/1"},
    {"codec_type": "audio", "codec_name": "aac", "r_frame_rate": "0/0"}
  ],
  "chapters": [],
  "format": {"duration": "3600.250000"}
}`

const slidesJSON = `{
  "streams": [
    {"codec_type": "video", "codec_name": "h264", "width": 2560, "height": 1440, "r_frame_rate": "25/1"}
  ],
  "chapters": [
    {"start_time": "0.000000", "end_time": "125.000000", "tags": {"title": "Alice started sharing - Sharing Started"}},
    {"start_time": "125.000000", "end_time": "300.000000", "tags": {"title": "Sharing Stopped"}}
  ],
  "format": {"duration": "3600.000000"}
}`

const audioOnlyJSON = `{
  "streams": [
    {"codec_type": "audio", "codec_name": "aac"}
  ],
  "chapters": [],
  "format": {}
}`

func TestParse_CameraStream(t *testing.T) {
	result, err := Parse([]byte(cameraJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := result.Resolution()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Width != 1920 || res.Height != 1080 {
		t.Errorf("expected 1920x1080, got %s", res)
	}

	vs := result.VideoStream()
	if vs == nil {
		t.Fatal("expected a video stream")
	}
	if vs.FPS != 30 {
		t.Errorf("expected 30 fps, got %f", vs.FPS)
	}
	if result.Duration != 3600.25 {
		t.Errorf("expected duration 3600.25, got %f", result.Duration)
	}
}

func TestParse_Chapters(t *testing.T) {
	result, err := Parse([]byte(slidesJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	markers := result.Markers()
	if len(markers) != 2 {
		t.Fatalf("expected 2 markers, got %d", len(markers))
	}
	if markers[0].Title != "Alice started sharing - Sharing Started" {
		t.Errorf("unexpected title %q", markers[0].Title)
	}
	if markers[0].Start != 0 || markers[1].Start != 125 {
		t.Errorf("unexpected marker starts: %f, %f", markers[0].Start, markers[1].Start)
	}
}

func TestResolution_NoVideoStream(t *testing.T) {
	result, err := Parse([]byte(audioOnlyJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.HasVideo() {
		t.Error("expected HasVideo to be false")
	}
	if _, err := result.Resolution(); !errors.Is(err, ErrResolutionUndetectable) {
		t.Errorf("expected ErrResolutionUndetectable, got %v", err)
	}
}

func TestResolution_ZeroDimensions(t *testing.T) {
	const zeroJSON = `{"streams":[{"codec_type":"video","codec_name":"h264","width":0,"height":1080}]}`

	result, err := Parse([]byte(zeroJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := result.Resolution(); !errors.Is(err, ErrResolutionUndetectable) {
		t.Errorf("expected ErrResolutionUndetectable, got %v", err)
	}
}

func TestParse_MalformedJSON(t *testing.T) {
	if _, err := Parse([]byte("{not json")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
