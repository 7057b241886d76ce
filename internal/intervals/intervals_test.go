package intervals

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kartoza/kartoza-meeting-compositor/internal/models"
)

func marker(title string, at float64) models.ChapterMarker {
	return models.ChapterMarker{Title: title, Start: at}
}

func TestExtract_PairsMarkers(t *testing.T) {
	markers := []models.ChapterMarker{
		marker("Intro", 0),
		marker("Alice started sharing - Sharing Started", 10),
		marker("Sharing Stopped", 60),
		marker("sharing started", 120),
		marker("SHARING STOPPED", 180),
	}

	got, err := Extract(markers, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []models.SharingInterval{
		{Start: 10, End: 60},
		{Start: 120, End: 180},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("intervals mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_OpenIntervalRunsToEnd(t *testing.T) {
	markers := []models.ChapterMarker{
		marker("Sharing Started", 30),
	}

	got, err := Extract(markers, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []models.SharingInterval{{Start: 30, Unbounded: true}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("intervals mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_RedundantStartKeepsFirst(t *testing.T) {
	markers := []models.ChapterMarker{
		marker("Sharing Started", 5),
		marker("Sharing Started", 8),
	}

	got, err := Extract(markers, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []models.SharingInterval{{Start: 5, Unbounded: true}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("intervals mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_DanglingStopIgnored(t *testing.T) {
	markers := []models.ChapterMarker{
		marker("Sharing Stopped", 3),
		marker("Sharing Started", 10),
		marker("Sharing Stopped", 20),
		marker("Sharing Stopped", 25),
	}

	got, err := Extract(markers, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []models.SharingInterval{{Start: 10, End: 20}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("intervals mismatch (-want +got):\n%s", diff)
	}

	// The dangling stops must not show up as any boundary.
	for _, iv := range got {
		if iv.Start == 3 || iv.End == 3 || iv.End == 25 {
			t.Errorf("dangling stop leaked into interval %v", iv)
		}
	}
}

func TestExtract_ZeroLengthPairDropped(t *testing.T) {
	markers := []models.ChapterMarker{
		marker("Sharing Started", 10),
		marker("Sharing Stopped", 10),
	}

	got, err := Extract(markers, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no intervals for zero-length pair, got %v", got)
	}
}

func TestExtract_UnorderedMetadata(t *testing.T) {
	markers := []models.ChapterMarker{
		marker("Sharing Started", 50),
		marker("Sharing Stopped", 20),
	}

	_, err := Extract(markers, nil)
	if !errors.Is(err, ErrUnorderedMetadata) {
		t.Fatalf("expected ErrUnorderedMetadata, got %v", err)
	}
}

func TestExtract_NoMarkers(t *testing.T) {
	got, err := Extract(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestExtract_IgnoresUnrelatedTitles(t *testing.T) {
	markers := []models.ChapterMarker{
		marker("Recording Started", 0),
		marker("Q&A", 40),
		marker("Wrap up", 90),
	}

	got, err := Extract(markers, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no intervals from unrelated chapters, got %v", got)
	}
}

func TestExtract_SortedAndDisjoint(t *testing.T) {
	markers := []models.ChapterMarker{
		marker("Sharing Started", 1),
		marker("Sharing Stopped", 4),
		marker("Sharing Started", 4.5),
		marker("Sharing Stopped", 9),
		marker("Sharing Started", 9),
		marker("Sharing Stopped", 12),
	}

	got, err := Extract(markers, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 1; i < len(got); i++ {
		if got[i].Start < got[i-1].End {
			t.Errorf("intervals overlap: %v then %v", got[i-1], got[i])
		}
		if got[i].Start < got[i-1].Start {
			t.Errorf("intervals unsorted: %v then %v", got[i-1], got[i])
		}
	}
}

func TestExtract_TrimClipping(t *testing.T) {
	markers := []models.ChapterMarker{
		marker("Sharing Started", 10),
		marker("Sharing Stopped", 30),
		marker("Sharing Started", 50),
		marker("Sharing Stopped", 70),
		marker("Sharing Started", 200),
		marker("Sharing Stopped", 220),
	}

	tests := []struct {
		name string
		trim models.TrimWindow
		want []models.SharingInterval
	}{
		{
			name: "window inside second interval",
			trim: models.TrimWindow{Start: 55, End: 65, HasEnd: true},
			want: []models.SharingInterval{{Start: 0, End: 10}},
		},
		{
			name: "window covers first two, rebased",
			trim: models.TrimWindow{Start: 20, End: 100, HasEnd: true},
			want: []models.SharingInterval{
				{Start: 0, End: 10},
				{Start: 30, End: 50},
			},
		},
		{
			name: "start-only trim keeps tail",
			trim: models.TrimWindow{Start: 60},
			want: []models.SharingInterval{
				{Start: 0, End: 10},
				{Start: 140, End: 160},
			},
		},
		{
			name: "window before all sharing",
			trim: models.TrimWindow{Start: 0, End: 5, HasEnd: true},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(markers, &tt.trim)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("intervals mismatch (-want +got):\n%s", diff)
			}

			// Every surviving interval must lie within the rebased window.
			for _, iv := range got {
				if iv.Start < 0 {
					t.Errorf("interval %v starts before rebased zero", iv)
				}
				if tt.trim.HasEnd && !iv.Unbounded && iv.End > tt.trim.End-tt.trim.Start {
					t.Errorf("interval %v exceeds rebased window end", iv)
				}
			}
		})
	}
}

func TestExtract_TrimBoundsUnboundedInterval(t *testing.T) {
	markers := []models.ChapterMarker{
		marker("Sharing Started", 100),
	}
	trim := models.TrimWindow{Start: 90, End: 150, HasEnd: true}

	got, err := Extract(markers, &trim)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []models.SharingInterval{{Start: 10, End: 60}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("intervals mismatch (-want +got):\n%s", diff)
	}
}
