// Package render turns a compiled composition program into an ffmpeg
// invocation and executes it, reporting encode progress.
package render

import (
	"bufio"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/kartoza/kartoza-meeting-compositor/internal/filtergraph"
	"github.com/kartoza/kartoza-meeting-compositor/internal/models"
)

// Fixed external encoding policies: lossy video at a high-quality
// setting with a fast preset, audio copied verbatim from the camera
// input.
const (
	DefaultCRF    = 18
	DefaultPreset = "veryfast"
)

// PercentFunc receives encode progress in the range [0, 100].
type PercentFunc func(percent float64)

// Job is one render invocation: two inputs, a compiled program and an
// output path. A Job never mutates its Program; retrying a render reuses
// the identical program.
type Job struct {
	CameraFile string
	SlidesFile string
	OutputFile string
	Program    *filtergraph.Program
	Trim       *models.TrimWindow
	// Duration is the expected output length in seconds, used only
	// for progress percentage. 0 disables percent reporting.
	Duration float64
	CRF      int
	Preset   string
}

func (j Job) crf() int {
	if j.CRF > 0 {
		return j.CRF
	}
	return DefaultCRF
}

func (j Job) preset() string {
	if j.Preset != "" {
		return j.Preset
	}
	return DefaultPreset
}

// BuildArgs assembles the complete ffmpeg argument list. Seeking flags
// go before each input so ffmpeg seeks before decoding; the filtergraph
// then sees a zero-based timeline that matches the rebased intervals.
func BuildArgs(j Job) []string {
	args := []string{"-y"}

	seek := ""
	if j.Trim != nil && j.Trim.Start > 0 {
		seek = formatSeconds(j.Trim.Start)
	}

	if seek != "" {
		args = append(args, "-ss", seek)
	}
	args = append(args, "-i", j.CameraFile)
	if seek != "" {
		args = append(args, "-ss", seek)
	}
	args = append(args, "-i", j.SlidesFile)

	if j.Trim != nil && j.Trim.HasEnd {
		if j.Trim.Start > 0 {
			args = append(args, "-t", formatSeconds(j.Trim.Duration()))
		} else {
			args = append(args, "-to", formatSeconds(j.Trim.End))
		}
	}

	args = append(args,
		"-filter_complex", j.Program.String(),
		"-map", "["+j.Program.Output+"]",
		"-map", "0:a",
		"-c:v", "libx264",
		"-preset", j.preset(),
		"-crf", strconv.Itoa(j.crf()),
		"-c:a", "copy",
		"-movflags", "+faststart",
		j.OutputFile,
	)

	return args
}

// CommandLine renders the would-be invocation for dry runs.
func CommandLine(j Job) string {
	return "ffmpeg " + strings.Join(BuildArgs(j), " ")
}

// Run executes the render, parsing ffmpeg's machine-readable progress
// stream for percentage callbacks.
func Run(j Job, onPercent PercentFunc) error {
	args := append([]string{"-progress", "pipe:1", "-stats_period", "0.5", "-nostats"}, BuildArgs(j)...)

	cmd := exec.Command("ffmpeg", args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to create stdout pipe: %w", err)
	}

	var stderrBuf strings.Builder
	cmd.Stderr = &stderrBuf

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	if onPercent != nil {
		onPercent(0)
	}

	// ffmpeg emits key=value lines; out_time_us carries the encoded
	// position in microseconds and can be "N/A" early on.
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "out_time_us=") {
			continue
		}
		timeStr := strings.TrimPrefix(line, "out_time_us=")
		if timeStr == "N/A" {
			continue
		}
		timeUs, err := strconv.ParseInt(timeStr, 10, 64)
		if err != nil || timeUs < 0 || j.Duration <= 0 || onPercent == nil {
			continue
		}
		percent := float64(timeUs) / (j.Duration * 1e6) * 100
		if percent > 100 {
			percent = 100
		}
		onPercent(percent)
	}

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg failed: %w, stderr: %s", err, stderrBuf.String())
	}

	return nil
}

// formatSeconds renders a timestamp without trailing zeros so dry-run
// output stays readable.
func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
