package upload

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
)

// ExtractThumbnail grabs a single frame at the given offset as a JPEG.
// The caller is responsible for removing the returned file.
func ExtractThumbnail(videoPath string, offset float64) (string, error) {
	tmpDir, err := os.MkdirTemp("", "compositor-thumb-")
	if err != nil {
		return "", err
	}
	out := filepath.Join(tmpDir, "thumbnail.jpg")

	cmd := exec.Command("ffmpeg",
		"-y",
		"-ss", strconv.FormatFloat(offset, 'f', -1, 64),
		"-i", videoPath,
		"-vframes", "1",
		"-q:v", "2",
		out,
	)
	if output, err := cmd.CombinedOutput(); err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", fmt.Errorf("thumbnail extraction failed: %w: %s", err, output)
	}
	return out, nil
}
