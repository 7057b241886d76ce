package tui

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"strings"

	"github.com/blacktop/go-termimg"
	"github.com/nfnt/resize"
)

// previewWidth is the pixel width background previews are resized to
// before being handed to the terminal graphics protocol.
const previewWidth = 480

// KittySupported checks if the terminal supports the Kitty graphics
// protocol, which inline previews need.
func KittySupported() bool {
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	if strings.Contains(os.Getenv("TERM"), "kitty") {
		return true
	}
	if os.Getenv("TERM_PROGRAM") == "kitty" {
		return true
	}

	return termimg.DetectProtocol() == termimg.Kitty
}

// RenderImagePreview renders an image file inline for Kitty-capable
// terminals, downscaled to a preview size. Returns an error for
// unsupported terminals; callers fall back to plain text.
func RenderImagePreview(path string) (string, error) {
	if !KittySupported() {
		return "", fmt.Errorf("terminal does not support inline images")
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := uint(previewWidth)
	height := uint(bounds.Dy() * previewWidth / bounds.Dx())
	resized := resize.Resize(width, height, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := png.Encode(&buf, resized); err != nil {
		return "", fmt.Errorf("failed to encode preview: %w", err)
	}

	ti, err := termimg.From(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return "", fmt.Errorf("failed to prepare preview: %w", err)
	}

	ti.Protocol(termimg.Kitty).Scale(termimg.ScaleFit)

	rendered, err := ti.Render()
	if err != nil {
		return "", fmt.Errorf("failed to render preview: %w", err)
	}

	return rendered, nil
}
