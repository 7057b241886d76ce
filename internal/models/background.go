package models

// BackgroundKind discriminates the two background forms. Exactly one is
// active per run; the zero value is a solid color.
type BackgroundKind int

const (
	BackgroundColor BackgroundKind = iota
	BackgroundImage
)

// DefaultBackgroundColor fills letterboxed canvas area when the user
// specifies nothing else.
const DefaultBackgroundColor = "black"

// BackgroundSpec describes what fills canvas area not covered by a pane:
// either a named/hex color or an image file, never both.
type BackgroundSpec struct {
	Kind  BackgroundKind
	Color string // named ("black", "white") or hex ("#FF0000")
	Image string // path to an image file
}

// SolidColor returns a color-fill background.
func SolidColor(color string) BackgroundSpec {
	if color == "" {
		color = DefaultBackgroundColor
	}
	return BackgroundSpec{Kind: BackgroundColor, Color: color}
}

// ImageFile returns an image-fill background. The fill color is still
// used to pad around the scaled image.
func ImageFile(path, padColor string) BackgroundSpec {
	if padColor == "" {
		padColor = DefaultBackgroundColor
	}
	return BackgroundSpec{Kind: BackgroundImage, Image: path, Color: padColor}
}

// FillColor returns the color used for pad/letterbox fill regardless of
// background kind.
func (b BackgroundSpec) FillColor() string {
	if b.Color == "" {
		return DefaultBackgroundColor
	}
	return b.Color
}
