package models

import "fmt"

// LayoutMode selects how camera and share panes are arranged while
// sharing is active. The set is closed; new layouts are added here and in
// the layout package, nowhere else.
type LayoutMode string

const (
	// LayoutSideBySide splits the canvas into two equal halves,
	// slides left, camera right.
	LayoutSideBySide LayoutMode = "side-by-side"
	// LayoutDiagonal shows large slides on the left with a small
	// camera overlay anchored to the bottom-right corner.
	LayoutDiagonal LayoutMode = "diagonal"
)

// ParseLayoutMode validates a user-supplied layout name.
func ParseLayoutMode(s string) (LayoutMode, error) {
	switch LayoutMode(s) {
	case LayoutSideBySide, LayoutDiagonal:
		return LayoutMode(s), nil
	default:
		return "", fmt.Errorf("unknown layout %q (valid: %s, %s)", s, LayoutSideBySide, LayoutDiagonal)
	}
}
