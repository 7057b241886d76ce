package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kartoza/kartoza-meeting-compositor/internal/intervals"
	"github.com/kartoza/kartoza-meeting-compositor/internal/probe"
	"github.com/kartoza/kartoza-meeting-compositor/internal/tui"
	"github.com/spf13/cobra"
)

var probeCmd = &cobra.Command{
	Use:   "probe FILE",
	Short: "Inspect a recording's streams and sharing markers",
	Long: `Inspect a media file: streams, duration, chapter markers and the
sharing intervals derived from them.

Given an image file instead, shows an inline preview in terminals that
support the Kitty graphics protocol. Useful for checking a background
image before composing with it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		if isImageFile(path) {
			return probeImage(path)
		}

		result, err := probe.Probe(path)
		if err != nil {
			return err
		}

		bold := lipgloss.NewStyle().Bold(true)
		gray := lipgloss.NewStyle().Foreground(lipgloss.Color("#9A9EA0"))

		fmt.Printf("%s %s\n", bold.Render("File:"), path)
		fmt.Printf("%s %.2fs\n\n", bold.Render("Duration:"), result.Duration)

		fmt.Println(bold.Render("Streams:"))
		for _, s := range result.Streams {
			switch s.CodecType {
			case "video":
				fmt.Printf("  video  %s %dx%d", s.CodecName, s.Width, s.Height)
				if s.FPS > 0 {
					fmt.Printf(" %.4gfps", s.FPS)
				}
				fmt.Println()
			default:
				fmt.Printf("  %-6s %s\n", s.CodecType, s.CodecName)
			}
		}
		fmt.Println()

		if len(result.Chapters) == 0 {
			fmt.Println(gray.Render("No chapter markers."))
			return nil
		}

		fmt.Println(bold.Render("Chapters:"))
		for _, c := range result.Chapters {
			fmt.Printf("  %9.2fs  %s\n", c.Start, c.Title)
		}
		fmt.Println()

		ivs, err := intervals.Extract(result.Markers(), nil)
		if err != nil {
			return fmt.Errorf("failed to derive sharing intervals: %w", err)
		}
		if len(ivs) == 0 {
			fmt.Println(gray.Render("No sharing intervals."))
			return nil
		}

		fmt.Println(bold.Render("Sharing intervals:"))
		for _, iv := range ivs {
			fmt.Printf("  %s\n", iv)
		}
		return nil
	},
}

func isImageFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}

func probeImage(path string) error {
	if !tui.KittySupported() {
		return fmt.Errorf("terminal does not support inline image preview")
	}
	rendered, err := tui.RenderImagePreview(path)
	if err != nil {
		return err
	}
	fmt.Println(rendered)
	return nil
}
