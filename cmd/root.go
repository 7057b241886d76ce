package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion sets the application version (called from main)
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "kartoza-meeting-compositor",
	Short: "Composite camera and screen-share recordings into one video",
	Long: `Kartoza Meeting Compositor turns the two tracks of a recorded meeting
into a single video.

It reads the camera recording and the screen-share recording, finds the
"Sharing Started" / "Sharing Stopped" chapter markers embedded in the
screen-share file, and compiles them into an ffmpeg filtergraph that
switches between a full-frame speaker view and a combined layout while
sharing is active.

Layouts:
  - side-by-side  camera and slides in equal panes
  - diagonal      large slides with the camera inset bottom-right`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(composeCmd)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(depsCmd)
	rootCmd.AddCommand(versionCmd)
}
