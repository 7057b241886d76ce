package notify

import (
	"os/exec"
)

// Urgency levels for notifications
type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyNormal   Urgency = "normal"
	UrgencyCritical Urgency = "critical"
)

// Send sends a desktop notification using notify-send
func Send(title, body string, urgency Urgency, icon string) error {
	args := []string{title, body}

	if urgency != "" {
		args = append(args, "--urgency="+string(urgency))
	}

	if icon != "" {
		args = append(args, "--icon="+icon)
	}

	cmd := exec.Command("notify-send", args...)
	return cmd.Run()
}

// Info sends an informational notification
func Info(title, body string) error {
	return Send(title, body, UrgencyNormal, "video-x-generic")
}

// Warning sends a warning notification
func Warning(title, body string) error {
	return Send(title, body, UrgencyLow, "dialog-warning")
}

// Error sends an error notification
func Error(title, body string) error {
	return Send(title, body, UrgencyCritical, "dialog-error")
}

// ComposeStarted notifies that rendering has begun
func ComposeStarted(output string) error {
	return Info("Meeting Compositor", "Rendering "+output+"...")
}

// ComposeComplete notifies that the composited video is ready
func ComposeComplete(output string) error {
	return Info("Meeting Compositor", output+" saved!")
}

// ComposeFailed notifies that rendering failed
func ComposeFailed(output string) error {
	return Error("Meeting Compositor", "Failed to render "+output)
}
