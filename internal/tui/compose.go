// Package tui renders interactive progress for compose runs using
// bubbletea.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Step identifies one stage of the compose pipeline.
type Step int

const (
	StepProbeCamera Step = iota
	StepProbeSlides
	StepCompile
	StepRender
	stepCount
)

var stepNames = [stepCount]string{
	"Probing camera stream",
	"Reading share chapters",
	"Compiling filtergraph",
	"Rendering output",
}

// StepName returns the display name of a pipeline step.
func StepName(s Step) string {
	if s < 0 || s >= stepCount {
		return "Unknown step"
	}
	return stepNames[s]
}

// StepStatus represents the status of a pipeline step
type StepStatus int

const (
	StepPending StepStatus = iota
	StepRunning
	StepComplete
	StepFailed
	StepSkipped
)

// Messages sent into the model by the pipeline driver.
type (
	// StepStartedMsg marks a step as running.
	StepStartedMsg struct{ Step Step }
	// StepFinishedMsg marks a step complete, skipped or failed.
	StepFinishedMsg struct {
		Step    Step
		Skipped bool
		Err     error
	}
	// RenderPercentMsg reports encode progress in [0, 100].
	RenderPercentMsg struct{ Percent float64 }
	// DoneMsg ends the program; Err is the pipeline outcome.
	DoneMsg struct{ Err error }
)

// ComposeModel is the bubbletea model for a compose run.
type ComposeModel struct {
	output    string
	statuses  [stepCount]StepStatus
	spinner   spinner.Model
	progress  progress.Model
	percent   float64
	startTime time.Time
	width     int
	err       error
	done      bool
}

// NewComposeModel creates the progress model for the given output file.
func NewComposeModel(output string) *ComposeModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorOrange)

	return &ComposeModel{
		output:    output,
		spinner:   sp,
		progress:  progress.New(progress.WithDefaultGradient()),
		startTime: time.Now(),
		width:     80,
	}
}

// Err returns the pipeline outcome once the program has finished.
func (m *ComposeModel) Err() error {
	return m.err
}

func (m *ComposeModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *ComposeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(msg.Width-8, 60)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = fmt.Errorf("interrupted")
			return m, tea.Quit
		}
		return m, nil

	case StepStartedMsg:
		m.statuses[msg.Step] = StepRunning
		return m, nil

	case StepFinishedMsg:
		switch {
		case msg.Err != nil:
			m.statuses[msg.Step] = StepFailed
		case msg.Skipped:
			m.statuses[msg.Step] = StepSkipped
		default:
			m.statuses[msg.Step] = StepComplete
		}
		return m, nil

	case RenderPercentMsg:
		m.percent = msg.Percent
		return m, m.progress.SetPercent(msg.Percent / 100)

	case DoneMsg:
		m.err = msg.Err
		m.done = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		pm, cmd := m.progress.Update(msg)
		m.progress = pm.(progress.Model)
		return m, cmd
	}

	return m, nil
}

func (m *ComposeModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Compositing " + m.output))
	b.WriteString("\n")

	for step := Step(0); step < stepCount; step++ {
		b.WriteString(m.renderStep(step))
		b.WriteString("\n")
	}

	if m.statuses[StepRender] == StepRunning {
		b.WriteString("\n  " + m.progress.View() + fmt.Sprintf(" %3.0f%%", m.percent) + "\n")
	}

	elapsed := time.Since(m.startTime).Round(time.Second)
	b.WriteString(summaryStyle.Render(fmt.Sprintf("Elapsed: %s", elapsed)))
	b.WriteString("\n")

	return b.String()
}

func (m *ComposeModel) renderStep(step Step) string {
	name := stepNames[step]
	switch m.statuses[step] {
	case StepRunning:
		return fmt.Sprintf("  %s %s", m.spinner.View(), name)
	case StepComplete:
		return stepDoneStyle.Render("  ✓ " + name)
	case StepFailed:
		return stepFailedStyle.Render("  ✗ " + name)
	case StepSkipped:
		return stepSkippedStyle.Render("  - " + name)
	default:
		return stepPendingStyle.Render("  · " + name)
	}
}
