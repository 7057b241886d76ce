package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kartoza/kartoza-meeting-compositor/internal/config"
	"github.com/kartoza/kartoza-meeting-compositor/internal/deps"
	"github.com/kartoza/kartoza-meeting-compositor/internal/filtergraph"
	"github.com/kartoza/kartoza-meeting-compositor/internal/intervals"
	"github.com/kartoza/kartoza-meeting-compositor/internal/layout"
	"github.com/kartoza/kartoza-meeting-compositor/internal/models"
	"github.com/kartoza/kartoza-meeting-compositor/internal/notify"
	"github.com/kartoza/kartoza-meeting-compositor/internal/probe"
	"github.com/kartoza/kartoza-meeting-compositor/internal/render"
	"github.com/kartoza/kartoza-meeting-compositor/internal/tui"
	"github.com/spf13/cobra"
)

var (
	startAt         string
	endAt           string
	layoutName      string
	backgroundColor string
	backgroundImage string
	dimensions      string
	dryRun          bool
	noTUI           bool
)

var composeCmd = &cobra.Command{
	Use:   "compose CAMERA SLIDES OUTPUT",
	Short: "Composite a camera and a screen-share recording",
	Long: `Composite a camera recording and a screen-share recording into one video.

The screen-share file's chapter markers decide the timeline: outside a
"Sharing Started" / "Sharing Stopped" pair the output shows the camera
full frame, inside it the chosen combined layout.

Examples:
  kartoza-meeting-compositor compose camera.mp4 slides.mp4 out.mp4
  kartoza-meeting-compositor compose camera.mp4 slides.mp4 out.mp4 -l diagonal
  kartoza-meeting-compositor compose camera.mp4 slides.mp4 out.mp4 --start 1:30 --end 45:00
  kartoza-meeting-compositor compose camera.mp4 slides.mp4 out.mp4 -d 720p --dry-run`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if missing := deps.MissingRequired(); len(missing) > 0 {
			return fmt.Errorf("missing dependencies:\n%s", deps.FormatMissing(missing))
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		opts, err := buildComposeOptions(args, cfg)
		if err != nil {
			return err
		}

		if dryRun {
			return runComposeDry(opts)
		}
		if noTUI {
			return runComposePlain(opts)
		}
		return runComposeTUI(opts)
	},
}

func init() {
	composeCmd.Flags().StringVar(&startAt, "start", "", "Trim start timestamp (HH:MM:SS, MM:SS or seconds)")
	composeCmd.Flags().StringVar(&endAt, "end", "", "Trim end timestamp (HH:MM:SS, MM:SS or seconds)")
	composeCmd.Flags().StringVarP(&layoutName, "layout", "l", "", "Sharing layout: side-by-side or diagonal (default from config)")
	composeCmd.Flags().StringVar(&backgroundColor, "background-color", "", "Background color behind the panes (name or #RRGGBB)")
	composeCmd.Flags().StringVar(&backgroundImage, "background-image", "", "Background image behind the panes")
	composeCmd.Flags().StringVarP(&dimensions, "dimensions", "d", "", "Output dimensions (WxH or 720p/1080p), default: camera resolution")
	composeCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the ffmpeg command instead of running it")
	composeCmd.Flags().BoolVar(&noTUI, "no-tui", false, "Plain line-based progress output")
}

// composeOptions is the fully resolved input set for one run. Flags and
// config are merged here once so the pipeline itself stays declarative.
type composeOptions struct {
	CameraFile string
	SlidesFile string
	OutputFile string
	Layout     models.LayoutMode
	Background models.BackgroundSpec
	Canvas     models.StreamResolution // zero means use camera resolution
	Trim       *models.TrimWindow
	CRF        int
	Preset     string
	Notify     bool
}

func buildComposeOptions(args []string, cfg *config.Config) (*composeOptions, error) {
	opts := &composeOptions{
		CameraFile: args[0],
		SlidesFile: args[1],
		OutputFile: args[2],
		CRF:        cfg.EncoderCRF,
		Preset:     cfg.EncoderPreset,
		Notify:     cfg.Notifications,
	}

	name := layoutName
	if name == "" {
		name = string(cfg.DefaultLayout)
	}
	mode, err := models.ParseLayoutMode(name)
	if err != nil {
		return nil, err
	}
	opts.Layout = mode

	bgImage := backgroundImage
	if bgImage == "" {
		bgImage = cfg.BackgroundImage
	}
	bgColor := backgroundColor
	if bgColor == "" {
		bgColor = cfg.BackgroundColor
	}
	if bgImage != "" {
		opts.Background = models.ImageFile(bgImage, bgColor)
	} else {
		opts.Background = models.SolidColor(bgColor)
	}

	if dimensions != "" {
		res, err := models.ParseDimensions(dimensions)
		if err != nil {
			return nil, err
		}
		opts.Canvas = res
	}

	if startAt != "" || endAt != "" {
		w := &models.TrimWindow{}
		if startAt != "" {
			if w.Start, err = models.ParseTimestamp(startAt); err != nil {
				return nil, fmt.Errorf("invalid --start: %w", err)
			}
		}
		if endAt != "" {
			if w.End, err = models.ParseTimestamp(endAt); err != nil {
				return nil, fmt.Errorf("invalid --end: %w", err)
			}
			w.HasEnd = true
			if w.End <= w.Start {
				return nil, fmt.Errorf("--end (%s) must be after --start (%s)", endAt, startAt)
			}
		}
		opts.Trim = w
	}

	return opts, nil
}

// runPipeline probes both inputs, compiles the filtergraph and builds
// the render job. Step and progress events go through the callbacks so
// the same pipeline drives the TUI, plain output and dry runs.
func runPipeline(opts *composeOptions, started func(tui.Step), finished func(tui.Step, error), percent render.PercentFunc, execute bool) (*render.Job, error) {
	// Probe camera
	started(tui.StepProbeCamera)
	camera, err := probe.Probe(opts.CameraFile)
	if err == nil && !camera.HasVideo() {
		err = fmt.Errorf("%s has no video stream", opts.CameraFile)
	}
	var native models.StreamResolution
	if err == nil {
		native, err = camera.Resolution()
	}
	finished(tui.StepProbeCamera, err)
	if err != nil {
		return nil, err
	}

	canvas := opts.Canvas
	scaleCamera := false
	if canvas.Valid() {
		scaleCamera = canvas != native
	} else {
		canvas = native
	}

	// Probe slides for chapter markers
	started(tui.StepProbeSlides)
	slides, err := probe.Probe(opts.SlidesFile)
	var ivs []models.SharingInterval
	if err == nil {
		ivs, err = intervals.Extract(slides.Markers(), nil)
	}
	finished(tui.StepProbeSlides, err)
	if err != nil {
		return nil, err
	}

	// Compile the filtergraph
	started(tui.StepCompile)
	geom, err := layout.Compute(opts.Layout, canvas)
	var program *filtergraph.Program
	if err == nil {
		program, err = filtergraph.Compile(filtergraph.Inputs{
			Intervals:   ivs,
			Canvas:      canvas,
			Geometry:    geom,
			Background:  opts.Background,
			Trim:        opts.Trim,
			ScaleCamera: scaleCamera,
		})
	}
	finished(tui.StepCompile, err)
	if err != nil {
		return nil, err
	}

	job := &render.Job{
		CameraFile: opts.CameraFile,
		SlidesFile: opts.SlidesFile,
		OutputFile: opts.OutputFile,
		Program:    program,
		Trim:       opts.Trim,
		Duration:   outputDuration(opts.Trim, camera.Duration),
		CRF:        opts.CRF,
		Preset:     opts.Preset,
	}

	if !execute {
		return job, nil
	}

	started(tui.StepRender)
	err = render.Run(*job, percent)
	finished(tui.StepRender, err)
	if err != nil {
		return nil, err
	}
	return job, nil
}

// outputDuration estimates the rendered length for progress reporting.
func outputDuration(trim *models.TrimWindow, source float64) float64 {
	if trim == nil {
		return source
	}
	if trim.HasEnd {
		return trim.Duration()
	}
	if d := source - trim.Start; d > 0 {
		return d
	}
	return 0
}

func runComposeDry(opts *composeOptions) error {
	noop := func(tui.Step) {}
	noopDone := func(tui.Step, error) {}
	job, err := runPipeline(opts, noop, noopDone, nil, false)
	if err != nil {
		return err
	}
	fmt.Println(render.CommandLine(*job))
	return nil
}

func runComposePlain(opts *composeOptions) error {
	if opts.Background.Kind == models.BackgroundImage && tui.KittySupported() {
		if preview, err := tui.RenderImagePreview(opts.Background.Image); err == nil {
			fmt.Println("Background image:")
			fmt.Println(preview)
		}
	}

	if opts.Notify {
		_ = notify.ComposeStarted(opts.OutputFile)
	}

	started := func(step tui.Step) {
		fmt.Printf("%s...\n", tui.StepName(step))
	}
	finished := func(step tui.Step, err error) {
		if err != nil {
			fmt.Printf("%s failed: %v\n", tui.StepName(step), err)
		}
	}
	lastPercent := -1
	percent := func(p float64) {
		if int(p) != lastPercent {
			lastPercent = int(p)
			fmt.Printf("\rRendering: %3d%%", lastPercent)
		}
	}

	_, err := runPipeline(opts, started, finished, percent, true)
	fmt.Println()
	if err != nil {
		if opts.Notify {
			_ = notify.ComposeFailed(opts.OutputFile)
		}
		return err
	}
	if opts.Notify {
		_ = notify.ComposeComplete(opts.OutputFile)
	}
	fmt.Printf("Wrote %s\n", opts.OutputFile)
	return nil
}

func runComposeTUI(opts *composeOptions) error {
	model := tui.NewComposeModel(opts.OutputFile)
	program := tea.NewProgram(model)

	go func() {
		started := func(step tui.Step) {
			program.Send(tui.StepStartedMsg{Step: step})
		}
		finished := func(step tui.Step, err error) {
			program.Send(tui.StepFinishedMsg{Step: step, Err: err})
		}
		percent := func(p float64) {
			program.Send(tui.RenderPercentMsg{Percent: p})
		}

		if opts.Notify {
			_ = notify.ComposeStarted(opts.OutputFile)
		}
		_, err := runPipeline(opts, started, finished, percent, true)
		program.Send(tui.DoneMsg{Err: err})
	}()

	final, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(*tui.ComposeModel); ok && m.Err() != nil {
		if opts.Notify {
			_ = notify.ComposeFailed(opts.OutputFile)
		}
		return m.Err()
	}
	if opts.Notify {
		_ = notify.ComposeComplete(opts.OutputFile)
	}
	return nil
}
