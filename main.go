package main

import (
	"context"
	"fmt"
	"os"

	"MandelbrotZoom/coordinator"
	"MandelbrotZoom/misc"
	"MandelbrotZoom/task"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/google/gops/agent"
	"github.com/spf13/cobra"
)

var logger = bslogger.NewLogger("MandelbrotZoom", bslogger.Normal, nil)

type options struct {
	enableGops     bool
	frames         int
	maxIterations  int
	resolution     int
	savePath       string
	settingsFile   string
	skipFailed     bool
	taskGeneration int
	workers        int
}

func mainCmd() *cobra.Command {
	return newCmd(&options{})
}

func newCmd(opts *options) *cobra.Command {
	// main reports a failed run through the logger, so cobra stays quiet about it
	cmd := &cobra.Command{
		Use:           "mandelbrot-zoom",
		Short:         "Render a sequence of Mandelbrot frames zooming in on a fixed point",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.settingsFile, "settings", "", "JSON settings file")
	flags.IntVar(&opts.resolution, "resolution", 0, "width and height of each frame in pixels")
	flags.IntVar(&opts.maxIterations, "max-iterations", 0, "iterations before a point counts as inside the set")
	flags.IntVar(&opts.frames, "frames", 0, "number of frames to render")
	flags.IntVar(&opts.workers, "workers", 0, "goroutines rendering each frame (default number of CPUs)")
	flags.IntVar(&opts.taskGeneration, "task-generation", int(task.Row), "how a frame is split between workers: 0 rows, 1 columns, 2 whole image")
	flags.StringVar(&opts.savePath, "out", "", "directory frames are written to (default working directory)")
	flags.BoolVar(&opts.skipFailed, "skip-failed", false, "keep rendering when a frame cannot be written")
	flags.BoolVar(&opts.enableGops, "gops", false, "start a gops diagnostics agent")

	return cmd
}

func runCmd(cmd *cobra.Command, opts *options) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	if opts.enableGops {
		if err := agent.Listen(agent.Options{}); err != nil {
			return fmt.Errorf("unable to start gops agent: %w", err)
		}
		defer agent.Close()
	}

	settings, err := loadSettings(cmd, opts)
	if err != nil {
		return err
	}

	c, err := coordinator.NewCoordinator(settings, nil)
	if err != nil {
		return err
	}
	return c.Run(cmd.Context())
}

// loadSettings starts from the settings file, if any, and applies flags the user set explicitly.
func loadSettings(cmd *cobra.Command, opts *options) (coordinator.Settings, error) {
	var settings coordinator.Settings
	if opts.settingsFile != "" {
		var err error
		settings, err = coordinator.LoadSettings(opts.settingsFile)
		if err != nil {
			return settings, err
		}
	}

	flags := cmd.Flags()
	for _, name := range []string{"resolution", "max-iterations", "frames"} {
		if flags.Changed(name) {
			if value, _ := flags.GetInt(name); value <= 0 {
				return settings, fmt.Errorf("--%s must be positive, got %d", name, value)
			}
		}
	}
	if flags.Changed("resolution") {
		settings.MandelbrotSettings.Resolution = opts.resolution
	}
	if flags.Changed("max-iterations") {
		settings.MandelbrotSettings.MaxIterations = opts.maxIterations
	}
	if flags.Changed("workers") {
		settings.MandelbrotSettings.Workers = opts.workers
	}
	if flags.Changed("task-generation") {
		settings.MandelbrotSettings.TaskGeneration = task.Generation(opts.taskGeneration)
	}
	if flags.Changed("frames") {
		settings.ZoomSettings.FrameCount = opts.frames
	}
	if flags.Changed("out") {
		settings.SavePath = opts.savePath
	}
	if flags.Changed("skip-failed") {
		settings.SkipFailedFrames = opts.skipFailed
	}
	return settings, nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// Any failure from the renderer or the palette ends up here.
		misc.CheckError(err, logger, misc.Fatal)
		os.Exit(1)
	}
}
