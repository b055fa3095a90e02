package coordinator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"MandelbrotZoom/mandelbrot"
	"MandelbrotZoom/misc"
	"MandelbrotZoom/output"
	"MandelbrotZoom/task"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/bytedance/sonic"
)

const settingsBackupFile = "settings.json"

type Coordinator struct {
	frameCompletedCount uint
	frameFailedCount    uint
	logFile             *os.File
	logger              bslogger.Logger
	renderer            mandelbrot.Renderer
	settings            Settings
	writer              output.Writer
}

// NewCoordinator verifies the settings before any frame is rendered. A nil
// writer writes PNG files into the settings' output path.
func NewCoordinator(settings Settings, writer output.Writer) (*Coordinator, error) {
	if err := settings.Verify(); err != nil {
		return nil, err
	}

	coordinator := &Coordinator{
		logger:   bslogger.NewLogger("Coordinator", bslogger.Normal, nil),
		renderer: mandelbrot.NewRenderer(settings.MandelbrotSettings),
		settings: settings,
		writer:   writer,
	}
	if coordinator.writer == nil {
		if err := misc.EnsureDir(settings.OutputPath()); err != nil {
			return nil, err
		}
		coordinator.writer = output.NewPNGWriter(settings.OutputPath())
	}

	if settings.RunName != "" {
		if err := coordinator.prepareRun(); err != nil {
			return nil, err
		}
	}

	return coordinator, nil
}

// prepareRun creates the run folder with a settings backup and a log file so
// the run can be duplicated in the future.
func (c *Coordinator) prepareRun() error {
	runPath := c.settings.OutputPath()
	if err := misc.EnsureDir(runPath); err != nil {
		return err
	}

	bytes, err := sonic.Marshal(c.settings)
	if err != nil {
		return err
	}
	if _, err = misc.WriteFile(filepath.Join(runPath, settingsBackupFile), bytes); err != nil {
		return err
	}

	logFile, err := os.Create(filepath.Join(runPath, "coordinator.log"))
	if misc.CheckError(err, c.logger, misc.Warning) {
		return nil
	}
	c.logFile = logFile
	c.logger = bslogger.NewLogger("Coordinator", bslogger.Normal, logFile)
	return nil
}

// Tasks lists the frames of the run in render order.
func (c *Coordinator) Tasks() []task.Task {
	zoom := c.settings.ZoomSettings
	tasks := make([]task.Task, 0, zoom.FrameCount)
	for i := 0; i < zoom.FrameCount; i++ {
		frame := zoom.FrameStart + i
		tasks = append(tasks, task.NewTask(uint(i), frame, mandelbrot.Scale(frame, zoom.ScaleStep)))
	}
	return tasks
}

// Run renders the frames one after another. A failed write stops the run
// unless SkipFailedFrames is set, in which case all failures are returned together at the end.
func (c *Coordinator) Run(ctx context.Context) error {
	defer c.closeLog()

	zoom := c.settings.ZoomSettings
	tasks := c.Tasks()
	c.logger.Infof("Rendering %d frames at %dx%d", len(tasks), c.settings.MandelbrotSettings.Resolution, c.settings.MandelbrotSettings.Resolution)

	var failures []error
	startTime := time.Now()
	for _, frameTask := range tasks {
		view := mandelbrot.NewViewport(frameTask.Frame, zoom.ScaleStep, zoom.TargetX, zoom.TargetY)
		c.logger.Debugf("Frame %s %s", frameTask.String(), view.String())

		frameStart := time.Now()
		err := c.renderer.RenderTo(ctx, frameTask.FileName, view, c.writer)
		if err != nil {
			if c.settings.SkipFailedFrames && errors.Is(err, output.ErrWrite) {
				c.frameFailedCount++
				c.logger.Warningf("Skipping frame %d: %s", frameTask.Frame, err)
				failures = append(failures, err)
				continue
			}
			return err
		}

		c.frameCompletedCount++
		c.logger.Infof("Saved frame %s in %s [completed %d/%d]", frameTask.FileName, time.Since(frameStart), c.frameCompletedCount, len(tasks))
	}

	c.logger.Infof("Done rendering %d frames in %s (%d failed)", c.frameCompletedCount, time.Since(startTime), c.frameFailedCount)
	return errors.Join(failures...)
}

func (c *Coordinator) Completed() uint {
	return c.frameCompletedCount
}

func (c *Coordinator) Failed() uint {
	return c.frameFailedCount
}

func (c *Coordinator) closeLog() {
	if c.logFile == nil {
		return
	}
	logFile := c.logFile
	c.logFile = nil
	c.logger = bslogger.NewLogger("Coordinator", bslogger.Normal, nil)
	misc.CheckError(logFile.Close(), c.logger, misc.Warning)
}
