package mandelbrot

import (
	"fmt"
	"runtime"

	"MandelbrotZoom/palette"
	"MandelbrotZoom/task"

	"github.com/BrugadaSyndrome/bslogger"
)

var DefaultStops = []string{"#1C448E", "#6F8695", "#CEC288", "#FFE381", "#DBFE87"}

type Settings struct {
	logger      bslogger.Logger
	escapeColor palette.Color
	stops       []palette.Color

	EscapeColor    string
	MaxIterations  int
	Resolution     int
	Stops          []string
	TaskGeneration task.Generation
	Workers        int
}

// Verify fills unset values with defaults and rejects values no render can use.
func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("MandelbrotSettings", bslogger.Normal, nil)

	if s.EscapeColor == "" {
		s.EscapeColor = "#000000"
	}
	escapeColor, err := palette.ParseHex(s.EscapeColor)
	if err != nil {
		return fmt.Errorf("escape color: %w", err)
	}
	s.escapeColor = escapeColor

	if s.MaxIterations <= 0 {
		s.MaxIterations = 5000
	}
	if s.Resolution <= 0 {
		s.Resolution = 2048
	}
	if len(s.Stops) == 0 {
		s.Stops = append([]string(nil), DefaultStops...)
	}
	if len(s.Stops) < 2 {
		return fmt.Errorf("%w: got %d", palette.ErrTooFewStops, len(s.Stops))
	}
	if s.stops, err = palette.ParseStops(s.Stops); err != nil {
		return err
	}
	if s.TaskGeneration < task.Row || s.TaskGeneration > task.Image {
		s.logger.Warningf("Unknown task generation %d, using %s", s.TaskGeneration, task.Row)
		s.TaskGeneration = task.Row
	}
	if s.Workers <= 0 {
		s.Workers = runtime.NumCPU()
	}

	s.logger.Debug(s.String())
	return nil
}

func (s *Settings) String() string {
	output := "\nMandelbrot settings\n"
	output += fmt.Sprintf("Escape Color: %s\n", s.EscapeColor)
	output += fmt.Sprintf("Max Iterations: %d\n", s.MaxIterations)
	output += fmt.Sprintf("Resolution: %d\n", s.Resolution)
	output += fmt.Sprintf("Stops: %v\n", s.NormalizedStops())
	output += fmt.Sprintf("Task Generation: %s\n", s.TaskGeneration)
	output += fmt.Sprintf("Workers: %d\n", s.Workers)
	return output
}

// NormalizedStops returns the verified stops as "#rrggbb", or the raw stops before Verify.
func (s *Settings) NormalizedStops() []string {
	if len(s.stops) == 0 {
		return s.Stops
	}
	stops := make([]string, len(s.stops))
	for i, stop := range s.stops {
		stops[i] = stop.Hex()
	}
	return stops
}
