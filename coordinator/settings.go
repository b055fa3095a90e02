package coordinator

import (
	"fmt"
	"os"
	"path/filepath"

	"MandelbrotZoom/mandelbrot"
	"MandelbrotZoom/misc"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/bytedance/sonic"
)

type Settings struct {
	logger bslogger.Logger

	MandelbrotSettings mandelbrot.Settings
	RunName            string
	SavePath           string
	SkipFailedFrames   bool
	ZoomSettings       ZoomSettings
}

// LoadSettings reads a JSON settings file. Missing values are filled in by Verify.
func LoadSettings(settingsFile string) (Settings, error) {
	var s Settings
	fileBytes, err := misc.ReadFile(settingsFile)
	if err != nil {
		return s, err
	}
	if err = sonic.Unmarshal(fileBytes, &s); err != nil {
		return s, fmt.Errorf("unable to parse %s: %w", settingsFile, err)
	}
	return s, nil
}

// OutputPath is the directory frames are written to.
func (s *Settings) OutputPath() string {
	return filepath.Join(s.SavePath, s.RunName)
}

func (s *Settings) String() string {
	output := "\nCoordinator settings\n"
	output += fmt.Sprintf("Output Path: %s\n", s.OutputPath())
	output += fmt.Sprintf("Skip Failed Frames: %t\n", s.SkipFailedFrames)
	return output
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("CoordinatorSettings", bslogger.Normal, nil)

	if err := s.MandelbrotSettings.Verify(); err != nil {
		return err
	}
	if err := s.ZoomSettings.Verify(); err != nil {
		return err
	}
	// RunName defaults to empty so frames land directly in SavePath
	if s.SavePath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("unable to find working directory: %w", err)
		}
		s.SavePath = wd
	}

	s.logger.Debug(s.String() + s.ZoomSettings.String())
	return nil
}
