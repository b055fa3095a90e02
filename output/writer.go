package output

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

var ErrWrite = errors.New("unable to write image")

// Writer persists a finished frame under name.
type Writer interface {
	Write(name string, img image.Image) error
}

// PNGWriter encodes frames as PNG files inside Dir.
type PNGWriter struct {
	Dir string
}

func NewPNGWriter(dir string) PNGWriter {
	return PNGWriter{Dir: dir}
}

func (w PNGWriter) Path(name string) string {
	return filepath.Join(w.Dir, name)
}

func (w PNGWriter) Write(name string, img image.Image) error {
	path := w.Path(name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}

	if err = png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	return nil
}
