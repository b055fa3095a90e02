package output

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestPNGWriterWrite(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	img.SetRGBA(1, 2, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	w := NewPNGWriter(dir)
	if err := w.Write("fractal_0.png", img); err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "fractal_0.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
	r, g, b, _ := decoded.At(1, 2).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("pixel = %d %d %d", r>>8, g>>8, b>>8)
	}
}

func TestPNGWriterUnwritablePath(t *testing.T) {
	w := NewPNGWriter(filepath.Join(t.TempDir(), "missing", "dir"))
	err := w.Write("fractal_0.png", image.NewRGBA(image.Rect(0, 0, 1, 1)))
	if !errors.Is(err, ErrWrite) {
		t.Fatalf("error = %v, want ErrWrite", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, should wrap the os error", err)
	}
}
