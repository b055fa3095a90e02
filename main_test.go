package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"MandelbrotZoom/task"
)

func TestLoadSettingsFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	contents := `{"MandelbrotSettings": {"Resolution": 512, "MaxIterations": 100}, "ZoomSettings": {"FrameCount": 4}}`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := &options{}
	cmd := newCmd(opts)
	if err := cmd.ParseFlags([]string{"--settings", path, "--resolution", "64", "--task-generation", "2", "--skip-failed"}); err != nil {
		t.Fatal(err)
	}

	settings, err := loadSettings(cmd, opts)
	if err != nil {
		t.Fatal(err)
	}
	if settings.MandelbrotSettings.Resolution != 64 {
		t.Errorf("resolution = %d, want the flag value", settings.MandelbrotSettings.Resolution)
	}
	if settings.MandelbrotSettings.MaxIterations != 100 || settings.ZoomSettings.FrameCount != 4 {
		t.Errorf("file values lost: %+v", settings)
	}
	if settings.MandelbrotSettings.TaskGeneration != task.Image || !settings.SkipFailedFrames {
		t.Errorf("flags not applied: %+v", settings)
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	cmd := mainCmd()
	cmd.SetArgs([]string{"--resolution", "8", "--max-iterations", "20", "--frames", "2", "--out", dir})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"fractal_0.png", "fractal_500000.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing frame %s: %v", name, err)
		}
	}
}

func TestRenderCommandRejectsArgs(t *testing.T) {
	cmd := mainCmd()
	cmd.SetArgs([]string{"extra"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("expected positional arguments to be rejected")
	}
}

func TestLoadSettingsRejectsNonPositiveFlags(t *testing.T) {
	for _, args := range [][]string{{"--frames", "0"}, {"--max-iterations", "-3"}, {"--resolution", "0"}} {
		opts := &options{}
		cmd := newCmd(opts)
		if err := cmd.ParseFlags(args); err != nil {
			t.Fatal(err)
		}
		if _, err := loadSettings(cmd, opts); err == nil {
			t.Errorf("%v accepted", args)
		}
	}
}

func TestRenderCommandReportsErrorOnce(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	var stderr bytes.Buffer
	cmd := mainCmd()
	cmd.SetArgs([]string{"--resolution", "4", "--max-iterations", "5", "--frames", "1", "--out", filepath.Join(file, "frames")})
	cmd.SetOut(io.Discard)
	cmd.SetErr(&stderr)
	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Fatal("expected writing below a file to fail")
	}
	if stderr.Len() != 0 {
		t.Errorf("cobra printed the error itself: %q", stderr.String())
	}
}
