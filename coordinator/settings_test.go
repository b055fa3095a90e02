package coordinator

import (
	"os"
	"path/filepath"
	"testing"

	"MandelbrotZoom/task"
)

func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	contents := `{
		"MandelbrotSettings": {"Resolution": 512, "MaxIterations": 1000, "Stops": ["#000000", "#FFFFFF"], "TaskGeneration": 1},
		"RunName": "deep",
		"SkipFailedFrames": true,
		"ZoomSettings": {"FrameCount": 4, "ScaleStep": 1000, "TargetX": -0.75, "TargetY": 0.1}
	}`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.MandelbrotSettings.Resolution != 512 || s.MandelbrotSettings.TaskGeneration != task.Column {
		t.Errorf("mandelbrot settings = %+v", s.MandelbrotSettings)
	}
	if s.RunName != "deep" || !s.SkipFailedFrames {
		t.Errorf("settings = %+v", s)
	}
	if s.ZoomSettings.FrameCount != 4 || s.ZoomSettings.TargetX != -0.75 {
		t.Errorf("zoom settings = %+v", s.ZoomSettings)
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	if _, err := LoadSettings(""); err == nil {
		t.Error("expected an error for an empty file name")
	}
	if _, err := LoadSettings(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(path); err == nil {
		t.Error("expected an error for malformed json")
	}
}

func TestZoomSettingsVerify(t *testing.T) {
	var zs ZoomSettings
	if err := zs.Verify(); err != nil {
		t.Fatal(err)
	}
	if zs.FrameCount != 10 || zs.ScaleStep != 500000 || zs.TargetX != defaultTargetX {
		t.Errorf("defaults = %+v", zs)
	}

	zs = ZoomSettings{TargetX: 5, TargetY: 0}
	if err := zs.Verify(); err == nil {
		t.Error("expected an error for a target outside the plane of interest")
	}
}
