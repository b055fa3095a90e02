package coordinator

import "fmt"

const (
	defaultTargetX = -0.6582034218739634
	defaultTargetY = 0.44967917993930356
)

// ZoomSettings describes which frames are rendered and where they zoom to.
type ZoomSettings struct {
	FrameCount int
	FrameStart int
	ScaleStep  float64
	TargetX    float64
	TargetY    float64
}

func (zs *ZoomSettings) Verify() error {
	if zs.FrameCount <= 0 {
		zs.FrameCount = 10
	}
	if zs.FrameStart < 0 {
		zs.FrameStart = 0
	}
	if zs.ScaleStep <= 0 {
		zs.ScaleStep = 500000
	}
	// the origin lies inside the set, so an unset target means the default one
	if zs.TargetX == 0 && zs.TargetY == 0 {
		zs.TargetX = defaultTargetX
		zs.TargetY = defaultTargetY
	}
	if zs.TargetX < -4 || zs.TargetX > 4 || zs.TargetY < -4 || zs.TargetY > 4 {
		return fmt.Errorf("target (%g, %g) is outside [-4, 4]", zs.TargetX, zs.TargetY)
	}
	return nil
}

func (zs *ZoomSettings) String() string {
	output := "\nZoom settings\n"
	output += fmt.Sprintf("Frames: %d starting at %d\n", zs.FrameCount, zs.FrameStart)
	output += fmt.Sprintf("Scale Step: %g\n", zs.ScaleStep)
	output += fmt.Sprintf("Target: (%v, %v)\n", zs.TargetX, zs.TargetY)
	return output
}
