package task

import (
	"fmt"
	"image"
	"strconv"
)

const (
	Row Generation = iota
	Column
	Image
)

// Generation decides how a frame is split into spans for the render pool.
type Generation int

func (g Generation) String() string {
	if g < Row || g > Image {
		return fmt.Sprintf("Generation(%d)", int(g))
	}
	return []string{
		"Row", "Column", "Image",
	}[g]
}

// Task is one frame of a zoom run.
type Task struct {
	ID       uint
	Frame    int
	Scale    float64
	FileName string
}

func NewTask(id uint, frame int, scale float64) Task {
	return Task{
		ID:       id,
		Frame:    frame,
		Scale:    scale,
		FileName: FileName(scale),
	}
}

func (t *Task) String() string {
	output := "{Task "
	output += fmt.Sprintf("ID: %d ", t.ID)
	output += fmt.Sprintf("Frame: %d ", t.Frame)
	output += fmt.Sprintf("Scale: %s ", strconv.FormatFloat(t.Scale, 'f', -1, 64))
	output += fmt.Sprintf("File: %s}", t.FileName)
	return output
}

// FileName formats the scale in its shortest decimal form, e.g. fractal_500000.png.
func FileName(scale float64) string {
	return "fractal_" + strconv.FormatFloat(scale, 'f', -1, 64) + ".png"
}

// Spans splits bounds into rectangles that cover every pixel exactly once.
func Spans(generation Generation, bounds image.Rectangle) []image.Rectangle {
	if bounds.Empty() {
		return nil
	}

	switch generation {
	case Row:
		spans := make([]image.Rectangle, 0, bounds.Dy())
		for row := bounds.Min.Y; row < bounds.Max.Y; row++ {
			spans = append(spans, image.Rect(bounds.Min.X, row, bounds.Max.X, row+1))
		}
		return spans
	case Column:
		spans := make([]image.Rectangle, 0, bounds.Dx())
		for column := bounds.Min.X; column < bounds.Max.X; column++ {
			spans = append(spans, image.Rect(column, bounds.Min.Y, column+1, bounds.Max.Y))
		}
		return spans
	default:
		return []image.Rectangle{bounds}
	}
}
