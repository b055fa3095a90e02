package mandelbrot

import (
	"context"
	"fmt"
	"image"
	"time"

	"MandelbrotZoom/output"
	"MandelbrotZoom/palette"
	"MandelbrotZoom/task"

	"github.com/BrugadaSyndrome/bslogger"
	"golang.org/x/sync/errgroup"
)

type Renderer struct {
	logger   bslogger.Logger
	settings Settings
}

// NewRenderer expects settings that already passed Verify.
func NewRenderer(settings Settings) Renderer {
	return Renderer{
		logger:   bslogger.NewLogger("Renderer", bslogger.Normal, nil),
		settings: settings,
	}
}

// Render computes every pixel of one frame. Spans are shared out to at most
// Workers goroutines; each span owns a disjoint part of the image.
func (r *Renderer) Render(ctx context.Context, view Viewport) (*image.RGBA, error) {
	gradient, err := palette.NewGradient(r.settings.Stops, r.settings.MaxIterations)
	if err != nil {
		return nil, err
	}

	resolution := r.settings.Resolution
	img := image.NewRGBA(image.Rect(0, 0, resolution, resolution))
	spans := task.Spans(r.settings.TaskGeneration, img.Bounds())

	startTime := time.Now()
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(r.workers())
	for _, span := range spans {
		if groupCtx.Err() != nil {
			break
		}
		span := span
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			r.renderSpan(img, span, view, gradient)
			return nil
		})
	}
	if err = group.Wait(); err != nil {
		return nil, err
	}
	// the loop may have stopped early without any goroutine seeing the cancel
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	r.logger.Debugf("Rendered %d spans of %s in %s", len(spans), view.String(), time.Since(startTime))
	return img, nil
}

// RenderTo renders a frame and hands it to writer under name.
func (r *Renderer) RenderTo(ctx context.Context, name string, view Viewport, writer output.Writer) error {
	img, err := r.Render(ctx, view)
	if err != nil {
		return err
	}
	if err = writer.Write(name, img); err != nil {
		return fmt.Errorf("frame %s: %w", name, err)
	}
	return nil
}

func (r *Renderer) renderSpan(img *image.RGBA, span image.Rectangle, view Viewport, gradient palette.Gradient) {
	resolution := r.settings.Resolution
	maxIterations := r.settings.MaxIterations

	for row := span.Min.Y; row < span.Max.Y; row++ {
		for column := span.Min.X; column < span.Max.X; column++ {
			x, y := view.Point(column, row, resolution)
			iterations := EscapeTime(x, y, maxIterations)

			pixel, ok := gradient.At(iterations)
			if !ok {
				pixel = r.settings.escapeColor
			}
			img.SetRGBA(column, row, pixel.RGBA())
		}
	}
}

func (r *Renderer) workers() int {
	if r.settings.Workers < 1 {
		return 1
	}
	return r.settings.Workers
}
