package chaosgame

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/stewi1014/chaosgame/linalg"
	"github.com/stewi1014/chaosgame/transforms"
)

// DefaultIterations is the escape-time iteration cap used when none is
// configured.
const DefaultIterations = 256

// escapeLimit bounds |x| + |y|; once an orbit exceeds it, it has diverged.
const escapeLimit = 4

// ExploreGame runs the escape-time algorithm: every pixel's coordinate is
// taken as the starting point of an orbit under the description's first
// transform, and the pixel records how many iterations the orbit stays
// inside the escape limit, capped at Iterations.
//
// Every pixel owns its buffer cell exclusively, so the sweep is spread
// across a pool of workers with a completion barrier; the buffer must not
// be read until Render returns.
type ExploreGame struct {
	notifier

	desc   *Description
	canvas *Canvas

	iterations int
	workers    int
}

// ExploreOption configures an ExploreGame.
type ExploreOption func(*ExploreGame)

// WithIterations sets the escape-time iteration cap.
func WithIterations(n int) ExploreOption {
	return func(g *ExploreGame) { g.iterations = n }
}

// WithWorkers sets the number of goroutines used for the sweep.
// The default is runtime.NumCPU.
func WithWorkers(n int) ExploreOption {
	return func(g *ExploreGame) { g.workers = n }
}

// NewExploreGame returns an ExploreGame rendering desc onto a width×height
// canvas.
func NewExploreGame(desc *Description, width, height int, opts ...ExploreOption) (*ExploreGame, error) {
	if desc == nil {
		return nil, ErrNilDescription
	}
	canvas, err := NewCanvas(width, height, desc.MinCoords(), desc.MaxCoords())
	if err != nil {
		return nil, err
	}

	g := &ExploreGame{
		desc:       desc,
		canvas:     canvas,
		iterations: DefaultIterations,
		workers:    runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.iterations < 1 {
		g.iterations = DefaultIterations
	}
	if g.workers < 1 {
		g.workers = 1
	}
	return g, nil
}

// Canvas returns the canvas the game renders into.
func (g *ExploreGame) Canvas() *Canvas { return g.canvas }

// Description returns the live description.
func (g *ExploreGame) Description() *Description { return g.desc }

// Iterations returns the escape-time iteration cap.
func (g *ExploreGame) Iterations() int { return g.iterations }

// SetTransform replaces the description's transforms with the single given
// transform, typically to change the explored Julia constant.
func (g *ExploreGame) SetTransform(t transforms.Transform2D) error {
	if err := g.desc.SetTransforms([]transforms.Transform2D{t}); err != nil {
		return err
	}
	g.notify(EventDescriptionChanged)
	return nil
}

// Render sweeps every pixel of the canvas, recording its escape count.
// The description is re-validated first, committing any interactive window
// changes made through Pan or Zoom. Re-running with identical inputs
// produces an identical buffer.
//
// Workers check ctx cooperatively once per row; on cancellation the buffer
// is left partially written and ctx's error is returned.
func (g *ExploreGame) Render(ctx context.Context) error {
	if err := g.desc.Validate(); err != nil {
		return fmt.Errorf("invalid description: %w", err)
	}
	t := g.desc.Transforms()[0]

	canvas := g.canvas
	height := canvas.Height()
	width := canvas.Width()

	chunk := (height + g.workers - 1) / g.workers

	start := time.Now()
	var wg sync.WaitGroup
	for begin := 0; begin < height; begin += chunk {
		end := begin + chunk
		if end > height {
			end = height
		}

		wg.Add(1)
		go func(begin, end int) {
			defer wg.Done()
			for row := begin; row < end; row++ {
				if ctx.Err() != nil {
					return
				}
				for col := 0; col < width; col++ {
					z := canvas.IndicesToCoords(row, col)
					iter := 0
					for math.Abs(z.X)+math.Abs(z.Y) <= escapeLimit && iter < g.iterations {
						z = t.Transform(z)
						iter++
					}
					canvas.SetPixel(col, row, uint32(iter))
				}
			}
		}(begin, end)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}

	Logger().Debug("explore sweep completed",
		"width", width,
		"height", height,
		"iterations", g.iterations,
		"elapsed", time.Since(start),
	)
	g.notify(EventRenderCompleted)
	return nil
}

// Pan shifts the window by a drag of (dx, dy) pixels, with dy positive
// downwards as mouse coordinates are. The window moves through the unchecked
// description setters so a gesture cannot fail mid-drag; the next Render
// commits the change.
func (g *ExploreGame) Pan(dx, dy float64) {
	span := g.desc.MaxCoords().Subtract(g.desc.MinCoords())
	shift := linalg.Vector2D{X: dx, Y: -dy}.
		Multiply(span).
		Divide(linalg.Vector2D{X: float64(g.canvas.Width()), Y: float64(g.canvas.Height())})

	g.setWindow(
		g.desc.MinCoords().Subtract(shift),
		g.desc.MaxCoords().Subtract(shift),
	)
}

// Zoom scales the window about its centre. Factors below 1 zoom in, factors
// above 1 zoom out. Like Pan, the change is committed by the next Render.
func (g *ExploreGame) Zoom(factor float64) {
	center := g.canvas.IndicesToCoords(g.canvas.Height()/2, g.canvas.Width()/2)
	g.setWindow(
		center.Subtract(center.Subtract(g.desc.MinCoords()).Scale(factor)),
		center.Add(g.desc.MaxCoords().Subtract(center).Scale(factor)),
	)
}

func (g *ExploreGame) setWindow(min, max linalg.Vector2D) {
	g.desc.SetMinCoords(min)
	g.desc.SetMaxCoords(max)
	g.canvas.SetWindow(min, max)
	g.notify(EventDescriptionChanged)
}
