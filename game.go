package chaosgame

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/stewi1014/chaosgame/linalg"
)

// MaxSteps is the largest step count a single RunSteps call accepts.
const MaxSteps = 10_000_000

// How often the iteration loop checks for cancellation.
const cancelCheckInterval = 4096

var (
	ErrStepCount      = errors.New("step count must be between 1 and 10000000")
	ErrNilDescription = errors.New("description must not be nil")
)

// ChaosGame runs the random iterated-function-system algorithm: each step
// picks one of the description's transforms at random (uniformly, or weighted
// by the description's probabilities), applies it to the running point and
// accumulates the result into the canvas.
//
// The running point starts at the origin. The seed itself is never plotted;
// every step's output is. The first plotted points may lie off the attractor,
// which for typical step counts is invisible, and keeping every step plotted
// makes a run fully determined by the random source.
//
// A ChaosGame is explicitly constructed and owned by its caller; there is no
// shared instance. It is not safe for concurrent use.
type ChaosGame struct {
	notifier

	desc    *Description
	canvas  *Canvas
	current linalg.Vector2D

	totalSteps int
	rng        *rand.Rand
}

// ChaosOption configures a ChaosGame.
type ChaosOption func(*ChaosGame)

// WithRandom sets the random source used for transform selection. Two games
// with equal descriptions and equal-seeded sources produce identical
// canvases. The default source is time-seeded.
func WithRandom(rng *rand.Rand) ChaosOption {
	return func(g *ChaosGame) { g.rng = rng }
}

// NewChaosGame returns a ChaosGame rendering desc onto a width×height canvas.
func NewChaosGame(desc *Description, width, height int, opts ...ChaosOption) (*ChaosGame, error) {
	if desc == nil {
		return nil, ErrNilDescription
	}
	canvas, err := NewCanvas(width, height, desc.MinCoords(), desc.MaxCoords())
	if err != nil {
		return nil, err
	}

	g := &ChaosGame{
		desc:   desc,
		canvas: canvas,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Canvas returns the canvas the game renders into.
func (g *ChaosGame) Canvas() *Canvas { return g.canvas }

// Description returns the live description.
func (g *ChaosGame) Description() *Description { return g.desc }

// TotalSteps returns the number of steps completed across all runs since the
// game was created or its description replaced.
func (g *ChaosGame) TotalSteps() int { return g.totalSteps }

// SetDescription replaces the description wholesale, recreates the canvas at
// its current dimensions and resets the running point and step counter.
func (g *ChaosGame) SetDescription(desc *Description) error {
	if desc == nil {
		return ErrNilDescription
	}
	canvas, err := NewCanvas(g.canvas.Width(), g.canvas.Height(), desc.MinCoords(), desc.MaxCoords())
	if err != nil {
		return err
	}

	g.desc = desc
	g.canvas = canvas
	g.current = linalg.Vector2D{}
	g.totalSteps = 0
	g.notify(EventDescriptionChanged)
	return nil
}

// RunSteps runs n chaos-game steps, accumulating each step's point into the
// canvas. n must be in [1, MaxSteps]. The description is re-validated first,
// committing any interactive window changes.
//
// The loop checks ctx cooperatively; on cancellation the steps completed so
// far remain plotted and ctx's error is returned.
func (g *ChaosGame) RunSteps(ctx context.Context, n int) error {
	if n < 1 || n > MaxSteps {
		return fmt.Errorf("%w, got %d", ErrStepCount, n)
	}
	if err := g.desc.Validate(); err != nil {
		return fmt.Errorf("invalid description: %w", err)
	}

	ts := g.desc.Transforms()
	weights := g.desc.Probabilities()

	// Cumulative weights so a step is a single Intn and a short scan.
	var cumulative []int
	total := 0
	if weights != nil {
		cumulative = make([]int, len(weights))
		for i, w := range weights {
			total += w
			cumulative[i] = total
		}
	}

	start := time.Now()
	for i := 0; i < n; i++ {
		if i%cancelCheckInterval == 0 && ctx.Err() != nil {
			g.totalSteps += i
			return ctx.Err()
		}

		k := 0
		if cumulative == nil {
			k = g.rng.Intn(len(ts))
		} else {
			r := g.rng.Intn(total)
			for cumulative[k] <= r {
				k++
			}
		}

		g.current = ts[k].Transform(g.current)
		g.canvas.PutPixel(g.current)
	}
	g.totalSteps += n

	Logger().Debug("chaos steps completed",
		"steps", n,
		"totalSteps", g.totalSteps,
		"elapsed", time.Since(start),
	)
	g.notify(EventStepsCompleted)
	return nil
}
