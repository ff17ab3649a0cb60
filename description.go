package chaosgame

import (
	"errors"
	"fmt"

	"github.com/stewi1014/chaosgame/linalg"
	"github.com/stewi1014/chaosgame/transforms"
)

// Limits on a Description. Coordinates must lie within
// [MinCoordinate, MaxCoordinate] on both axes, and a description holds
// between 1 and MaxTransforms transforms.
const (
	MinCoordinate = -50.0
	MaxCoordinate = 50.0
	MaxTransforms = 4
)

var (
	ErrCoordinatesOutOfRange = errors.New("coordinates must be between -50 and 50")
	ErrInvalidWindow         = errors.New("minimum coordinates must be strictly less than maximum coordinates")
	ErrTransformCount        = errors.New("number of transforms must be between 1 and 4")
	ErrProbabilityCount      = errors.New("probabilities must match the number of transforms")
	ErrProbabilityWeights    = errors.New("probability weights must be non-negative with a positive sum")
)

// Description is a validated fractal description: the coordinate window the
// canvas represents, the transforms to iterate, and optional integer
// selection weights for the chaos game.
//
// Construction validates fully. SetMinCoords and SetMaxCoords deliberately do
// not, so that interactive pan/zoom can move the window freely mid-gesture;
// drivers call Validate once before the next full run instead.
type Description struct {
	minCoords     linalg.Vector2D
	maxCoords     linalg.Vector2D
	transforms    []transforms.Transform2D
	probabilities []int
}

// NewDescription returns a Description with uniform transform selection.
func NewDescription(minCoords, maxCoords linalg.Vector2D, ts []transforms.Transform2D) (*Description, error) {
	return NewWeightedDescription(minCoords, maxCoords, ts, nil)
}

// NewWeightedDescription returns a Description whose transforms are selected
// with probability weights[i] / sum(weights). A nil weights slice means
// uniform selection.
func NewWeightedDescription(
	minCoords, maxCoords linalg.Vector2D,
	ts []transforms.Transform2D,
	weights []int,
) (*Description, error) {
	d := &Description{
		minCoords:     minCoords,
		maxCoords:     maxCoords,
		transforms:    ts,
		probabilities: weights,
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks every invariant of the description. It is called by the
// constructors, and again by drivers before a run to commit any interactive
// window changes made through the unchecked setters.
func (d *Description) Validate() error {
	if err := validateWindow(d.minCoords, d.maxCoords); err != nil {
		return err
	}
	if err := validateTransforms(d.transforms); err != nil {
		return err
	}
	return validateWeights(d.transforms, d.probabilities)
}

func validateWindow(min, max linalg.Vector2D) error {
	for _, v := range [...]float64{min.X, min.Y, max.X, max.Y} {
		if v < MinCoordinate || v > MaxCoordinate {
			return fmt.Errorf("%w, got min %v max %v", ErrCoordinatesOutOfRange, min, max)
		}
	}
	if min.X >= max.X || min.Y >= max.Y {
		return fmt.Errorf("%w, got min %v max %v", ErrInvalidWindow, min, max)
	}
	return nil
}

func validateTransforms(ts []transforms.Transform2D) error {
	if len(ts) < 1 || len(ts) > MaxTransforms {
		return fmt.Errorf("%w, got %d", ErrTransformCount, len(ts))
	}
	for i, t := range ts {
		if t == nil {
			return fmt.Errorf("%w, transform %d is nil", ErrTransformCount, i)
		}
	}
	return nil
}

func validateWeights(ts []transforms.Transform2D, weights []int) error {
	if weights == nil {
		return nil
	}
	if len(weights) != len(ts) {
		return fmt.Errorf("%w, got %d weights for %d transforms", ErrProbabilityCount, len(weights), len(ts))
	}
	sum := 0
	for _, w := range weights {
		if w < 0 {
			return fmt.Errorf("%w, got %v", ErrProbabilityWeights, weights)
		}
		sum += w
	}
	if sum <= 0 {
		return fmt.Errorf("%w, got %v", ErrProbabilityWeights, weights)
	}
	return nil
}

// MinCoords returns the lower-left corner of the coordinate window.
func (d *Description) MinCoords() linalg.Vector2D { return d.minCoords }

// MaxCoords returns the upper-right corner of the coordinate window.
func (d *Description) MaxCoords() linalg.Vector2D { return d.maxCoords }

// Transforms returns the description's transforms.
// The returned slice must not be modified.
func (d *Description) Transforms() []transforms.Transform2D { return d.transforms }

// Probabilities returns the selection weights, or nil for uniform selection.
// The returned slice must not be modified.
func (d *Description) Probabilities() []int { return d.probabilities }

// SetTransforms replaces the transform list, validating it first.
func (d *Description) SetTransforms(ts []transforms.Transform2D) error {
	if err := validateTransforms(ts); err != nil {
		return err
	}
	if err := validateWeights(ts, d.probabilities); err != nil {
		return err
	}
	d.transforms = ts
	return nil
}

// SetMinCoords replaces the window's lower-left corner without validation.
// Interactive pan/zoom moves the window continuously and must not fail
// mid-gesture; the next run's Validate call commits the change.
func (d *Description) SetMinCoords(min linalg.Vector2D) { d.minCoords = min }

// SetMaxCoords replaces the window's upper-right corner without validation.
// See SetMinCoords.
func (d *Description) SetMaxCoords(max linalg.Vector2D) { d.maxCoords = max }

// Equal reports whether d and o are structurally equal. Coordinates compare
// exactly, with no epsilon; descriptions that differ only by floating-point
// noise are not equal.
func (d *Description) Equal(o *Description) bool {
	if d == o {
		return true
	}
	if d == nil || o == nil {
		return false
	}
	if d.minCoords != o.minCoords || d.maxCoords != o.maxCoords {
		return false
	}
	if len(d.transforms) != len(o.transforms) {
		return false
	}
	for i := range d.transforms {
		if d.transforms[i] != o.transforms[i] {
			return false
		}
	}
	if len(d.probabilities) != len(o.probabilities) {
		return false
	}
	for i := range d.probabilities {
		if d.probabilities[i] != o.probabilities[i] {
			return false
		}
	}
	return true
}
