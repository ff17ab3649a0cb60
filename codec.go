package chaosgame

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/stewi1014/chaosgame/linalg"
	"github.com/stewi1014/chaosgame/transforms"
)

// The persisted description format is line-oriented text. The first
// non-blank line holds the window as four reals:
//
//	minX minY maxX maxY
//
// Each following non-blank line holds one transform: six reals
//
//	a00 a01 a10 a11 bx by
//
// for an affine transform, or the marker
//
//	Julia re im
//
// for a Julia transform with constant re + im·i. Julia transforms are read
// with positive sign; the sign and any probability weights are not part of
// the format.

const juliaMarker = "Julia"

var (
	ErrMalformedDescription = errors.New("malformed description")
	ErrUnsupportedTransform = errors.New("transform cannot be serialized")
)

// ReadDescription parses a description from its text format.
// The result is fully validated.
func ReadDescription(r io.Reader) (*Description, error) {
	scanner := bufio.NewScanner(r)

	var min, max linalg.Vector2D
	var ts []transforms.Transform2D
	header := false

	lineno := 0
	for scanner.Scan() {
		lineno++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if !header {
			vals, err := parseFloats(fields, 4)
			if err != nil {
				return nil, fmt.Errorf("line %d: window: %w", lineno, err)
			}
			min = linalg.Vector2D{X: vals[0], Y: vals[1]}
			max = linalg.Vector2D{X: vals[2], Y: vals[3]}
			header = true
			continue
		}

		if fields[0] == juliaMarker {
			vals, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: julia transform: %w", lineno, err)
			}
			ts = append(ts, transforms.Julia{
				C:    linalg.Complex{Re: vals[0], Im: vals[1]},
				Sign: 1,
			})
			continue
		}

		vals, err := parseFloats(fields, 6)
		if err != nil {
			return nil, fmt.Errorf("line %d: affine transform: %w", lineno, err)
		}
		ts = append(ts, transforms.Affine{
			Matrix:      linalg.Matrix2x2{A00: vals[0], A01: vals[1], A10: vals[2], A11: vals[3]},
			Translation: linalg.Vector2D{X: vals[4], Y: vals[5]},
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !header {
		return nil, fmt.Errorf("%w: missing window header", ErrMalformedDescription)
	}

	return NewDescription(min, max, ts)
}

// WriteDescription serializes a description to its text format. Floats are
// written in their shortest exact form, so a read-write-read round trip
// reproduces the description bit for bit.
func WriteDescription(w io.Writer, d *Description) error {
	bw := bufio.NewWriter(w)

	min, max := d.MinCoords(), d.MaxCoords()
	fmt.Fprintf(bw, "%s %s %s %s\n",
		formatFloat(min.X), formatFloat(min.Y),
		formatFloat(max.X), formatFloat(max.Y),
	)

	for _, t := range d.Transforms() {
		switch t := t.(type) {
		case transforms.Affine:
			fmt.Fprintf(bw, "%s %s %s %s %s %s\n",
				formatFloat(t.Matrix.A00), formatFloat(t.Matrix.A01),
				formatFloat(t.Matrix.A10), formatFloat(t.Matrix.A11),
				formatFloat(t.Translation.X), formatFloat(t.Translation.Y),
			)
		case transforms.Julia:
			fmt.Fprintf(bw, "%s %s %s\n",
				juliaMarker, formatFloat(t.C.Re), formatFloat(t.C.Im))
		case transforms.ExploreJulia:
			fmt.Fprintf(bw, "%s %s %s\n",
				juliaMarker, formatFloat(t.C.Re), formatFloat(t.C.Im))
		default:
			return fmt.Errorf("%w: %T", ErrUnsupportedTransform, t)
		}
	}

	return bw.Flush()
}

func parseFloats(fields []string, n int) ([]float64, error) {
	if len(fields) != n {
		return nil, fmt.Errorf("%w: expected %d values, got %d", ErrMalformedDescription, n, len(fields))
	}
	vals := make([]float64, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrMalformedDescription, f)
		}
		vals[i] = v
	}
	return vals, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
