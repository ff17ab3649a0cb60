package chaosgame

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/stewi1014/chaosgame/linalg"
	"github.com/stewi1014/chaosgame/transforms"
)

var ErrCanvasSize = errors.New("canvas dimensions must be positive")

// Canvas is the pixel buffer a fractal is rendered into, together with the
// coordinate window it represents and the affine mapping between the two.
//
// Pixel (0, 0) is the top-left corner, so the row axis runs opposite to the
// window's y axis: row 0 corresponds to the maximum y coordinate. The mapping
// is rebuilt from scratch whenever the window changes, so it is always
// consistent with the current bounds.
//
// Buffer values are visit counts in chaos mode and iteration counts in
// explore mode. Writes and reads outside the buffer are silently dropped;
// coordinate transforms legitimately map just outside the window during
// interactive panning, and that is not an error.
type Canvas struct {
	width  int
	height int

	minCoords linalg.Vector2D
	maxCoords linalg.Vector2D

	pixels [][]uint32

	// coordsToIndices maps a window coordinate (x, y) to fractional
	// buffer indices (row, col). indicesToCoords is its exact inverse,
	// obtained by inverting the homogeneous form of the same map.
	coordsToIndices transforms.Affine
	indicesToCoords mgl64.Mat3
}

// NewCanvas returns a cleared width×height canvas representing the window
// [minCoords, maxCoords].
func NewCanvas(width, height int, minCoords, maxCoords linalg.Vector2D) (*Canvas, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w, got %dx%d", ErrCanvasSize, width, height)
	}

	c := &Canvas{
		width:     width,
		height:    height,
		minCoords: minCoords,
		maxCoords: maxCoords,
		pixels:    make([][]uint32, height),
	}
	for i := range c.pixels {
		c.pixels[i] = make([]uint32, width)
	}
	c.rebuildMapping()
	return c, nil
}

// rebuildMapping derives the coords→indices affine from the current window
// and dimensions, and its inverse via mgl64.
//
//	row = (height-1)·(maxY - y) / (maxY - minY)
//	col = (width-1)·(x - minX) / (maxX - minX)
func (c *Canvas) rebuildMapping() {
	w := float64(c.width - 1)
	h := float64(c.height - 1)
	min, max := c.minCoords, c.maxCoords

	c.coordsToIndices = transforms.Affine{
		Matrix: linalg.Matrix2x2{
			A00: 0, A01: h / (min.Y - max.Y),
			A10: w / (max.X - min.X), A11: 0,
		},
		Translation: linalg.Vector2D{
			X: h * max.Y / (max.Y - min.Y),
			Y: w * min.X / (min.X - max.X),
		},
	}

	m := c.coordsToIndices.Matrix
	b := c.coordsToIndices.Translation
	// Column-major homogeneous form of the same affine map.
	c.indicesToCoords = mgl64.Mat3{
		m.A00, m.A10, 0,
		m.A01, m.A11, 0,
		b.X, b.Y, 1,
	}.Inv()
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// MinCoords returns the lower-left corner of the represented window.
func (c *Canvas) MinCoords() linalg.Vector2D { return c.minCoords }

// MaxCoords returns the upper-right corner of the represented window.
func (c *Canvas) MaxCoords() linalg.Vector2D { return c.maxCoords }

// CoordsToIndices returns the affine transform mapping a window coordinate
// (x, y) to fractional buffer indices (row, col).
func (c *Canvas) CoordsToIndices() transforms.Affine { return c.coordsToIndices }

// SetWindow replaces the represented window and rebuilds the coordinate
// mapping. The pixel buffer is left untouched; callers re-rendering into the
// new window should Clear first.
func (c *Canvas) SetWindow(minCoords, maxCoords linalg.Vector2D) {
	c.minCoords = minCoords
	c.maxCoords = maxCoords
	c.rebuildMapping()
}

// PutPixel increments the pixel the point maps to by one. Points mapping
// outside the buffer are dropped.
func (c *Canvas) PutPixel(point linalg.Vector2D) {
	idx := c.coordsToIndices.Transform(point)
	row, col := int(idx.X), int(idx.Y)
	if row >= 0 && row < c.height && col >= 0 && col < c.width {
		c.pixels[row][col]++
	}
}

// SetPixel sets the pixel at (col, row) to an already-computed iteration
// value. Out-of-range indices are dropped.
func (c *Canvas) SetPixel(col, row int, value uint32) {
	if row >= 0 && row < c.height && col >= 0 && col < c.width {
		c.pixels[row][col] = value
	}
}

// PixelAt returns the value of the pixel the point maps to, or 0 for points
// outside the buffer.
func (c *Canvas) PixelAt(point linalg.Vector2D) uint32 {
	idx := c.coordsToIndices.Transform(point)
	row, col := int(idx.X), int(idx.Y)
	if row >= 0 && row < c.height && col >= 0 && col < c.width {
		return c.pixels[row][col]
	}
	return 0
}

// IndicesToCoords returns the window coordinate represented by the pixel at
// (row, col). It is the exact inverse of CoordsToIndices, and is used to
// re-derive a window from a pan/zoom gesture expressed in pixels.
func (c *Canvas) IndicesToCoords(row, col int) linalg.Vector2D {
	v := c.indicesToCoords.Mul3x1(mgl64.Vec3{float64(row), float64(col), 1})
	return linalg.Vector2D{X: v[0], Y: v[1]}
}

// Pixels returns the pixel buffer as height rows of width values.
// The buffer is live; it must not be read while a render is in progress.
func (c *Canvas) Pixels() [][]uint32 { return c.pixels }

// Clear resets every pixel to 0.
func (c *Canvas) Clear() {
	for _, row := range c.pixels {
		for i := range row {
			row[i] = 0
		}
	}
}
