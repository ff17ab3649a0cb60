package chaosgame

import (
	"math"
	"testing"

	"github.com/stewi1014/chaosgame/linalg"
)

func newTestCanvas(t *testing.T, width, height int) *Canvas {
	t.Helper()
	min, max := unitWindow()
	c, err := NewCanvas(width, height, min, max)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestNewCanvasRejectsBadDimensions(t *testing.T) {
	min, max := unitWindow()
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, 10}} {
		if _, err := NewCanvas(dims[0], dims[1], min, max); err == nil {
			t.Errorf("NewCanvas(%d, %d) succeeded, want error", dims[0], dims[1])
		}
	}
}

func TestCanvasCenterMapsToCenterPixel(t *testing.T) {
	c := newTestCanvas(t, 3, 3)

	c.PutPixel(linalg.Vector2D{})
	if got := c.Pixels()[1][1]; got != 1 {
		t.Errorf("center pixel = %d, want 1", got)
	}

	var total uint32
	for _, row := range c.Pixels() {
		for _, v := range row {
			total += v
		}
	}
	if total != 1 {
		t.Errorf("total mass = %d, want 1", total)
	}
}

func TestCanvasRowAxisIsInverted(t *testing.T) {
	c := newTestCanvas(t, 3, 3)

	// Maximum y is the top row, row 0.
	c.PutPixel(linalg.Vector2D{X: 0, Y: 1})
	if got := c.Pixels()[0][1]; got != 1 {
		t.Errorf("top-center pixel = %d, want 1", got)
	}

	c.PutPixel(linalg.Vector2D{X: -1, Y: -1})
	if got := c.Pixels()[2][0]; got != 1 {
		t.Errorf("bottom-left pixel = %d, want 1", got)
	}
}

func TestCanvasDropsOutOfWindowPoints(t *testing.T) {
	c := newTestCanvas(t, 3, 3)

	for _, p := range []linalg.Vector2D{
		{X: 2, Y: 0},
		{X: -2, Y: 0},
		{X: 0, Y: 2},
		{X: 0, Y: -2},
		{X: math.Inf(1), Y: math.Inf(1)},
	} {
		c.PutPixel(p)
		if got := c.PixelAt(p); got != 0 {
			t.Errorf("PixelAt(%v) = %d, want 0", p, got)
		}
	}

	for _, row := range c.Pixels() {
		for i, v := range row {
			if v != 0 {
				t.Fatalf("pixel %d = %d after out-of-window writes, want 0", i, v)
			}
		}
	}
}

func TestCanvasSetPixelBounds(t *testing.T) {
	c := newTestCanvas(t, 4, 3)

	c.SetPixel(3, 2, 7)
	if got := c.Pixels()[2][3]; got != 7 {
		t.Errorf("pixel (3,2) = %d, want 7", got)
	}

	// Out-of-range writes are dropped, not errors.
	c.SetPixel(4, 0, 9)
	c.SetPixel(0, 3, 9)
	c.SetPixel(-1, 0, 9)
	c.SetPixel(0, -1, 9)

	var total uint32
	for _, row := range c.Pixels() {
		for _, v := range row {
			total += v
		}
	}
	if total != 7 {
		t.Errorf("total = %d, want 7", total)
	}
}

// IndicesToCoords must be the exact inverse of the coords-to-indices affine
// at every integer grid point.
func TestCanvasMappingRoundTrip(t *testing.T) {
	for _, dims := range [][2]int{{3, 3}, {20, 20}, {100, 37}} {
		min := linalg.Vector2D{X: -1.6, Y: -1}
		max := linalg.Vector2D{X: 1.6, Y: 1}
		c, err := NewCanvas(dims[0], dims[1], min, max)
		if err != nil {
			t.Fatal(err)
		}

		for row := 0; row < c.Height(); row++ {
			for col := 0; col < c.Width(); col++ {
				coords := c.IndicesToCoords(row, col)
				idx := c.CoordsToIndices().Transform(coords)
				if math.Abs(idx.X-float64(row)) > 1e-9 || math.Abs(idx.Y-float64(col)) > 1e-9 {
					t.Fatalf("%dx%d: (%d,%d) -> %v -> %v", dims[0], dims[1], row, col, coords, idx)
				}
			}
		}
	}
}

func TestCanvasCornerCoordinates(t *testing.T) {
	c := newTestCanvas(t, 5, 5)

	tests := []struct {
		row, col int
		want     linalg.Vector2D
	}{
		{0, 0, linalg.Vector2D{X: -1, Y: 1}},
		{4, 0, linalg.Vector2D{X: -1, Y: -1}},
		{0, 4, linalg.Vector2D{X: 1, Y: 1}},
		{4, 4, linalg.Vector2D{X: 1, Y: -1}},
	}
	for _, tt := range tests {
		got := c.IndicesToCoords(tt.row, tt.col)
		if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 {
			t.Errorf("IndicesToCoords(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestCanvasClear(t *testing.T) {
	c := newTestCanvas(t, 10, 10)

	for i := 0; i < 500; i++ {
		c.PutPixel(linalg.Vector2D{
			X: -1 + 2*float64(i%25)/25,
			Y: -1 + 2*float64(i%19)/19,
		})
	}
	c.Clear()

	for row := 0; row < c.Height(); row++ {
		for col := 0; col < c.Width(); col++ {
			p := c.IndicesToCoords(row, col)
			if got := c.PixelAt(p); got != 0 {
				t.Fatalf("PixelAt(%v) = %d after Clear, want 0", p, got)
			}
		}
	}
}

func TestCanvasSetWindowRebuildsMapping(t *testing.T) {
	c := newTestCanvas(t, 3, 3)

	min := linalg.Vector2D{X: 0, Y: 0}
	max := linalg.Vector2D{X: 4, Y: 4}
	c.SetWindow(min, max)

	if c.MinCoords() != min || c.MaxCoords() != max {
		t.Fatalf("window = %v..%v", c.MinCoords(), c.MaxCoords())
	}

	// Centre of the new window lands on the centre pixel.
	c.PutPixel(linalg.Vector2D{X: 2, Y: 2})
	if got := c.Pixels()[1][1]; got != 1 {
		t.Errorf("center pixel = %d, want 1", got)
	}
}
