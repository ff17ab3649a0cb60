package render

import (
	"context"
	"testing"

	"github.com/stewi1014/chaosgame"
	"github.com/stewi1014/chaosgame/linalg"
	"github.com/stewi1014/chaosgame/transforms"
)

func testCanvas(t *testing.T) *chaosgame.Canvas {
	t.Helper()
	c, err := chaosgame.NewCanvas(8, 6,
		linalg.Vector2D{X: -1, Y: -1},
		linalg.Vector2D{X: 1, Y: 1},
	)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestGrayscaleEmptyCanvasIsBlack(t *testing.T) {
	img := Grayscale(testCanvas(t))

	bounds := img.Bounds()
	if bounds.Dx() != 8 || bounds.Dy() != 6 {
		t.Fatalf("bounds = %v, want 8x6", bounds)
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if img.GrayAt(x, y).Y != 0 {
				t.Fatalf("pixel (%d,%d) = %d, want 0", x, y, img.GrayAt(x, y).Y)
			}
		}
	}
}

func TestGrayscaleScalesToMax(t *testing.T) {
	c := testCanvas(t)
	c.SetPixel(0, 0, 1)
	c.SetPixel(7, 5, 100)

	img := Grayscale(c)

	if got := img.GrayAt(7, 5).Y; got != 255 {
		t.Errorf("max pixel = %d, want 255", got)
	}
	low := img.GrayAt(0, 0).Y
	if low == 0 || low >= 255 {
		t.Errorf("low pixel = %d, want in (0, 255)", low)
	}
	if got := img.GrayAt(3, 3).Y; got != 0 {
		t.Errorf("empty pixel = %d, want 0", got)
	}
}

func TestScale(t *testing.T) {
	c := testCanvas(t)
	c.SetPixel(0, 0, 5)

	img := Scale(Grayscale(c), 16, 12)
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 12 {
		t.Fatalf("bounds = %v, want 16x12", img.Bounds())
	}
}

// The render package is exercised end to end by the binaries; this keeps a
// small guard that a real sweep produces a non-empty image.
func TestGrayscaleFromExploreSweep(t *testing.T) {
	desc, err := chaosgame.NewDescription(
		linalg.Vector2D{X: -1.6, Y: -1},
		linalg.Vector2D{X: 1.6, Y: 1},
		[]transforms.Transform2D{
			transforms.ExploreJulia{C: linalg.Complex{Re: -0.835, Im: 0.2321}},
		},
	)
	if err != nil {
		t.Fatal(err)
	}
	game, err := chaosgame.NewExploreGame(desc, 16, 16, chaosgame.WithIterations(30))
	if err != nil {
		t.Fatal(err)
	}
	if err := game.Render(context.Background()); err != nil {
		t.Fatal(err)
	}

	img := Grayscale(game.Canvas())
	nonzero := 0
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if img.GrayAt(x, y).Y != 0 {
				nonzero++
			}
		}
	}
	if nonzero == 0 {
		t.Error("sweep rendered an entirely black image")
	}
}
