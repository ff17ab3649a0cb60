// Package render maps a chaosgame pixel buffer to an image.
//
// Colour policy is deliberately outside the core engine; this package is the
// thin presentation collaborator the repository's binaries share.
package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/stewi1014/chaosgame"
)

// Grayscale renders the canvas' buffer as a grayscale image, white on black.
//
// Values are scaled logarithmically relative to the buffer's maximum, which
// keeps sparse chaos-game accumulations visible next to heavily visited
// cells and is monotonic for the small value range of escape counts.
func Grayscale(c *chaosgame.Canvas) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, c.Width(), c.Height()))

	var max uint32
	for _, row := range c.Pixels() {
		for _, v := range row {
			if v > max {
				max = v
			}
		}
	}
	if max == 0 {
		return img
	}

	scale := 255 / math.Log1p(float64(max))
	for y, row := range c.Pixels() {
		for x, v := range row {
			img.SetGray(x, y, gray(math.Log1p(float64(v)) * scale))
		}
	}
	return img
}

func gray(v float64) color.Gray {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return color.Gray{Y: uint8(math.Round(v))}
}

// Scale resizes img to width×height with nearest-neighbour sampling,
// keeping the hard pixel edges of a low-resolution render.
func Scale(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
