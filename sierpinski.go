package chaosgame

import (
	"github.com/stewi1014/chaosgame/linalg"
	"github.com/stewi1014/chaosgame/transforms"
)

func init() {
	RegisterPreset(Preset{
		Name: "sierpinski",
		New:  sierpinski,
	})
}

// sierpinski is the Sierpinski triangle: three transforms, each halving the
// distance to one of the triangle's vertices, selected uniformly.
func sierpinski() *Description {
	half := linalg.Matrix2x2{A00: 0.5, A11: 0.5}

	return mustDescription(NewDescription(
		linalg.Vector2D{X: 0, Y: 0},
		linalg.Vector2D{X: 1, Y: 1},
		[]transforms.Transform2D{
			transforms.Affine{Matrix: half, Translation: linalg.Vector2D{X: 0, Y: 0}},
			transforms.Affine{Matrix: half, Translation: linalg.Vector2D{X: 0.5, Y: 0}},
			transforms.Affine{Matrix: half, Translation: linalg.Vector2D{X: 0.25, Y: 0.5}},
		},
	))
}
