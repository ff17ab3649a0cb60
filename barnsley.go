package chaosgame

import (
	"github.com/stewi1014/chaosgame/linalg"
	"github.com/stewi1014/chaosgame/transforms"
)

func init() {
	RegisterPreset(Preset{
		Name: "barnsley",
		New:  barnsley,
	})
}

// barnsley is the Barnsley fern, with the classic coefficients and the
// classic 1/85/7/7 selection weights.
func barnsley() *Description {
	return mustDescription(NewWeightedDescription(
		linalg.Vector2D{X: -2.65, Y: 0},
		linalg.Vector2D{X: 2.65, Y: 10},
		[]transforms.Transform2D{
			transforms.Affine{
				Matrix: linalg.Matrix2x2{A00: 0, A01: 0, A10: 0, A11: 0.16},
			},
			transforms.Affine{
				Matrix:      linalg.Matrix2x2{A00: 0.85, A01: 0.04, A10: -0.04, A11: 0.85},
				Translation: linalg.Vector2D{X: 0, Y: 1.6},
			},
			transforms.Affine{
				Matrix:      linalg.Matrix2x2{A00: 0.2, A01: -0.26, A10: 0.23, A11: 0.22},
				Translation: linalg.Vector2D{X: 0, Y: 1.6},
			},
			transforms.Affine{
				Matrix:      linalg.Matrix2x2{A00: -0.15, A01: 0.28, A10: 0.26, A11: 0.24},
				Translation: linalg.Vector2D{X: 0, Y: 0.44},
			},
		},
		[]int{1, 85, 7, 7},
	))
}
