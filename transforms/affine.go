package transforms

import "github.com/stewi1014/chaosgame/linalg"

// Affine is the affine transform
//
//	Transform(v) = Matrix·v + Translation
type Affine struct {
	Matrix      linalg.Matrix2x2
	Translation linalg.Vector2D
}

// Transform implements Transform2D.
func (a Affine) Transform(p linalg.Vector2D) linalg.Vector2D {
	return a.Matrix.Transform(p).Add(a.Translation)
}
