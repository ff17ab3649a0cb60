// Package transforms defines the 2D transforms a fractal description is
// built from: affine maps and the square-root and quadratic Julia maps.
package transforms

import "github.com/stewi1014/chaosgame/linalg"

// Transform2D maps one point of the plane to another.
//
// Implementations are small comparable value types, so two transforms can be
// compared with == and used as map keys.
type Transform2D interface {
	Transform(p linalg.Vector2D) linalg.Vector2D
}
