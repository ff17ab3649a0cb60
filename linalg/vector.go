// Package linalg provides the small pieces of linear algebra used by the
// chaos game: 2D vectors, 2x2 matrices and complex square roots.
package linalg

// Vector2D is a two-dimensional real vector.
//
// Vector2D is an immutable value type; all arithmetic returns a new vector.
// Equality is exact component-wise comparison, so the == operator does the
// right thing.
type Vector2D struct {
	X, Y float64
}

// Add returns v + o.
func (v Vector2D) Add(o Vector2D) Vector2D {
	return Vector2D{v.X + o.X, v.Y + o.Y}
}

// Subtract returns v - o.
func (v Vector2D) Subtract(o Vector2D) Vector2D {
	return Vector2D{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by k.
func (v Vector2D) Scale(k float64) Vector2D {
	return Vector2D{v.X * k, v.Y * k}
}

// Multiply returns the component-wise product of v and o.
func (v Vector2D) Multiply(o Vector2D) Vector2D {
	return Vector2D{v.X * o.X, v.Y * o.Y}
}

// Divide returns the component-wise quotient of v and o.
// A zero component in o produces an infinite or NaN component;
// avoiding zero divisors is the caller's responsibility.
func (v Vector2D) Divide(o Vector2D) Vector2D {
	return Vector2D{v.X / o.X, v.Y / o.Y}
}
