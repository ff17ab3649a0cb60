package linalg

// Matrix2x2 is a 2x2 real matrix
//
//	| A00 A01 |
//	| A10 A11 |
//
// defining a linear map on Vector2D. It is an immutable value type.
type Matrix2x2 struct {
	A00, A01 float64
	A10, A11 float64
}

// Transform returns the matrix-vector product M·v.
func (m Matrix2x2) Transform(v Vector2D) Vector2D {
	return Vector2D{
		X: m.A00*v.X + m.A01*v.Y,
		Y: m.A10*v.X + m.A11*v.Y,
	}
}
