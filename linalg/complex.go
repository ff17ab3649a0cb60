package linalg

import "math"

// Complex is a complex number Re + Im·i.
type Complex struct {
	Re, Im float64
}

// Vec returns the vector (Re, Im).
func (c Complex) Vec() Vector2D {
	return Vector2D{c.Re, c.Im}
}

// Sqrt returns the principal square root of c.
//
// With r = |c|, the result is
//
//	sqrt((r+Re)/2) + sign(Im)·sqrt((r-Re)/2)·i
//
// where sign(0) = 0, so the imaginary part is zero whenever Im is zero.
func (c Complex) Sqrt() Complex {
	r := math.Hypot(c.Re, c.Im)
	return Complex{
		Re: math.Sqrt((r + c.Re) / 2),
		Im: signum(c.Im) * math.Sqrt((r-c.Re)/2),
	}
}

func signum(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
