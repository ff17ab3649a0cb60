package linalg

import (
	"math"
	"testing"
)

func TestComplexSqrt(t *testing.T) {
	tests := []struct {
		name string
		c    Complex
		want Complex
	}{
		{
			name: "fourth quadrant",
			c:    Complex{Re: 0.1, Im: -0.4},
			want: Complex{Re: 0.5061178531536732, Im: -0.3951648786024424},
		},
		{
			name: "positive real axis",
			c:    Complex{Re: 4, Im: 0},
			want: Complex{Re: 2, Im: 0},
		},
		{
			name: "negative real axis keeps zero imaginary part",
			c:    Complex{Re: -4, Im: 0},
			want: Complex{Re: 0, Im: 0},
		},
		{
			name: "zero",
			c:    Complex{},
			want: Complex{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.Sqrt()
			if !closeTo(got.Re, tt.want.Re) || !closeTo(got.Im, tt.want.Im) {
				t.Errorf("(%v).Sqrt() = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

// Squaring the principal square root must reproduce the input for any
// complex number off the real axis.
func TestComplexSqrtRoundTrip(t *testing.T) {
	values := []float64{-2.5, -1, -0.835, -0.1, 0.2321, 0.5, 1, 3.75}

	for _, re := range values {
		for _, im := range values {
			c := Complex{Re: re, Im: im}
			r := c.Sqrt()

			// (a+bi)² = a²-b² + 2abi
			sq := Complex{
				Re: r.Re*r.Re - r.Im*r.Im,
				Im: 2 * r.Re * r.Im,
			}
			if !closeTo(sq.Re, c.Re) || !closeTo(sq.Im, c.Im) {
				t.Errorf("Sqrt(%v)² = %v, want %v", c, sq, c)
			}
		}
	}
}

func TestComplexSqrtPrincipalBranch(t *testing.T) {
	// The principal root has non-negative real part, and its imaginary
	// part carries the sign of the input's imaginary part.
	for _, c := range []Complex{
		{Re: -1, Im: 2}, {Re: -1, Im: -2},
		{Re: 3, Im: 0.5}, {Re: 3, Im: -0.5},
	} {
		r := c.Sqrt()
		if r.Re < 0 {
			t.Errorf("Sqrt(%v).Re = %v, want >= 0", c, r.Re)
		}
		if math.Signbit(r.Im) != math.Signbit(c.Im) {
			t.Errorf("Sqrt(%v).Im = %v, want same sign as %v", c, r.Im, c.Im)
		}
	}
}

func TestComplexVec(t *testing.T) {
	c := Complex{Re: 1.5, Im: -2.5}
	if got := c.Vec(); got != (Vector2D{X: 1.5, Y: -2.5}) {
		t.Errorf("Vec() = %v", got)
	}
}

func closeTo(got, want float64) bool {
	return math.Abs(got-want) < 1e-12
}
