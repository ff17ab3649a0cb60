package transforms

import "github.com/stewi1014/chaosgame/linalg"

// Julia is one of the two preimage branches of the quadratic Julia map for
// the constant C:
//
//	Transform(z) = Sign · sqrt(z - C)
//
// using the principal complex square root. Two Julia transforms with
// opposite signs realise both preimages; running them as an iterated
// function system draws the Julia set of C.
type Julia struct {
	C    linalg.Complex
	Sign int // +1 or -1
}

// Transform implements Transform2D.
func (j Julia) Transform(p linalg.Vector2D) linalg.Vector2D {
	root := linalg.Complex{
		Re: p.X - j.C.Re,
		Im: p.Y - j.C.Im,
	}.Sqrt()

	s := float64(j.Sign)
	return linalg.Vector2D{X: s * root.Re, Y: s * root.Im}
}

// ExploreJulia is the forward quadratic Julia iteration
//
//	Transform(z) = z² + C
//
// used by the escape-time explore mode. Unlike Julia it diverges for points
// outside the filled Julia set, which is what an escape-time evaluator
// measures.
type ExploreJulia struct {
	C linalg.Complex
}

// Transform implements Transform2D.
func (e ExploreJulia) Transform(p linalg.Vector2D) linalg.Vector2D {
	return linalg.Vector2D{
		X: p.X*p.X - p.Y*p.Y + e.C.Re,
		Y: 2*p.X*p.Y + e.C.Im,
	}
}
