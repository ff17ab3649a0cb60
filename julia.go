package chaosgame

import (
	"github.com/stewi1014/chaosgame/linalg"
	"github.com/stewi1014/chaosgame/transforms"
)

func init() {
	RegisterPreset(Preset{
		Name: "julia",
		New:  juliaSet,
	})

	RegisterPreset(Preset{
		Name: "explore-julia",
		New:  exploreJulia,
	})
}

// juliaSet draws a Julia set with the chaos game: both preimage branches of
// the quadratic map, selected uniformly.
func juliaSet() *Description {
	c := linalg.Complex{Re: -0.74543, Im: 0.11301}

	return mustDescription(NewDescription(
		linalg.Vector2D{X: -1.6, Y: -1},
		linalg.Vector2D{X: 1.6, Y: 1},
		[]transforms.Transform2D{
			transforms.Julia{C: c, Sign: 1},
			transforms.Julia{C: c, Sign: -1},
		},
	))
}

// exploreJulia is the default escape-time view: the forward quadratic
// iteration of c = -0.835 + 0.2321i over the window (-1.6,-1)..(1.6,1).
func exploreJulia() *Description {
	return mustDescription(NewDescription(
		linalg.Vector2D{X: -1.6, Y: -1},
		linalg.Vector2D{X: 1.6, Y: 1},
		[]transforms.Transform2D{
			transforms.ExploreJulia{C: linalg.Complex{Re: -0.835, Im: 0.2321}},
		},
	))
}
