// Package chaosgame renders iterated-function-system ("chaos game") and
// escape-time (Julia "explore") fractals onto a pixel grid.
//
// A fractal is described declaratively by a Description: a coordinate window,
// a list of transforms and, for the chaos game, optional selection weights.
// A driver (ChaosGame or ExploreGame) owns a Canvas sized to the requested
// output, runs its algorithm and accumulates results into the canvas' pixel
// buffer. Presentation is out of scope: callers read the buffer back and map
// it to colours however they like (see the render subpackage for a simple
// grayscale mapping).
package chaosgame
