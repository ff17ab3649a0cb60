package transforms

import (
	"testing"

	"github.com/stewi1014/chaosgame/linalg"
)

func TestAffineTransform(t *testing.T) {
	tests := []struct {
		name string
		a    Affine
		p    linalg.Vector2D
		want linalg.Vector2D
	}{
		{
			name: "identity with zero translation",
			a:    Affine{Matrix: linalg.Matrix2x2{A00: 1, A11: 1}},
			p:    linalg.Vector2D{X: 2, Y: 3},
			want: linalg.Vector2D{X: 2, Y: 3},
		},
		{
			name: "pure translation",
			a:    Affine{Translation: linalg.Vector2D{X: 1, Y: -1}},
			p:    linalg.Vector2D{X: 5, Y: 5},
			want: linalg.Vector2D{X: 1, Y: -1},
		},
		{
			name: "scale toward vertex",
			a: Affine{
				Matrix:      linalg.Matrix2x2{A00: 0.5, A11: 0.5},
				Translation: linalg.Vector2D{X: 0.25, Y: 0.5},
			},
			p:    linalg.Vector2D{X: 1, Y: 0},
			want: linalg.Vector2D{X: 0.75, Y: 0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Transform(tt.p); got != tt.want {
				t.Errorf("Transform(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestAffineIsComparable(t *testing.T) {
	a := Affine{Matrix: linalg.Matrix2x2{A00: 1}, Translation: linalg.Vector2D{X: 2}}
	b := Affine{Matrix: linalg.Matrix2x2{A00: 1}, Translation: linalg.Vector2D{X: 2}}

	var ta, tb Transform2D = a, b
	if ta != tb {
		t.Error("equal affine transforms compare unequal through the interface")
	}
}
