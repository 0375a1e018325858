package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestRotate(t *testing.T) {
	tests := []struct {
		name string
		in   tetris.Shape
		want tetris.Shape
	}{
		{
			name: "I becomes vertical",
			in:   tetris.Shape{{1, 1, 1, 1}},
			want: tetris.Shape{{1}, {1}, {1}, {1}},
		},
		{
			name: "T points right",
			in:   tetris.Shape{{0, 3, 0}, {3, 3, 3}},
			want: tetris.Shape{{3, 0}, {3, 3}, {3, 0}},
		},
		{
			name: "J turns clockwise",
			in:   tetris.Shape{{6, 0, 0}, {6, 6, 6}},
			want: tetris.Shape{{6, 6}, {6, 0}, {6, 0}},
		},
		{
			name: "O is unchanged",
			in:   tetris.Shape{{2, 2}, {2, 2}},
			want: tetris.Shape{{2, 2}, {2, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tetris.Rotate(tt.in))
		})
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, kind := range tetris.Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			shape := kind.Shape()
			rotated := shape
			for range 4 {
				rotated = tetris.Rotate(rotated)
			}
			assert.Equal(t, shape, rotated)
		})
	}
}

func TestRotateDoesNotAliasInput(t *testing.T) {
	in := tetris.Shape{{0, 3, 0}, {3, 3, 3}}
	out := tetris.Rotate(in)
	out[0][0] = 9

	assert.Equal(t, tetris.Shape{{0, 3, 0}, {3, 3, 3}}, in)
}

func TestKindColorAndName(t *testing.T) {
	assert.Equal(t, tetris.Cell(1), tetris.KindI.Color())
	assert.Equal(t, tetris.Cell(7), tetris.KindL.Color())
	assert.Equal(t, "T", tetris.KindT.String())
	assert.Equal(t, "Kind(9)", tetris.Kind(9).String())

	for _, kind := range tetris.Kinds {
		mutated := kind.Shape()
		mutated[0][0] = 9

		filled := 0
		for _, row := range kind.Shape() {
			for _, c := range row {
				if c != tetris.Empty {
					assert.Equal(t, kind.Color(), c)
					filled++
				}
			}
		}
		assert.Equal(t, 4, filled, "kind %s", kind)
	}
}
