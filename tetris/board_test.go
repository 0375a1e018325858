package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(b *tetris.Board, y int, c tetris.Cell) {
	for x := range b.Width() {
		b.Set(x, y, c)
	}
}

func TestBoardCollides(t *testing.T) {
	board := tetris.NewBoard(10, 20)
	board.Set(5, 10, 3)

	tests := []struct {
		name  string
		piece tetris.Piece
		want  bool
	}{
		{"free", tetris.NewPiece(tetris.KindO, 3, 0), false},
		{"left wall", tetris.NewPiece(tetris.KindO, -1, 0), true},
		{"right wall", tetris.NewPiece(tetris.KindO, 9, 0), true},
		{"floor", tetris.NewPiece(tetris.KindO, 3, 19), true},
		{"resting on floor", tetris.NewPiece(tetris.KindO, 3, 18), false},
		{"above the top", tetris.NewPiece(tetris.KindO, 3, -1), true},
		{"overlaps stack", tetris.NewPiece(tetris.KindO, 4, 9), true},
		{"empty shape cell over stack", tetris.NewPiece(tetris.KindT, 5, 10), false},
		{"filled shape cell over stack", tetris.NewPiece(tetris.KindS, 5, 9), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, board.Collides(tt.piece))
		})
	}
}

func TestBoardMerge(t *testing.T) {
	board := tetris.NewBoard(10, 20)
	merged := board.Merge(tetris.NewPiece(tetris.KindT, 0, 18))

	assert.Equal(t, tetris.Empty, board.At(1, 18), "merge must not mutate the receiver")
	assert.Equal(t, tetris.Empty, merged.At(0, 18))
	assert.Equal(t, tetris.Cell(3), merged.At(1, 18))
	assert.Equal(t, []tetris.Cell{3, 3, 3, 0, 0, 0, 0, 0, 0, 0}, merged.Row(19))
}

func TestBoardMergeSkipsCellsAboveTop(t *testing.T) {
	board := tetris.NewBoard(4, 4)
	merged := board.Merge(tetris.NewPiece(tetris.KindJ, 0, -1))

	assert.Equal(t, []tetris.Cell{6, 6, 6, 0}, merged.Row(0))
	assert.Equal(t, []tetris.Cell{0, 0, 0, 0}, merged.Row(1))
}

func TestBoardClearLines(t *testing.T) {
	t.Run("no full rows", func(t *testing.T) {
		board := tetris.NewBoard(4, 4)
		board.Set(0, 3, 1)

		out, cleared := board.ClearLines()
		assert.Equal(t, 0, cleared)
		assert.Equal(t, board.Rows(), out.Rows())
	})

	t.Run("single row shifts the stack down", func(t *testing.T) {
		board := tetris.NewBoard(4, 4)
		fillRow(board, 3, 2)
		board.Set(1, 2, 5)

		out, cleared := board.ClearLines()
		require.Equal(t, 1, cleared)
		assert.Equal(t, []tetris.Cell{0, 5, 0, 0}, out.Row(3))
		assert.Equal(t, []tetris.Cell{0, 0, 0, 0}, out.Row(0))
		assert.Equal(t, tetris.Cell(2), board.At(0, 3), "clear must not mutate the receiver")
	})

	t.Run("non adjacent rows", func(t *testing.T) {
		board := tetris.NewBoard(3, 5)
		fillRow(board, 4, 1)
		board.Set(2, 3, 7)
		fillRow(board, 2, 4)
		board.Set(0, 1, 6)

		assert.Equal(t, []int{2, 4}, board.FullRows())

		out, cleared := board.ClearLines()
		require.Equal(t, 2, cleared)
		assert.Equal(t, [][]tetris.Cell{
			{0, 0, 0},
			{0, 0, 0},
			{0, 0, 0},
			{6, 0, 0},
			{0, 0, 7},
		}, out.Rows())
	})
}

func TestBoardOutOfBounds(t *testing.T) {
	board := tetris.NewBoard(2, 2)
	board.Set(5, 5, 1)

	assert.Equal(t, tetris.Empty, board.At(5, 5))
	assert.False(t, board.InBounds(-1, 0))
	assert.True(t, board.InBounds(1, 1))
}
