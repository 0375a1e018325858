package autoplay_test

import (
	"testing"

	"github.com/plus3/blockfall/internal/autoplay"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasure(t *testing.T) {
	board := tetris.NewBoard(4, 4)
	// column heights 2, 1, 0, 4 with one hole under column 0
	board.Set(0, 2, 1)
	board.Set(1, 3, 1)
	board.Set(3, 0, 1)
	board.Set(3, 1, 1)
	board.Set(3, 2, 1)
	board.Set(3, 3, 1)

	f := autoplay.Measure(board)
	assert.Equal(t, autoplay.Features{
		AggregateHeight: 7,
		CompleteLines:   0,
		Holes:           1,
		Bumpiness:       1 + 1 + 4,
	}, f)
}

func TestBestCompletesLine(t *testing.T) {
	board := tetris.NewBoard(6, 6)
	for x := range 6 {
		if x < 2 || x > 3 {
			board.Set(x, 5, 1)
			board.Set(x, 4, 1)
		}
	}

	move, ok := autoplay.NewPlanner().Best(board, tetris.NewPiece(tetris.KindO, 1, 0))
	require.True(t, ok)
	assert.Equal(t, 2, move.X, "the O fills the two-wide gap")
}

func TestBestStandsIUpInWell(t *testing.T) {
	board := tetris.NewBoard(5, 8)
	for y := 4; y < 8; y++ {
		for x := range 4 {
			board.Set(x, y, 1)
		}
	}

	move, ok := autoplay.NewPlanner().Best(board, tetris.NewPiece(tetris.KindI, 0, 0))
	require.True(t, ok)
	assert.Equal(t, 4, move.X)
	assert.Equal(t, 1, move.Rotations%2, "vertical orientation")
}

func TestBestSkipsRotationBlockedAtSpawn(t *testing.T) {
	board := tetris.NewBoard(5, 8)
	for y := 4; y < 8; y++ {
		for x := range 4 {
			board.Set(x, y, 1)
		}
	}
	board.Set(0, 3, 1)

	move, ok := autoplay.NewPlanner().Best(board, tetris.NewPiece(tetris.KindI, 0, 0))
	require.True(t, ok)
	assert.Zero(t, move.Rotations, "the I cannot turn upright where it spawned")
}

func TestBestSkipsColumnsBehindWalls(t *testing.T) {
	board := tetris.NewBoard(6, 6)
	for y := range 6 {
		board.Set(2, y, 1)
	}
	for _, x := range []int{0, 1, 5} {
		board.Set(x, 5, 1)
	}

	move, ok := autoplay.NewPlanner().Best(board, tetris.NewPiece(tetris.KindO, 0, 0))
	require.True(t, ok)
	assert.Equal(t, 0, move.X, "the gap past the wall cannot be reached")
}

func TestBestReportsNoFit(t *testing.T) {
	board := tetris.NewBoard(4, 4)
	for y := range 4 {
		for x := range 4 {
			board.Set(x, y, 1)
		}
	}

	_, ok := autoplay.NewPlanner().Best(board, tetris.NewPiece(tetris.KindT, 0, 0))
	assert.False(t, ok)
}
