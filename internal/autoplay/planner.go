// Package autoplay picks a landing spot for each piece by scoring every
// rotation and column with a weighted board heuristic.
package autoplay

import (
	"math"

	"github.com/plus3/blockfall/tetris"
)

// Weights scale the board features of a candidate placement. Positive
// weights reward a feature, negative ones penalize it.
type Weights struct {
	AggregateHeight float64
	CompleteLines   float64
	Holes           float64
	Bumpiness       float64
}

// DefaultWeights favor flat, hole-free stacks.
var DefaultWeights = Weights{
	AggregateHeight: -0.510066,
	CompleteLines:   0.760666,
	Holes:           -0.35663,
	Bumpiness:       -0.184483,
}

// Move is a placement: rotate clockwise Rotations times, then shift to X,
// then hard drop.
type Move struct {
	Rotations int
	X         int
	Score     float64
}

type Planner struct {
	Weights Weights
}

func NewPlanner() *Planner {
	return &Planner{Weights: DefaultWeights}
}

// Best returns the highest scoring placement for p on board. It reports
// false when no rotation fits anywhere.
func (pl *Planner) Best(board *tetris.Board, p tetris.Piece) (Move, bool) {
	best := Move{Score: math.Inf(-1)}
	found := false

	shape := p.Shape
	for rotations := range 4 {
		if rotations > 0 {
			shape = tetris.Rotate(shape)
		}
		// Rotations are applied before any shift, so each one has to fit
		// where the piece spawned.
		rotated := tetris.Piece{Kind: p.Kind, Shape: shape, X: p.X, Y: p.Y}
		if board.Collides(rotated) {
			break
		}
		for x := 0; x+shape.Width() <= board.Width(); x++ {
			if !reachable(board, rotated, x) {
				continue
			}
			candidate := rotated
			candidate.X = x
			for !board.Collides(candidate.Moved(0, 1)) {
				candidate = candidate.Moved(0, 1)
			}

			score := pl.Evaluate(board.Merge(candidate))
			if !found || score > best.Score {
				best = Move{Rotations: rotations, X: x, Score: score}
				found = true
			}
		}
	}
	return best, found
}

// reachable reports whether p can shift one column at a time to x.
func reachable(board *tetris.Board, p tetris.Piece, x int) bool {
	step := 1
	if x < p.X {
		step = -1
	}
	for p.X != x {
		p = p.Moved(step, 0)
		if board.Collides(p) {
			return false
		}
	}
	return true
}

// Evaluate scores a board after a piece has been merged into it.
func (pl *Planner) Evaluate(board *tetris.Board) float64 {
	f := Measure(board)
	w := pl.Weights
	return w.AggregateHeight*float64(f.AggregateHeight) +
		w.CompleteLines*float64(f.CompleteLines) +
		w.Holes*float64(f.Holes) +
		w.Bumpiness*float64(f.Bumpiness)
}

// Features are the board properties the planner weighs.
type Features struct {
	AggregateHeight int
	CompleteLines   int
	Holes           int
	Bumpiness       int
}

// Measure computes the features of board.
func Measure(board *tetris.Board) Features {
	var f Features
	f.CompleteLines = len(board.FullRows())

	heights := make([]int, board.Width())
	for x := range board.Width() {
		top := board.Height()
		for y := range board.Height() {
			if board.At(x, y) != tetris.Empty {
				top = y
				break
			}
		}
		heights[x] = board.Height() - top
		f.AggregateHeight += heights[x]

		for y := top + 1; y < board.Height(); y++ {
			if board.At(x, y) == tetris.Empty {
				f.Holes++
			}
		}
	}

	for x := 1; x < len(heights); x++ {
		d := heights[x] - heights[x-1]
		if d < 0 {
			d = -d
		}
		f.Bumpiness += d
	}
	return f
}
