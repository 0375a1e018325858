package tetris

//go:generate go tool stringer -type=Kind -trimprefix=Kind

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// KindCount is the number of distinct tetrominoes.
const KindCount = 7

// Kinds lists every tetromino in declaration order.
var Kinds = [KindCount]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// Color returns the cell value used to paint this kind on a board.
func (k Kind) Color() Cell {
	return Cell(k) + 1
}

// Shape returns a fresh copy of the kind's spawn shape.
func (k Kind) Shape() Shape {
	return shapes[k].Clone()
}

var shapes = [KindCount]Shape{
	KindI: {
		{1, 1, 1, 1},
	},
	KindO: {
		{2, 2},
		{2, 2},
	},
	KindT: {
		{0, 3, 0},
		{3, 3, 3},
	},
	KindS: {
		{0, 4, 4},
		{4, 4, 0},
	},
	KindZ: {
		{5, 5, 0},
		{0, 5, 5},
	},
	KindJ: {
		{6, 0, 0},
		{6, 6, 6},
	},
	KindL: {
		{0, 0, 7},
		{7, 7, 7},
	},
}
