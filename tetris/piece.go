package tetris

// Piece is a shape placed on a board. X and Y are the board coordinates of
// the shape's top-left corner.
type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int
}

// NewPiece returns a piece of the given kind at (x, y) in spawn orientation.
func NewPiece(kind Kind, x, y int) Piece {
	return Piece{Kind: kind, Shape: kind.Shape(), X: x, Y: y}
}

// Moved returns a copy of p shifted by (dx, dy). The shape is shared.
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of p with its shape turned clockwise.
func (p Piece) Rotated() Piece {
	p.Shape = Rotate(p.Shape)
	return p
}

// Cells calls fn with the board coordinates and color of each filled cell.
func (p Piece) Cells(fn func(x, y int, c Cell)) {
	for dy, row := range p.Shape {
		for dx, c := range row {
			if c != Empty {
				fn(p.X+dx, p.Y+dy, c)
			}
		}
	}
}
