package tetris

// Cell is a board square: 0 when empty, otherwise the color of the kind
// that filled it.
type Cell uint8

// Empty is the zero Cell.
const Empty Cell = 0

// Shape is a piece matrix. Non-zero entries are filled.
type Shape [][]Cell

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for i, row := range s {
		out[i] = append([]Cell(nil), row...)
	}
	return out
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Rotate returns the shape turned 90 degrees clockwise. A rows x cols shape
// becomes cols x rows.
func Rotate(s Shape) Shape {
	rows := s.Height()
	cols := s.Width()
	rotated := make(Shape, cols)
	for i := range cols {
		rotated[i] = make([]Cell, rows)
		for j := range rows {
			rotated[i][j] = s[rows-1-j][i]
		}
	}
	return rotated
}
