package tetris

// Board is a grid of cells stored row-major with row 0 at the top.
type Board struct {
	width  int
	height int
	cells  []Cell
}

// NewBoard returns an empty width x height board.
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// InBounds reports whether (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the cell at (x, y). Out of bounds reads return Empty.
func (b *Board) At(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Empty
	}
	return b.cells[y*b.width+x]
}

// Set writes the cell at (x, y). Out of bounds writes are dropped.
func (b *Board) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = c
}

// Row returns a copy of row y.
func (b *Board) Row(y int) []Cell {
	row := make([]Cell, b.width)
	copy(row, b.cells[y*b.width:(y+1)*b.width])
	return row
}

// Rows returns a copy of the board as a slice of rows.
func (b *Board) Rows() [][]Cell {
	rows := make([][]Cell, b.height)
	for y := range rows {
		rows[y] = b.Row(y)
	}
	return rows
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	return &Board{
		width:  b.width,
		height: b.height,
		cells:  append([]Cell(nil), b.cells...),
	}
}

// Collides reports whether any filled cell of p is off the board or overlaps
// a filled board cell. Cells above the top row count as off the board.
func (b *Board) Collides(p Piece) bool {
	collides := false
	p.Cells(func(x, y int, _ Cell) {
		if collides {
			return
		}
		if !b.InBounds(x, y) || b.cells[y*b.width+x] != Empty {
			collides = true
		}
	})
	return collides
}

// Merge returns a copy of the board with p's filled cells written into it.
// Cells above the top row are skipped.
func (b *Board) Merge(p Piece) *Board {
	merged := b.Clone()
	p.Cells(func(x, y int, c Cell) {
		if y >= 0 {
			merged.Set(x, y, c)
		}
	})
	return merged
}

// ClearLines returns a copy of the board with every full row removed and the
// same number of empty rows inserted at the top, plus the number removed.
func (b *Board) ClearLines() (*Board, int) {
	kept := make([]Cell, 0, len(b.cells))
	for y := range b.height {
		if !b.rowFull(y) {
			kept = append(kept, b.cells[y*b.width:(y+1)*b.width]...)
		}
	}
	cleared := b.height - len(kept)/b.width
	if cleared == 0 {
		return b.Clone(), 0
	}

	out := NewBoard(b.width, b.height)
	copy(out.cells[cleared*b.width:], kept)
	return out, cleared
}

// FullRows returns the indexes of every full row, top to bottom.
func (b *Board) FullRows() []int {
	var rows []int
	for y := range b.height {
		if b.rowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.cells[y*b.width : (y+1)*b.width] {
		if c == Empty {
			return false
		}
	}
	return true
}
