package desktop

// Side panel width in cells, holding the next piece and the HUD.
const panelCells = 7

// layout places the board and side panel for a given cell size.
type layout struct {
	cell   int
	margin int
	width  int
	height int
}

func newLayout(boardWidth, boardHeight, cell int) layout {
	margin := cell / 2
	return layout{
		cell:   cell,
		margin: margin,
		width:  boardWidth,
		height: boardHeight,
	}
}

// screenSize returns the window size in pixels.
func (l layout) screenSize() (int, int) {
	w := l.margin*3 + (l.width+panelCells)*l.cell
	h := l.margin*2 + l.height*l.cell
	return w, h
}

// cellOrigin returns the top-left pixel of board cell (x, y).
func (l layout) cellOrigin(x, y int) (float32, float32) {
	return float32(l.margin + x*l.cell), float32(l.margin + y*l.cell)
}

// panelOrigin returns the top-left pixel of the side panel.
func (l layout) panelOrigin() (int, int) {
	return l.margin*2 + l.width*l.cell, l.margin
}
