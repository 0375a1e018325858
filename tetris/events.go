package tetris

// Event reports something a game operation caused.
type Event interface {
	event()
}

// Spawned is emitted when a new piece enters the board.
type Spawned struct {
	Kind Kind
	Next Kind
}

// Locked is emitted when the active piece is merged into the board.
type Locked struct {
	Kind Kind
	X, Y int
}

// LinesCleared is emitted when a lock completes one or more rows.
type LinesCleared struct {
	Count  int
	Points int
	Total  int
	Level  int
}

// GameOver is emitted once, when a spawned piece collides.
type GameOver struct {
	Score  int
	Lines  int
	Level  int
	Pieces int
}

func (Spawned) event()      {}
func (Locked) event()       {}
func (LinesCleared) event() {}
func (GameOver) event()     {}
