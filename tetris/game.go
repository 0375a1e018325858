package tetris

const (
	DefaultWidth  = 10
	DefaultHeight = 20

	// SpawnY is the row new pieces enter on.
	SpawnY = 0

	PointsPerLine = 100
	LinesPerLevel = 10
)

// Options configures a Game.
type Options struct {
	Width      int
	Height     int
	Randomizer Randomizer
}

// Game is the full state of one play session.
type Game struct {
	board      *Board
	current    Piece
	next       Kind
	randomizer Randomizer

	score    int
	lines    int
	pieces   int
	over     bool
	paused   bool
	version  uint64
	finished *GameOver
}

// New starts a game and spawns its first piece. Zero dimensions fall back to
// the 10x20 default and a nil randomizer falls back to Uniform seeded with 0.
func New(opts Options) *Game {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.Randomizer == nil {
		opts.Randomizer = NewUniform(0)
	}

	g := &Game{
		board:      NewBoard(opts.Width, opts.Height),
		randomizer: opts.Randomizer,
	}
	g.next = g.randomizer.Next()
	g.spawn()
	return g
}

// Reset clears the board and score and spawns a fresh piece. The randomizer
// keeps its state.
func (g *Game) Reset() []Event {
	g.board = NewBoard(g.board.Width(), g.board.Height())
	g.score = 0
	g.lines = 0
	g.pieces = 0
	g.over = false
	g.paused = false
	g.finished = nil
	return g.spawn()
}

// Board returns the settled cells, without the active piece.
func (g *Game) Board() *Board { return g.board }

// Current returns the falling piece.
func (g *Game) Current() Piece { return g.current }

// Next returns the kind that spawns after the current piece locks.
func (g *Game) Next() Kind { return g.next }

// Score returns the points earned so far.
func (g *Game) Score() int { return g.score }

// Lines returns the number of cleared rows.
func (g *Game) Lines() int { return g.lines }

// Pieces returns the number of locked pieces.
func (g *Game) Pieces() int { return g.pieces }

// Over reports whether a spawn has collided.
func (g *Game) Over() bool { return g.over }

// Paused reports whether input and gravity are suspended.
func (g *Game) Paused() bool { return g.paused }

// Level starts at 1 and goes up every LinesPerLevel cleared rows.
func (g *Game) Level() int { return g.lines/LinesPerLevel + 1 }

// Version changes whenever anything drawn changes.
func (g *Game) Version() uint64 { return g.version }

// Result returns the final tally, or nil while the game is running.
func (g *Game) Result() *GameOver { return g.finished }

// Active reports whether the game accepts input.
func (g *Game) Active() bool {
	return !g.over && !g.paused
}

// TogglePause flips the pause flag. A finished game cannot be paused.
func (g *Game) TogglePause() {
	if g.over {
		return
	}
	g.paused = !g.paused
	g.version++
}

// MoveLeft shifts the active piece one column left unless blocked.
func (g *Game) MoveLeft() bool {
	return g.try(g.current.Moved(-1, 0))
}

// MoveRight shifts the active piece one column right unless blocked.
func (g *Game) MoveRight() bool {
	return g.try(g.current.Moved(1, 0))
}

// Rotate turns the active piece clockwise around its top-left corner unless
// the rotated shape would collide.
func (g *Game) Rotate() bool {
	return g.try(g.current.Rotated())
}

// MoveDown advances the active piece one row. When the row below is blocked
// the piece locks: it is merged, full lines are cleared and scored, and the
// next piece spawns. MoveDown is both the soft drop and the gravity tick.
func (g *Game) MoveDown() []Event {
	if !g.Active() {
		return nil
	}
	if g.try(g.current.Moved(0, 1)) {
		return nil
	}
	return g.lock()
}

// HardDrop drops the active piece as far as it goes and locks it.
func (g *Game) HardDrop() []Event {
	if !g.Active() {
		return nil
	}
	g.current = g.landing()
	return g.lock()
}

// Ghost returns where the active piece would land after a hard drop.
func (g *Game) Ghost() Piece {
	return g.landing()
}

// Display returns the board with the active piece merged in. Once the game
// is over the blocked spawn is left out.
func (g *Game) Display() *Board {
	if g.over {
		return g.board.Clone()
	}
	return g.board.Merge(g.current)
}

// SpawnX returns the column new pieces enter on: 3 on a 10-wide board,
// centered for other widths.
func SpawnX(width int) int {
	return max(0, (width-4)/2)
}

func (g *Game) landing() Piece {
	p := g.current
	for !g.board.Collides(p.Moved(0, 1)) {
		p = p.Moved(0, 1)
	}
	return p
}

func (g *Game) try(p Piece) bool {
	if !g.Active() || g.board.Collides(p) {
		return false
	}
	g.current = p
	g.version++
	return true
}

func (g *Game) lock() []Event {
	locked := g.current
	events := []Event{Locked{Kind: locked.Kind, X: locked.X, Y: locked.Y}}
	g.pieces++

	merged := g.board.Merge(locked)
	board, cleared := merged.ClearLines()
	g.board = board
	if cleared > 0 {
		points := cleared * PointsPerLine
		g.score += points
		g.lines += cleared
		events = append(events, LinesCleared{
			Count:  cleared,
			Points: points,
			Total:  g.score,
			Level:  g.Level(),
		})
	}

	events = append(events, g.spawn()...)
	if g.over {
		// The clear only takes effect when the next piece fits.
		g.board = merged
	}
	return events
}

func (g *Game) spawn() []Event {
	g.version++
	kind := g.next
	g.next = g.randomizer.Next()
	g.current = NewPiece(kind, SpawnX(g.board.Width()), SpawnY)

	if g.board.Collides(g.current) {
		g.over = true
		g.finished = &GameOver{
			Score:  g.score,
			Lines:  g.lines,
			Level:  g.Level(),
			Pieces: g.pieces,
		}
		return []Event{*g.finished}
	}
	return []Event{Spawned{Kind: kind, Next: g.next}}
}
