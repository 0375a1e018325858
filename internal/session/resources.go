package session

import (
	"time"

	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/internal/config"
	"github.com/plus3/blockfall/tetris"
)

// Play is the game being played and the input feeding it.
type Play struct {
	Game    *tetris.Game
	Input   *InputQueue
	Elapsed time.Duration
}

// Gravity is the drop timer. Accumulated frame time turns into MoveDown
// calls once it reaches the interval for the current level.
type Gravity struct {
	Config      config.GravityConfig
	Accumulator time.Duration
	Ticks       int
}

// Restart makes the next drop a full interval away.
func (g *Gravity) Restart() {
	g.Accumulator = 0
}

// Stats counts what happened across every game of a session.
type Stats struct {
	spawned *intmap.Map[int, int]

	Games        int
	Locked       int
	LinesCleared int
	BestScore    int
}

func NewStats() Stats {
	return Stats{spawned: intmap.New[int, int](tetris.KindCount)}
}

// Spawned returns how many pieces of kind have entered the board.
func (s *Stats) Spawned(kind tetris.Kind) int {
	n, _ := s.spawned.Get(int(kind))
	return n
}

// TotalSpawned returns the number of pieces of every kind.
func (s *Stats) TotalSpawned() int {
	total := 0
	s.spawned.ForEach(func(_ int, n int) bool {
		total += n
		return true
	})
	return total
}

// OnEvent folds game events into the counters.
func (s *Stats) OnEvent(event any) {
	switch ev := event.(type) {
	case tetris.Spawned:
		n, _ := s.spawned.Get(int(ev.Kind))
		s.spawned.Put(int(ev.Kind), n+1)
	case tetris.Locked:
		s.Locked++
	case tetris.LinesCleared:
		s.LinesCleared += ev.Count
	case tetris.GameOver:
		s.Games++
		s.BestScore = max(s.BestScore, ev.Score)
	}
}
