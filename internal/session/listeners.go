package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/plus3/blockfall/internal/scores"
	"github.com/plus3/blockfall/tetris"
)

const recordTimeout = 2 * time.Second

// ScoreRecorder stores every finished game.
type ScoreRecorder struct {
	store  scores.Store
	player string
	play   *Play
	logger *slog.Logger

	mu   sync.Mutex
	last *scores.Entry
}

func NewScoreRecorder(store scores.Store, player string, play *Play, logger *slog.Logger) *ScoreRecorder {
	return &ScoreRecorder{
		store:  store,
		player: player,
		play:   play,
		logger: logger,
	}
}

func (r *ScoreRecorder) OnEvent(event any) {
	over, ok := event.(tetris.GameOver)
	if !ok {
		return
	}

	entry := scores.Entry{
		Player: r.player,
		Score:  over.Score,
		Lines:  over.Lines,
		Level:  over.Level,
		Pieces: over.Pieces,
	}
	if r.play != nil {
		entry.Duration = r.play.Elapsed
	}

	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	stored, err := r.store.Record(ctx, entry)
	if err != nil {
		r.logger.Error("record score", "error", err, "player", r.player, "score", over.Score)
		return
	}

	r.mu.Lock()
	r.last = &stored
	r.mu.Unlock()
	r.logger.Debug("score recorded", "id", stored.ID, "score", stored.Score)
}

// Last returns the most recently stored entry.
func (r *ScoreRecorder) Last() (scores.Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.last == nil {
		return scores.Entry{}, false
	}
	return *r.last, true
}

// EventLogger writes game events to a structured logger.
type EventLogger struct {
	Logger *slog.Logger
}

func (l EventLogger) OnEvent(event any) {
	switch ev := event.(type) {
	case tetris.Spawned:
		l.Logger.Debug("piece spawned", "kind", ev.Kind, "next", ev.Next)
	case tetris.Locked:
		l.Logger.Debug("piece locked", "kind", ev.Kind, "x", ev.X, "y", ev.Y)
	case tetris.LinesCleared:
		l.Logger.Info("lines cleared",
			"count", ev.Count,
			"points", ev.Points,
			"score", ev.Total,
			"level", ev.Level,
		)
	case tetris.GameOver:
		l.Logger.Info("game over",
			"score", ev.Score,
			"lines", ev.Lines,
			"level", ev.Level,
			"pieces", ev.Pieces,
		)
	}
}
