// Package session wires a tetris.Game into an engine.Scheduler: queued
// input, the gravity timer, play statistics, score recording and the
// optional autoplay bot.
package session

import (
	"fmt"
	"log/slog"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/internal/config"
	"github.com/plus3/blockfall/internal/logging"
	"github.com/plus3/blockfall/internal/scores"
	"github.com/plus3/blockfall/tetris"
)

// Options configures a Session.
type Options struct {
	Config config.Config
	Logger *slog.Logger
	// Scores receives every finished game. Nil disables recording.
	Scores scores.Store
	// Autoplay registers the bot; AutoRestart makes it start a new game
	// after each game over.
	Autoplay    bool
	AutoRestart bool
	Listeners   []engine.Listener
}

// Session owns one game and the scheduler that drives it.
type Session struct {
	scheduler *engine.Scheduler
	play      *Play
	gravity   *Gravity
	stats     *Stats
	recorder  *ScoreRecorder
	logger    *slog.Logger
}

func New(opts Options) (*Session, error) {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	randomizer, err := tetris.NewRandomizer(cfg.Randomizer, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	game := tetris.New(tetris.Options{
		Width:      cfg.Board.Width,
		Height:     cfg.Board.Height,
		Randomizer: randomizer,
	})

	resources := engine.NewResources()
	s := &Session{
		scheduler: engine.NewScheduler(resources),
		play:      engine.AddResource(resources, Play{Game: game, Input: NewInputQueue()}),
		gravity:   engine.AddResource(resources, Gravity{Config: cfg.Gravity}),
		stats:     engine.AddResource(resources, NewStats()),
		logger:    logger,
	}

	if opts.Autoplay {
		s.scheduler.Register(NewAutoplaySystem(opts.AutoRestart))
	}
	s.scheduler.Register(&InputSystem{})
	s.scheduler.Register(&GravitySystem{})
	s.scheduler.Register(&ClockSystem{})

	s.scheduler.Subscribe(s.stats)
	if opts.Scores != nil {
		s.recorder = NewScoreRecorder(opts.Scores, cfg.Player, s.play, logger)
		s.scheduler.Subscribe(s.recorder)
	}
	s.scheduler.Subscribe(EventLogger{Logger: logger})
	for _, l := range opts.Listeners {
		s.scheduler.Subscribe(l)
	}

	s.scheduler.Emit(tetris.Spawned{Kind: game.Current().Kind, Next: game.Next()})

	logger.Info("session started",
		"width", game.Board().Width(),
		"height", game.Board().Height(),
		"randomizer", cfg.Randomizer,
		"seed", cfg.Seed,
		"autoplay", opts.Autoplay,
	)
	return s, nil
}

// Register adds a frontend system, such as a renderer, after the game
// systems.
func (s *Session) Register(system engine.System) {
	s.scheduler.Register(system)
}

// Subscribe adds a listener for game events.
func (s *Session) Subscribe(listener engine.Listener) {
	s.scheduler.Subscribe(listener)
}

func (s *Session) Scheduler() *engine.Scheduler { return s.scheduler }
func (s *Session) Input() *InputQueue { return s.play.Input }
func (s *Session) Game() *tetris.Game { return s.play.Game }
func (s *Session) Stats() *Stats { return s.stats }
func (s *Session) Gravity() *Gravity { return s.gravity }

// Recorder returns the score recorder, or nil when recording is disabled.
func (s *Session) Recorder() *ScoreRecorder { return s.recorder }

// Step runs one frame of dt seconds.
func (s *Session) Step(dt float64) {
	s.scheduler.Once(dt)
}

// Snapshot is everything a renderer draws for one frame.
type Snapshot struct {
	Width, Height int
	// Cells is the board with the active piece merged in, row-major.
	Cells     [][]tetris.Cell
	Current   tetris.Piece
	Ghost     tetris.Piece
	ShowPiece bool
	Next      tetris.Kind

	Score   int
	Lines   int
	Level   int
	Pieces  int
	Over    bool
	Paused  bool
	Elapsed float64
	Version uint64
}

func (s *Session) Snapshot() Snapshot {
	game := s.play.Game
	board := game.Display()
	return Snapshot{
		Width:     board.Width(),
		Height:    board.Height(),
		Cells:     board.Rows(),
		Current:   game.Current(),
		Ghost:     game.Ghost(),
		ShowPiece: !game.Over(),
		Next:      game.Next(),
		Score:     game.Score(),
		Lines:     game.Lines(),
		Level:     game.Level(),
		Pieces:    game.Pieces(),
		Over:      game.Over(),
		Paused:    game.Paused(),
		Elapsed:   s.play.Elapsed.Seconds(),
		Version:   game.Version(),
	}
}
