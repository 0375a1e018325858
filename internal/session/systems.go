package session

import (
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/internal/autoplay"
	"github.com/plus3/blockfall/tetris"
)

func emit(frame *engine.UpdateFrame, events []tetris.Event) {
	for _, ev := range events {
		frame.Commands.Emit(ev)
	}
}

func frameDuration(frame *engine.UpdateFrame) time.Duration {
	return time.Duration(frame.DeltaTime * float64(time.Second))
}

// InputSystem applies the queued player actions to the game.
type InputSystem struct {
	Play    engine.Resource[Play]
	Gravity engine.Resource[Gravity]
}

func (s *InputSystem) Execute(frame *engine.UpdateFrame) {
	play := s.Play.Get()
	if play == nil {
		return
	}
	gravity := s.Gravity.Get()

	// Any action that changes the game restarts the drop timer.
	for _, action := range play.Input.Drain() {
		game := play.Game
		moved := false
		switch action {
		case ActionLeft:
			moved = game.MoveLeft()
		case ActionRight:
			moved = game.MoveRight()
		case ActionRotate:
			moved = game.Rotate()
		case ActionSoftDrop:
			emit(frame, game.MoveDown())
			moved = true
		case ActionHardDrop:
			emit(frame, game.HardDrop())
			moved = true
		case ActionPause:
			game.TogglePause()
		case ActionRestart:
			emit(frame, game.Reset())
			play.Elapsed = 0
			moved = true
		}
		if moved && gravity != nil {
			gravity.Restart()
		}
	}
}

// GravitySystem is the drop timer: every interval of accumulated frame time
// moves the active piece down one row. It stops on pause and game over.
type GravitySystem struct {
	Play    engine.Resource[Play]
	Gravity engine.Resource[Gravity]
}

func (s *GravitySystem) Execute(frame *engine.UpdateFrame) {
	play := s.Play.Get()
	gravity := s.Gravity.Get()
	if play == nil || gravity == nil {
		return
	}

	game := play.Game
	if !game.Active() {
		gravity.Restart()
		return
	}

	gravity.Accumulator += frameDuration(frame)
	for game.Active() {
		interval := gravity.Config.IntervalFor(game.Level())
		if gravity.Accumulator < interval {
			break
		}
		gravity.Accumulator -= interval
		gravity.Ticks++
		emit(frame, game.MoveDown())
	}
}

// ClockSystem measures play time, excluding pauses.
type ClockSystem struct {
	Play engine.Resource[Play]
}

func (s *ClockSystem) Execute(frame *engine.UpdateFrame) {
	play := s.Play.Get()
	if play == nil || !play.Game.Active() {
		return
	}
	play.Elapsed += frameDuration(frame)
}

// AutoplaySystem plays the game: for every new piece it queues the rotations,
// moves and hard drop the planner picks. With Restart set it also starts a
// new game after each game over.
type AutoplaySystem struct {
	Play    engine.Resource[Play]
	Planner *autoplay.Planner
	Restart bool

	game    *tetris.Game
	planned int
}

func NewAutoplaySystem(restart bool) *AutoplaySystem {
	return &AutoplaySystem{Planner: autoplay.NewPlanner(), Restart: restart}
}

func (s *AutoplaySystem) Execute(*engine.UpdateFrame) {
	play := s.Play.Get()
	if play == nil || play.Input.Len() > 0 {
		return
	}

	game := play.Game
	if game.Over() {
		if s.Restart {
			play.Input.Push(ActionRestart)
			s.game = nil
		}
		return
	}
	if game.Paused() {
		return
	}
	if s.game == game && s.planned == game.Pieces() {
		return
	}

	s.game = game
	s.planned = game.Pieces()
	play.Input.Push(s.actions(game)...)
}

func (s *AutoplaySystem) actions(game *tetris.Game) []Action {
	current := game.Current()
	move, ok := s.Planner.Best(game.Board(), current)
	if !ok {
		return []Action{ActionHardDrop}
	}

	actions := make([]Action, 0, move.Rotations+game.Board().Width()+1)
	for range move.Rotations {
		actions = append(actions, ActionRotate)
	}
	step := ActionRight
	if move.X < current.X {
		step = ActionLeft
	}
	for range abs(move.X - current.X) {
		actions = append(actions, step)
	}
	return append(actions, ActionHardDrop)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
