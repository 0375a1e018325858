package session

import "sync"

//go:generate go tool stringer -type=Action -trimprefix=Action

// Action is one player command.
type Action uint8

const (
	ActionLeft Action = iota
	ActionRight
	ActionRotate
	ActionSoftDrop
	ActionHardDrop
	ActionPause
	ActionRestart
)

// InputQueue collects actions from input goroutines until the next frame
// drains them. It is safe for concurrent use.
type InputQueue struct {
	mu      sync.Mutex
	actions []Action
}

func NewInputQueue() *InputQueue {
	return &InputQueue{}
}

// Push appends actions in order.
func (q *InputQueue) Push(actions ...Action) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.actions = append(q.actions, actions...)
}

// Drain removes and returns every queued action.
func (q *InputQueue) Drain() []Action {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.actions) == 0 {
		return nil
	}
	out := q.actions
	q.actions = nil
	return out
}

// Len returns the number of queued actions.
func (q *InputQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.actions)
}
