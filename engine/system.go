package engine

// System is one step of a frame. Systems declare Resource fields for the
// shared state they touch and may keep their own state between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// Listener receives the events emitted during a frame, after every system
// has run.
type Listener interface {
	OnEvent(event any)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(event any)

func (f ListenerFunc) OnEvent(event any) {
	f(event)
}
