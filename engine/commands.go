package engine

// Commands buffers work that must happen after every system of the frame
// has executed: events for listeners and deferred functions.
type Commands struct {
	events []any
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Emit queues an event for the scheduler's listeners.
func (c *Commands) Emit(events ...any) {
	c.events = append(c.events, events...)
}

// Defer queues a function to run at the end of the frame.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Pending returns the number of queued events.
func (c *Commands) Pending() int {
	return len(c.events)
}

// Flush delivers queued events to listeners in emission order, then runs the
// deferred functions, and resets the buffer.
func (c *Commands) Flush(listeners []Listener) {
	for _, ev := range c.events {
		for _, l := range listeners {
			l.OnEvent(ev)
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	clear(c.events)
	c.events = c.events[:0]
	clear(c.defers)
	c.defers = c.defers[:0]
}
