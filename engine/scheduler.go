package engine

import (
	"context"
	"reflect"
	"strings"
	"time"
)

// SchedulerStats is a snapshot of frame and per-system timings.
type SchedulerStats struct {
	SystemCount int
	Frames      int64
	Systems     []SystemStats
}

// SystemStats holds the timings of one system, in registration order.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

// registered pairs a system with its running timings.
type registered struct {
	system System
	stats  SystemStats
}

func (r *registered) execute(frame *UpdateFrame) {
	start := time.Now()
	r.system.Execute(frame)
	elapsed := time.Since(start)

	st := &r.stats
	if st.ExecutionCount == 0 || elapsed < st.MinDuration {
		st.MinDuration = elapsed
	}
	st.MaxDuration = max(st.MaxDuration, elapsed)
	st.ExecutionCount++
	st.LastDuration = elapsed
	st.TotalDuration += elapsed
	st.AvgDuration = st.TotalDuration / time.Duration(st.ExecutionCount)
}

// Scheduler runs systems in registration order against shared Resources.
// It is not safe for concurrent use; feed it input through a resource that
// does its own locking.
type Scheduler struct {
	resources *Resources
	systems   []*registered
	listeners []Listener
	commands  *Commands
	frames    int64
}

func NewScheduler(resources *Resources) *Scheduler {
	return &Scheduler{
		resources: resources,
		commands:  newCommands(),
	}
}

// Resources returns the scheduler's shared state.
func (s *Scheduler) Resources() *Resources {
	return s.resources
}

// Register binds the system's Resource fields and appends it to the frame.
func (s *Scheduler) Register(system System) {
	s.bindResources(system)
	s.systems = append(s.systems, &registered{
		system: system,
		stats:  SystemStats{Name: systemName(system)},
	})
}

// Subscribe adds a listener for events emitted by systems.
func (s *Scheduler) Subscribe(listener Listener) {
	s.listeners = append(s.listeners, listener)
}

// Emit queues events from outside a frame. They reach listeners when the
// next frame flushes, ahead of anything its systems emit.
func (s *Scheduler) Emit(events ...any) {
	s.commands.Emit(events...)
}

func systemName(system System) string {
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// bindResources calls Init on every exported Resource[T] field of a struct
// system.
func (s *Scheduler) bindResources(system System) {
	v := reflect.ValueOf(system)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}

	for i := range v.NumField() {
		field := v.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct ||
			!strings.HasPrefix(field.Type().Name(), "Resource[") {
			continue
		}

		init := field.Addr().MethodByName("Init")
		if !init.IsValid() {
			panic("engine: Resource field " + v.Type().Field(i).Name + " has no Init method")
		}
		init.Call([]reflect.Value{reflect.ValueOf(s.resources)})
	}
}

// Once runs every system with dt in seconds, then delivers the frame's
// events to listeners and runs deferred commands.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(dt, s.resources, s.commands)
	for _, r := range s.systems {
		r.execute(frame)
	}
	s.frames++
	frame.Commands.Flush(s.listeners)
}

// Run calls Once every interval, passing the measured time since the
// previous tick, until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Once(now.Sub(last).Seconds())
			last = now
		}
	}
}

// GetStats returns a copy of the current timings.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.systems)),
	}
	for i, r := range s.systems {
		stats.Systems[i] = r.stats
	}
	return stats
}
