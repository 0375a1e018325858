package engine_test

import (
	"fmt"

	"github.com/plus3/blockfall/engine"
)

type Gravity struct {
	Interval float64
	Elapsed  float64
	Ticks    int
}

type GravitySystem struct {
	Gravity engine.Resource[Gravity]
}

func (s *GravitySystem) Execute(frame *engine.UpdateFrame) {
	g := s.Gravity.Get()
	g.Elapsed += frame.DeltaTime
	for g.Elapsed >= g.Interval {
		g.Elapsed -= g.Interval
		g.Ticks++
		frame.Commands.Emit(fmt.Sprintf("tick %d", g.Ticks))
	}
}

// ExampleScheduler shows a fixed-interval timer built from frame deltas.
// Resource fields are bound on Register and events reach listeners once
// every system of the frame has run.
func ExampleScheduler() {
	resources := engine.NewResources()
	engine.AddResource(resources, Gravity{Interval: 0.5})

	scheduler := engine.NewScheduler(resources)
	scheduler.Register(&GravitySystem{})
	scheduler.Subscribe(engine.ListenerFunc(func(ev any) {
		fmt.Println(ev)
	}))

	for range 4 {
		scheduler.Once(0.25)
	}

	var gravity *Gravity
	resources.ReadResource(&gravity)
	fmt.Println("ticks:", gravity.Ticks)

	// Output:
	// tick 1
	// tick 2
	// ticks: 2
}
