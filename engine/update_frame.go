package engine

// UpdateFrame is handed to every system during one Scheduler.Once call.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Resources *Resources
}

func newUpdateFrame(dt float64, resources *Resources, commands *Commands) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  commands,
		Resources: resources,
	}
}
