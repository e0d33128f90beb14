package component

// Input stores per-frame input state for an entity.
type Input struct {
	// MoveX and MoveZ are the strafe and forward axes in [-1, 1].
	MoveX float64
	MoveZ float64
	// Moving is true while any movement key or stick is held, even if the
	// axes cancel out.
	Moving bool

	StartRun     bool
	StopRun      bool
	PausePressed bool

	// LookX is the horizontal mouse delta in pixels this frame.
	LookX float64

	// Disabled mutes in-game input while paused or leaving the scene. Pause
	// still reaches the pause system.
	Disabled bool
}

var InputComponent = NewComponent[Input]()

// Look turns the entity with horizontal mouse movement.
type Look struct {
	Sensitivity float64
}

var LookComponent = NewComponent[Look]()
