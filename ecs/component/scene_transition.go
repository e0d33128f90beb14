package component

// SceneTransition is a fade-to-black stepper. Every StepPeriod seconds Alpha
// rises and the listener volume falls by Speed; once Alpha reaches 1 the
// target scene is requested exactly once.
type SceneTransition struct {
	Target     int
	Speed      float64
	StepPeriod float64

	Alpha float64
	Timer float64
	Done  bool
}

var SceneTransitionComponent = NewComponent[SceneTransition]()

// SceneLoadRequest asks the game loop to replace the world with the scene at
// Index. Systems only emit it; the game loop owns the reload.
type SceneLoadRequest struct {
	Index int
}

var SceneLoadRequestComponent = NewComponent[SceneLoadRequest]()

// QuitRequest asks the game loop to terminate.
type QuitRequest struct{}

var QuitRequestComponent = NewComponent[QuitRequest]()
