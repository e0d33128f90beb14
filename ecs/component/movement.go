package component

// MovementState is the discrete locomotion mode selecting audio and
// animation.
type MovementState int

const (
	MovementStopped MovementState = iota
	MovementWalking
	MovementRunning
)

func (s MovementState) String() string {
	switch s {
	case MovementStopped:
		return "stopped"
	case MovementWalking:
		return "walking"
	case MovementRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Movement holds the activation state and the cue names it drives.
type Movement struct {
	State         MovementState
	RunMultiplier float64

	WalkCue string
	RunCue  string
	// AnimationFlag is the animator bool raised while moving.
	AnimationFlag string
}

var MovementComponent = NewComponent[Movement]()
