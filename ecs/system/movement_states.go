package system

import "github.com/milk9111/calafrios/ecs/component"

// movementState is one node of the activation machine. Enter applies the
// audio, speed and animation side effects of arriving in the state;
// HandleInput picks at most one transition per frame.
type movementState interface {
	ID() component.MovementState
	Enter(ctx *movementContext)
	HandleInput(ctx *movementContext)
}

// Movement state singletons (avoid allocations on transitions).
var (
	movementStateStopped movementState = &movementStoppedState{}
	movementStateWalking movementState = &movementWalkingState{}
	movementStateRunning movementState = &movementRunningState{}
)

func movementStateFor(id component.MovementState) movementState {
	switch id {
	case component.MovementWalking:
		return movementStateWalking
	case component.MovementRunning:
		return movementStateRunning
	default:
		return movementStateStopped
	}
}

// movementContext gives a state access to the entity's components. Stamina,
// Audio and Animator are optional.
type movementContext struct {
	Input      *component.Input
	Movement   *component.Movement
	Locomotion *component.Locomotion
	Stamina    *component.Stamina
	Audio      *component.Audio
	Animator   *component.Animator

	ChangeState func(next movementState)
}

func (ctx *movementContext) hasStamina() bool {
	return ctx.Stamina == nil || ctx.Stamina.Value > 0
}

func (ctx *movementContext) stopCue(name string) {
	if ctx.Audio != nil && ctx.Audio.IsPlaying(name) {
		ctx.Audio.RequestStop(name)
	}
}

func (ctx *movementContext) playCue(name string) {
	if ctx.Audio != nil {
		ctx.Audio.RequestPlay(name)
	}
}

func (ctx *movementContext) setWalking(v bool) {
	if ctx.Animator != nil {
		ctx.Animator.SetBool(ctx.Movement.AnimationFlag, v)
	}
}

type movementStoppedState struct{}

type movementWalkingState struct{}

type movementRunningState struct{}

func (movementStoppedState) ID() component.MovementState { return component.MovementStopped }
func (movementStoppedState) Enter(ctx *movementContext) {
	ctx.stopCue(ctx.Movement.WalkCue)
	ctx.stopCue(ctx.Movement.RunCue)
	ctx.Locomotion.Speed = ctx.Locomotion.BaseSpeed
	ctx.setWalking(false)
}
func (movementStoppedState) HandleInput(ctx *movementContext) {
	if ctx.Input.Moving {
		ctx.ChangeState(movementStateWalking)
	}
}

func (movementWalkingState) ID() component.MovementState { return component.MovementWalking }
func (movementWalkingState) Enter(ctx *movementContext) {
	ctx.stopCue(ctx.Movement.RunCue)
	ctx.Locomotion.Speed = ctx.Locomotion.BaseSpeed
	if !ctx.Audio.IsPlaying(ctx.Movement.WalkCue) {
		ctx.playCue(ctx.Movement.WalkCue)
	}
	ctx.setWalking(true)
}
func (movementWalkingState) HandleInput(ctx *movementContext) {
	if !ctx.Input.Moving {
		ctx.ChangeState(movementStateStopped)
		return
	}
	if ctx.Input.StartRun && ctx.hasStamina() {
		ctx.ChangeState(movementStateRunning)
	}
}

func (movementRunningState) ID() component.MovementState { return component.MovementRunning }
func (movementRunningState) Enter(ctx *movementContext) {
	ctx.stopCue(ctx.Movement.WalkCue)
	ctx.Locomotion.Speed = ctx.Locomotion.BaseSpeed * ctx.Movement.RunMultiplier
	if !ctx.Audio.IsPlaying(ctx.Movement.RunCue) {
		ctx.playCue(ctx.Movement.RunCue)
	}
	ctx.setWalking(true)
}
func (movementRunningState) HandleInput(ctx *movementContext) {
	if !ctx.Input.Moving {
		ctx.ChangeState(movementStateStopped)
		return
	}
	if ctx.Input.StopRun || !ctx.hasStamina() {
		ctx.ChangeState(movementStateWalking)
	}
}
