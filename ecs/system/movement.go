package system

import (
	"github.com/milk9111/calafrios/ecs"
	"github.com/milk9111/calafrios/ecs/component"
	"github.com/rs/zerolog/log"
)

// MovementSystem copies the movement axes into the locomotion state and runs
// the stopped/walking/running activation machine.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.InputComponent.Kind(), component.MovementComponent.Kind(), component.LocomotionComponent.Kind(),
		func(e ecs.Entity, input *component.Input, movement *component.Movement, loco *component.Locomotion) {
			loco.AxisX = input.MoveX
			loco.AxisZ = input.MoveZ

			ctx := &movementContext{
				Input:      input,
				Movement:   movement,
				Locomotion: loco,
			}
			ctx.Stamina, _ = ecs.Get(w, e, component.StaminaComponent.Kind())
			ctx.Audio, _ = ecs.Get(w, e, component.AudioComponent.Kind())
			ctx.Animator, _ = ecs.Get(w, e, component.AnimatorComponent.Kind())
			ctx.ChangeState = func(next movementState) {
				prev := movement.State
				if prev == next.ID() {
					return
				}
				movement.State = next.ID()
				next.Enter(ctx)
				log.Debug().
					Stringer("entity", e).
					Stringer("from", prev).
					Stringer("to", next.ID()).
					Msg("movement: transition")
			}

			movementStateFor(movement.State).HandleInput(ctx)
		})
}
