package system

import (
	"github.com/milk9111/calafrios/ecs"
	"github.com/milk9111/calafrios/ecs/component"
)

// LocomotionSystem turns the locomotion axes into a displacement each physics
// step and hands it to the character body.
type LocomotionSystem struct{}

func NewLocomotionSystem() *LocomotionSystem {
	return &LocomotionSystem{}
}

func (l *LocomotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := ecs.DeltaTime(w)
	ecs.ForEach3(w, component.LocomotionComponent.Kind(), component.TransformComponent.Kind(), component.CharacterBodyComponent.Kind(),
		func(_ ecs.Entity, loco *component.Locomotion, transform *component.Transform, body *component.CharacterBody) {
			body.Move(Displacement(*transform, *loco, dt))
		})
}

// Displacement is (right·x + forward·z)·speed plus the constant downward
// bias, scaled by the step.
func Displacement(t component.Transform, loco component.Locomotion, dt float64) component.Vec3 {
	move := t.Right().Scale(loco.AxisX * loco.Speed).
		Add(t.Forward().Scale(loco.AxisZ * loco.Speed)).
		Add(t.Up().Scale(-loco.GravityBias))
	return move.Scale(dt)
}
