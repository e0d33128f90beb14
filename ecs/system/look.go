package system

import (
	"math"

	"github.com/milk9111/calafrios/ecs"
	"github.com/milk9111/calafrios/ecs/component"
)

// LookSystem turns entities by the horizontal mouse delta.
type LookSystem struct{}

func NewLookSystem() *LookSystem {
	return &LookSystem{}
}

func (l *LookSystem) Update(w *ecs.World) {
	ecs.ForEach3(w, component.InputComponent.Kind(), component.LookComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, input *component.Input, look *component.Look, transform *component.Transform) {
			if input.LookX == 0 {
				return
			}
			transform.Yaw = math.Mod(transform.Yaw+input.LookX*look.Sensitivity, 2*math.Pi)
		})
}
