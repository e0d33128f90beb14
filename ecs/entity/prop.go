package entity

import (
	"fmt"

	"github.com/milk9111/calafrios/ecs"
	"github.com/milk9111/calafrios/ecs/component"
	"github.com/milk9111/calafrios/prefabs"
)

func NewProp(w *ecs.World, spec *prefabs.PropSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	t := spec.Transform
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: t.X, Y: t.Y, Z: t.Z, Yaw: t.Yaw}); err != nil {
		return ecs.NoEntity, fmt.Errorf("prop %q: %w", spec.Name, err)
	}
	if err := ecs.Add(w, e, component.PropComponent.Kind(), &component.Prop{Name: spec.Name, Radius: spec.Radius}); err != nil {
		return ecs.NoEntity, fmt.Errorf("prop %q: %w", spec.Name, err)
	}
	if sd := spec.SelfDestruct; sd != nil {
		err := ecs.Add(w, e, component.SelfDestructComponent.Kind(), &component.SelfDestruct{
			RefreshTime: sd.RefreshTime,
			MaxTime:     sd.MaxTime,
		})
		if err != nil {
			return ecs.NoEntity, fmt.Errorf("prop %q: %w", spec.Name, err)
		}
	}
	return e, nil
}
