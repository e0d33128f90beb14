package ecs

import "github.com/milk9111/calafrios/ecs/component"

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities, their components and the current simulation clock.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]componentStore

	delta   float64
	elapsed float64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]componentStore)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot. It reports
// false when e was already dead.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities lists all live entities in slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// DeltaTime is the step, in seconds, of the phase currently being run.
func DeltaTime(w *World) float64 {
	if w == nil {
		return 0
	}
	return w.delta
}

// Elapsed is the total simulated time in seconds.
func Elapsed(w *World) float64 {
	if w == nil {
		return 0
	}
	return w.elapsed
}
