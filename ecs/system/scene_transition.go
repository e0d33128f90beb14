package system

import (
	"github.com/milk9111/calafrios/ecs"
	"github.com/milk9111/calafrios/ecs/component"
	"github.com/rs/zerolog/log"
)

// SceneTransitionSystem advances fade-to-black steppers and requests the
// target scene once the screen is fully dark.
type SceneTransitionSystem struct{}

func NewSceneTransitionSystem() *SceneTransitionSystem {
	return &SceneTransitionSystem{}
}

// StartSceneTransition spawns a stepper. The first step happens on the next
// update; each following one after stepPeriod seconds.
func StartSceneTransition(w *ecs.World, target int, speed, stepPeriod float64) ecs.Entity {
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.SceneTransitionComponent.Kind(), &component.SceneTransition{
		Target:     target,
		Speed:      speed,
		StepPeriod: stepPeriod,
		Timer:      stepPeriod,
	})
	return ent
}

func (s *SceneTransitionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := ecs.DeltaTime(w)
	ecs.ForEach(w, component.SceneTransitionComponent.Kind(), func(_ ecs.Entity, tr *component.SceneTransition) {
		if tr.Done {
			return
		}
		if tr.StepPeriod <= 0 {
			s.step(w, tr)
			return
		}
		tr.Timer += dt
		for tr.Timer >= tr.StepPeriod && !tr.Done {
			tr.Timer -= tr.StepPeriod
			s.step(w, tr)
		}
	})
}

func (s *SceneTransitionSystem) step(w *ecs.World, tr *component.SceneTransition) {
	tr.Alpha += tr.Speed
	if tr.Alpha > 1 {
		tr.Alpha = 1
	}

	_, listener, hasListener := ecs.Single(w, component.AudioListenerComponent.Kind())
	if hasListener {
		listener.Volume -= tr.Speed
		if listener.Volume < 0 {
			listener.Volume = 0
		}
	}

	if tr.Alpha < 1 {
		return
	}

	tr.Done = true
	if _, menu, ok := ecs.Single(w, component.PauseMenuComponent.Kind()); ok {
		menu.State = component.PauseRunning
	}
	if hasListener {
		listener.Paused = false
	}

	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.SceneLoadRequestComponent.Kind(), &component.SceneLoadRequest{Index: tr.Target})
	log.Info().Int("scene", tr.Target).Msg("scene transition: faded out")
}
