package system

import (
	"github.com/milk9111/calafrios/ecs"
	"github.com/milk9111/calafrios/ecs/component"
)

// NewLevelScheduler wires the gameplay systems in frame order. Locomotion and
// the character controller run in the fixed physics phase.
func NewLevelScheduler(source InputSource, physicsStep float64) *ecs.Scheduler {
	s := ecs.NewScheduler(physicsStep)

	s.Add(NewInputSystem(source))
	s.Add(NewPauseSystem())
	s.Add(NewSceneTransitionSystem())
	s.Add(NewLookSystem())
	s.Add(NewMovementSystem())
	s.Add(NewStaminaSystem())
	s.Add(NewFlashlightSystem())
	s.Add(NewSelfDestructSystem())
	s.Add(NewAudioSystem())
	s.Add(NewCameraSystem())

	s.AddPhysics(NewLocomotionSystem())
	s.AddPhysics(NewCharacterControllerSystem())
	return s
}

// SilenceAudio stops every cue in w immediately. Used before a world is
// discarded so looping players do not outlive their scene.
func SilenceAudio(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, a *component.Audio) {
		for i, p := range a.Players {
			if p != nil && p.IsPlaying() {
				p.Pause()
			}
			a.Play[i] = false
			a.Stop[i] = false
			a.Suspended[i] = false
		}
	})
}
