package entity

import (
	"fmt"

	"github.com/milk9111/calafrios/ecs"
	"github.com/milk9111/calafrios/ecs/component"
	"github.com/milk9111/calafrios/ecs/system"
	"github.com/milk9111/calafrios/prefabs"
)

// NewPlayer spawns the first-person player at the given pose with full
// stamina and stopped movement.
func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec, at prefabs.TransformSpec, load CueLoader) (ecs.Entity, error) {
	if spec == nil {
		return ecs.NoEntity, fmt.Errorf("player: %w: nil spec", prefabs.ErrInvalidSpec)
	}
	if err := spec.Validate(); err != nil {
		return ecs.NoEntity, fmt.Errorf("player: %w", err)
	}

	audioComp, err := buildAudioComponent(spec.Audio, load)
	if err != nil {
		return ecs.NoEntity, fmt.Errorf("player: %w", err)
	}
	if err := requireCues(audioComp, spec.Movement.WalkCue, spec.Movement.RunCue, spec.Stamina.BreathingCue); err != nil {
		return ecs.NoEntity, fmt.Errorf("player: %w", err)
	}

	curve, err := feedbackCurve(spec.Stamina.FeedbackScript)
	if err != nil {
		return ecs.NoEntity, fmt.Errorf("player: %w", err)
	}

	e := ecs.CreateEntity(w)
	stamina := &component.Stamina{Value: spec.Stamina.Max}
	applyStaminaSpec(stamina, spec.Stamina, curve)
	loco := &component.Locomotion{}
	applyLocomotionSpec(loco, spec)
	movement := &component.Movement{State: component.MovementStopped}
	applyMovementSpec(movement, spec)

	adds := []error{
		ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}),
		ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: at.X, Y: at.Y, Z: at.Z, Yaw: at.Yaw}),
		ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}),
		ecs.Add(w, e, component.LookComponent.Kind(), &component.Look{Sensitivity: spec.LookSensitivity}),
		ecs.Add(w, e, component.LocomotionComponent.Kind(), loco),
		ecs.Add(w, e, component.StaminaComponent.Kind(), stamina),
		ecs.Add(w, e, component.MovementComponent.Kind(), movement),
		ecs.Add(w, e, component.AudioComponent.Kind(), audioComp),
		ecs.Add(w, e, component.VignetteComponent.Kind(), &component.Vignette{}),
		ecs.Add(w, e, component.AnimatorComponent.Kind(), &component.Animator{}),
		ecs.Add(w, e, component.FlashlightBobComponent.Kind(), &component.FlashlightBob{
			Flag:      spec.Movement.AnimationFlag,
			Speed:     spec.Flashlight.Speed,
			Amplitude: spec.Flashlight.Amplitude,
		}),
		ecs.Add(w, e, component.CharacterBodyComponent.Kind(), &component.CharacterBody{Radius: spec.Radius}),
	}
	for _, err := range adds {
		if err != nil {
			return ecs.NoEntity, fmt.Errorf("player: %w", err)
		}
	}
	return e, nil
}

// ApplyPlayerTuning re-applies edited tunables to a live player, keeping its
// stamina, movement state and position.
func ApplyPlayerTuning(w *ecs.World, e ecs.Entity, spec *prefabs.PlayerSpec) error {
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	curve, err := feedbackCurve(spec.Stamina.FeedbackScript)
	if err != nil {
		return fmt.Errorf("player: %w", err)
	}

	if stamina, ok := ecs.Get(w, e, component.StaminaComponent.Kind()); ok {
		applyStaminaSpec(stamina, spec.Stamina, curve)
		if stamina.Value > stamina.Max {
			stamina.Value = stamina.Max
		}
	}
	if loco, ok := ecs.Get(w, e, component.LocomotionComponent.Kind()); ok {
		running := loco.Running()
		applyLocomotionSpec(loco, spec)
		if running {
			loco.Speed = loco.BaseSpeed * spec.RunMultiplier
		}
	}
	if movement, ok := ecs.Get(w, e, component.MovementComponent.Kind()); ok {
		applyMovementSpec(movement, spec)
	}
	if look, ok := ecs.Get(w, e, component.LookComponent.Kind()); ok {
		look.Sensitivity = spec.LookSensitivity
	}
	return nil
}

func applyStaminaSpec(st *component.Stamina, spec prefabs.StaminaSpec, curve component.FeedbackCurve) {
	st.Max = spec.Max
	st.RunCost = spec.RunCost
	st.RefreshTime = spec.RefreshTime
	st.MaxTiredTime = spec.MaxTiredTime
	st.TiredGain = spec.TiredGain
	st.RegenMultiplier = spec.RegenMultiplier
	st.LowThreshold = spec.LowThreshold
	if st.LowThreshold <= 0 {
		st.LowThreshold = component.DefaultLowStaminaThreshold
	}
	st.BreathingCue = spec.BreathingCue
	st.Curve = curve
}

func applyLocomotionSpec(loco *component.Locomotion, spec *prefabs.PlayerSpec) {
	loco.BaseSpeed = spec.BaseSpeed
	loco.Speed = spec.BaseSpeed
	loco.GravityBias = component.DefaultGravityBias
	if spec.GravityBias != nil {
		loco.GravityBias = *spec.GravityBias
	}
}

func applyMovementSpec(movement *component.Movement, spec *prefabs.PlayerSpec) {
	movement.RunMultiplier = spec.RunMultiplier
	movement.WalkCue = spec.Movement.WalkCue
	movement.RunCue = spec.Movement.RunCue
	movement.AnimationFlag = spec.Movement.AnimationFlag
	if movement.AnimationFlag == "" {
		movement.AnimationFlag = "Walking"
	}
}

func feedbackCurve(script string) (component.FeedbackCurve, error) {
	if script == "" {
		return component.LinearFeedbackCurve{}, nil
	}
	src, err := prefabs.LoadScript(script)
	if err != nil {
		return nil, fmt.Errorf("load feedback script %q: %w", script, err)
	}
	return system.NewScriptedFeedbackCurve(script, src)
}
