package system

import (
	"github.com/milk9111/calafrios/ecs"
	"github.com/milk9111/calafrios/ecs/component"
	"github.com/rs/zerolog/log"
)

// StaminaSystem samples stamina once every RefreshTime seconds rather than
// every frame, then pushes the breathing cue and vignette feedback.
type StaminaSystem struct{}

func NewStaminaSystem() *StaminaSystem {
	return &StaminaSystem{}
}

func (s *StaminaSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := ecs.DeltaTime(w)
	ecs.ForEach(w, component.StaminaComponent.Kind(), func(e ecs.Entity, st *component.Stamina) {
		if st.Period > st.RefreshTime {
			spending := false
			if loco, ok := ecs.Get(w, e, component.LocomotionComponent.Kind()); ok {
				if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
					spending = loco.Running() && input.Moving
				}
			}
			StaminaTick(st, spending)

			audio, _ := ecs.Get(w, e, component.AudioComponent.Kind())
			vignette, _ := ecs.Get(w, e, component.VignetteComponent.Kind())
			applyStaminaFeedback(e, st, audio, vignette)

			st.Period = 0
		}
		st.Period += dt
	})
}

// StaminaTick advances the stamina resource by one sample. spending is true
// while running with movement input held.
func StaminaTick(st *component.Stamina, spending bool) {
	if spending {
		st.Value -= st.RunCost
		st.Tired = 0
	} else if st.Tired < st.MaxTiredTime {
		st.Tired += st.TiredGain
	} else {
		st.Tired = st.MaxTiredTime
		st.Value += st.RunCost * st.RegenMultiplier
	}

	if st.Value <= 0 {
		st.Value = 0
	} else if st.Value > st.Max {
		st.Value = st.Max
	}
}

func applyStaminaFeedback(e ecs.Entity, st *component.Stamina, audio *component.Audio, vignette *component.Vignette) {
	if !st.Exhausted() {
		if audio.IsPlaying(st.BreathingCue) {
			audio.RequestStop(st.BreathingCue)
		}
		audio.SetVolume(st.BreathingCue, 0)
		if vignette != nil {
			vignette.Intensity = 0
		}
		return
	}

	curve := st.Curve
	if curve == nil {
		curve = component.LinearFeedbackCurve{}
	}
	volume, intensity, err := curve.Eval(st.Value)
	if err != nil {
		log.Error().Err(err).Stringer("entity", e).Msg("stamina: feedback curve failed, using linear")
		volume, intensity, _ = component.LinearFeedbackCurve{}.Eval(st.Value)
	}

	if !audio.IsPlaying(st.BreathingCue) {
		audio.RequestPlay(st.BreathingCue)
	}
	audio.SetVolume(st.BreathingCue, volume)
	if vignette != nil {
		vignette.Intensity = intensity
	}
}
