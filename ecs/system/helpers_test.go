package system

import (
	"github.com/milk9111/calafrios/ecs"
	"github.com/milk9111/calafrios/ecs/component"
	"github.com/stretchr/testify/require"
)

type fakePlayer struct {
	playing bool
	volume  float64
	plays   int
	rewinds int
}

func (p *fakePlayer) Play()               { p.playing = true; p.plays++ }
func (p *fakePlayer) Pause()              { p.playing = false }
func (p *fakePlayer) Rewind() error       { p.rewinds++; return nil }
func (p *fakePlayer) IsPlaying() bool     { return p.playing }
func (p *fakePlayer) SetVolume(v float64) { p.volume = v }

type fakeInput struct {
	frames []InputSnapshot
	next   int
}

func (f *fakeInput) Poll() InputSnapshot {
	if f.next >= len(f.frames) {
		if len(f.frames) == 0 {
			return InputSnapshot{}
		}
		return f.frames[len(f.frames)-1]
	}
	s := f.frames[f.next]
	f.next++
	return s
}

type testPlayer struct {
	w     *ecs.World
	e     ecs.Entity
	cues  map[string]*fakePlayer
	input *component.Input
	move  *component.Movement
	loco  *component.Locomotion
	st    *component.Stamina
	audio *component.Audio
	anim  *component.Animator
	vig   *component.Vignette
	xform *component.Transform
}

// newTestPlayer builds a player entity with the stock tuning and fake cues.
func newTestPlayer(t require.TestingT, w *ecs.World) *testPlayer {
	p := &testPlayer{
		w:     w,
		e:     ecs.CreateEntity(w),
		cues:  map[string]*fakePlayer{"walk": {}, "run": {}, "breathing": {}},
		input: &component.Input{},
		move: &component.Movement{
			State:         component.MovementStopped,
			RunMultiplier: 2,
			WalkCue:       "walk",
			RunCue:        "run",
			AnimationFlag: "Walking",
		},
		loco: &component.Locomotion{BaseSpeed: 4, Speed: 4, GravityBias: component.DefaultGravityBias},
		st: &component.Stamina{
			Value:           10,
			Max:             10,
			RunCost:         2,
			RefreshTime:     0.5,
			MaxTiredTime:    3,
			TiredGain:       1,
			RegenMultiplier: 0.5,
			LowThreshold:    component.DefaultLowStaminaThreshold,
			BreathingCue:    "breathing",
		},
		audio: &component.Audio{},
		anim:  &component.Animator{},
		vig:   &component.Vignette{},
		xform: &component.Transform{},
	}
	for _, name := range []string{"walk", "run", "breathing"} {
		p.audio.AddCue(name, p.cues[name], 1)
	}

	require.NoError(t, ecs.Add(w, p.e, component.InputComponent.Kind(), p.input))
	require.NoError(t, ecs.Add(w, p.e, component.MovementComponent.Kind(), p.move))
	require.NoError(t, ecs.Add(w, p.e, component.LocomotionComponent.Kind(), p.loco))
	require.NoError(t, ecs.Add(w, p.e, component.StaminaComponent.Kind(), p.st))
	require.NoError(t, ecs.Add(w, p.e, component.AudioComponent.Kind(), p.audio))
	require.NoError(t, ecs.Add(w, p.e, component.AnimatorComponent.Kind(), p.anim))
	require.NoError(t, ecs.Add(w, p.e, component.VignetteComponent.Kind(), p.vig))
	require.NoError(t, ecs.Add(w, p.e, component.TransformComponent.Kind(), p.xform))
	return p
}

// advance runs one update of sys with a frame delta of dt.
func advance(w *ecs.World, dt float64, systems ...ecs.System) {
	s := ecs.NewScheduler(1)
	for _, sys := range systems {
		s.Add(sys)
	}
	s.Advance(w, dt)
}
