package entity

import (
	"errors"
	"math"
	"testing"

	"github.com/milk9111/calafrios/ecs"
	"github.com/milk9111/calafrios/ecs/component"
	"github.com/milk9111/calafrios/ecs/system"
	"github.com/milk9111/calafrios/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopPlayer struct{ playing bool }

func (p *nopPlayer) Play()             { p.playing = true }
func (p *nopPlayer) Pause()            { p.playing = false }
func (p *nopPlayer) Rewind() error     { return nil }
func (p *nopPlayer) IsPlaying() bool   { return p.playing }
func (p *nopPlayer) SetVolume(float64) {}

func fakeLoader(loaded *[]string) CueLoader {
	return func(clip prefabs.AudioSpec) (component.AudioPlayer, error) {
		if loaded != nil {
			*loaded = append(*loaded, clip.File)
		}
		return &nopPlayer{}, nil
	}
}

func shippedSpecs(t *testing.T) LevelSpecs {
	player, err := prefabs.LoadPlayerSpec()
	require.NoError(t, err)
	pause, err := prefabs.LoadPauseMenuSpec()
	require.NoError(t, err)
	level, err := prefabs.LoadLevelSpec("house.yaml")
	require.NoError(t, err)
	return LevelSpecs{Level: level, Player: player, Pause: pause}
}

func TestNewPlayerFromShippedPrefab(t *testing.T) {
	specs := shippedSpecs(t)
	w := ecs.NewWorld()
	var loaded []string

	e, err := NewPlayer(w, specs.Player, prefabs.TransformSpec{X: 1, Z: 2, Yaw: 0.3}, fakeLoader(&loaded))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"walk.wav", "run.wav", "breathing.wav"}, loaded)
	assert.True(t, ecs.Has(w, e, component.PlayerTagComponent.Kind()))

	st, ok := ecs.Get(w, e, component.StaminaComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, st.Max, st.Value, "spawned with full stamina")
	assert.IsType(t, &system.ScriptedFeedbackCurve{}, st.Curve)

	mv, _ := ecs.Get(w, e, component.MovementComponent.Kind())
	assert.Equal(t, component.MovementStopped, mv.State)

	loco, _ := ecs.Get(w, e, component.LocomotionComponent.Kind())
	assert.Equal(t, loco.BaseSpeed, loco.Speed)
	assert.Equal(t, 15.0, loco.GravityBias)

	xf, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	assert.Equal(t, component.Transform{X: 1, Z: 2, Yaw: 0.3}, *xf)
}

func TestNewPlayerMissingCue(t *testing.T) {
	specs := shippedSpecs(t)
	spec := *specs.Player
	spec.Audio = spec.Audio[:2]

	_, err := NewPlayer(ecs.NewWorld(), &spec, prefabs.TransformSpec{}, fakeLoader(nil))
	assert.True(t, errors.Is(err, ErrMissingCue), "got %v", err)
}

func TestNewPlayerLoaderError(t *testing.T) {
	specs := shippedSpecs(t)
	boom := errors.New("no device")
	load := func(prefabs.AudioSpec) (component.AudioPlayer, error) { return nil, boom }

	w := ecs.NewWorld()
	_, err := NewPlayer(w, specs.Player, prefabs.TransformSpec{}, load)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, ecs.Entities(w), "nothing spawned on failure")
}

func TestNewPlayerInvalidSpec(t *testing.T) {
	specs := shippedSpecs(t)
	spec := *specs.Player
	spec.BaseSpeed = 0

	_, err := NewPlayer(ecs.NewWorld(), &spec, prefabs.TransformSpec{}, fakeLoader(nil))
	assert.ErrorIs(t, err, prefabs.ErrInvalidSpec)
}

func TestNewPlayerDefaultsToLinearCurve(t *testing.T) {
	specs := shippedSpecs(t)
	spec := *specs.Player
	spec.Stamina.FeedbackScript = ""
	spec.GravityBias = nil

	w := ecs.NewWorld()
	e, err := NewPlayer(w, &spec, prefabs.TransformSpec{}, fakeLoader(nil))
	require.NoError(t, err)

	st, _ := ecs.Get(w, e, component.StaminaComponent.Kind())
	assert.Equal(t, component.LinearFeedbackCurve{}, st.Curve)
	loco, _ := ecs.Get(w, e, component.LocomotionComponent.Kind())
	assert.Equal(t, component.DefaultGravityBias, loco.GravityBias)
}

func TestBuildLevel(t *testing.T) {
	specs := shippedSpecs(t)
	w := ecs.NewWorld()

	player, err := BuildLevel(w, specs, fakeLoader(nil))
	require.NoError(t, err)
	require.True(t, ecs.IsAlive(w, player))

	walls := 0
	ecs.ForEach(w, component.WallComponent.Kind(), func(ecs.Entity, *component.Wall) { walls++ })
	assert.Equal(t, len(specs.Level.Walls), walls)

	props, destructing := 0, 0
	ecs.ForEach(w, component.PropComponent.Kind(), func(e ecs.Entity, _ *component.Prop) {
		props++
		if ecs.Has(w, e, component.SelfDestructComponent.Kind()) {
			destructing++
		}
	})
	assert.Equal(t, len(specs.Level.Props), props)
	assert.Equal(t, 2, destructing)

	_, menu, ok := ecs.Single(w, component.PauseMenuComponent.Kind())
	require.True(t, ok)
	assert.False(t, menu.Paused())
	assert.True(t, menu.CursorLocked)

	_, listener, ok := ecs.Single(w, component.AudioListenerComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 1.0, listener.Volume)

	_, space, ok := ecs.Single(w, component.PhysicsSpaceComponent.Kind())
	require.True(t, ok)
	assert.NotNil(t, space.Space)

	xf, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	assert.Equal(t, specs.Level.Spawn.X, xf.X)
	assert.Equal(t, specs.Level.Spawn.Z, xf.Z)
}

func TestBuildLevelIncomplete(t *testing.T) {
	specs := shippedSpecs(t)
	specs.Pause = nil
	_, err := BuildLevel(ecs.NewWorld(), specs, fakeLoader(nil))
	assert.ErrorIs(t, err, prefabs.ErrInvalidSpec)
}

func TestApplyPlayerTuningKeepsState(t *testing.T) {
	specs := shippedSpecs(t)
	w := ecs.NewWorld()
	e, err := NewPlayer(w, specs.Player, prefabs.TransformSpec{}, fakeLoader(nil))
	require.NoError(t, err)

	st, _ := ecs.Get(w, e, component.StaminaComponent.Kind())
	mv, _ := ecs.Get(w, e, component.MovementComponent.Kind())
	loco, _ := ecs.Get(w, e, component.LocomotionComponent.Kind())
	st.Value = 7
	mv.State = component.MovementRunning
	loco.Speed = loco.BaseSpeed * mv.RunMultiplier

	tuned := *specs.Player
	tuned.BaseSpeed = 5
	tuned.RunMultiplier = 2
	tuned.Stamina.Max = 6
	require.NoError(t, ApplyPlayerTuning(w, e, &tuned))

	assert.Equal(t, 6.0, st.Value, "clamped to the new max")
	assert.Equal(t, component.MovementRunning, mv.State)
	assert.Equal(t, 5.0, loco.BaseSpeed)
	assert.Equal(t, 10.0, loco.Speed, "running speed follows the new tuning")

	bad := tuned
	bad.Stamina.Max = 0
	assert.ErrorIs(t, ApplyPlayerTuning(w, e, &bad), prefabs.ErrInvalidSpec)
	assert.Equal(t, 6.0, st.Max, "rejected tuning leaves the player untouched")
}

func TestNewPropWithoutSelfDestruct(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewProp(w, &prefabs.PropSpec{Name: "chair", Radius: 0.4, Transform: prefabs.TransformSpec{X: 3}})
	require.NoError(t, err)
	assert.False(t, ecs.Has(w, e, component.SelfDestructComponent.Kind()))
	p, _ := ecs.Get(w, e, component.PropComponent.Kind())
	assert.Equal(t, "chair", p.Name)
}

type heldInput struct {
	snap   system.InputSnapshot
	polled int
}

func (h *heldInput) Poll() system.InputSnapshot {
	snap := h.snap
	if h.polled > 0 {
		snap.StartRun = false
	}
	h.polled++
	return snap
}

func TestBuildLevelPlayerStaysInsideHouse(t *testing.T) {
	cases := []struct {
		name string
		snap system.InputSnapshot
	}{
		{"forward_run", system.InputSnapshot{MoveZ: 1, Moving: true, StartRun: true}},
		{"back", system.InputSnapshot{MoveZ: -1, Moving: true}},
		{"strafe_right_run", system.InputSnapshot{MoveX: 1, Moving: true, StartRun: true}},
		{"strafe_left", system.InputSnapshot{MoveX: -1, Moving: true}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			specs := shippedSpecs(t)
			w := ecs.NewWorld()
			player, err := BuildLevel(w, specs, fakeLoader(nil))
			require.NoError(t, err)

			st, ok := ecs.Get(w, player, component.StaminaComponent.Kind())
			require.True(t, ok)
			_, scripted := st.Curve.(*system.ScriptedFeedbackCurve)
			require.True(t, scripted, "player.yaml names a feedback script")

			xf, _ := ecs.Get(w, player, component.TransformComponent.Kind())
			startX, startZ := xf.X, xf.Z

			s := system.NewLevelScheduler(&heldInput{snap: c.snap}, 1.0/60.0)
			for i := 0; i < 600; i++ {
				s.Advance(w, 1.0/60.0)
			}

			// Outer walls are 0.1 thick; the player radius is 0.4.
			const eps = 1e-6
			assert.GreaterOrEqual(t, xf.X, 0.5-eps)
			assert.LessOrEqual(t, xf.X, 15.5+eps)
			assert.GreaterOrEqual(t, xf.Z, 0.5-eps)
			assert.LessOrEqual(t, xf.Z, 11.5+eps)
			assert.Greater(t, math.Hypot(xf.X-startX, xf.Z-startZ), 1.0, "player moved")
			assert.GreaterOrEqual(t, st.Value, 0.0)
			assert.LessOrEqual(t, st.Value, st.Max)
		})
	}
}
