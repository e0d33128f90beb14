package system

import (
	"testing"

	"github.com/milk9111/calafrios/ecs"
	"github.com/milk9111/calafrios/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelSchedulerWalkAndPause(t *testing.T) {
	w := ecs.NewWorld()
	p := newTestPlayer(t, w)
	require.NoError(t, ecs.Add(w, p.e, component.CharacterBodyComponent.Kind(), &component.CharacterBody{Radius: 0.4}))
	require.NoError(t, ecs.Add(w, ecs.CreateEntity(w), component.PhysicsSpaceComponent.Kind(), NewPhysicsSpace(0)))
	listener := &component.AudioListener{Volume: 1}
	require.NoError(t, ecs.Add(w, ecs.CreateEntity(w), component.AudioListenerComponent.Kind(), listener))
	menu := &component.PauseMenu{CursorLocked: true}
	require.NoError(t, ecs.Add(w, ecs.CreateEntity(w), component.PauseMenuComponent.Kind(), menu))

	walk := InputSnapshot{MoveZ: 1, Moving: true}
	frames := make([]InputSnapshot, 0, 32)
	for i := 0; i < 30; i++ {
		frames = append(frames, walk)
	}
	frames = append(frames, InputSnapshot{MoveZ: 1, Moving: true, PausePressed: true}, walk)
	src := &fakeInput{frames: frames}

	s := NewLevelScheduler(src, 1.0/60.0)
	for i := 0; i < 30; i++ {
		s.Advance(w, 1.0/60.0)
	}

	assert.Equal(t, component.MovementWalking, p.move.State)
	assert.True(t, p.cues["walk"].playing)
	assert.Greater(t, p.xform.Z, 1.5)

	s.Advance(w, 1.0/60.0)
	require.True(t, menu.Paused())
	assert.False(t, p.cues["walk"].playing, "listener pause halts cues")

	z := p.xform.Z
	for i := 0; i < 10; i++ {
		s.Advance(w, 1.0/60.0)
	}
	assert.Equal(t, component.MovementStopped, p.move.State, "disabled input reads as no movement")
	assert.InDelta(t, z, p.xform.Z, 0.1)
}
