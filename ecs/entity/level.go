package entity

import (
	"fmt"

	"github.com/milk9111/calafrios/ecs"
	"github.com/milk9111/calafrios/ecs/component"
	"github.com/milk9111/calafrios/ecs/system"
	"github.com/milk9111/calafrios/prefabs"
)

// LevelSpecs bundles the prefabs a level scene is built from.
type LevelSpecs struct {
	Level  *prefabs.LevelSpec
	Player *prefabs.PlayerSpec
	Pause  *prefabs.PauseMenuSpec
}

// BuildLevel populates w with the level singletons (listener, physics space,
// pause menu), its walls and props, and the player. It returns the player.
func BuildLevel(w *ecs.World, specs LevelSpecs, load CueLoader) (ecs.Entity, error) {
	if specs.Level == nil || specs.Player == nil || specs.Pause == nil {
		return ecs.NoEntity, fmt.Errorf("level: %w: incomplete specs", prefabs.ErrInvalidSpec)
	}
	lvl := specs.Level

	volume := 1.0
	if lvl.ListenerVolume != nil {
		volume = *lvl.ListenerVolume
	}
	if err := NewAudioListener(w, volume); err != nil {
		return ecs.NoEntity, fmt.Errorf("level %s: %w", lvl.Name, err)
	}

	space := ecs.CreateEntity(w)
	if err := ecs.Add(w, space, component.PhysicsSpaceComponent.Kind(), system.NewPhysicsSpace(lvl.Floor)); err != nil {
		return ecs.NoEntity, fmt.Errorf("level %s: physics space: %w", lvl.Name, err)
	}

	for i, wall := range lvl.Walls {
		e := ecs.CreateEntity(w)
		err := ecs.Add(w, e, component.WallComponent.Kind(), &component.Wall{
			AX:        wall.From[0],
			AZ:        wall.From[1],
			BX:        wall.To[0],
			BZ:        wall.To[1],
			Thickness: wall.Thickness,
		})
		if err != nil {
			return ecs.NoEntity, fmt.Errorf("level %s: wall %d: %w", lvl.Name, i, err)
		}
	}

	for i := range lvl.Props {
		if _, err := NewProp(w, &lvl.Props[i]); err != nil {
			return ecs.NoEntity, fmt.Errorf("level %s: %w", lvl.Name, err)
		}
	}

	if err := NewPauseMenu(w, specs.Pause); err != nil {
		return ecs.NoEntity, fmt.Errorf("level %s: %w", lvl.Name, err)
	}

	player, err := NewPlayer(w, specs.Player, lvl.Spawn, load)
	if err != nil {
		return ecs.NoEntity, fmt.Errorf("level %s: %w", lvl.Name, err)
	}

	if err := NewCamera(w, lvl.Camera, lvl.Spawn); err != nil {
		return ecs.NoEntity, fmt.Errorf("level %s: camera: %w", lvl.Name, err)
	}
	return player, nil
}

// NewCamera places the follow camera on the spawn point.
func NewCamera(w *ecs.World, spec prefabs.CameraSpec, at prefabs.TransformSpec) error {
	zoom := spec.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{Zoom: zoom, Smoothness: spec.Smoothness}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: at.X, Z: at.Z, Yaw: at.Yaw})
}

func NewAudioListener(w *ecs.World, volume float64) error {
	e := ecs.CreateEntity(w)
	return ecs.Add(w, e, component.AudioListenerComponent.Kind(), &component.AudioListener{Volume: volume})
}

// NewPauseMenu creates the pause controller in the running state with the
// cursor captured.
func NewPauseMenu(w *ecs.World, spec *prefabs.PauseMenuSpec) error {
	e := ecs.CreateEntity(w)
	return ecs.Add(w, e, component.PauseMenuComponent.Kind(), &component.PauseMenu{
		State:          component.PauseRunning,
		Panel:          component.PanelMain,
		CursorLocked:   true,
		MenuScene:      spec.MenuScene,
		FadeSpeed:      spec.FadeSpeed,
		FadeStepPeriod: spec.FadeStepPeriod,
	})
}
