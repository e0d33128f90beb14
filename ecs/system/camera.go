package system

import (
	"github.com/milk9111/calafrios/common"
	"github.com/milk9111/calafrios/ecs"
	"github.com/milk9111/calafrios/ecs/component"
)

type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update eases the camera toward the player.
func (cs *CameraSystem) Update(w *ecs.World) {
	camEntity, cam, ok := ecs.Single(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	target, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	t := 1 - common.Clamp(cam.Smoothness, 0, 1)
	camTransform.X = common.Lerp(camTransform.X, target.X, t)
	camTransform.Z = common.Lerp(camTransform.Z, target.Z, t)
	camTransform.Yaw = target.Yaw
}
