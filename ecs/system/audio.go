package system

import (
	"github.com/milk9111/calafrios/common"
	"github.com/milk9111/calafrios/ecs"
	"github.com/milk9111/calafrios/ecs/component"
)

type AudioSystem struct{}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

func (a *AudioSystem) Update(w *ecs.World) {
	paused := false
	master := 1.0
	if _, listener, ok := ecs.Single(w, component.AudioListenerComponent.Kind()); ok {
		paused = listener.Paused
		master = listener.Volume
	}

	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		for i, player := range audioComp.Players {
			if player == nil {
				audioComp.Play[i] = false
				audioComp.Stop[i] = false
				continue
			}

			player.SetVolume(common.Clamp(audioComp.Volume[i]*master, 0, 1))

			if paused {
				if player.IsPlaying() {
					player.Pause()
					audioComp.Suspended[i] = true
				}
				if audioComp.Stop[i] {
					audioComp.Suspended[i] = false
					_ = player.Rewind()
					audioComp.Stop[i] = false
				}
				// Play requests wait for the listener to resume.
				continue
			}

			if audioComp.Suspended[i] {
				audioComp.Suspended[i] = false
				if !audioComp.Stop[i] {
					player.Play()
				}
			}

			if audioComp.Play[i] {
				if !player.IsPlaying() {
					_ = player.Rewind()
					player.Play()
				}
				audioComp.Play[i] = false
			}

			if audioComp.Stop[i] {
				if player.IsPlaying() {
					player.Pause()
				}
				_ = player.Rewind()
				audioComp.Stop[i] = false
			}
		}
	})
}
