package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/calafrios/ecs/component"
	"github.com/milk9111/calafrios/prefabs"
)

var ErrMissingCue = errors.New("entity: missing audio cue")

// CueLoader opens the playback stream for one audio clip.
type CueLoader func(clip prefabs.AudioSpec) (component.AudioPlayer, error)

func buildAudioComponent(audioSpecs []prefabs.AudioSpec, load CueLoader) (*component.Audio, error) {
	audioComp := &component.Audio{}
	for i, clip := range audioSpecs {
		if load == nil {
			return nil, fmt.Errorf("audio clip %d (%q): no cue loader", i, clip.Name)
		}
		player, err := load(clip)
		if err != nil {
			return nil, fmt.Errorf("audio clip %d (%q): %w", i, clip.Name, err)
		}
		audioComp.AddCue(clip.Name, player, clip.Volume)
	}
	return audioComp, nil
}

func requireCues(audioComp *component.Audio, names ...string) error {
	for _, name := range names {
		if audioComp.Index(name) < 0 {
			return fmt.Errorf("%w: %q", ErrMissingCue, name)
		}
	}
	return nil
}
