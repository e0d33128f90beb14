package system

import (
	"github.com/milk9111/calafrios/ecs"
	"github.com/milk9111/calafrios/ecs/component"
)

// InputSnapshot is one frame of device input, already normalized: axes are in
// [-1, 1] and StartRun/StopRun/PausePressed are edge events.
type InputSnapshot struct {
	MoveX        float64
	MoveZ        float64
	Moving       bool
	StartRun     bool
	StopRun      bool
	PausePressed bool
	LookX        float64
}

// InputSource polls the devices once per frame.
type InputSource interface {
	Poll() InputSnapshot
}

type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.source == nil {
		return
	}

	snap := i.source.Poll()

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.PausePressed = snap.PausePressed
		if input.Disabled {
			input.MoveX = 0
			input.MoveZ = 0
			input.Moving = false
			input.StartRun = false
			input.StopRun = false
			input.LookX = 0
			return
		}
		input.MoveX = snap.MoveX
		input.MoveZ = snap.MoveZ
		input.Moving = snap.Moving
		input.StartRun = snap.StartRun
		input.StopRun = snap.StopRun
		input.LookX = snap.LookX
	})
}

// SetInputEnabled toggles in-game input for every input-driven entity.
func SetInputEnabled(w *ecs.World, enabled bool) {
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.Disabled = !enabled
	})
}
