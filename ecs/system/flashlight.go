package system

import (
	"math"

	"github.com/milk9111/calafrios/common"
	"github.com/milk9111/calafrios/ecs"
	"github.com/milk9111/calafrios/ecs/component"
)

const flashlightSettle = 0.2

// FlashlightSystem plays the walking sway of the held flashlight from the
// animator flag.
type FlashlightSystem struct{}

func NewFlashlightSystem() *FlashlightSystem {
	return &FlashlightSystem{}
}

func (f *FlashlightSystem) Update(w *ecs.World) {
	dt := ecs.DeltaTime(w)
	ecs.ForEach2(w, component.AnimatorComponent.Kind(), component.FlashlightBobComponent.Kind(),
		func(_ ecs.Entity, anim *component.Animator, bob *component.FlashlightBob) {
			if anim.Bool(bob.Flag) {
				bob.Phase = math.Mod(bob.Phase+dt*bob.Speed, 2*math.Pi)
				bob.Offset = math.Sin(bob.Phase) * bob.Amplitude
				return
			}
			bob.Offset = common.Lerp(bob.Offset, 0, flashlightSettle)
			if math.Abs(bob.Offset) < 1e-3 {
				bob.Offset = 0
				bob.Phase = 0
			}
		})
}
