package system

import (
	"github.com/milk9111/calafrios/ecs"
	"github.com/milk9111/calafrios/ecs/component"
	"github.com/rs/zerolog/log"
)

// SelfDestructSystem counts refresh periods and destroys entities once
// MaxTime periods have elapsed.
type SelfDestructSystem struct{}

func NewSelfDestructSystem() *SelfDestructSystem {
	return &SelfDestructSystem{}
}

func (s *SelfDestructSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := ecs.DeltaTime(w)
	ecs.ForEach(w, component.SelfDestructComponent.Kind(), func(e ecs.Entity, sd *component.SelfDestruct) {
		if sd.Period > sd.RefreshTime {
			sd.Count++
			sd.Period = 0
			if sd.Count >= sd.MaxTime {
				log.Debug().Stringer("entity", e).Float64("periods", sd.Count).Msg("self destruct: expired")
				ecs.DestroyEntity(w, e)
				return
			}
		}
		sd.Period += dt
	})
}
