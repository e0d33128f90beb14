package component

const DefaultGravityBias = 15.0

// Locomotion is the per-entity movement state the physics step turns into a
// displacement. Speed differs from BaseSpeed only while running.
type Locomotion struct {
	BaseSpeed   float64
	Speed       float64
	AxisX       float64
	AxisZ       float64
	GravityBias float64
}

// Running reports whether a run multiplier is currently applied.
func (l *Locomotion) Running() bool {
	return l.Speed != l.BaseSpeed
}

// SpeedMultiplier is Speed relative to BaseSpeed.
func (l *Locomotion) SpeedMultiplier() float64 {
	if l.BaseSpeed == 0 {
		return 1
	}
	return l.Speed / l.BaseSpeed
}

var LocomotionComponent = NewComponent[Locomotion]()
