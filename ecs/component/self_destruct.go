package component

// SelfDestruct destroys its entity after MaxTime refresh periods of
// RefreshTime seconds each.
type SelfDestruct struct {
	RefreshTime float64
	MaxTime     float64

	Period float64
	Count  float64
}

var SelfDestructComponent = NewComponent[SelfDestruct]()
