package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// Prop is a named scene object, drawn as a marker.
type Prop struct {
	Name   string
	Radius float64
}

var PropComponent = NewComponent[Prop]()
