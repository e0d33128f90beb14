package component

// Animator carries named animation parameters.
type Animator struct {
	Bools map[string]bool
}

func (a *Animator) SetBool(name string, v bool) {
	if a.Bools == nil {
		a.Bools = make(map[string]bool)
	}
	a.Bools[name] = v
}

func (a *Animator) Bool(name string) bool {
	return a.Bools[name]
}

var AnimatorComponent = NewComponent[Animator]()

// FlashlightBob sways the held flashlight while the watched animator flag is
// set and settles it back otherwise.
type FlashlightBob struct {
	Flag      string
	Speed     float64
	Amplitude float64

	Phase  float64
	Offset float64
}

var FlashlightBobComponent = NewComponent[FlashlightBob]()
