package component

// Vignette is the screen-edge darkening driven by low stamina. The renderer
// clamps Intensity to [0, 1].
type Vignette struct {
	Intensity float64
}

var VignetteComponent = NewComponent[Vignette]()
