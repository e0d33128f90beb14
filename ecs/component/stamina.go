package component

const DefaultLowStaminaThreshold = 5.0

// FeedbackCurve maps remaining stamina to the breathing cue volume and the
// vignette intensity shown while exhausted.
type FeedbackCurve interface {
	Eval(stamina float64) (volume, vignette float64, err error)
}

// LinearFeedbackCurve is the stock curve. Values are not clamped here; the
// audio and post-processing consumers clamp.
type LinearFeedbackCurve struct{}

func (LinearFeedbackCurve) Eval(stamina float64) (float64, float64, error) {
	return 1 - (stamina / 0.5 * 0.1), 0.5 - (stamina * 0.1), nil
}

// Stamina is the energy resource spent by running and regained by resting.
type Stamina struct {
	Value float64
	Max   float64
	// Tired counts rest ticks; regeneration starts once it saturates at
	// MaxTiredTime.
	Tired float64

	RunCost         float64
	RefreshTime     float64
	MaxTiredTime    float64
	TiredGain       float64
	RegenMultiplier float64
	LowThreshold    float64

	BreathingCue string
	Curve        FeedbackCurve

	// Period accumulates frame time between ticks.
	Period float64
}

// Exhausted reports whether the low-stamina feedback should be active.
func (s *Stamina) Exhausted() bool {
	return s.Value < s.LowThreshold
}

var StaminaComponent = NewComponent[Stamina]()
