package component

// AudioPlayer is the playback surface the audio system drives. It is
// satisfied by *audio.Player from ebiten.
type AudioPlayer interface {
	Play()
	Pause()
	Rewind() error
	IsPlaying() bool
	SetVolume(volume float64)
}

// Audio holds named cues. Gameplay systems request play/stop through the
// flags; the audio system applies them once per frame. A later request for
// the same cue in a frame overrides an earlier one.
type Audio struct {
	Names     []string
	Players   []AudioPlayer
	Volume    []float64
	Play      []bool
	Stop      []bool
	Suspended []bool
}

// Index returns the slot for name or -1.
func (a *Audio) Index(name string) int {
	if a == nil || name == "" {
		return -1
	}
	for i, n := range a.Names {
		if n == name {
			return i
		}
	}
	return -1
}

// IsPlaying reports whether the cue is audible or already requested to
// start this frame.
func (a *Audio) IsPlaying(name string) bool {
	i := a.Index(name)
	if i < 0 {
		return false
	}
	if a.Play[i] {
		return true
	}
	if a.Stop[i] {
		return false
	}
	p := a.Players[i]
	return (p != nil && p.IsPlaying()) || a.Suspended[i]
}

func (a *Audio) RequestPlay(name string) {
	if i := a.Index(name); i >= 0 {
		a.Play[i] = true
		a.Stop[i] = false
	}
}

func (a *Audio) RequestStop(name string) {
	if i := a.Index(name); i >= 0 {
		a.Stop[i] = true
		a.Play[i] = false
	}
}

func (a *Audio) SetVolume(name string, volume float64) {
	if i := a.Index(name); i >= 0 {
		a.Volume[i] = volume
	}
}

func (a *Audio) VolumeOf(name string) float64 {
	if i := a.Index(name); i >= 0 {
		return a.Volume[i]
	}
	return 0
}

// AddCue appends a cue slot.
func (a *Audio) AddCue(name string, player AudioPlayer, volume float64) {
	a.Names = append(a.Names, name)
	a.Players = append(a.Players, player)
	a.Volume = append(a.Volume, volume)
	a.Play = append(a.Play, false)
	a.Stop = append(a.Stop, false)
	a.Suspended = append(a.Suspended, false)
}

var AudioComponent = NewComponent[Audio]()

// AudioListener is the global mix: Paused silences every cue in place,
// Volume scales every cue.
type AudioListener struct {
	Paused bool
	Volume float64
}

var AudioListenerComponent = NewComponent[AudioListener]()
