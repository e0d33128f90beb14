package component

type PauseState int

const (
	PauseRunning PauseState = iota
	PausePaused
)

// PausePanel is the visible pause sub-panel. Options and Help sit one level
// above Main.
type PausePanel int

const (
	PanelMain PausePanel = iota
	PanelOptions
	PanelHelp
)

func (p PausePanel) String() string {
	switch p {
	case PanelOptions:
		return "options"
	case PanelHelp:
		return "help"
	default:
		return "main"
	}
}

// PauseMenu is the singleton pause controller state.
type PauseMenu struct {
	State PauseState
	Panel PausePanel

	// CursorLocked mirrors what the game loop should apply to the OS cursor.
	CursorLocked bool
	// Leaving is set once a return to the menu scene has started; further
	// pause input is ignored.
	Leaving bool

	MenuScene      int
	FadeSpeed      float64
	FadeStepPeriod float64
}

func (p *PauseMenu) Paused() bool {
	return p.State == PausePaused
}

var PauseMenuComponent = NewComponent[PauseMenu]()

type PauseAction int

const (
	PauseToggle PauseAction = iota
	PauseResume
	PauseOpenOptions
	PauseOpenHelp
	PauseMainMenu
	PauseQuit
	PauseSetVolume
)

// PauseCommand is a one-shot request from the pause UI, consumed by the pause
// system on its next update.
type PauseCommand struct {
	Action PauseAction
	Value  float64
}

var PauseCommandComponent = NewComponent[PauseCommand]()
