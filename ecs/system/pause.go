package system

import (
	"github.com/milk9111/calafrios/common"
	"github.com/milk9111/calafrios/ecs"
	"github.com/milk9111/calafrios/ecs/component"
	"github.com/rs/zerolog/log"
)

// PauseSystem owns the paused/running toggle, the options/help sub-panels and
// the hand-off into the fade-out when returning to the menu scene.
type PauseSystem struct{}

func NewPauseSystem() *PauseSystem {
	return &PauseSystem{}
}

// RequestPause queues a pause action for the next update, in the manner of
// the other one-shot request components.
func RequestPause(w *ecs.World, action component.PauseAction) {
	RequestPauseWithValue(w, action, 0)
}

func RequestPauseWithValue(w *ecs.World, action component.PauseAction, value float64) {
	if w == nil {
		return
	}
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.PauseCommandComponent.Kind(), &component.PauseCommand{Action: action, Value: value})
}

func (p *PauseSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	commands := p.consumeCommands(w)

	_, menu, ok := ecs.Single(w, component.PauseMenuComponent.Kind())
	if !ok {
		return
	}

	pressed := false
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		if input.PausePressed {
			pressed = true
			input.PausePressed = false
		}
	})
	if pressed {
		commands = append(commands, component.PauseCommand{Action: component.PauseToggle})
	}

	for _, cmd := range commands {
		if menu.Leaving {
			return
		}
		p.apply(w, menu, cmd)
	}
}

func (p *PauseSystem) consumeCommands(w *ecs.World) []component.PauseCommand {
	var commands []component.PauseCommand
	var requests []ecs.Entity
	ecs.ForEach(w, component.PauseCommandComponent.Kind(), func(ent ecs.Entity, cmd *component.PauseCommand) {
		requests = append(requests, ent)
		commands = append(commands, *cmd)
	})
	for _, ent := range requests {
		ecs.DestroyEntity(w, ent)
	}
	return commands
}

func (p *PauseSystem) apply(w *ecs.World, menu *component.PauseMenu, cmd component.PauseCommand) {
	switch cmd.Action {
	case component.PauseToggle:
		switch {
		case !menu.Paused():
			p.pause(w, menu)
		case menu.Panel != component.PanelMain:
			log.Debug().Stringer("panel", menu.Panel).Msg("pause: close panel")
			menu.Panel = component.PanelMain
		default:
			p.resume(w, menu)
		}
	case component.PauseResume:
		if menu.Paused() {
			p.resume(w, menu)
		}
	case component.PauseOpenOptions:
		if menu.Paused() {
			menu.Panel = component.PanelOptions
		}
	case component.PauseOpenHelp:
		if menu.Paused() {
			menu.Panel = component.PanelHelp
		}
	case component.PauseMainMenu:
		p.returnToMenu(w, menu)
	case component.PauseQuit:
		ent := ecs.CreateEntity(w)
		_ = ecs.Add(w, ent, component.QuitRequestComponent.Kind(), &component.QuitRequest{})
	case component.PauseSetVolume:
		if _, listener, ok := ecs.Single(w, component.AudioListenerComponent.Kind()); ok {
			listener.Volume = common.Clamp(cmd.Value, 0, 1)
		}
	}
}

func (p *PauseSystem) pause(w *ecs.World, menu *component.PauseMenu) {
	menu.State = component.PausePaused
	menu.Panel = component.PanelMain
	menu.CursorLocked = false
	setListenerPaused(w, true)
	SetInputEnabled(w, false)
	log.Info().Msg("pause: paused")
}

func (p *PauseSystem) resume(w *ecs.World, menu *component.PauseMenu) {
	menu.State = component.PauseRunning
	menu.Panel = component.PanelMain
	menu.CursorLocked = true
	setListenerPaused(w, false)
	SetInputEnabled(w, true)
	log.Info().Msg("pause: resumed")
}

func (p *PauseSystem) returnToMenu(w *ecs.World, menu *component.PauseMenu) {
	menu.Leaving = true
	SetInputEnabled(w, false)
	StartSceneTransition(w, menu.MenuScene, menu.FadeSpeed, menu.FadeStepPeriod)
	log.Info().Int("scene", menu.MenuScene).Msg("pause: returning to menu")
}

func setListenerPaused(w *ecs.World, paused bool) {
	if _, listener, ok := ecs.Single(w, component.AudioListenerComponent.Kind()); ok {
		listener.Paused = paused
	}
}
