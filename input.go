package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/calafrios/ecs/system"
)

const stickDeadzone = 0.2

// Input polls keyboard, mouse and the first gamepad.
type Input struct {
	lastCursorX int
	primed      bool
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Poll() system.InputSnapshot {
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	forward := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	back := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)

	snap := system.InputSnapshot{
		Moving:       left || right || forward || back,
		StartRun:     inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) || inpututil.IsKeyJustPressed(ebiten.KeyShiftRight),
		StopRun:      inpututil.IsKeyJustReleased(ebiten.KeyShiftLeft) || inpututil.IsKeyJustReleased(ebiten.KeyShiftRight),
		PausePressed: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
	if left {
		snap.MoveX -= 1
	}
	if right {
		snap.MoveX += 1
	}
	if forward {
		snap.MoveZ += 1
	}
	if back {
		snap.MoveZ -= 1
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			snap.MoveX = lx
			snap.MoveZ = -ly
			snap.Moving = true
		}
		snap.StartRun = snap.StartRun || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftStick)
		snap.StopRun = snap.StopRun || inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonLeftStick)
		snap.PausePressed = snap.PausePressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)

		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		if math.Abs(rx) > stickDeadzone {
			snap.LookX += rx * 12
		}
	}

	x, _ := ebiten.CursorPosition()
	if i.primed && ebiten.CursorMode() == ebiten.CursorModeCaptured {
		snap.LookX += float64(x - i.lastCursorX)
	}
	i.lastCursorX = x
	i.primed = true

	return snap
}
