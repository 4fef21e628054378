package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "mazeworld/pkg/engine/input"
)

// Update handles input and advances the world by one tick (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		e.log.WithField("size", [2]int{w, h}).Info("Main window opened.")
	}

	e.handleZoom()

	held, pressed := e.pollKeys()
	gpHeld, gpPressed := pollGamepads()
	held = append(held, gpHeld...)
	pressed = append(pressed, gpPressed...)

	worldActions, outside := resolveActions(e.bindings, held, pressed)
	for _, a := range outside {
		if a == engineinput.ActionQuit {
			e.log.Info("Quit requested.")
			return ebiten.Termination
		}
		if e.onAction != nil {
			e.onAction(a, &e.snap)
		}
	}

	if e.step != nil {
		e.snap = e.step(engineinput.Combine(worldActions...))
	}
	return nil
}

// pollKeys returns the keys held down and the keys pressed this frame
func (e *EbitenRenderer) pollKeys() (held, pressed []engineinput.RawInput) {
	now := time.Now()
	for key, code := range keyCodes {
		ev := engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: code, Timestamp: now}
		if ebiten.IsKeyPressed(key) {
			held = append(held, ev)
		}
		if inpututil.IsKeyJustPressed(key) {
			pressed = append(pressed, ev)
		}
	}
	return held, pressed
}

// pollGamepads reads the d-pad, face buttons and the left stick of every connected pad
func pollGamepads() (held, pressed []engineinput.RawInput) {
	now := time.Now()
	pad := func(code string) engineinput.RawInput {
		return engineinput.RawInput{Device: engineinput.DeviceGamepad, Code: code, Timestamp: now}
	}

	var ids []ebiten.GamepadID
	ids = ebiten.AppendGamepadIDs(ids[:0])

	for _, id := range ids {
		for button, code := range gamepadCodes {
			if ebiten.IsGamepadButtonPressed(id, button) {
				held = append(held, pad(code))
			}
			if inpututil.IsGamepadButtonJustPressed(id, button) {
				pressed = append(pressed, pad(code))
			}
		}

		// Axes: 0 = X (left = -1, right = +1), 1 = Y (up = -1, down = +1)
		x := ebiten.GamepadAxisValue(id, 0)
		y := ebiten.GamepadAxisValue(id, 1)
		switch {
		case x < -stickDeadZone:
			held = append(held, pad("gamepad_dpad_left"))
		case x > stickDeadZone:
			held = append(held, pad("gamepad_dpad_right"))
		}
		switch {
		case y < -stickDeadZone:
			held = append(held, pad("gamepad_dpad_up"))
		case y > stickDeadZone:
			held = append(held, pad("gamepad_dpad_down"))
		}
	}
	return held, pressed
}

// resolveActions maps polled codes through the bindings.
// Movement counts while held; everything else fires once on the press edge.
// World actions go into one Intent, the rest (quit, map dump) are handled by the front-end.
func resolveActions(b *engineinput.Bindings, held, pressed []engineinput.RawInput) (world, outside []engineinput.Action) {
	for _, raw := range held {
		a := b.Resolve(engineinput.NewDebouncedInput(raw).Code)
		if isMove(a) {
			world = append(world, a)
		}
	}
	for _, raw := range pressed {
		switch a := b.Resolve(engineinput.NewDebouncedInput(raw).Code); a {
		case engineinput.ActionNone:
		case engineinput.ActionToggleLight, engineinput.ActionReset:
			world = append(world, a)
		case engineinput.ActionQuit, engineinput.ActionDumpMap:
			outside = append(outside, a)
		}
	}
	return world, outside
}

func isMove(a engineinput.Action) bool {
	return engineinput.Combine(a).Move != engineinput.MoveNone
}

// handleZoom handles =/- for tile size adjustment
func (e *EbitenRenderer) handleZoom() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		e.tileSize = min(e.tileSize+4, maxTileSize)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		e.tileSize = max(e.tileSize-4, minTileSize)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad0) {
		e.tileSize = defaultTileSize
	}
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth = outsideWidth
	e.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}
