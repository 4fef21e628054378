// Package ebiten provides an Ebiten-based 2D graphical renderer for the maze world.
package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"mazeworld/pkg/game/renderer"
)

// Color palette
var (
	colorBackground    = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground = color.RGBA{15, 15, 26, 255}    // Undiscovered cells
	colorFloor         = color.RGBA{60, 60, 80, 255}    // Discovered floor
	colorWall          = color.RGBA{180, 180, 200, 255} // Light gray-blue
	colorPlayer        = color.RGBA{0, 255, 0, 255}     // Bright green
	colorPlayerHurt    = color.RGBA{255, 200, 0, 255}   // Amber while invulnerable
	colorAdversary     = color.RGBA{255, 80, 80, 255}   // Bright red
	colorTrap          = color.RGBA{200, 60, 60, 255}
	colorTeleporter    = color.RGBA{100, 150, 255, 255} // Bright blue
	colorButton        = color.RGBA{255, 200, 100, 255} // Orange
	colorExit          = color.RGBA{100, 255, 100, 255} // Bright green
	colorTriggered     = color.RGBA{90, 90, 110, 255}   // Spent latch
	colorFacing        = color.RGBA{200, 255, 200, 255}
	colorPanel         = color.RGBA{30, 30, 50, 220} // Semi-transparent dark
)

// kindColors maps a cell style to its floor fill
var kindColors = map[renderer.TextStyle]color.RGBA{
	renderer.StyleFloor:      colorFloor,
	renderer.StyleTrap:       colorTrap,
	renderer.StyleTeleporter: colorTeleporter,
	renderer.StyleButton:     colorButton,
	renderer.StyleExit:       colorExit,
	renderer.StyleTriggered:  colorTriggered,
}

// Tile size constraints
const (
	minTileSize     = 8
	maxTileSize     = 64
	defaultTileSize = 32
	wallThickness   = 2
	hudHeight       = 96 // status line plus five messages at DebugPrint line height
	debugLineHeight = 16
)

// keyCodes translates Ebiten keys to the binding codes used by the terminal front-end,
// so one bindings table drives both.
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeyEscape:     "escape",
	ebiten.KeySpace:      "space",
	ebiten.KeyEnter:      "enter",
	ebiten.KeyF5:         "f5",
	ebiten.KeyF9:         "f9",
	ebiten.KeyA:          "a",
	ebiten.KeyB:          "b",
	ebiten.KeyC:          "c",
	ebiten.KeyD:          "d",
	ebiten.KeyE:          "e",
	ebiten.KeyF:          "f",
	ebiten.KeyG:          "g",
	ebiten.KeyH:          "h",
	ebiten.KeyI:          "i",
	ebiten.KeyJ:          "j",
	ebiten.KeyK:          "k",
	ebiten.KeyL:          "l",
	ebiten.KeyM:          "m",
	ebiten.KeyN:          "n",
	ebiten.KeyO:          "o",
	ebiten.KeyP:          "p",
	ebiten.KeyQ:          "q",
	ebiten.KeyR:          "r",
	ebiten.KeyS:          "s",
	ebiten.KeyT:          "t",
	ebiten.KeyU:          "u",
	ebiten.KeyV:          "v",
	ebiten.KeyW:          "w",
	ebiten.KeyX:          "x",
	ebiten.KeyY:          "y",
	ebiten.KeyZ:          "z",
}

// Gamepad buttons as seen on common XInput-style controllers under Ebiten
var gamepadCodes = map[ebiten.GamepadButton]string{
	ebiten.GamepadButton11: "gamepad_dpad_up",
	ebiten.GamepadButton12: "gamepad_dpad_right",
	ebiten.GamepadButton13: "gamepad_dpad_down",
	ebiten.GamepadButton14: "gamepad_dpad_left",
	ebiten.GamepadButton0:  "gamepad_a",
	ebiten.GamepadButton1:  "gamepad_b",
	ebiten.GamepadButton7:  "gamepad_start",
}

const stickDeadZone = 0.5
