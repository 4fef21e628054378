package input

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"mazeworld/pkg/engine/world"
	"mazeworld/pkg/logger"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast
	ActionMoveNorthEast
	ActionMoveNorthWest
	ActionMoveSouthEast
	ActionMoveSouthWest

	// World
	ActionToggleLight
	ActionReset

	// Meta / UI
	ActionQuit
	ActionDumpMap
)

var actionNames = map[Action]string{
	ActionNone:          "none",
	ActionMoveNorth:     "move_north",
	ActionMoveSouth:     "move_south",
	ActionMoveWest:      "move_west",
	ActionMoveEast:      "move_east",
	ActionMoveNorthEast: "move_north_east",
	ActionMoveNorthWest: "move_north_west",
	ActionMoveSouthEast: "move_south_east",
	ActionMoveSouthWest: "move_south_west",
	ActionToggleLight:   "toggle_light",
	ActionReset:         "reset",
	ActionQuit:          "quit",
	ActionDumpMap:       "dump_map",
}

// ActionName returns the config name of an action.
func ActionName(a Action) string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// ParseAction looks an action up by its config name.
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name && a != ActionNone {
			return a, true
		}
	}
	return ActionNone, false
}

// moveVectors holds the unit grid step of each movement action
var moveVectors = map[Action][2]int{
	ActionMoveNorth:     {0, -1},
	ActionMoveSouth:     {0, 1},
	ActionMoveWest:      {-1, 0},
	ActionMoveEast:      {1, 0},
	ActionMoveNorthEast: {1, -1},
	ActionMoveNorthWest: {-1, -1},
	ActionMoveSouthEast: {1, 1},
	ActionMoveSouthWest: {-1, 1},
}

// Move is one of nine movement intents: none or one of eight directions.
type Move int

const (
	MoveNone Move = iota
	MoveNorth
	MoveNorthEast
	MoveEast
	MoveSouthEast
	MoveSouth
	MoveSouthWest
	MoveWest
	MoveNorthWest
)

var moveSteps = map[Move][2]int{
	MoveNone:      {0, 0},
	MoveNorth:     {0, -1},
	MoveNorthEast: {1, -1},
	MoveEast:      {1, 0},
	MoveSouthEast: {1, 1},
	MoveSouth:     {0, 1},
	MoveSouthWest: {-1, 1},
	MoveWest:      {-1, 0},
	MoveNorthWest: {-1, -1},
}

// MoveFromStep maps a step with components in {-1, 0, 1} to a Move.
func MoveFromStep(dx, dy int) Move {
	for m, s := range moveSteps {
		if s[0] == dx && s[1] == dy {
			return m
		}
	}
	return MoveNone
}

// Vector returns the unit direction of the move. Diagonals are normalised.
func (m Move) Vector() world.Vec2 {
	s := moveSteps[m]
	return world.Vec2{X: float64(s[0]), Y: float64(s[1])}.Normalized()
}

// Intent is the 4th‑layer input the simulation consumes once per tick.
type Intent struct {
	Move        Move
	ToggleLight bool
	Reset       bool
}

// IsZero reports whether the intent asks for nothing.
func (i Intent) IsZero() bool {
	return i == Intent{}
}

// Combine folds the actions active this tick into one Intent.
// Opposing movement cancels out; non-world actions are ignored.
func Combine(actions ...Action) Intent {
	var intent Intent
	dx, dy := 0, 0
	for _, a := range actions {
		if v, ok := moveVectors[a]; ok {
			dx += v[0]
			dy += v[1]
			continue
		}
		switch a {
		case ActionToggleLight:
			intent.ToggleLight = true
		case ActionReset:
			intent.Reset = true
		}
	}
	intent.Move = MoveFromStep(sign(dx), sign(dy))
	return intent
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "w", "arrow_up", "gamepad_dpad_up").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// reservedCodes cannot be rebound away from their default action
var reservedCodes = map[string]bool{
	"arrow_up":    true,
	"arrow_down":  true,
	"arrow_left":  true,
	"arrow_right": true,
	"escape":      true,
}

// IsReserved reports whether code is pinned to its default action
func IsReserved(code string) bool {
	return reservedCodes[code]
}

// defaultBindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
func defaultBindings() map[string]Action {
	return map[string]Action{
		// Movement (arrows, WASD, Vim)
		"arrow_up":    ActionMoveNorth,
		"w":           ActionMoveNorth,
		"k":           ActionMoveNorth,
		"arrow_down":  ActionMoveSouth,
		"s":           ActionMoveSouth,
		"j":           ActionMoveSouth,
		"arrow_left":  ActionMoveWest,
		"a":           ActionMoveWest,
		"h":           ActionMoveWest,
		"arrow_right": ActionMoveEast,
		"d":           ActionMoveEast,
		"l":           ActionMoveEast,

		// Vim diagonals for the terminal, where keys cannot be held together
		"y": ActionMoveNorthWest,
		"u": ActionMoveNorthEast,
		"b": ActionMoveSouthWest,
		"n": ActionMoveSouthEast,

		// Light
		"f":     ActionToggleLight,
		"space": ActionToggleLight,

		// Reset
		"r":  ActionReset,
		"f5": ActionReset,

		// Quit
		"q":      ActionQuit,
		"escape": ActionQuit,

		// Developer map dump
		"f9": ActionDumpMap,

		// Controller/gamepad specific bindings
		"gamepad_dpad_up":    ActionMoveNorth,
		"gamepad_dpad_down":  ActionMoveSouth,
		"gamepad_dpad_left":  ActionMoveWest,
		"gamepad_dpad_right": ActionMoveEast,
		"gamepad_a":          ActionToggleLight,
		"gamepad_start":      ActionReset,
		"gamepad_b":          ActionQuit,
	}
}

// Bindings is the name-keyed table from raw codes to actions.
type Bindings struct {
	codes map[string]Action
}

// NewBindings returns the default bindings.
func NewBindings() *Bindings {
	return &Bindings{codes: defaultBindings()}
}

// Resolve maps a code to its action. Unknown codes resolve to ActionNone.
func (b *Bindings) Resolve(code string) Action {
	if act, ok := b.codes[code]; ok {
		return act
	}
	logger.For("input").WithField("code", code).Debug("Unbound key.")
	return ActionNone
}

// MapToIntent is the 3rd+4th layer: it applies the bindings to a single
// debounced input and returns the Intent for one tick.
func (b *Bindings) MapToIntent(ev DebouncedInput) Intent {
	return Combine(b.Resolve(ev.Code))
}

// ByAction returns the current bindings grouped by action.
func (b *Bindings) ByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range b.codes {
		result[act] = append(result[act], code)
	}
	// Stable ordering of codes within each action
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// Codes returns every bound code, sorted.
func (b *Bindings) Codes() []string {
	codes := make([]string, 0, len(b.codes))
	for c := range b.codes {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// SetBinding replaces all non-reserved codes of action with the given codes.
// It returns false if the action is ActionNone.
func (b *Bindings) SetBinding(action Action, codes ...string) bool {
	if action == ActionNone {
		return false
	}
	for c, a := range b.codes {
		if a == action && !reservedCodes[c] {
			delete(b.codes, c)
		}
	}
	for _, c := range codes {
		if c == "" || reservedCodes[c] {
			continue
		}
		b.codes[c] = action
	}
	return true
}

// ApplyOverrides rebinds actions by config name. Unknown action names are logged
// and their default codes kept.
func (b *Bindings) ApplyOverrides(overrides map[string][]string) {
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		act, ok := ParseAction(name)
		if !ok {
			logger.For("input").WithFields(logrus.Fields{
				"action": name,
				"codes":  overrides[name],
			}).Warn("Unknown action in bindings, keeping defaults.")
			continue
		}
		b.SetBinding(act, overrides[name]...)
	}
}
