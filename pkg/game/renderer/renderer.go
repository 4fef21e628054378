// Package renderer holds what every front-end shares: icons, styles per cell kind,
// and translation of the world's message keys.
package renderer

import (
	"fmt"
	"math"
	"strings"

	"github.com/leonelquinteros/gotext"

	"mazeworld/pkg/engine/world"
	"mazeworld/pkg/game/state"
)

// Icon constants
const (
	PlayerIcon       = "@"
	AdversaryIcon    = "&"
	IconFloor        = " "
	IconUndiscovered = "░"
	IconTrap         = "^"
	IconTrapSprung   = "x"
	IconTeleporter   = "o"
	IconTeleported   = "."
	IconButton       = "*"
	IconButtonUsed   = "+"
	IconExit         = ">"
)

// dynamicGet is used for runtime translation key lookups.
// A function variable keeps go vet from flagging the non-constant format string.
var dynamicGet = gotext.Get

// Translate renders a logged message in the configured language.
// Keys without a translation come back unchanged.
func Translate(m state.Message) string {
	return dynamicGet(m.Key, m.Args...)
}

// CellIcon returns the icon for a cell of the given kind
func CellIcon(kind world.CellKind, triggered bool) string {
	switch kind {
	case world.Trap:
		if triggered {
			return IconTrapSprung
		}
		return IconTrap
	case world.Teleporter:
		if triggered {
			return IconTeleported
		}
		return IconTeleporter
	case world.Button:
		if triggered {
			return IconButtonUsed
		}
		return IconButton
	case world.Exit:
		return IconExit
	}
	return IconFloor
}

// CellStyle returns the text style for a cell of the given kind
func CellStyle(kind world.CellKind, triggered bool) TextStyle {
	if triggered && kind.IsLatching() {
		return StyleTriggered
	}
	switch kind {
	case world.Trap:
		return StyleTrap
	case world.Teleporter:
		return StyleTeleporter
	case world.Button:
		return StyleButton
	case world.Exit:
		return StyleExit
	}
	return StyleFloor
}

// Bar draws a fixed-width gauge such as [#####-----]
func Bar(value, max float64, width int) string {
	if max <= 0 || width <= 0 {
		return ""
	}
	filled := int(math.Round(value / max * float64(width)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// StatusLine summarises the player and run state in one line
func StatusLine(s *state.Snapshot) string {
	p := s.Player
	light := gotext.Get("LIGHT_STATUS_OFF")
	if p.LightOn {
		light = gotext.Get("LIGHT_STATUS_ON")
	}
	return fmt.Sprintf("%s %d/%d  %s %s %s  %s %d  %s %d  %s",
		gotext.Get("HEALTH"), p.Health, p.MaxHealth,
		gotext.Get("LIGHT"), light, Bar(p.Battery, p.MaxBattery, 10),
		gotext.Get("SCORE"), s.Progress.Score,
		gotext.Get("LEVEL"), s.Progress.Level,
		StateBanner(s.State),
	)
}

// StateBanner returns the translated name of the run state
func StateBanner(ws state.WorldState) string {
	switch ws {
	case state.GameOver:
		return gotext.Get("STATE_GAME_OVER")
	case state.Victory:
		return gotext.Get("STATE_VICTORY")
	}
	return gotext.Get("STATE_RUNNING")
}

// ViewportOrigin returns the first index of a window of size span centred on focus,
// clamped so the window stays inside [0, total)
func ViewportOrigin(focus, span, total int) int {
	origin := focus - span/2
	if origin > total-span {
		origin = total - span
	}
	if origin < 0 {
		origin = 0
	}
	return origin
}
