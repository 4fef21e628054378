// Package effects resolves what the cell under the player does this tick.
// Check only flips latches and the maze reset stamp; applying the result is the world's job.
package effects

import (
	"time"

	"github.com/sirupsen/logrus"

	"mazeworld/pkg/engine/world"
	"mazeworld/pkg/logger"
)

// EffectKind is the outcome of stepping on a special cell
type EffectKind int

const (
	Trap EffectKind = iota
	Teleport
	Reset
	Exit
)

var effectKindNames = map[EffectKind]string{
	Trap:     "trap",
	Teleport: "teleport",
	Reset:    "reset",
	Exit:     "exit",
}

func (k EffectKind) String() string {
	if name, ok := effectKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Effect is a fired cell effect. Target is only meaningful for Teleport.
type Effect struct {
	Kind   EffectKind
	Target world.Coord
}

// Check evaluates the cell at pos. It returns false when nothing fires.
func Check(pos world.Coord, m *world.Maze, now time.Duration) (Effect, bool) {
	cell := m.GetCellAt(pos)
	if cell == nil {
		return Effect{}, false
	}

	switch cell.Kind {
	case world.Normal:
		return Effect{}, false

	case world.Trap:
		if cell.Triggered {
			return Effect{}, false
		}
		cell.Triggered = true
		return Effect{Kind: Trap, Target: pos}, true

	case world.Teleporter:
		if cell.Triggered || cell.Linked == nil {
			return Effect{}, false
		}
		target := m.GetCellAt(*cell.Linked)
		if target == nil {
			logger.For("effects").WithFields(logrus.Fields{
				"from": pos,
				"to":   *cell.Linked,
			}).Warn("Teleporter links outside the maze.")
			return Effect{}, false
		}
		// Latch the destination too so arriving there does not send the player back
		cell.Triggered = true
		target.Triggered = true
		return Effect{Kind: Teleport, Target: target.Coord()}, true

	case world.Button:
		if cell.Triggered || !m.ResetReady(now) {
			return Effect{}, false
		}
		cell.Triggered = true
		m.MarkReset(now)
		return Effect{Kind: Reset, Target: pos}, true

	case world.Exit:
		return Effect{Kind: Exit, Target: pos}, true
	}

	logger.For("effects").WithField("kind", int(cell.Kind)).Warn("Unknown cell kind.")
	return Effect{}, false
}

// ClearLatches resets the Triggered flag on every trap and teleporter.
// Buttons stay latched, so each button fires once per session.
func ClearLatches(m *world.Maze) int {
	cleared := 0
	m.ForEachCell(func(x, y int, cell *world.Cell) {
		if (cell.Kind == world.Trap || cell.Kind == world.Teleporter) && cell.Triggered {
			cell.Triggered = false
			cleared++
		}
	})
	return cleared
}
