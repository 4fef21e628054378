package gameplay

import (
	"github.com/sirupsen/logrus"

	"mazeworld/pkg/game/effects"
)

// applyEffect is the single place a fired cell effect changes the world.
// It returns true if the effect ends the run in victory.
func applyEffect(w *World, e effects.Effect, report *TickReport) bool {
	switch e.Kind {
	case effects.Trap:
		if hurtPlayer(w, w.cfg.TrapDamage, report) {
			logMessage(w, MsgTrap, w.cfg.TrapDamage)
		}
		w.log.WithField("cell", e.Target).Debug("Trap triggered.")

	case effects.Teleport:
		w.player.MoveTo(e.Target, w.cfg.CellSize)
		logMessage(w, MsgTeleport)
		w.log.WithField("to", e.Target).Debug("Player teleported.")

	case effects.Reset:
		w.gen.Regenerate(w.maze, w.rng)
		cleared := effects.ClearLatches(w.maze)
		report.Regenerated = true
		logMessage(w, MsgMazeShifted)
		w.log.WithFields(logrus.Fields{
			"button":          e.Target,
			"latches_cleared": cleared,
		}).Info("Maze regenerated.")

	case effects.Exit:
		return true

	default:
		w.log.WithField("effect", e.Kind.String()).Warn("Unhandled effect.")
	}
	return false
}

// applyContact deals contact damage once if any adversary shares the player's cell
func applyContact(w *World, report *TickReport) {
	cell := w.playerCell()
	for _, a := range w.adversaries {
		if a.Pos != cell {
			continue
		}
		if hurtPlayer(w, w.cfg.ContactDamage, report) {
			logMessage(w, MsgCaught, w.cfg.ContactDamage)
			w.log.WithField("adversary", a.ID).Debug("Player caught.")
		}
		return
	}
}

// hurtPlayer applies damage unless the player is still invulnerable from the last hit
func hurtPlayer(w *World, amount int, report *TickReport) bool {
	if !w.player.CanBeHit(w.now, w.cfg.Invulnerability()) {
		return false
	}
	w.player.Damage(amount, w.now)
	report.Damage += amount
	return true
}
