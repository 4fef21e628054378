package gameplay

import "time"

// updateLight handles the toggle request and the battery for one tick
func updateLight(w *World, toggle bool, dt time.Duration) {
	if toggle {
		if w.player.ToggleLight() {
			if w.player.LightOn {
				logMessage(w, MsgLightOn)
			} else {
				logMessage(w, MsgLightOff)
			}
		} else {
			logMessage(w, MsgBatteryTooLow)
		}
	}

	if w.player.UpdateBattery(dt, w.cfg.LightDrainPerSec, w.cfg.LightRechargePerSec) {
		logMessage(w, MsgBatteryFlat)
		w.log.Debug("Light forced off, battery empty.")
	}
}

// revealRadius is the Chebyshev reveal radius for the current light state
func (w *World) revealRadius() int {
	if w.player == nil || w.player.LightOn {
		return w.cfg.VisibleRadiusCells
	}
	return w.cfg.DarkRadiusCells
}

// updateVisibility grows the discovered set around the player and returns how many cells were new
func updateVisibility(w *World) int {
	before := w.visibility.Len()
	w.visibility.RevealInMaze(w.maze, w.playerCell(), w.revealRadius())
	return w.visibility.Len() - before
}
