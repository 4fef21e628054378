package gameplay

import (
	"time"

	"github.com/sirupsen/logrus"

	"mazeworld/pkg/engine/input"
	"mazeworld/pkg/game/ai"
	"mazeworld/pkg/game/effects"
	"mazeworld/pkg/game/state"
)

// TickReport summarises what one Step did
type TickReport struct {
	Tick             uint64
	State            state.WorldState
	Reset            bool
	Moved            bool
	Effect           effects.Effect
	EffectFired      bool
	Damage           int
	Regenerated      bool
	AdversariesMoved int
	Revealed         int
	Transitioned     bool
}

// Step advances the world by one tick of dt.
// Order: light, player movement, cell effect, adversaries, visibility, end check.
// When the run is over only intent.Reset does anything.
func (w *World) Step(intent input.Intent, dt time.Duration) TickReport {
	if intent.Reset {
		w.Reset()
		return TickReport{Tick: w.tick, State: w.state, Reset: true}
	}

	report := TickReport{Tick: w.tick, State: w.state}
	if w.state != state.Running {
		return report
	}

	w.now += dt
	w.tick++
	report.Tick = w.tick

	updateLight(w, intent.ToggleLight, dt)

	report.Moved = movePlayer(w, intent.Move)

	exitReached := false
	if e, ok := effects.Check(w.playerCell(), w.maze, w.now); ok {
		report.Effect = e
		report.EffectFired = true
		exitReached = applyEffect(w, e, &report)
	}

	view := ai.PlayerView{
		Cell:    w.playerCell(),
		Facing:  w.player.Facing,
		LightOn: w.player.LightOn,
	}
	if w.adversaryStepDue() {
		report.AdversariesMoved = ai.UpdateAll(w.adversaries, view, w.maze, w.rng)
		w.lastAdvStep = w.now
	} else {
		for _, a := range w.adversaries {
			a.VisibleToPlayer = ai.IsVisible(a.Pos, view)
		}
	}
	applyContact(w, &report)

	report.Revealed = updateVisibility(w)

	// GameOver wins over Victory when both happen in one tick
	switch {
	case w.player.IsDead():
		w.transition(state.GameOver)
		logMessage(w, MsgGameOver)
		report.Transitioned = true
	case exitReached:
		w.transition(state.Victory)
		logMessage(w, MsgExitReached, w.cfg.VictoryPoints)
		if w.progress.UpdateScore(w.cfg.VictoryPoints) {
			logMessage(w, MsgLevelUp, w.progress.Level)
		}
		report.Transitioned = true
	}

	report.State = w.state
	return report
}

// adversaryStepDue reports whether adversaries may move this tick
func (w *World) adversaryStepDue() bool {
	step := w.cfg.AdversaryStep()
	return step <= 0 || w.now-w.lastAdvStep >= step
}

// transition moves out of Running exactly once
func (w *World) transition(to state.WorldState) {
	w.log.WithFields(logrus.Fields{
		"from": w.state.String(),
		"to":   to.String(),
		"tick": w.tick,
		"now":  w.now,
	}).Info("World state changed.")
	w.state = to
}
