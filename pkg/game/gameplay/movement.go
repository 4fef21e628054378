package gameplay

import (
	"mazeworld/pkg/engine/input"
	"mazeworld/pkg/engine/world"
	"mazeworld/pkg/game/collision"
)

// movePlayer applies one tick of movement. Facing follows any non-zero intent,
// even when the step itself is blocked. Returns true if the player moved.
func movePlayer(w *World, m input.Move) bool {
	dir := m.Vector()
	if dir.IsZero() {
		return false
	}
	w.player.Face(dir)

	step := dir.Scaled(w.cfg.PlayerSpeed)
	proposed := w.player.Rect.Moved(step.X, step.Y)
	if !collision.TryMove(w.player.Rect, proposed, w.maze, w.geom) {
		return false
	}
	w.player.Rect = proposed
	return true
}

// playerCell returns the cell holding the player's centre
func (w *World) playerCell() world.Coord {
	cx, cy := w.player.Rect.Center()
	return world.PointToCell(cx, cy, w.cfg.CellSize)
}

// logMessage adds a message to the world's message log
func logMessage(w *World, key string, a ...any) {
	w.messages.AddMessage(key, a...)
}
