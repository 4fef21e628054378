// Package ai drives adversaries: a visibility check against the player, then one
// pursuit-or-wander step gated by the maze walls. There is no pathfinding.
package ai

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"

	"mazeworld/pkg/engine/world"
	"mazeworld/pkg/game/config"
	"mazeworld/pkg/game/entities"
	"mazeworld/pkg/logger"
)

const (
	// VisibleDistance is the exclusive cell distance within which the player can see an adversary
	VisibleDistance = 5.0
	// VisibleMinDot is the exclusive lower bound on facing·direction for the player to see an adversary
	VisibleMinDot = -0.5
	// WatchedMoveChance is the chance an adversary moves while the player can see it
	WatchedMoveChance = 0.8
)

// PlayerView is what the controller needs to know about the player
type PlayerView struct {
	Cell    world.Coord
	Facing  world.Vec2
	LightOn bool
}

// IsVisible reports whether the player can see an adversary at pos
func IsVisible(pos world.Coord, view PlayerView) bool {
	if !view.LightOn {
		return false
	}
	offset := view.Cell.Offset(pos)
	if offset.Len() >= VisibleDistance {
		return false
	}
	if offset.IsZero() {
		return true
	}
	return view.Facing.Dot(offset.Normalized()) > VisibleMinDot
}

// Update recomputes visibility and tries one step. It returns true if the adversary moved.
// Random draws happen in a fixed order: watch gate, aggression roll, random direction.
func Update(adv *entities.Adversary, view PlayerView, m *world.Maze, rng *rand.Rand) bool {
	adv.VisibleToPlayer = IsVisible(adv.Pos, view)

	if adv.VisibleToPlayer && rng.Float64() >= WatchedMoveChance {
		adv.Mode = entities.ModeIdle
		return false
	}

	aggressive := rng.Float64() < adv.Aggression
	toPlayer := adv.Pos.Offset(view.Cell)

	var dir world.Direction
	if aggressive && toPlayer.Len() <= adv.DetectionRadius {
		if toPlayer.IsZero() {
			adv.Mode = entities.ModeIdle
			return false
		}
		dir = towards(toPlayer)
		adv.Mode = entities.ModePursue
	} else {
		dir = world.AllDirections()[rng.Intn(4)]
		adv.Mode = entities.ModeWander
	}

	cell := m.GetCellAt(adv.Pos)
	if cell == nil || !m.CanMove(cell, dir) {
		return false
	}
	adv.Pos = adv.Pos.Step(dir)
	return true
}

// towards picks the cardinal step along the axis with the larger offset. Ties go to x.
func towards(offset world.Vec2) world.Direction {
	if math.Abs(offset.X) >= math.Abs(offset.Y) {
		if offset.X > 0 {
			return world.Right
		}
		return world.Left
	}
	if offset.Y > 0 {
		return world.Bottom
	}
	return world.Top
}

// UpdateAll updates every adversary in order and returns how many moved
func UpdateAll(advs []*entities.Adversary, view PlayerView, m *world.Maze, rng *rand.Rand) int {
	moved := 0
	for _, adv := range advs {
		if Update(adv, view, m, rng) {
			moved++
		}
	}
	return moved
}

// Spawn creates cfg.AdversaryCount adversaries on distinct cells. Cells inside the
// player's first reveal square around the start are avoided while others remain.
func Spawn(m *world.Maze, cfg config.Config, rng *rand.Rand) []*entities.Adversary {
	start := m.StartCell().Coord()

	var far, near []world.Coord
	m.ForEachCell(func(x, y int, cell *world.Cell) {
		c := cell.Coord()
		switch {
		case c == start:
		case c.Chebyshev(start) <= cfg.VisibleRadiusCells:
			near = append(near, c)
		default:
			far = append(far, c)
		}
	})

	advs := make([]*entities.Adversary, 0, cfg.AdversaryCount)
	for len(advs) < cfg.AdversaryCount {
		var pos world.Coord
		switch {
		case len(far) > 0:
			pos, far = draw(far, rng)
		case len(near) > 0:
			pos, near = draw(near, rng)
		default:
			logger.For("ai").WithFields(logrus.Fields{
				"requested": cfg.AdversaryCount,
				"spawned":   len(advs),
			}).Debug("Ran out of cells for adversaries.")
			return advs
		}
		advs = append(advs, entities.NewAdversary(len(advs)+1, pos, cfg.AdversaryAggression, cfg.DetectionRadius))
	}
	return advs
}

// draw swap-removes a uniformly random element
func draw(cells []world.Coord, rng *rand.Rand) (world.Coord, []world.Coord) {
	i := rng.Intn(len(cells))
	c := cells[i]
	last := len(cells) - 1
	cells[i] = cells[last]
	return c, cells[:last]
}
