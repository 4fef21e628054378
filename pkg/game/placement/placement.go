// Package placement assigns special roles (exit, traps, teleporters, buttons) to a generated maze.
package placement

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"mazeworld/pkg/engine/world"
	"mazeworld/pkg/game/config"
	"mazeworld/pkg/logger"
)

// Result reports how many roles were requested and how many actually fit
type Result struct {
	TrapsRequested   int
	TrapsPlaced      int
	PairsRequested   int
	PairsPlaced      int
	ButtonsRequested int
	ButtonsPlaced    int
	ExitPlaced       bool
}

// Degraded returns true if any role came up short
func (r Result) Degraded() bool {
	return r.TrapsPlaced < r.TrapsRequested ||
		r.PairsPlaced < r.PairsRequested ||
		r.ButtonsPlaced < r.ButtonsRequested
}

// pool is the set of cells still free to receive a role
type pool struct {
	cells []*world.Cell
	rng   *rand.Rand
}

// draw removes and returns a uniformly random cell, or nil when the pool is empty
func (p *pool) draw() *world.Cell {
	if len(p.cells) == 0 {
		return nil
	}
	i := p.rng.Intn(len(p.cells))
	c := p.cells[i]
	last := len(p.cells) - 1
	p.cells[i] = p.cells[last]
	p.cells = p.cells[:last]
	return c
}

// Place assigns roles in a fixed order: exit, traps, teleporter pairs, buttons.
// The start cell never receives a role. When cells run out, fewer roles are placed.
func Place(m *world.Maze, cfg config.Config, rng *rand.Rand) Result {
	res := Result{
		TrapsRequested:   cfg.TrapCount(),
		PairsRequested:   cfg.TeleporterPairCount,
		ButtonsRequested: cfg.ButtonCount,
	}

	start := m.StartCell()
	exit := m.ExitCell()

	if exit != nil && exit != start {
		exit.Kind = world.Exit
		res.ExitPlaced = true
	}

	free := &pool{rng: rng}
	m.ForEachCell(func(x, y int, cell *world.Cell) {
		if cell != start && !cell.IsSpecial() {
			free.cells = append(free.cells, cell)
		}
	})

	for res.TrapsPlaced < res.TrapsRequested {
		c := free.draw()
		if c == nil {
			break
		}
		c.Kind = world.Trap
		res.TrapsPlaced++
	}

	for res.PairsPlaced < res.PairsRequested && len(free.cells) >= 2 {
		a := free.draw()
		b := free.draw()
		a.Kind = world.Teleporter
		b.Kind = world.Teleporter
		a.LinkTo(b)
		res.PairsPlaced++
	}

	for res.ButtonsPlaced < res.ButtonsRequested {
		c := free.draw()
		if c == nil {
			break
		}
		c.Kind = world.Button
		res.ButtonsPlaced++
	}

	entry := logger.For("placement").WithFields(logrus.Fields{
		"traps":       res.TrapsPlaced,
		"teleporters": res.PairsPlaced,
		"buttons":     res.ButtonsPlaced,
	})
	if res.Degraded() {
		entry.WithFields(logrus.Fields{
			"traps_requested":       res.TrapsRequested,
			"teleporters_requested": res.PairsRequested,
			"buttons_requested":     res.ButtonsRequested,
		}).Debug("Placement ran out of free cells.")
	} else {
		entry.Debug("Special cells placed.")
	}

	return res
}
