// Package gameplay owns a running maze world and advances it one tick at a time.
package gameplay

import (
	"cmp"
	"math/rand"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"mazeworld/pkg/engine/world"
	"mazeworld/pkg/game/ai"
	"mazeworld/pkg/game/collision"
	"mazeworld/pkg/game/config"
	"mazeworld/pkg/game/entities"
	"mazeworld/pkg/game/generator"
	"mazeworld/pkg/game/placement"
	"mazeworld/pkg/game/state"
	"mazeworld/pkg/logger"
)

// World is one maze world session. It is the only writer of its maze and entities.
// Not safe for concurrent use.
type World struct {
	cfg  config.Config
	geom collision.Geometry
	gen  generator.MazeGenerator

	seed int64
	rng  *rand.Rand

	sessionID   uuid.UUID
	maze        *world.Maze
	visibility  *world.VisibilityTracker
	player      *entities.Player
	adversaries []*entities.Adversary
	placed      placement.Result

	state    state.WorldState
	progress state.Progress
	messages state.MessageLog

	now         time.Duration
	tick        uint64
	lastAdvStep time.Duration

	log *logrus.Entry
}

// NewWorld builds a session from cfg and seed and returns it Running.
// cfg is assumed valid; see config.Validate.
func NewWorld(cfg config.Config, seed int64) *World {
	w := &World{
		cfg:      cfg,
		geom:     collision.GeometryFrom(cfg),
		gen:      generator.DefaultGenerator,
		seed:     seed,
		rng:      rand.New(rand.NewSource(seed)),
		progress: state.NewProgress(),
	}
	w.build()
	return w
}

// build creates a fresh maze, entities and visibility from the current rng
func (w *World) build() {
	// Drawn from its own source so the id follows the seed without shifting maze generation
	id, err := uuid.NewRandomFromReader(rand.New(rand.NewSource(w.seed)))
	if err != nil {
		id = uuid.New()
	}
	w.sessionID = id
	w.log = logger.For("world").WithField("session", w.sessionID.String())

	w.maze = w.gen.Generate(w.cfg.Cols, w.cfg.Rows, w.rng, generator.Options{
		RandomStartCorner: w.cfg.RandomStartCorner,
	})
	w.maze.SetResetCooldown(w.cfg.ResetCooldown())
	w.placed = placement.Place(w.maze, w.cfg, w.rng)

	start := w.maze.StartCell().Coord()
	w.player = entities.NewPlayer(start, w.cfg.CellSize, w.cfg.EntityTravelWidth, w.cfg.MaxHealth, w.cfg.LightBatteryMax)
	w.adversaries = ai.Spawn(w.maze, w.cfg, w.rng)

	// Nothing is discovered until the first tick
	w.visibility = world.NewVisibilityTracker()

	w.state = state.Running
	w.now = 0
	w.tick = 0
	w.lastAdvStep = 0

	w.messages.ClearMessages()
	logMessage(w, MsgWelcome)
	logMessage(w, MsgLevel, w.progress.Level)
	if w.placed.Degraded() {
		logMessage(w, MsgPlacementShort)
	}

	w.log.WithFields(logrus.Fields{
		"seed":        w.seed,
		"cols":        w.cfg.Cols,
		"rows":        w.cfg.Rows,
		"generator":   w.gen.Name(),
		"adversaries": len(w.adversaries),
		"traps":       w.placed.TrapsPlaced,
		"teleporters": w.placed.PairsPlaced,
		"buttons":     w.placed.ButtonsPlaced,
	}).Info("World built.")
}

// Reset reinitialises maze, visibility, player and adversaries together.
// It is accepted in any state. A reset after GameOver also clears progress.
func (w *World) Reset() {
	prev := w.state
	if prev == state.GameOver {
		w.progress = state.NewProgress()
	}

	// Derive the next session seed from the current stream so runs stay reproducible
	w.seed = w.rng.Int63()
	w.rng = rand.New(rand.NewSource(w.seed))

	w.log.WithField("from", prev.String()).Info("World reset.")
	w.build()

	logMessage(w, MsgWorldRestarted)
	if prev == state.GameOver {
		logMessage(w, MsgRestartProgress)
	}
}

// State returns the current run state
func (w *World) State() state.WorldState {
	return w.state
}

// Progress returns score and level
func (w *World) Progress() state.Progress {
	return w.progress
}

// SessionID identifies the current maze; it changes on every reset
func (w *World) SessionID() string {
	return w.sessionID.String()
}

// Seed returns the seed the current maze was built from
func (w *World) Seed() int64 {
	return w.seed
}

// Now returns the world clock
func (w *World) Now() time.Duration {
	return w.now
}

// Config returns the session configuration
func (w *World) Config() config.Config {
	return w.cfg
}

// Placement reports how many special cells the current maze received
func (w *World) Placement() placement.Result {
	return w.placed
}

// Snapshot copies the world into plain data for rendering
func (w *World) Snapshot() state.Snapshot {
	m := w.maze
	s := state.Snapshot{
		SessionID: w.sessionID.String(),
		Tick:      w.tick,
		Now:       w.now,
		State:     w.state,
		Progress:  w.progress,
		Cols:      m.Cols(),
		Rows:      m.Rows(),
		CellSize:  w.cfg.CellSize,
		Start:     m.StartCell().Coord(),
		Exit:      m.ExitCell().Coord(),
		Cells:     make([]state.CellView, 0, m.Size()),
		Messages:  w.messages.Messages(),
	}

	m.ForEachCell(func(x, y int, cell *world.Cell) {
		s.Cells = append(s.Cells, state.CellView{
			Coord:     cell.Coord(),
			Walls:     cell.Walls,
			Kind:      cell.Kind,
			Triggered: cell.Triggered,
		})
	})

	s.Discovered = make([]world.Coord, 0, w.visibility.Len())
	w.visibility.Each(func(c world.Coord) {
		s.Discovered = append(s.Discovered, c)
	})
	slices.SortFunc(s.Discovered, func(a, b world.Coord) int {
		if a.X != b.X {
			return cmp.Compare(a.X, b.X)
		}
		return cmp.Compare(a.Y, b.Y)
	})

	p := w.player
	s.Player = state.PlayerView{
		Rect:         p.Rect,
		Cell:         w.playerCell(),
		Facing:       p.Facing,
		Health:       p.Health,
		MaxHealth:    p.MaxHealth,
		LightOn:      p.LightOn,
		Battery:      p.Battery,
		MaxBattery:   p.MaxBattery,
		Invulnerable: !p.CanBeHit(w.now, w.cfg.Invulnerability()),
	}

	s.Adversaries = make([]state.AdversaryView, 0, len(w.adversaries))
	for _, a := range w.adversaries {
		s.Adversaries = append(s.Adversaries, state.AdversaryView{
			ID:      a.ID,
			Pos:     a.Pos,
			Visible: a.VisibleToPlayer,
			Mode:    a.Mode,
		})
	}
	return s
}
