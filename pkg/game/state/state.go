// Package state holds the plain-data side of a maze world session: the run state,
// score progress, the message log and the snapshot handed to renderers.
package state

import (
	"time"

	"mazeworld/pkg/engine/world"
	"mazeworld/pkg/game/entities"
)

// WorldState is the top-level run state
type WorldState int

const (
	Running WorldState = iota
	GameOver
	Victory
)

var worldStateNames = map[WorldState]string{
	Running:  "running",
	GameOver: "game_over",
	Victory:  "victory",
}

func (s WorldState) String() string {
	if name, ok := worldStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal returns true for GameOver and Victory
func (s WorldState) IsTerminal() bool {
	return s == GameOver || s == Victory
}

// pointsPerLevel is the score needed per level before advancing
const pointsPerLevel = 100

// Progress is the score and level carried across victories
type Progress struct {
	Score int
	Level int
}

// NewProgress starts at level 1 with no score
func NewProgress() Progress {
	return Progress{Level: 1}
}

// UpdateScore adds points and advances the level while the score allows.
// It returns true if the level changed.
func (p *Progress) UpdateScore(points int) bool {
	p.Score += points
	advanced := false
	for p.Score >= p.Level*pointsPerLevel {
		p.Level++
		advanced = true
	}
	return advanced
}

// Message is a log entry: a translation key plus its arguments
type Message struct {
	Key  string
	Args []any
}

// MessageLog keeps the last few messages
type MessageLog struct {
	entries []Message
}

const maxMessages = 5

// AddMessage adds a message to the log
func (l *MessageLog) AddMessage(key string, args ...any) {
	l.entries = append(l.entries, Message{Key: key, Args: args})

	// Keep only the last maxMessages
	if len(l.entries) > maxMessages {
		l.entries = l.entries[len(l.entries)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (l *MessageLog) ClearMessages() {
	l.entries = nil
}

// Messages returns a copy of the current messages, oldest first
func (l *MessageLog) Messages() []Message {
	out := make([]Message, len(l.entries))
	copy(out, l.entries)
	return out
}

// CellView is the render view of one cell
type CellView struct {
	Coord     world.Coord
	Walls     [4]bool
	Kind      world.CellKind
	Triggered bool
}

// PlayerView is the render view of the player
type PlayerView struct {
	Rect       world.Rect
	Cell       world.Coord
	Facing     world.Vec2
	Health     int
	MaxHealth  int
	LightOn    bool
	Battery    float64
	MaxBattery float64
	// Invulnerable is set during the grace window after a hit
	Invulnerable bool
}

// AdversaryView is the render view of one adversary
type AdversaryView struct {
	ID      int
	Pos     world.Coord
	Visible bool
	Mode    entities.AdversaryMode
}

// Snapshot is everything a renderer needs for one frame. It shares nothing with the live world.
type Snapshot struct {
	SessionID   string
	Tick        uint64
	Now         time.Duration
	State       WorldState
	Progress    Progress
	Cols, Rows  int
	CellSize    float64
	Start, Exit world.Coord
	Cells       []CellView // column-major, index x*Rows+y
	Discovered  []world.Coord
	Player      PlayerView
	Adversaries []AdversaryView
	Messages    []Message
}

// Cell returns the view of the cell at (x, y), or false if out of bounds
func (s *Snapshot) Cell(x, y int) (CellView, bool) {
	if x < 0 || x >= s.Cols || y < 0 || y >= s.Rows {
		return CellView{}, false
	}
	return s.Cells[x*s.Rows+y], true
}

// DiscoveredSet returns the discovered cells as a lookup table
func (s *Snapshot) DiscoveredSet() map[world.Coord]bool {
	set := make(map[world.Coord]bool, len(s.Discovered))
	for _, c := range s.Discovered {
		set[c] = true
	}
	return set
}

// AdversaryAt returns the adversary standing on c, if any
func (s *Snapshot) AdversaryAt(c world.Coord) (AdversaryView, bool) {
	for _, a := range s.Adversaries {
		if a.Pos == c {
			return a, true
		}
	}
	return AdversaryView{}, false
}
