package entities

import "mazeworld/pkg/engine/world"

// AdversaryMode is what an adversary did on its last update. Presentation only.
type AdversaryMode int

const (
	ModeIdle    AdversaryMode = iota // Did not move
	ModeWander                       // Took a random step
	ModePursue                       // Stepped toward the player
)

// AdversaryModeInfo contains display information for each mode
type AdversaryModeInfo struct {
	Name string
	Icon string
}

// AdversaryModes maps modes to their display information
var AdversaryModes = map[AdversaryMode]AdversaryModeInfo{
	ModeIdle:   {Name: "idle", Icon: "z"},
	ModeWander: {Name: "wander", Icon: "w"},
	ModePursue: {Name: "pursue", Icon: "!"},
}

func (m AdversaryMode) String() string {
	if info, ok := AdversaryModes[m]; ok {
		return info.Name
	}
	return "unknown"
}

// Adversary is a roaming enemy that moves one cell at a time
type Adversary struct {
	ID              int
	Pos             world.Coord
	Aggression      float64 // probability of a pursuit step, in [0, 1]
	DetectionRadius float64 // in cells
	VisibleToPlayer bool    // recomputed every update
	Mode            AdversaryMode
}

// NewAdversary creates an idle adversary at pos
func NewAdversary(id int, pos world.Coord, aggression, detectionRadius float64) *Adversary {
	return &Adversary{
		ID:              id,
		Pos:             pos,
		Aggression:      aggression,
		DetectionRadius: detectionRadius,
		Mode:            ModeIdle,
	}
}
