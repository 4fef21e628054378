package renderer

import (
	"mazeworld/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleFloor
	StyleUndiscovered
	StyleTrap
	StyleTeleporter
	StyleButton
	StyleExit
	StyleTriggered
	StylePlayer
	StyleAdversary
	StyleSubtle
	StyleDenied
	StyleAction
)

// Renderer defines the interface for frame rendering backends.
// A renderer reads snapshots; it never touches the live world.
type Renderer interface {
	// Init initializes the renderer (colors, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders one snapshot: map, status line and messages
	RenderFrame(s *state.Snapshot)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a snapshot using the current renderer
func RenderFrame(s *state.Snapshot) {
	if Current != nil {
		Current.RenderFrame(s)
	}
}
