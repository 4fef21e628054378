package ebiten

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	engineinput "mazeworld/pkg/engine/input"
	"mazeworld/pkg/game/renderer"
	"mazeworld/pkg/game/state"
	"mazeworld/pkg/logger"
)

// StepFunc advances the world by one tick with the given intent and returns the new snapshot
type StepFunc func(intent engineinput.Intent) state.Snapshot

// ActionFunc handles actions that live outside the world, such as a map dump
type ActionFunc func(action engineinput.Action, snap *state.Snapshot)

// EbitenRenderer draws snapshots in a window and feeds held keys back as intents.
// Ebiten calls Update at a fixed 60 TPS, so each Update is one world tick.
type EbitenRenderer struct {
	bindings *engineinput.Bindings
	step     StepFunc
	onAction ActionFunc

	snap state.Snapshot

	windowWidth  int
	windowHeight int
	tileSize     int

	windowOpenedLogged bool
	log                *logrus.Entry
}

// New creates a new Ebiten renderer
func New(bindings *engineinput.Bindings, step StepFunc, onAction ActionFunc) *EbitenRenderer {
	return &EbitenRenderer{
		bindings:     bindings,
		step:         step,
		onAction:     onAction,
		windowWidth:  1024,
		windowHeight: 768,
		tileSize:     defaultTileSize,
		log:          logger.For("ebiten"),
	}
}

// Init sets up the window
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("WINDOW_TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// Clear is a no-op; Ebiten redraws the whole screen every frame
func (e *EbitenRenderer) Clear() {}

// StyleText returns text unchanged; colours are applied while drawing
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// RenderFrame stores the snapshot that the next Draw will show
func (e *EbitenRenderer) RenderFrame(s *state.Snapshot) {
	e.snap = *s
}

// Run starts the Ebiten game loop and blocks until the window closes or quit is pressed
func (e *EbitenRenderer) Run(initial state.Snapshot) error {
	e.snap = initial
	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run ebiten: %w", err)
	}
	return nil
}
