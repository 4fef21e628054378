package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"mazeworld/pkg/engine/input"
	"mazeworld/pkg/engine/terminal"
	"mazeworld/pkg/game/config"
	"mazeworld/pkg/game/devtools"
	"mazeworld/pkg/game/gameplay"
	"mazeworld/pkg/game/menu"
	"mazeworld/pkg/game/renderer"
	ebitenrenderer "mazeworld/pkg/game/renderer/ebiten"
	"mazeworld/pkg/game/renderer/tui"
	"mazeworld/pkg/game/state"
	"mazeworld/pkg/logger"
)

const logFilename = "mazeworld.log"

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (defaults are used when empty)")
	seedFlag := flag.Int64("seed", 0, "world seed (0 = config seed, or time based)")
	useTUI := flag.Bool("tui", false, "play in the terminal instead of a window")
	dump := flag.Bool("dump", false, "print a map dump of the generated world and exit")
	lang := flag.String("lang", "", "language for messages (overrides config)")
	listKeys := flag.Bool("keys", false, "print the key bindings and exit")
	cells := flag.String("cells", "", "print the cells of the given kinds (e.g. trap,exit) and exit")
	flag.Parse()

	logger.Init()
	log := logger.For("main")

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.WithError(err).Fatal("Cannot load config.")
	}
	if *lang != "" {
		cfg.Language = *lang
	}
	gotext.Configure("locales", cfg.Language, "default")

	bindings := input.NewBindings()
	bindings.ApplyOverrides(cfg.Bindings)
	if *listKeys {
		for _, line := range menu.BindingLines(bindings) {
			fmt.Println(line)
		}
		return
	}

	seed := pickSeed(*seedFlag, cfg.Seed)
	w := gameplay.NewWorld(cfg, seed)
	log.WithFields(logrus.Fields{
		"seed":    seed,
		"session": w.SessionID(),
		"cols":    cfg.Cols,
		"rows":    cfg.Rows,
	}).Info("World created.")

	if *cells != "" {
		snap := w.Snapshot()
		unknown, err := devtools.ListCells(os.Stdout, &snap, *cells)
		if err != nil {
			log.WithError(err).Fatal("Cell listing failed.")
		}
		for _, name := range unknown {
			log.WithField("kind", name).Warn("Unknown cell kind ignored.")
		}
		return
	}

	if *dump {
		snap := w.Snapshot()
		if err := devtools.WriteMapDump(os.Stdout, &snap, w.Seed()); err != nil {
			log.WithError(err).Fatal("Map dump failed.")
		}
		return
	}

	if *useTUI {
		err = runTUI(w, bindings)
	} else {
		err = runWindow(w, bindings)
	}
	if err != nil {
		log.WithError(err).Fatal("Game loop failed.")
	}
	fmt.Println(gotext.Get("GOODBYE"))
}

// loadConfig reads path on top of the defaults, or returns the defaults when path is empty
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		cfg := config.Default()
		return cfg, cfg.Validate()
	}
	return config.Load(path)
}

// pickSeed prefers the flag, then the config, then the clock
func pickSeed(flagSeed, cfgSeed int64) int64 {
	switch {
	case flagSeed != 0:
		return flagSeed
	case cfgSeed != 0:
		return cfgSeed
	}
	return time.Now().UnixNano()
}

// runWindow plays in an Ebiten window; every Ebiten update is one world tick
func runWindow(w *gameplay.World, bindings *input.Bindings) error {
	dt := w.Config().Tick()
	r := ebitenrenderer.New(bindings,
		func(intent input.Intent) state.Snapshot {
			w.Step(intent, dt)
			return w.Snapshot()
		},
		func(action input.Action, snap *state.Snapshot) {
			if action == input.ActionDumpMap {
				dumpMap(snap, w.Seed())
			}
		},
	)
	renderer.SetRenderer(r)
	renderer.Init()
	return r.Run(w.Snapshot())
}

// runTUI plays in the terminal. Time only moves on a key press: a move key
// walks one cell's worth of ticks, any other world key is a single tick.
func runTUI(w *gameplay.World, bindings *input.Bindings) error {
	if !terminal.IsTerminal() {
		return errors.New("stdin is not a terminal")
	}

	// The frame owns stdout while playing
	logFile, err := os.OpenFile(logFilename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logger.SetOutput(logFile)
	defer logger.SetOutput(os.Stderr)

	keys, err := input.NewKeyReader(os.Stdin)
	if err != nil {
		return err
	}
	defer keys.Close()

	renderer.SetRenderer(tui.New())
	renderer.Init()

	cfg := w.Config()
	dt := cfg.Tick()
	walkTicks := 1
	if cfg.PlayerSpeed > 0 {
		walkTicks = int(math.Ceil(cfg.CellSize / cfg.PlayerSpeed))
	}

	snap := w.Snapshot()
	for {
		renderer.RenderFrame(&snap)

		raw, err := keys.Next()
		if errors.Is(err, input.ErrInterrupted) {
			return nil
		}
		if err != nil {
			return err
		}

		ev := input.NewDebouncedInput(raw)
		action := bindings.Resolve(ev.Code)
		switch action {
		case input.ActionNone:
			continue
		case input.ActionQuit:
			return nil
		case input.ActionDumpMap:
			dumpMap(&snap, w.Seed())
			continue
		}

		intent := input.Combine(action)
		ticks := 1
		if intent.Move != input.MoveNone {
			ticks = walkTicks
		}
		for i := 0; i < ticks; i++ {
			report := w.Step(intent, dt)
			if report.Reset || report.State.IsTerminal() {
				break
			}
		}
		snap = w.Snapshot()
	}
}

func dumpMap(snap *state.Snapshot, seed int64) {
	log := logger.For("devtools")
	path, err := devtools.DumpMapToFile(snap, seed)
	if err != nil {
		log.WithError(err).Error("Map dump failed.")
		return
	}
	log.WithField("path", path).Info("Map dumped.")
}
