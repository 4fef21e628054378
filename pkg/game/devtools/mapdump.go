// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mazeworld/pkg/engine/world"
	"mazeworld/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// cellSymbol returns the single-character symbol for a cell (no player/adversary overlay).
// If revealedOnly is true, non-revealed cells return '#'; otherwise they show their kind.
func cellSymbol(c state.CellView, known map[world.Coord]bool, revealedOnly bool) rune {
	if revealedOnly && !known[c.Coord] {
		return '#'
	}
	switch c.Kind {
	case world.Trap:
		if c.Triggered {
			return 'x'
		}
		return '^'
	case world.Teleporter:
		if c.Triggered {
			return 't'
		}
		return 'T'
	case world.Button:
		if c.Triggered {
			return 'b'
		}
		return 'B'
	case world.Exit:
		return 'E'
	}
	return '.'
}

// writeMapGrid draws the maze with its walls, three characters and two lines per cell.
// Walls of unrevealed cells are hidden when revealedOnly is set.
func writeMapGrid(w io.Writer, s *state.Snapshot, revealedOnly bool) {
	known := s.DiscoveredSet()
	hidden := func(c state.CellView) bool { return revealedOnly && !known[c.Coord] }

	wallMark := func(c state.CellView, dir world.Direction, on, off string) string {
		if !hidden(c) && c.Walls[dir] {
			return on
		}
		return off
	}

	for y := 0; y < s.Rows; y++ {
		for x := 0; x < s.Cols; x++ {
			c, _ := s.Cell(x, y)
			fmt.Fprint(w, "+", wallMark(c, world.Top, "--", "  "))
		}
		fmt.Fprintln(w, "+")
		for x := 0; x < s.Cols; x++ {
			c, _ := s.Cell(x, y)
			sym := cellSymbol(c, known, revealedOnly)
			switch {
			case c.Coord == s.Player.Cell:
				sym = '@'
			case !hidden(c):
				if _, ok := s.AdversaryAt(c.Coord); ok {
					sym = '&'
				}
			}
			fmt.Fprintf(w, "%s%c ", wallMark(c, world.Left, "|", " "), sym)
		}
		last, _ := s.Cell(s.Cols-1, y)
		fmt.Fprintln(w, wallMark(last, world.Right, "|", " "))
	}
	for x := 0; x < s.Cols; x++ {
		c, _ := s.Cell(x, s.Rows-1)
		fmt.Fprint(w, "+", wallMark(c, world.Bottom, "--", "  "))
	}
	fmt.Fprintln(w, "+")
}

// WriteMapDump writes a full debug dump: metadata, legend, revealed-only map,
// fully-revealed map, special cells and adversaries.
// Format is human-readable (sections, key: value, consistent structure).
func WriteMapDump(w io.Writer, s *state.Snapshot, seed int64) error {
	if s.Cols == 0 || s.Rows == 0 {
		return fmt.Errorf("no maze")
	}
	bw := bufio.NewWriter(w)

	// --- Metadata ---
	fmt.Fprintln(bw, "=== MAP DUMP DEBUG (maze layout, special cells, adversaries) ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "session_id: %s\n", s.SessionID)
	fmt.Fprintf(bw, "seed: %d\n", seed)
	fmt.Fprintf(bw, "tick: %d\n", s.Tick)
	fmt.Fprintf(bw, "world_time: %s\n", s.Now)
	fmt.Fprintf(bw, "state: %s\n", s.State)
	fmt.Fprintf(bw, "level: %d\n", s.Progress.Level)
	fmt.Fprintf(bw, "score: %d\n", s.Progress.Score)
	fmt.Fprintf(bw, "grid_cols: %d\n", s.Cols)
	fmt.Fprintf(bw, "grid_rows: %d\n", s.Rows)
	fmt.Fprintln(bw, "coordinate_system: x,y (0-based, x=column, y=row, y grows downward)")
	fmt.Fprintf(bw, "player_cell: %d,%d\n", s.Player.Cell.X, s.Player.Cell.Y)
	fmt.Fprintf(bw, "player_health: %d/%d\n", s.Player.Health, s.Player.MaxHealth)
	fmt.Fprintf(bw, "light_on: %v\n", s.Player.LightOn)
	fmt.Fprintf(bw, "invulnerable: %v\n", s.Player.Invulnerable)
	fmt.Fprintf(bw, "battery: %.1f/%.1f\n", s.Player.Battery, s.Player.MaxBattery)
	fmt.Fprintf(bw, "start_cell: %d,%d\n", s.Start.X, s.Start.Y)
	fmt.Fprintf(bw, "exit_cell: %d,%d\n", s.Exit.X, s.Exit.Y)
	fmt.Fprintf(bw, "discovered_cells: %d\n", len(s.Discovered))
	fmt.Fprintln(bw, "")

	// --- Legend ---
	fmt.Fprintln(bw, "--- Legend (cell symbols) ---")
	fmt.Fprintln(bw, ". = floor  # = unrevealed  ^ = trap  x = sprung trap  T = teleporter  t = used teleporter  B = button  b = pressed button  E = exit  @ = player  & = adversary")
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Map (revealed cells only; unrevealed = #) ---")
	writeMapGrid(bw, s, true)
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Map (fully revealed; full layout) ---")
	writeMapGrid(bw, s, false)
	fmt.Fprintln(bw, "")

	// --- Special cells (column-major order, as stored) ---
	fmt.Fprintln(bw, "Special cells:")
	for _, c := range s.Cells {
		if c.Kind == world.Normal {
			continue
		}
		fmt.Fprintf(bw, "  x: %d y: %d kind: %s triggered: %v\n", c.Coord.X, c.Coord.Y, c.Kind, c.Triggered)
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "Adversaries:")
	if len(s.Adversaries) == 0 {
		fmt.Fprintln(bw, "  (none)")
	}
	for _, a := range s.Adversaries {
		fmt.Fprintf(bw, "  id: %d x: %d y: %d mode: %s visible: %v\n", a.ID, a.Pos.X, a.Pos.Y, a.Mode, a.Visible)
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "=== END MAP DUMP ===")
	return bw.Flush()
}

// DumpMapToFile writes WriteMapDump output to map.txt in the working directory
// and returns its absolute path.
func DumpMapToFile(s *state.Snapshot, seed int64) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMapDump(f, s, seed); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
