package devtools

import (
	"fmt"
	"io"
	"strings"

	"mazeworld/pkg/engine/world"
	"mazeworld/pkg/game/state"
)

// ListCells writes every cell whose kind is named in the comma separated list,
// e.g. "trap,exit". Unknown names are skipped and returned to the caller.
func ListCells(w io.Writer, s *state.Snapshot, names string) (unknown []string, err error) {
	kinds := map[world.CellKind]bool{}
	for _, name := range strings.Split(names, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		kind, ok := world.ParseCellKind(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		kinds[kind] = true
	}

	for _, c := range s.Cells {
		if !kinds[c.Kind] {
			continue
		}
		if _, err := fmt.Fprintf(w, "%d,%d %s triggered=%v\n", c.Coord.X, c.Coord.Y, c.Kind, c.Triggered); err != nil {
			return unknown, err
		}
	}
	return unknown, nil
}
