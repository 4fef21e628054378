package world

import (
	"github.com/zyedidia/generic/mapset"
)

// DefaultVisibleRadius is the default reveal radius (Chebyshev distance, a square)
const DefaultVisibleRadius = 3

// VisibilityTracker accumulates discovered cells. The set only grows until Reset.
type VisibilityTracker struct {
	discovered CoordSet
}

// NewVisibilityTracker creates an empty tracker
func NewVisibilityTracker() *VisibilityTracker {
	return &VisibilityTracker{discovered: mapset.New[Coord]()}
}

// Reveal marks every in-bounds cell within Chebyshev distance radius of center as discovered.
// Walls do not block revelation.
func (v *VisibilityTracker) Reveal(center Coord, radius, cols, rows int) {
	if radius < 0 {
		return
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			x := center.X + dx
			y := center.Y + dy
			if x < 0 || x >= cols || y < 0 || y >= rows {
				continue
			}
			v.discovered.Put(Coord{X: x, Y: y})
		}
	}
}

// RevealInMaze reveals around center using the maze bounds
func (v *VisibilityTracker) RevealInMaze(m *Maze, center Coord, radius int) {
	v.Reveal(center, radius, m.Cols(), m.Rows())
}

// IsDiscovered returns true if the cell has been revealed
func (v *VisibilityTracker) IsDiscovered(c Coord) bool {
	return v.discovered.Has(c)
}

// Len returns the number of discovered cells
func (v *VisibilityTracker) Len() int {
	return v.discovered.Size()
}

// Each calls fn for every discovered cell, in no particular order
func (v *VisibilityTracker) Each(fn func(c Coord)) {
	v.discovered.Each(fn)
}

// Reset forgets every discovered cell. Only a full world reset calls this.
func (v *VisibilityTracker) Reset() {
	v.discovered = mapset.New[Coord]()
}
