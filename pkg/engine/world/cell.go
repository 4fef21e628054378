// Package world provides the 2D maze primitives shared by the simulation and its renderers.
// Cells carry wall flags and a special-role kind; the Maze owns them exclusively.
package world

import "strings"

// CellKind is the special role of a cell
type CellKind int

const (
	Normal CellKind = iota
	Trap
	Teleporter
	Button
	Exit
)

var cellKindNames = map[CellKind]string{
	Normal:     "normal",
	Trap:       "trap",
	Teleporter: "teleporter",
	Button:     "button",
	Exit:       "exit",
}

// String returns the lowercase name of the kind
func (k CellKind) String() string {
	if name, ok := cellKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsLatching returns true for kinds whose effect is gated by the Triggered flag
func (k CellKind) IsLatching() bool {
	return k == Trap || k == Teleporter || k == Button
}

// ParseCellKind looks up a kind by name. The second result is false for unknown names.
func ParseCellKind(name string) (CellKind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for kind, n := range cellKindNames {
		if n == name {
			return kind, true
		}
	}
	return Normal, false
}

// Cell represents a single tile of the maze
type Cell struct {
	// Grid position
	X int
	Y int

	// Walls is indexed by Direction; true means the edge is impassable
	Walls [4]bool

	// Visited is only meaningful while a generator is running
	Visited bool

	Kind      CellKind
	Triggered bool

	// Linked is the partner cell of a teleporter; nil for every other kind
	Linked *Coord
}

// NewCell creates a new cell with all four walls standing
func NewCell(x, y int) *Cell {
	return &Cell{
		X:     x,
		Y:     y,
		Walls: [4]bool{true, true, true, true},
	}
}

// Coord returns the cell's position
func (c *Cell) Coord() Coord {
	return Coord{X: c.X, Y: c.Y}
}

// HasWall returns true if the wall on the given side is standing
func (c *Cell) HasWall(dir Direction) bool {
	if !dir.IsValid() {
		return true
	}
	return c.Walls[dir]
}

// OpenWall removes the wall on the given side
func (c *Cell) OpenWall(dir Direction) {
	if dir.IsValid() {
		c.Walls[dir] = false
	}
}

// CloseAllWalls restores all four walls
func (c *Cell) CloseAllWalls() {
	c.Walls = [4]bool{true, true, true, true}
}

// OpenWallCount returns how many sides are passable
func (c *Cell) OpenWallCount() int {
	n := 0
	for _, w := range c.Walls {
		if !w {
			n++
		}
	}
	return n
}

// IsSpecial returns true if the cell has any role other than Normal
func (c *Cell) IsSpecial() bool {
	return c.Kind != Normal
}

// LinkTo pairs this teleporter cell with another, symmetrically
func (c *Cell) LinkTo(other *Cell) {
	a := other.Coord()
	b := c.Coord()
	c.Linked = &a
	other.Linked = &b
}
