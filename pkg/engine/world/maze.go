package world

import (
	"time"

	"github.com/zyedidia/generic/mapset"
)

// CoordSet is a set of cell coordinates
type CoordSet = mapset.Set[Coord]

// Maze represents the game map with encapsulated cell storage.
// Cells are stored column-major: cells[x][y].
type Maze struct {
	cells [][]*Cell
	cols  int
	rows  int

	startCell *Cell
	exitCell  *Cell

	lastResetTick time.Duration
	resetCooldown time.Duration
	hasReset      bool
}

// NewMaze creates a maze with every wall standing
func NewMaze(cols, rows int) *Maze {
	m := &Maze{}
	m.Build(cols, rows)
	return m
}

// Build initializes the maze with the given dimensions
func (m *Maze) Build(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		panic("Maze dimensions must be positive")
	}

	m.cols = cols
	m.rows = rows
	m.cells = make([][]*Cell, cols)
	for x := 0; x < cols; x++ {
		m.cells[x] = make([]*Cell, rows)
		for y := 0; y < rows; y++ {
			m.cells[x][y] = NewCell(x, y)
		}
	}
	m.startCell = nil
	m.exitCell = nil
	m.hasReset = false
	m.lastResetTick = 0
}

// Cols returns the number of columns in the maze
func (m *Maze) Cols() int {
	return m.cols
}

// Rows returns the number of rows in the maze
func (m *Maze) Rows() int {
	return m.rows
}

// Size returns the total number of cells
func (m *Maze) Size() int {
	return m.cols * m.rows
}

// StartCell returns the starting cell
func (m *Maze) StartCell() *Cell {
	return m.startCell
}

// ExitCell returns the exit cell
func (m *Maze) ExitCell() *Cell {
	return m.exitCell
}

// IsValidPosition checks if a column/row position is within maze bounds
func (m *Maze) IsValidPosition(x, y int) bool {
	return x >= 0 && x < m.cols && y >= 0 && y < m.rows
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (m *Maze) GetCell(x, y int) *Cell {
	if m == nil || !m.IsValidPosition(x, y) {
		return nil
	}
	return m.cells[x][y]
}

// GetCellAt returns the cell at the given coordinate, or nil if out of bounds
func (m *Maze) GetCellAt(c Coord) *Cell {
	return m.GetCell(c.X, c.Y)
}

// GetCellRelative returns the cell adjacent to the given cell in the specified direction
func (m *Maze) GetCellRelative(c *Cell, dir Direction) *Cell {
	if c == nil || !dir.IsValid() {
		return nil
	}
	dx, dy := dir.Delta()
	return m.GetCell(c.X+dx, c.Y+dy)
}

// SetStartCellAt sets the starting cell by position. Returns false if out of bounds.
func (m *Maze) SetStartCellAt(x, y int) bool {
	cell := m.GetCell(x, y)
	if cell == nil {
		return false
	}
	m.startCell = cell
	return true
}

// SetExitCellAt sets the exit cell by position. Returns false if out of bounds.
func (m *Maze) SetExitCellAt(x, y int) bool {
	cell := m.GetCell(x, y)
	if cell == nil {
		return false
	}
	m.exitCell = cell
	return true
}

// ForEachCell iterates over all cells in the maze, column by column
func (m *Maze) ForEachCell(fn func(x, y int, cell *Cell)) {
	for x := 0; x < m.cols; x++ {
		for y := 0; y < m.rows; y++ {
			fn(x, y, m.cells[x][y])
		}
	}
}

// CellsOfKind returns every cell with the given kind
func (m *Maze) CellsOfKind(kind CellKind) []*Cell {
	var cells []*Cell
	m.ForEachCell(func(x, y int, cell *Cell) {
		if cell.Kind == kind {
			cells = append(cells, cell)
		}
	})
	return cells
}

// CanMove returns true if the wall on the given side of c is open and leads to
// a cell inside the maze. Entrance and exit carve-outs open onto nothing.
func (m *Maze) CanMove(c *Cell, dir Direction) bool {
	if c == nil || c.HasWall(dir) {
		return false
	}
	return m.GetCellRelative(c, dir) != nil
}

// OpenPassage removes the wall pair between c and its neighbour in dir.
// Returns false if there is no neighbour.
func (m *Maze) OpenPassage(c *Cell, dir Direction) bool {
	next := m.GetCellRelative(c, dir)
	if next == nil {
		return false
	}
	c.OpenWall(dir)
	next.OpenWall(dir.Opposite())
	return true
}

// SetResetCooldown sets the minimum world time between two reset-button firings
func (m *Maze) SetResetCooldown(d time.Duration) {
	m.resetCooldown = d
}

// ResetCooldown returns the reset-button cooldown
func (m *Maze) ResetCooldown() time.Duration {
	return m.resetCooldown
}

// LastResetTick returns the world time of the last reset and whether one has happened
func (m *Maze) LastResetTick() (time.Duration, bool) {
	return m.lastResetTick, m.hasReset
}

// ResetReady returns true if a reset button may fire at world time now
func (m *Maze) ResetReady(now time.Duration) bool {
	if !m.hasReset {
		return true
	}
	return now-m.lastResetTick > m.resetCooldown
}

// MarkReset records a reset at world time now
func (m *Maze) MarkReset(now time.Duration) {
	m.lastResetTick = now
	m.hasReset = true
}

// ReachableFrom collects every cell reachable from start by crossing open internal edges
func (m *Maze) ReachableFrom(start *Cell) CoordSet {
	visited := mapset.New[Coord]()
	if start == nil {
		return visited
	}

	queue := []*Cell{start}
	visited.Put(start.Coord())

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range AllDirections() {
			if !m.CanMove(current, dir) {
				continue
			}
			next := m.GetCellRelative(current, dir)
			if visited.Has(next.Coord()) {
				continue
			}
			visited.Put(next.Coord())
			queue = append(queue, next)
		}
	}

	return visited
}

// Connected returns true if every cell is reachable from the start cell
func (m *Maze) Connected() bool {
	return m.ReachableFrom(m.startCell).Size() == m.Size()
}

// OpenEdgeCount counts open internal edges, each edge once. A spanning tree has Size()-1.
func (m *Maze) OpenEdgeCount() int {
	n := 0
	m.ForEachCell(func(x, y int, cell *Cell) {
		// Right and Bottom cover every internal edge exactly once
		if m.CanMove(cell, Right) {
			n++
		}
		if m.CanMove(cell, Bottom) {
			n++
		}
	})
	return n
}

// Validate checks the maze for common issues and returns an error description or empty string if valid
func (m *Maze) Validate() string {
	if m.rows <= 0 || m.cols <= 0 {
		return "Maze has invalid dimensions"
	}

	if m.startCell == nil {
		return "Maze has no start cell"
	}

	if m.exitCell == nil {
		return "Maze has no exit cell"
	}

	var asymmetric bool
	m.ForEachCell(func(x, y int, cell *Cell) {
		for _, dir := range AllDirections() {
			next := m.GetCellRelative(cell, dir)
			if next != nil && next.HasWall(dir.Opposite()) != cell.HasWall(dir) {
				asymmetric = true
			}
		}
	})
	if asymmetric {
		return "Maze has a one-sided wall"
	}

	if !m.Connected() {
		return "Maze is not connected"
	}

	return ""
}
