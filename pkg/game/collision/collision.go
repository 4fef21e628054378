// Package collision decides whether an entity may move to a proposed rectangle.
// It tests only the walls of the single cell holding the proposed centre.
package collision

import (
	"mazeworld/pkg/engine/world"
	"mazeworld/pkg/game/config"
)

// Geometry is the pixel layout collision works against
type Geometry struct {
	CellSize    float64
	TravelWidth float64
}

// GeometryFrom builds the collision geometry from the session config
func GeometryFrom(cfg config.Config) Geometry {
	return Geometry{CellSize: cfg.CellSize, TravelWidth: cfg.EntityTravelWidth}
}

// Margin is the distance an entity keeps from a standing wall
func (g Geometry) Margin() float64 {
	return (g.CellSize - g.TravelWidth) / 2
}

// CellAt returns the maze cell containing the pixel point, or false if it lies outside the maze
func CellAt(px, py float64, m *world.Maze, g Geometry) (*world.Cell, bool) {
	c := world.PointToCell(px, py, g.CellSize)
	cell := m.GetCellAt(c)
	return cell, cell != nil
}

// CellOf returns the cell containing the centre of r
func CellOf(r world.Rect, m *world.Maze, g Geometry) (*world.Cell, bool) {
	cx, cy := r.Center()
	return CellAt(cx, cy, m, g)
}

// TryMove reports whether an entity at current may move to proposed.
// The move is all or nothing: one failing edge check rejects the whole displacement.
// Steps must stay below half a cell so the centre never skips a cell.
func TryMove(current, proposed world.Rect, m *world.Maze, g Geometry) bool {
	cell, ok := CellOf(proposed, m, g)
	if !ok {
		return false
	}

	dx := proposed.X - current.X
	dy := proposed.Y - current.Y

	left := float64(cell.X) * g.CellSize
	top := float64(cell.Y) * g.CellSize
	right := left + g.CellSize
	bottom := top + g.CellSize
	margin := g.Margin()

	if dx < 0 && cell.HasWall(world.Left) && proposed.X < left+margin {
		return false
	}
	if dx > 0 && cell.HasWall(world.Right) && proposed.Right() > right-margin {
		return false
	}
	if dy < 0 && cell.HasWall(world.Top) && proposed.Y < top+margin {
		return false
	}
	if dy > 0 && cell.HasWall(world.Bottom) && proposed.Bottom() > bottom-margin {
		return false
	}

	// Entering a new cell goes through the wall that faces the one being left
	cx, cy := current.Center()
	from := world.PointToCell(cx, cy, g.CellSize)
	if cell.X > from.X && cell.HasWall(world.Left) {
		return false
	}
	if cell.X < from.X && cell.HasWall(world.Right) {
		return false
	}
	if cell.Y > from.Y && cell.HasWall(world.Top) {
		return false
	}
	if cell.Y < from.Y && cell.HasWall(world.Bottom) {
		return false
	}

	return true
}
