package world

import "math"

// Rect is an axis-aligned rectangle in pixel space
type Rect struct {
	X, Y, W, H float64
}

// Center returns the centre point of the rectangle
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Moved returns a copy displaced by (dx, dy)
func (r Rect) Moved(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// CenteredIn returns a size×size rectangle centred on cell c
func CenteredIn(c Coord, cellSize, size float64) Rect {
	offset := (cellSize - size) / 2
	return Rect{
		X: float64(c.X)*cellSize + offset,
		Y: float64(c.Y)*cellSize + offset,
		W: size,
		H: size,
	}
}

// PointToCell maps a pixel point to the cell containing it. The cell may be outside the maze.
func PointToCell(px, py, cellSize float64) Coord {
	return Coord{
		X: int(math.Floor(px / cellSize)),
		Y: int(math.Floor(py / cellSize)),
	}
}
