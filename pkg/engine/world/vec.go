package world

import "math"

// Vec2 is a 2D vector in cell or pixel units
type Vec2 struct {
	X, Y float64
}

// Down is the default facing
var Down = Vec2{X: 0, Y: 1}

// Len returns the vector's length
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalized returns the unit vector, or zero for a zero vector
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Scaled multiplies both components by s
func (v Vec2) Scaled(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Offset returns the vector from c to o in cell units
func (c Coord) Offset(o Coord) Vec2 {
	return Vec2{X: float64(o.X - c.X), Y: float64(o.Y - c.Y)}
}
