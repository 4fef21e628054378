package collision

import (
	"math/rand"
	"testing"

	"mazeworld/pkg/engine/world"
	"mazeworld/pkg/game/generator"
)

var testGeom = Geometry{CellSize: 20, TravelWidth: 12}

// corridor builds a 3x1 maze with the middle cell open on both sides
func corridor() *world.Maze {
	m := world.NewMaze(3, 1)
	m.OpenPassage(m.GetCell(0, 0), world.Right)
	m.OpenPassage(m.GetCell(1, 0), world.Right)
	return m
}

func TestMargin(t *testing.T) {
	if got := testGeom.Margin(); got != 4 {
		t.Errorf("Margin() = %v, want 4", got)
	}
}

func TestCellAt(t *testing.T) {
	m := corridor()
	tests := []struct {
		name   string
		px, py float64
		want   world.Coord
		ok     bool
	}{
		{"first cell", 5, 5, world.Coord{X: 0, Y: 0}, true},
		{"middle cell", 30, 19.9, world.Coord{X: 1, Y: 0}, true},
		{"boundary belongs to next cell", 40, 10, world.Coord{X: 2, Y: 0}, true},
		{"left of grid", -0.1, 10, world.Coord{}, false},
		{"below grid", 10, 20, world.Coord{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell, ok := CellAt(tt.px, tt.py, m, testGeom)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && cell.Coord() != tt.want {
				t.Errorf("cell = %v, want %v", cell.Coord(), tt.want)
			}
		})
	}
}

func TestTryMove_WallBlocksOnlyPastMargin(t *testing.T) {
	m := world.NewMaze(2, 2) // all walls standing
	cur := world.CenteredIn(world.Coord{X: 0, Y: 0}, testGeom.CellSize, testGeom.TravelWidth)

	// Centred: X = 4, right edge = 16 = cell right - margin
	if TryMove(cur, cur.Moved(1, 0), m, testGeom) {
		t.Error("moving right into a standing wall margin was allowed")
	}
	if TryMove(cur, cur.Moved(0, -0.5), m, testGeom) {
		t.Error("moving up into a standing wall margin was allowed")
	}

	// Move inward from the margin is fine
	inside := cur.Moved(-2, 0)
	if !TryMove(inside, cur, m, testGeom) {
		t.Error("moving back to the centre was rejected")
	}
	if !TryMove(inside, inside.Moved(1, 0), m, testGeom) {
		t.Error("moving right while still inside the margin was rejected")
	}
}

func TestTryMove_OpenWallLetsEntityCross(t *testing.T) {
	m := corridor()
	cur := world.CenteredIn(world.Coord{X: 0, Y: 0}, testGeom.CellSize, testGeom.TravelWidth)
	pos := cur
	for i := 0; i < 10; i++ {
		next := pos.Moved(2, 0)
		if !TryMove(pos, next, m, testGeom) {
			t.Fatalf("step %d from x=%v rejected in an open corridor", i, pos.X)
		}
		pos = next
	}
	cell, _ := CellOf(pos, m, testGeom)
	if cell.X != 1 {
		t.Errorf("after 20px right, centre is in column %d, want 1", cell.X)
	}
}

func TestTryMove_NoSliding(t *testing.T) {
	m := corridor()
	cur := world.CenteredIn(world.Coord{X: 1, Y: 0}, testGeom.CellSize, testGeom.TravelWidth)
	// Right is open but bottom is a standing wall: the diagonal fails as a whole
	if TryMove(cur, cur.Moved(1, 1), m, testGeom) {
		t.Error("diagonal move into a standing bottom wall was allowed")
	}
	if !TryMove(cur, cur.Moved(1, 0), m, testGeom) {
		t.Error("horizontal part alone should be allowed")
	}
}

func TestTryMove_DriftedCentreCannotSideStepThroughWall(t *testing.T) {
	// (0,0) opens right and down; (0,1) and (1,1) are walled apart
	m := world.NewMaze(2, 2)
	m.OpenPassage(m.GetCell(0, 0), world.Right)
	m.OpenPassage(m.GetCell(0, 0), world.Bottom)

	pos := world.CenteredIn(world.Coord{X: 0, Y: 0}, testGeom.CellSize, testGeom.TravelWidth)
	walk := func(dx, dy float64, n int) {
		t.Helper()
		for i := 0; i < n; i++ {
			next := pos.Moved(dx, dy)
			if !TryMove(pos, next, m, testGeom) {
				t.Fatalf("step (%v, %v) from %+v rejected", dx, dy, pos)
			}
			pos = next
		}
	}
	walk(4, 0, 2) // centre drifts to x=18 through the open right wall
	walk(0, 4, 5) // down through the open bottom into (0,1)

	cell, _ := CellOf(pos, m, testGeom)
	if cell.Coord() != (world.Coord{X: 0, Y: 1}) {
		t.Fatalf("setup: centre in %v, want (0,1)", cell.Coord())
	}
	if TryMove(pos, pos.Moved(4, 0), m, testGeom) {
		t.Error("stepped from (0,1) into (1,1) through a standing wall")
	}
}

func TestTryMove_OutsideGridRejected(t *testing.T) {
	m := corridor()
	// The entrance carve-out opens the left wall of the start, but the grid still ends there
	m.GetCell(0, 0).OpenWall(world.Left)
	cur := world.CenteredIn(world.Coord{X: 0, Y: 0}, testGeom.CellSize, testGeom.TravelWidth)
	pos := cur
	for i := 0; i < 20; i++ {
		next := pos.Moved(-1, 0)
		if !TryMove(pos, next, m, testGeom) {
			break
		}
		pos = next
	}
	cx, _ := pos.Center()
	if cx < 0 {
		t.Errorf("centre left the grid: x = %v", cx)
	}
}

func TestTryMove_NeverCrossesStandingWall(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	m := generator.Generate(8, 8, rng)
	moves := [][2]float64{{2, 0}, {-2, 0}, {0, 2}, {0, -2}, {2, 2}, {-2, 2}, {2, -2}, {-2, -2}}

	pos := world.CenteredIn(world.Coord{X: 0, Y: 0}, testGeom.CellSize, testGeom.TravelWidth)
	cell, _ := CellOf(pos, m, testGeom)
	for i := 0; i < 5000; i++ {
		d := moves[rng.Intn(len(moves))]
		next := pos.Moved(d[0], d[1])
		if !TryMove(pos, next, m, testGeom) {
			continue
		}
		nextCell, ok := CellOf(next, m, testGeom)
		if !ok {
			t.Fatalf("accepted move left the grid at %v", next)
		}
		if nextCell != cell {
			// Crossing a cell boundary requires an open wall between the two cells
			dx, dy := nextCell.X-cell.X, nextCell.Y-cell.Y
			if dx != 0 && dy != 0 {
				t.Fatalf("diagonal jump from %v to %v", cell.Coord(), nextCell.Coord())
			}
			var dir world.Direction
			switch {
			case dx == 1:
				dir = world.Right
			case dx == -1:
				dir = world.Left
			case dy == 1:
				dir = world.Bottom
			default:
				dir = world.Top
			}
			if !m.CanMove(cell, dir) {
				t.Fatalf("crossed a standing wall from %v going %v", cell.Coord(), dir)
			}
		}
		pos, cell = next, nextCell
	}
}
