package effects

import (
	"testing"
	"time"

	"mazeworld/pkg/engine/world"
)

func specialMaze(t *testing.T) *world.Maze {
	t.Helper()
	m := world.NewMaze(4, 2)
	m.GetCell(1, 0).Kind = world.Trap
	a, b := m.GetCell(2, 0), m.GetCell(0, 1)
	a.Kind, b.Kind = world.Teleporter, world.Teleporter
	a.LinkTo(b)
	m.GetCell(3, 0).Kind = world.Button
	m.GetCell(1, 1).Kind = world.Button
	m.GetCell(3, 1).Kind = world.Exit
	m.SetResetCooldown(5 * time.Second)
	return m
}

func TestCheck_NormalAndOutside(t *testing.T) {
	m := specialMaze(t)
	if _, ok := Check(world.Coord{X: 0, Y: 0}, m, 0); ok {
		t.Error("normal cell fired")
	}
	if _, ok := Check(world.Coord{X: 9, Y: 9}, m, 0); ok {
		t.Error("out-of-bounds position fired")
	}
}

func TestCheck_TrapFiresOnce(t *testing.T) {
	m := specialMaze(t)
	pos := world.Coord{X: 1, Y: 0}
	e, ok := Check(pos, m, 0)
	if !ok || e.Kind != Trap {
		t.Fatalf("first check = %v, %v; want trap", e, ok)
	}
	if !m.GetCellAt(pos).Triggered {
		t.Error("trap not latched")
	}
	for i := 1; i < 5; i++ {
		if _, ok := Check(pos, m, time.Duration(i)*time.Second); ok {
			t.Fatalf("trap fired again on check %d", i)
		}
	}
}

func TestCheck_TeleporterLatchesBothEnds(t *testing.T) {
	m := specialMaze(t)
	from, to := world.Coord{X: 2, Y: 0}, world.Coord{X: 0, Y: 1}
	e, ok := Check(from, m, 0)
	if !ok || e.Kind != Teleport || e.Target != to {
		t.Fatalf("Check = %+v, %v; want teleport to %v", e, ok, to)
	}
	if !m.GetCellAt(from).Triggered || !m.GetCellAt(to).Triggered {
		t.Error("both teleporter ends should be latched")
	}
	if _, ok := Check(to, m, 0); ok {
		t.Error("arriving at the destination bounced the player back")
	}
}

func TestCheck_ButtonCooldownAndOneShot(t *testing.T) {
	m := specialMaze(t)
	first, second := world.Coord{X: 3, Y: 0}, world.Coord{X: 1, Y: 1}

	e, ok := Check(first, m, 100*time.Millisecond)
	if !ok || e.Kind != Reset {
		t.Fatalf("first button: %+v, %v; want reset", e, ok)
	}
	if last, has := m.LastResetTick(); !has || last != 100*time.Millisecond {
		t.Errorf("LastResetTick = %v, %v; want 100ms, true", last, has)
	}

	// A second button inside the cooldown stays quiet and unlatched
	if _, ok := Check(second, m, 5100*time.Millisecond); ok {
		t.Error("second button fired exactly at the cooldown boundary")
	}
	if m.GetCellAt(second).Triggered {
		t.Error("a button that did not fire was latched")
	}

	if _, ok := Check(second, m, 5101*time.Millisecond); !ok {
		t.Error("second button did not fire after the cooldown")
	}

	// The first button stays latched regardless of time
	if _, ok := Check(first, m, time.Hour); ok {
		t.Error("a latched button fired again")
	}
}

func TestCheck_ExitFiresEveryTick(t *testing.T) {
	m := specialMaze(t)
	for i := 0; i < 3; i++ {
		e, ok := Check(world.Coord{X: 3, Y: 1}, m, time.Duration(i))
		if !ok || e.Kind != Exit {
			t.Fatalf("tick %d: %+v, %v; want exit", i, e, ok)
		}
	}
}

func TestClearLatches_KeepsButtons(t *testing.T) {
	m := specialMaze(t)
	Check(world.Coord{X: 1, Y: 0}, m, 0)
	Check(world.Coord{X: 2, Y: 0}, m, 0)
	Check(world.Coord{X: 3, Y: 0}, m, 0)

	if got := ClearLatches(m); got != 3 {
		t.Errorf("ClearLatches cleared %d cells, want 3 (trap and both teleporter ends)", got)
	}
	if !m.GetCell(3, 0).Triggered {
		t.Error("button latch was cleared")
	}
	if _, ok := Check(world.Coord{X: 1, Y: 0}, m, time.Second); !ok {
		t.Error("trap did not re-arm after ClearLatches")
	}
}
