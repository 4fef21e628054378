package placement

import (
	"math/rand"
	"testing"

	"mazeworld/pkg/engine/world"
	"mazeworld/pkg/game/config"
	"mazeworld/pkg/game/generator"
)

func placedMaze(t *testing.T, cfg config.Config, seed int64) (*world.Maze, Result) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := generator.Generate(cfg.Cols, cfg.Rows, rng)
	return m, Place(m, cfg, rng)
}

func countKinds(m *world.Maze) map[world.CellKind]int {
	counts := make(map[world.CellKind]int)
	m.ForEachCell(func(x, y int, cell *world.Cell) {
		counts[cell.Kind]++
	})
	return counts
}

func TestPlace_CountsAndExit(t *testing.T) {
	cfg := config.Default()
	cfg.Cols, cfg.Rows = 10, 10
	cfg.TrapDensity = 0.1
	cfg.TeleporterPairCount = 3
	cfg.ButtonCount = 2

	m, res := placedMaze(t, cfg, 1)
	counts := countKinds(m)
	if counts[world.Trap] != 10 || res.TrapsPlaced != 10 {
		t.Errorf("traps = %d (result %d), want 10", counts[world.Trap], res.TrapsPlaced)
	}
	if counts[world.Teleporter] != 6 || res.PairsPlaced != 3 {
		t.Errorf("teleporter cells = %d (pairs %d), want 6 (3 pairs)", counts[world.Teleporter], res.PairsPlaced)
	}
	if counts[world.Button] != 2 {
		t.Errorf("buttons = %d, want 2", counts[world.Button])
	}
	if counts[world.Exit] != 1 || m.ExitCell().Kind != world.Exit {
		t.Errorf("exit count = %d, exit cell kind = %v; want exactly one at ExitCell", counts[world.Exit], m.ExitCell().Kind)
	}
	if m.StartCell().Kind != world.Normal {
		t.Errorf("start cell kind = %v, want normal", m.StartCell().Kind)
	}
	if res.Degraded() {
		t.Error("Degraded() = true with plenty of room")
	}
}

func TestPlace_TeleportersLinkSymmetrically(t *testing.T) {
	cfg := config.Default()
	cfg.TeleporterPairCount = 5
	for seed := int64(0); seed < 10; seed++ {
		m, _ := placedMaze(t, cfg, seed)
		m.ForEachCell(func(x, y int, cell *world.Cell) {
			if cell.Kind != world.Teleporter {
				if cell.Linked != nil {
					t.Errorf("seed %d: non-teleporter (%d,%d) has a link", seed, x, y)
				}
				return
			}
			if cell.Linked == nil {
				t.Fatalf("seed %d: teleporter (%d,%d) has no link", seed, x, y)
			}
			other := m.GetCellAt(*cell.Linked)
			if other == nil || other.Kind != world.Teleporter {
				t.Fatalf("seed %d: teleporter (%d,%d) links to non-teleporter %v", seed, x, y, cell.Linked)
			}
			if other == cell {
				t.Errorf("seed %d: teleporter (%d,%d) links to itself", seed, x, y)
			}
			if other.Linked == nil || *other.Linked != cell.Coord() {
				t.Errorf("seed %d: link (%d,%d) -> %v is not symmetric", seed, x, y, cell.Linked)
			}
		})
	}
}

func TestPlace_SoftCapWhenCellsRunOut(t *testing.T) {
	cfg := config.Default()
	cfg.Cols, cfg.Rows = 3, 3
	cfg.TrapDensity = 0.5 // 4 traps
	cfg.TeleporterPairCount = 2
	cfg.ButtonCount = 5

	m, res := placedMaze(t, cfg, 3)
	// 9 cells: start and exit excluded leaves 7 free
	if res.TrapsPlaced != 4 {
		t.Errorf("TrapsPlaced = %d, want 4", res.TrapsPlaced)
	}
	if res.PairsPlaced != 1 {
		t.Errorf("PairsPlaced = %d, want 1 (only 3 cells left for pairs)", res.PairsPlaced)
	}
	if res.ButtonsPlaced != 1 {
		t.Errorf("ButtonsPlaced = %d, want 1 (one cell left)", res.ButtonsPlaced)
	}
	if !res.Degraded() {
		t.Error("Degraded() = false, want true")
	}
	counts := countKinds(m)
	if counts[world.Normal] != 1 {
		t.Errorf("normal cells = %d, want 1 (only the start)", counts[world.Normal])
	}
}

func TestPlace_SingleCellMaze(t *testing.T) {
	cfg := config.Default()
	cfg.Cols, cfg.Rows = 1, 1
	cfg.TrapDensity = 1
	m, res := placedMaze(t, cfg, 1)
	if res.ExitPlaced {
		t.Error("ExitPlaced = true, but the only cell is the start")
	}
	if m.StartCell().Kind != world.Normal {
		t.Errorf("start kind = %v, want normal", m.StartCell().Kind)
	}
}

func TestPlace_MutuallyExclusiveRoles(t *testing.T) {
	cfg := config.Default()
	cfg.Cols, cfg.Rows = 8, 6
	cfg.TrapDensity = 0.3
	cfg.TeleporterPairCount = 6
	cfg.ButtonCount = 6
	for seed := int64(0); seed < 25; seed++ {
		m, res := placedMaze(t, cfg, seed)
		counts := countKinds(m)
		want := res.TrapsPlaced + 2*res.PairsPlaced + res.ButtonsPlaced + 1
		got := counts[world.Trap] + counts[world.Teleporter] + counts[world.Button] + counts[world.Exit]
		if got != want {
			t.Fatalf("seed %d: %d special cells, want %d (a cell got two roles)", seed, got, want)
		}
	}
}
