package generator

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"mazeworld/pkg/engine/world"
	"mazeworld/pkg/logger"
)

// PrimGenerator grows a random spanning tree one frontier edge at a time
type PrimGenerator struct{}

// Name returns the name of this generator
func (g *PrimGenerator) Name() string {
	return "Randomized Prim"
}

// frontierEdge is an edge from a visited cell to a possibly unvisited neighbour.
// Cells are referenced by index (x*rows + y), never by pointer.
type frontierEdge struct {
	from int
	to   int
	dir  world.Direction
}

// frontier is an arena of edges with O(1) swap-remove
type frontier struct {
	edges []frontierEdge
}

func (f *frontier) push(e frontierEdge) {
	f.edges = append(f.edges, e)
}

func (f *frontier) len() int {
	return len(f.edges)
}

// take removes and returns the edge at index i by swapping the last edge into its slot
func (f *frontier) take(i int) frontierEdge {
	last := len(f.edges) - 1
	e := f.edges[i]
	f.edges[i] = f.edges[last]
	f.edges = f.edges[:last]
	return e
}

// Generate creates a new maze. The start cell is (0,0) unless opts asks for a random corner.
func (g *PrimGenerator) Generate(cols, rows int, rng *rand.Rand, opts Options) *world.Maze {
	m := world.NewMaze(cols, rows)

	start := world.Coord{X: 0, Y: 0}
	if opts.RandomStartCorner {
		corners := []world.Coord{
			{X: 0, Y: 0},
			{X: cols - 1, Y: 0},
			{X: cols - 1, Y: rows - 1},
			{X: 0, Y: rows - 1},
		}
		start = corners[rng.Intn(len(corners))]
	}
	m.SetStartCellAt(start.X, start.Y)
	m.SetExitCellAt(cols-1-start.X, rows-1-start.Y)

	g.grow(m, rng)

	if err := m.Validate(); err != "" {
		panic("Generated invalid maze: " + err)
	}

	return m
}

// Regenerate reruns the growth in place over an existing maze
func (g *PrimGenerator) Regenerate(m *world.Maze, rng *rand.Rand) {
	g.grow(m, rng)
}

func (g *PrimGenerator) grow(m *world.Maze, rng *rand.Rand) {
	cols, rows := m.Cols(), m.Rows()
	index := func(c *world.Cell) int { return c.X*rows + c.Y }
	byIndex := func(i int) *world.Cell { return m.GetCell(i/rows, i%rows) }

	m.ForEachCell(func(x, y int, cell *world.Cell) {
		cell.CloseAllWalls()
		cell.Visited = false
	})

	f := &frontier{edges: make([]frontierEdge, 0, 4*cols*rows)}
	extend := func(c *world.Cell) {
		for _, dir := range world.AllDirections() {
			next := m.GetCellRelative(c, dir)
			if next != nil && !next.Visited {
				f.push(frontierEdge{from: index(c), to: index(next), dir: dir})
			}
		}
	}

	root := m.GetCell(rng.Intn(cols), rng.Intn(rows))
	root.Visited = true
	visited := 1
	extend(root)

	for f.len() > 0 {
		e := f.take(rng.Intn(f.len()))
		next := byIndex(e.to)
		if next.Visited {
			continue
		}
		m.OpenPassage(byIndex(e.from), e.dir)
		next.Visited = true
		visited++
		extend(next)
	}

	carveOpening(m, m.StartCell(), []world.Direction{world.Left, world.Top, world.Right, world.Bottom})
	carveOpening(m, m.ExitCell(), []world.Direction{world.Right, world.Bottom, world.Left, world.Top})

	m.ForEachCell(func(x, y int, cell *world.Cell) {
		cell.Visited = false
	})

	logger.For("generator").WithFields(logrus.Fields{
		"cols":    cols,
		"rows":    rows,
		"root":    root.Coord(),
		"visited": visited,
	}).Debug("Maze walls grown.")
}

// carveOpening opens the first wall of c, in preference order, that faces outside the maze
func carveOpening(m *world.Maze, c *world.Cell, preference []world.Direction) {
	if c == nil {
		return
	}
	for _, dir := range preference {
		if m.GetCellRelative(c, dir) == nil {
			c.OpenWall(dir)
			return
		}
	}
}
