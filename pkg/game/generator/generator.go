// Package generator builds the wall topology of a maze.
package generator

import (
	"math/rand"

	"mazeworld/pkg/engine/world"
)

// MazeGenerator is an interface for maze generation algorithms
type MazeGenerator interface {
	Generate(cols, rows int, rng *rand.Rand, opts Options) *world.Maze
	Regenerate(m *world.Maze, rng *rand.Rand)
	Name() string
}

// Options tweaks how start and exit cells are designated
type Options struct {
	// RandomStartCorner places the start in a pseudo-random corner instead of (0,0).
	// The exit always sits in the opposite corner.
	RandomStartCorner bool
}

// Available generators
var (
	Prim = &PrimGenerator{}
)

// DefaultGenerator is the default maze generator
var DefaultGenerator MazeGenerator = Prim

// Generate builds a fully connected maze with the default generator
func Generate(cols, rows int, rng *rand.Rand) *world.Maze {
	return DefaultGenerator.Generate(cols, rows, rng, Options{})
}

// RegenerateWalls replaces every wall of m in place with the default generator.
// Kinds, teleporter links and start/exit identities are left alone; Triggered flags are the caller's business.
func RegenerateWalls(m *world.Maze, rng *rand.Rand) {
	DefaultGenerator.Regenerate(m, rng)
}
