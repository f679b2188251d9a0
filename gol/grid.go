package gol

import (
	"math/rand"

	"uk.ac.bris.cs/lifeworkers/util"
)

// Grid is a double-buffered square world with a one cell frozen border.
// Only interior cells [1, size-2] take part in the simulation; the border is
// always dead.
type Grid struct {
	worldSize int
	size      int
	buffers   [2][][]bool
	current   int // Index of the buffer holding the current generation
}

// Make a square matrix whose rows share one contiguous backing slice
func makeCells(size int) [][]bool {
	cells := make([][]bool, size)
	cell_data := make([]bool, size*size)
	for i := 0; i != size; i++ {
		cells[i] = cell_data[0:size:size]
		cell_data = cell_data[size:]
	}
	return cells
}

// NewGrid allocates both buffers for a world of worldSize×worldSize interior
// cells. Negative sizes are treated as an empty world.
func NewGrid(worldSize int) *Grid {
	if worldSize < 0 {
		worldSize = 0
	}
	size := worldSize + 2
	return &Grid{
		worldSize: worldSize,
		size:      size,
		buffers:   [2][][]bool{makeCells(size), makeCells(size)},
	}
}

// SeedRandom fills every interior cell of the current buffer with a uniform
// random boolean.
func (g *Grid) SeedRandom(rng *rand.Rand) {
	cells := g.Current()
	for r := 1; r <= g.worldSize; r++ {
		for c := 1; c <= g.worldSize; c++ {
			cells[r][c] = rng.Intn(2) == 1
		}
	}
}

// Swap exchanges the current and next buffers without copying any cell.
func (g *Grid) Swap() {
	g.current ^= 1
}

// CellAt reports the state of (r, c) in the current buffer.
func (g *Grid) CellAt(r, c int) bool {
	return g.buffers[g.current][r][c]
}

// Set changes an interior cell of the current buffer. Border coordinates are
// ignored.
func (g *Grid) Set(r, c int, alive bool) {
	if r < 1 || c < 1 || r > g.worldSize || c > g.worldSize {
		return
	}
	g.buffers[g.current][r][c] = alive
}

// Size is the side length including the border.
func (g *Grid) Size() int {
	return g.size
}

// WorldSize is the side length of the interior.
func (g *Grid) WorldSize() int {
	return g.worldSize
}

// Current returns the buffer holding the current generation. Callers must
// treat it as read-only while a generation is being computed.
func (g *Grid) Current() [][]bool {
	return g.buffers[g.current]
}

// Next returns the buffer the running generation writes into.
func (g *Grid) Next() [][]bool {
	return g.buffers[g.current^1]
}

// AliveCount counts the live cells of the current generation.
func (g *Grid) AliveCount() int {
	count := 0
	for _, row := range g.Current() {
		for _, alive := range row {
			if alive {
				count++
			}
		}
	}
	return count
}

// AliveCells lists the live cells of the current generation in row-major
// order, using grid coordinates (the border is row/column 0).
func (g *Grid) AliveCells() []util.Cell {
	cells := make([]util.Cell, 0, g.AliveCount())
	for y, row := range g.Current() {
		for x, alive := range row {
			if alive {
				cells = append(cells, util.Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// Equal compares the current generations of two grids. A nil other is never
// equal.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	a, b := g.Current(), other.Current()
	for r := range a {
		for c := range a[r] {
			if a[r][c] != b[r][c] {
				return false
			}
		}
	}
	return true
}

// Clone copies the current generation into a fresh grid.
func (g *Grid) Clone() *Grid {
	clone := NewGrid(g.worldSize)
	dst := clone.Current()
	for r, row := range g.Current() {
		copy(dst[r], row)
	}
	return clone
}
