package gol

import (
	"fmt"
	"math/rand"
	"testing"
)

func TestNewGrid(t *testing.T) {
	tests := []struct {
		worldSize, wantWorld, wantSize int
	}{
		{worldSize: 1, wantWorld: 1, wantSize: 3},
		{worldSize: 16, wantWorld: 16, wantSize: 18},
		{worldSize: 0, wantWorld: 0, wantSize: 2},
		{worldSize: -4, wantWorld: 0, wantSize: 2},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%d", test.worldSize), func(t *testing.T) {
			g := NewGrid(test.worldSize)
			if g.WorldSize() != test.wantWorld || g.Size() != test.wantSize {
				t.Fatalf("NewGrid(%d): world %d size %d, want %d %d",
					test.worldSize, g.WorldSize(), g.Size(), test.wantWorld, test.wantSize)
			}
			for _, buffer := range [][][]bool{g.Current(), g.Next()} {
				if len(buffer) != test.wantSize {
					t.Fatalf("buffer has %d rows, want %d", len(buffer), test.wantSize)
				}
				for _, row := range buffer {
					if len(row) != test.wantSize || cap(row) != test.wantSize {
						t.Fatalf("row len %d cap %d, want %d", len(row), cap(row), test.wantSize)
					}
				}
			}
		})
	}
}

func assertBorderDead(t *testing.T, g *Grid) {
	t.Helper()
	last := g.Size() - 1
	for i := 0; i <= last; i++ {
		for _, cell := range [][2]int{{0, i}, {last, i}, {i, 0}, {i, last}} {
			if g.CellAt(cell[0], cell[1]) {
				t.Fatalf("border cell (%d, %d) is alive", cell[0], cell[1])
			}
		}
	}
}

func TestSeedRandomKeepsBorderDead(t *testing.T) {
	for _, worldSize := range []int{1, 2, 7, 64} {
		for seed := int64(0); seed != 5; seed++ {
			g := NewGrid(worldSize)
			g.SeedRandom(rand.New(rand.NewSource(seed)))
			assertBorderDead(t, g)
		}
	}
}

func TestSeedRandomFillsInterior(t *testing.T) {
	g := NewGrid(64)
	g.SeedRandom(rand.New(rand.NewSource(1)))
	alive := g.AliveCount()
	// 4096 fair coin flips land far from both extremes
	if alive < 1500 || alive > 2600 {
		t.Errorf("%d of 4096 interior cells alive after seeding", alive)
	}
	other := NewGrid(64)
	other.SeedRandom(rand.New(rand.NewSource(1)))
	if !g.Equal(other) {
		t.Error("same seed produced different grids")
	}
}

func TestSwapAliasesBuffers(t *testing.T) {
	g := NewGrid(4)
	current, next := g.Current(), g.Next()
	g.Swap()
	if &g.Current()[0][0] != &next[0][0] {
		t.Error("current after swap is not the previous next buffer")
	}
	if &g.Next()[0][0] != &current[0][0] {
		t.Error("next after swap is not the previous current buffer")
	}
	g.Swap()
	if &g.Current()[0][0] != &current[0][0] {
		t.Error("two swaps did not restore the buffers")
	}
}

func TestSetIgnoresBorder(t *testing.T) {
	g := NewGrid(3)
	for _, cell := range [][2]int{{0, 0}, {0, 2}, {4, 4}, {2, 4}, {-1, 2}, {2, 5}} {
		g.Set(cell[0], cell[1], true)
	}
	if g.AliveCount() != 0 {
		t.Fatalf("%d cells alive after setting border cells", g.AliveCount())
	}
	g.Set(1, 3, true)
	if !g.CellAt(1, 3) {
		t.Error("interior cell (1, 3) not set")
	}
}

func TestAliveCells(t *testing.T) {
	g := NewGrid(3)
	g.Set(3, 1, true)
	g.Set(1, 2, true)
	cells := g.AliveCells()
	if len(cells) != 2 {
		t.Fatalf("got %d alive cells, want 2", len(cells))
	}
	if cells[0].X != 2 || cells[0].Y != 1 || cells[1].X != 1 || cells[1].Y != 3 {
		t.Errorf("alive cells %v not in row-major order", cells)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid(5)
	g.Set(2, 2, true)
	clone := g.Clone()
	if !clone.Equal(g) {
		t.Fatal("clone differs from original")
	}
	clone.Set(3, 3, true)
	if g.CellAt(3, 3) {
		t.Error("changing the clone changed the original")
	}
	if clone.Equal(g) {
		t.Error("Equal ignored a differing cell")
	}
	if g.Equal(NewGrid(6)) {
		t.Error("grids of different sizes compare equal")
	}
	if g.Equal(nil) {
		t.Error("grid compares equal to nil")
	}
}
