package board

import (
	"errors"
	"testing"
)

func mustNew(t *testing.T, size int) *Board {
	t.Helper()
	b, err := New(size)
	if err != nil {
		t.Fatalf("New(%d) returned error: %v", size, err)
	}
	return b
}

func TestNew_SolvedLayout(t *testing.T) {
	b := mustNew(t, 3)

	want := []Tile{0, 1, 2, 3, 4, 5, 6, 7, Runner}
	got := b.Cells()
	if len(got) != len(want) {
		t.Fatalf("New(3) has %d cells, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d = %v, want %v", i, got[i], want[i])
		}
	}
	if b.RunnerIndex() != 8 {
		t.Errorf("RunnerIndex() = %d, want 8", b.RunnerIndex())
	}
	if !b.IsSolved() {
		t.Error("IsSolved() = false on a fresh board, want true")
	}
}

func TestNew_RejectsInvalidSize(t *testing.T) {
	for _, size := range []int{1, 0, -3} {
		if _, err := New(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("New(%d) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestSwap_UpdatesRunnerIndex(t *testing.T) {
	b := mustNew(t, 2)

	if err := b.Swap(0, 3); err != nil {
		t.Fatalf("Swap(0, 3) returned error: %v", err)
	}
	if b.RunnerIndex() != 0 {
		t.Errorf("RunnerIndex() = %d after swapping runner to 0, want 0", b.RunnerIndex())
	}
	if b.TileAt(3) != 0 {
		t.Errorf("TileAt(3) = %v, want tile 0", b.TileAt(3))
	}
}

func TestSwap_InvalidIndex(t *testing.T) {
	b := mustNew(t, 2)

	tests := []struct {
		name string
		a, b int
	}{
		{"negative first", -1, 0},
		{"first past end", 4, 0},
		{"negative second", 0, -2},
		{"second past end", 0, 99},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := b.Swap(tc.a, tc.b); !errors.Is(err, ErrInvalidIndex) {
				t.Errorf("Swap(%d, %d) error = %v, want ErrInvalidIndex", tc.a, tc.b, err)
			}
		})
	}

	// A failed swap must leave the board untouched.
	if !b.IsSolved() {
		t.Error("board modified by rejected swaps")
	}
}

func TestCells_ReturnsCopy(t *testing.T) {
	b := mustNew(t, 2)
	cells := b.Cells()
	cells[0] = 99
	if b.TileAt(0) != 0 {
		t.Error("mutating the Cells() slice changed the board")
	}
}

// assertPermutation verifies the board still holds each tile identity exactly
// once plus a single runner, and that the runner cache is consistent.
func assertPermutation(t *testing.T, b *Board) {
	t.Helper()

	seen := make(map[Tile]int)
	for _, tile := range b.Cells() {
		seen[tile]++
	}

	if seen[Runner] != 1 {
		t.Fatalf("board holds %d runners, want exactly 1", seen[Runner])
	}
	for i := 0; i < b.TotalCells()-1; i++ {
		if seen[Tile(i)] != 1 {
			t.Errorf("tile %d appears %d times, want exactly once", i, seen[Tile(i)])
		}
	}
	if !b.TileAt(b.RunnerIndex()).IsRunner() {
		t.Errorf("RunnerIndex() = %d but that cell holds %v", b.RunnerIndex(), b.TileAt(b.RunnerIndex()))
	}
}

func TestApply_PreservesPermutation(t *testing.T) {
	b := mustNew(t, 4)

	// A fixed walk that bounces off every edge.
	walk := []Direction{
		Up, Up, Up, Up, Left, Left, Left, Left,
		Down, Right, Down, Right, Down, Right, Down, Right,
		Up, Left, Down, Right, Up, Up, Left, Down,
	}
	for _, dir := range walk {
		b.Apply(dir)
		assertPermutation(t, b)
	}
}

func TestTile_HomePosition(t *testing.T) {
	tests := []struct {
		tile     Tile
		size     int
		row, col int
	}{
		{0, 3, 0, 0},
		{2, 3, 0, 2},
		{3, 3, 1, 0},
		{7, 3, 2, 1},
		{5, 4, 1, 1},
	}
	for _, tc := range tests {
		if got := tc.tile.HomeRow(tc.size); got != tc.row {
			t.Errorf("Tile(%d).HomeRow(%d) = %d, want %d", tc.tile, tc.size, got, tc.row)
		}
		if got := tc.tile.HomeCol(tc.size); got != tc.col {
			t.Errorf("Tile(%d).HomeCol(%d) = %d, want %d", tc.tile, tc.size, got, tc.col)
		}
	}
}
