// Package board implements the sliding-tile puzzle board: the tile
// permutation, the runner cell, and the directional move rules.
package board

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when constructing a board smaller than 2x2.
	ErrInvalidSize = errors.New("board size must be at least 2")

	// ErrInvalidIndex is returned when a swap names a position outside the board.
	ErrInvalidIndex = errors.New("cell index out of range")
)

// Board holds the current tile arrangement of an N x N puzzle.
//
// cells is indexed by current position; the value at each index is the tile
// shown there. Exactly one cell holds Runner, and runnerIndex caches its
// position. The arrangement is always a permutation of the solved picture's
// tiles - moves only ever exchange two cells.
type Board struct {
	size        int
	cells       []Tile
	runnerIndex int
}

// New creates a solved board of the given size. Tiles occupy their home
// positions and the runner sits in the last cell.
func New(size int) (*Board, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	total := size * size
	b := &Board{
		size:        size,
		cells:       make([]Tile, total),
		runnerIndex: total - 1,
	}

	for i := 0; i < total-1; i++ {
		b.cells[i] = Tile(i)
	}
	b.cells[total-1] = Runner

	return b, nil
}

// Size returns the board dimension N.
func (b *Board) Size() int {
	return b.size
}

// TotalCells returns the number of cells on the board.
func (b *Board) TotalCells() int {
	return len(b.cells)
}

// RunnerIndex returns the current position of the runner cell.
func (b *Board) RunnerIndex() int {
	return b.runnerIndex
}

// TileAt returns the tile currently shown at the given position.
// Panics if pos is out of range, like any slice access would.
func (b *Board) TileAt(pos int) Tile {
	return b.cells[pos]
}

// Cells returns a copy of the current tile arrangement for rendering.
func (b *Board) Cells() []Tile {
	out := make([]Tile, len(b.cells))
	copy(out, b.cells)
	return out
}

// Row returns the row of a cell position.
func (b *Board) Row(pos int) int {
	return pos / b.size
}

// Col returns the column of a cell position.
func (b *Board) Col(pos int) int {
	return pos % b.size
}

// Swap exchanges the tiles at positions a and b, updating the runner cache
// when the runner is one of them. Returns ErrInvalidIndex if either position
// is outside the board.
func (bd *Board) Swap(a, b int) error {
	if a < 0 || a >= len(bd.cells) {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, a)
	}
	if b < 0 || b >= len(bd.cells) {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, b)
	}

	bd.swap(a, b)
	return nil
}

// swap is the unchecked exchange used by Apply, which computes targets that
// are in range by construction.
func (bd *Board) swap(a, b int) {
	bd.cells[a], bd.cells[b] = bd.cells[b], bd.cells[a]

	if bd.cells[a].IsRunner() {
		bd.runnerIndex = a
	} else if bd.cells[b].IsRunner() {
		bd.runnerIndex = b
	}
}

// IsSolved returns true when every tile is back in its home position and the
// runner sits in the last cell. The move rules never consult this; it is a
// query for the layers above.
func (b *Board) IsSolved() bool {
	for i, t := range b.cells {
		if t.IsRunner() {
			if i != len(b.cells)-1 {
				return false
			}
			continue
		}
		if int(t) != i {
			return false
		}
	}
	return true
}
