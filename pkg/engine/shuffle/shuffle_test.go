package shuffle

import (
	"testing"

	"tilerunner/pkg/engine/board"
)

func newBoard(t *testing.T, size int) *board.Board {
	t.Helper()
	b, err := board.New(size)
	if err != nil {
		t.Fatalf("board.New(%d) returned error: %v", size, err)
	}
	return b
}

func TestShuffle_ReverseReplayReachesSolved(t *testing.T) {
	for _, size := range []int{2, 3, 4, 6} {
		b := newBoard(t, size)

		applied := New(42).Shuffle(b, DefaultMoves, nil)

		// Undo by replaying the applied moves backwards with their opposites.
		for i := len(applied) - 1; i >= 0; i-- {
			if mv := b.Apply(applied[i].Opposite()); !mv.Swapped {
				t.Fatalf("size %d: inverse of move %d (%v) was a no-op", size, i, applied[i])
			}
		}

		if !b.IsSolved() {
			t.Errorf("size %d: board not solved after reverse replay", size)
		}
	}
}

func TestShuffle_NotifiesEveryAppliedMove(t *testing.T) {
	b := newBoard(t, 4)

	var notified int
	applied := New(7).Shuffle(b, DefaultMoves, func(mv board.Move) {
		notified++
		if !mv.Swapped {
			t.Error("onMove fired for a no-op")
		}
	})

	if notified != len(applied) {
		t.Errorf("onMove fired %d times for %d applied moves", notified, len(applied))
	}
	if notified == 0 {
		t.Error("1000-move shuffle applied no moves at all")
	}
}

func TestShuffle_DeterministicForSeed(t *testing.T) {
	b1 := newBoard(t, 3)
	b2 := newBoard(t, 3)

	seq1 := New(99).Shuffle(b1, 200, nil)
	seq2 := New(99).Shuffle(b2, 200, nil)

	if len(seq1) != len(seq2) {
		t.Fatalf("same seed produced %d vs %d applied moves", len(seq1), len(seq2))
	}
	for i := range seq1 {
		if seq1[i] != seq2[i] {
			t.Fatalf("same seed diverged at move %d: %v vs %v", i, seq1[i], seq2[i])
		}
	}
	for i, tile := range b1.Cells() {
		if tile != b2.TileAt(i) {
			t.Fatalf("same seed produced different boards at cell %d", i)
		}
	}
}

func TestShuffle_PreservesPermutation(t *testing.T) {
	b := newBoard(t, 5)
	New(1).Shuffle(b, DefaultMoves, nil)

	seen := make(map[board.Tile]int)
	for _, tile := range b.Cells() {
		seen[tile]++
	}

	if seen[board.Runner] != 1 {
		t.Fatalf("shuffled board holds %d runners, want 1", seen[board.Runner])
	}
	for i := 0; i < b.TotalCells()-1; i++ {
		if seen[board.Tile(i)] != 1 {
			t.Errorf("tile %d appears %d times after shuffle, want once", i, seen[board.Tile(i)])
		}
	}
}

func TestShuffle_ZeroMoves(t *testing.T) {
	b := newBoard(t, 3)

	applied := New(5).Shuffle(b, 0, nil)

	if len(applied) != 0 {
		t.Errorf("Shuffle with 0 moves applied %d moves", len(applied))
	}
	if !b.IsSolved() {
		t.Error("Shuffle with 0 moves disturbed the board")
	}
}
