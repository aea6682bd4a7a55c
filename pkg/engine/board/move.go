package board

// Move describes the outcome of a directional input. When Swapped is true,
// A and B are the two cell positions that exchanged tiles, so a renderer can
// repaint exactly those two cells.
type Move struct {
	Swapped bool
	A       int
	B       int
}

// Apply translates a directional input into a single board mutation, or a
// no-op. Edge detection is row/column arithmetic on the runner position
// rather than a neighbor lookup: a move that would push the runner off the
// board clamps to a no-op, it never wraps. Unrecognized directions are
// silently ignored.
func (b *Board) Apply(dir Direction) Move {
	if !dir.IsValid() {
		return Move{}
	}

	target := b.runnerIndex

	switch dir {
	case Left:
		if b.runnerIndex%b.size == 0 {
			return Move{}
		}
		target--
	case Up:
		if b.runnerIndex < b.size {
			return Move{}
		}
		target -= b.size
	case Right:
		if b.runnerIndex%b.size == b.size-1 {
			return Move{}
		}
		target++
	case Down:
		if b.runnerIndex >= len(b.cells)-b.size {
			return Move{}
		}
		target += b.size
	}

	runner := b.runnerIndex
	b.swap(target, runner)

	return Move{Swapped: true, A: target, B: runner}
}
