// Package shuffle scrambles a puzzle board by driving the same move rules
// the player uses, so every scrambled state is reachable from solved by
// construction.
package shuffle

import (
	"math/rand"

	"tilerunner/pkg/engine/board"
)

// DefaultMoves is the number of random directional inputs issued per
// shuffle. Enough to visibly scramble any practical board size; no
// "sufficiently shuffled" check is performed beyond that.
const DefaultMoves = 1000

// Shuffler issues random directional inputs through Board.Apply.
type Shuffler struct {
	rng *rand.Rand
}

// New creates a shuffler with its own deterministic random source.
func New(seed int64) *Shuffler {
	return &Shuffler{rng: rand.New(rand.NewSource(seed))}
}

// Shuffle issues the given number of uniformly random directional inputs
// against the board. Inputs that clamp at an edge simply do nothing, exactly
// as they would for a player. onMove, when non-nil, fires once per applied
// swap with the same delta a renderer would receive from real input.
//
// The returned slice holds only the directions that actually moved the
// runner: replaying their opposites in reverse order walks the board back to
// the state it started from.
func (s *Shuffler) Shuffle(b *board.Board, moves int, onMove func(board.Move)) []board.Direction {
	applied := make([]board.Direction, 0, moves)

	for i := 0; i < moves; i++ {
		dir := board.Direction(s.rng.Intn(4))

		mv := b.Apply(dir)
		if !mv.Swapped {
			continue
		}

		applied = append(applied, dir)
		if onMove != nil {
			onMove(mv)
		}
	}

	return applied
}
