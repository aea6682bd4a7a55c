package gameplay

import (
	"github.com/zyedidia/generic/mapset"

	"tilerunner/pkg/engine/board"
)

// HomeTiles returns the set of cell positions whose tile is already back in
// its home position. Renderers use it to highlight settled tiles; the runner
// cell is never part of the set.
func HomeTiles(b *board.Board) mapset.Set[int] {
	home := mapset.New[int]()

	for pos, tile := range b.Cells() {
		if tile.IsRunner() {
			continue
		}
		if int(tile) == pos {
			home.Put(pos)
		}
	}

	return home
}
