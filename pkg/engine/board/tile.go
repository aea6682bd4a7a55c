package board

import "strconv"

// Tile identifies which sub-region of the source picture a cell currently
// shows. A tile's value is the cell index it occupied in the solved picture.
type Tile int

// Runner is the single empty cell the player slides around the board.
const Runner Tile = -1

// IsRunner returns true if the tile is the empty runner cell.
func (t Tile) IsRunner() bool {
	return t == Runner
}

// String returns the string representation of a tile.
func (t Tile) String() string {
	if t.IsRunner() {
		return "·"
	}
	return strconv.Itoa(int(t))
}

// HomeRow returns the row the tile occupies in the solved picture.
func (t Tile) HomeRow(size int) int {
	return int(t) / size
}

// HomeCol returns the column the tile occupies in the solved picture.
func (t Tile) HomeCol(size int) int {
	return int(t) % size
}
