// Package ebiten provides an Ebiten-based 2D graphical renderer for Tile
// Runner: the actual picture tiles, drawn as sub-images of the source.
package ebiten

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"tilerunner/pkg/engine/board"
	engineinput "tilerunner/pkg/engine/input"
	gamemenu "tilerunner/pkg/game/menu"
	"tilerunner/pkg/game/picture"
)

// renderSnapshot holds a consistent copy of game state for rendering.
// The game loop goroutine mutates the board; Draw only ever sees snapshots,
// so the two never race.
type renderSnapshot struct {
	valid    bool
	size     int
	cells    []board.Tile
	moves    int
	solved   bool
	messages []string
	source   *picture.Source
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions (initial; the window is resizable)
	windowWidth  int
	windowHeight int

	// Margin around the board in pixels (adjustable with =/-)
	margin int

	// Cached render snapshot for consistent drawing (set by RenderFrame)
	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	// Cached ebiten image of the source picture, rebuilt when the source
	// changes
	srcImage  *ebiten.Image
	srcSource *picture.Source

	// Last applied move, outlined briefly so shuffles and fast play stay
	// readable
	lastMove   board.Move
	lastMoveAt int64 // Unix milliseconds
	moveMutex  sync.RWMutex

	// Input channel for communication between Ebiten and the game loop
	inputChan chan engineinput.Intent

	// Pause menu overlay state
	menuActive   bool
	menuItems    []gamemenu.MenuItem
	menuSelected int
	menuMutex    sync.RWMutex
}

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
		margin:       defaultMargin,
		inputChan:    make(chan engineinput.Intent, 16),
		menuItems:    gamemenu.GameplayMenu(),
	}
}
