package ebiten

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"

	"tilerunner/pkg/engine/board"
	engineinput "tilerunner/pkg/engine/input"
	"tilerunner/pkg/game/state"
)

// Init initializes the Ebiten window.
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("Tile Runner"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// Run starts the Ebiten game loop and blocks until the window closes.
func (e *EbitenRenderer) Run() error {
	return ebiten.RunGame(e)
}

// InputIntents returns the channel the renderer publishes player intents on.
// The game loop goroutine consumes it.
func (e *EbitenRenderer) InputIntents() <-chan engineinput.Intent {
	return e.inputChan
}

// Layout returns the game's logical screen size (Ebiten interface).
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Clear is a no-op: Ebiten repaints the whole frame in Draw.
func (e *EbitenRenderer) Clear() {
}

// RenderFrame copies the game state into the render snapshot. Actual
// painting happens on Ebiten's render thread in Draw.
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	snap := renderSnapshot{
		valid:    true,
		size:     g.Board.Size(),
		cells:    g.Board.Cells(),
		moves:    g.Moves,
		solved:   g.Solved,
		messages: append([]string(nil), g.Messages...),
		source:   g.Source,
	}

	e.snapshotMutex.Lock()
	e.snapshot = snap
	e.snapshotMutex.Unlock()
}

// NotifyMove records the two-cell delta of a move so Draw can outline it
// briefly. Shuffle moves and player moves arrive identically.
func (e *EbitenRenderer) NotifyMove(mv board.Move) {
	if !mv.Swapped {
		return
	}

	e.moveMutex.Lock()
	e.lastMove = mv
	e.lastMoveAt = time.Now().UnixMilli()
	e.moveMutex.Unlock()
}

// GetInput returns empty: the Ebiten backend is event-based and publishes
// intents on InputIntents instead.
func (e *EbitenRenderer) GetInput() string {
	return ""
}

// ShowMessage logs the message; user-visible messages travel through the
// game's message log and arrive with the next snapshot.
func (e *EbitenRenderer) ShowMessage(msg string) {
	log.Println(msg)
}

// GetViewportSize returns the current viewport dimensions (rows, cols).
func (e *EbitenRenderer) GetViewportSize() (rows, cols int) {
	return e.windowHeight, e.windowWidth
}
