package renderer

import (
	"tilerunner/pkg/engine/board"
	"tilerunner/pkg/game/state"
)

// Renderer defines the interface for game rendering backends.
// Implementations include TUI (terminal) and Ebiten (graphical).
type Renderer interface {
	// Init initializes the renderer (colors, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame: the board, move counter,
	// and message log
	RenderFrame(g *state.Game)

	// NotifyMove receives the two-cell delta of a successful move so the
	// backend can repaint or flash exactly those cells. Shuffle moves arrive
	// through the same path as player moves.
	NotifyMove(mv board.Move)

	// GetInput gets user input (blocking for TUI, event-based for GUI)
	GetInput() string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)

	// GetViewportSize returns the current viewport dimensions (rows, cols)
	GetViewportSize() (rows, cols int)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(g *state.Game) {
	if Current != nil {
		Current.RenderFrame(g)
	}
}

// NotifyMove forwards a move delta to the current renderer
func NotifyMove(mv board.Move) {
	if Current != nil {
		Current.NotifyMove(mv)
	}
}

// GetInput gets user input from the current renderer
func GetInput() string {
	if Current != nil {
		return Current.GetInput()
	}
	return ""
}

// ShowMessage displays a message to the user
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}

// GetViewportSize returns viewport dimensions
func GetViewportSize() (rows, cols int) {
	if Current != nil {
		return Current.GetViewportSize()
	}
	return 15, 30 // sensible defaults
}
