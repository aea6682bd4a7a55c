// Package tui is the terminal renderer: the board is drawn as a grid of
// numbered tiles, since a terminal can't show the picture itself. Tiles
// already in their home position are highlighted, the runner is a blank dot.
package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"tilerunner/pkg/engine/board"
	"tilerunner/pkg/engine/input"
	"tilerunner/pkg/engine/terminal"
	"tilerunner/pkg/game/gameplay"
	"tilerunner/pkg/game/renderer"
	"tilerunner/pkg/game/state"
)

const (
	// IconRunner marks the empty runner cell.
	IconRunner = "·"

	// cellWidth is the printed width of one tile, wide enough for the
	// largest tile number on a 6x6 board.
	cellWidth = 4
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorTile     color.Style
	colorTileHome color.Style
	colorRunner   color.Style
	colorSubtle   color.Style
	colorTitle    color.Style
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorTile = color.Style{color.FgBlue}
	t.colorTileHome = color.Style{color.FgGreen, color.OpBold}
	t.colorRunner = color.Style{color.FgGray}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorTitle = color.Style{color.FgCyan, color.OpBold}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// RenderFrame renders a complete game frame: title, board, status, messages.
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	t.colorTitle.Printf("Tile Runner")
	size := g.Board.Size()
	t.colorSubtle.Printf("  %dx%d\n\n", size, size)

	t.printBoard(g)

	fmt.Println()
	renderer.PrintString("Moves: ACTION{%d}\n", g.Moves)
	if g.Solved {
		t.colorTileHome.Println(gotext.Get("Picture restored!"))
	}

	t.printMessages(g)
	t.printActions()

	fmt.Printf("\n> ")
}

// printBoard draws the tile grid. Home tiles are highlighted so the player
// can see progress at a glance.
func (t *TUIRenderer) printBoard(g *state.Game) {
	size := g.Board.Size()
	home := gameplay.HomeTiles(g.Board)

	for row := 0; row < size; row++ {
		fmt.Print("  ")
		for col := 0; col < size; col++ {
			pos := row*size + col
			tile := g.Board.TileAt(pos)

			label := fmt.Sprintf("%*s", cellWidth, tile.String())
			switch {
			case tile.IsRunner():
				t.colorRunner.Print(strings.Repeat(" ", cellWidth-1) + IconRunner)
			case home.Has(pos):
				t.colorTileHome.Print(label)
			default:
				t.colorTile.Print(label)
			}
		}
		fmt.Println()
	}
}

// printMessages prints the recent message log.
func (t *TUIRenderer) printMessages(g *state.Game) {
	if len(g.Messages) == 0 {
		return
	}

	fmt.Println()
	for _, msg := range g.Messages {
		fmt.Printf("- %s\n", msg)
	}
}

// printActions prints the key help line.
func (t *TUIRenderer) printActions() {
	fmt.Println()
	t.colorSubtle.Println("arrows/wasd move · m shuffle · n full picture · g grid size · q quit")
}

// NotifyMove is a no-op for the TUI: every frame repaints the whole board.
func (t *TUIRenderer) NotifyMove(mv board.Move) {
}

// GetInput gets user input (blocking single keypress)
func (t *TUIRenderer) GetInput() string {
	return input.ReadKey()
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Println(msg)
}

// GetViewportSize returns the current viewport dimensions (rows, cols)
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	width, height := terminal.GetSize()
	return height, width
}
