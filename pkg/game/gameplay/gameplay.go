// Package gameplay translates input intents into puzzle operations and owns
// the layered rules the board engine deliberately doesn't: move counting,
// solved detection, and shuffling.
package gameplay

import (
	"fmt"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"tilerunner/pkg/engine/board"
	engineinput "tilerunner/pkg/engine/input"
	"tilerunner/pkg/engine/shuffle"
	"tilerunner/pkg/game/devtools"
	"tilerunner/pkg/game/renderer"
	"tilerunner/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	switch intent.Action {
	case engineinput.ActionNone:
		return

	case engineinput.ActionQuit:
		fmt.Println(gotext.Get("Thanks for playing!"))
		os.Exit(0)

	case engineinput.ActionShuffle:
		ShuffleBoard(g, time.Now().UnixNano())
		return

	case engineinput.ActionReset:
		resetPuzzle(g)
		return

	case engineinput.ActionCycleSize:
		cycleSize(g)
		return

	case engineinput.ActionDumpBoard:
		path, err := devtools.DumpBoard(g)
		if err != nil {
			logMessage(g, "Board dump failed: %v", err)
		} else {
			logMessage(g, "Board dumped to ACTION{%s}", path)
		}
		return

	case engineinput.ActionMoveLeft:
		applyMove(g, board.Left)
		return

	case engineinput.ActionMoveUp:
		applyMove(g, board.Up)
		return

	case engineinput.ActionMoveRight:
		applyMove(g, board.Right)
		return

	case engineinput.ActionMoveDown:
		applyMove(g, board.Down)
		return
	}
}

// applyMove routes one directional input through the board engine. Edge
// attempts come back as no-ops and are simply ignored, matching what the
// player sees: nothing happens.
func applyMove(g *state.Game, dir board.Direction) {
	mv := g.Board.Apply(dir)
	if !mv.Swapped {
		return
	}

	g.Moves++
	renderer.NotifyMove(mv)

	if !g.Solved && g.Board.IsSolved() {
		g.Solved = true
		logMessage(g, "TILE{Picture restored} in ACTION{%d} moves!", g.Moves)
	}
}

// ShuffleBoard scrambles the board with the standard number of random moves,
// feeding every applied move through the same renderer notification path as
// player input. Resets the move counter and solved flag.
func ShuffleBoard(g *state.Game, seed int64) {
	sh := shuffle.New(seed)
	applied := sh.Shuffle(g.Board, shuffle.DefaultMoves, renderer.NotifyMove)

	g.Moves = 0
	g.Solved = false
	logMessage(g, "Shuffled with ACTION{%d} moves. Slide the picture back together!", len(applied))
}

// resetPuzzle rebuilds the current board solved, letting the player peek at
// the complete picture before the next shuffle.
func resetPuzzle(g *state.Game) {
	if err := g.NewPuzzle(g.Board.Size()); err != nil {
		logMessage(g, "Reset failed: %v", err)
		return
	}
	logMessage(g, "The full picture. Press ACTION{m} to shuffle it again.")
}

// cycleSize steps the grid size to the next supported value and starts a
// fresh shuffled puzzle at that size. The old board is discarded whole.
func cycleSize(g *state.Game) {
	size := g.NextSize()
	if err := g.NewPuzzle(size); err != nil {
		logMessage(g, "Grid size change failed: %v", err)
		return
	}

	ShuffleBoard(g, time.Now().UnixNano())
	logMessage(g, "Grid size is now ACTION{%dx%d}.", size, size)
}

// logMessage adds a formatted message to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	formatted := renderer.FormatString(msg, a...)
	g.AddMessage(formatted)
}
