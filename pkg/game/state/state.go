package state

import (
	"tilerunner/pkg/engine/board"
	"tilerunner/pkg/game/picture"
)

// Grid sizes the size selector cycles through.
const (
	MinSize = 2
	MaxSize = 6
)

// Game represents the state of one Tile Runner session.
type Game struct {
	Board *board.Board

	// Source is the decoded square picture the tiles are cut from. Owned by
	// the image-loading side and passed in; the board never sees pixels.
	Source *picture.Source

	Moves  int  // Player moves since the last shuffle
	Solved bool // Set once the picture is reassembled

	Messages []string
}

// NewGame creates a game with a solved board of the given size.
func NewGame(source *picture.Source, size int) (*Game, error) {
	b, err := board.New(size)
	if err != nil {
		return nil, err
	}

	return &Game{
		Board:    b,
		Source:   source,
		Messages: make([]string, 0),
	}, nil
}

// NewPuzzle discards the current board and constructs a fresh solved one.
// Used when the grid size changes or the puzzle is reset; any in-flight
// reference to the old board is simply moot.
func (g *Game) NewPuzzle(size int) error {
	b, err := board.New(size)
	if err != nil {
		return err
	}

	g.Board = b
	g.Moves = 0
	g.Solved = false
	return nil
}

// NextSize returns the grid size the size selector steps to next.
func (g *Game) NextSize() int {
	next := g.Board.Size() + 1
	if next > MaxSize {
		next = MinSize
	}
	return next
}

// AddMessage adds a message to the game's message log.
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages.
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}
