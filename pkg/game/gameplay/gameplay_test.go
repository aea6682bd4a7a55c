package gameplay

import (
	"testing"

	"tilerunner/pkg/engine/board"
	engineinput "tilerunner/pkg/engine/input"
	"tilerunner/pkg/game/picture"
	"tilerunner/pkg/game/state"
)

// makeGame creates a game with a solved board of the given size and no
// renderer attached (renderer notifications are nil-safe).
func makeGame(t *testing.T, size int) *state.Game {
	t.Helper()
	g, err := state.NewGame(picture.Generate(), size)
	if err != nil {
		t.Fatalf("state.NewGame(%d) returned error: %v", size, err)
	}
	return g
}

func TestProcessIntent_MoveUpdatesBoard(t *testing.T) {
	g := makeGame(t, 2)

	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionMoveUp})

	if g.Board.RunnerIndex() != 1 {
		t.Errorf("runner at %d after MoveUp, want 1", g.Board.RunnerIndex())
	}
	if g.Moves != 1 {
		t.Errorf("Moves = %d after one applied move, want 1", g.Moves)
	}
}

func TestProcessIntent_BlockedMoveIsSilent(t *testing.T) {
	g := makeGame(t, 2)

	// Runner starts bottom-right: Right and Down both clamp.
	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionMoveRight})
	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionMoveDown})

	if !g.Board.IsSolved() {
		t.Error("blocked moves disturbed the board")
	}
	if g.Moves != 0 {
		t.Errorf("Moves = %d after only blocked moves, want 0", g.Moves)
	}
	if len(g.Messages) != 0 {
		t.Errorf("blocked moves logged %d messages, want none", len(g.Messages))
	}
}

func TestProcessIntent_AllFourDirections(t *testing.T) {
	// Walk the runner to the center of a 3x3 board, then try each direction.
	center := func(t *testing.T) *state.Game {
		g := makeGame(t, 3)
		ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionMoveUp})
		ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionMoveLeft})
		if g.Board.RunnerIndex() != 4 {
			t.Fatalf("setup: runner at %d, want center 4", g.Board.RunnerIndex())
		}
		return g
	}

	dirs := []struct {
		name   string
		action engineinput.Action
		want   int
	}{
		{"Left", engineinput.ActionMoveLeft, 3},
		{"Up", engineinput.ActionMoveUp, 1},
		{"Right", engineinput.ActionMoveRight, 5},
		{"Down", engineinput.ActionMoveDown, 7},
	}
	for _, d := range dirs {
		t.Run(d.name, func(t *testing.T) {
			g := center(t)
			ProcessIntent(g, engineinput.Intent{Action: d.action})
			if g.Board.RunnerIndex() != d.want {
				t.Errorf("runner at %d after %s, want %d", g.Board.RunnerIndex(), d.name, d.want)
			}
		})
	}
}

func TestProcessIntent_NoneIsNoop(t *testing.T) {
	g := makeGame(t, 3)
	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionNone})

	if !g.Board.IsSolved() || g.Moves != 0 || len(g.Messages) != 0 {
		t.Error("ActionNone changed game state")
	}
}

func TestProcessIntent_SolvedDetection(t *testing.T) {
	g := makeGame(t, 2)

	// Up then Down returns the board to solved; the second move must flip
	// the solved flag and log exactly one completion message.
	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionMoveUp})
	if g.Solved {
		t.Fatal("Solved set while the board is scrambled")
	}

	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionMoveDown})
	if !g.Solved {
		t.Fatal("Solved not set after the picture was reassembled")
	}
	if g.Moves != 2 {
		t.Errorf("Moves = %d, want 2", g.Moves)
	}
	if len(g.Messages) != 1 {
		t.Errorf("completion logged %d messages, want 1", len(g.Messages))
	}
}

func TestShuffleBoard(t *testing.T) {
	g := makeGame(t, 3)
	g.Moves = 17
	g.Solved = true

	ShuffleBoard(g, 42)

	if g.Board.IsSolved() {
		t.Error("board still solved after a 1000-move shuffle")
	}
	if g.Moves != 0 {
		t.Errorf("Moves = %d after shuffle, want 0", g.Moves)
	}
	if g.Solved {
		t.Error("Solved flag survived a shuffle")
	}
	if len(g.Messages) == 0 {
		t.Error("shuffle logged no message")
	}
}

func TestHomeTiles(t *testing.T) {
	g := makeGame(t, 3)

	home := HomeTiles(g.Board)
	if home.Size() != 8 {
		t.Errorf("solved board has %d home tiles, want 8", home.Size())
	}
	if home.Has(8) {
		t.Error("runner cell counted as a home tile")
	}

	// 2x2 after Up: cells = [0, Runner, 2, 1] - only 0 and 2 remain home.
	b, err := board.New(2)
	if err != nil {
		t.Fatal(err)
	}
	b.Apply(board.Up)

	home = HomeTiles(b)
	if home.Size() != 2 || !home.Has(0) || !home.Has(2) {
		t.Errorf("home tiles after 2x2 Up = size %d, want {0, 2}", home.Size())
	}
}
