// Package devtools provides developer diagnostics for bug reports.
package devtools

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tilerunner/pkg/game/state"
)

// DumpBoard writes an ASCII snapshot of the current board to a file in the
// temp directory and returns its path. Handy for attaching to bug reports
// when a board looks wrong.
func DumpBoard(g *state.Game) (string, error) {
	var sb strings.Builder

	size := g.Board.Size()
	fmt.Fprintf(&sb, "Tile Runner board dump %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(&sb, "size=%d runner=%d moves=%d solved=%v\n\n",
		size, g.Board.RunnerIndex(), g.Moves, g.Solved)

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			tile := g.Board.TileAt(row*size + col)
			fmt.Fprintf(&sb, "%4s", tile.String())
		}
		sb.WriteString("\n")
	}

	path := filepath.Join(os.TempDir(), fmt.Sprintf("tilerunner-board-%d.txt", time.Now().Unix()))
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return "", fmt.Errorf("write board dump: %w", err)
	}

	return path, nil
}
