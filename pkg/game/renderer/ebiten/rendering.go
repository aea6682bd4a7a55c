package ebiten

import (
	"fmt"
	"time"

	"github.com/gookit/color"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"
)

// Draw renders the game to the screen (Ebiten interface).
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	e.snapshotMutex.RLock()
	snap := e.snapshot
	e.snapshotMutex.RUnlock()

	if !snap.valid {
		return
	}

	e.ensureSourceImage(&snap)

	screenWidth := screen.Bounds().Dx()
	screenHeight := screen.Bounds().Dy()

	// Largest centered square that honors the margin, snapped to a multiple
	// of the grid size so every cell is the same integer width.
	avail := min(screenWidth, screenHeight) - 2*e.margin
	if avail < snap.size {
		return
	}
	tilePx := avail / snap.size
	boardPx := tilePx * snap.size
	boardX := (screenWidth - boardPx) / 2
	boardY := (screenHeight - boardPx) / 2

	e.drawBoard(screen, &snap, boardX, boardY, tilePx)
	e.drawMoveFlash(screen, &snap, boardX, boardY, tilePx)
	e.drawStatus(screen, &snap, screenHeight)

	if snap.solved {
		e.drawSolvedBanner(screen, screenWidth, boardY)
	}

	if e.isMenuActive() {
		e.drawMenuOverlay(screen, screenWidth, screenHeight)
	}
}

// ensureSourceImage uploads the source picture to the GPU once per Source.
func (e *EbitenRenderer) ensureSourceImage(snap *renderSnapshot) {
	if e.srcImage != nil && e.srcSource == snap.source {
		return
	}
	e.srcImage = ebiten.NewImageFromImage(snap.source.Image())
	e.srcSource = snap.source
}

// drawBoard paints every cell: picture sub-regions for tiles, a flat fill
// for the runner.
func (e *EbitenRenderer) drawBoard(screen *ebiten.Image, snap *renderSnapshot, boardX, boardY, tilePx int) {
	for pos, tile := range snap.cells {
		x := boardX + (pos%snap.size)*tilePx
		y := boardY + (pos/snap.size)*tilePx

		if tile.IsRunner() {
			vector.DrawFilledRect(screen, float32(x), float32(y),
				float32(tilePx), float32(tilePx), colorRunnerFill, false)
		} else {
			region := snap.source.Region(int(tile), snap.size)
			sub := e.srcImage.SubImage(region).(*ebiten.Image)

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(-float64(region.Min.X), -float64(region.Min.Y))
			op.GeoM.Scale(
				float64(tilePx)/float64(region.Dx()),
				float64(tilePx)/float64(region.Dy()),
			)
			op.GeoM.Translate(float64(x), float64(y))
			screen.DrawImage(sub, op)
		}

		vector.StrokeRect(screen, float32(x), float32(y),
			float32(tilePx), float32(tilePx), 1, colorGridLine, false)
	}
}

// drawMoveFlash outlines the two cells of the most recent move for a short
// moment, keeping fast play and shuffles readable.
func (e *EbitenRenderer) drawMoveFlash(screen *ebiten.Image, snap *renderSnapshot, boardX, boardY, tilePx int) {
	e.moveMutex.RLock()
	mv := e.lastMove
	at := e.lastMoveAt
	e.moveMutex.RUnlock()

	if !mv.Swapped || time.Now().UnixMilli()-at > moveFlashMillis {
		return
	}

	for _, pos := range []int{mv.A, mv.B} {
		if pos < 0 || pos >= len(snap.cells) {
			continue
		}
		x := boardX + (pos%snap.size)*tilePx
		y := boardY + (pos/snap.size)*tilePx
		vector.StrokeRect(screen, float32(x), float32(y),
			float32(tilePx), float32(tilePx), 2, colorMoveFlash, false)
	}
}

// drawStatus prints the move counter and recent messages.
func (e *EbitenRenderer) drawStatus(screen *ebiten.Image, snap *renderSnapshot, screenHeight int) {
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Moves: %d   Grid: %dx%d   [Esc] menu", snap.moves, snap.size, snap.size), 8, 8)

	y := screenHeight - 16*len(snap.messages) - 8
	for _, msg := range snap.messages {
		// Messages carry terminal color codes from the shared markup layer.
		ebitenutil.DebugPrintAt(screen, color.ClearCode(msg), 8, y)
		y += 16
	}
}

// drawSolvedBanner draws a band above the board once the picture is whole.
func (e *EbitenRenderer) drawSolvedBanner(screen *ebiten.Image, screenWidth, boardY int) {
	bannerH := 28
	y := boardY - bannerH - 8
	if y < 0 {
		y = 0
	}

	vector.DrawFilledRect(screen, 0, float32(y), float32(screenWidth), float32(bannerH), colorSolvedBand, false)
	ebitenutil.DebugPrintAt(screen, gotext.Get("Picture restored! Press M to shuffle again."),
		screenWidth/2-140, y+6)
}

// drawMenuOverlay shades the screen and lists the pause menu entries.
func (e *EbitenRenderer) drawMenuOverlay(screen *ebiten.Image, screenWidth, screenHeight int) {
	vector.DrawFilledRect(screen, 0, 0, float32(screenWidth), float32(screenHeight), colorMenuShade, false)

	e.menuMutex.RLock()
	items := e.menuItems
	selected := e.menuSelected
	e.menuMutex.RUnlock()

	x := screenWidth/2 - 80
	y := screenHeight/2 - 10*len(items)

	ebitenutil.DebugPrintAt(screen, gotext.Get("Paused"), x, y-24)

	for i, item := range items {
		marker := "  "
		if i == selected {
			marker = "> "
		}
		ebitenutil.DebugPrintAt(screen, marker+item.Label, x, y+20*i)
	}
}
