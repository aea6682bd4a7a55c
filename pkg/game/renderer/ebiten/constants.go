package ebiten

import "image/color"

// Window defaults
const (
	defaultWindowWidth  = 900
	defaultWindowHeight = 900
)

// Board margin (zoomable with =/-)
const (
	defaultMargin = 60
	minMargin     = 20
	maxMargin     = 240
	marginStep    = 20
)

// moveFlashMillis is how long the two cells of the last move stay outlined.
const moveFlashMillis = 180

var (
	colorBackground = color.RGBA{R: 18, G: 18, B: 24, A: 255}
	colorGridLine   = color.RGBA{R: 10, G: 10, B: 14, A: 255}
	colorRunnerFill = color.RGBA{R: 32, G: 34, B: 44, A: 255}
	colorMoveFlash  = color.RGBA{R: 255, G: 214, B: 90, A: 255}
	colorMenuShade  = color.RGBA{R: 0, G: 0, B: 0, A: 190}
	colorSolvedBand = color.RGBA{R: 24, G: 96, B: 48, A: 220}
)
