package picture

import (
	"image"
	"image/color"
)

// Generate builds a procedural fallback picture so the game is playable with
// no image file at all: a diagonal color gradient with a checker overlay,
// busy enough that every tile looks distinct.
func Generate() *Source {
	img := image.NewRGBA(image.Rect(0, 0, Side, Side))

	const checker = Side / 8

	for y := 0; y < Side; y++ {
		for x := 0; x < Side; x++ {
			r := uint8(40 + 180*x/Side)
			g := uint8(60 + 150*y/Side)
			b := uint8(200 - 120*(x+y)/(2*Side))

			// Darken alternate checker squares so edges stay visible.
			if (x/checker+y/checker)%2 == 0 {
				r = r * 3 / 4
				g = g * 3 / 4
				b = b * 3 / 4
			}

			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}

	return &Source{img: img}
}
