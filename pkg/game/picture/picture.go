// Package picture owns the source image side of the puzzle: decoding,
// square cropping, scaling, and the decoded-image cache. The board engine
// never touches pixels; it only deals in tile identities, and renderers map
// those identities back to sub-regions through a Source.
package picture

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"
)

// Side is the pixel edge length every source is normalized to. Large enough
// to stay sharp at fullscreen, small enough to decode and scale instantly.
const Side = 768

// Source is a decoded, square puzzle image.
type Source struct {
	path string
	img  *image.RGBA
}

// Load reads and decodes an image file, center-crops it square, and scales
// it to the standard puzzle resolution.
func Load(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open picture: %w", err)
	}
	defer f.Close()

	decoded, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode picture %s: %w", path, err)
	}

	return &Source{path: path, img: normalize(decoded)}, nil
}

// normalize center-crops an image square and scales it to Side x Side.
func normalize(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	side := w
	if h < side {
		side = h
	}
	crop := image.Rect(0, 0, side, side).Add(image.Pt(
		bounds.Min.X+(w-side)/2,
		bounds.Min.Y+(h-side)/2,
	))

	dst := image.NewRGBA(image.Rect(0, 0, Side, Side))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, draw.Src, nil)
	return dst
}

// Path returns the file the source was loaded from, or empty for a
// generated fallback.
func (s *Source) Path() string {
	return s.path
}

// Image returns the normalized square image.
func (s *Source) Image() image.Image {
	return s.img
}

// Region returns the pixel rectangle of the sub-image a tile identity shows.
// originalPos is the tile's home cell index on a size x size board. The
// bounds are computed with integer rational arithmetic so the regions tile
// the full image exactly for any grid size.
func (s *Source) Region(originalPos, size int) image.Rectangle {
	row := originalPos / size
	col := originalPos % size
	return image.Rect(
		col*Side/size,
		row*Side/size,
		(col+1)*Side/size,
		(row+1)*Side/size,
	)
}

// Cache keeps decoded sources keyed by path so switching grid sizes or
// reloading the same file never re-decodes. State is explicit and owned by
// whoever constructs the cache; there is no package-global image state.
type Cache struct {
	sources map[string]*Source
}

// NewCache creates an empty picture cache.
func NewCache() *Cache {
	return &Cache{sources: make(map[string]*Source)}
}

// Load returns the cached source for a path, decoding it on first use.
func (c *Cache) Load(path string) (*Source, error) {
	if s, ok := c.sources[path]; ok {
		return s, nil
	}

	s, err := Load(path)
	if err != nil {
		return nil, err
	}

	c.sources[path] = s
	return s, nil
}
