package game

import (
	"image"
	"image/color"
)

// TileSize is the fixed square side of every world tile in pixels.
const TileSize = 500

// fallbackTile renders in place of unset grid cells. Initialised once,
// read-only afterwards; every world shares it.
var fallbackTile = NewColorTile(color.RGBA{R: 200, G: 40, B: 40, A: 255})

// Tile is one fixed-size square segment of the world's ground. Tiles
// carry no physics; they only contribute pixels to the composed surface.
type Tile struct {
	img *image.RGBA
}

// NewTile wraps an image as a tile, resampling it to TileSize square.
func NewTile(img *image.RGBA) *Tile {
	b := img.Bounds()
	if b.Dx() != TileSize || b.Dy() != TileSize {
		img = ScaleSurface(img, TileSize, TileSize)
	}
	return &Tile{img: img}
}

// NewColorTile returns a solid-colour tile.
func NewColorTile(c color.RGBA) *Tile {
	return &Tile{img: NewColorSurface(TileSize, TileSize, c)}
}

// LoadTile builds a tile from the PNG at path.
func LoadTile(path string) (*Tile, error) {
	img, err := LoadSurface(path)
	if err != nil {
		return nil, err
	}
	return NewTile(img), nil
}

// Image returns the tile's pixel surface.
func (t *Tile) Image() *image.RGBA { return t.img }

// Update advances the tile by one tick. Tiles are static; this exists so
// the world can tick tiles and objects uniformly.
func (t *Tile) Update(tick bool) {}
