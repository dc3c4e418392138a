package game

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
)

// ErrOutOfBounds is returned when a tile is placed at a negative
// grid coordinate.
var ErrOutOfBounds = errors.New("tile out of bounds")

// World owns a growable [col][row] grid of tiles plus the objects and
// entities living on it, and composes both into a single surface each
// update. The camera extracts its frame from that surface.
type World struct {
	tiles   [][]*Tile // [col][row]; nil cells render the fallback tile
	objects []WorldObject
	surface *image.RGBA
}

// NewWorld creates a world with an empty cols x rows tile grid.
func NewWorld(cols, rows int) *World {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	tiles := make([][]*Tile, cols)
	for c := range tiles {
		tiles[c] = make([]*Tile, rows)
	}
	w := &World{tiles: tiles}
	w.recompose()
	return w
}

// Cols returns the current grid width in tiles.
func (w *World) Cols() int { return len(w.tiles) }

// Rows returns the current grid height in tiles.
func (w *World) Rows() int { return len(w.tiles[0]) }

// TileAt returns the tile at (col, row), or nil if the cell is unset or
// out of the current bounds.
func (w *World) TileAt(col, row int) *Tile {
	if col < 0 || row < 0 || col >= w.Cols() || row >= w.Rows() {
		return nil
	}
	return w.tiles[col][row]
}

// AddTile places a tile at (col, row), replacing any occupant. Negative
// coordinates fail; coordinates beyond the current bounds grow the grid,
// keeping it rectangular: rows first across every column, then whole
// columns. New cells start empty. The world surface is recomposed in
// full afterwards; fine at world-generation time, not meant for per-tick
// terrain edits.
func (w *World) AddTile(t *Tile, col, row int) error {
	if col < 0 || row < 0 {
		return fmt.Errorf("%w: col %d row %d", ErrOutOfBounds, col, row)
	}
	if grow := row - (w.Rows() - 1); grow > 0 {
		for c := range w.tiles {
			w.tiles[c] = append(w.tiles[c], make([]*Tile, grow)...)
		}
	}
	for col > w.Cols()-1 {
		w.tiles = append(w.tiles, make([]*Tile, w.Rows()))
	}
	w.tiles[col][row] = t
	w.recompose()
	return nil
}

// AddObject registers an object for updates and drawing. No bounds check:
// objects may sit outside the tiled area. Draw order is insertion order.
func (w *World) AddObject(o WorldObject) {
	w.objects = append(w.objects, o)
}

// Update ticks every tile and object when tick is set, then recomposes
// the world surface. Recomposition runs every call so render-only frames
// still see objects at their latest positions.
func (w *World) Update(tick bool) {
	for _, col := range w.tiles {
		for _, t := range col {
			if t != nil {
				t.Update(tick)
			}
		}
	}
	for _, o := range w.objects {
		o.Update(tick)
	}
	w.recompose()
}

// recompose repaints the full world surface: each grid cell's tile (or
// the shared fallback for empty cells) at its grid-aligned rectangle,
// then every object at its current pixel position. O(tiles + objects);
// dirty-rectangle tracking is the first optimisation if worlds grow.
func (w *World) recompose() {
	cols, rows := w.Cols(), w.Rows()
	if w.surface == nil || w.surface.Bounds().Dx() != cols*TileSize || w.surface.Bounds().Dy() != rows*TileSize {
		w.surface = image.NewRGBA(image.Rect(0, 0, cols*TileSize, rows*TileSize))
	}
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			img := fallbackTile.Image()
			if t := w.tiles[c][r]; t != nil {
				img = t.Image()
			}
			cell := image.Rect(c*TileSize, r*TileSize, (c+1)*TileSize, (r+1)*TileSize)
			draw.Draw(w.surface, cell, img, img.Bounds().Min, draw.Src)
		}
	}
	for _, o := range w.objects {
		sprite := o.Sprite()
		draw.Draw(w.surface, o.Bounds(), sprite, sprite.Bounds().Min, draw.Over)
	}
}

// Surface returns the composed world surface as of the last update.
func (w *World) Surface() *image.RGBA { return w.surface }
