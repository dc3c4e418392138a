package game

import "image"

// maskAlphaThreshold is the alpha value above which a pixel counts as solid.
const maskAlphaThreshold = 127

// Mask is a bit-packed per-pixel occupancy grid derived from a sprite's
// alpha channel. It is rebuilt whenever the sprite is rotated; collision
// tests run against it rather than the sprite's bounding box.
type Mask struct {
	w, h  int
	words []uint64 // row-major, (w+63)/64 words per row
}

// NewMask returns an empty (all-transparent) mask of the given size.
func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Mask{w: w, h: h, words: make([]uint64, ((w+63)/64)*h)}
}

// MaskFromSurface builds a mask from a surface: pixels with alpha above
// the threshold are solid.
func MaskFromSurface(src *image.RGBA) *Mask {
	if src == nil {
		return NewMask(0, 0)
	}
	b := src.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			a := src.Pix[src.PixOffset(b.Min.X+x, b.Min.Y+y)+3]
			if a > maskAlphaThreshold {
				m.set(x, y)
			}
		}
	}
	return m
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.w }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.h }

func (m *Mask) set(x, y int) {
	wpr := (m.w + 63) / 64
	m.words[y*wpr+x/64] |= 1 << uint(x%64)
}

// At reports whether the pixel at (x, y) is solid. Out-of-range
// coordinates are transparent.
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	wpr := (m.w + 63) / 64
	return m.words[y*wpr+x/64]&(1<<uint(x%64)) != 0
}

// Overlap reports whether any solid pixel of m coincides with a solid
// pixel of other when other's origin sits at (offX, offY) relative to m's
// origin. Only the intersection window is scanned. Computing a collision
// normal is left to callers that need a response policy.
func (m *Mask) Overlap(other *Mask, offX, offY int) bool {
	if other == nil {
		return false
	}
	x0 := max(0, offX)
	y0 := max(0, offY)
	x1 := min(m.w, offX+other.w)
	y1 := min(m.h, offY+other.h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.At(x, y) && other.At(x-offX, y-offY) {
				return true
			}
		}
	}
	return false
}
