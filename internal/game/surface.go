package game

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
)

// A surface is a plain *image.RGBA with its origin at (0, 0). World
// composition, camera extraction and mask generation all operate on
// surfaces; Ebitengine only ever sees the finished camera frame.

// NewColorSurface returns a w x h surface filled with a solid colour.
func NewColorSurface(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// LoadSurface decodes the PNG at path into a surface. Asset failures are
// returned as-is; world construction should stop on them rather than
// substitute a fallback.
func LoadSurface(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load surface: %w", err)
	}
	defer f.Close()
	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	b := src.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), src, b.Min, draw.Src)
	return img, nil
}

// ScaleSurface resamples src to w x h.
func ScaleSurface(src *image.RGBA, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}

// RotateSurface returns src rotated counter-clockwise on screen by the
// given angle in degrees. The result grows to the rotated bounding box;
// uncovered corners are transparent, so the rotated sprite's mask only
// contains real pixels. Nearest-neighbour sampling from the source keeps
// repeated rotations of the same original sharp.
func RotateSurface(src *image.RGBA, degrees float64) *image.RGBA {
	sb := src.Bounds()
	sw, sh := float64(sb.Dx()), float64(sb.Dy())
	rad := degrees * math.Pi / 180
	sin, cos := math.Abs(math.Sin(rad)), math.Abs(math.Cos(rad))
	dw := int(math.Ceil(sw*cos + sh*sin))
	dh := int(math.Ceil(sw*sin + sh*cos))

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	scx, scy := sw/2, sh/2
	dcx, dcy := float64(dw)/2, float64(dh)/2
	for dy := 0; dy < dh; dy++ {
		for dx := 0; dx < dw; dx++ {
			// Inverse map: rotate the dest offset back into source space.
			off := Vec{X: float64(dx) + 0.5 - dcx, Y: float64(dy) + 0.5 - dcy}.Rotated(degrees)
			sx := int(math.Floor(off.X + scx))
			sy := int(math.Floor(off.Y + scy))
			if sx < 0 || sy < 0 || sx >= sb.Dx() || sy >= sb.Dy() {
				continue
			}
			si := src.PixOffset(sb.Min.X+sx, sb.Min.Y+sy)
			di := dst.PixOffset(dx, dy)
			copy(dst.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
	return dst
}

// CopyRegion extracts the rectangle r from src into a new surface of
// r's size. The part of r outside src is filled opaque black; the
// extraction never fails on out-of-range coordinates.
func CopyRegion(src *image.RGBA, r image.Rectangle) *image.RGBA {
	dst := NewColorSurface(r.Dx(), r.Dy(), color.RGBA{A: 255})
	vis := r.Intersect(src.Bounds())
	if !vis.Empty() {
		draw.Draw(dst, vis.Sub(r.Min), src, vis.Min, draw.Src)
	}
	return dst
}

// NewCarSurface builds a procedural top-down car sprite, facing east:
// rounded-off body corners, a darker windscreen block toward the front.
// The clipped corners give the silhouette mask a non-rectangular shape.
func NewCarSurface(w, h int, body color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	corner := h / 6
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// Clip the four corners.
			cx := min(x, w-1-x)
			cy := min(y, h-1-y)
			if cx+cy < corner {
				continue
			}
			img.SetRGBA(x, y, body)
		}
	}
	// Windscreen: front third, inset vertically.
	screen := color.RGBA{R: 40, G: 48, B: 60, A: 255}
	for y := h / 5; y < h-h/5; y++ {
		for x := 2 * w / 3; x < 2*w/3+w/8; x++ {
			img.SetRGBA(x, y, screen)
		}
	}
	return img
}

// NewCheckerSurface builds a size x size checkerboard of two colours with
// the given cell count per side. Used as a stand-in tile texture when no
// asset files are available.
func NewCheckerSurface(size, cells int, a, b color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if cells < 1 {
		cells = 1
	}
	cell := size / cells
	if cell < 1 {
		cell = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetRGBA(x, y, a)
			} else {
				img.SetRGBA(x, y, b)
			}
		}
	}
	return img
}
