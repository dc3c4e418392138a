package game

import (
	"errors"
	"fmt"
	"image"
)

// LayerMask is a bitmask of collision layers. Two objects may collide
// only when their masks share at least one layer.
type LayerMask uint32

const (
	// LayerCar tags all road vehicles.
	LayerCar LayerMask = 1 << iota
)

// Intersects reports whether the two layer sets share a layer.
func (l LayerMask) Intersects(o LayerMask) bool {
	return l&o != 0
}

// ErrInvalidScale is returned for a scale that is neither unset nor a
// pair of positive dimensions.
var ErrInvalidScale = errors.New("invalid scale")

// Scale is an optional target sprite size. The zero value means "keep the
// source size". UniformScale gives a square target from a single scalar.
type Scale struct {
	W, H int
}

// UniformScale returns a square scale of n x n pixels.
func UniformScale(n int) Scale {
	return Scale{W: n, H: n}
}

func (s Scale) isZero() bool {
	return s.W == 0 && s.H == 0
}

func (s Scale) validate() error {
	if s.isZero() {
		return nil
	}
	if s.W <= 0 || s.H <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidScale, s.W, s.H)
	}
	return nil
}

// WorldObject is anything a world can register and draw: base objects,
// physics entities and the car variants built on them. Behaviour variants
// plug in via this interface rather than a type hierarchy.
type WorldObject interface {
	// Update advances the object's state. Integration only happens on
	// tick-bearing frames; the flag is false on render-only frames.
	Update(tick bool)
	// Sprite returns the object's current (possibly rotated) image.
	Sprite() *image.RGBA
	// Bounds returns the pixel rectangle the sprite occupies in world
	// space.
	Bounds() image.Rectangle
	// Layers returns the object's collision layer set.
	Layers() LayerMask
}

// Object is the base world presence: a sprite at an integer pixel
// rectangle with a collision layer set. It has no physics of its own.
type Object struct {
	rect   image.Rectangle
	img    *image.RGBA
	layers LayerMask
}

// NewObject creates an object at the given top-left position. A nil img
// with a non-zero scale produces a blank sprite of that size; a non-nil
// img is resampled when scale is set. An invalid scale fails construction.
func NewObject(pos Vec, layers LayerMask, img *image.RGBA, scale Scale) (*Object, error) {
	if err := scale.validate(); err != nil {
		return nil, err
	}
	if img == nil {
		w, h := scale.W, scale.H
		img = image.NewRGBA(image.Rect(0, 0, w, h))
	} else if !scale.isZero() {
		img = ScaleSurface(img, scale.W, scale.H)
	}
	x, y := int(pos.X), int(pos.Y)
	b := img.Bounds()
	return &Object{
		rect:   image.Rect(x, y, x+b.Dx(), y+b.Dy()),
		img:    img,
		layers: layers,
	}, nil
}

// Update is a no-op for plain objects.
func (o *Object) Update(tick bool) {}

// Sprite returns the object's current image.
func (o *Object) Sprite() *image.RGBA { return o.img }

// Bounds returns the object's world-space pixel rectangle.
func (o *Object) Bounds() image.Rectangle { return o.rect }

// Layers returns the object's collision layer set.
func (o *Object) Layers() LayerMask { return o.layers }
