package game

import (
	"image"
	"math"
)

// Default physics scalars for a bare entity. Specific vehicles override
// friction in their constructors.
const (
	defaultFriction = 0.006
	defaultMass     = 1.0
)

// Entity is an object with physics: sub-pixel position, velocity,
// heading and a silhouette mask for pixel-accurate collision.
//
// TruePos is the authoritative position; the integer rect is re-derived
// from it every tick so movement below one pixel per tick accumulates
// instead of vanishing. Velocity is in pixels per tick, Angle in degrees
// with 0 facing east. The mask is rebuilt on every effective turn.
type Entity struct {
	Object

	TruePos  Vec
	Velocity Vec
	Angle    float64
	Friction float64
	Mass     float64

	original *image.RGBA // unrotated sprite, source for every turn
	mask     *Mask
}

// NewEntity creates a physics entity at pos. Scale semantics match
// NewObject; the scaled image becomes the entity's unrotated original.
func NewEntity(pos Vec, layers LayerMask, img *image.RGBA, scale Scale) (*Entity, error) {
	obj, err := NewObject(pos, layers, img, scale)
	if err != nil {
		return nil, err
	}
	e := &Entity{
		Object:   *obj,
		TruePos:  pos,
		Friction: defaultFriction,
		Mass:     defaultMass,
	}
	e.original = e.img
	e.mask = MaskFromSurface(e.img)
	return e, nil
}

// Update advances the entity by one tick: integrate position, re-derive
// the centred pixel rect, then apply friction. Friction scales with speed
// above 3 px/tick so fast entities shed speed harder, and snaps the
// velocity to exactly zero when one tick of friction would reverse it.
func (e *Entity) Update(tick bool) {
	if !tick {
		return
	}

	e.TruePos = e.TruePos.Add(e.Velocity)
	e.recentre()

	speed := e.Velocity.Len()
	if speed > 0 && e.Friction > 0 {
		f := math.Max(e.Friction*e.Mass, e.Friction*e.Mass*speed/3)
		if speed-f <= 0 {
			e.Velocity = Vec{}
		} else {
			e.Brake(f)
		}
	}
}

// recentre moves the pixel rect so its centre sits at the rounded true
// position, keeping the current sprite size.
func (e *Entity) recentre() {
	cx, cy := e.TruePos.Round()
	b := e.img.Bounds()
	w, h := b.Dx(), b.Dy()
	e.rect = image.Rect(cx-w/2, cy-h/2, cx-w/2+w, cy-h/2+h)
}

// Accelerate adds a velocity change of the given magnitude along the
// entity's current heading. There is no top speed.
func (e *Entity) Accelerate(magnitude float64) {
	e.Velocity = e.Velocity.Add(Vec{X: magnitude}.Rotated(e.Angle))
}

// Brake shrinks the velocity by the given magnitude without changing its
// direction, clamping at zero. Near-zero velocities go straight to zero
// rather than being normalised.
func (e *Entity) Brake(magnitude float64) {
	if e.Velocity.Len() > vecEpsilon {
		e.Velocity = e.Velocity.ScaledToLen(e.Velocity.Len() - magnitude)
	} else {
		e.Velocity = Vec{}
	}
}

// Turn rotates the entity by delta degrees: heading, velocity and sprite
// stay locked together. A stationary entity cannot pivot, and an
// effectively zero delta skips the sprite resample entirely since
// rotation is the expensive part of the operation. The sprite is always
// re-rotated from the original, so repeated turns do not degrade it.
func (e *Entity) Turn(delta float64) {
	if e.Velocity.Len() <= vecEpsilon {
		return
	}
	if math.Abs(delta) < 1e-9 {
		return
	}
	e.Angle += delta
	e.Velocity = e.Velocity.Rotated(delta)
	e.img = RotateSurface(e.original, -e.Angle)
	b := e.img.Bounds()
	e.rect = image.Rect(e.rect.Min.X, e.rect.Min.Y, e.rect.Min.X+b.Dx(), e.rect.Min.Y+b.Dy())
	e.mask = MaskFromSurface(e.img)
}

// Mask returns the entity's current silhouette mask.
func (e *Entity) Mask() *Mask { return e.mask }

// CollidesWith reports whether e and other overlap pixel-for-pixel at
// their current positions. Objects on disjoint collision layers never
// collide. Pure query: response (stop, bounce, damage) is the caller's
// policy.
func (e *Entity) CollidesWith(other *Entity) bool {
	if !e.layers.Intersects(other.layers) {
		return false
	}
	off := other.rect.Min.Sub(e.rect.Min)
	return e.mask.Overlap(other.mask, off.X, off.Y)
}
