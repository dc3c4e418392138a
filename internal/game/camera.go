package game

import "image"

// Camera follows a focus object and extracts the visible viewport from
// the world's composed surface. The float position eases toward the
// focus by a fixed fraction of the remaining distance per update, which
// converges exponentially and never overshoots for smoothing in (0, 1].
type Camera struct {
	world *World

	Pos       Vec
	Smoothing float64
	Focus     WorldObject // nil = static camera, position caller-managed

	viewW, viewH int
}

// NewCamera creates a camera over the world with the given viewport size
// and starting position.
func NewCamera(world *World, viewW, viewH int, pos Vec, focus WorldObject, smoothing float64) *Camera {
	return &Camera{
		world:     world,
		Pos:       pos,
		Smoothing: smoothing,
		Focus:     focus,
		viewW:     viewW,
		viewH:     viewH,
	}
}

// SetViewport changes the viewport size, e.g. on window resize. Takes
// effect on the next Frame call.
func (c *Camera) SetViewport(w, h int) {
	c.viewW, c.viewH = w, h
}

// Viewport returns the current viewport size.
func (c *Camera) Viewport() (int, int) {
	return c.viewW, c.viewH
}

// Update eases the camera toward the centre of the focus object. Without
// a focus the position stays where the caller put it.
func (c *Camera) Update() {
	if c.Focus == nil {
		return
	}
	b := c.Focus.Bounds()
	centre := Vec{
		X: float64(b.Min.X+b.Max.X) / 2,
		Y: float64(b.Min.Y+b.Max.Y) / 2,
	}
	c.Pos = c.Pos.Add(centre.Sub(c.Pos).Mul(c.Smoothing))
}

// Frame extracts the viewport-sized rectangle of the world surface
// centred on the rounded camera position. Area beyond the world surface
// comes out black.
func (c *Camera) Frame() *image.RGBA {
	cx, cy := c.Pos.Round()
	r := image.Rect(
		cx-c.viewW/2, cy-c.viewH/2,
		cx-c.viewW/2+c.viewW, cy-c.viewH/2+c.viewH,
	)
	return CopyRegion(c.world.Surface(), r)
}
