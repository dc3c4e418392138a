package game

import "math"

// vecEpsilon is the magnitude below which a vector is treated as zero.
// Guards normalisation against division by a near-zero length.
const vecEpsilon = 1e-5

// Vec is a 2D float vector in screen coordinates (x right, y down).
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns v scaled by s.
func (v Vec) Mul(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Len returns the magnitude of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rotated returns v rotated by the given angle in degrees. With y pointing
// down, positive angles rotate clockwise on screen. Visual rotation of
// sprites uses the opposite sign (see RotateSurface callers) so that a
// positive turn reads the same for velocity and for the sprite.
func (v Vec) Rotated(degrees float64) Vec {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// ScaledToLen returns v stretched or shrunk to the given length. A target
// length <= 0 or a near-zero input vector yields the zero vector.
func (v Vec) ScaledToLen(length float64) Vec {
	if length <= 0 {
		return Vec{}
	}
	l := v.Len()
	if l < vecEpsilon {
		return Vec{}
	}
	return v.Mul(length / l)
}

// Round returns the nearest integer pixel coordinates.
func (v Vec) Round() (int, int) {
	return int(math.Round(v.X)), int(math.Round(v.Y))
}
