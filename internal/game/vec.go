package game

import "github.com/go-gl/mathgl/mgl64"

// Vec is a 2D quantity: a position, a size or a velocity.
type Vec struct {
	X, Y float64
}

func (v Vec) gl() mgl64.Vec2 { return mgl64.Vec2{v.X, v.Y} }

func fromGL(g mgl64.Vec2) Vec { return Vec{X: g[0], Y: g[1]} }

// Len returns the magnitude of v.
func (v Vec) Len() float64 {
	return v.gl().Len()
}

// SetLen rescales v to length l, keeping its direction.
// A zero vector has no direction and ends up with NaN components.
func (v *Vec) SetLen(l float64) {
	*v = fromGL(v.gl().Mul(l / v.Len()))
}

func (v Vec) Add(o Vec) Vec {
	return fromGL(v.gl().Add(o.gl()))
}

func (v Vec) Scale(f float64) Vec {
	return fromGL(v.gl().Mul(f))
}

// IsZero reports whether both components are exactly zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
