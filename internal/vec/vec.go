// Package vec provides a small 2D vector type used by the simulation.
package vec

import "math"

// Vec2 is a 2D vector. Angles follow the math convention: 0 points along +X
// and positive angles turn counter-clockwise.
//
// Pointer-receiver methods mutate the receiver and return it for chaining.
// The package-level functions of the same name return a new vector.
type Vec2 struct {
	X, Y float64
}

// New returns the vector (x, y).
func New(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle returns (cos θ·length, sin θ·length).
func FromAngle(theta, length float64) Vec2 {
	return Vec2{X: math.Cos(theta) * length, Y: math.Sin(theta) * length}
}

// Unit returns the unit vector pointing at theta.
func Unit(theta float64) Vec2 {
	return FromAngle(theta, 1)
}

// Add returns a + b.
func Add(a, b Vec2) Vec2 {
	return Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns a - b.
func Sub(a, b Vec2) Vec2 {
	return Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scale returns v * factor.
func Scale(v Vec2, factor float64) Vec2 {
	return Vec2{X: v.X * factor, Y: v.Y * factor}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	return Sub(a, b).Mag()
}

// Add adds o to v in place.
func (v *Vec2) Add(o Vec2) *Vec2 {
	v.X += o.X
	v.Y += o.Y
	return v
}

// Sub subtracts o from v in place.
func (v *Vec2) Sub(o Vec2) *Vec2 {
	v.X -= o.X
	v.Y -= o.Y
	return v
}

// Scale multiplies v by factor in place.
func (v *Vec2) Scale(factor float64) *Vec2 {
	v.X *= factor
	v.Y *= factor
	return v
}

// Normalize scales v to unit length in place. A zero vector is left as is.
func (v *Vec2) Normalize() *Vec2 {
	m := v.Mag()
	if m == 0 {
		return v
	}
	return v.Scale(1 / m)
}

// SetMag rescales v to the given length. A zero vector stays zero.
func (v *Vec2) SetMag(length float64) *Vec2 {
	return v.Normalize().Scale(length)
}

// Limit caps the magnitude of v at limit.
func (v *Vec2) Limit(limit float64) *Vec2 {
	if v.MagSq() > limit*limit {
		v.SetMag(limit)
	}
	return v
}

// Mag returns the length of v.
func (v Vec2) Mag() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// MagSq returns the squared length of v.
func (v Vec2) MagSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Rotated returns v rotated by theta radians around the origin.
func (v Vec2) Rotated(theta float64) Vec2 {
	sin, cos := math.Sincos(theta)
	return Vec2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// Copy returns a detached copy of v.
func (v Vec2) Copy() Vec2 {
	return v
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
