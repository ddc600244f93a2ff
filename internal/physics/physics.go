// Package physics provides play-area wrapping and collision predicates.
package physics

import (
	"math"

	"github.com/tomz197/cookiecannon/internal/vec"
)

// Bounds is the size of the play area. The area spans [0,Width]x[0,Height].
type Bounds struct {
	Width  float64
	Height float64
}

// Center returns the middle of the play area.
func (b Bounds) Center() vec.Vec2 {
	return vec.New(b.Width/2, b.Height/2)
}

// Contains reports whether p lies inside the play area, edges included.
func (b Bounds) Contains(p vec.Vec2) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}

// ScreenWrap snaps a position that left the play area to the opposite edge.
//
// This is a single-step correction, not modulo arithmetic: a position far
// outside is snapped once to 0 or to the far edge. Each of the two checks
// corrects at most one axis, X taking priority, so a corner exit needs two
// calls to settle both coordinates.
func ScreenWrap(p *vec.Vec2, b Bounds) {
	if p.X > b.Width {
		p.X = 0
	} else if p.Y > b.Height {
		p.Y = 0
	}
	if p.X < 0 {
		p.X = b.Width
	} else if p.Y < 0 {
		p.Y = b.Height
	}
}

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Circle is a collision circle.
type Circle struct {
	Center vec.Vec2
	Radius float64
}

// OrientedBox is a rectangle rotated around its center.
type OrientedBox struct {
	Center   vec.Vec2
	Width    float64
	Height   float64
	Rotation float64 // radians
}

// CirclesCollide reports whether two circles touch or overlap.
func CirclesCollide(a, b Circle) bool {
	r := a.Radius + b.Radius
	return DistanceSquared(a.Center.X, a.Center.Y, b.Center.X, b.Center.Y) <= r*r
}

// OBBCircleCollide reports whether a rotated rectangle and a circle overlap.
// The circle center is moved into the box's local frame, clamped to the
// half-extents, and the clamped point is tested against the radius.
func OBBCircleCollide(box OrientedBox, c Circle) bool {
	local := vec.Sub(c.Center, box.Center).Rotated(-box.Rotation)

	hw := box.Width / 2
	hh := box.Height / 2
	closest := vec.New(clamp(local.X, -hw, hw), clamp(local.Y, -hh, hh))

	return DistanceSquared(local.X, local.Y, closest.X, closest.Y) <= c.Radius*c.Radius
}

// Corners returns the box corners in world space, counter-clockwise from the
// front-right corner.
func (b OrientedBox) Corners() [4]vec.Vec2 {
	hw := b.Width / 2
	hh := b.Height / 2
	local := [4]vec.Vec2{
		vec.New(hw, -hh),
		vec.New(hw, hh),
		vec.New(-hw, hh),
		vec.New(-hw, -hh),
	}
	var out [4]vec.Vec2
	for i, p := range local {
		out[i] = vec.Add(b.Center, p.Rotated(b.Rotation))
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
