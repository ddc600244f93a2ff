package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/cookiecannon/internal/config"
	"github.com/tomz197/cookiecannon/internal/physics"
	"github.com/tomz197/cookiecannon/internal/vec"
)

// Projectile is a cookie fired by the player.
type Projectile struct {
	lifecycle

	Pos           vec.Vec2
	Vel           vec.Vec2
	Radius        float64
	Rotation      float64 // visual spin only
	RotationSpeed float64 // radians per second
}

// NewProjectile creates a projectile at pos travelling along angle.
func NewProjectile(rng *rand.Rand, pos vec.Vec2, angle, speed float64) *Projectile {
	return &Projectile{
		Pos:           pos,
		Vel:           vec.FromAngle(angle, speed),
		Radius:        config.ProjectileRadius,
		RotationSpeed: randRange(rng, -2*math.Pi, 2*math.Pi),
	}
}

// Update moves the projectile. Projectiles do not wrap: one strictly outside
// the play area is deactivated.
func (p *Projectile) Update(ctx UpdateContext) {
	if !p.IsActive() {
		return
	}
	dt := ctx.Seconds()
	p.Pos.Add(vec.Scale(p.Vel, dt))
	p.Rotation += p.RotationSpeed * dt

	if !ctx.Bounds.Contains(p.Pos) {
		p.Deactivate()
	}
}

// Circle returns the collision shape.
func (p *Projectile) Circle() physics.Circle {
	return physics.Circle{Center: p.Pos, Radius: p.Radius}
}
