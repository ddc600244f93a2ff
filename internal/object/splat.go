package object

import (
	"math"
	"time"

	"github.com/tomz197/cookiecannon/internal/config"
	"github.com/tomz197/cookiecannon/internal/vec"
)

// SplatParticle is one droplet of a splat.
type SplatParticle struct {
	Pos vec.Vec2
	Vel vec.Vec2
}

// Splat is a short radial burst left where something was squashed.
type Splat struct {
	lifecycle

	Pos       vec.Vec2
	Palette   Palette
	Radius    float64 // per particle
	Particles []SplatParticle
	Elapsed   time.Duration
	Lifetime  time.Duration
}

// NewSplat creates a burst of particles at evenly spaced angles around pos.
func NewSplat(pos vec.Vec2, palette Palette) *Splat {
	s := &Splat{
		Pos:       pos,
		Palette:   palette,
		Radius:    config.SplatParticleRadius,
		Particles: make([]SplatParticle, config.SplatParticleCount),
		Lifetime:  config.SplatLifetime,
	}
	step := 2 * math.Pi / config.SplatParticleCount
	for i := range s.Particles {
		s.Particles[i] = SplatParticle{
			Pos: pos,
			Vel: vec.FromAngle(float64(i)*step, config.SplatParticleSpeed),
		}
	}
	return s
}

// Update moves the particles and expires the splat once it outlived
// its lifetime.
func (s *Splat) Update(ctx UpdateContext) {
	if !s.IsActive() {
		return
	}
	dt := ctx.Seconds()
	for i := range s.Particles {
		s.Particles[i].Pos.Add(vec.Scale(s.Particles[i].Vel, dt))
	}
	s.Elapsed += ctx.Delta
	if s.Elapsed > s.Lifetime {
		s.Deactivate()
	}
}

// Progress returns elapsed/lifetime in [0,1], for fading.
func (s *Splat) Progress() float64 {
	if s.Lifetime <= 0 {
		return 1
	}
	return min(1, float64(s.Elapsed)/float64(s.Lifetime))
}
