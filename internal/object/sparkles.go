package object

import (
	"image/color"
	"math/rand"
	"time"

	"github.com/tomz197/cookiecannon/internal/config"
	"github.com/tomz197/cookiecannon/internal/vec"
)

// Sparkle is a single exhaust particle.
type Sparkle struct {
	Pos      vec.Vec2
	Vel      vec.Vec2
	Lifespan float64 // seconds
	Elapsed  float64
	Color    color.RGBA
}

func (s *Sparkle) alive() bool {
	return s.Elapsed <= s.Lifespan
}

// Sparkles is the exhaust trail behind a thrusting player.
// At most one particle is emitted per update.
type Sparkles struct {
	Particles []Sparkle
	Emitting  bool

	elapsed   time.Duration
	lastSpawn time.Duration
}

// Update advances the trail. pos is the emission point and angle the
// player's heading; particles leave backwards around it.
func (s *Sparkles) Update(dt time.Duration, rng *rand.Rand, pos vec.Vec2, angle float64) {
	s.elapsed += dt
	if s.Emitting && s.elapsed-s.lastSpawn > config.SparkleInterval {
		s.spawn(rng, pos, angle)
		s.lastSpawn = s.elapsed - s.elapsed%config.SparkleInterval
	}

	secs := dt.Seconds()
	kept := s.Particles[:0]
	for _, p := range s.Particles {
		if !p.alive() {
			continue
		}
		p.Pos.Add(vec.Scale(p.Vel, secs))
		p.Elapsed += secs
		kept = append(kept, p)
	}
	s.Particles = kept
}

func (s *Sparkles) spawn(rng *rand.Rand, pos vec.Vec2, angle float64) {
	heading := randRange(rng, angle-config.SparkleAngleVariance, angle+config.SparkleAngleVariance)
	s.Particles = append(s.Particles, Sparkle{
		Pos:      pos,
		Vel:      vec.FromAngle(heading, -config.SparkleSpeed),
		Lifespan: randRange(rng, config.SparkleMinLife, config.SparkleMaxLife),
		Color:    sparkleColors[rng.Intn(len(sparkleColors))],
	})
}

// Reset drops every particle and stops emission.
func (s *Sparkles) Reset() {
	s.Particles = s.Particles[:0]
	s.Emitting = false
	s.elapsed = 0
	s.lastSpawn = 0
}
