package game

import (
	"slices"
	"time"

	"github.com/tomz197/cookiecannon/internal/object"
	"github.com/tomz197/cookiecannon/internal/physics"
	"github.com/tomz197/cookiecannon/internal/vec"
)

// PowerupStatus is the player's timer for one powerup type.
type PowerupStatus struct {
	Type      object.PowerupType
	Active    bool
	Remaining time.Duration
}

// PlayerView is a read-only copy of the player.
type PlayerView struct {
	Pos      vec.Vec2
	Vel      vec.Vec2
	Rotation float64
	Width    float64
	Height   float64
	Nose     vec.Vec2

	Thrusting         bool
	CannonCapacity    float64
	Overheat          bool
	OverheatRemaining time.Duration
	Powerups          []PowerupStatus // one per object.PowerupTypes entry
	Sparkles          []object.Sparkle
}

// HasPowerup reports whether t was active when the view was taken.
func (v PlayerView) HasPowerup(t object.PowerupType) bool {
	for _, p := range v.Powerups {
		if p.Type == t {
			return p.Active
		}
	}
	return false
}

// Snapshot is a read-only copy of the game. Mutating it does not affect the
// simulation.
type Snapshot struct {
	State  State
	Score  int
	Level  int
	Bounds physics.Bounds

	Player      PlayerView
	Enemies     []object.Enemy
	Projectiles []object.Projectile
	Powerups    []object.Powerup
	Splats      []object.Splat
}

// Snapshot copies the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	p := g.player
	s := Snapshot{
		State:  g.state,
		Score:  g.score,
		Level:  g.level,
		Bounds: g.bounds,
		Player: PlayerView{
			Pos:               p.Pos,
			Vel:               p.Vel,
			Rotation:          p.Rotation,
			Width:             p.Width,
			Height:            p.Height,
			Nose:              p.Nose(),
			Thrusting:         p.Thrusting(),
			CannonCapacity:    p.CannonCapacity,
			Overheat:          p.Overheat,
			OverheatRemaining: p.OverheatRemaining,
			Powerups:          make([]PowerupStatus, 0, len(object.PowerupTypes)),
			Sparkles:          slices.Clone(p.Sparkles.Particles),
		},
		Enemies:     copyActive(g.enemies),
		Projectiles: copyActive(g.projectiles),
		Powerups:    copyActive(g.powerups),
		Splats:      copyActive(g.splats),
	}
	for _, t := range object.PowerupTypes {
		timer := p.PowerupState(t)
		s.Player.Powerups = append(s.Player.Powerups, PowerupStatus{
			Type:      t,
			Active:    timer.Active,
			Remaining: timer.Remaining,
		})
	}
	for i := range s.Splats {
		s.Splats[i].Particles = slices.Clone(s.Splats[i].Particles)
	}
	return s
}

// copyActive copies the active entities by value.
func copyActive[E any, P interface {
	*E
	object.Entity
}](entities []P) []E {
	out := make([]E, 0, len(entities))
	for _, e := range entities {
		if e.IsActive() {
			out = append(out, *e)
		}
	}
	return out
}
