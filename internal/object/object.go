package object

import (
	"math/rand"
	"time"

	"github.com/tomz197/cookiecannon/internal/config"
	"github.com/tomz197/cookiecannon/internal/physics"
)

// Spawner is the port through which entities hand new work back to their
// owner during an update. Spawned entities are queued and only join their
// collection after the update pass.
type Spawner interface {
	Spawn(e Entity)
	// ShotFired is called once per trigger pull that produced projectiles.
	ShotFired(shots int)
}

// UpdateContext provides all the information an entity needs during update.
type UpdateContext struct {
	Delta   time.Duration
	Bounds  physics.Bounds
	Spawner Spawner
	Rand    *rand.Rand
}

// Seconds returns the frame delta in seconds.
func (c UpdateContext) Seconds() float64 {
	return c.Delta.Seconds()
}

// Entity is a simulated object held in one of the game's collections.
//
// Once IsActive reports false the entity is frozen: Update leaves every field
// untouched, and the owner drops it before the next collision pass.
type Entity interface {
	Update(ctx UpdateContext)
	IsActive() bool
	Deactivate()
}

// lifecycle is embedded by entities to share the active flag.
type lifecycle struct {
	inactive bool
}

// IsActive reports whether the entity still takes part in the simulation.
func (l *lifecycle) IsActive() bool {
	return !l.inactive
}

// Deactivate removes the entity from the simulation.
func (l *lifecycle) Deactivate() {
	l.inactive = true
}

// Purge drops inactive entities in place, keeping order.
func Purge[E Entity](entities []E) []E {
	kept := entities[:0] // reuse backing array
	for _, e := range entities {
		if e.IsActive() {
			kept = append(kept, e)
		}
	}
	clear(entities[len(kept):])
	return kept
}

// randRange returns a uniform value in [lo, hi).
func randRange(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// ShouldRenderBlink returns true if an object with remaining timed state
// should be rendered this frame (for blinking effect).
// Returns true always if remainingTime <= 0.
func ShouldRenderBlink(remainingTime float64, frequency float64) bool {
	if remainingTime <= 0 {
		return true
	}
	phase := int(remainingTime * frequency)
	return phase%2 != 0
}

// OverheatLabelVisible reports whether the flashing OVERHEAT label shows,
// toggling every config.OverheatFlashInterval of the overheat countdown.
func OverheatLabelVisible(remaining time.Duration) bool {
	return int(remaining/config.OverheatFlashInterval)%2 == 0
}
