package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/cookiecannon/internal/config"
	"github.com/tomz197/cookiecannon/internal/physics"
	"github.com/tomz197/cookiecannon/internal/vec"
)

// Enemy is a drifting circular target that splits when destroyed.
type Enemy struct {
	lifecycle

	Pos          vec.Vec2
	Vel          vec.Vec2
	Stage        int     // 1..EnemyFinalStage
	Scale        float64 // halves on every split
	Radius       float64
	RequiredHits int
}

// NewEnemy creates an enemy at pos with a random heading and speed.
func NewEnemy(rng *rand.Rand, pos vec.Vec2, stage int, scale float64) *Enemy {
	speed := randRange(rng, config.EnemyMinSpeed, config.EnemyMaxSpeed)
	heading := rng.Float64() * 2 * math.Pi
	return &Enemy{
		Pos:          pos,
		Vel:          vec.FromAngle(heading, speed),
		Stage:        stage,
		Scale:        scale,
		Radius:       config.EnemyBaseSize * scale,
		RequiredHits: RandomRequiredHits(rng),
	}
}

// RandomRequiredHits draws 1, 2 or 3 with probability 0.80, 0.15, 0.05.
func RandomRequiredHits(rng *rand.Rand) int {
	r := rng.Float64()
	switch {
	case r > config.TwoHitEnemyChance+config.ThreeHitEnemyChance:
		return 1
	case r > config.ThreeHitEnemyChance:
		return 2
	default:
		return 3
	}
}

// Update drifts the enemy and wraps it around the play area.
func (e *Enemy) Update(ctx UpdateContext) {
	if !e.IsActive() {
		return
	}
	e.Pos.Add(vec.Scale(e.Vel, ctx.Seconds()))
	physics.ScreenWrap(&e.Pos, ctx.Bounds)
}

// Circle returns the collision shape.
func (e *Enemy) Circle() physics.Circle {
	return physics.Circle{Center: e.Pos, Radius: e.Radius}
}

// Palette returns the colors matching the hits left.
func (e *Enemy) Palette() Palette {
	return EnemyPalette(e.RequiredHits)
}

// Hit registers one projectile hit and reports whether the enemy is now
// destroyed. Inactive enemies ignore hits.
func (e *Enemy) Hit() bool {
	if !e.IsActive() || e.RequiredHits <= 0 {
		return false
	}
	e.RequiredHits--
	return e.RequiredHits == 0
}

// DestroyResult describes what a destroyed enemy left behind.
type DestroyResult struct {
	Children int
	Splatted bool
	Powerup  *Powerup
}

// Destroy deactivates the enemy and spawns its remains: two smaller
// children below the final stage, a splat (and sometimes a powerup) at it.
func (e *Enemy) Destroy(rng *rand.Rand, sp Spawner) DestroyResult {
	e.Deactivate()

	var res DestroyResult
	if e.Stage < config.EnemyFinalStage {
		scale := e.Scale / config.EnemySplitFactor
		for range config.EnemySplitFactor {
			sp.Spawn(NewEnemy(rng, e.Pos, e.Stage+1, scale))
			res.Children++
		}
		return res
	}

	sp.Spawn(NewSplat(e.Pos, EnemySplatPalette))
	res.Splatted = true
	if rng.Float64() < config.PowerupDropChance {
		res.Powerup = NewPowerup(rng, e.Pos, RandomPowerupType(rng))
		sp.Spawn(res.Powerup)
	}
	return res
}
