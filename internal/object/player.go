package object

import (
	"math"
	"time"

	"github.com/kamstrup/intmap"

	"github.com/tomz197/cookiecannon/internal/config"
	"github.com/tomz197/cookiecannon/internal/physics"
	"github.com/tomz197/cookiecannon/internal/vec"
)

// PowerupTimer is the state of one timed buff on the player.
type PowerupTimer struct {
	Active    bool
	Remaining time.Duration
}

// Player is the cookie cannon steered by the user.
type Player struct {
	Pos      vec.Vec2
	Vel      vec.Vec2
	Acc      vec.Vec2
	Rotation float64 // radians, 0 points along +X

	Width  float64
	Height float64

	CannonCapacity    float64 // in [0,1]
	Overheat          bool
	OverheatRemaining time.Duration

	Sparkles Sparkles

	powerups *intmap.Map[PowerupType, PowerupTimer]

	// Held intents
	rotateLeft  bool
	rotateRight bool
	thrust      bool
	// Edge intent, consumed by the next update
	firePending bool
}

// NewPlayer creates a player resting at pos with a full cannon.
func NewPlayer(pos vec.Vec2) *Player {
	p := &Player{
		Width:    config.PlayerWidth,
		Height:   config.PlayerHeight,
		powerups: intmap.New[PowerupType, PowerupTimer](len(PowerupTypes)),
	}
	p.Reset(pos)
	return p
}

// Reset puts the player back at pos at rest, refills the cannon and drops
// all powerups. Held intents survive so a key still down keeps working.
func (p *Player) Reset(pos vec.Vec2) {
	p.Pos = pos
	p.Vel = vec.Vec2{}
	p.Acc = vec.Vec2{}
	p.Rotation = 0
	p.CannonCapacity = 1
	p.Overheat = false
	p.OverheatRemaining = 0
	p.firePending = false
	p.powerups.Clear()
	p.Sparkles.Reset()
}

// SetRotateLeft holds or releases counter-clockwise rotation.
func (p *Player) SetRotateLeft(on bool) { p.rotateLeft = on }

// SetRotateRight holds or releases clockwise rotation.
func (p *Player) SetRotateRight(on bool) { p.rotateRight = on }

// SetThrust holds or releases the thruster.
func (p *Player) SetThrust(on bool) { p.thrust = on }

// Fire requests a shot on the next update.
func (p *Player) Fire() { p.firePending = true }

// Thrusting reports whether the thruster is held.
func (p *Player) Thrusting() bool { return p.thrust }

// Update integrates movement, fires a pending shot and advances the cannon
// and powerup countdowns.
func (p *Player) Update(ctx UpdateContext) {
	dt := ctx.Seconds()

	if p.rotateLeft {
		p.Rotation -= config.PlayerRotationSpeed * dt
	}
	if p.rotateRight {
		p.Rotation += config.PlayerRotationSpeed * dt
	}
	if p.thrust {
		p.Acc.Add(vec.FromAngle(p.Rotation, config.PlayerThrust))
	}

	p.Vel.Add(vec.Scale(p.Acc, dt)).Limit(config.PlayerMaxSpeed)
	p.Pos.Add(vec.Scale(p.Vel, dt))
	p.Acc = vec.Vec2{}
	physics.ScreenWrap(&p.Pos, ctx.Bounds)

	p.Sparkles.Emitting = p.thrust
	p.Sparkles.Update(ctx.Delta, ctx.Rand, p.Tail(), p.Rotation)

	cooled := p.tickOverheat(ctx.Delta)
	if p.firePending {
		p.firePending = false
		p.fire(ctx)
	}
	if !p.Overheat && !cooled {
		p.CannonCapacity = min(1, p.CannonCapacity+config.CannonRegenPerFrame)
	}

	p.tickPowerups(ctx.Delta)
}

// tickOverheat counts the overheat down and reports whether it ended now.
func (p *Player) tickOverheat(dt time.Duration) bool {
	if !p.Overheat {
		return false
	}
	p.OverheatRemaining -= dt
	if p.OverheatRemaining > 0 {
		return false
	}
	p.Overheat = false
	p.OverheatRemaining = 0
	p.CannonCapacity = 0
	return true
}

func (p *Player) tickPowerups(dt time.Duration) {
	for _, t := range PowerupTypes {
		timer, ok := p.powerups.Get(t)
		if !ok || !timer.Active {
			continue
		}
		timer.Remaining -= dt
		if timer.Remaining <= 0 {
			p.powerups.Del(t)
			continue
		}
		p.powerups.Put(t, timer)
	}
}

// CanFire reports whether a trigger pull would produce projectiles.
func (p *Player) CanFire() bool {
	return !p.Overheat || p.HasPowerup(UnlimitedCannon)
}

func (p *Player) fire(ctx UpdateContext) {
	if !p.CanFire() {
		return
	}

	speed := config.ProjectileSpeed
	if p.HasPowerup(FastCookies) {
		speed *= config.FastCookieMultiplier
	}
	nose := p.Nose()

	angles := []float64{p.Rotation}
	if p.HasPowerup(TripleShot) {
		angles = append(angles, p.Rotation-config.TripleShotSpread, p.Rotation+config.TripleShotSpread)
	}
	for _, a := range angles {
		ctx.Spawner.Spawn(NewProjectile(ctx.Rand, nose, a, speed))
	}
	ctx.Spawner.ShotFired(len(angles))

	if p.HasPowerup(UnlimitedCannon) {
		return
	}
	p.CannonCapacity -= config.ShotCapacityCost
	if p.CannonCapacity < 0 {
		p.CannonCapacity = 0
		if !p.Overheat {
			p.Overheat = true
			p.OverheatRemaining = config.OverheatDuration
		}
	}
}

// ActivatePowerup turns t on for the full duration, replacing any running
// countdown. Unknown types are ignored.
func (p *Player) ActivatePowerup(t PowerupType) {
	if !t.Valid() {
		return
	}
	p.powerups.Put(t, PowerupTimer{Active: true, Remaining: config.PowerupDuration})
}

// HasPowerup reports whether t is active.
func (p *Player) HasPowerup(t PowerupType) bool {
	timer, ok := p.powerups.Get(t)
	return ok && timer.Active
}

// PowerupState returns the timer for t; inactive types return the zero value.
func (p *Player) PowerupState(t PowerupType) PowerupTimer {
	timer, _ := p.powerups.Get(t)
	return timer
}

// ConsumeShield drops an active shield and reports whether there was one.
func (p *Player) ConsumeShield() bool {
	if !p.HasPowerup(Shield) {
		return false
	}
	p.powerups.Del(Shield)
	return true
}

// Box returns the collision shape.
func (p *Player) Box() physics.OrientedBox {
	return physics.OrientedBox{
		Center:   p.Pos,
		Width:    p.Width,
		Height:   p.Height,
		Rotation: p.Rotation,
	}
}

// Nose is the muzzle point projectiles leave from.
func (p *Player) Nose() vec.Vec2 {
	return vec.Add(p.Pos, vec.FromAngle(p.Rotation, p.Width/2))
}

// Tail is where exhaust sparkles are emitted.
func (p *Player) Tail() vec.Vec2 {
	return vec.Add(p.Pos, vec.FromAngle(p.Rotation+math.Pi, p.Width/2))
}
