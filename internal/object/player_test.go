package object

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/cookiecannon/internal/config"
	"github.com/tomz197/cookiecannon/internal/vec"
)

const frame = 16 * time.Millisecond

func TestNewPlayerAtRest(t *testing.T) {
	p := NewPlayer(testBounds.Center())
	assert.Equal(t, vec.New(640, 360), p.Pos)
	assert.True(t, p.Vel.IsZero())
	assert.Equal(t, 1.0, p.CannonCapacity)
	assert.False(t, p.Overheat)
	for _, pt := range PowerupTypes {
		assert.False(t, p.HasPowerup(pt))
	}
}

func TestPlayerRotatesAndThrusts(t *testing.T) {
	sp := &fakeSpawner{}
	p := NewPlayer(testBounds.Center())

	p.SetRotateRight(true)
	p.Update(newCtx(250*time.Millisecond, sp))
	assert.InDelta(t, config.PlayerRotationSpeed*0.25, p.Rotation, 1e-9)

	p.SetRotateRight(false)
	p.SetRotateLeft(true)
	p.Update(newCtx(250*time.Millisecond, sp))
	assert.InDelta(t, 0.0, p.Rotation, 1e-9)

	p.SetRotateLeft(false)
	p.SetThrust(true)
	p.Update(newCtx(100*time.Millisecond, sp))
	assert.InDelta(t, config.PlayerThrust*0.1, p.Vel.X, 1e-9)
	assert.InDelta(t, 640+config.PlayerThrust*0.1*0.1, p.Pos.X, 1e-9)
	assert.True(t, p.Acc.IsZero(), "acceleration resets every update")
}

func TestPlayerSpeedIsClamped(t *testing.T) {
	p := NewPlayer(testBounds.Center())
	p.SetThrust(true)
	for range 100 {
		p.Update(newCtx(frame, &fakeSpawner{}))
	}
	assert.InDelta(t, config.PlayerMaxSpeed, p.Vel.Mag(), 1e-9)
}

func TestPlayerKeepsMomentum(t *testing.T) {
	p := NewPlayer(testBounds.Center())
	p.Vel = vec.New(100, 0)
	p.Update(newCtx(time.Second, &fakeSpawner{}))
	assert.Equal(t, vec.New(100, 0), p.Vel)
	assert.InDelta(t, 740.0, p.Pos.X, 1e-9)
}

func TestFireSpawnsFromNose(t *testing.T) {
	sp := &fakeSpawner{}
	p := NewPlayer(testBounds.Center())
	p.Fire()
	p.Update(newCtx(0, sp))

	shots := sp.projectiles()
	require.Len(t, shots, 1)
	assert.Equal(t, []int{1}, sp.shots)
	assert.Equal(t, vec.New(665, 360), shots[0].Pos)
	assert.InDelta(t, config.ProjectileSpeed, shots[0].Vel.X, 1e-9)
	assert.InDelta(t, 1-config.ShotCapacityCost+config.CannonRegenPerFrame, p.CannonCapacity, 1e-9)
}

func TestFireIsEdgeTriggered(t *testing.T) {
	sp := &fakeSpawner{}
	p := NewPlayer(testBounds.Center())
	p.Fire()
	p.Update(newCtx(frame, sp))
	p.Update(newCtx(frame, sp))
	assert.Len(t, sp.projectiles(), 1)
}

func TestTripleShotAndFastCookies(t *testing.T) {
	sp := &fakeSpawner{}
	p := NewPlayer(testBounds.Center())
	p.ActivatePowerup(TripleShot)
	p.ActivatePowerup(FastCookies)
	p.Fire()
	p.Update(newCtx(0, sp))

	shots := sp.projectiles()
	require.Len(t, shots, 3)
	assert.Equal(t, []int{3}, sp.shots)
	wantAngles := []float64{0, -config.TripleShotSpread, config.TripleShotSpread}
	for i, s := range shots {
		assert.InDelta(t, config.ProjectileSpeed*config.FastCookieMultiplier, s.Vel.Mag(), 1e-9)
		assert.InDelta(t, wantAngles[i], math.Atan2(s.Vel.Y, s.Vel.X), 1e-9)
	}
	assert.InDelta(t, 0.9+config.CannonRegenPerFrame, p.CannonCapacity, 1e-9, "one trigger pull costs one charge")
}

func TestOverheatCycle(t *testing.T) {
	sp := &fakeSpawner{}
	p := NewPlayer(testBounds.Center())
	p.CannonCapacity = 0.05

	p.Fire()
	p.Update(newCtx(0, sp))
	require.True(t, p.Overheat, "overheat starts on the update that drained the cannon")
	assert.Equal(t, 0.0, p.CannonCapacity)
	assert.Equal(t, config.OverheatDuration, p.OverheatRemaining)
	require.Len(t, sp.projectiles(), 1)

	// Overheated: trigger pulls do nothing and nothing regenerates.
	p.Fire()
	p.Update(newCtx(time.Second, sp))
	assert.Len(t, sp.projectiles(), 1)
	assert.Equal(t, []int{1}, sp.shots)
	assert.Equal(t, 0.0, p.CannonCapacity)

	p.Update(newCtx(4*time.Second, sp))
	assert.False(t, p.Overheat)
	assert.Equal(t, 0.0, p.CannonCapacity)

	p.Update(newCtx(frame, sp))
	assert.InDelta(t, config.CannonRegenPerFrame, p.CannonCapacity, 1e-12)
}

func TestCapacityStaysInRange(t *testing.T) {
	sp := &fakeSpawner{}
	p := NewPlayer(testBounds.Center())
	for i := range 600 {
		if i%3 == 0 {
			p.Fire()
		}
		p.Update(newCtx(frame, sp))
		require.GreaterOrEqual(t, p.CannonCapacity, 0.0)
		require.LessOrEqual(t, p.CannonCapacity, 1.0)
	}
}

func TestUnlimitedCannonIgnoresHeat(t *testing.T) {
	sp := &fakeSpawner{}
	p := NewPlayer(testBounds.Center())
	p.Overheat = true
	p.OverheatRemaining = config.OverheatDuration
	p.CannonCapacity = 0
	p.ActivatePowerup(UnlimitedCannon)

	p.Fire()
	p.Update(newCtx(0, sp))
	assert.Len(t, sp.projectiles(), 1)
	assert.Equal(t, 0.0, p.CannonCapacity)
	assert.True(t, p.Overheat)
}

func TestPowerupExpiresAndRestarts(t *testing.T) {
	p := NewPlayer(testBounds.Center())
	p.ActivatePowerup(Shield)

	p.Update(newCtx(6*time.Second, &fakeSpawner{}))
	require.True(t, p.HasPowerup(Shield))
	assert.Equal(t, 4*time.Second, p.PowerupState(Shield).Remaining)

	p.ActivatePowerup(Shield)
	assert.Equal(t, config.PowerupDuration, p.PowerupState(Shield).Remaining)

	p.Update(newCtx(9*time.Second, &fakeSpawner{}))
	assert.True(t, p.HasPowerup(Shield))
	p.Update(newCtx(time.Second, &fakeSpawner{}))
	assert.False(t, p.HasPowerup(Shield))
	assert.Equal(t, PowerupTimer{}, p.PowerupState(Shield))
}

func TestActivateUnknownPowerupIsNoop(t *testing.T) {
	p := NewPlayer(testBounds.Center())
	p.ActivatePowerup(PowerupType(-1))
	p.ActivatePowerup(PowerupType(17))
	for _, pt := range PowerupTypes {
		assert.False(t, p.HasPowerup(pt))
	}
	assert.False(t, p.HasPowerup(PowerupType(17)))
}

func TestConsumeShield(t *testing.T) {
	p := NewPlayer(testBounds.Center())
	assert.False(t, p.ConsumeShield())

	p.ActivatePowerup(Shield)
	assert.True(t, p.ConsumeShield())
	assert.False(t, p.HasPowerup(Shield))
	assert.False(t, p.ConsumeShield())
}

func TestResetClearsTimedState(t *testing.T) {
	p := NewPlayer(testBounds.Center())
	p.Pos = vec.New(1, 1)
	p.Vel = vec.New(50, 50)
	p.Rotation = 2
	p.CannonCapacity = 0
	p.Overheat = true
	p.OverheatRemaining = time.Second
	p.ActivatePowerup(TripleShot)
	p.Fire()

	p.Reset(testBounds.Center())

	assert.Equal(t, vec.New(640, 360), p.Pos)
	assert.True(t, p.Vel.IsZero())
	assert.Zero(t, p.Rotation)
	assert.Equal(t, 1.0, p.CannonCapacity)
	assert.False(t, p.Overheat)
	assert.Zero(t, p.OverheatRemaining)
	assert.False(t, p.HasPowerup(TripleShot))

	sp := &fakeSpawner{}
	p.Update(newCtx(frame, sp))
	assert.Empty(t, sp.spawned, "a pending shot does not survive a reset")
}

func TestPlayerBoxFollowsTransform(t *testing.T) {
	p := NewPlayer(vec.New(100, 100))
	p.Rotation = math.Pi / 2
	box := p.Box()
	assert.Equal(t, vec.New(100, 100), box.Center)
	assert.Equal(t, config.PlayerWidth, box.Width)
	assert.Equal(t, config.PlayerHeight, box.Height)
	assert.InDelta(t, 100.0, p.Nose().X, 1e-9)
	assert.InDelta(t, 125.0, p.Nose().Y, 1e-9)
}
