package object

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"

	"github.com/tomz197/cookiecannon/internal/config"
	"github.com/tomz197/cookiecannon/internal/physics"
	"github.com/tomz197/cookiecannon/internal/vec"
)

type fakeSpawner struct {
	spawned []Entity
	shots   []int
}

func (f *fakeSpawner) Spawn(e Entity)      { f.spawned = append(f.spawned, e) }
func (f *fakeSpawner) ShotFired(shots int) { f.shots = append(f.shots, shots) }

func (f *fakeSpawner) projectiles() []*Projectile {
	var out []*Projectile
	for _, e := range f.spawned {
		if p, ok := e.(*Projectile); ok {
			out = append(out, p)
		}
	}
	return out
}

var testBounds = physics.Bounds{Width: config.WorldWidth, Height: config.WorldHeight}

func newCtx(dt time.Duration, sp *fakeSpawner) UpdateContext {
	return UpdateContext{
		Delta:   dt,
		Bounds:  testBounds,
		Spawner: sp,
		Rand:    rand.New(rand.NewSource(1)),
	}
}

func TestPurgeKeepsOrder(t *testing.T) {
	a, b, c := &Projectile{}, &Projectile{}, &Projectile{}
	b.Deactivate()

	got := Purge([]*Projectile{a, b, c})
	require.Len(t, got, 2)
	assert.Same(t, a, got[0])
	assert.Same(t, c, got[1])
}

func TestInactiveEntitiesDoNotMove(t *testing.T) {
	ctx := newCtx(time.Second, &fakeSpawner{})
	e := &Enemy{Pos: vec.New(10, 10), Vel: vec.New(5, 5)}
	p := &Projectile{Pos: vec.New(10, 10), Vel: vec.New(5, 5)}
	s := NewSplat(vec.New(10, 10), EnemySplatPalette)
	e.Deactivate()
	p.Deactivate()
	s.Deactivate()

	e.Update(ctx)
	p.Update(ctx)
	s.Update(ctx)

	assert.Equal(t, vec.New(10, 10), e.Pos)
	assert.Equal(t, vec.New(10, 10), p.Pos)
	assert.Zero(t, s.Elapsed)
}

func TestEnemyWraps(t *testing.T) {
	e := &Enemy{Pos: vec.New(1275, 300), Vel: vec.New(100, 0)}
	e.Update(newCtx(100*time.Millisecond, &fakeSpawner{}))
	assert.Equal(t, 0.0, e.Pos.X)
	assert.Equal(t, 300.0, e.Pos.Y)
}

func TestEnemyHitCountsDown(t *testing.T) {
	e := &Enemy{RequiredHits: 2}
	assert.False(t, e.Hit())
	assert.Equal(t, 1, e.RequiredHits)
	assert.True(t, e.Hit())
	assert.Equal(t, 0, e.RequiredHits)
}

func TestEnemySplitsBelowFinalStage(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sp := &fakeSpawner{}
	parent := NewEnemy(rng, vec.New(100, 200), 1, 1)

	res := parent.Destroy(rng, sp)

	assert.False(t, parent.IsActive())
	assert.Equal(t, 2, res.Children)
	assert.False(t, res.Splatted)
	require.Len(t, sp.spawned, 2)
	for _, s := range sp.spawned {
		child, ok := s.(*Enemy)
		require.True(t, ok)
		assert.Equal(t, 2, child.Stage)
		assert.Equal(t, 0.5, child.Scale)
		assert.Equal(t, config.EnemyBaseSize*0.5, child.Radius)
		assert.Equal(t, vec.New(100, 200), child.Pos)
		assert.GreaterOrEqual(t, child.RequiredHits, 1)
		assert.LessOrEqual(t, child.RequiredHits, 3)
		speed := child.Vel.Mag()
		assert.GreaterOrEqual(t, speed, config.EnemyMinSpeed)
		assert.LessOrEqual(t, speed, config.EnemyMaxSpeed)
	}
}

func TestFinalStageEnemySplats(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	const trials = 10000
	drops := 0
	for range trials {
		sp := &fakeSpawner{}
		e := NewEnemy(rng, vec.New(50, 50), config.EnemyFinalStage, 0.25)
		res := e.Destroy(rng, sp)

		require.True(t, res.Splatted)
		require.Zero(t, res.Children)
		for _, s := range sp.spawned {
			_, isEnemy := s.(*Enemy)
			require.False(t, isEnemy)
		}
		splat, ok := sp.spawned[0].(*Splat)
		require.True(t, ok)
		require.Equal(t, EnemySplatPalette, splat.Palette)
		if res.Powerup != nil {
			require.Len(t, sp.spawned, 2)
			require.True(t, res.Powerup.Type.Valid())
			drops++
		}
	}
	assert.InDelta(t, config.PowerupDropChance, float64(drops)/trials, 0.02)
}

func TestRequiredHitsDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	const trials = 10000
	counts := map[int]int{}
	for range trials {
		counts[RandomRequiredHits(rng)]++
	}
	assert.Len(t, counts, 3)
	assert.InDelta(t, 0.80, float64(counts[1])/trials, 0.02)
	assert.InDelta(t, 0.15, float64(counts[2])/trials, 0.02)
	assert.InDelta(t, 0.05, float64(counts[3])/trials, 0.02)
}

func TestEnemyPaletteByHits(t *testing.T) {
	assert.Equal(t, enemyPalettes[0], EnemyPalette(1))
	assert.Equal(t, enemyPalettes[2], EnemyPalette(3))
	assert.Equal(t, enemyPalettes[0], EnemyPalette(0))
	assert.Equal(t, enemyPalettes[2], EnemyPalette(9))
}

func TestProjectileLeavesBounds(t *testing.T) {
	ctx := newCtx(10*time.Millisecond, &fakeSpawner{})
	p := NewProjectile(ctx.Rand, vec.New(1270, 360), 0, 600)

	p.Update(ctx)
	assert.True(t, p.IsActive())
	assert.InDelta(t, 1276.0, p.Pos.X, 1e-9)

	p.Update(ctx)
	assert.False(t, p.IsActive())
	assert.InDelta(t, 1282.0, p.Pos.X, 1e-9, "projectiles do not wrap")
}

func TestProjectileOnEdgeStaysActive(t *testing.T) {
	ctx := newCtx(time.Second, &fakeSpawner{})
	p := &Projectile{Pos: vec.New(1270, 0), Vel: vec.New(10, 0)}
	p.Update(ctx)
	assert.True(t, p.IsActive())

	p.Update(ctx)
	assert.False(t, p.IsActive())
}

func TestProjectileSpinRange(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for range 1000 {
		p := NewProjectile(rng, vec.Vec2{}, 0, 1)
		require.GreaterOrEqual(t, p.RotationSpeed, -2*math.Pi)
		require.Less(t, p.RotationSpeed, 2*math.Pi)
	}
}

func TestPowerupLostOutsideBounds(t *testing.T) {
	p := &Powerup{Type: Shield, Pos: vec.New(5, 5), Vel: vec.New(0, -100), Radius: config.PowerupRadius}
	p.Update(newCtx(100*time.Millisecond, &fakeSpawner{}))
	assert.False(t, p.IsActive())
}

func TestPowerupTypeLookups(t *testing.T) {
	assert.Equal(t, "TS", TripleShot.Label())
	assert.Equal(t, "UC", UnlimitedCannon.Label())
	assert.Equal(t, "BlobPiercing", BlobPiercing.String())

	bogus := PowerupType(42)
	assert.False(t, bogus.Valid())
	assert.Empty(t, bogus.Label())
	assert.Equal(t, "unknown", bogus.String())
}

func TestRandomPowerupTypeIsUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	const trials = 10000
	counts := map[PowerupType]int{}
	for range trials {
		counts[RandomPowerupType(rng)]++
	}
	for _, pt := range PowerupTypes {
		assert.InDelta(t, 0.2, float64(counts[pt])/trials, 0.02, pt.String())
	}
}

func TestSplatExpires(t *testing.T) {
	s := NewSplat(vec.New(100, 100), PlayerSplatPalette)
	require.Len(t, s.Particles, config.SplatParticleCount)

	ctx := newCtx(125*time.Millisecond, &fakeSpawner{})
	s.Update(ctx)
	assert.True(t, s.IsActive())
	assert.InDelta(t, 137.5, s.Particles[0].Pos.X, 1e-9)
	assert.InDelta(t, 100.0, s.Particles[0].Pos.Y, 1e-9)

	s.Update(ctx)
	assert.True(t, s.IsActive(), "elapsed equal to lifetime is not past it")

	s.Update(newCtx(time.Millisecond, &fakeSpawner{}))
	assert.False(t, s.IsActive())
	assert.Equal(t, 1.0, s.Progress())
}

func TestSparklesEmitOnlyWhileThrusting(t *testing.T) {
	var s Sparkles
	rng := rand.New(rand.NewSource(2))

	s.Update(10*time.Millisecond, rng, vec.New(0, 0), 0)
	assert.Empty(t, s.Particles)

	s.Emitting = true
	s.Update(10*time.Millisecond, rng, vec.New(0, 0), 0)
	require.Len(t, s.Particles, 1)
	assert.Less(t, s.Particles[0].Vel.X, 0.0, "sparkles leave backwards")

	s.Emitting = false
	for range 60 {
		s.Update(10*time.Millisecond, rng, vec.New(0, 0), 0)
	}
	assert.Empty(t, s.Particles)
}

func TestShouldRenderBlink(t *testing.T) {
	assert.True(t, ShouldRenderBlink(0, 4))
	assert.False(t, ShouldRenderBlink(0.1, 4))
	assert.True(t, ShouldRenderBlink(0.3, 4))
}

func TestOverheatLabelVisible(t *testing.T) {
	assert.True(t, OverheatLabelVisible(5*time.Second))
	assert.False(t, OverheatLabelVisible(4600*time.Millisecond))
	assert.True(t, OverheatLabelVisible(4400*time.Millisecond))
}

func TestHeatColor(t *testing.T) {
	assert.Equal(t, colornames.Limegreen, HeatColor(0))
	assert.Equal(t, colornames.Yellow, HeatColor(0.5))
	assert.Equal(t, colornames.Red, HeatColor(1))
	assert.Equal(t, colornames.Red, HeatColor(7), "clamped")
}
