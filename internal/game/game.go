// Package game runs the simulation: it owns every entity collection, advances
// them in a fixed per-frame order and resolves collisions, scoring, level
// progression and game over.
package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/cookiecannon/internal/config"
	"github.com/tomz197/cookiecannon/internal/event"
	"github.com/tomz197/cookiecannon/internal/object"
	"github.com/tomz197/cookiecannon/internal/physics"
	"github.com/tomz197/cookiecannon/internal/vec"
)

// State is the game phase.
type State int

const (
	Playing State = iota
	GameOver
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case GameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// Options configures a Game. The zero value is usable.
type Options struct {
	// Bounds of the play area, defaults to the world size.
	Bounds physics.Bounds
	// Rand drives every random draw. Nil seeds from the clock.
	Rand *rand.Rand
	// Logger receives lifecycle logs. Nil discards them.
	Logger *log.Logger
	// Events receives gameplay events. Nil discards them.
	Events event.Emitter
	// MaxDelta clamps the frame delta when positive.
	MaxDelta time.Duration
	// OnRender is called once per tick, after the purge and before the update.
	OnRender func(Snapshot)
}

// Game is a single-player session. It is not safe for concurrent use: intents
// and Tick must be called from the same goroutine.
type Game struct {
	bounds   physics.Bounds
	rng      *rand.Rand
	log      *log.Logger
	events   event.Emitter
	maxDelta time.Duration
	onRender func(Snapshot)

	state State
	score int
	level int

	player      *object.Player
	enemies     []*object.Enemy
	projectiles []*object.Projectile
	powerups    []*object.Powerup
	splats      []*object.Splat

	toSpawn []object.Entity // added after the current pass
}

// New creates a game at level 1 with its first wave spawned.
func New(opts Options) *Game {
	g := &Game{
		bounds:   opts.Bounds,
		rng:      opts.Rand,
		log:      opts.Logger,
		events:   opts.Events,
		maxDelta: opts.MaxDelta,
		onRender: opts.OnRender,
		level:    1,
	}
	if g.bounds.Width <= 0 || g.bounds.Height <= 0 {
		g.bounds = physics.Bounds{Width: config.WorldWidth, Height: config.WorldHeight}
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.log == nil {
		g.log = log.New(io.Discard)
	}
	if g.events == nil {
		g.events = event.Discard
	}

	g.player = object.NewPlayer(g.bounds.Center())
	g.enemies = g.spawnEnemies()
	return g
}

// State returns the current phase.
func (g *Game) State() State { return g.state }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Level returns the current level.
func (g *Game) Level() int { return g.level }

// Bounds returns the play area.
func (g *Game) Bounds() physics.Bounds { return g.bounds }

// SetRotateLeft holds or releases counter-clockwise rotation.
func (g *Game) SetRotateLeft(on bool) { g.player.SetRotateLeft(on) }

// SetRotateRight holds or releases clockwise rotation.
func (g *Game) SetRotateRight(on bool) { g.player.SetRotateRight(on) }

// SetThrust holds or releases the thruster.
func (g *Game) SetThrust(on bool) { g.player.SetThrust(on) }

// Fire pulls the trigger once. The shot leaves on the next tick. Ignored
// after game over.
func (g *Game) Fire() {
	if g.state != Playing {
		return
	}
	g.player.Fire()
}

// Restart starts a fresh session from level 1. Only valid after game over.
func (g *Game) Restart() bool {
	if g.state != GameOver {
		return false
	}
	g.score = 0
	g.level = 1
	g.projectiles = g.projectiles[:0]
	g.powerups = g.powerups[:0]
	g.splats = g.splats[:0]
	g.toSpawn = g.toSpawn[:0]
	g.enemies = g.spawnEnemies()
	g.player.Reset(g.bounds.Center())
	g.state = Playing

	g.log.Info("game restarted")
	g.events.Emit(event.Event{Type: event.GameRestarted, Level: g.level})
	return true
}

// Tick advances the simulation by dt.
func (g *Game) Tick(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	if g.maxDelta > 0 && dt > g.maxDelta {
		dt = g.maxDelta
	}

	g.purge()
	if g.onRender != nil {
		g.onRender(g.Snapshot())
	}
	g.update(dt)
	if g.state == Playing {
		g.detectCollisions()
		g.flushSpawned()
	}
	if len(g.enemies) == 0 {
		g.levelUp()
	}
}

func (g *Game) purge() {
	g.projectiles = object.Purge(g.projectiles)
	g.enemies = object.Purge(g.enemies)
	g.powerups = object.Purge(g.powerups)
	g.splats = object.Purge(g.splats)
}

func (g *Game) update(dt time.Duration) {
	ctx := object.UpdateContext{
		Delta:   dt,
		Bounds:  g.bounds,
		Spawner: g,
		Rand:    g.rng,
	}

	g.player.Update(ctx)
	for _, e := range g.enemies {
		e.Update(ctx)
	}
	for _, p := range g.projectiles {
		p.Update(ctx)
	}
	for _, s := range g.splats {
		s.Update(ctx)
	}
	for _, p := range g.powerups {
		p.Update(ctx)
	}
	g.flushSpawned()
}

// Spawn queues an entity to be added after the current pass.
// Implements object.Spawner interface.
func (g *Game) Spawn(e object.Entity) {
	g.toSpawn = append(g.toSpawn, e)
}

// ShotFired charges the shot cost and announces the shot.
// Implements object.Spawner interface.
func (g *Game) ShotFired(shots int) {
	g.score = max(0, g.score-config.ShotCost)
	g.events.Emit(event.Event{
		Type:  event.ProjectileFired,
		Pos:   g.player.Nose(),
		Shots: shots,
	})
}

// flushSpawned moves queued entities into their collections.
func (g *Game) flushSpawned() {
	for _, e := range g.toSpawn {
		switch o := e.(type) {
		case *object.Enemy:
			g.enemies = append(g.enemies, o)
		case *object.Projectile:
			g.projectiles = append(g.projectiles, o)
		case *object.Powerup:
			g.powerups = append(g.powerups, o)
		case *object.Splat:
			g.splats = append(g.splats, o)
		default:
			g.log.Warn("dropping spawn of unknown entity", "type", fmt.Sprintf("%T", e))
		}
	}
	clear(g.toSpawn)
	g.toSpawn = g.toSpawn[:0]
}

func (g *Game) spawnEnemies() []*object.Enemy {
	n := g.level * config.EnemiesPerLevel
	enemies := make([]*object.Enemy, 0, n)
	for range n {
		enemies = append(enemies, object.NewEnemy(g.rng, vec.Vec2{}, 1, 1))
	}
	return enemies
}

func (g *Game) levelUp() {
	g.level++
	g.enemies = g.spawnEnemies()
	g.projectiles = g.projectiles[:0]
	g.powerups = g.powerups[:0]
	g.player.Reset(g.bounds.Center())

	g.log.Info("level cleared", "lvl", g.level, "score", g.score)
	g.events.Emit(event.Event{Type: event.LevelUp, Level: g.level})
}

func (g *Game) gameOver() {
	g.state = GameOver
	g.Spawn(object.NewSplat(g.player.Pos, object.PlayerSplatPalette))

	g.log.Info("game over", "lvl", g.level, "score", g.score)
	g.events.Emit(event.Event{Type: event.PlayerDied, Pos: g.player.Pos, Level: g.level})
}
