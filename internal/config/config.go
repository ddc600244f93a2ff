package config

import "time"

// Game configuration constants.
// All tunable game parameters are centralized here for easy adjustment.

// Play area in logical units. Renderers scale this to their surface.
const (
	WorldWidth  = 1280
	WorldHeight = 720
)

// Scoring
const (
	ScorePerStage = 10 // points per hit, multiplied by the enemy stage
	ShotCost      = 1  // points paid per trigger pull, floored at zero
)

// Enemies
const (
	EnemyBaseSize       = 75.0
	EnemyMinSpeed       = 20.0
	EnemyMaxSpeed       = 120.0
	EnemySplitFactor    = 2
	EnemyFinalStage     = 3
	EnemiesPerLevel     = 2
	PowerupDropChance   = 0.10
	TwoHitEnemyChance   = 0.15
	ThreeHitEnemyChance = 0.05
)

// Player
const (
	PlayerWidth         = 50.0
	PlayerHeight        = 25.0
	PlayerRotationSpeed = 4.0   // radians per second
	PlayerThrust        = 600.0 // units per second squared
	PlayerMaxSpeed      = 400.0
)

// Cookie cannon
const (
	ProjectileSpeed      = 600.0
	ProjectileRadius     = 10.0
	TripleShotSpread     = 0.3 // radians either side
	ShotCapacityCost     = 0.1
	CannonRegenPerFrame  = 0.002 // applied once per update regardless of dt
	OverheatDuration     = 5 * time.Second
	FastCookieMultiplier = 2.0
)

// Powerups
const (
	PowerupRadius   = 20.0
	PowerupMinSpeed = 20.0
	PowerupMaxSpeed = 120.0
	PowerupDuration = 10 * time.Second
)

// Effects
const (
	SplatParticleCount  = 8
	SplatParticleSpeed  = 300.0
	SplatParticleRadius = 5.0
	SplatLifetime       = 250 * time.Millisecond

	SparkleInterval      = 5 * time.Millisecond
	SparkleSpeed         = 200.0
	SparkleAngleVariance = 0.5235987755982988 // pi/6
	SparkleMinLife       = 0.3
	SparkleMaxLife       = 0.5
	SparkleSize          = 5.0
)

// Frame timing
const (
	DefaultMaxFrameMS     = 35
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
	OverheatFlashInterval = 500 * time.Millisecond
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Terminal rendering
const (
	MaxTermWidth  = 200
	MaxTermHeight = 60
)
