package object

import (
	"image/color"
	"math"
	"math/rand"

	"golang.org/x/image/colornames"

	"github.com/tomz197/cookiecannon/internal/config"
	"github.com/tomz197/cookiecannon/internal/physics"
	"github.com/tomz197/cookiecannon/internal/vec"
)

// PowerupType identifies a timed buff.
type PowerupType int

const (
	TripleShot PowerupType = iota
	FastCookies
	BlobPiercing
	Shield
	UnlimitedCannon

	powerupTypeCount
)

// PowerupTypes lists every valid type in display order.
var PowerupTypes = [...]PowerupType{TripleShot, FastCookies, BlobPiercing, Shield, UnlimitedCannon}

var powerupInfo = [powerupTypeCount]struct {
	name  string
	label string
	color color.RGBA
}{
	TripleShot:      {"TripleShot", "TS", colornames.Dodgerblue},
	FastCookies:     {"FastCookies", "FC", colornames.Darkgreen},
	BlobPiercing:    {"BlobPiercing", "BP", colornames.Crimson},
	Shield:          {"Shield", "S", colornames.Darkorchid},
	UnlimitedCannon: {"UnlimitedCannon", "UC", colornames.Maroon},
}

// Valid reports whether t is a known type.
func (t PowerupType) Valid() bool {
	return t >= 0 && t < powerupTypeCount
}

func (t PowerupType) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return powerupInfo[t].name
}

// Label is the short on-screen tag, empty for unknown types.
func (t PowerupType) Label() string {
	if !t.Valid() {
		return ""
	}
	return powerupInfo[t].label
}

// Color is the pickup color, white for unknown types.
func (t PowerupType) Color() color.RGBA {
	if !t.Valid() {
		return colornames.White
	}
	return powerupInfo[t].color
}

// RandomPowerupType picks a type uniformly.
func RandomPowerupType(rng *rand.Rand) PowerupType {
	return PowerupTypes[rng.Intn(len(PowerupTypes))]
}

// Powerup is a drifting pickup.
type Powerup struct {
	lifecycle

	Type   PowerupType
	Pos    vec.Vec2
	Vel    vec.Vec2
	Radius float64
}

// NewPowerup creates a pickup at pos with a random heading and speed.
func NewPowerup(rng *rand.Rand, pos vec.Vec2, t PowerupType) *Powerup {
	speed := randRange(rng, config.PowerupMinSpeed, config.PowerupMaxSpeed)
	return &Powerup{
		Type:   t,
		Pos:    pos,
		Vel:    vec.FromAngle(rng.Float64()*2*math.Pi, speed),
		Radius: config.PowerupRadius,
	}
}

// Update drifts the pickup. It is lost once strictly outside the play area.
func (p *Powerup) Update(ctx UpdateContext) {
	if !p.IsActive() {
		return
	}
	p.Pos.Add(vec.Scale(p.Vel, ctx.Seconds()))
	if !ctx.Bounds.Contains(p.Pos) {
		p.Deactivate()
	}
}

// Circle returns the collision shape.
func (p *Powerup) Circle() physics.Circle {
	return physics.Circle{Center: p.Pos, Radius: p.Radius}
}
