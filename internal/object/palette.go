package object

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Palette is a fill/stroke color pair.
type Palette struct {
	Fill   color.RGBA
	Stroke color.RGBA
}

var rebeccaPurple = color.RGBA{R: 0x66, G: 0x33, B: 0x99, A: 0xff}

// enemyPalettes is indexed by requiredHits-1.
var enemyPalettes = [...]Palette{
	{Fill: colornames.Limegreen, Stroke: colornames.Green},
	{Fill: colornames.Violet, Stroke: rebeccaPurple},
	{Fill: colornames.Crimson, Stroke: colornames.Firebrick},
}

var (
	// EnemySplatPalette colors the splat left by a final-stage enemy.
	EnemySplatPalette = Palette{Fill: colornames.Limegreen, Stroke: colornames.Green}
	// PlayerSplatPalette colors the splat left by the player on death.
	PlayerSplatPalette = Palette{Fill: colornames.Crimson, Stroke: colornames.Darkred}
	// CookiePalette colors projectiles.
	CookiePalette = Palette{Fill: colornames.Burlywood, Stroke: colornames.Saddlebrown}
	// PlayerPalette colors the cannon body and its nose.
	PlayerPalette = Palette{Fill: colornames.Brown, Stroke: colornames.Red}
	// ShieldColor outlines the player while a shield is up.
	ShieldColor = colornames.Darkorchid
)

var sparkleColors = [...]color.RGBA{
	colornames.Cyan,
	colornames.Magenta,
	colornames.Yellow,
	colornames.Lime,
	colornames.Red,
	colornames.Orange,
}

// EnemyPalette returns the colors for an enemy with the given hits left.
// Out of range values are clamped.
func EnemyPalette(requiredHits int) Palette {
	i := requiredHits - 1
	if i < 0 {
		i = 0
	}
	if i >= len(enemyPalettes) {
		i = len(enemyPalettes) - 1
	}
	return enemyPalettes[i]
}

// HeatColor returns the cannon heat gradient at t in [0, 1]: limegreen,
// then yellow at the midpoint, then red.
func HeatColor(t float64) color.RGBA {
	t = max(0, min(t, 1))
	if t < 0.5 {
		return lerpRGBA(colornames.Limegreen, colornames.Yellow, t*2)
	}
	return lerpRGBA(colornames.Yellow, colornames.Red, (t-0.5)*2)
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 0xff}
}
