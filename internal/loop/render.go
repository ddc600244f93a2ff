package loop

import (
	"math"

	"github.com/tomz197/cookiecannon/internal/draw"
	"github.com/tomz197/cookiecannon/internal/game"
	"github.com/tomz197/cookiecannon/internal/object"
	"github.com/tomz197/cookiecannon/internal/physics"
	"github.com/tomz197/cookiecannon/internal/vec"
)

func point(v vec.Vec2) draw.Point {
	return draw.Point{X: v.X, Y: v.Y}
}

// drawWorld paints every entity of snap onto the canvas, back to front.
func drawWorld(c *draw.Canvas, snap *game.Snapshot) {
	for i := range snap.Splats {
		drawSplat(c, &snap.Splats[i])
	}
	for i := range snap.Enemies {
		e := &snap.Enemies[i]
		p := e.Palette()
		c.DrawCircle(point(e.Pos), e.Radius, draw.FromRGBA(p.Fill), draw.FromRGBA(p.Stroke))
	}
	for i := range snap.Powerups {
		p := &snap.Powerups[i]
		c.DrawCircle(point(p.Pos), p.Radius, draw.FromRGBA(p.Type.Color()), draw.Transparent)
	}
	for i := range snap.Projectiles {
		drawCookie(c, &snap.Projectiles[i])
	}
	if snap.State == game.Playing {
		drawPlayer(c, &snap.Player)
	}
}

// drawCookie draws a projectile with a chocolate chip that spins with it.
func drawCookie(c *draw.Canvas, p *object.Projectile) {
	fill := draw.FromRGBA(object.CookiePalette.Fill)
	chip := draw.FromRGBA(object.CookiePalette.Stroke)
	c.DrawCircle(point(p.Pos), p.Radius, fill, draw.Transparent)
	off := vec.FromAngle(p.Rotation, p.Radius/2)
	c.SetFloat(p.Pos.X+off.X, p.Pos.Y+off.Y, chip)
}

// drawSplat draws the droplets, shrinking as the splat ages.
func drawSplat(c *draw.Canvas, s *object.Splat) {
	r := s.Radius * (1 - s.Progress())
	if r <= 0 {
		return
	}
	fill := draw.FromRGBA(s.Palette.Fill)
	for _, p := range s.Particles {
		c.DrawCircle(point(p.Pos), r, fill, draw.Transparent)
	}
}

// drawPlayer draws the sparkle trail, the cannon body, its nose and the
// shield ring when one is up.
func drawPlayer(c *draw.Canvas, p *game.PlayerView) {
	for _, sp := range p.Sparkles {
		c.SetFloat(sp.Pos.X, sp.Pos.Y, draw.FromRGBA(sp.Color))
	}

	box := physics.OrientedBox{
		Center:   p.Pos,
		Width:    p.Width,
		Height:   p.Height,
		Rotation: p.Rotation,
	}
	corners := box.Corners()
	points := c.BorrowPoints(len(corners))
	for i, v := range corners {
		points[i] = point(v)
	}
	c.DrawPolygon(points, draw.FromRGBA(object.PlayerPalette.Fill), draw.FromRGBA(object.PlayerPalette.Stroke))
	c.DrawCircle(point(p.Nose), p.Height/4, draw.FromRGBA(object.PlayerPalette.Stroke), draw.Transparent)

	if p.HasPowerup(object.Shield) {
		r := math.Max(p.Width, p.Height) * 0.75
		c.DrawCircle(point(p.Pos), r, draw.Transparent, draw.FromRGBA(object.ShieldColor))
	}
}
