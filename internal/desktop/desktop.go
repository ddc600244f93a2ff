// Package desktop is the windowed frontend built on ebiten.
package desktop

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/tomz197/cookiecannon/internal/config"
	"github.com/tomz197/cookiecannon/internal/event"
	"github.com/tomz197/cookiecannon/internal/game"
	"github.com/tomz197/cookiecannon/internal/input"
	"github.com/tomz197/cookiecannon/internal/object"
	"github.com/tomz197/cookiecannon/internal/physics"
)

// Cooldown bar geometry in world units.
const (
	barWidth  = 600
	barHeight = 30
	barY      = 30
)

// debugGlyph is the size of one ebitenutil.DebugPrint character.
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

// Keyboard reports key state. The ebiten implementation is used unless a
// test supplies its own.
type Keyboard interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

type ebitenKeyboard struct{}

func (ebitenKeyboard) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeyboard) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

func anyPressed(kb Keyboard, keys ...ebiten.Key) bool {
	for _, k := range keys {
		if kb.Pressed(k) {
			return true
		}
	}
	return false
}

// readInput maps the keyboard to the same intents the terminal uses.
func readInput(kb Keyboard) input.Input {
	return input.Input{
		Left:    anyPressed(kb, ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:   anyPressed(kb, ebiten.KeyD, ebiten.KeyArrowRight),
		Thrust:  anyPressed(kb, ebiten.KeyW, ebiten.KeyArrowUp),
		Fire:    kb.JustPressed(ebiten.KeySpace),
		Restart: kb.JustPressed(ebiten.KeyR),
		Quit:    kb.JustPressed(ebiten.KeyQ) || kb.JustPressed(ebiten.KeyEscape),
	}
}

// Options configures the window game.
type Options struct {
	Seed     int64         // 0 seeds from the clock
	MaxDelta time.Duration // frame delta clamp, 0 disables it
	Logger   *log.Logger
	Events   event.Emitter
	Keyboard Keyboard
}

// Game adapts the simulation to ebiten.Game.
type Game struct {
	game  *game.Game
	frame game.Snapshot
	kb    Keyboard
	last  time.Time
	now   func() time.Time
	pixel *ebiten.Image // 1x1 white, scaled and rotated for the cannon body
}

// Compile-time check that Game implements ebiten.Game.
var _ ebiten.Game = (*Game)(nil)

// New creates a window game.
func New(opts Options) *Game {
	g := &Game{
		kb:  opts.Keyboard,
		now: time.Now,
	}
	if g.kb == nil {
		g.kb = ebitenKeyboard{}
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.game = game.New(game.Options{
		Rand:     rand.New(rand.NewSource(seed)),
		Logger:   opts.Logger,
		Events:   opts.Events,
		MaxDelta: opts.MaxDelta,
		OnRender: func(snap game.Snapshot) { g.frame = snap },
	})
	g.frame = g.game.Snapshot()
	return g
}

// Update applies input and advances the simulation by the wall-clock time
// since the previous update.
func (g *Game) Update() error {
	in := readInput(g.kb)
	if in.Quit {
		return ebiten.Termination
	}
	in.Apply(g.game)

	now := g.now()
	var dt time.Duration
	if !g.last.IsZero() {
		dt = now.Sub(g.last)
	}
	g.last = now
	g.game.Tick(dt)
	return nil
}

// Layout fixes the logical screen to the world size; ebiten scales it to
// the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return config.WorldWidth, config.WorldHeight
}

// Draw renders the last frame handed to the render hook.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.pixel == nil {
		g.pixel = ebiten.NewImage(1, 1)
		g.pixel.Fill(color.White)
	}
	screen.Fill(color.Black)

	snap := &g.frame
	for i := range snap.Splats {
		drawSplat(screen, &snap.Splats[i])
	}
	for i := range snap.Enemies {
		e := &snap.Enemies[i]
		p := e.Palette()
		vector.DrawFilledCircle(screen, float32(e.Pos.X), float32(e.Pos.Y), float32(e.Radius), p.Fill, true)
		vector.StrokeCircle(screen, float32(e.Pos.X), float32(e.Pos.Y), float32(e.Radius), 3, p.Stroke, true)
	}
	for i := range snap.Powerups {
		p := &snap.Powerups[i]
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius), p.Type.Color(), true)
		label := p.Type.Label()
		ebitenutil.DebugPrintAt(screen, label, int(p.Pos.X)-len(label)*debugGlyphW/2, int(p.Pos.Y)-debugGlyphH/2)
	}
	for i := range snap.Projectiles {
		drawCookie(screen, &snap.Projectiles[i])
	}
	if snap.State == game.Playing {
		g.drawPlayer(screen, &snap.Player)
	}

	drawHUD(screen, snap)
}

func drawSplat(screen *ebiten.Image, s *object.Splat) {
	r := s.Radius * (1 - s.Progress())
	if r <= 0 {
		return
	}
	for _, p := range s.Particles {
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(r), s.Palette.Fill, true)
	}
}

func drawCookie(screen *ebiten.Image, p *object.Projectile) {
	x, y := float32(p.Pos.X), float32(p.Pos.Y)
	vector.DrawFilledCircle(screen, x, y, float32(p.Radius), object.CookiePalette.Fill, true)
	for i := 0; i < 3; i++ {
		a := p.Rotation + float64(i)*2*math.Pi/3
		cx := x + float32(math.Cos(a)*p.Radius/2)
		cy := y + float32(math.Sin(a)*p.Radius/2)
		vector.DrawFilledCircle(screen, cx, cy, float32(p.Radius/5), object.CookiePalette.Stroke, true)
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image, p *game.PlayerView) {
	for _, sp := range p.Sparkles {
		fade := 1 - sp.Elapsed/sp.Lifespan
		c := color.NRGBA{R: sp.Color.R, G: sp.Color.G, B: sp.Color.B, A: uint8(255 * max(0, min(fade, 1)))}
		half := float32(config.SparkleSize / 2)
		vector.DrawFilledRect(screen, float32(sp.Pos.X)-half, float32(sp.Pos.Y)-half, 2*half, 2*half, c, false)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-0.5, -0.5)
	op.GeoM.Scale(p.Width, p.Height)
	op.GeoM.Rotate(p.Rotation)
	op.GeoM.Translate(p.Pos.X, p.Pos.Y)
	op.ColorScale.ScaleWithColor(object.PlayerPalette.Fill)
	screen.DrawImage(g.pixel, op)

	corners := physics.OrientedBox{Center: p.Pos, Width: p.Width, Height: p.Height, Rotation: p.Rotation}.Corners()
	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, object.PlayerPalette.Stroke, true)
	}
	vector.DrawFilledCircle(screen, float32(p.Nose.X), float32(p.Nose.Y), float32(p.Height/4), object.PlayerPalette.Stroke, true)

	if p.HasPowerup(object.Shield) {
		r := math.Max(p.Width, p.Height) * 0.75
		vector.StrokeCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(r), 3, object.ShieldColor, true)
	}
}

// drawHUD draws level, score, the cooldown bar, powerup timers and the game
// over overlay.
func drawHUD(screen *ebiten.Image, snap *game.Snapshot) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Level: %d", snap.Level), 50, 36)
	score := fmt.Sprintf("Score: %d", snap.Score)
	ebitenutil.DebugPrintAt(screen, score, config.WorldWidth-50-len(score)*debugGlyphW, 36)

	drawCooldownBar(screen, &snap.Player)

	for i, line := range powerupLines(&snap.Player) {
		ebitenutil.DebugPrintAt(screen, line, 20, config.WorldHeight-20-(i+1)*debugGlyphH)
	}

	if snap.State == game.GameOver {
		lines := []string{
			"GAME OVER",
			fmt.Sprintf("Score: %d   Level: %d", snap.Score, snap.Level),
			"Press R to play again",
		}
		for i, line := range lines {
			x := config.WorldWidth/2 - len(line)*debugGlyphW/2
			y := config.WorldHeight/2 - debugGlyphH*2 + i*debugGlyphH*2
			ebitenutil.DebugPrintAt(screen, line, x, y)
		}
	}
}

// drawCooldownBar fills the bar with the used cannon capacity on a
// limegreen to red gradient, or solid red with a flashing label while
// overheated.
func drawCooldownBar(screen *ebiten.Image, p *game.PlayerView) {
	const slices = 60
	x := float32(config.WorldWidth/2 - barWidth/2)

	if p.Overheat {
		vector.DrawFilledRect(screen, x, barY, barWidth, barHeight, colornames.Red, false)
	} else {
		w := float32(barWidth) / slices
		for i := 0; i < slices; i++ {
			c := object.HeatColor(float64(i) / slices)
			vector.DrawFilledRect(screen, x+float32(i)*w, barY, w+1, barHeight, c, false)
		}
		// Hide unused capacity
		unused := float32(barWidth * p.CannonCapacity)
		vector.DrawFilledRect(screen, x+barWidth-unused, barY, unused, barHeight, color.Black, false)
	}

	if p.Overheat && object.OverheatLabelVisible(p.OverheatRemaining) {
		const label = "OVERHEAT"
		ebitenutil.DebugPrintAt(screen, label, config.WorldWidth/2-len(label)*debugGlyphW/2, barY+(barHeight-debugGlyphH)/2)
	}
	vector.StrokeRect(screen, x, barY, barWidth, barHeight, 3, color.White, false)
}

// powerupLines lists the active powerups with their remaining time.
func powerupLines(p *game.PlayerView) []string {
	var lines []string
	for _, st := range p.Powerups {
		if st.Active {
			lines = append(lines, fmt.Sprintf("%-15s %4.1fs", st.Type, st.Remaining.Seconds()))
		}
	}
	return lines
}

// Run opens the window and plays until it is closed or Q is pressed.
func Run(opts Options) error {
	ebiten.SetWindowSize(config.WorldWidth, config.WorldHeight)
	ebiten.SetWindowTitle("Cookie Cannon")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(New(opts)); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
