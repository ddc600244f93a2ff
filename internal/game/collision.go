package game

import (
	"github.com/tomz197/cookiecannon/internal/config"
	"github.com/tomz197/cookiecannon/internal/event"
	"github.com/tomz197/cookiecannon/internal/object"
	"github.com/tomz197/cookiecannon/internal/physics"
)

// detectCollisions resolves one collision pass. Pair order is collection
// order and matters for scoring. Entities spawned here join their
// collections only after the pass.
func (g *Game) detectCollisions() {
	g.checkProjectileEnemyCollisions()
	g.checkPlayerPowerupCollisions()
	g.checkPlayerEnemyCollisions()
}

func (g *Game) checkProjectileEnemyCollisions() {
	piercing := g.player.HasPowerup(object.BlobPiercing)

	for _, p := range g.projectiles {
		for _, e := range g.enemies {
			if !p.IsActive() {
				break
			}
			if !e.IsActive() {
				continue
			}
			if !physics.CirclesCollide(p.Circle(), e.Circle()) {
				continue
			}
			if !piercing {
				p.Deactivate()
			}
			g.hitEnemy(e)
		}
	}
}

// hitEnemy scores one projectile hit on e.
func (g *Game) hitEnemy(e *object.Enemy) {
	destroyed := e.Hit()
	g.score += config.ScorePerStage * e.Stage
	if destroyed {
		g.destroyEnemy(e)
		return
	}
	g.events.Emit(event.Event{Type: event.EnemyHit, Pos: e.Pos, Stage: e.Stage})
}

func (g *Game) destroyEnemy(e *object.Enemy) {
	res := e.Destroy(g.rng, g)

	typ := event.EnemyDestroyed
	if res.Splatted {
		typ = event.EnemySplatted
	}
	g.events.Emit(event.Event{Type: typ, Pos: e.Pos, Stage: e.Stage})

	if res.Powerup != nil {
		g.log.Debug("powerup dropped", "type", res.Powerup.Type)
	}
}

func (g *Game) checkPlayerPowerupCollisions() {
	box := g.player.Box()
	for _, p := range g.powerups {
		if !p.IsActive() || !physics.OBBCircleCollide(box, p.Circle()) {
			continue
		}
		g.player.ActivatePowerup(p.Type)
		p.Deactivate()

		g.log.Debug("powerup collected", "type", p.Type)
		g.events.Emit(event.Event{Type: event.PowerupCollected, Pos: p.Pos, Powerup: int(p.Type)})
	}
}

// checkPlayerEnemyCollisions handles only the first touching enemy.
func (g *Game) checkPlayerEnemyCollisions() {
	box := g.player.Box()
	for _, e := range g.enemies {
		if !e.IsActive() || !physics.OBBCircleCollide(box, e.Circle()) {
			continue
		}
		if g.player.ConsumeShield() {
			g.log.Debug("shield absorbed collision", "stage", e.Stage)
			g.destroyEnemy(e)
		} else {
			g.gameOver()
		}
		return
	}
}
