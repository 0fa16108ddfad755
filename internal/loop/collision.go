package loop

import (
	"github.com/tomz197/rocketraid/internal/event"
	"github.com/tomz197/rocketraid/internal/loop/config"
	"github.com/tomz197/rocketraid/internal/object"
	"github.com/tomz197/rocketraid/internal/physics"
)

// tickState is a value copy of everything collision resolution reads. It is
// captured under the world lock and resolved without it.
type tickState struct {
	epoch   uint64
	bullets []object.Bullet
	rockets []object.Rocket
	player  object.Player
}

// fallout is the effects and notifications a death leaves behind.
type fallout struct {
	effects []*object.Effect
	events  []event.Event
}

// burst adds the five-ring explosion at c and a Destroyed notification.
func (f *fallout) burst(c physics.Vec) {
	for _, spec := range config.Burst {
		f.effects = append(f.effects, object.NewEffect(c.X, c.Y, spec))
	}
	f.events = append(f.events, event.Event{Type: event.Destroyed, X: c.X, Y: c.Y})
}

func (f *fallout) release() {
	for _, e := range f.effects {
		e.Release()
	}
	f.effects = nil
}

// rocketKill is what a rocket's death adds to the world. It only lands if
// the rocket is still in the world when the outcome is applied.
type rocketKill struct {
	fallout
	score int
}

// outcome is the result of resolving one tick, applied back to the world by
// ID. The embedded fallout holds hit notifications and the player's death.
type outcome struct {
	fallout
	epoch          uint64
	removedBullets map[object.ID]struct{}
	rocketHP       map[object.ID]object.HitPoints
	kills          map[object.ID]*rocketKill
	playerHit      bool
	playerHP       object.HitPoints
	playerDied     bool
}

func (o *outcome) removeBullet(id object.ID) {
	if o.removedBullets == nil {
		o.removedBullets = make(map[object.ID]struct{})
	}
	o.removedBullets[id] = struct{}{}
}

func (o *outcome) damageRocket(r *object.Rocket) {
	if o.rocketHP == nil {
		o.rocketHP = make(map[object.ID]object.HitPoints)
	}
	o.rocketHP[r.ID] = r.HP
}

func (o *outcome) kill(id object.ID) *rocketKill {
	if o.kills == nil {
		o.kills = make(map[object.ID]*rocketKill)
	}
	k := &rocketKill{}
	o.kills[id] = k
	return k
}

// release returns every pooled effect of an outcome that will not be applied.
func (o *outcome) release() {
	o.fallout.release()
	for _, k := range o.kills {
		k.release()
	}
}

// collider resolves collisions for the projectile pass. It keeps a spatial
// grid and scratch buffers between ticks and must only be used by one
// goroutine at a time.
type collider struct {
	grid       *physics.SpatialGrid
	candidates []int
	hulls      []physics.Polygon
	dead       []bool
}

func newCollider(arena object.Arena) *collider {
	return &collider{
		grid: physics.NewSpatialGrid(float64(arena.Width), float64(arena.Height), config.CollisionCellSize),
	}
}

// resolve applies the bullet pass and then the player pass to t. Rockets are
// tested in capture order, so the first rocket a bullet overlaps takes the
// hit. Rockets that die earlier in the tick are skipped afterwards.
func (c *collider) resolve(t *tickState) outcome {
	out := outcome{epoch: t.epoch}
	if len(t.rockets) == 0 {
		return out
	}

	c.grid.Clear()
	c.hulls = c.hulls[:0]
	c.dead = c.dead[:0]
	for i := range t.rockets {
		r := &t.rockets[i]
		center := r.Center()
		c.grid.Insert(center.X, center.Y, i)
		c.hulls = append(c.hulls, r.Hull())
		c.dead = append(c.dead, false)
	}

	for i := range t.bullets {
		c.resolveBullet(&t.bullets[i], t.rockets, &out)
	}

	if t.player.Alive {
		c.resolvePlayer(&t.player, t.rockets, &out)
	}
	return out
}

func (c *collider) resolveBullet(b *object.Bullet, rockets []object.Rocket, out *outcome) {
	hull := b.Hull()
	center := hull.Center
	c.candidates = c.grid.Candidates(center.X, center.Y, c.candidates[:0])

	for _, ri := range c.candidates {
		if c.dead[ri] || !physics.Intersects(hull, c.hulls[ri]) {
			continue
		}

		r := &rockets[ri]
		out.removeBullet(b.ID)
		if r.HP.ApplyDamage(b.Damage()) {
			out.damageRocket(r)
			out.events = append(out.events, event.Event{Type: event.RocketHit, X: center.X, Y: center.Y})
			return
		}

		c.dead[ri] = true
		k := out.kill(r.ID)
		k.score = config.ScorePerRocket
		k.effects = append(k.effects, object.NewEffect(center.X, center.Y, config.ImpactEffect))
		k.burst(r.Center())
		return
	}
}

// resolvePlayer trades hit points between the player and every rocket
// touching it: the rocket takes the player's current HP and the player takes
// the rocket's HP from before the exchange.
func (c *collider) resolvePlayer(p *object.Player, rockets []object.Rocket, out *outcome) {
	hull := p.Hull()
	for ri := range rockets {
		if c.dead[ri] || !physics.Intersects(c.hulls[ri], hull) {
			continue
		}

		r := &rockets[ri]
		rocketHP := r.HP.Current
		rocketAlive := r.HP.ApplyDamage(p.HP.Current)
		playerAlive := p.HP.ApplyDamage(rocketHP)

		out.playerHit = true
		out.playerHP = p.HP

		if rocketAlive {
			out.damageRocket(r)
		} else {
			c.dead[ri] = true
			out.kill(r.ID).burst(r.Center())
		}
		if !playerAlive {
			out.playerDied = true
			out.burst(p.Center())
			return
		}
	}
}
