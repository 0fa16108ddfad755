package loop

import (
	"github.com/tomz197/rocketraid/internal/event"
	"github.com/tomz197/rocketraid/internal/object"
)

// StepProjectiles runs one projectile tick. Bullets and effects are culled
// and moved under the lock, collisions are resolved on a copy without it, and
// the outcome is applied under the lock again unless a restart happened in
// between.
func (w *World) StepProjectiles() []event.Event {
	t := w.captureTick()
	out := w.collide.resolve(&t)
	return w.apply(out)
}

func (w *World) captureTick() tickState {
	w.mu.Lock()
	defer w.mu.Unlock()

	ctx := object.UpdateContext{Arena: w.arena}
	for _, b := range w.bullets {
		if b.Update(ctx) {
			b.MarkDestroyed()
		}
	}
	w.bullets = object.Sweep(w.bullets)

	for _, e := range w.effects {
		if e.Update(ctx) {
			e.MarkDestroyed()
		}
	}
	w.effects = object.Sweep(w.effects)

	t := tickState{
		epoch:  w.epoch,
		player: *w.player,
	}
	if len(w.rockets) == 0 {
		return t
	}
	t.bullets = make([]object.Bullet, len(w.bullets))
	for i, b := range w.bullets {
		t.bullets[i] = *b
	}
	t.rockets = make([]object.Rocket, len(w.rockets))
	for i, r := range w.rockets {
		t.rockets[i] = *r
	}
	return t
}

func (w *World) apply(out outcome) []event.Event {
	w.mu.Lock()
	defer w.mu.Unlock()

	if out.epoch != w.epoch {
		out.release()
		return nil
	}

	if len(out.removedBullets) > 0 {
		for _, b := range w.bullets {
			if _, ok := out.removedBullets[b.ID]; ok {
				b.MarkDestroyed()
			}
		}
		w.bullets = object.Sweep(w.bullets)
	}

	var events []event.Event
	if len(out.rocketHP) > 0 || len(out.kills) > 0 {
		for _, r := range w.rockets {
			if hp, ok := out.rocketHP[r.ID]; ok {
				r.HP = hp
			}
			if k, ok := out.kills[r.ID]; ok {
				r.MarkDestroyed()
				w.score += k.score
				w.effects = append(w.effects, k.effects...)
				events = append(events, k.events...)
				delete(out.kills, r.ID)
			}
		}
		w.rockets = object.Sweep(w.rockets)
	}
	// Rockets culled since the tick was captured leave nothing behind.
	for _, k := range out.kills {
		k.release()
	}

	if out.playerHit {
		w.player.HP = out.playerHP
	}
	events = append(events, out.events...)
	if out.playerDied {
		w.player.Alive = false
		if !w.gameOverSent {
			w.gameOverSent = true
			c := w.player.Center()
			events = append(events, event.Event{Type: event.GameOver, X: c.X, Y: c.Y})
		}
	}

	w.effects = append(w.effects, out.effects...)
	return events
}
