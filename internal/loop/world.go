// Package loop runs the simulation: the shared world, the per-tick player and
// projectile passes, collision resolution and the loops that drive them.
package loop

import (
	"sync"

	"github.com/tomz197/rocketraid/internal/event"
	"github.com/tomz197/rocketraid/internal/input"
	"github.com/tomz197/rocketraid/internal/object"
)

// World holds the game state shared by the loops. Methods are safe for
// concurrent use, except that StepProjectiles must only run on one goroutine.
// Critical sections are short and never call out to collaborators.
type World struct {
	mu      sync.Mutex
	arena   object.Arena
	player  *object.Player
	rockets []*object.Rocket
	bullets []*object.Bullet
	effects []*object.Effect
	score   int

	// epoch is bumped on restart. Collision outcomes computed against an
	// older epoch are discarded.
	epoch        uint64
	gameOverSent bool

	// Owned by the projectile pass; only used outside the lock.
	collide *collider
}

// NewWorld creates a world with a fresh player and no rockets.
func NewWorld(arena object.Arena) *World {
	return &World{
		arena:   arena,
		player:  object.NewPlayer(),
		collide: newCollider(arena),
	}
}

// Arena returns the play area.
func (w *World) Arena() object.Arena {
	return w.arena
}

// AddRockets appends rockets to the world.
func (w *World) AddRockets(rockets ...*object.Rocket) {
	w.mu.Lock()
	w.rockets = append(w.rockets, rockets...)
	w.mu.Unlock()
}

// Score returns the current score.
func (w *World) Score() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.score
}

// StepPlayer runs one player tick: the player acts on the intent (or, when
// dead, a confirm restarts the game) and every rocket is culled or moved.
func (w *World) StepPlayer(in input.Intent) []event.Event {
	w.mu.Lock()
	defer w.mu.Unlock()

	var events []event.Event
	if w.player.Alive {
		if shot := w.player.Step(in); shot != nil {
			w.bullets = append(w.bullets, shot)
			c := shot.Center()
			events = append(events, event.Event{Type: event.ShotFired, X: c.X, Y: c.Y})
		}
	} else if in.Confirm {
		w.restartLocked()
		events = append(events, event.Event{Type: event.GameReset})
	}

	ctx := object.UpdateContext{Arena: w.arena}
	for _, r := range w.rockets {
		if r.Update(ctx) {
			r.MarkDestroyed()
		}
	}
	w.rockets = object.Sweep(w.rockets)
	return events
}

// Restart clears rockets and bullets, resets the player and zeroes the score.
func (w *World) Restart() {
	w.mu.Lock()
	w.restartLocked()
	w.mu.Unlock()
}

func (w *World) restartLocked() {
	clear(w.rockets)
	w.rockets = w.rockets[:0]
	clear(w.bullets)
	w.bullets = w.bullets[:0]
	w.player.Reset()
	w.score = 0
	w.gameOverSent = false
	w.epoch++
}
