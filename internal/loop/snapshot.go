package loop

import (
	"github.com/tomz197/rocketraid/internal/draw"
	"github.com/tomz197/rocketraid/internal/object"
	"github.com/tomz197/rocketraid/internal/physics"
)

// Snapshot is an immutable copy of the world for rendering. Nothing in it
// aliases live world state.
type Snapshot struct {
	Frame       uint64
	Arena       object.Arena
	Score       int
	PlayerAlive bool
	Player      PlayerView
	Rockets     []RocketView
	Bullets     []BulletView
	Effects     []EffectView
}

// HealthView is the health of a damaged entity.
type HealthView struct {
	Max     float64
	Current float64
}

// Fraction returns Current/Max clamped to [0, 1] for display.
func (h HealthView) Fraction() float64 {
	f := object.HitPoints{Max: h.Max, Current: h.Current}.Fraction()
	return min(max(f, 0), 1)
}

// PlayerView is the player as drawn.
type PlayerView struct {
	X, Y      float64
	Angle     float64
	Center    physics.Vec
	Hull      physics.Polygon
	Thrusting bool
	Health    *HealthView // nil at exactly full health
}

// RocketView is a rocket as drawn.
type RocketView struct {
	ID     object.ID
	X, Y   float64
	Angle  float64
	Center physics.Vec
	Hull   physics.Polygon
	Health *HealthView // nil at exactly full health
}

// BulletView is a bullet as drawn.
type BulletView struct {
	Center physics.Vec
	Size   float64
}

// EffectView is an explosion ring as drawn.
type EffectView struct {
	Color     draw.Color
	Alpha     float64
	Particles []ParticleView
}

// ParticleView is one square particle centred on Center.
type ParticleView struct {
	Center physics.Vec
	Size   float64
}

// Snapshot copies the world under the lock and builds the views outside it.
func (w *World) Snapshot(frame uint64) *Snapshot {
	w.mu.Lock()
	snap := &Snapshot{
		Frame:       frame,
		Arena:       w.arena,
		Score:       w.score,
		PlayerAlive: w.player.Alive,
	}
	player := *w.player
	rockets := make([]object.Rocket, len(w.rockets))
	for i, r := range w.rockets {
		rockets[i] = *r
	}
	bullets := make([]object.Bullet, len(w.bullets))
	for i, b := range w.bullets {
		bullets[i] = *b
	}
	// Effects are pooled, so their particles are copied too.
	effects := make([]object.Effect, len(w.effects))
	for i, e := range w.effects {
		effects[i] = *e
		effects[i].Booms = append([]object.Boom(nil), e.Booms...)
	}
	w.mu.Unlock()

	snap.Player = PlayerView{
		X:         player.X,
		Y:         player.Y,
		Angle:     player.Angle,
		Center:    player.Center(),
		Hull:      player.Hull(),
		Thrusting: player.Thrusting,
		Health:    healthOf(&player),
	}

	snap.Rockets = make([]RocketView, len(rockets))
	for i := range rockets {
		r := &rockets[i]
		snap.Rockets[i] = RocketView{
			ID:     r.ID,
			X:      r.X,
			Y:      r.Y,
			Angle:  r.Angle,
			Center: r.Center(),
			Hull:   r.Hull(),
			Health: healthOf(r),
		}
	}

	snap.Bullets = make([]BulletView, len(bullets))
	for i := range bullets {
		snap.Bullets[i] = BulletView{Center: bullets[i].Center(), Size: bullets[i].Size}
	}

	snap.Effects = make([]EffectView, len(effects))
	for i := range effects {
		e := &effects[i]
		view := EffectView{
			Color:     e.Color,
			Alpha:     e.Alpha(),
			Particles: make([]ParticleView, len(e.Booms)),
		}
		for j, b := range e.Booms {
			view.Particles[j] = ParticleView{Center: e.Position(b), Size: b.Size}
		}
		snap.Effects[i] = view
	}
	return snap
}

// healthOf returns the health view of h, or nil when it is at exactly full
// health.
func healthOf(h object.Healthy) *HealthView {
	hp := h.Health()
	if !hp.Damaged() {
		return nil
	}
	return &HealthView{Max: hp.Max, Current: hp.Current}
}
