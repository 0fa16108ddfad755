package object

import (
	"github.com/tomz197/rocketraid/internal/physics"
)

// Rocket tuning.
const (
	RocketSize  = 50.0
	RocketSpeed = 0.3
	RocketHP    = 20.0
)

// rocketHull is the rocket outline in local, unrotated sprite coordinates.
var rocketHull = physics.Polygon{
	{X: 0, Y: RocketSize / 2},
	{X: 15, Y: 10},
	{X: RocketSize - 5, Y: 13},
	{X: RocketSize + 10, Y: RocketSize / 2},
	{X: RocketSize - 5, Y: RocketSize - 13},
	{X: 15, Y: RocketSize - 10},
}

var rocketPivot = physics.Vec{X: RocketSize / 2, Y: RocketSize / 2}

// Rocket is an enemy that flies straight across the arena.
type Rocket struct {
	ID        ID
	X, Y      float64 // Top-left of the sprite
	Angle     float64 // Degrees, fixed at spawn
	Speed     float64
	HP        HitPoints
	destroyed bool
}

// NewRocket creates a rocket at (x, y) heading along angle.
func NewRocket(x, y, angle float64) *Rocket {
	r := &Rocket{
		ID:    nextID(),
		X:     x,
		Y:     y,
		Speed: RocketSpeed,
		HP:    HitPoints{Max: RocketHP, Current: RocketHP},
	}
	r.ChangeAngle(angle)
	return r
}

// ChangeAngle sets the heading. Values below 0 become 359 and values above
// 359 become 0.
func (r *Rocket) ChangeAngle(angle float64) {
	r.Angle = clampAngle(angle)
}

// Hull returns the collision outline in arena space.
func (r *Rocket) Hull() physics.Polygon {
	return physics.Transform(rocketHull, rocketPivot, r.Angle, physics.Vec{X: r.X, Y: r.Y})
}

// Center returns the middle of the sprite.
func (r *Rocket) Center() physics.Vec {
	return centerOf(r.X, r.Y, RocketSize)
}

// Outside reports whether the rocket has left the arena.
func (r *Rocket) Outside(a Arena) bool {
	b := r.Hull().Bounds()
	return outside(r.X, r.Y, b.Width(), b.Height(), a)
}

// Update removes the rocket if it is already outside the arena, otherwise
// moves it one step.
func (r *Rocket) Update(ctx UpdateContext) bool {
	if r.destroyed || r.Outside(ctx.Arena) {
		return true
	}
	r.X, r.Y = physics.Advance(r.X, r.Y, r.Angle, r.Speed)
	return false
}

// Health implements Healthy.
func (r *Rocket) Health() HitPoints {
	return r.HP
}

// MarkDestroyed marks the rocket for removal (implements Destructible).
func (r *Rocket) MarkDestroyed() {
	r.destroyed = true
}

// IsDestroyed returns true if the rocket is marked for destruction (implements Destructible).
func (r *Rocket) IsDestroyed() bool {
	return r.destroyed
}

// clampAngle is the heading rule shared by the player and rockets. It clamps
// rather than wraps: -0.5 becomes 359 and 359.5 becomes 0.
func clampAngle(a float64) float64 {
	switch {
	case a < 0:
		return 359
	case a > 359:
		return 0
	default:
		return a
	}
}
