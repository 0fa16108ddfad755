package object

import (
	"github.com/tomz197/rocketraid/internal/physics"
)

// Bullet tuning.
const (
	BulletSpeed     = 3.0
	LightBulletSize = 5.0
	HeavyBulletSize = 20.0
)

// Bullet is a round projectile fired by the player. Its damage equals its size.
type Bullet struct {
	ID        ID
	X, Y      float64 // Top-left of the bounding square
	Angle     float64 // Degrees, captured at fire time
	Size      float64 // Diameter
	Speed     float64
	destroyed bool
}

// NewBullet creates a bullet whose bounding square has its top-left at (x, y).
func NewBullet(x, y, angle, size, speed float64) *Bullet {
	return &Bullet{
		ID:    nextID(),
		X:     x,
		Y:     y,
		Angle: angle,
		Size:  size,
		Speed: speed,
	}
}

// Center returns the middle of the bullet.
func (b *Bullet) Center() physics.Vec {
	return centerOf(b.X, b.Y, b.Size)
}

// Hull returns the collision circle in arena space.
func (b *Bullet) Hull() physics.Circle {
	return physics.Circle{Center: b.Center(), Radius: b.Size / 2}
}

// Damage returns the hit points a hit removes.
func (b *Bullet) Damage() float64 {
	return b.Size
}

// Outside reports whether the bullet has left the arena.
func (b *Bullet) Outside(a Arena) bool {
	return outside(b.X, b.Y, b.Size, b.Size, a)
}

// Update removes the bullet if it is already outside the arena, otherwise
// moves it one step.
func (b *Bullet) Update(ctx UpdateContext) bool {
	if b.destroyed || b.Outside(ctx.Arena) {
		return true
	}
	b.X, b.Y = physics.Advance(b.X, b.Y, b.Angle, b.Speed)
	return false
}

// MarkDestroyed marks the bullet for removal.
func (b *Bullet) MarkDestroyed() {
	b.destroyed = true
}

// IsDestroyed returns true if the bullet is marked for destruction.
func (b *Bullet) IsDestroyed() bool {
	return b.destroyed
}
