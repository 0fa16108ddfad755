package object

import (
	"github.com/tomz197/rocketraid/internal/input"
	"github.com/tomz197/rocketraid/internal/physics"
)

// Player tuning.
const (
	PlayerSize     = 64.0
	PlayerMaxSpeed = 1.0
	PlayerAccel    = 0.01
	PlayerDecel    = 0.003
	PlayerTurnRate = 0.5 // Degrees per tick
	PlayerStartX   = 150.0
	PlayerStartY   = 150.0
)

// PlayerStartHP is the player's health at start and after restart.
// Current starts above Max.
var PlayerStartHP = HitPoints{Max: 30, Current: 40}

// playerHull is the ship outline in local, unrotated sprite coordinates.
var playerHull = physics.Polygon{
	{X: 0, Y: 15},
	{X: 20, Y: 5},
	{X: PlayerSize + 15, Y: PlayerSize / 2},
	{X: 20, Y: PlayerSize - 5},
	{X: 0, Y: PlayerSize - 15},
}

var playerPivot = physics.Vec{X: PlayerSize / 2, Y: PlayerSize / 2}

// Player is the ship steered by the keyboard.
type Player struct {
	X, Y      float64 // Top-left of the sprite
	Angle     float64 // Degrees, 0 points right
	Speed     float64
	Thrusting bool
	Alive     bool
	HP        HitPoints
	fire      FireControl
}

// NewPlayer creates a player at the start position.
func NewPlayer() *Player {
	p := &Player{}
	p.Reset()
	return p
}

// Reset puts the player back at the start position with full start health.
func (p *Player) Reset() {
	p.X, p.Y = PlayerStartX, PlayerStartY
	p.Angle = 0
	p.Speed = 0
	p.Thrusting = false
	p.Alive = true
	p.HP = PlayerStartHP
	p.fire.Reset()
}

// ChangeAngle sets the heading. Values below 0 become 359 and values above
// 359 become 0.
func (p *Player) ChangeAngle(angle float64) {
	p.Angle = clampAngle(angle)
}

// SpeedUp accelerates toward PlayerMaxSpeed.
func (p *Player) SpeedUp() {
	p.Thrusting = true
	p.Speed = min(p.Speed+PlayerAccel, PlayerMaxSpeed)
}

// SpeedDown decelerates toward a standstill.
func (p *Player) SpeedDown() {
	p.Thrusting = false
	p.Speed = max(p.Speed-PlayerDecel, 0)
}

// Step applies one tick of intent: fire control at the current heading,
// thrust, movement, then rotation. It returns the bullet fired this tick,
// if any. A dead player does not move or shoot.
func (p *Player) Step(in input.Intent) *Bullet {
	if !p.Alive {
		return nil
	}

	angle := p.Angle + float64(in.Turn)*PlayerTurnRate

	var shot *Bullet
	if size := p.fire.Tick(in.Fire); size > 0 {
		shot = p.Fire(size)
	}

	if in.Thrust {
		p.SpeedUp()
	} else {
		p.SpeedDown()
	}
	p.X, p.Y = physics.Advance(p.X, p.Y, p.Angle, p.Speed)
	p.ChangeAngle(angle)
	return shot
}

// Fire creates a bullet of the given size centred on the ship.
func (p *Player) Fire(size float64) *Bullet {
	offset := PlayerSize/2 - size/2
	return NewBullet(p.X+offset, p.Y+offset, p.Angle, size, BulletSpeed)
}

// Hull returns the collision outline in arena space.
func (p *Player) Hull() physics.Polygon {
	return physics.Transform(playerHull, playerPivot, p.Angle, physics.Vec{X: p.X, Y: p.Y})
}

// Center returns the middle of the sprite.
func (p *Player) Center() physics.Vec {
	return centerOf(p.X, p.Y, PlayerSize)
}

// Health implements Healthy.
func (p *Player) Health() HitPoints {
	return p.HP
}
