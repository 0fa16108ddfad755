// Package config centralizes all tunable game parameters.
package config

import (
	"time"

	"github.com/tomz197/rocketraid/internal/draw"
	"github.com/tomz197/rocketraid/internal/object"
)

// Default arena, used when no size is configured.
const (
	ArenaWidth  = 1366
	ArenaHeight = 768
)

// Loop rates.
const (
	TargetFPS          = 60
	TargetFrameTime    = time.Second / TargetFPS
	SpawnInterval      = 3000 * time.Millisecond
	PlayerTickTime     = 5 * time.Millisecond
	ProjectileTickTime = time.Millisecond
)

// Collision broad phase. A cell must cover the largest centre-to-centre
// distance at which a rocket and a bullet can still overlap.
const CollisionCellSize = 64.0

// EventQueueSize is the number of notifications buffered for the sink.
const EventQueueSize = 256

// Score awarded for a rocket destroyed by a bullet.
const ScorePerRocket = 1

// Client rendering. The canvas never exceeds this many terminal cells and is
// centred with a border when the terminal is larger.
const (
	MaxTermWidth  = 200
	MaxTermHeight = 56
	InputPollTime = 5 * time.Millisecond
)

// Health bars.
const (
	HealthBarHeight = 2.0
	HealthBarGap    = 4.0
)

// ImpactEffect is spawned where a killing bullet struck.
var ImpactEffect = object.EffectSpec{
	Distance: 50, Size: 50, Count: 60, Speed: 0.3,
	Color: draw.Color{R: 230, G: 207, B: 105},
}

// Burst is spawned at the centre of any entity that dies.
var Burst = []object.EffectSpec{
	{Distance: 45, Size: 55, Count: 15, Speed: 0.35, Color: draw.Color{R: 228, G: 204, B: 77}},
	{Distance: 65, Size: 15, Count: 11, Speed: 0.05, Color: draw.Color{R: 236, G: 76, B: 41}},
	{Distance: 35, Size: 10, Count: 11, Speed: 0.04, Color: draw.Color{R: 83, G: 82, B: 82}},
	{Distance: 85, Size: 5, Count: 11, Speed: 0.07, Color: draw.Color{R: 255, G: 255, B: 255}},
	{Distance: 15, Size: 8, Count: 60, Speed: 0.05, Color: draw.Color{R: 246, G: 153, B: 87}},
}
