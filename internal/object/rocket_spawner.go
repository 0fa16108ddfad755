package object

import "math/rand"

// spawnMargin keeps spawned rockets this far from the top and bottom edges.
const spawnMargin = 25

// RocketSpawner creates a pair of rockets, one entering from each side.
type RocketSpawner struct {
	arena Arena
	intn  func(n int) int
}

// NewRocketSpawner creates a spawner for the given arena.
func NewRocketSpawner(arena Arena) *RocketSpawner {
	return &RocketSpawner{arena: arena, intn: rand.Intn}
}

// Spawn returns a rocket at the left edge heading right and a rocket at the
// right edge heading left, each at an independent random height.
func (s *RocketSpawner) Spawn() []*Rocket {
	return []*Rocket{
		NewRocket(0, s.spawnY(), 0),
		NewRocket(float64(s.arena.Width), s.spawnY(), 180),
	}
}

// spawnY picks a height in [25, height-25). Arenas too short for that range
// spawn at mid-height.
func (s *RocketSpawner) spawnY() float64 {
	span := s.arena.Height - 2*spawnMargin
	if span < 1 {
		return float64(s.arena.Height) / 2
	}
	return float64(s.intn(span) + spawnMargin)
}
