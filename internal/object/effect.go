package object

import (
	"math/rand"
	"sync"

	"github.com/tomz197/rocketraid/internal/draw"
	"github.com/tomz197/rocketraid/internal/physics"
)

// fadeFraction is the tail of an effect's travel over which it fades out.
const fadeFraction = 0.7

// effectPool is a sync.Pool for reusing Effect objects to reduce allocations.
var effectPool = sync.Pool{
	New: func() any {
		return &Effect{}
	},
}

// EffectSpec holds the parameters of one explosion ring.
type EffectSpec struct {
	Distance float64 // How far particles travel before the effect ends
	Size     int     // Largest particle edge length
	Count    int     // Number of particles
	Speed    float64 // Distance travelled per tick
	Color    draw.Color
}

// Boom is one particle of an effect: a square flying out along Angle.
type Boom struct {
	Size  float64
	Angle float64 // Degrees
}

// Effect is an expanding ring of square particles.
type Effect struct {
	X, Y        float64 // Origin
	MaxDistance float64
	Speed       float64
	Color       draw.Color
	Current     float64 // Distance travelled so far
	Booms       []Boom
	destroyed   bool
}

// NewEffect creates an effect at (x, y) from the pool.
func NewEffect(x, y float64, spec EffectSpec) *Effect {
	return newEffect(x, y, spec, rand.Intn)
}

func newEffect(x, y float64, spec EffectSpec, intn func(int) int) *Effect {
	e := effectPool.Get().(*Effect)
	e.X = x
	e.Y = y
	e.MaxDistance = spec.Distance
	e.Speed = spec.Speed
	e.Color = spec.Color
	e.Current = 0
	e.destroyed = false
	e.Booms = generateBooms(e.Booms[:0], spec.Count, spec.Size, intn)
	return e
}

// generateBooms splits the circle into count equal sectors and places one
// particle at a random offset inside each.
func generateBooms(dst []Boom, count, maxSize int, intn func(int) int) []Boom {
	if count <= 0 {
		return dst
	}
	per := 360 / float64(count)
	jitter := max(int(per), 1)
	maxSize = max(maxSize, 1)
	for i := range count {
		r := intn(jitter) + 1
		size := intn(maxSize) + 1
		dst = append(dst, Boom{
			Size:  float64(size),
			Angle: float64(i)*per + float64(r),
		})
	}
	return dst
}

// Update advances the ring outward. Returns true once it has reached its
// maximum distance.
func (e *Effect) Update(UpdateContext) bool {
	if e.destroyed {
		return true
	}
	e.Current += e.Speed
	return e.Done()
}

// Done reports whether the effect has finished.
func (e *Effect) Done() bool {
	return e.Current >= e.MaxDistance
}

// Alpha returns the opacity for the current distance: 1 for the first 30%
// of travel, then a linear fade to 0.
func (e *Effect) Alpha() float64 {
	if e.MaxDistance <= 0 {
		return 0
	}
	alpha := 1.0
	if e.Current >= e.MaxDistance-e.MaxDistance*fadeFraction {
		alpha = (e.MaxDistance - e.Current) / (e.MaxDistance * fadeFraction)
	}
	return min(max(alpha, 0), 1)
}

// Position returns where particle b currently sits.
func (e *Effect) Position(b Boom) physics.Vec {
	x, y := physics.Advance(e.X, e.Y, b.Angle, e.Current)
	return physics.Vec{X: x, Y: y}
}

// MarkDestroyed marks the effect for removal.
func (e *Effect) MarkDestroyed() {
	e.destroyed = true
}

// IsDestroyed returns true if the effect is marked for destruction.
func (e *Effect) IsDestroyed() bool {
	return e.destroyed
}

// Release returns the effect to the pool for reuse.
// Should be called when the effect is removed from the game.
func (e *Effect) Release() {
	effectPool.Put(e)
}
