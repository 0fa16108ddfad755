// Package object defines the game entities (player ship, rockets, bullets and
// explosion effects) and the hit-point model they share.
package object

import (
	"sync/atomic"

	"github.com/tomz197/rocketraid/internal/physics"
)

// Arena is the bounded play area in pixels. Nothing wraps around its edges.
type Arena struct {
	Width  int
	Height int
}

// Valid reports whether both dimensions are positive.
func (a Arena) Valid() bool {
	return a.Width > 0 && a.Height > 0
}

// ID identifies an entity for the lifetime of the process.
type ID uint64

var lastID atomic.Uint64

func nextID() ID {
	return ID(lastID.Add(1))
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Arena Arena
}

// Object is an updatable game entity.
type Object interface {
	// Update advances the object by one tick. Returns true if the object
	// should be removed.
	Update(ctx UpdateContext) (remove bool)
}

// Destructible is implemented by objects that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal on the next sweep.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// Healthy is implemented by entities that carry hit points.
type Healthy interface {
	Health() HitPoints
}

// outside applies the arena exit rule to an entity whose top-left corner is
// (x, y) and whose extent is w by h.
func outside(x, y, w, h float64, a Arena) bool {
	return x <= -w || y < -h || x > float64(a.Width) || y > float64(a.Height)
}

// Sweep compacts objs in place, dropping destroyed entries and releasing
// pooled ones. The backing array is reused.
func Sweep[T interface {
	Object
	Destructible
}](objs []T) []T {
	kept := objs[:0]
	for _, o := range objs {
		if o.IsDestroyed() {
			ReleaseObject(o)
			continue
		}
		kept = append(kept, o)
	}
	clear(objs[len(kept):])
	return kept
}

// centerOf returns the middle of a square sprite of the given size whose
// top-left corner is (x, y).
func centerOf(x, y, size float64) physics.Vec {
	return physics.Vec{X: x + size/2, Y: y + size/2}
}
