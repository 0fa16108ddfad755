// Package event carries engine notifications to the host collaborators
// (audio, logging) without ever blocking the simulation.
package event

import (
	"context"
	"sync/atomic"
)

//go:generate go tool mockgen -destination=./mocks/sink_mock.go -package=mocks . Sink

// Type identifies what happened.
type Type int

const (
	ShotFired Type = iota + 1
	RocketHit
	Destroyed
	GameOver
	GameReset
)

func (t Type) String() string {
	switch t {
	case ShotFired:
		return "shot_fired"
	case RocketHit:
		return "rocket_hit"
	case Destroyed:
		return "destroyed"
	case GameOver:
		return "game_over"
	case GameReset:
		return "game_reset"
	default:
		return "unknown"
	}
}

// Event is a single notification. X and Y locate it in the arena where that
// makes sense.
type Event struct {
	Type Type
	X, Y float64
}

// Sink receives notifications. Notify must not block for long.
type Sink interface {
	Notify(e Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Event)

// Notify calls f(e).
func (f SinkFunc) Notify(e Event) {
	f(e)
}

// Nop discards every notification.
var Nop Sink = SinkFunc(func(Event) {})

// Multi fans a notification out to several sinks in order.
type Multi []Sink

// Notify forwards e to every sink.
func (m Multi) Notify(e Event) {
	for _, s := range m {
		s.Notify(e)
	}
}

// Dispatcher queues notifications and forwards them to a sink on its own
// goroutine. Publish never blocks: when the queue is full the notification
// is dropped.
type Dispatcher struct {
	ch      chan Event
	sink    Sink
	onDrop  func(Event)
	dropped atomic.Uint64
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithDropHook calls fn for every notification lost to a full queue. fn runs
// on the publishing goroutine and must not block.
func WithDropHook(fn func(Event)) Option {
	return func(d *Dispatcher) {
		d.onDrop = fn
	}
}

// NewDispatcher creates a dispatcher with a queue of the given size.
func NewDispatcher(sink Sink, size int, opts ...Option) *Dispatcher {
	if sink == nil {
		sink = Nop
	}
	d := &Dispatcher{
		ch:   make(chan Event, max(size, 1)),
		sink: sink,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Publish queues events without blocking.
func (d *Dispatcher) Publish(events ...Event) {
	for _, e := range events {
		select {
		case d.ch <- e:
		default:
			d.dropped.Add(1)
			if d.onDrop != nil {
				d.onDrop(e)
			}
		}
	}
}

// Dropped returns how many notifications were discarded because the queue was full.
func (d *Dispatcher) Dropped() uint64 {
	return d.dropped.Load()
}

// Run forwards queued notifications to the sink until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case e := <-d.ch:
			d.sink.Notify(e)
		}
	}
}
