package loop

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	settings "github.com/tomz197/rocketraid/internal/config"
	"github.com/tomz197/rocketraid/internal/event"
	"github.com/tomz197/rocketraid/internal/input"
	"github.com/tomz197/rocketraid/internal/loop/config"
	"github.com/tomz197/rocketraid/internal/object"
)

// KeySource is sampled once per player tick. *input.KeyState implements it.
type KeySource interface {
	Keys() input.Keys
}

// Renderer draws a snapshot. An error ends the session.
type Renderer interface {
	Render(snap *Snapshot) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(*Snapshot) error

// Render calls f(snap).
func (f RendererFunc) Render(snap *Snapshot) error {
	return f(snap)
}

// Timing sets the period of each loop.
type Timing struct {
	Frame      time.Duration
	Spawn      time.Duration
	Player     time.Duration
	Projectile time.Duration
}

// DefaultTiming is the game's normal pace.
var DefaultTiming = Timing{
	Frame:      config.TargetFrameTime,
	Spawn:      config.SpawnInterval,
	Player:     config.PlayerTickTime,
	Projectile: config.ProjectileTickTime,
}

// Options configures a Session. Zero-valued collaborators are replaced with
// no-ops, and a zero Timing with DefaultTiming.
type Options struct {
	Arena    object.Arena
	Keys     KeySource
	Sink     event.Sink
	Renderer Renderer
	Logger   *log.Logger
	Timing   Timing
}

// Session owns one game: its world and the loops that drive it.
type Session struct {
	world    *World
	keys     KeySource
	renderer Renderer
	logger   *log.Logger
	timing   Timing
	spawner  *object.RocketSpawner
	events   *event.Dispatcher

	snapshot atomic.Pointer[Snapshot]
	stopped  atomic.Bool
}

// NewSession validates opts and builds a session ready to Run.
func NewSession(opts Options) (*Session, error) {
	if err := settings.ValidateArena(opts.Arena); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	keys := opts.Keys
	if keys == nil {
		keys = new(input.KeyState)
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = RendererFunc(func(*Snapshot) error { return nil })
	}
	timing := opts.Timing
	if timing == (Timing{}) {
		timing = DefaultTiming
	}

	sinks := event.Multi{logSink(logger)}
	if opts.Sink != nil {
		sinks = append(sinks, opts.Sink)
	}

	s := &Session{
		world:    NewWorld(opts.Arena),
		keys:     keys,
		renderer: renderer,
		logger:   logger,
		timing:   timing,
		spawner:  object.NewRocketSpawner(opts.Arena),
		events:   event.NewDispatcher(sinks, config.EventQueueSize, event.WithDropHook(logDrop(logger))),
	}
	s.snapshot.Store(s.world.Snapshot(0))
	return s, nil
}

// Snapshot returns the most recently published frame.
func (s *Session) Snapshot() *Snapshot {
	return s.snapshot.Load()
}

// Stop asks every loop to exit after its current iteration.
func (s *Session) Stop() {
	s.stopped.Store(true)
}

// Dropped returns how many notifications were lost to a full queue.
func (s *Session) Dropped() uint64 {
	return s.events.Dropped()
}

// Run drives the session until ctx is cancelled, Stop is called or the
// renderer fails. The first loop to exit stops the others.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	loops := []func(context.Context) error{
		s.frameLoop,
		s.spawnLoop,
		s.playerLoop,
		s.projectileLoop,
	}
	for _, run := range loops {
		g.Go(func() error {
			defer cancel()
			return run(ctx)
		})
	}
	g.Go(func() error {
		return s.events.Run(ctx)
	})

	s.logger.Info("session started", "arena", fmt.Sprintf("%dx%d", s.world.Arena().Width, s.world.Arena().Height))
	err := g.Wait()
	s.logger.Info("session ended", "score", s.world.Score(), "dropped_events", s.events.Dropped())
	return err
}

func (s *Session) running(ctx context.Context) bool {
	return !s.stopped.Load() && ctx.Err() == nil
}

// sleep waits for d or until ctx is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func (s *Session) frameLoop(ctx context.Context) error {
	var frame uint64
	for s.running(ctx) {
		start := time.Now()

		frame++
		snap := s.world.Snapshot(frame)
		s.snapshot.Store(snap)
		if err := s.renderer.Render(snap); err != nil {
			return fmt.Errorf("render frame %d: %w", frame, err)
		}

		sleep(ctx, s.timing.Frame-time.Since(start))
	}
	return nil
}

func (s *Session) spawnLoop(ctx context.Context) error {
	for s.running(ctx) {
		rockets := s.spawner.Spawn()
		s.world.AddRockets(rockets...)
		s.logger.Debug("rockets spawned", "count", len(rockets))
		sleep(ctx, s.timing.Spawn)
	}
	return nil
}

func (s *Session) playerLoop(ctx context.Context) error {
	for s.running(ctx) {
		intent := input.Translate(s.keys.Keys())
		s.events.Publish(s.world.StepPlayer(intent)...)
		sleep(ctx, s.timing.Player)
	}
	return nil
}

func (s *Session) projectileLoop(ctx context.Context) error {
	for s.running(ctx) {
		s.events.Publish(s.world.StepProjectiles()...)
		sleep(ctx, s.timing.Projectile)
	}
	return nil
}

// logSink records notifications. Game over and reset are logged at info
// level, the rest at debug.
func logSink(logger *log.Logger) event.Sink {
	return event.SinkFunc(func(e event.Event) {
		switch e.Type {
		case event.GameOver, event.GameReset:
			logger.Info("game event", "type", e.Type)
		default:
			logger.Debug("game event", "type", e.Type, "x", e.X, "y", e.Y)
		}
	})
}

// logDrop reports notifications lost to a full queue. Game over and reset
// are warnings, the rest debug.
func logDrop(logger *log.Logger) func(event.Event) {
	return func(e event.Event) {
		switch e.Type {
		case event.GameOver, event.GameReset:
			logger.Warn("game event dropped", "type", e.Type)
		default:
			logger.Debug("game event dropped", "type", e.Type)
		}
	}
}
