package event_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/tomz197/rocketraid/internal/event"
	"github.com/tomz197/rocketraid/internal/event/mocks"
	"go.uber.org/mock/gomock"
)

func TestDispatcher_ForwardsInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sink := mocks.NewMockSink(ctrl)
	var wg sync.WaitGroup
	wg.Add(2)
	gomock.InOrder(
		sink.EXPECT().Notify(event.Event{Type: event.ShotFired, X: 1, Y: 2}).Do(func(event.Event) { wg.Done() }),
		sink.EXPECT().Notify(event.Event{Type: event.Destroyed}).Do(func(event.Event) { wg.Done() }),
	)

	d := event.NewDispatcher(sink, 8)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	d.Publish(event.Event{Type: event.ShotFired, X: 1, Y: 2}, event.Event{Type: event.Destroyed})
	wg.Wait()

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Run returned %v", err)
	}
}

func TestDispatcher_PublishNeverBlocks(t *testing.T) {
	d := event.NewDispatcher(event.Nop, 2)

	finished := make(chan struct{})
	go func() {
		for range 10 {
			d.Publish(event.Event{Type: event.RocketHit})
		}
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full queue")
	}
	if got := d.Dropped(); got != 8 {
		t.Errorf("Dropped() = %d, want 8", got)
	}
}

func TestDispatcher_DropHook(t *testing.T) {
	var lost []event.Type
	d := event.NewDispatcher(event.Nop, 1, event.WithDropHook(func(e event.Event) {
		lost = append(lost, e.Type)
	}))

	d.Publish(event.Event{Type: event.ShotFired}, event.Event{Type: event.GameOver})

	if len(lost) != 1 || lost[0] != event.GameOver {
		t.Errorf("dropped %v, want [game_over]", lost)
	}
	if got := d.Dropped(); got != 1 {
		t.Errorf("Dropped() = %d, want 1", got)
	}
}

func TestMulti(t *testing.T) {
	var got []event.Type
	record := event.SinkFunc(func(e event.Event) { got = append(got, e.Type) })
	event.Multi{record, event.Nop, record}.Notify(event.Event{Type: event.GameOver})

	if len(got) != 2 || got[0] != event.GameOver || got[1] != event.GameOver {
		t.Errorf("Multi delivered %v", got)
	}
}

func TestType_String(t *testing.T) {
	tests := map[event.Type]string{
		event.ShotFired: "shot_fired",
		event.RocketHit: "rocket_hit",
		event.Destroyed: "destroyed",
		event.GameOver:  "game_over",
		event.GameReset: "game_reset",
		event.Type(0):   "unknown",
	}
	for typ, want := range tests {
		if got := typ.String(); got != want {
			t.Errorf("Type(%d).String() = %q, want %q", int(typ), got, want)
		}
	}
}
