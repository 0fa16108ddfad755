package client

import (
	"github.com/tomz197/rocketraid/internal/loop"
)

// screen is what the client is showing on top of the arena.
type screen int

const (
	screenPlaying  screen = iota // HUD over live play
	screenGameOver               // Player died, waiting for ENTER
)

func screenOf(snap *loop.Snapshot) screen {
	if snap.PlayerAlive {
		return screenPlaying
	}
	return screenGameOver
}

// clientState is what the renderer remembers between frames. It is only
// touched from the frame loop.
type clientState struct {
	screen  screen
	prev    screen
	started bool // First frame rendered
}

// advance records the screen for snap and reports whether it changed since
// the previous frame, in which case the terminal needs a full clear.
func (s *clientState) advance(snap *loop.Snapshot) bool {
	s.prev = s.screen
	s.screen = screenOf(snap)
	changed := !s.started || s.screen != s.prev
	s.started = true
	return changed
}
