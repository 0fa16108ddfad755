// Package input decodes the terminal byte stream into held keys and turns
// key state into per-tick intents.
package input

import (
	"io"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report key repeats, so a held key shows up as a byte every
// few tens of milliseconds.
const keyHoldDuration = 60 * time.Millisecond

// keyTimes tracks the last time each key was pressed.
type keyTimes struct {
	left      time.Time
	right     time.Time
	thrust    time.Time
	fireLight time.Time
	fireHeavy time.Time
	confirm   time.Time
	quit      time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	times  keyTimes
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r io.ByteReader) *Stream {
	s := newStream()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

func newStream() *Stream {
	return &Stream{ch: make(chan byte, 128)}
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// returns the keys pressed within the hold window. Escape sequences for the
// arrow keys are decoded. Once the reader ends, Quit stays set.
func ReadInput(s *Stream) Keys {
	return s.read(time.Now())
}

func (s *Stream) read(now time.Time) Keys {
	buf := s.drain()

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.times.thrust = now
				i += 2
				continue
			case 'C':
				s.times.right = now
				i += 2
				continue
			case 'D':
				s.times.left = now
				i += 2
				continue
			case 'B':
				i += 2
				continue
			}
		}

		applyByte(&s.times, b, now)
	}

	held := func(t time.Time) bool {
		return now.Sub(t) < keyHoldDuration
	}
	return Keys{
		Left:      held(s.times.left),
		Right:     held(s.times.right),
		Thrust:    held(s.times.thrust),
		FireLight: held(s.times.fireLight),
		FireHeavy: held(s.times.fireHeavy),
		Confirm:   held(s.times.confirm),
		Quit:      s.closed || held(s.times.quit),
	}
}

func (s *Stream) drain() []byte {
	var buf []byte
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break
			}
			buf = append(buf, b)
		default:
			return buf
		}
	}
	return buf
}

// ResetKeyInput forgets every held key, so a key pressed before a screen
// change does not carry over.
func ResetKeyInput(s *Stream) {
	s.drain()
	s.times = keyTimes{}
}

// applyByte updates the key timestamps based on the pressed byte.
func applyByte(t *keyTimes, b byte, now time.Time) {
	switch b {
	case 'a', 'A':
		t.left = now
	case 'd', 'D':
		t.right = now
	case 'w', 'W', ' ':
		t.thrust = now
	case 'j', 'J':
		t.fireLight = now
	case 'k', 'K':
		t.fireHeavy = now
	case '\n', '\r':
		t.confirm = now
	case 'q', 'Q', '\x03':
		t.quit = now
	}
}
