package input

import "sync/atomic"

// Keys is the set of keys currently held.
type Keys struct {
	Left      bool
	Right     bool
	Thrust    bool
	FireLight bool
	FireHeavy bool
	Confirm   bool
	Quit      bool // Handled by the host, never by the simulation
}

const (
	bitLeft uint32 = 1 << iota
	bitRight
	bitThrust
	bitFireLight
	bitFireHeavy
	bitConfirm
	bitQuit
)

func (k Keys) bits() uint32 {
	var b uint32
	set := func(on bool, bit uint32) {
		if on {
			b |= bit
		}
	}
	set(k.Left, bitLeft)
	set(k.Right, bitRight)
	set(k.Thrust, bitThrust)
	set(k.FireLight, bitFireLight)
	set(k.FireHeavy, bitFireHeavy)
	set(k.Confirm, bitConfirm)
	set(k.Quit, bitQuit)
	return b
}

func keysFromBits(b uint32) Keys {
	return Keys{
		Left:      b&bitLeft != 0,
		Right:     b&bitRight != 0,
		Thrust:    b&bitThrust != 0,
		FireLight: b&bitFireLight != 0,
		FireHeavy: b&bitFireHeavy != 0,
		Confirm:   b&bitConfirm != 0,
		Quit:      b&bitQuit != 0,
	}
}

// KeyState holds the latest Keys. The host writes it and the simulation
// samples it; both sides may run on different goroutines.
type KeyState struct {
	bits atomic.Uint32
}

// Set replaces the held keys.
func (s *KeyState) Set(k Keys) {
	s.bits.Store(k.bits())
}

// Keys returns the held keys.
func (s *KeyState) Keys() Keys {
	return keysFromBits(s.bits.Load())
}
