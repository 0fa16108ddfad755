package object

import "github.com/tomz197/rocketraid/internal/input"

// FireCooldown is the number of player ticks between shots while a fire key
// stays held.
const FireCooldown = 15

// FireControl meters shots while a fire key is held.
type FireControl struct {
	counter int
}

// Tick advances the cooldown for one player tick. It reports the bullet size
// to fire, or 0 when no shot is due. Releasing fire resets the counter so the
// next press shoots immediately.
func (f *FireControl) Tick(mode input.FireMode) float64 {
	if mode == input.FireNone {
		f.counter = 0
		return 0
	}

	var size float64
	if f.counter == 0 {
		size = LightBulletSize
		if mode == input.FireHeavy {
			size = HeavyBulletSize
		}
	}
	f.counter++
	if f.counter == FireCooldown {
		f.counter = 0
	}
	return size
}

// Reset clears the cooldown.
func (f *FireControl) Reset() {
	f.counter = 0
}
