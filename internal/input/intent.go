package input

// FireMode is the weapon requested for a tick.
type FireMode int

const (
	FireNone FireMode = iota
	FireLight
	FireHeavy
)

// Intent is what the player asked for during one tick.
type Intent struct {
	Turn    int // -1 counter-clockwise, +1 clockwise, 0 none
	Thrust  bool
	Fire    FireMode
	Confirm bool
}

// Translate maps held keys to an intent. Opposite turn keys cancel, and
// light fire wins when both fire keys are held.
func Translate(k Keys) Intent {
	in := Intent{Thrust: k.Thrust, Confirm: k.Confirm}
	if k.Left {
		in.Turn--
	}
	if k.Right {
		in.Turn++
	}
	switch {
	case k.FireLight:
		in.Fire = FireLight
	case k.FireHeavy:
		in.Fire = FireHeavy
	}
	return in
}
