package object

// HitPoints is the health of a single entity. It is held by value and never
// shared. Current is not clamped: overkill leaves it negative.
type HitPoints struct {
	Max     float64
	Current float64
}

// ApplyDamage subtracts amount and reports whether the entity is still alive.
func (hp *HitPoints) ApplyDamage(amount float64) bool {
	hp.Current -= amount
	return hp.Current > 0
}

// Reset restores Current to Max.
func (hp *HitPoints) Reset() {
	hp.Current = hp.Max
}

// Fraction returns Current/Max, or 0 when Max is not positive.
// The result may fall outside [0, 1].
func (hp HitPoints) Fraction() float64 {
	if hp.Max <= 0 {
		return 0
	}
	return hp.Current / hp.Max
}

// Damaged reports whether the entity is not at exactly full health.
func (hp HitPoints) Damaged() bool {
	return hp.Current != hp.Max
}

// Alive reports whether Current is above zero.
func (hp HitPoints) Alive() bool {
	return hp.Current > 0
}
