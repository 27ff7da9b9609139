package component

import "time"

// Health stores hit points. Damage is ignored while InvulnerableRemaining > 0.
// Current <= 0 means dead.
type Health struct {
	Current               int
	Max                   int
	InvulnerableRemaining time.Duration
}

func (Health) Tag() Tag { return TagHealth }
