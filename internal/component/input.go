package component

import "time"

// Input is the per-entity control state, synchronized every frame from
// the external intent snapshot.
type Input struct {
	Thrust      bool
	RotateLeft  bool
	RotateRight bool
	Shoot       bool

	ShootCooldownRemaining time.Duration
}

func (Input) Tag() Tag { return TagInput }
