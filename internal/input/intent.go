package input

// Intent is a snapshot of the player's active actions for one frame.
type Intent struct {
	Thrust      bool
	RotateLeft  bool
	RotateRight bool
	Shoot       bool
}

// Source produces intent snapshots. Adapters know nothing about entities.
type Source interface {
	Snapshot() Intent
}

// Manual is an intent set directly by its owner, e.g. on-screen touch
// controls. The zero value is idle.
type Manual struct {
	Intent Intent
}

func (m *Manual) Snapshot() Intent { return m.Intent }

func (m *Manual) Set(i Intent) { m.Intent = i }
