package system

import (
	"time"

	"github.com/l1jgo/asteroids/internal/component"
	"github.com/l1jgo/asteroids/internal/config"
	"github.com/l1jgo/asteroids/internal/core/ecs"
)

// MovementSystem integrates velocity into position and wraps anything that
// leaves the arena to the opposite edge.
type MovementSystem struct {
	arena config.ArenaConfig
}

func NewMovementSystem(arena config.ArenaConfig) *MovementSystem {
	return &MovementSystem{arena: arena}
}

func (s *MovementSystem) Update(w *ecs.World, dt time.Duration) {
	secs := dt.Seconds()
	ecs.Each2(w.Positions, w.Velocities, func(_ ecs.EntityID, p *component.Position, v *component.Velocity) {
		p.X += v.DX * secs
		p.Y += v.DY * secs
		p.X = wrap(p.X, s.arena.Width)
		p.Y = wrap(p.Y, s.arena.Height)
	})
}

func (s *MovementSystem) Reset() {}

// wrap teleports to the far boundary rather than taking a modulo: -1
// becomes limit, limit+1 becomes 0.
func wrap(v, limit float64) float64 {
	switch {
	case v < 0:
		return limit
	case v > limit:
		return 0
	}
	return v
}
