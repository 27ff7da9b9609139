package system

import (
	"time"

	"github.com/l1jgo/asteroids/internal/component"
	"github.com/l1jgo/asteroids/internal/core/ecs"
)

// LifetimeSystem ages TTL components and removes expired entities.
// Decrement and removal are separate passes; nothing is removed while the
// query result is being walked.
type LifetimeSystem struct{}

func NewLifetimeSystem() *LifetimeSystem {
	return &LifetimeSystem{}
}

func (s *LifetimeSystem) Update(w *ecs.World, dt time.Duration) {
	ids := w.Query(component.TagTTL)
	for _, id := range ids {
		ttl, _ := w.TTLs.Get(id)
		ttl.Remaining -= dt
	}
	for _, id := range ids {
		if ttl, ok := w.TTLs.Get(id); ok && ttl.Remaining <= 0 {
			w.MarkForDestruction(id)
		}
	}
	w.FlushDestroyQueue()
}

func (s *LifetimeSystem) Reset() {}
