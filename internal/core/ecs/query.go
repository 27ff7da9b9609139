package ecs

import (
	"slices"

	"github.com/l1jgo/asteroids/internal/component"
)

// Query returns the entities that have every given tag, in ascending ID
// (creation) order. It scans the rarest tag's index and probes the others,
// so cost is bounded by the smallest matching set rather than the world
// size. No tags, or an unknown tag, yields an empty result.
func (w *World) Query(tags ...component.Tag) []EntityID {
	if len(tags) == 0 {
		return nil
	}

	stores := make([]store, 0, len(tags))
	rarest := 0
	for i, tag := range tags {
		s := w.registry.store(tag)
		if s == nil {
			return nil
		}
		stores = append(stores, s)
		if s.Len() < stores[rarest].Len() {
			rarest = i
		}
	}

	base := stores[rarest]
	result := make([]EntityID, 0, base.Len())
	base.each(func(id EntityID) {
		for i, s := range stores {
			if i != rarest && !s.Has(id) {
				return
			}
		}
		result = append(result, id)
	})
	slices.Sort(result)
	return result
}

// Each2 iterates over entities that have both component A and B.
// It iterates over the smaller store and checks the larger one.
// fn may mutate the components but must not add or remove any.
func Each2[A, B any](sa *Store[A], sb *Store[B], fn func(EntityID, *A, *B)) {
	if sa.Len() <= sb.Len() {
		for id, a := range sa.data {
			if b, ok := sb.data[id]; ok {
				fn(id, a, b)
			}
		}
	} else {
		for id, b := range sb.data {
			if a, ok := sa.data[id]; ok {
				fn(id, a, b)
			}
		}
	}
}
