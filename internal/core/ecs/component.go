package ecs

import "github.com/l1jgo/asteroids/internal/component"

// store is the type-erased view of a Store used by the Registry for
// queries, lookups by tag and cascade removal.
type store interface {
	Has(id EntityID) bool
	Len() int
	each(fn func(EntityID))
	lookup(id EntityID) (component.Component, bool)
	setAny(id EntityID, c component.Component) (added, ok bool)
	remove(id EntityID) bool
	clear()
}

// Store is a generic typed map store for one component kind.
// No reflect, pure generics. Values are held by pointer so systems
// mutate components in place; only the World adds or removes entries.
type Store[T any] struct {
	data map[EntityID]*T
}

func newStore[T any]() *Store[T] {
	return &Store[T]{
		data: make(map[EntityID]*T, 64),
	}
}

func (s *Store[T]) Get(id EntityID) (*T, bool) {
	c, ok := s.data[id]
	return c, ok
}

func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.data[id]
	return ok
}

func (s *Store[T]) Len() int {
	return len(s.data)
}

func (s *Store[T]) each(fn func(EntityID)) {
	for id := range s.data {
		fn(id)
	}
}

// set stores c for id, reporting whether the entry is new.
func (s *Store[T]) set(id EntityID, c *T) bool {
	_, existed := s.data[id]
	s.data[id] = c
	return !existed
}

func (s *Store[T]) setAny(id EntityID, c component.Component) (added, ok bool) {
	switch v := any(c).(type) {
	case T:
		return s.set(id, &v), true
	case *T:
		if v == nil {
			return false, false
		}
		cp := *v
		return s.set(id, &cp), true
	}
	return false, false
}

func (s *Store[T]) lookup(id EntityID) (component.Component, bool) {
	c, ok := s.data[id]
	if !ok {
		return nil, false
	}
	cc, ok := any(c).(component.Component)
	return cc, ok
}

func (s *Store[T]) remove(id EntityID) bool {
	if _, ok := s.data[id]; !ok {
		return false
	}
	delete(s.data, id)
	return true
}

func (s *Store[T]) clear() {
	s.data = make(map[EntityID]*T, 64)
}
