package ecs

import "github.com/l1jgo/asteroids/internal/component"

// Registry tracks one component store per tag. The store's key set doubles
// as the tag -> entities index used by queries.
type Registry struct {
	stores [component.TagCount]store
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) register(tag component.Tag, s store) {
	r.stores[tag] = s
}

// store returns the store for tag, or nil for an unknown tag.
func (r *Registry) store(tag component.Tag) store {
	if tag >= component.TagCount {
		return nil
	}
	return r.stores[tag]
}

// RemoveAll clears the given entity from every store and returns how many
// components were removed.
func (r *Registry) RemoveAll(id EntityID) int {
	n := 0
	for _, s := range r.stores {
		if s != nil && s.remove(id) {
			n++
		}
	}
	return n
}

func (r *Registry) clear() {
	for _, s := range r.stores {
		if s != nil {
			s.clear()
		}
	}
}
