package ecs

import "github.com/l1jgo/asteroids/internal/component"

// World is the top-level ECS container. It owns the entity pool, one typed
// store per component tag, the ordered system list, and a deferred
// destruction queue.
//
// A World is single-goroutine: systems, factories and the orchestrator all
// run on the game loop. Nothing here locks.
type World struct {
	pool         *EntityPool
	registry     *Registry
	destroyQueue []EntityID
	systems      []System

	// version counts structural changes: entity create/remove and
	// component add/remove. Overwriting or mutating a component in place
	// does not bump it.
	version uint64

	Positions  *Store[component.Position]
	Velocities *Store[component.Velocity]
	Renders    *Store[component.Render]
	Colliders  *Store[component.Collider]
	Healths    *Store[component.Health]
	Inputs     *Store[component.Input]
	TTLs       *Store[component.TTL]
	Asteroids  *Store[component.Asteroid]
	Bullets    *Store[component.Bullet]
	GameStates *Store[component.GameState]
}

func NewWorld() *World {
	w := &World{
		pool:         NewEntityPool(),
		registry:     NewRegistry(),
		destroyQueue: make([]EntityID, 0, 64),
		systems:      make([]System, 0, 8),

		Positions:  newStore[component.Position](),
		Velocities: newStore[component.Velocity](),
		Renders:    newStore[component.Render](),
		Colliders:  newStore[component.Collider](),
		Healths:    newStore[component.Health](),
		Inputs:     newStore[component.Input](),
		TTLs:       newStore[component.TTL](),
		Asteroids:  newStore[component.Asteroid](),
		Bullets:    newStore[component.Bullet](),
		GameStates: newStore[component.GameState](),
	}

	w.registry.register(component.TagPosition, w.Positions)
	w.registry.register(component.TagVelocity, w.Velocities)
	w.registry.register(component.TagRender, w.Renders)
	w.registry.register(component.TagCollider, w.Colliders)
	w.registry.register(component.TagHealth, w.Healths)
	w.registry.register(component.TagInput, w.Inputs)
	w.registry.register(component.TagTTL, w.TTLs)
	w.registry.register(component.TagAsteroid, w.Asteroids)
	w.registry.register(component.TagBullet, w.Bullets)
	w.registry.register(component.TagGameState, w.GameStates)

	return w
}

// Version returns the structural version counter. External consumers
// compare it between frames to decide whether to re-query.
func (w *World) Version() uint64 { return w.version }

func (w *World) CreateEntity() EntityID {
	w.version++
	return w.pool.Create()
}

func (w *World) Alive(id EntityID) bool {
	return w.pool.Alive(id)
}

func (w *World) EntityCount() int {
	return w.pool.Len()
}

// Spawn creates an entity carrying the full component bundle. Systems run
// on the same goroutine, so none of them can observe it half-built.
func (w *World) Spawn(components ...component.Component) EntityID {
	id := w.CreateEntity()
	for _, c := range components {
		w.AddComponent(id, c)
	}
	return id
}

// AddComponent stores c on id, replacing any component with the same tag.
// c may be a component value or a pointer to one; the World keeps its own
// copy. Returns false if id is not alive or c is not a known component.
func (w *World) AddComponent(id EntityID, c component.Component) bool {
	if c == nil || !w.pool.Alive(id) {
		return false
	}
	s := w.registry.store(c.Tag())
	if s == nil {
		return false
	}
	added, ok := s.setAny(id, c)
	if added {
		w.version++
	}
	return ok
}

// GetComponent returns a pointer to id's component with the given tag, so
// callers mutate it in place. Absence is reported as (nil, false).
func (w *World) GetComponent(id EntityID, tag component.Tag) (component.Component, bool) {
	s := w.registry.store(tag)
	if s == nil {
		return nil, false
	}
	return s.lookup(id)
}

func (w *World) HasComponent(id EntityID, tag component.Tag) bool {
	s := w.registry.store(tag)
	return s != nil && s.Has(id)
}

// RemoveComponent deletes id's component with the given tag. No-op if absent.
func (w *World) RemoveComponent(id EntityID, tag component.Tag) {
	s := w.registry.store(tag)
	if s != nil && s.remove(id) {
		w.version++
	}
}

// RemoveEntity deletes id and every component it holds. Idempotent.
func (w *World) RemoveEntity(id EntityID) {
	removed := w.registry.RemoveAll(id)
	if w.pool.Destroy(id) || removed > 0 {
		w.version++
	}
}

// MarkForDestruction queues an entity for removal at the next
// FlushDestroyQueue, so callers iterating a query result never mutate the
// stores behind it.
func (w *World) MarkForDestruction(id EntityID) {
	w.destroyQueue = append(w.destroyQueue, id)
}

// FlushDestroyQueue removes all queued entities and clears the queue.
func (w *World) FlushDestroyQueue() {
	for _, id := range w.destroyQueue {
		w.RemoveEntity(id)
	}
	w.destroyQueue = w.destroyQueue[:0]
}

// Clear empties all entities and components. Registered systems stay.
// The ID counter is not rewound.
func (w *World) Clear() {
	w.registry.clear()
	w.pool.Reset()
	w.destroyQueue = w.destroyQueue[:0]
	w.version++
}
