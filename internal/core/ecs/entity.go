package ecs

// EntityID is an opaque entity handle. IDs come from a monotonic counter
// starting at 1 and are never reused within a World, so a stale ID held
// by an external consumer can never alias a newer entity.
type EntityID uint64

func (id EntityID) IsZero() bool { return id == 0 }

// EntityPool allocates entity IDs and tracks which of them are alive.
type EntityPool struct {
	alive  map[EntityID]struct{}
	nextID EntityID
}

func NewEntityPool() *EntityPool {
	return &EntityPool{
		alive:  make(map[EntityID]struct{}, 256),
		nextID: 1,
	}
}

func (p *EntityPool) Create() EntityID {
	id := p.nextID
	p.nextID++
	p.alive[id] = struct{}{}
	return id
}

func (p *EntityPool) Alive(id EntityID) bool {
	_, ok := p.alive[id]
	return ok
}

// Destroy marks id dead. Returns false if it was not alive.
func (p *EntityPool) Destroy(id EntityID) bool {
	if _, ok := p.alive[id]; !ok {
		return false
	}
	delete(p.alive, id)
	return true
}

func (p *EntityPool) Len() int {
	return len(p.alive)
}

// Reset forgets every live entity. The counter keeps running.
func (p *EntityPool) Reset() {
	p.alive = make(map[EntityID]struct{}, 256)
}
