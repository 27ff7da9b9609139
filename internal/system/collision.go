package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/l1jgo/asteroids/internal/component"
	"github.com/l1jgo/asteroids/internal/config"
	"github.com/l1jgo/asteroids/internal/core/ecs"
	"github.com/l1jgo/asteroids/internal/core/event"
	"github.com/l1jgo/asteroids/internal/world"
)

// Pair is two entities whose colliders overlap. A < B in query order.
type Pair struct {
	A, B ecs.EntityID
}

// BroadPhase finds overlapping pairs among ids. Implementations only
// detect; resolution belongs to CollisionSystem.
type BroadPhase interface {
	Pairs(w *ecs.World, ids []ecs.EntityID) []Pair
}

// BruteForce tests every unordered pair. Fine for a few dozen entities.
type BruteForce struct{}

func (BruteForce) Pairs(w *ecs.World, ids []ecs.EntityID) []Pair {
	var pairs []Pair
	for i := 0; i < len(ids); i++ {
		pa, _ := w.Positions.Get(ids[i])
		ca, _ := w.Colliders.Get(ids[i])
		for j := i + 1; j < len(ids); j++ {
			pb, _ := w.Positions.Get(ids[j])
			cb, _ := w.Colliders.Get(ids[j])
			if Overlaps(pa, ca, pb, cb) {
				pairs = append(pairs, Pair{A: ids[i], B: ids[j]})
			}
		}
	}
	return pairs
}

// Overlaps reports whether two circles intersect. Touching is not a hit.
func Overlaps(pa *component.Position, ca *component.Collider, pb *component.Position, cb *component.Collider) bool {
	dx := pa.X - pb.X
	dy := pa.Y - pb.Y
	r := ca.Radius + cb.Radius
	return dx*dx+dy*dy < r*r
}

// CollisionSystem detects overlapping colliders and resolves bullet hits
// (split asteroid, award score) and ship hits (damage with a grace
// window). Each pair fires at most one rule.
type CollisionSystem struct {
	factory   *world.Factory
	broad     BroadPhase
	killAward int
	grace     time.Duration
	bus       *event.Bus
	log       *zap.Logger
}

func NewCollisionSystem(factory *world.Factory, scoring config.ScoringConfig, ship config.ShipConfig, bus *event.Bus, log *zap.Logger) *CollisionSystem {
	return &CollisionSystem{
		factory:   factory,
		broad:     BruteForce{},
		killAward: scoring.KillAward,
		grace:     ship.Invulnerability.Duration,
		bus:       bus,
		log:       log,
	}
}

// SetBroadPhase replaces the pair finder.
func (s *CollisionSystem) SetBroadPhase(bp BroadPhase) {
	s.broad = bp
}

func (s *CollisionSystem) Update(w *ecs.World, _ time.Duration) {
	ids := w.Query(component.TagPosition, component.TagCollider)
	for _, p := range s.broad.Pairs(w, ids) {
		// An earlier pair this frame may have removed either side.
		if !w.Positions.Has(p.A) || !w.Positions.Has(p.B) {
			continue
		}
		if s.bulletHit(w, p.A, p.B) || s.bulletHit(w, p.B, p.A) {
			continue
		}
		if s.shipHit(w, p.A, p.B) {
			continue
		}
		s.shipHit(w, p.B, p.A)
	}
}

func (s *CollisionSystem) Reset() {}

func (s *CollisionSystem) bulletHit(w *ecs.World, bullet, asteroid ecs.EntityID) bool {
	if !w.Bullets.Has(bullet) {
		return false
	}
	a, ok := w.Asteroids.Get(asteroid)
	if !ok {
		return false
	}
	pos, _ := w.Positions.Get(asteroid)
	x, y, size := pos.X, pos.Y, a.Size

	w.RemoveEntity(bullet)
	w.RemoveEntity(asteroid)
	children := s.split(w, x, y, size)

	if states := w.Query(component.TagGameState); len(states) > 0 {
		gs, _ := w.GameStates.Get(states[0])
		gs.Score += s.killAward
	}
	event.Emit(s.bus, event.AsteroidDestroyed{Asteroid: asteroid, Size: size, Children: children, Award: s.killAward})
	s.log.Debug("asteroid hit",
		zap.Uint64("asteroid", uint64(asteroid)),
		zap.Stringer("size", size),
		zap.Int("children", children),
	)
	return true
}

// split spawns the next tier down on opposite diagonals around (x, y).
func (s *CollisionSystem) split(w *ecs.World, x, y float64, size component.AsteroidSize) int {
	tier := s.factory.AsteroidTable().Tier(size)
	if tier.SplitInto == nil {
		return 0
	}
	off := tier.SplitOffset
	s.factory.Asteroid(w, x+off, y+off, *tier.SplitInto)
	s.factory.Asteroid(w, x-off, y-off, *tier.SplitInto)
	return 2
}

// shipHit damages the ship unless it is still invulnerable. The asteroid
// survives either way.
func (s *CollisionSystem) shipHit(w *ecs.World, ship, asteroid ecs.EntityID) bool {
	h, ok := w.Healths.Get(ship)
	if !ok || !w.Asteroids.Has(asteroid) {
		return false
	}
	if h.InvulnerableRemaining > 0 {
		return true
	}
	h.Current--
	h.InvulnerableRemaining = s.grace
	event.Emit(s.bus, event.ShipDamaged{Ship: ship, Health: h.Current})
	s.log.Debug("ship hit", zap.Uint64("ship", uint64(ship)), zap.Int("health", h.Current))
	return true
}
