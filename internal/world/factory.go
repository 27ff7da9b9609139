package world

import (
	"math"
	"math/rand"

	"github.com/l1jgo/asteroids/internal/component"
	"github.com/l1jgo/asteroids/internal/config"
	"github.com/l1jgo/asteroids/internal/core/ecs"
	"github.com/l1jgo/asteroids/internal/data"
)

// Factory builds the game's entities. Every constructor attaches the
// entity's complete component bundle in a single Spawn call.
type Factory struct {
	cfg       *config.Config
	asteroids *data.AsteroidTable
	rng       *rand.Rand
}

func NewFactory(cfg *config.Config, asteroids *data.AsteroidTable, rng *rand.Rand) *Factory {
	return &Factory{cfg: cfg, asteroids: asteroids, rng: rng}
}

func (f *Factory) Config() *config.Config            { return f.cfg }
func (f *Factory) AsteroidTable() *data.AsteroidTable { return f.asteroids }

// Center returns the middle of the arena.
func (f *Factory) Center() (float64, float64) {
	return f.cfg.Arena.Width / 2, f.cfg.Arena.Height / 2
}

// Ship creates the player ship at the arena center, facing up.
func (f *Factory) Ship(w *ecs.World) ecs.EntityID {
	x, y := f.Center()
	s := f.cfg.Ship
	return w.Spawn(
		component.Position{X: x, Y: y},
		component.Velocity{},
		component.Render{Shape: component.ShapeTriangle, Size: s.Size, Color: s.Color, Rotation: -math.Pi / 2},
		component.Collider{Radius: s.ColliderRadius},
		component.Health{Current: s.MaxHealth, Max: s.MaxHealth},
		component.Input{},
	)
}

// Asteroid creates an asteroid of the given size drifting in a random
// direction at a speed within its tier's range.
func (f *Factory) Asteroid(w *ecs.World, x, y float64, size component.AsteroidSize) ecs.EntityID {
	tier := f.asteroids.Tier(size)
	angle := f.rng.Float64() * 2 * math.Pi
	speed := tier.MinSpeed + f.rng.Float64()*(tier.MaxSpeed-tier.MinSpeed)
	return w.Spawn(
		component.Position{X: x, Y: y},
		component.Velocity{DX: math.Cos(angle) * speed, DY: math.Sin(angle) * speed},
		component.Render{Shape: component.ShapeCircle, Size: tier.Radius, Color: tier.Color},
		component.Collider{Radius: tier.Radius},
		component.Asteroid{Size: size},
	)
}

// Bullet creates a projectile at (x, y) travelling along angle.
func (f *Factory) Bullet(w *ecs.World, x, y, angle float64) ecs.EntityID {
	b := f.cfg.Bullet
	return w.Spawn(
		component.Position{X: x, Y: y},
		component.Velocity{DX: math.Cos(angle) * b.Speed, DY: math.Sin(angle) * b.Speed},
		component.Render{Shape: component.ShapeCircle, Size: b.Radius, Color: b.Color, Rotation: angle},
		component.Collider{Radius: b.Radius},
		component.TTL{Remaining: b.TTL.Duration},
		component.Bullet{},
	)
}

// GameState creates the singleton progress record for a new game.
func (f *Factory) GameState(w *ecs.World) ecs.EntityID {
	return w.Spawn(component.GameState{
		Lives: f.cfg.Ship.MaxHealth,
		Level: 1,
	})
}

// Wave spawns count large asteroids spaced evenly on the spawn circle
// around the arena center.
func (f *Factory) Wave(w *ecs.World, count int) []ecs.EntityID {
	cx, cy := f.Center()
	r := f.cfg.Waves.SpawnRadius
	ids := make([]ecs.EntityID, 0, count)
	for i := 0; i < count; i++ {
		a := 2 * math.Pi * float64(i) / float64(count)
		ids = append(ids, f.Asteroid(w, cx+math.Cos(a)*r, cy+math.Sin(a)*r, component.AsteroidLarge))
	}
	return ids
}

// Seed populates an empty world for a new game: ship, game state and the
// opening wave.
func (f *Factory) Seed(w *ecs.World, asteroids int) (ship, state ecs.EntityID) {
	ship = f.Ship(w)
	state = f.GameState(w)
	f.Wave(w, asteroids)
	return ship, state
}
