package event

import (
	"github.com/l1jgo/asteroids/internal/component"
	"github.com/l1jgo/asteroids/internal/core/ecs"
)

// BulletFired is emitted when a ship launches a bullet.
type BulletFired struct {
	Shooter ecs.EntityID
	Bullet  ecs.EntityID
}

// AsteroidDestroyed is emitted when a bullet breaks an asteroid.
type AsteroidDestroyed struct {
	Asteroid ecs.EntityID
	Size     component.AsteroidSize
	Children int
	Award    int
}

// ShipDamaged is emitted when a ship loses health to an asteroid.
type ShipDamaged struct {
	Ship   ecs.EntityID
	Health int
}

// WaveSpawned is emitted when a cleared level brings in a new wave.
type WaveSpawned struct {
	Level int // level that was cleared
	Count int
}
