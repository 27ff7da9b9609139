package system

import (
	"math/rand"
	"testing"

	"github.com/l1jgo/asteroids/internal/component"
	"github.com/l1jgo/asteroids/internal/config"
	"github.com/l1jgo/asteroids/internal/core/ecs"
	"github.com/l1jgo/asteroids/internal/data"
	"github.com/l1jgo/asteroids/internal/world"
)

func newTestFactory(t *testing.T) *world.Factory {
	t.Helper()
	return world.NewFactory(config.Default(), data.DefaultAsteroidTable(), rand.New(rand.NewSource(1)))
}

func spawnBullet(w *ecs.World, x, y, radius float64) ecs.EntityID {
	return w.Spawn(
		component.Position{X: x, Y: y},
		component.Collider{Radius: radius},
		component.Bullet{},
	)
}

func asteroidCount(w *ecs.World) int {
	return len(w.Query(component.TagAsteroid))
}
