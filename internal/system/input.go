package system

import (
	"math"
	"time"

	"github.com/l1jgo/asteroids/internal/component"
	"github.com/l1jgo/asteroids/internal/config"
	"github.com/l1jgo/asteroids/internal/core/ecs"
	"github.com/l1jgo/asteroids/internal/core/event"
	"github.com/l1jgo/asteroids/internal/input"
	"github.com/l1jgo/asteroids/internal/world"
)

// InputSystem copies the current input intent into every controllable
// entity and turns it into rotation, thrust and bullets.
type InputSystem struct {
	source  input.Source
	ship    config.ShipConfig
	factory *world.Factory
	bus     *event.Bus
}

func NewInputSystem(source input.Source, ship config.ShipConfig, factory *world.Factory, bus *event.Bus) *InputSystem {
	return &InputSystem{source: source, ship: ship, factory: factory, bus: bus}
}

func (s *InputSystem) Update(w *ecs.World, dt time.Duration) {
	intent := s.source.Snapshot()
	secs := dt.Seconds()

	for _, id := range w.Query(component.TagInput, component.TagRender, component.TagVelocity) {
		in, _ := w.Inputs.Get(id)
		r, _ := w.Renders.Get(id)
		v, _ := w.Velocities.Get(id)

		in.Thrust = intent.Thrust
		in.RotateLeft = intent.RotateLeft
		in.RotateRight = intent.RotateRight
		in.Shoot = intent.Shoot

		// Both directions may apply in one frame and cancel out.
		if in.RotateLeft {
			r.Rotation -= s.ship.RotationSpeed * secs
		}
		if in.RotateRight {
			r.Rotation += s.ship.RotationSpeed * secs
		}

		if in.Thrust {
			v.DX += math.Cos(r.Rotation) * s.ship.ThrustForce * secs
			v.DY += math.Sin(r.Rotation) * s.ship.ThrustForce * secs
		}
		v.DX *= s.ship.Friction
		v.DY *= s.ship.Friction

		if in.ShootCooldownRemaining > 0 {
			in.ShootCooldownRemaining -= dt
		}
		if in.Shoot && in.ShootCooldownRemaining <= 0 {
			if p, ok := w.Positions.Get(id); ok {
				b := s.factory.Bullet(w, p.X, p.Y, r.Rotation)
				event.Emit(s.bus, event.BulletFired{Shooter: id, Bullet: b})
			}
			in.ShootCooldownRemaining = s.ship.ShootCooldown.Duration
		}
	}
}

func (s *InputSystem) Reset() {}
