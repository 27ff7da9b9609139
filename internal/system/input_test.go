package system

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l1jgo/asteroids/internal/component"
	"github.com/l1jgo/asteroids/internal/core/ecs"
	"github.com/l1jgo/asteroids/internal/input"
)

func newInputFixture(t *testing.T) (*ecs.World, *InputSystem, *input.Manual, ecs.EntityID) {
	t.Helper()
	f := newTestFactory(t)
	src := &input.Manual{}
	w := ecs.NewWorld()
	ship := f.Ship(w)
	return w, NewInputSystem(src, f.Config().Ship, f, nil), src, ship
}

func bulletCount(w *ecs.World) int {
	return len(w.Query(component.TagBullet))
}

func TestInputSyncsIntent(t *testing.T) {
	w, sys, src, ship := newInputFixture(t)
	src.Set(input.Intent{Thrust: true, RotateRight: true})

	sys.Update(w, 16*time.Millisecond)

	in, _ := w.Inputs.Get(ship)
	assert.True(t, in.Thrust)
	assert.True(t, in.RotateRight)
	assert.False(t, in.RotateLeft)
	assert.False(t, in.Shoot)

	src.Set(input.Intent{})
	sys.Update(w, 16*time.Millisecond)
	assert.False(t, in.Thrust)
	assert.False(t, in.RotateRight)
}

func TestInputRotation(t *testing.T) {
	w, sys, src, ship := newInputFixture(t)
	r, _ := w.Renders.Get(ship)
	r.Rotation = 0

	src.Set(input.Intent{RotateRight: true})
	sys.Update(w, 500*time.Millisecond)
	assert.InDelta(t, 2.0, r.Rotation, 1e-9) // 4 rad/s

	src.Set(input.Intent{RotateLeft: true})
	sys.Update(w, 250*time.Millisecond)
	assert.InDelta(t, 1.0, r.Rotation, 1e-9)
}

func TestInputOpposingRotationCancels(t *testing.T) {
	w, sys, src, ship := newInputFixture(t)
	r, _ := w.Renders.Get(ship)
	r.Rotation = 0

	src.Set(input.Intent{RotateLeft: true, RotateRight: true})
	sys.Update(w, 100*time.Millisecond)

	assert.InDelta(t, 0.0, r.Rotation, 1e-12)
}

func TestInputThrustAndFriction(t *testing.T) {
	w, sys, src, ship := newInputFixture(t)
	r, _ := w.Renders.Get(ship)
	r.Rotation = 0

	src.Set(input.Intent{Thrust: true})
	sys.Update(w, time.Second)

	v, _ := w.Velocities.Get(ship)
	assert.InDelta(t, 200*0.99, v.DX, 1e-9)
	assert.InDelta(t, 0, v.DY, 1e-9)

	// friction keeps decaying without thrust
	src.Set(input.Intent{})
	sys.Update(w, 16*time.Millisecond)
	assert.InDelta(t, 200*0.99*0.99, v.DX, 1e-9)
}

func TestInputThrustFollowsFacing(t *testing.T) {
	w, sys, src, ship := newInputFixture(t)
	src.Set(input.Intent{Thrust: true})

	sys.Update(w, time.Second)

	// ships spawn facing up (-π/2)
	v, _ := w.Velocities.Get(ship)
	assert.InDelta(t, 0, v.DX, 1e-9)
	assert.InDelta(t, -200*0.99, v.DY, 1e-9)
}

func TestInputShootCooldown(t *testing.T) {
	w, sys, src, ship := newInputFixture(t)
	in, _ := w.Inputs.Get(ship)
	src.Set(input.Intent{Shoot: true})

	sys.Update(w, 16*time.Millisecond)
	assert.Equal(t, 1, bulletCount(w))
	assert.Equal(t, 200*time.Millisecond, in.ShootCooldownRemaining)

	sys.Update(w, 100*time.Millisecond)
	assert.Equal(t, 1, bulletCount(w), "held shoot must not fire during cooldown")

	sys.Update(w, 100*time.Millisecond)
	assert.Equal(t, 2, bulletCount(w))
	assert.Equal(t, 200*time.Millisecond, in.ShootCooldownRemaining)
}

func TestInputCooldownTicksWithoutShoot(t *testing.T) {
	w, sys, src, ship := newInputFixture(t)
	in, _ := w.Inputs.Get(ship)
	in.ShootCooldownRemaining = 200 * time.Millisecond

	sys.Update(w, 200*time.Millisecond)
	assert.LessOrEqual(t, in.ShootCooldownRemaining, time.Duration(0))

	src.Set(input.Intent{Shoot: true})
	sys.Update(w, 16*time.Millisecond)
	assert.Equal(t, 1, bulletCount(w))
}

func TestInputBulletLaunch(t *testing.T) {
	w, sys, src, ship := newInputFixture(t)
	p, _ := w.Positions.Get(ship)
	r, _ := w.Renders.Get(ship)
	r.Rotation = math.Pi

	src.Set(input.Intent{Shoot: true})
	sys.Update(w, 16*time.Millisecond)

	bullets := w.Query(component.TagBullet)
	require.Len(t, bullets, 1)
	bp, _ := w.Positions.Get(bullets[0])
	bv, _ := w.Velocities.Get(bullets[0])
	assert.Equal(t, p.X, bp.X)
	assert.Equal(t, p.Y, bp.Y)
	assert.InDelta(t, -400, bv.DX, 1e-9)
	assert.InDelta(t, 0, bv.DY, 1e-9)
}
