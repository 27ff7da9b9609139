package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/l1jgo/asteroids/internal/core/clock"
)

func TestActionForKey(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want Action
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionThrust},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionRotateLeft},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), ActionRotateRight},
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), ActionThrust},
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), ActionRotateLeft},
		{tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModNone), ActionRotateRight},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionShoot},
	}
	for _, c := range cases {
		got, ok := ActionForKey(c.ev)
		assert.True(t, ok, c.ev.Name())
		assert.Equal(t, c.want, got, c.ev.Name())
	}

	_, ok := ActionForKey(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone))
	assert.False(t, ok)
}

func TestKeyboardHoldWindow(t *testing.T) {
	c := clock.NewManual(time.Unix(0, 0))
	k := NewKeyboard(c, 100*time.Millisecond)

	assert.Equal(t, Intent{}, k.Snapshot())

	assert.True(t, k.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)))
	assert.True(t, k.HandleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))
	assert.Equal(t, Intent{Thrust: true, Shoot: true}, k.Snapshot())

	c.Advance(99 * time.Millisecond)
	assert.True(t, k.Snapshot().Thrust)

	// auto-repeat keeps thrust alive, shoot lapses
	k.Press(ActionThrust)
	c.Advance(50 * time.Millisecond)
	assert.Equal(t, Intent{Thrust: true}, k.Snapshot())

	c.Advance(100 * time.Millisecond)
	assert.Equal(t, Intent{}, k.Snapshot())
}

func TestKeyboardRelease(t *testing.T) {
	c := clock.NewManual(time.Unix(0, 0))
	k := NewKeyboard(c, 0)

	k.Press(ActionRotateLeft)
	k.Press(ActionRotateRight)
	assert.Equal(t, Intent{RotateLeft: true, RotateRight: true}, k.Snapshot())

	k.Release(ActionRotateLeft)
	assert.Equal(t, Intent{RotateRight: true}, k.Snapshot())

	k.ReleaseAll()
	assert.Equal(t, Intent{}, k.Snapshot())
}

func TestManualSource(t *testing.T) {
	var m Manual
	assert.Equal(t, Intent{}, m.Snapshot())
	m.Set(Intent{Shoot: true})
	assert.Equal(t, Intent{Shoot: true}, m.Snapshot())
}
