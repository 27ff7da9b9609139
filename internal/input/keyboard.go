package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/l1jgo/asteroids/internal/core/clock"
)

// Action is a gameplay input.
type Action uint8

const (
	ActionThrust Action = iota
	ActionRotateLeft
	ActionRotateRight
	ActionShoot

	actionCount
)

// DefaultHoldWindow is how long a key counts as held after its last
// press or auto-repeat event.
const DefaultHoldWindow = 150 * time.Millisecond

// Keyboard tracks key state from terminal key events. Terminals report
// presses and auto-repeats but never releases, so an action stays active
// until HoldWindow passes without a new event for it.
type Keyboard struct {
	clock      clock.Clock
	holdWindow time.Duration
	lastSeen   [actionCount]time.Time
}

func NewKeyboard(c clock.Clock, holdWindow time.Duration) *Keyboard {
	if holdWindow <= 0 {
		holdWindow = DefaultHoldWindow
	}
	return &Keyboard{clock: c, holdWindow: holdWindow}
}

// ActionForKey maps a key event to a gameplay action.
func ActionForKey(ev *tcell.EventKey) (Action, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionThrust, true
	case tcell.KeyLeft:
		return ActionRotateLeft, true
	case tcell.KeyRight:
		return ActionRotateRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return ActionThrust, true
		case 'a', 'A':
			return ActionRotateLeft, true
		case 'd', 'D':
			return ActionRotateRight, true
		case ' ':
			return ActionShoot, true
		}
	}
	return 0, false
}

// HandleKey records a key event. Returns false if the key is not a
// gameplay action.
func (k *Keyboard) HandleKey(ev *tcell.EventKey) bool {
	a, ok := ActionForKey(ev)
	if !ok {
		return false
	}
	k.Press(a)
	return true
}

// Press marks a as active from now.
func (k *Keyboard) Press(a Action) {
	if a < actionCount {
		k.lastSeen[a] = k.clock.Now()
	}
}

// Release clears a immediately.
func (k *Keyboard) Release(a Action) {
	if a < actionCount {
		k.lastSeen[a] = time.Time{}
	}
}

// ReleaseAll clears every action, e.g. on pause or focus loss.
func (k *Keyboard) ReleaseAll() {
	k.lastSeen = [actionCount]time.Time{}
}

func (k *Keyboard) active(a Action, now time.Time) bool {
	t := k.lastSeen[a]
	return !t.IsZero() && now.Sub(t) < k.holdWindow
}

func (k *Keyboard) Snapshot() Intent {
	now := k.clock.Now()
	return Intent{
		Thrust:      k.active(ActionThrust, now),
		RotateLeft:  k.active(ActionRotateLeft, now),
		RotateRight: k.active(ActionRotateRight, now),
		Shoot:       k.active(ActionShoot, now),
	}
}
