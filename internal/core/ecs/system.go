package ecs

import "time"

// System is the interface every ECS system implements.
type System interface {
	// Update runs one frame of the system's logic.
	Update(w *World, dt time.Duration)
	// Reset clears state the system latches across frames. It is called
	// on restart, after Clear, because system instances are reused.
	Reset()
}

// AddSystem appends s to the execution order. Order is caller-controlled;
// registering the same instance twice runs it twice.
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
}

// Systems returns a copy of the registered systems in execution order.
func (w *World) Systems() []System {
	out := make([]System, len(w.systems))
	copy(out, w.systems)
	return out
}

// ResetSystems calls Reset on every registered system.
func (w *World) ResetSystems() {
	for _, s := range w.systems {
		s.Reset()
	}
}

// Update runs every system once, synchronously, in registration order.
func (w *World) Update(dt time.Duration) {
	systems := w.systems
	for _, s := range systems {
		s.Update(w, dt)
	}
}
