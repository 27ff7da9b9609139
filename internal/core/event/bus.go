package event

import (
	"reflect"
	"sync"
)

// Bus is a double-buffered event bus. Events emitted during tick N are
// delivered when the orchestrator calls SwapBuffers and DispatchAll at the
// start of tick N+1, so handlers never observe a half-updated world.
//
// A nil *Bus is valid and drops everything, which keeps systems usable
// without one.
type Bus struct {
	mu       sync.Mutex // only protects handler registration
	front    map[reflect.Type][]any
	back     map[reflect.Type][]any
	handlers map[reflect.Type][]any
}

func NewBus() *Bus {
	return &Bus{
		front:    make(map[reflect.Type][]any),
		back:     make(map[reflect.Type][]any),
		handlers: make(map[reflect.Type][]any),
	}
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Emit queues an event into the back buffer.
func Emit[T any](b *Bus, ev T) {
	if b == nil {
		return
	}
	t := typeOf[T]()
	b.back[t] = append(b.back[t], ev)
}

// Subscribe registers a typed handler for events of type T.
func Subscribe[T any](b *Bus, fn func(T)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	t := typeOf[T]()
	b.handlers[t] = append(b.handlers[t], fn)
}

// SwapBuffers makes the events emitted since the last swap deliverable and
// empties the back buffer.
func (b *Bus) SwapBuffers() {
	b.front, b.back = b.back, b.front
	for k := range b.back {
		b.back[k] = b.back[k][:0]
	}
}

// DispatchAll delivers the front buffer to subscribers, in emit order
// within each event type, and then empties it.
func (b *Bus) DispatchAll() {
	for t, events := range b.front {
		handlers := b.handlers[t]
		for _, ev := range events {
			for _, h := range handlers {
				callHandler(h, ev)
			}
		}
		b.front[t] = events[:0]
	}
}

// Pending reports how many events are waiting in the back buffer.
func (b *Bus) Pending() int {
	n := 0
	for _, events := range b.back {
		n += len(events)
	}
	return n
}

// Discard drops undelivered events in both buffers. Subscriptions stay.
func (b *Bus) Discard() {
	for k := range b.front {
		b.front[k] = b.front[k][:0]
	}
	for k := range b.back {
		b.back[k] = b.back[k][:0]
	}
}

func callHandler(handler any, ev any) {
	// Subscribe and Emit key by the same type, so the call is well typed.
	reflect.ValueOf(handler).Call([]reflect.Value{reflect.ValueOf(ev)})
}
