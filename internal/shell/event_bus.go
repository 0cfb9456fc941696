package shell

import (
	"sync"
	"time"
)

const defaultEventBuffer = 64

// Event is one emitted event as seen by bus subscribers.
type Event struct {
	Name      string    `json:"name"`
	Payload   string    `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

// EventBus is an Emitter that publishes to any number of subscribers. Slow subscribers lose
// events instead of blocking the UI thread.
type EventBus struct {
	mu   sync.RWMutex
	subs map[chan Event]struct{}
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{subs: make(map[chan Event]struct{})}
}

// Subscribe registers a new subscriber. Callers must not close the returned channel; use
// Unsubscribe when finished.
func (b *EventBus) Subscribe() chan Event {
	ch := make(chan Event, defaultEventBuffer)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes the subscriber and closes the channel.
func (b *EventBus) Unsubscribe(ch chan Event) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}

// Subscribers returns the number of registered subscribers.
func (b *EventBus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Emit implements Emitter.
func (b *EventBus) Emit(name, payload string) {
	evt := Event{Name: name, Payload: payload, Timestamp: time.Now().UTC()}

	b.mu.RLock()
	for ch := range b.subs {
		select {
		case ch <- evt:
		default:
		}
	}
	b.mu.RUnlock()
}
