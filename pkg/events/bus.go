package events

import (
	"log/slog"
	"sync"
)

// DefaultBusBuffer is the per-subscriber channel capacity.
const DefaultBusBuffer = 64

// Bus fans events out to in-process subscribers. Publish never blocks:
// a subscriber whose buffer is full is dropped and its channel closed,
// so a stalled consumer cannot back up the engine.
type Bus struct {
	mu     sync.RWMutex
	subs   map[int]*Subscription
	nextID int
	buffer int
}

// Subscription is a live event feed. Events arrive on C in publish
// order. C is closed after Close, or unilaterally by the bus when the
// subscriber falls behind.
type Subscription struct {
	C <-chan Event

	bus         *Bus
	id          int
	executionID string
	ch          chan Event
}

// Close detaches the subscription and closes C. Safe to call more than once.
func (s *Subscription) Close() {
	s.bus.drop(s.id)
}

// NewBus creates a Bus. buffer <= 0 selects DefaultBusBuffer.
func NewBus(buffer int) *Bus {
	if buffer <= 0 {
		buffer = DefaultBusBuffer
	}
	return &Bus{
		subs:   make(map[int]*Subscription),
		buffer: buffer,
	}
}

// Subscribe returns a feed of every event published for the given
// execution after this call. An empty executionID receives events for
// all executions.
func (b *Bus) Subscribe(executionID string) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	ch := make(chan Event, b.buffer)
	sub := &Subscription{
		C:           ch,
		bus:         b,
		id:          b.nextID,
		executionID: executionID,
		ch:          ch,
	}
	b.subs[sub.id] = sub
	return sub
}

// Publish delivers the event to every matching subscriber. Sends are
// non-blocking; a subscriber with a full buffer is dropped.
func (b *Bus) Publish(evt Event) {
	var doomed []int

	b.mu.RLock()
	for id, sub := range b.subs {
		if sub.executionID != "" && sub.executionID != evt.ExecutionID {
			continue
		}
		select {
		case sub.ch <- evt:
		default:
			doomed = append(doomed, id)
		}
	}
	b.mu.RUnlock()

	for _, id := range doomed {
		slog.Warn("Dropping slow event subscriber",
			"subscriber_id", id, "execution_id", evt.ExecutionID, "type", evt.Type)
		b.drop(id)
	}
}

// drop removes a subscription and closes its channel. No-op for ids
// already removed. The close happens under the write lock, which
// excludes Publish sends (they hold the read lock), so a send can never
// race the close.
func (b *Bus) drop(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	sub, ok := b.subs[id]
	if !ok {
		return
	}
	delete(b.subs, id)
	close(sub.ch)
}

// subscriberCount is used by tests to poll instead of sleeping.
func (b *Bus) subscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
