// Package events is the in-process invalidation channel between views.
// A component that mutates server state publishes the topics it
// invalidated; components that display that state subscribe and refetch
// on receipt, instead of reaching into each other's fetch functions.
package events

import (
	"sync"
	"time"
)

// Topic identifies a class of server-owned data a view can display.
type Topic string

// Topics published by the SDK's mutation helpers.
const (
	TopicBalance        Topic = "balance"
	TopicTransactions   Topic = "transactions"
	TopicPaymentMethods Topic = "payment_methods"
	TopicBudgets        Topic = "budgets"
	TopicGoals          Topic = "goals"
	TopicTasks          Topic = "tasks"
)

// Event records one invalidation.
type Event struct {
	Topic Topic
	At    time.Time
}

// Bus fans invalidations out to subscribers. Subscriber channels are
// buffered with one slot and publishes coalesce: a subscriber that has
// not drained its pending event does not queue another, since a single
// refetch covers any number of missed invalidations.
type Bus struct {
	mu   sync.Mutex
	subs map[Topic]map[int]chan Event
	next int
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Topic]map[int]chan Event)}
}

// Subscribe registers interest in a topic. The returned cancel function
// removes the subscription and closes the channel.
func (b *Bus) Subscribe(topic Topic) (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]chan Event)
	}

	id := b.next
	b.next++
	ch := make(chan Event, 1)
	b.subs[topic][id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[topic][id]; ok {
			delete(b.subs[topic], id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish notifies every subscriber of the topic. Never blocks.
func (b *Bus) Publish(topic Topic) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ev := Event{Topic: topic, At: time.Now()}
	for _, ch := range b.subs[topic] {
		select {
		case ch <- ev:
		default:
		}
	}
}
