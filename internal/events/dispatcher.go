package events

import (
	"context"
	"errors"
	"sync"
)

// EventHandler reacts to one portal event.
type EventHandler func(context.Context, Event) error

// Dispatcher fans job and application events out to subscribers such as
// the notification stubs, the metrics worker and the Redis forwarder.
type Dispatcher interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType EventType, handler EventHandler)
}

// localDispatcher delivers events synchronously inside the process.
type localDispatcher struct {
	mu          sync.RWMutex
	subscribers map[EventType][]EventHandler
}

// NewInMemoryDispatcher creates a dispatcher with no subscribers.
func NewInMemoryDispatcher() Dispatcher {
	return &localDispatcher{subscribers: make(map[EventType][]EventHandler)}
}

// Publish hands the event to every subscriber of its type. A failing
// subscriber, e.g. an unreachable Redis, does not starve the others; all
// failures come back joined.
func (d *localDispatcher) Publish(ctx context.Context, event Event) error {
	d.mu.RLock()
	subscribers := d.subscribers[event.Type]
	d.mu.RUnlock()

	var failures []error
	for _, handle := range subscribers {
		if err := handle(ctx, event); err != nil {
			failures = append(failures, err)
		}
	}
	return errors.Join(failures...)
}

// Subscribe adds handler for eventType. Subscriptions happen at startup.
func (d *localDispatcher) Subscribe(eventType EventType, handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.subscribers[eventType] = append(d.subscribers[eventType], handler)
}
