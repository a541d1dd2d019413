// Package observers provides the topic-keyed observer registry used by the status
// transaction and the observers the service registers on it.
package observers

import (
	"context"
	"fmt"
	"sync"

	"ordersync/internal/core/domain/model/events"
	"ordersync/internal/core/ports"
)

// ObserverFunc adapts a function to ports.OrderEventObserver.
type ObserverFunc func(ctx context.Context, scope ports.EventScope, event events.OrderUpdate) error

func (f ObserverFunc) Observe(ctx context.Context, scope ports.EventScope, event events.OrderUpdate) error {
	return f(ctx, scope, event)
}

// Dispatcher fans an event out to the observers subscribed to its topic.
// A topic with no observers is not an error.
//
// Example:
//
//	d := observers.NewDispatcher()
//	d.Subscribe(events.UpdateTopic, observers.NewOutboxForwarder("order-events"))
//	d.Subscribe(events.StatusTopic("shipped"), notifyWarehouse)
type Dispatcher struct {
	mu        sync.RWMutex
	observers map[string][]ports.OrderEventObserver
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		observers: make(map[string][]ports.OrderEventObserver),
	}
}

// Subscribe registers observer for topic. Observers run in registration order.
func (d *Dispatcher) Subscribe(topic string, observer ports.OrderEventObserver) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.observers[topic] = append(d.observers[topic], observer)
}

// Dispatch calls every observer of event.Topic and stops at the first error.
func (d *Dispatcher) Dispatch(ctx context.Context, scope ports.EventScope, event events.OrderUpdate) error {
	d.mu.RLock()
	subscribed := d.observers[event.Topic]
	d.mu.RUnlock()

	for i, observer := range subscribed {
		if err := observer.Observe(ctx, scope, event); err != nil {
			return fmt.Errorf("observer %d of topic %s failed: %w", i, event.Topic, err)
		}
	}
	return nil
}
