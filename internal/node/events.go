package node

import (
	"log/slog"
	"sync"

	"zigbee-go-zcl/internal/zcl"
)

// Event is an inbound command that did not answer a pending transaction,
// or one attribute of an attribute report.
type Event struct {
	// Type is the command name, or "attr.<name>" for reported attributes.
	Type     string
	Endpoint uint8
	Cluster  string
	Args     zcl.Args
	// Value holds the reported value for "attr." events.
	Value any
	Meta  zcl.Meta
}

// EventHandler is a callback for events.
type EventHandler func(Event)

// Filter selects events. Zero fields match anything.
type Filter struct {
	Type     string
	Endpoint uint8
	Cluster  string
}

// Match reports whether ev passes the filter.
func (f Filter) Match(ev Event) bool {
	return (f.Type == "" || f.Type == ev.Type) &&
		(f.Endpoint == 0 || f.Endpoint == ev.Endpoint) &&
		(f.Cluster == "" || f.Cluster == ev.Cluster)
}

type subscription struct {
	filter  Filter
	handler EventHandler
}

// EventBus delivers node events to subscribers in subscription order.
type EventBus struct {
	mu     sync.RWMutex
	subs   map[uint64]subscription
	order  []uint64
	nextID uint64
	logger *slog.Logger
}

func NewEventBus(logger *slog.Logger) *EventBus {
	return &EventBus{subs: make(map[uint64]subscription), logger: logger}
}

// Subscribe registers handler for the events f matches and returns the
// unsubscribe function.
func (eb *EventBus) Subscribe(f Filter, handler EventHandler) func() {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	id := eb.nextID
	eb.nextID++
	eb.subs[id] = subscription{filter: f, handler: handler}
	eb.order = append(eb.order, id)

	var once sync.Once
	return func() {
		once.Do(func() { eb.remove(id) })
	}
}

func (eb *EventBus) remove(id uint64) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	delete(eb.subs, id)
	for i, x := range eb.order {
		if x == id {
			eb.order = append(eb.order[:i:i], eb.order[i+1:]...)
			break
		}
	}
}

// On subscribes to one event type on every endpoint and cluster.
func (eb *EventBus) On(eventType string, handler EventHandler) func() {
	return eb.Subscribe(Filter{Type: eventType}, handler)
}

// OnAll subscribes to every event.
func (eb *EventBus) OnAll(handler EventHandler) func() {
	return eb.Subscribe(Filter{}, handler)
}

// Emit calls the matching handlers synchronously. A panicking handler is
// recovered and logged; the others still run.
func (eb *EventBus) Emit(ev Event) {
	eb.mu.RLock()
	matched := make([]EventHandler, 0, len(eb.order))
	for _, id := range eb.order {
		if s := eb.subs[id]; s.filter.Match(ev) {
			matched = append(matched, s.handler)
		}
	}
	eb.mu.RUnlock()

	for _, h := range matched {
		eb.call(h, ev)
	}
}

func (eb *EventBus) call(h EventHandler, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			eb.logger.Error("event handler panic", "type", ev.Type, "endpoint", ev.Endpoint, "cluster", ev.Cluster, "panic", r)
		}
	}()
	h(ev)
}
