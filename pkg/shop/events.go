package shop

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventType represents the type of shop event.
type EventType int

const (
	// EventShopOpened is emitted by OpenShop and CloseShop. Catalog is nil
	// when the shop closed.
	EventShopOpened EventType = iota
	// EventPurchased is emitted after a successful buy.
	EventPurchased
	// EventSold is emitted after a successful sell.
	EventSold
)

// String returns a human-readable representation of the event type.
func (t EventType) String() string {
	switch t {
	case EventShopOpened:
		return "ShopOpened"
	case EventPurchased:
		return "Purchased"
	case EventSold:
		return "Sold"
	default:
		return "Unknown"
	}
}

// Event describes a shop state change.
type Event struct {
	ID        uuid.UUID `json:"id"`
	Type      EventType `json:"type"`
	Catalog   *Catalog  `json:"-"`
	Entry     *Entry    `json:"-"`
	Quantity  int       `json:"quantity,omitempty"`
	Amount    int       `json:"amount,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// EventBus delivers shop events to subscribers.
type EventBus interface {
	// Subscribe registers handler and returns a function removing it.
	Subscribe(handler func(Event)) (unsubscribe func())

	// Publish sends an event to subscribed handlers.
	Publish(event Event)
}

// SimpleEventBus is an in-memory bus. Handlers run synchronously on the
// publishing goroutine, in subscription order.
type SimpleEventBus struct {
	mu       sync.RWMutex
	handlers map[int]func(Event)
	order    []int
	nextID   int
}

// NewSimpleEventBus creates an empty bus.
func NewSimpleEventBus() *SimpleEventBus {
	return &SimpleEventBus{
		handlers: make(map[int]func(Event)),
	}
}

// Subscribe registers handler.
func (bus *SimpleEventBus) Subscribe(handler func(Event)) func() {
	if handler == nil {
		return func() {}
	}
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.nextID++
	id := bus.nextID
	bus.handlers[id] = handler
	bus.order = append(bus.order, id)
	return func() {
		bus.mu.Lock()
		defer bus.mu.Unlock()
		delete(bus.handlers, id)
		for i, o := range bus.order {
			if o == id {
				bus.order = append(bus.order[:i], bus.order[i+1:]...)
				break
			}
		}
	}
}

// Publish sends an event to subscribed handlers.
func (bus *SimpleEventBus) Publish(event Event) {
	bus.mu.RLock()
	handlers := make([]func(Event), 0, len(bus.order))
	for _, id := range bus.order {
		handlers = append(handlers, bus.handlers[id])
	}
	bus.mu.RUnlock()

	for _, h := range handlers {
		h(event)
	}
}

// NullEventBus is an event bus that does nothing.
type NullEventBus struct{}

// NewNullEventBus creates a new null event bus.
func NewNullEventBus() *NullEventBus {
	return &NullEventBus{}
}

// Subscribe does nothing.
func (bus *NullEventBus) Subscribe(handler func(Event)) func() { return func() {} }

// Publish does nothing.
func (bus *NullEventBus) Publish(event Event) {}
