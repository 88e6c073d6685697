package event

import (
	"context"
	"fmt"
	"sync"
)

// Type represents the type of an event
type Type string

// Event types published by the planning services
const (
	MenuGenerated         Type = "menu.generated"
	ShoppingListGenerated Type = "shoppinglist.generated"
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// MenuGeneratedPayloadV1 is the typed payload for menu generation events
type MenuGeneratedPayloadV1 struct {
	MenuID        string `json:"menu_id"`
	UserID        string `json:"user_id"`
	MealsAssigned int    `json:"meals_assigned"`
	SlotsUnfilled int    `json:"slots_unfilled"`
}

// ShoppingListGeneratedPayloadV1 is the typed payload for shopping list events
type ShoppingListGeneratedPayloadV1 struct {
	ShoppingListID string `json:"shopping_list_id"`
	MenuID         string `json:"menu_id"`
	UserID         string `json:"user_id"`
	ItemCount      int    `json:"item_count"`
}

// Handler processes a published event
type Handler func(ctx context.Context, event Event) error

// Bus is the publish/subscribe surface the services depend on
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously;
// a handler error does not stop the remaining handlers.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d handler error(s) for %s: %v", len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe registers a handler for an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
