package metrics

import (
	"context"

	"github.com/famplan/famplan-server/internal/event"
)

// RegisterEventHandlers wires the planning events into the business counters.
func RegisterEventHandlers(bus event.Bus) {
	bus.Subscribe(event.MenuGenerated, handleMenuGenerated)
	bus.Subscribe(event.ShoppingListGenerated, handleShoppingListGenerated)
}

func handleMenuGenerated(_ context.Context, e event.Event) error {
	payload, ok := e.Payload.(event.MenuGeneratedPayloadV1)
	if !ok {
		return nil
	}
	MenusGenerated.Inc()
	MealsAssigned.Add(float64(payload.MealsAssigned))
	SlotsUnfilled.Add(float64(payload.SlotsUnfilled))
	return nil
}

func handleShoppingListGenerated(_ context.Context, e event.Event) error {
	payload, ok := e.Payload.(event.ShoppingListGeneratedPayloadV1)
	if !ok {
		return nil
	}
	ShoppingListsGenerated.Inc()
	ShoppingListItems.Observe(float64(payload.ItemCount))
	return nil
}
