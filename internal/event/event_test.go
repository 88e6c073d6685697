package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_PublishDeliversToSubscribers(t *testing.T) {
	bus := NewMemoryBus()

	var received []Event
	bus.Subscribe(MenuGenerated, func(_ context.Context, e Event) error {
		received = append(received, e)
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    MenuGenerated,
		Payload: MenuGeneratedPayloadV1{MenuID: "m1", UserID: "u1", MealsAssigned: 18, SlotsUnfilled: 2},
	})

	require.NoError(t, err)
	require.Len(t, received, 1)
	payload, ok := received[0].Payload.(MenuGeneratedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, 18, payload.MealsAssigned)
	assert.Equal(t, 2, payload.SlotsUnfilled)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	err := bus.Publish(context.Background(), Event{Type: ShoppingListGenerated})
	assert.NoError(t, err)
}

func TestMemoryBus_TypeIsolation(t *testing.T) {
	bus := NewMemoryBus()

	var menuEvents, listEvents int
	bus.Subscribe(MenuGenerated, func(context.Context, Event) error {
		menuEvents++
		return nil
	})
	bus.Subscribe(ShoppingListGenerated, func(context.Context, Event) error {
		listEvents++
		return nil
	})

	_ = bus.Publish(context.Background(), Event{Type: MenuGenerated})
	_ = bus.Publish(context.Background(), Event{Type: MenuGenerated})
	_ = bus.Publish(context.Background(), Event{Type: ShoppingListGenerated})

	assert.Equal(t, 2, menuEvents)
	assert.Equal(t, 1, listEvents)
}

func TestMemoryBus_HandlerErrorDoesNotStopOthers(t *testing.T) {
	bus := NewMemoryBus()

	var secondRan bool
	bus.Subscribe(MenuGenerated, func(context.Context, Event) error {
		return errors.New("handler failed")
	})
	bus.Subscribe(MenuGenerated, func(context.Context, Event) error {
		secondRan = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Type: MenuGenerated})

	assert.Error(t, err)
	assert.True(t, secondRan)
}
