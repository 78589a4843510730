package events

import (
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_SubscribeAndEmit(t *testing.T) {
	bus := NewBus()

	var received []*Event
	unsubscribe := bus.Subscribe(AssetCreated, func(event *Event) {
		received = append(received, event)
	})

	bus.Emit(AssetCreated, "holdings", map[string]interface{}{"id": "a1"})
	bus.Emit(AssetDeleted, "holdings", nil)

	require.Len(t, received, 1)
	assert.Equal(t, AssetCreated, received[0].Type)
	assert.Equal(t, "holdings", received[0].Module)
	assert.Equal(t, "a1", received[0].Data["id"])
	assert.False(t, received[0].Timestamp.IsZero())

	unsubscribe()
	bus.Emit(AssetCreated, "holdings", nil)
	assert.Len(t, received, 1, "handler should not run after unsubscribe")
	assert.Equal(t, 0, bus.SubscriberCount(AssetCreated))
}

func TestBus_SubscribeAll(t *testing.T) {
	bus := NewBus()

	var mu sync.Mutex
	seen := map[EventType]int{}
	unsubscribe := bus.SubscribeAll(func(event *Event) {
		mu.Lock()
		defer mu.Unlock()
		seen[event.Type]++
	})

	for _, eventType := range AllEventTypes {
		bus.Emit(eventType, "test", nil)
	}
	for _, eventType := range AllEventTypes {
		assert.Equal(t, 1, seen[eventType], "event %s", eventType)
	}

	unsubscribe()
	for _, eventType := range AllEventTypes {
		assert.Equal(t, 0, bus.SubscriberCount(eventType))
	}
}

func TestManager_EmitTyped(t *testing.T) {
	bus := NewBus()
	manager := NewManager(bus, zerolog.Nop())

	var got *Event
	bus.Subscribe(AssetUpdated, func(event *Event) { got = event })

	manager.EmitTyped("holdings", &AssetChangedData{Kind: AssetUpdated, ID: "a1", Ticker: "MSFT"})

	require.NotNil(t, got)
	assert.Equal(t, "a1", got.Data["id"])
	assert.Equal(t, "MSFT", got.Data["ticker"])
	_, hasKind := got.Data["Kind"]
	assert.False(t, hasKind, "kind is carried by the event type, not the payload")
}

func TestManager_EmitError(t *testing.T) {
	bus := NewBus()
	manager := NewManager(bus, zerolog.Nop())

	var got *Event
	bus.Subscribe(ErrorOccurred, func(event *Event) { got = event })

	manager.EmitError("intelligence", errors.New("feed unreachable"), map[string]interface{}{"url": "http://x"})

	require.NotNil(t, got)
	assert.Equal(t, "feed unreachable", got.Data["error"])
	assert.Equal(t, "intelligence", got.Module)
}

func TestEventDataTypes(t *testing.T) {
	tests := []struct {
		data     EventData
		expected EventType
	}{
		{&PortfolioChangedData{}, PortfolioChanged},
		{&NewsRefreshedData{}, NewsRefreshed},
		{&ReportGeneratedData{}, ReportGenerated},
		{&SettingsChangedData{}, SettingsChanged},
		{&ErrorEventData{}, ErrorOccurred},
		{&AssetChangedData{Kind: AssetDeleted}, AssetDeleted},
	}

	for _, tt := range tests {
		t.Run(string(tt.expected), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.data.EventType())
		})
	}
}
