// Package testing provides shared test doubles and fixtures for folio packages.
package testing

import (
	"sync"

	"github.com/aristath/folio/internal/events"
	"github.com/stretchr/testify/mock"
)

// MockEventEmitter is a testify mock for the EmitTyped side of events.Manager
type MockEventEmitter struct {
	mock.Mock
}

// EmitTyped records the call
func (m *MockEventEmitter) EmitTyped(module string, data events.EventData) {
	m.Called(module, data)
}

// RecordingEmitter keeps every emitted event for later inspection
type RecordingEmitter struct {
	mu     sync.Mutex
	events []events.EventData
}

// EmitTyped appends data to the recording
func (r *RecordingEmitter) EmitTyped(module string, data events.EventData) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, data)
}

// Events returns a copy of everything emitted so far
func (r *RecordingEmitter) Events() []events.EventData {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.EventData, len(r.events))
	copy(out, r.events)
	return out
}

// Types returns the event type of every emission, in order
func (r *RecordingEmitter) Types() []events.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.EventType())
	}
	return out
}
