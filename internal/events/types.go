// Package events provides event management functionality.
package events

import "time"

// EventType represents different event types
type EventType string

const (
	// Holdings store mutations
	AssetCreated EventType = "ASSET_CREATED"
	AssetUpdated EventType = "ASSET_UPDATED"
	AssetDeleted EventType = "ASSET_DELETED"

	// Derived state changes for reactive UI
	PortfolioChanged EventType = "PORTFOLIO_CHANGED"
	NewsRefreshed    EventType = "NEWS_REFRESHED"
	ReportGenerated  EventType = "REPORT_GENERATED"
	SettingsChanged  EventType = "SETTINGS_CHANGED"
	ErrorOccurred    EventType = "ERROR_OCCURRED"
)

// AllEventTypes lists every event type a stream client can subscribe to
var AllEventTypes = []EventType{
	AssetCreated,
	AssetUpdated,
	AssetDeleted,
	PortfolioChanged,
	NewsRefreshed,
	ReportGenerated,
	SettingsChanged,
	ErrorOccurred,
}

// Event represents a system event
type Event struct {
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
	Module    string                 `json:"module"`
}
