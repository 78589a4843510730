package events

// EventData is the interface that all event data types must implement
// This allows for type-safe event data while maintaining flexibility
type EventData interface {
	// EventType returns the event type this data is associated with
	EventType() EventType
}

// AssetChangedData contains data for asset mutation events
type AssetChangedData struct {
	Kind   EventType `json:"-"`
	ID     string    `json:"id"`
	Ticker string    `json:"ticker"`
}

// EventType returns the mutation kind carried by the data
func (d *AssetChangedData) EventType() EventType {
	return d.Kind
}

// PortfolioChangedData contains data for PortfolioChanged events
type PortfolioChangedData struct {
	AssetCount int     `json:"asset_count"`
	TotalValue float64 `json:"total_value"`
}

// EventType returns the event type for PortfolioChangedData
func (d *PortfolioChangedData) EventType() EventType {
	return PortfolioChanged
}

// NewsRefreshedData contains data for NewsRefreshed events
type NewsRefreshedData struct {
	Items   int `json:"items"`
	Sources int `json:"sources"`
	Failed  int `json:"failed"`
}

// EventType returns the event type for NewsRefreshedData
func (d *NewsRefreshedData) EventType() EventType {
	return NewsRefreshed
}

// ReportGeneratedData contains data for ReportGenerated events
type ReportGeneratedData struct {
	Generator string `json:"generator"`
	Length    int    `json:"length"`
}

// EventType returns the event type for ReportGeneratedData
func (d *ReportGeneratedData) EventType() EventType {
	return ReportGenerated
}

// SettingsChangedData contains data for SettingsChanged events
type SettingsChangedData struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

// EventType returns the event type for SettingsChangedData
func (d *SettingsChangedData) EventType() EventType {
	return SettingsChanged
}

// ErrorEventData contains data for ErrorOccurred events
type ErrorEventData struct {
	Error   string                 `json:"error"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// EventType returns the event type for ErrorEventData
func (d *ErrorEventData) EventType() EventType {
	return ErrorOccurred
}
