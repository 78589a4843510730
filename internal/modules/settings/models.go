// Package settings holds user-adjustable dashboard preferences.
package settings

// Setting keys
const (
	KeyWidgetVolatility = "widget_volatility"
	KeyWidgetBeta       = "widget_beta"
	KeyWidgetRSI        = "widget_rsi"
)

// SettingDefaults holds the default value of every known setting
var SettingDefaults = map[string]bool{
	KeyWidgetVolatility: false, // Monthly volatility chart
	KeyWidgetBeta:       false, // Per-ticker beta bars
	KeyWidgetRSI:        false, // Per-ticker RSI bars
}

// SettingUpdate is the request body of PUT /api/settings/{key}
type SettingUpdate struct {
	Value bool `json:"value"`
}

// WidgetUpdate toggles a subset of widgets; nil fields are left untouched
type WidgetUpdate struct {
	Volatility *bool `json:"volatility,omitempty"`
	Beta       *bool `json:"beta,omitempty"`
	RSI        *bool `json:"rsi,omitempty"`
}
