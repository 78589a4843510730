package domain

// WidgetVisibility toggles the optional dashboard widgets
type WidgetVisibility struct {
	Volatility bool `json:"volatility"`
	Beta       bool `json:"beta"`
	RSI        bool `json:"rsi"`
}

// Any reports whether at least one optional widget is shown
func (v WidgetVisibility) Any() bool {
	return v.Volatility || v.Beta || v.RSI
}
