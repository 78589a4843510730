package performance

import (
	"github.com/aristath/folio/internal/domain"
	"github.com/aristath/folio/pkg/formulas"
)

// MonthlyVolatility is the annualised volatility of the weekly returns that end in one month
type MonthlyVolatility struct {
	Month string  `json:"month"` // YYYY-MM
	Label string  `json:"label"` // Jan, Feb, ...
	Value float64 `json:"value"` // percent
}

// Widgets holds the optional dashboard widgets; hidden ones are omitted
type Widgets struct {
	Visibility domain.WidgetVisibility `json:"visibility"`
	Volatility []MonthlyVolatility     `json:"volatility,omitempty"`
	Beta       []domain.TickerMetric   `json:"beta,omitempty"`
	RSI        []domain.TickerMetric   `json:"rsi,omitempty"`
}

// Snapshots are per-ticker indicator values shown by the beta and RSI widgets
type Snapshots struct {
	Beta []domain.TickerMetric
	RSI  []domain.TickerMetric
}

// BuildWidgets assembles the widgets selected by visibility
func BuildWidgets(series []Point, snapshots Snapshots, visibility domain.WidgetVisibility) Widgets {
	w := Widgets{Visibility: visibility}
	if visibility.Volatility {
		w.Volatility = MonthlyVolatilities(series)
	}
	if visibility.Beta {
		w.Beta = snapshots.Beta
	}
	if visibility.RSI {
		w.RSI = snapshots.RSI
	}
	return w
}

// MonthlyVolatilities groups weekly returns by the month of their closing point.
// A month with fewer than two returns reports zero.
func MonthlyVolatilities(series []Point) []MonthlyVolatility {
	result := make([]MonthlyVolatility, 0)
	if len(series) < 2 {
		return result
	}

	var months []string
	byMonth := make(map[string][]float64)
	labels := make(map[string]string)
	for i := 1; i < len(series); i++ {
		t := series[i].Time()
		month := t.Format("2006-01")
		if _, seen := byMonth[month]; !seen {
			months = append(months, month)
			labels[month] = t.Format("Jan")
		}
		prev := series[i-1].Portfolio
		r := 0.0
		if prev != 0 {
			r = series[i].Portfolio/prev - 1
		}
		byMonth[month] = append(byMonth[month], r)
	}

	for _, month := range months {
		result = append(result, MonthlyVolatility{
			Month: month,
			Label: labels[month],
			Value: scaledRound(formulas.CalculateVolatility(byMonth[month], PeriodsPerYear), 100),
		})
	}
	return result
}
