package performance

import (
	"testing"
	"time"

	"github.com/aristath/folio/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedVisibility domain.WidgetVisibility

func (v fixedVisibility) Widgets() domain.WidgetVisibility { return domain.WidgetVisibility(v) }

func TestGenerateSeries(t *testing.T) {
	series := GenerateSeries(DefaultStart, 365, 42)

	require.Len(t, series, 53)
	assert.Equal(t, "2025-02-01", series[0].Date)
	assert.Equal(t, "2025-02-08", series[1].Date)
	assert.InDelta(t, StartValue, series[0].Portfolio, 0.02*StartValue)

	for _, p := range series {
		assert.Equal(t, p.Portfolio, float64(int64(p.Portfolio)), "values are whole numbers")
		assert.Greater(t, p.Benchmark, 0.0)
	}

	assert.Equal(t, series, GenerateSeries(DefaultStart, 365, 42), "same seed, same series")
	assert.NotEqual(t, series, GenerateSeries(DefaultStart, 365, 43))
}

func TestComputeKPIs(t *testing.T) {
	series := []Point{
		{Date: "2025-12-01", Portfolio: 100, Benchmark: 100},
		{Date: "2025-12-08", Portfolio: 120, Benchmark: 110},
		{Date: "2026-01-05", Portfolio: 90, Benchmark: 105},
		{Date: "2026-01-12", Portfolio: 108, Benchmark: 108},
	}
	kpis := ComputeKPIs(series, KPIInput{MaxDrawdownLimit: 20, ProjectedAnnualDividend: 2840})

	assert.Equal(t, 25.0, kpis.MaxDrawdown)
	assert.True(t, kpis.DrawdownBreached())
	// from the first 2026 point: 90 -> 108
	assert.Equal(t, 20.0, kpis.YTDReturn)
	assert.Equal(t, 20.0, kpis.MaxDrawdownLimit)
	assert.Equal(t, 2840.0, kpis.ProjectedAnnualDividend)
	assert.Greater(t, kpis.Volatility, 0.0)
	assert.NotZero(t, kpis.SharpeRatio)
	assert.Equal(t, 0.0, kpis.RSI, "not enough points for RSI")
}

func TestComputeKPIs_ShortSeries(t *testing.T) {
	kpis := ComputeKPIs([]Point{{Date: "2026-01-01", Portfolio: 1, Benchmark: 1}}, KPIInput{MaxDrawdownLimit: 20})
	assert.Equal(t, KPIs{MaxDrawdownLimit: 20}, kpis)
	assert.Equal(t, KPIs{}, ComputeKPIs(nil, KPIInput{}))
}

func TestComputeKPIs_GeneratedSeries(t *testing.T) {
	kpis := ComputeKPIs(GenerateSeries(DefaultStart, 365, 42), KPIInput{MaxDrawdownLimit: 20})

	assert.GreaterOrEqual(t, kpis.MaxDrawdown, 0.0)
	assert.Greater(t, kpis.Volatility, 0.0)
	assert.GreaterOrEqual(t, kpis.RSI, 0.0)
	assert.LessOrEqual(t, kpis.RSI, 100.0)
}

func TestMonthlyVolatilities(t *testing.T) {
	series := GenerateSeries(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), 120, 1)
	vols := MonthlyVolatilities(series)

	require.NotEmpty(t, vols)
	assert.Equal(t, "2025-01", vols[0].Month)
	assert.Equal(t, "Jan", vols[0].Label)
	for _, v := range vols {
		assert.GreaterOrEqual(t, v.Value, 0.0)
	}
	assert.Empty(t, MonthlyVolatilities(series[:1]))
}

func TestService_Widgets(t *testing.T) {
	snapshots := Snapshots{
		Beta: []domain.TickerMetric{{Ticker: "NVDA", Value: 1.65}},
		RSI:  []domain.TickerMetric{{Ticker: "NVDA", Value: 68}},
	}
	series := GenerateSeries(DefaultStart, 90, 42)

	hidden := NewService(series, KPIInput{}, snapshots, fixedVisibility{}, zerolog.Nop()).Widgets()
	assert.Nil(t, hidden.Volatility)
	assert.Nil(t, hidden.Beta)
	assert.Nil(t, hidden.RSI)

	shown := NewService(series, KPIInput{}, snapshots, fixedVisibility{Beta: true, Volatility: true}, zerolog.Nop()).Widgets()
	assert.NotEmpty(t, shown.Volatility)
	assert.Equal(t, snapshots.Beta, shown.Beta)
	assert.Nil(t, shown.RSI)
}

func TestService_HistoryIsCopy(t *testing.T) {
	svc := NewService(GenerateSeries(DefaultStart, 30, 42), KPIInput{}, Snapshots{}, nil, zerolog.Nop())
	history := svc.History()
	history[0].Portfolio = -1
	assert.NotEqual(t, -1.0, svc.History()[0].Portfolio)
	assert.Nil(t, svc.Widgets().Volatility)
}

func TestScaledRound(t *testing.T) {
	v := 0.123456
	assert.Equal(t, 12.35, scaledRound(&v, 100))
	assert.Equal(t, 0.12, scaledRound(&v, 1))
	assert.Equal(t, 0.0, scaledRound(nil, 100))
}
