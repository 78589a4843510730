package performance

import (
	"github.com/aristath/folio/pkg/formulas"
)

// PeriodsPerYear annualises weekly samples
const PeriodsPerYear = 52

// KPIInput carries the values the series cannot provide
type KPIInput struct {
	RiskFreeRate            float64 // annual, decimal
	MaxDrawdownLimit        float64 // percent
	ProjectedAnnualDividend float64
}

// KPIs are the dashboard cards. Percent fields are in percent, not fractions.
type KPIs struct {
	SharpeRatio             float64 `json:"sharpe_ratio"`
	MaxDrawdown             float64 `json:"max_drawdown"`
	MaxDrawdownLimit        float64 `json:"max_drawdown_limit"`
	YTDReturn               float64 `json:"ytd_return"`
	ProjectedAnnualDividend float64 `json:"projected_annual_dividend"`
	Volatility              float64 `json:"volatility"`
	Beta                    float64 `json:"beta"`
	RSI                     float64 `json:"rsi"`
}

// DrawdownBreached reports whether the drawdown exceeds its limit
func (k KPIs) DrawdownBreached() bool {
	return k.MaxDrawdown > k.MaxDrawdownLimit
}

// ComputeKPIs derives the KPI cards from the history. Fewer than two points yield zero
// statistics; the limit and dividend are always passed through.
func ComputeKPIs(series []Point, in KPIInput) KPIs {
	kpis := KPIs{
		MaxDrawdownLimit:        in.MaxDrawdownLimit,
		ProjectedAnnualDividend: in.ProjectedAnnualDividend,
	}
	if len(series) < 2 {
		return kpis
	}

	values := portfolioValues(series)
	returns := formulas.CalculateReturns(values)
	benchmarkReturns := formulas.CalculateReturns(benchmarkValues(series))

	kpis.SharpeRatio = scaledRound(formulas.CalculateSharpeRatio(returns, in.RiskFreeRate, PeriodsPerYear), 1)
	kpis.MaxDrawdown = scaledRound(formulas.CalculateMaxDrawdown(values), 100)
	kpis.YTDReturn = scaledRound(formulas.TotalReturn(yearToDate(series)), 100)
	kpis.Volatility = scaledRound(formulas.CalculateVolatility(returns, PeriodsPerYear), 100)
	kpis.Beta = scaledRound(formulas.CalculateBeta(returns, benchmarkReturns), 1)
	kpis.RSI = scaledRound(formulas.CalculateRSI(values, formulas.DefaultRSIPeriod), 1)
	return kpis
}

// yearToDate returns the portfolio values from the first point in the year of the last point
func yearToDate(series []Point) []float64 {
	year := series[len(series)-1].Time().Year()
	for i, p := range series {
		if p.Time().Year() == year {
			return portfolioValues(series[i:])
		}
	}
	return nil
}

// scaledRound multiplies v by scale and rounds to two decimals; nil becomes 0
func scaledRound(v *float64, scale float64) float64 {
	if v == nil {
		return 0
	}
	return formulas.Round(*v*scale, 2)
}
