package portfolio

import "github.com/aristath/folio/internal/domain"

// Summarize folds derived assets into portfolio totals and the value-weighted risk score.
// Empty input yields an all-zero summary.
func Summarize(derived []domain.DerivedAsset) domain.PortfolioSummary {
	var summary domain.PortfolioSummary
	weighted := 0.0
	for _, d := range derived {
		summary.TotalValue += d.TotalValue
		summary.TotalUnrealizedPL += d.UnrealizedPL
		weighted += float64(d.RiskLevel) * d.PortfolioPercent
	}
	summary.WeightedRisk = weighted / 100
	return summary
}
