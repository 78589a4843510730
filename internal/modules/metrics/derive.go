// Package metrics derives display-ready values from raw holdings.
package metrics

import (
	"math"

	"github.com/aristath/folio/internal/domain"
)

// Derive computes value, P/L and portfolio share for every asset.
//
// Portfolio share is always relative to the whole input, so callers that filter
// must derive first and filter afterwards. An empty input yields an empty slice,
// and a zero portfolio total yields a zero share for every asset.
func Derive(assets []domain.Asset) []domain.DerivedAsset {
	derived := make([]domain.DerivedAsset, 0, len(assets))
	if len(assets) == 0 {
		return derived
	}

	portfolioTotal := 0.0
	for _, a := range assets {
		portfolioTotal += a.Quantity * a.CurrentPrice
	}

	for _, a := range assets {
		totalValue := a.Quantity * a.CurrentPrice
		costBasis := a.Quantity * a.AvgPrice
		unrealizedPL := totalValue - costBasis

		derived = append(derived, domain.DerivedAsset{
			Asset:               a,
			TotalValue:          totalValue,
			UnrealizedPL:        unrealizedPL,
			UnrealizedPLPercent: percentOf(unrealizedPL, costBasis),
			PortfolioPercent:    percentOf(totalValue, portfolioTotal),
		})
	}

	return derived
}

// percentOf returns part/whole*100, or 0 when whole is 0 or the result is not finite
func percentOf(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	p := part / whole * 100
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0
	}
	return p
}
