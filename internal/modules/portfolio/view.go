// Package portfolio composes derived metrics, allocations and totals into dashboard views.
package portfolio

import (
	"github.com/aristath/folio/internal/domain"
	"github.com/aristath/folio/internal/modules/allocation"
	"github.com/aristath/folio/internal/modules/metrics"
)

// View is everything the dashboard renders for one holdings snapshot
type View struct {
	Derived     []domain.DerivedAsset     `json:"derived" msgpack:"derived"`
	BySector    []domain.AllocationBucket `json:"by_sector" msgpack:"by_sector"`
	ByGeography []domain.AllocationBucket `json:"by_geography" msgpack:"by_geography"`
	Summary     domain.PortfolioSummary   `json:"summary" msgpack:"summary"`
}

// ComputeView derives every asset once and feeds the result to both aggregators and the reducer
func ComputeView(assets []domain.Asset) View {
	derived := metrics.Derive(assets)
	return View{
		Derived:     derived,
		BySector:    allocation.AggregateBy(derived, allocation.DimensionSector, allocation.SectorColors),
		ByGeography: allocation.AggregateBy(derived, allocation.DimensionGeography, allocation.GeographyColors),
		Summary:     Summarize(derived),
	}
}
