package portfolio

import (
	"fmt"

	"github.com/aristath/folio/internal/domain"
	"github.com/aristath/folio/internal/modules/allocation"
	"github.com/aristath/folio/internal/modules/metrics"
	"github.com/rs/zerolog"
)

// HoldingsReader is the read side of the holdings store
type HoldingsReader interface {
	List() []domain.Asset
}

// Header carries the figures shown above the dashboard
type Header struct {
	TotalValue         float64 `json:"total_value"`
	TotalUnrealizedPL  float64 `json:"total_unrealized_pl"`
	WeightedRisk       float64 `json:"weighted_risk"`
	DailyChange        float64 `json:"daily_change"`
	DailyChangePercent float64 `json:"daily_change_percent"`
	AssetCount         int     `json:"asset_count"`
}

// Service computes views over the current holdings snapshot.
// Nothing is cached; every call recomputes from a fresh List().
type Service struct {
	holdings           HoldingsReader
	dailyChangePercent float64
	log                zerolog.Logger
}

// NewService creates a portfolio service
func NewService(holdings HoldingsReader, dailyChangePercent float64, log zerolog.Logger) *Service {
	return &Service{
		holdings:           holdings,
		dailyChangePercent: dailyChangePercent,
		log:                log.With().Str("service", "portfolio").Logger(),
	}
}

// View computes the full dashboard view
func (s *Service) View() View {
	return ComputeView(s.holdings.List())
}

// Assets returns derived assets sorted for the holdings table
func (s *Service) Assets(field metrics.SortField, direction metrics.SortDirection) ([]domain.DerivedAsset, error) {
	sorted, err := metrics.Sort(metrics.Derive(s.holdings.List()), field, direction)
	if err != nil {
		return nil, fmt.Errorf("failed to sort assets: %w", err)
	}
	return sorted, nil
}

// Summary returns the header figures, including the daily change
func (s *Service) Summary() Header {
	assets := s.holdings.List()
	summary := Summarize(metrics.Derive(assets))
	return Header{
		TotalValue:         summary.TotalValue,
		TotalUnrealizedPL:  summary.TotalUnrealizedPL,
		WeightedRisk:       summary.WeightedRisk,
		DailyChange:        summary.TotalValue * s.dailyChangePercent / 100,
		DailyChangePercent: s.dailyChangePercent,
		AssetCount:         len(assets),
	}
}

// Allocations returns the buckets for one dimension
func (s *Service) Allocations(dim allocation.Dimension) []domain.AllocationBucket {
	return allocation.AggregateBy(metrics.Derive(s.holdings.List()), dim, allocation.ColorsFor(dim))
}

// BucketValue returns the share of one category in a dimension, 0 when absent
func (s *Service) BucketValue(dim allocation.Dimension, category string) float64 {
	for _, b := range s.Allocations(dim) {
		if b.Category == category {
			return b.Value
		}
	}
	return 0
}
