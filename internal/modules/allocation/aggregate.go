// Package allocation groups derived holdings into percentage breakdowns.
package allocation

import (
	"math"

	"github.com/aristath/folio/internal/domain"
	"github.com/shopspring/decimal"
)

// Dimension selects the attribute assets are grouped by
type Dimension string

const (
	DimensionSector    Dimension = "sector"
	DimensionGeography Dimension = "geography"
)

// FallbackColor is used for categories missing from the color map
const FallbackColor = "#64748b"

// ColorMap maps a category value to its display color
type ColorMap map[string]string

// SectorColors is the default palette for sector buckets
var SectorColors = ColorMap{
	string(domain.SectorTech):       "#6366f1",
	string(domain.SectorFinancial):  "#10b981",
	string(domain.SectorIndustrial): "#f59e0b",
	string(domain.SectorConsumer):   "#ec4899",
	string(domain.SectorETF):        "#64748b",
}

// GeographyColors is the default palette for geography buckets
var GeographyColors = ColorMap{
	string(domain.GeographyUS):        "#6366f1",
	string(domain.GeographyArgentina): "#10b981",
}

// ColorsFor returns the default palette of a dimension, or nil for an unknown one
func ColorsFor(dim Dimension) ColorMap {
	switch dim {
	case DimensionSector:
		return SectorColors
	case DimensionGeography:
		return GeographyColors
	default:
		return nil
	}
}

// ParseDimension resolves a path or query value into a Dimension
func ParseDimension(s string) (Dimension, bool) {
	switch Dimension(s) {
	case DimensionSector, DimensionGeography:
		return Dimension(s), true
	default:
		return "", false
	}
}

// Color returns the color for category, falling back to FallbackColor
func (m ColorMap) Color(category string) string {
	if c, ok := m[category]; ok && c != "" {
		return c
	}
	return FallbackColor
}

// AggregateBy sums PortfolioPercent per category of dim.
//
// Buckets appear in the order their category is first seen. Values are rounded to one
// decimal, half away from zero. An unknown dimension yields an empty slice.
func AggregateBy(derived []domain.DerivedAsset, dim Dimension, colors ColorMap) []domain.AllocationBucket {
	buckets := make([]domain.AllocationBucket, 0)

	key := categoryOf(dim)
	if key == nil {
		return buckets
	}

	var order []string
	sums := make(map[string]float64)
	for _, d := range derived {
		category := key(d)
		if _, seen := sums[category]; !seen {
			order = append(order, category)
		}
		sums[category] += d.PortfolioPercent
	}

	for _, category := range order {
		buckets = append(buckets, domain.AllocationBucket{
			Category: category,
			Value:    RoundOneDecimal(sums[category]),
			Color:    colors.Color(category),
		})
	}
	return buckets
}

// RoundOneDecimal rounds v to one decimal place, half away from zero. NaN and Inf become 0.
func RoundOneDecimal(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}

func categoryOf(dim Dimension) func(domain.DerivedAsset) string {
	switch dim {
	case DimensionSector:
		return func(d domain.DerivedAsset) string { return string(d.Sector) }
	case DimensionGeography:
		return func(d domain.DerivedAsset) string { return string(d.Geography) }
	default:
		return nil
	}
}
