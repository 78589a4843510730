package allocation

import (
	"math"
	"math/rand"
	"testing"

	"github.com/aristath/folio/internal/domain"
	"github.com/aristath/folio/internal/modules/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func holding(sector domain.Sector, geo domain.Geography, quantity, price float64) domain.Asset {
	return domain.Asset{
		ID:           string(sector) + string(geo),
		Ticker:       "T",
		Quantity:     quantity,
		AvgPrice:     1,
		CurrentPrice: price,
		Sector:       sector,
		Geography:    geo,
		RiskLevel:    5,
	}
}

func TestAggregateBy_TwoAssetExample(t *testing.T) {
	derived := metrics.Derive([]domain.Asset{
		{ID: "1", Ticker: "A", Quantity: 10, AvgPrice: 100, CurrentPrice: 110, Sector: domain.SectorTech, Geography: domain.GeographyUS, RiskLevel: 5},
		{ID: "2", Ticker: "B", Quantity: 10, AvgPrice: 50, CurrentPrice: 40, Sector: domain.SectorFinancial, Geography: domain.GeographyUS, RiskLevel: 5},
	})

	buckets := AggregateBy(derived, DimensionSector, SectorColors)
	require.Len(t, buckets, 2)
	assert.Equal(t, domain.AllocationBucket{Category: "Tech", Value: 73.3, Color: "#6366f1"}, buckets[0])
	assert.Equal(t, domain.AllocationBucket{Category: "Financial", Value: 26.7, Color: "#10b981"}, buckets[1])

	geo := AggregateBy(derived, DimensionGeography, GeographyColors)
	require.Len(t, geo, 1)
	assert.Equal(t, 100.0, geo[0].Value)
}

func TestAggregateBy_FirstOccurrenceOrder(t *testing.T) {
	derived := metrics.Derive([]domain.Asset{
		holding(domain.SectorETF, domain.GeographyUS, 1, 10),
		holding(domain.SectorTech, domain.GeographyArgentina, 1, 80),
		holding(domain.SectorETF, domain.GeographyUS, 1, 10),
	})

	buckets := AggregateBy(derived, DimensionSector, SectorColors)
	require.Len(t, buckets, 2)
	assert.Equal(t, "ETF", buckets[0].Category)
	assert.Equal(t, 20.0, buckets[0].Value)
	assert.Equal(t, "Tech", buckets[1].Category)
	assert.Equal(t, 80.0, buckets[1].Value)

	geo := AggregateBy(derived, DimensionGeography, GeographyColors)
	assert.Equal(t, "US", geo[0].Category)
	assert.Equal(t, "Argentina", geo[1].Category)
}

func TestAggregateBy_FallbackColor(t *testing.T) {
	derived := metrics.Derive([]domain.Asset{holding(domain.SectorConsumer, domain.GeographyUS, 1, 1)})

	assert.Equal(t, FallbackColor, AggregateBy(derived, DimensionSector, nil)[0].Color)
	assert.Equal(t, FallbackColor, AggregateBy(derived, DimensionSector, ColorMap{"Tech": "#000000"})[0].Color)
	assert.Equal(t, FallbackColor, AggregateBy(derived, DimensionSector, ColorMap{"Consumer": ""})[0].Color)
}

func TestAggregateBy_EmptyAndUnknown(t *testing.T) {
	empty := AggregateBy(nil, DimensionSector, SectorColors)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	derived := metrics.Derive([]domain.Asset{holding(domain.SectorTech, domain.GeographyUS, 1, 1)})
	unknown := AggregateBy(derived, Dimension("currency"), nil)
	assert.NotNil(t, unknown)
	assert.Empty(t, unknown)
}

func TestAggregateBy_BucketsConserve(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for run := 0; run < 100; run++ {
		n := 1 + rng.Intn(40)
		assets := make([]domain.Asset, n)
		for i := range assets {
			assets[i] = holding(
				domain.Sectors[rng.Intn(len(domain.Sectors))],
				domain.Geographies[rng.Intn(len(domain.Geographies))],
				1+rng.Float64()*100,
				1+rng.Float64()*1000,
			)
		}
		derived := metrics.Derive(assets)

		for _, dim := range []Dimension{DimensionSector, DimensionGeography} {
			total := 0.0
			for _, b := range AggregateBy(derived, dim, ColorsFor(dim)) {
				total += b.Value
			}
			// five buckets can each round by up to 0.05
			assert.InDelta(t, 100, total, 0.25, "run %d dimension %s", run, dim)
		}
	}
}

func TestRoundOneDecimal(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{73.33333, 73.3},
		{26.66667, 26.7},
		{12.25, 12.3},
		{0.05, 0.1},
		{0, 0},
		{100, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundOneDecimal(tt.in), "round %v", tt.in)
	}
}

func TestRoundOneDecimal_NonFinite(t *testing.T) {
	assert.Equal(t, 0.0, RoundOneDecimal(math.NaN()))
	assert.Equal(t, 0.0, RoundOneDecimal(math.Inf(1)))
	assert.Equal(t, 0.0, RoundOneDecimal(math.Inf(-1)))
}

func TestAggregateBy_OverflowingInputDoesNotPanic(t *testing.T) {
	derived := metrics.Derive([]domain.Asset{
		holding(domain.SectorTech, domain.GeographyUS, 1e200, 1e200),
		holding(domain.SectorETF, domain.GeographyUS, 1, 10),
	})

	require.NotPanics(t, func() {
		for _, b := range AggregateBy(derived, DimensionSector, SectorColors) {
			assert.False(t, math.IsNaN(b.Value), b.Category)
		}
	})
}

func TestParseDimension(t *testing.T) {
	dim, ok := ParseDimension("sector")
	assert.True(t, ok)
	assert.Equal(t, DimensionSector, dim)

	_, ok = ParseDimension("industry")
	assert.False(t, ok)
	assert.Nil(t, ColorsFor(Dimension("industry")))
}
