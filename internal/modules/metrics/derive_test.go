package metrics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/aristath/folio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asset(id string, quantity, avgPrice, currentPrice float64, sector domain.Sector) domain.Asset {
	return domain.Asset{
		ID:           id,
		Ticker:       id,
		Quantity:     quantity,
		AvgPrice:     avgPrice,
		CurrentPrice: currentPrice,
		Sector:       sector,
		Geography:    domain.GeographyUS,
		RiskLevel:    5,
	}
}

func TestDerive_TwoAssetExample(t *testing.T) {
	derived := Derive([]domain.Asset{
		asset("A", 10, 100, 110, domain.SectorTech),
		asset("B", 10, 50, 40, domain.SectorFinancial),
	})
	require.Len(t, derived, 2)

	assert.InDelta(t, 1100, derived[0].TotalValue, 1e-9)
	assert.InDelta(t, 100, derived[0].UnrealizedPL, 1e-9)
	assert.InDelta(t, 10, derived[0].UnrealizedPLPercent, 1e-9)
	assert.InDelta(t, 73.333, derived[0].PortfolioPercent, 0.001)

	assert.InDelta(t, 400, derived[1].TotalValue, 1e-9)
	assert.InDelta(t, -100, derived[1].UnrealizedPL, 1e-9)
	assert.InDelta(t, -20, derived[1].UnrealizedPLPercent, 1e-9)
	assert.InDelta(t, 26.667, derived[1].PortfolioPercent, 0.001)
}

func TestDerive_EmptyInput(t *testing.T) {
	derived := Derive(nil)
	assert.NotNil(t, derived)
	assert.Empty(t, derived)
}

func TestDerive_ZeroPortfolioTotal(t *testing.T) {
	derived := Derive([]domain.Asset{
		asset("A", 10, 100, 0, domain.SectorTech),
		asset("B", 5, 20, 0, domain.SectorETF),
	})
	for _, d := range derived {
		assert.Equal(t, 0.0, d.PortfolioPercent)
		assert.False(t, math.IsNaN(d.PortfolioPercent))
		assert.Equal(t, -100.0, d.UnrealizedPLPercent)
	}
}

func TestDerive_ZeroCostBasis(t *testing.T) {
	derived := Derive([]domain.Asset{
		asset("A", 0, 100, 120, domain.SectorTech),
		asset("B", 2, 10, 10, domain.SectorETF),
	})
	assert.Equal(t, 0.0, derived[0].UnrealizedPLPercent)
	assert.Equal(t, 0.0, derived[0].TotalValue)
	assert.Equal(t, 0.0, derived[0].PortfolioPercent)
	assert.Equal(t, 100.0, derived[1].PortfolioPercent)
}

func TestDerive_NonFinitePercentsBecomeZero(t *testing.T) {
	derived := Derive([]domain.Asset{
		asset("A", 1e200, 1e200, 1e200, domain.SectorTech),
		asset("B", 1, 10, 10, domain.SectorETF),
	})
	for _, d := range derived {
		assert.False(t, math.IsNaN(d.PortfolioPercent), d.Ticker)
		assert.False(t, math.IsNaN(d.UnrealizedPLPercent), d.Ticker)
	}
	assert.Equal(t, 0.0, derived[0].PortfolioPercent)
}

func TestDerive_PLSign(t *testing.T) {
	derived := Derive([]domain.Asset{
		asset("GAIN", 3, 100, 150, domain.SectorTech),
		asset("LOSS", 3, 100, 50, domain.SectorTech),
		asset("FLAT", 3, 100, 100, domain.SectorTech),
	})
	assert.Greater(t, derived[0].UnrealizedPL, 0.0)
	assert.Less(t, derived[1].UnrealizedPL, 0.0)
	assert.Equal(t, 0.0, derived[2].UnrealizedPL)
}

func TestDerive_PercentsConserve(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for run := 0; run < 100; run++ {
		n := 1 + rng.Intn(30)
		assets := make([]domain.Asset, n)
		for i := range assets {
			assets[i] = asset("X", rng.Float64()*1000, 1+rng.Float64()*500, 1+rng.Float64()*500, domain.SectorTech)
		}

		total := 0.0
		for _, d := range Derive(assets) {
			total += d.PortfolioPercent
		}
		assert.InDelta(t, 100, total, 0.1, "run %d with %d assets", run, n)
	}
}

func TestDerive_DenominatorIsWholeInput(t *testing.T) {
	all := []domain.Asset{
		asset("A", 1, 1, 300, domain.SectorTech),
		asset("B", 1, 1, 100, domain.SectorETF),
	}
	full := Derive(all)
	subset := Derive(all[:1])

	assert.InDelta(t, 75, full[0].PortfolioPercent, 1e-9)
	assert.InDelta(t, 100, subset[0].PortfolioPercent, 1e-9)
}

func TestDerive_DoesNotMutateInput(t *testing.T) {
	in := []domain.Asset{asset("A", 1, 1, 2, domain.SectorTech)}
	before := in[0]
	_ = Derive(in)
	assert.Equal(t, before, in[0])
}
