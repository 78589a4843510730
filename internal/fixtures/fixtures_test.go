package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aristath/folio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	seed := Default()

	require.Len(t, seed.Assets, 8)
	ids := make(map[string]bool)
	for _, a := range seed.Assets {
		assert.NoError(t, domain.ValidateAsset(a), a.Ticker)
		assert.False(t, ids[a.ID], "duplicate id %s", a.ID)
		ids[a.ID] = true
	}

	require.Len(t, seed.News, 8)
	for _, n := range seed.News {
		assert.False(t, n.PublishedAt.IsZero(), n.ID)
	}

	total := 0.0
	for _, c := range seed.Contributions {
		total += c.Percentage
	}
	assert.Equal(t, 100.0, total)
	assert.Equal(t, 2840.0, seed.ProjectedAnnualDividend)
}

func TestLoadFile_OverridesSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := `
assets:
  - id: a1
    ticker: GGAL
    name: Grupo Galicia
    quantity: 40
    avg_price: 30.5
    current_price: 41.2
    sector: Financial
    geography: Argentina
    risk_level: 8
news:
  - id: x1
    title: Galicia earnings
    summary: Beat
    source: Local
    published_at: 2026-03-01T10:00:00Z
    related_tickers: [GGAL]
    sentiment: Positive
    category: Asset Impact
    sentiment_score: 40
projected_annual_dividend: 1200
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	seed, err := LoadFile(path)
	require.NoError(t, err)

	require.Len(t, seed.Assets, 1)
	assert.Equal(t, "GGAL", seed.Assets[0].Ticker)
	assert.Equal(t, 30.5, seed.Assets[0].AvgPrice)
	assert.Equal(t, domain.GeographyArgentina, seed.Assets[0].Geography)

	require.Len(t, seed.News, 1)
	assert.Equal(t, 2026, seed.News[0].PublishedAt.Year())
	assert.True(t, seed.News[0].HasTicker("ggal"))

	assert.Equal(t, 1200.0, seed.ProjectedAnnualDividend)
	assert.Len(t, seed.Contributions, 5, "missing section keeps built-in value")
	assert.Len(t, seed.Beta, 6)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("assets: [unterminated"), 0o600))
	_, err = LoadFile(path)
	assert.Error(t, err)
}
