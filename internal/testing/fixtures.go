package testing

import (
	"time"

	"github.com/aristath/folio/internal/domain"
)

// NewAssetFixtures returns two holdings with hand-checkable figures:
// AAA is worth 1100 with +100 P/L, BBB is worth 400 with -100 P/L.
func NewAssetFixtures() []domain.Asset {
	return []domain.Asset{
		{ID: "a", Ticker: "AAA", Quantity: 10, AvgPrice: 100, CurrentPrice: 110, Sector: domain.SectorTech, Geography: domain.GeographyUS, RiskLevel: 8},
		{ID: "b", Ticker: "BBB", Quantity: 10, AvgPrice: 50, CurrentPrice: 40, Sector: domain.SectorFinancial, Geography: domain.GeographyArgentina, RiskLevel: 2},
	}
}

// NewNewsFixture returns a neutral news item about ticker published at an RFC3339 time
func NewNewsFixture(id, ticker string, category domain.NewsCategory, published string) domain.NewsItem {
	t, _ := time.Parse(time.RFC3339, published)
	return domain.NewsItem{
		ID:             id,
		Title:          id + " headline",
		URL:            "https://example.com/" + id,
		PublishedAt:    t,
		RelatedTickers: []string{ticker},
		Category:       category,
		Sentiment:      domain.SentimentNeutral,
	}
}
