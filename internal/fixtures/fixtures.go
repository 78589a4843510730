// Package fixtures provides the seed data the dashboard starts from.
package fixtures

import (
	"fmt"
	"os"
	"time"

	"github.com/aristath/folio/internal/domain"
	"gopkg.in/yaml.v3"
)

// Seed is the initial state of every in-memory store
type Seed struct {
	Assets                  []domain.Asset                  `yaml:"assets"`
	News                    []domain.NewsItem               `yaml:"news"`
	Contributions           []domain.ContributionAllocation `yaml:"contributions"`
	CurrentContribution     float64                         `yaml:"current_contribution"`
	ContributedYearToDate   float64                         `yaml:"contributed_year_to_date"`
	ProjectedAnnualDividend float64                         `yaml:"projected_annual_dividend"`
	Beta                    []domain.TickerMetric           `yaml:"beta"`
	RSI                     []domain.TickerMetric           `yaml:"rsi"`
}

// LoadFile reads a YAML seed. Sections missing from the file keep their built-in values.
func LoadFile(path string) (Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("failed to read seed file: %w", err)
	}

	var fromFile Seed
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return Seed{}, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	seed := Default()
	if fromFile.Assets != nil {
		seed.Assets = fromFile.Assets
	}
	if fromFile.News != nil {
		seed.News = fromFile.News
	}
	if fromFile.Contributions != nil {
		seed.Contributions = fromFile.Contributions
	}
	if fromFile.CurrentContribution != 0 {
		seed.CurrentContribution = fromFile.CurrentContribution
	}
	if fromFile.ContributedYearToDate != 0 {
		seed.ContributedYearToDate = fromFile.ContributedYearToDate
	}
	if fromFile.ProjectedAnnualDividend != 0 {
		seed.ProjectedAnnualDividend = fromFile.ProjectedAnnualDividend
	}
	if fromFile.Beta != nil {
		seed.Beta = fromFile.Beta
	}
	if fromFile.RSI != nil {
		seed.RSI = fromFile.RSI
	}
	return seed, nil
}

// Default returns the built-in seed
func Default() Seed {
	return Seed{
		Assets:                  defaultAssets(),
		News:                    defaultNews(),
		Contributions:           defaultContributions(),
		CurrentContribution:     525,
		ContributedYearToDate:   4200,
		ProjectedAnnualDividend: 2840,
		Beta: []domain.TickerMetric{
			{Ticker: "NVDA", Value: 1.65},
			{Ticker: "ASML", Value: 1.32},
			{Ticker: "MSFT", Value: 0.92},
			{Ticker: "SPY", Value: 1.0},
			{Ticker: "BRK.B", Value: 0.85},
			{Ticker: "MELI", Value: 1.45},
		},
		RSI: []domain.TickerMetric{
			{Ticker: "NVDA", Value: 68},
			{Ticker: "ASML", Value: 55},
			{Ticker: "MSFT", Value: 52},
			{Ticker: "SPY", Value: 58},
			{Ticker: "BRK.B", Value: 48},
			{Ticker: "MELI", Value: 62},
		},
	}
}

func defaultAssets() []domain.Asset {
	return []domain.Asset{
		{ID: "1", Ticker: "SPY", Name: "SPDR S&P 500 ETF Trust", Quantity: 15, AvgPrice: 425.5, CurrentPrice: 478.32, Sector: domain.SectorETF, Geography: domain.GeographyUS, RiskLevel: 5},
		{ID: "2", Ticker: "NVDA", Name: "NVIDIA Corporation", Quantity: 25, AvgPrice: 285.0, CurrentPrice: 495.22, Sector: domain.SectorTech, Geography: domain.GeographyUS, RiskLevel: 8},
		{ID: "3", Ticker: "ALUA.BA", Name: "Aluar Aluminio Argentino", Quantity: 500, AvgPrice: 145.0, CurrentPrice: 168.5, Sector: domain.SectorIndustrial, Geography: domain.GeographyArgentina, RiskLevel: 7},
		{ID: "4", Ticker: "BBAR", Name: "Banco BBVA Argentina", Quantity: 200, AvgPrice: 4.85, CurrentPrice: 7.42, Sector: domain.SectorFinancial, Geography: domain.GeographyArgentina, RiskLevel: 9},
		{ID: "5", Ticker: "MSFT", Name: "Microsoft Corporation", Quantity: 12, AvgPrice: 285.0, CurrentPrice: 378.91, Sector: domain.SectorTech, Geography: domain.GeographyUS, RiskLevel: 4},
		{ID: "6", Ticker: "BRK.B", Name: "Berkshire Hathaway Inc.", Quantity: 8, AvgPrice: 325.0, CurrentPrice: 362.45, Sector: domain.SectorFinancial, Geography: domain.GeographyUS, RiskLevel: 3},
		{ID: "7", Ticker: "ASML", Name: "ASML Holding N.V.", Quantity: 5, AvgPrice: 620.0, CurrentPrice: 725.8, Sector: domain.SectorTech, Geography: domain.GeographyUS, RiskLevel: 6},
		{ID: "8", Ticker: "MELI", Name: "MercadoLibre Inc.", Quantity: 3, AvgPrice: 1150.0, CurrentPrice: 1542.3, Sector: domain.SectorConsumer, Geography: domain.GeographyArgentina, RiskLevel: 7},
	}
}

func defaultNews() []domain.NewsItem {
	at := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}
	return []domain.NewsItem{
		{
			ID:             "n1",
			Title:          "NVIDIA Announces Next-Gen AI Chips at GTC 2026",
			Summary:        "NVIDIA unveiled its Blackwell Ultra architecture, promising 3x performance gains for AI workloads. Major cloud providers have already placed significant orders.",
			Source:         "TechCrunch",
			PublishedAt:    at("2026-02-02T08:30:00Z"),
			RelatedTickers: []string{"NVDA"},
			Sentiment:      domain.SentimentPositive,
			Category:       domain.CategoryAssetImpact,
			SentimentScore: 85,
		},
		{
			ID:             "n2",
			Title:          "ASML Reports Record Orders for EUV Lithography Systems",
			Summary:        "ASML reported Q4 orders exceeding expectations, with strong demand from semiconductor manufacturers expanding AI chip production capacity.",
			Source:         "Reuters",
			PublishedAt:    at("2026-02-01T14:15:00Z"),
			RelatedTickers: []string{"ASML", "NVDA"},
			Sentiment:      domain.SentimentPositive,
			Category:       domain.CategoryAssetImpact,
			SentimentScore: 72,
		},
		{
			ID:             "n3",
			Title:          "SEC Proposes New AI Disclosure Requirements",
			Summary:        "The SEC is considering new rules requiring companies to disclose AI-related risks and investments in their annual filings, potentially affecting tech valuations.",
			Source:         "Wall Street Journal",
			PublishedAt:    at("2026-02-01T09:00:00Z"),
			RelatedTickers: []string{"NVDA", "MSFT", "ASML"},
			Sentiment:      domain.SentimentNeutral,
			Category:       domain.CategoryRegulationWatch,
			SentimentScore: -5,
		},
		{
			ID:             "n4",
			Title:          "Argentina Central Bank Holds Rates Steady",
			Summary:        "The Argentine Central Bank maintained interest rates at current levels, citing stabilizing inflation expectations. Markets reacted positively to the decision.",
			Source:         "Bloomberg",
			PublishedAt:    at("2026-01-31T16:45:00Z"),
			RelatedTickers: []string{"BBAR", "ALUA.BA", "MELI"},
			Sentiment:      domain.SentimentPositive,
			Category:       domain.CategoryRegulationWatch,
			SentimentScore: 45,
		},
		{
			ID:             "n5",
			Title:          "Microsoft Cloud Revenue Beats Estimates",
			Summary:        "Microsoft reported Azure revenue growth of 32% YoY, driven by AI services adoption. The company raised full-year guidance for cloud segment.",
			Source:         "CNBC",
			PublishedAt:    at("2026-01-30T21:00:00Z"),
			RelatedTickers: []string{"MSFT"},
			Sentiment:      domain.SentimentPositive,
			Category:       domain.CategoryAssetImpact,
			SentimentScore: 78,
		},
		{
			ID:             "n6",
			Title:          "Berkshire Hathaway Increases Cash Position",
			Summary:        "Warren Buffett's Berkshire Hathaway reported record cash holdings, signaling cautious market outlook while maintaining core positions.",
			Source:         "Financial Times",
			PublishedAt:    at("2026-01-30T12:30:00Z"),
			RelatedTickers: []string{"BRK.B"},
			Sentiment:      domain.SentimentNeutral,
			Category:       domain.CategoryAssetImpact,
			SentimentScore: 10,
		},
		{
			ID:             "n7",
			Title:          "MercadoLibre Expands Fintech Services in Brazil",
			Summary:        "MELI announced expansion of its credit and payment services across Brazil, targeting underbanked populations with new digital banking features.",
			Source:         "TechCrunch",
			PublishedAt:    at("2026-01-29T10:00:00Z"),
			RelatedTickers: []string{"MELI"},
			Sentiment:      domain.SentimentPositive,
			Category:       domain.CategoryAssetImpact,
			SentimentScore: 65,
		},
		{
			ID:             "n8",
			Title:          "Global Aluminum Prices Rise on Supply Concerns",
			Summary:        "Aluminum prices reached 6-month highs amid supply disruptions and increased demand from EV manufacturers. Argentine producers stand to benefit.",
			Source:         "Reuters",
			PublishedAt:    at("2026-01-28T08:00:00Z"),
			RelatedTickers: []string{"ALUA.BA"},
			Sentiment:      domain.SentimentPositive,
			Category:       domain.CategoryMarketUpdate,
			SentimentScore: 55,
		},
	}
}

func defaultContributions() []domain.ContributionAllocation {
	return []domain.ContributionAllocation{
		{ID: "c1", Name: "Debt/Liquidity", Ticker: "CASH", Percentage: 30, Color: "#64748b"},
		{ID: "c2", Name: "Microsoft", Ticker: "MSFT", Percentage: 25, Color: "#10b981"},
		{ID: "c3", Name: "Berkshire", Ticker: "BRK.B", Percentage: 20, Color: "#6366f1"},
		{ID: "c4", Name: "ASML", Ticker: "ASML", Percentage: 15, Color: "#8b5cf6"},
		{ID: "c5", Name: "MercadoLibre", Ticker: "MELI", Percentage: 10, Color: "#f59e0b"},
	}
}
