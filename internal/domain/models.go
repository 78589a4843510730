// Package domain provides core domain models and types.
package domain

import "strings"

// Sector represents the industry bucket an asset belongs to
type Sector string

const (
	SectorTech       Sector = "Tech"
	SectorFinancial  Sector = "Financial"
	SectorIndustrial Sector = "Industrial"
	SectorConsumer   Sector = "Consumer"
	SectorETF        Sector = "ETF"
)

// Sectors lists the closed set of sectors in display order
var Sectors = []Sector{SectorTech, SectorFinancial, SectorIndustrial, SectorConsumer, SectorETF}

// Valid reports whether s is one of the known sectors
func (s Sector) Valid() bool {
	for _, known := range Sectors {
		if s == known {
			return true
		}
	}
	return false
}

// Geography represents the market an asset is listed in
type Geography string

const (
	GeographyUS        Geography = "US"
	GeographyArgentina Geography = "Argentina"
)

// Geographies lists the closed set of geographies in display order
var Geographies = []Geography{GeographyUS, GeographyArgentina}

// Valid reports whether g is one of the known geographies
func (g Geography) Valid() bool {
	for _, known := range Geographies {
		if g == known {
			return true
		}
	}
	return false
}

// Risk level bounds (inclusive)
const (
	MinRiskLevel = 1
	MaxRiskLevel = 10
)

// Asset represents a single holding in the portfolio
type Asset struct {
	ID           string    `json:"id" yaml:"id"`
	Ticker       string    `json:"ticker" yaml:"ticker"`
	Name         string    `json:"name" yaml:"name"`
	Quantity     float64   `json:"quantity" yaml:"quantity"`
	AvgPrice     float64   `json:"avg_price" yaml:"avg_price"`
	CurrentPrice float64   `json:"current_price" yaml:"current_price"`
	Sector       Sector    `json:"sector" yaml:"sector"`
	Geography    Geography `json:"geography" yaml:"geography"`
	RiskLevel    int       `json:"risk_level" yaml:"risk_level"`
}

// AssetInput carries the fields needed to create an asset. The id is assigned by the store.
type AssetInput struct {
	Ticker       string    `json:"ticker"`
	Name         string    `json:"name"`
	Quantity     float64   `json:"quantity"`
	AvgPrice     float64   `json:"avg_price"`
	CurrentPrice float64   `json:"current_price"`
	Sector       Sector    `json:"sector"`
	Geography    Geography `json:"geography"`
	RiskLevel    int       `json:"risk_level"`
}

// AssetUpdate is a partial update; nil fields are left untouched
type AssetUpdate struct {
	Ticker       *string    `json:"ticker,omitempty"`
	Name         *string    `json:"name,omitempty"`
	Quantity     *float64   `json:"quantity,omitempty"`
	AvgPrice     *float64   `json:"avg_price,omitempty"`
	CurrentPrice *float64   `json:"current_price,omitempty"`
	Sector       *Sector    `json:"sector,omitempty"`
	Geography    *Geography `json:"geography,omitempty"`
	RiskLevel    *int       `json:"risk_level,omitempty"`
}

// IsEmpty reports whether the update carries no fields
func (u AssetUpdate) IsEmpty() bool {
	return u.Ticker == nil && u.Name == nil && u.Quantity == nil && u.AvgPrice == nil &&
		u.CurrentPrice == nil && u.Sector == nil && u.Geography == nil && u.RiskLevel == nil
}

// DerivedAsset is an Asset plus the metrics computed from the whole collection.
// It is recomputed on every read and never stored.
type DerivedAsset struct {
	Asset
	TotalValue          float64 `json:"total_value"`
	UnrealizedPL        float64 `json:"unrealized_pl"`
	UnrealizedPLPercent float64 `json:"unrealized_pl_percent"`
	PortfolioPercent    float64 `json:"portfolio_percent"`
}

// AllocationBucket is the share of portfolio value attributed to one category
type AllocationBucket struct {
	Category string  `json:"category" msgpack:"category"`
	Value    float64 `json:"value" msgpack:"value"` // percent, one decimal
	Color    string  `json:"color" msgpack:"color"`
}

// PortfolioSummary holds the top-level aggregates of a derived collection
type PortfolioSummary struct {
	TotalValue        float64 `json:"total_value"`
	TotalUnrealizedPL float64 `json:"total_unrealized_pl"`
	WeightedRisk      float64 `json:"weighted_risk"`
}

// Status describes the lifecycle of an asynchronously produced resource
type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// NormalizeTicker trims and upper-cases a ticker symbol
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}
