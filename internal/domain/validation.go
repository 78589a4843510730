package domain

import (
	"fmt"
	"math"
)

// ValidateInput checks every field of a create request.
// Fields are checked in a fixed order and the first violation is returned.
func ValidateInput(in AssetInput) error {
	if err := validateTicker(in.Ticker); err != nil {
		return err
	}
	if err := validateQuantity(in.Quantity); err != nil {
		return err
	}
	if err := validateAvgPrice(in.AvgPrice); err != nil {
		return err
	}
	if err := validateCurrentPrice(in.CurrentPrice); err != nil {
		return err
	}
	if err := ValidateValue(in.Quantity, in.AvgPrice, in.CurrentPrice); err != nil {
		return err
	}
	if err := validateSector(in.Sector); err != nil {
		return err
	}
	if err := validateGeography(in.Geography); err != nil {
		return err
	}
	return validateRiskLevel(in.RiskLevel)
}

// ValidateValue rejects a position whose market value or cost basis overflows float64
func ValidateValue(quantity, avgPrice, currentPrice float64) error {
	if !isFinite(quantity*currentPrice) || !isFinite(quantity*avgPrice) {
		return NewValidationError("quantity", "position value must be a finite number")
	}
	return nil
}

// ValidateUpdate checks only the fields present in a partial update.
// Cross-field rules need the merged record; use ValidateAsset on it.
func ValidateUpdate(u AssetUpdate) error {
	if u.Ticker != nil {
		if err := validateTicker(*u.Ticker); err != nil {
			return err
		}
	}
	if u.Quantity != nil {
		if err := validateQuantity(*u.Quantity); err != nil {
			return err
		}
	}
	if u.AvgPrice != nil {
		if err := validateAvgPrice(*u.AvgPrice); err != nil {
			return err
		}
	}
	if u.CurrentPrice != nil {
		if err := validateCurrentPrice(*u.CurrentPrice); err != nil {
			return err
		}
	}
	if u.Sector != nil {
		if err := validateSector(*u.Sector); err != nil {
			return err
		}
	}
	if u.Geography != nil {
		if err := validateGeography(*u.Geography); err != nil {
			return err
		}
	}
	if u.RiskLevel != nil {
		if err := validateRiskLevel(*u.RiskLevel); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAsset checks a complete record, including its id
func ValidateAsset(a Asset) error {
	if a.ID == "" {
		return NewValidationError("id", "must not be empty")
	}
	return ValidateInput(AssetInput{
		Ticker:       a.Ticker,
		Name:         a.Name,
		Quantity:     a.Quantity,
		AvgPrice:     a.AvgPrice,
		CurrentPrice: a.CurrentPrice,
		Sector:       a.Sector,
		Geography:    a.Geography,
		RiskLevel:    a.RiskLevel,
	})
}

func validateTicker(ticker string) error {
	if NormalizeTicker(ticker) == "" {
		return NewValidationError("ticker", "must not be empty")
	}
	return nil
}

func validateQuantity(v float64) error {
	if !isFinite(v) {
		return NewValidationError("quantity", "must be a finite number")
	}
	if v < 0 {
		return NewValidationError("quantity", "must be greater than or equal to 0")
	}
	return nil
}

func validateAvgPrice(v float64) error {
	if !isFinite(v) {
		return NewValidationError("avgPrice", "must be a finite number")
	}
	if v <= 0 {
		return NewValidationError("avgPrice", "must be greater than 0")
	}
	return nil
}

func validateCurrentPrice(v float64) error {
	if !isFinite(v) {
		return NewValidationError("currentPrice", "must be a finite number")
	}
	if v < 0 {
		return NewValidationError("currentPrice", "must be greater than or equal to 0")
	}
	return nil
}

func validateSector(s Sector) error {
	if !s.Valid() {
		return NewValidationError("sector", fmt.Sprintf("unknown sector %q", s))
	}
	return nil
}

func validateGeography(g Geography) error {
	if !g.Valid() {
		return NewValidationError("geography", fmt.Sprintf("unknown geography %q", g))
	}
	return nil
}

func validateRiskLevel(v int) error {
	if v < MinRiskLevel || v > MaxRiskLevel {
		return NewValidationError("riskLevel", fmt.Sprintf("must be between %d and %d", MinRiskLevel, MaxRiskLevel))
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
