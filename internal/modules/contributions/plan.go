// Package contributions models the monthly contribution plan.
package contributions

import (
	"errors"
	"fmt"
	"math"

	"github.com/aristath/folio/internal/domain"
	"github.com/shopspring/decimal"
)

// percentTolerance is how far allocation percentages may drift from 100
const percentTolerance = 0.01

// ErrInvalidAmount is returned by Split for negative or non-finite amounts
var ErrInvalidAmount = errors.New("amount must be a finite number greater than or equal to 0")

// Plan splits each month's contribution across target allocations
type Plan struct {
	Allocations     []domain.ContributionAllocation `json:"allocations"`
	MonthlyGoal     float64                         `json:"monthly_goal"`
	CurrentProgress float64                         `json:"current_progress"`
}

// SplitLine is one allocation's share of a contribution
type SplitLine struct {
	Ticker     string  `json:"ticker"`
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	Amount     float64 `json:"amount"`
}

// ProgressPercent is CurrentProgress relative to MonthlyGoal, 0 when there is no goal
func (p Plan) ProgressPercent() float64 {
	if p.MonthlyGoal == 0 {
		return 0
	}
	return p.CurrentProgress / p.MonthlyGoal * 100
}

// Validate checks that percentages are non-negative and sum to 100
func (p Plan) Validate() error {
	total := 0.0
	for _, a := range p.Allocations {
		if a.Percentage < 0 {
			return domain.NewValidationError("percentage", fmt.Sprintf("%s must not be negative", a.Ticker))
		}
		total += a.Percentage
	}
	if math.Abs(total-100) > percentTolerance {
		return domain.NewValidationError("percentage", fmt.Sprintf("allocations sum to %v, expected 100", total))
	}
	if p.MonthlyGoal < 0 {
		return domain.NewValidationError("monthlyGoal", "must not be negative")
	}
	return nil
}

// Split divides amount by allocation percentage, rounded to cents
func (p Plan) Split(amount float64) ([]SplitLine, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return nil, ErrInvalidAmount
	}

	total := decimal.NewFromFloat(amount)
	lines := make([]SplitLine, 0, len(p.Allocations))
	for _, a := range p.Allocations {
		share := total.Mul(decimal.NewFromFloat(a.Percentage)).Div(decimal.NewFromInt(100)).Round(2)
		lines = append(lines, SplitLine{
			Ticker:     a.Ticker,
			Name:       a.Name,
			Percentage: a.Percentage,
			Amount:     share.InexactFloat64(),
		})
	}
	return lines, nil
}
