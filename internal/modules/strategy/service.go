package strategy

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Inputs are the live values the goals are measured against
type Inputs struct {
	MonthlyContributionGoal float64
	ContributedYearToDate   float64
	MaxDrawdown             float64 // percent
	MaxDrawdownLimit        float64 // percent
	ProjectedAnnualDividend float64
	DividendTarget          float64
	TechAllocation          float64 // percent
	TechMin                 float64
	TechMax                 float64
}

// InputsProvider gathers Inputs from the other modules
type InputsProvider interface {
	StrategyInputs() Inputs
}

// DefaultDividendTarget is the annual dividend income goal
const DefaultDividendTarget = 3000

// Tech allocation band, percent
const (
	DefaultTechMin = 40
	DefaultTechMax = 50
)

// Service evaluates the goals on demand
type Service struct {
	inputs InputsProvider
	now    func() time.Time
	log    zerolog.Logger
}

// NewService creates a strategy service
func NewService(inputs InputsProvider, log zerolog.Logger) *Service {
	return &Service{
		inputs: inputs,
		now:    time.Now,
		log:    log.With().Str("service", "strategy").Logger(),
	}
}

// Goals builds and evaluates the four goal cards
func (s *Service) Goals() []Goal {
	return BuildGoals(s.inputs.StrategyInputs(), s.now())
}

// Principles returns the static principles
func (s *Service) Principles() []Principle {
	return Principles
}

// BuildGoals evaluates every goal against in at time now
func BuildGoals(in Inputs, now time.Time) []Goal {
	annualTarget := in.MonthlyContributionGoal * 12
	goals := []Goal{
		{
			ID:          1,
			Title:       "Annual Contribution Target",
			Description: fmt.Sprintf("Invest $%.0f per year ($%.0f/month)", annualTarget, in.MonthlyContributionGoal),
			Kind:        KindAccumulate,
			Current:     in.ContributedYearToDate,
			Target:      annualTarget,
		},
		{
			ID:          2,
			Title:       "Max Drawdown Limit",
			Description: fmt.Sprintf("Keep portfolio drawdown under %.0f%%", in.MaxDrawdownLimit),
			Kind:        KindCeiling,
			Current:     in.MaxDrawdown,
			Target:      in.MaxDrawdownLimit,
		},
		{
			ID:          3,
			Title:       "Dividend Income Goal",
			Description: fmt.Sprintf("Generate $%.0f in annual dividends", in.DividendTarget),
			Kind:        KindAccumulate,
			Current:     in.ProjectedAnnualDividend,
			Target:      in.DividendTarget,
		},
		{
			ID:          4,
			Title:       "Tech Sector Allocation",
			Description: fmt.Sprintf("Maintain %.0f-%.0f%% tech allocation", in.TechMin, in.TechMax),
			Kind:        KindRange,
			Current:     in.TechAllocation,
			Target:      in.TechMax,
			Min:         in.TechMin,
			Max:         in.TechMax,
		},
	}

	for i := range goals {
		goals[i] = goals[i].Evaluate(now)
	}
	return goals
}
