package strategy

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticInputs Inputs

func (s staticInputs) StrategyInputs() Inputs { return Inputs(s) }

func defaultInputs() Inputs {
	return Inputs{
		MonthlyContributionGoal: 700,
		ContributedYearToDate:   4200,
		MaxDrawdown:             12.5,
		MaxDrawdownLimit:        20,
		ProjectedAnnualDividend: 2840,
		DividendTarget:          DefaultDividendTarget,
		TechAllocation:          45,
		TechMin:                 DefaultTechMin,
		TechMax:                 DefaultTechMax,
	}
}

func TestGoal_Evaluate(t *testing.T) {
	midYear := time.Date(2026, time.July, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		goal         Goal
		wantStatus   GoalStatus
		wantProgress float64
	}{
		{"ceiling under", Goal{Kind: KindCeiling, Current: 12.5, Target: 20}, StatusOnTrack, 62.5},
		{"ceiling equal", Goal{Kind: KindCeiling, Current: 20, Target: 20}, StatusOnTrack, 100},
		{"ceiling over", Goal{Kind: KindCeiling, Current: 25, Target: 20}, StatusNeedsAttention, 125},
		{"range inside", Goal{Kind: KindRange, Current: 45, Target: 50, Min: 40, Max: 50}, StatusOnTrack, 90},
		{"range below", Goal{Kind: KindRange, Current: 35, Target: 50, Min: 40, Max: 50}, StatusNeedsAttention, 70},
		{"accumulate ahead", Goal{Kind: KindAccumulate, Current: 4200, Target: 8400}, StatusOnTrack, 50},
		{"accumulate behind", Goal{Kind: KindAccumulate, Current: 1000, Target: 8400}, StatusNeedsAttention, 11.904761904761903},
		{"zero target", Goal{Kind: KindCeiling, Current: 0, Target: 0}, StatusOnTrack, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.goal.Evaluate(midYear)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.InDelta(t, tt.wantProgress, got.Progress, 1e-9)
		})
	}
}

func TestYearFraction(t *testing.T) {
	assert.Equal(t, 0.0, YearFraction(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.InDelta(t, 0.5, YearFraction(time.Date(2026, time.July, 2, 12, 0, 0, 0, time.UTC)), 0.001)
}

func TestService_Goals(t *testing.T) {
	svc := NewService(staticInputs(defaultInputs()), zerolog.Nop())
	svc.now = func() time.Time { return time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC) }

	goals := svc.Goals()
	require.Len(t, goals, 4)
	assert.Equal(t, "Invest $8400 per year ($700/month)", goals[0].Description)
	assert.Equal(t, 8400.0, goals[0].Target)
	for _, g := range goals {
		assert.Equal(t, StatusOnTrack, g.Status, g.Title)
	}

	assert.Len(t, svc.Principles(), 4)
}
