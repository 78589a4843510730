// Package strategy evaluates investment goals against live portfolio data.
package strategy

import (
	"time"
)

// GoalKind selects how a goal's status is judged
type GoalKind string

const (
	// KindCeiling is on track while current stays at or below target
	KindCeiling GoalKind = "ceiling"
	// KindRange is on track while current stays within [Min, Max]
	KindRange GoalKind = "range"
	// KindAccumulate is on track while current keeps pace with the elapsed share of the year
	KindAccumulate GoalKind = "accumulate"
)

// GoalStatus is the badge shown on a goal card
type GoalStatus string

const (
	StatusOnTrack        GoalStatus = "on-track"
	StatusNeedsAttention GoalStatus = "needs-attention"
)

// Goal is one strategy card
type Goal struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Kind        GoalKind   `json:"kind"`
	Current     float64    `json:"current"`
	Target      float64    `json:"target"`
	Min         float64    `json:"min,omitempty"`
	Max         float64    `json:"max,omitempty"`
	Progress    float64    `json:"progress"` // percent of target, uncapped
	Status      GoalStatus `json:"status"`
}

// Principle is a static investment rule shown next to the goals
type Principle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Principles lists the investment principles
var Principles = []Principle{
	{
		Title:       "Value-Growth Hybrid",
		Description: "Focus on companies with strong fundamentals and growth potential. Blend established dividend payers with high-growth opportunities.",
	},
	{
		Title:       "Geographic Diversification",
		Description: "Maintain exposure to both US markets and Argentine opportunities. Target 70/30 US/Argentina split.",
	},
	{
		Title:       "Risk Management",
		Description: "Never exceed 20% drawdown. Use position sizing to limit single-stock risk. Maintain emergency cash buffer.",
	},
	{
		Title:       "Dollar-Cost Averaging",
		Description: "Consistent monthly contributions of $700 split across target allocation percentages.",
	},
}

// Evaluate fills in Progress and Status. now decides the elapsed share of the year for accumulate goals.
func (g Goal) Evaluate(now time.Time) Goal {
	if g.Target != 0 {
		g.Progress = g.Current / g.Target * 100
	} else {
		g.Progress = 0
	}

	onTrack := false
	switch g.Kind {
	case KindCeiling:
		onTrack = g.Current <= g.Target
	case KindRange:
		onTrack = g.Current >= g.Min && g.Current <= g.Max
	case KindAccumulate:
		onTrack = g.Current >= g.Target*YearFraction(now)
	}

	g.Status = StatusNeedsAttention
	if onTrack {
		g.Status = StatusOnTrack
	}
	return g
}

// YearFraction is the share of the calendar year of now that has elapsed, in [0, 1)
func YearFraction(now time.Time) float64 {
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(1, 0, 0)
	return float64(now.Sub(start)) / float64(end.Sub(start))
}
