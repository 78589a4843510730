package di

import (
	"time"

	"github.com/aristath/folio/internal/domain"
	"github.com/aristath/folio/internal/modules/allocation"
	"github.com/aristath/folio/internal/modules/contributions"
	"github.com/aristath/folio/internal/modules/intelligence"
	"github.com/aristath/folio/internal/modules/performance"
	"github.com/aristath/folio/internal/modules/portfolio"
	"github.com/aristath/folio/internal/modules/strategy"
)

// strategyInputsAdapter gathers goal inputs from the live modules
type strategyInputsAdapter struct {
	portfolio             *portfolio.Service
	performance           *performance.Service
	contributions         *contributions.Service
	contributedYearToDate float64
}

func (a *strategyInputsAdapter) StrategyInputs() strategy.Inputs {
	kpis := a.performance.KPIs()
	plan := a.contributions.Plan()

	return strategy.Inputs{
		MonthlyContributionGoal: plan.MonthlyGoal,
		ContributedYearToDate:   a.contributedYearToDate,
		MaxDrawdown:             kpis.MaxDrawdown,
		MaxDrawdownLimit:        kpis.MaxDrawdownLimit,
		ProjectedAnnualDividend: kpis.ProjectedAnnualDividend,
		DividendTarget:          strategy.DefaultDividendTarget,
		TechAllocation:          a.portfolio.BucketValue(allocation.DimensionSector, string(domain.SectorTech)),
		TechMin:                 strategy.DefaultTechMin,
		TechMax:                 strategy.DefaultTechMax,
	}
}

// reportInputsAdapter assembles the intelligence report input
type reportInputsAdapter struct {
	portfolio   *portfolio.Service
	performance *performance.Service
	news        *intelligence.NewsRepository
	now         func() time.Time
}

func (a *reportInputsAdapter) ReportInput() intelligence.ReportInput {
	kpis := a.performance.KPIs()

	return intelligence.ReportInput{
		GeneratedAt:             a.now(),
		View:                    a.portfolio.View(),
		News:                    a.news.List(intelligence.Filter{}),
		PortfolioBeta:           kpis.Beta,
		ProjectedAnnualDividend: kpis.ProjectedAnnualDividend,
		Currency:                intelligence.DefaultCurrency,
	}
}
