package di

import (
	"context"
	"fmt"
	"time"

	"github.com/aristath/folio/internal/config"
	"github.com/aristath/folio/internal/modules/contributions"
	"github.com/aristath/folio/internal/modules/intelligence"
	"github.com/aristath/folio/internal/modules/performance"
	"github.com/aristath/folio/internal/modules/portfolio"
	"github.com/aristath/folio/internal/modules/settings"
	"github.com/aristath/folio/internal/modules/strategy"
	"github.com/aristath/folio/internal/reliability"
	"github.com/aristath/folio/internal/scheduler"
	"github.com/aristath/folio/internal/server"
	"github.com/rs/zerolog"
)

// PerformanceDays is the length of the generated history
const PerformanceDays = 365

// InitializeServices creates every service. Stores must be initialized first.
func InitializeServices(container *Container, cfg *config.Config, log zerolog.Logger) error {
	seed := container.Seed

	// Portfolio
	container.PortfolioService = portfolio.NewService(container.HoldingsStore, cfg.DailyChangePercent, log)
	container.unsubscribers = append(container.unsubscribers,
		container.PortfolioService.WatchHoldings(container.EventBus, container.EventManager))

	// Settings come before performance; widget visibility is read per request
	container.SettingsService = settings.NewService(container.EventManager, log)

	// Performance
	series := performance.GenerateSeries(performance.DefaultStart, PerformanceDays, cfg.PerformanceSeed)
	container.PerformanceService = performance.NewService(
		series,
		performance.KPIInput{
			RiskFreeRate:            cfg.RiskFreeRate,
			MaxDrawdownLimit:        cfg.MaxDrawdownLimit,
			ProjectedAnnualDividend: seed.ProjectedAnnualDividend,
		},
		performance.Snapshots{Beta: seed.Beta, RSI: seed.RSI},
		container.SettingsService,
		log,
	)

	// Contributions
	contributionsService, err := contributions.NewService(contributions.Plan{
		Allocations:     seed.Contributions,
		MonthlyGoal:     cfg.MonthlyContributionGoal,
		CurrentProgress: seed.CurrentContribution,
	}, log)
	if err != nil {
		return fmt.Errorf("failed to create contributions service: %w", err)
	}
	container.ContributionsService = contributionsService

	// Strategy
	container.StrategyService = strategy.NewService(&strategyInputsAdapter{
		portfolio:             container.PortfolioService,
		performance:           container.PerformanceService,
		contributions:         container.ContributionsService,
		contributedYearToDate: seed.ContributedYearToDate,
	}, log)

	// Intelligence
	feedBreaker := reliability.NewBreaker("news_feeds", reliability.DefaultBreakerConfig(), log)
	container.FeedImporter = intelligence.NewFeedImporter(
		cfg.News.FeedURLs,
		nil,
		feedBreaker,
		container.NewsRepository,
		container.HoldingsStore,
		container.EventManager,
		log,
	)

	container.TemplateReporter = intelligence.NewTemplateReporter()
	reporter, err := newReporter(container.TemplateReporter, cfg, log)
	if err != nil {
		return err
	}

	container.ReportInputs = &reportInputsAdapter{
		portfolio:   container.PortfolioService,
		performance: container.PerformanceService,
		news:        container.NewsRepository,
		now:         time.Now,
	}
	container.ReportService = intelligence.NewReportService(
		reporter,
		container.ReportInputs,
		cfg.Report.RatePerMinute,
		container.EventManager,
		log,
	)

	// Scheduler and observability
	container.Scheduler = scheduler.New(log)
	container.Metrics = server.NewMetrics(container.PortfolioService, log)
	container.unsubscribers = append(container.unsubscribers, container.Metrics.Subscribe(container.EventBus))
	container.Metrics.UpdatePortfolioGauges()
	container.SystemHandlers = server.NewSystemHandlers(container.HoldingsStore, container.Scheduler, log)

	return nil
}

// newReporter returns the template reporter, chained behind Gemini when an API key is configured
func newReporter(template *intelligence.TemplateReporter, cfg *config.Config, log zerolog.Logger) (intelligence.Reporter, error) {
	if !cfg.GeminiEnabled() {
		log.Info().Msg("Gemini API key not set, using template reports")
		return template, nil
	}

	client, err := intelligence.NewGeminiClient(context.Background(), cfg.Report.GeminiAPIKey)
	if err != nil {
		return nil, err
	}

	breaker := reliability.NewBreaker("gemini", reliability.DefaultBreakerConfig(), log)
	gemini := intelligence.NewGeminiReporter(client.Models, cfg.Report.GeminiModel, breaker, log)

	log.Info().Str("model", cfg.Report.GeminiModel).Msg("Gemini reports enabled")
	return intelligence.NewFallbackReporter(gemini, template, log), nil
}
