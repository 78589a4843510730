package di

import (
	contributionshandlers "github.com/aristath/folio/internal/modules/contributions/handlers"
	holdingshandlers "github.com/aristath/folio/internal/modules/holdings/handlers"
	intelligencehandlers "github.com/aristath/folio/internal/modules/intelligence/handlers"
	performancehandlers "github.com/aristath/folio/internal/modules/performance/handlers"
	portfoliohandlers "github.com/aristath/folio/internal/modules/portfolio/handlers"
	settingshandlers "github.com/aristath/folio/internal/modules/settings/handlers"
	strategyhandlers "github.com/aristath/folio/internal/modules/strategy/handlers"
	"github.com/aristath/folio/internal/server"
	"github.com/rs/zerolog"
)

// InitializeHandlers creates the module handlers mounted under /api
func InitializeHandlers(container *Container, log zerolog.Logger) {
	container.Handlers = []server.RouteRegistrar{
		holdingshandlers.NewHandler(container.HoldingsStore, container.PortfolioService, log),
		portfoliohandlers.NewHandler(container.PortfolioService, log),
		performancehandlers.NewHandler(container.PerformanceService, log),
		contributionshandlers.NewHandler(container.ContributionsService, log),
		strategyhandlers.NewHandler(container.StrategyService, log),
		intelligencehandlers.NewHandler(container.NewsRepository, container.FeedImporter, container.ReportService, log),
		settingshandlers.NewHandler(container.SettingsService, log),
	}
}
