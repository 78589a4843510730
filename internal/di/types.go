// Package di provides dependency injection wiring and initialization.
//
// The Container is the single source of truth for service instances. It is built
// once by Wire and handed to the server and the CLI.
package di

import (
	"github.com/aristath/folio/internal/config"
	"github.com/aristath/folio/internal/events"
	"github.com/aristath/folio/internal/fixtures"
	"github.com/aristath/folio/internal/modules/contributions"
	"github.com/aristath/folio/internal/modules/holdings"
	"github.com/aristath/folio/internal/modules/intelligence"
	"github.com/aristath/folio/internal/modules/performance"
	"github.com/aristath/folio/internal/modules/portfolio"
	"github.com/aristath/folio/internal/modules/settings"
	"github.com/aristath/folio/internal/modules/strategy"
	"github.com/aristath/folio/internal/scheduler"
	"github.com/aristath/folio/internal/server"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Seed   fixtures.Seed

	// Events
	EventBus     *events.Bus
	EventManager *events.Manager

	// Stores
	HoldingsStore  *holdings.Store
	NewsRepository *intelligence.NewsRepository

	// Services
	PortfolioService     *portfolio.Service
	PerformanceService   *performance.Service
	ContributionsService *contributions.Service
	StrategyService      *strategy.Service
	SettingsService      *settings.Service
	FeedImporter         *intelligence.FeedImporter
	ReportService        *intelligence.ReportService
	TemplateReporter     *intelligence.TemplateReporter
	ReportInputs         intelligence.InputSource

	// Background work and observability
	Scheduler      *scheduler.Scheduler
	Metrics        *server.Metrics
	SystemHandlers *server.SystemHandlers

	// HTTP handlers mounted under /api
	Handlers []server.RouteRegistrar

	unsubscribers []func()
}

// Close detaches every bus subscription made during wiring
func (c *Container) Close() {
	for _, unsub := range c.unsubscribers {
		unsub()
	}
	c.unsubscribers = nil
}
