package di

import (
	"fmt"
	"time"

	"github.com/aristath/folio/internal/config"
	"github.com/aristath/folio/internal/scheduler"
	"github.com/rs/zerolog"
)

// NewsRefreshTimeout bounds one scheduled news refresh
const NewsRefreshTimeout = 2 * time.Minute

// RegisterJobs registers background jobs with the scheduler. The scheduler is not started.
func RegisterJobs(container *Container, cfg *config.Config, log zerolog.Logger) error {
	gauges := scheduler.NewUpdatePortfolioGaugesJob(container.Metrics)
	if err := container.Scheduler.AddJob(scheduler.DefaultGaugeSchedule, gauges); err != nil {
		return fmt.Errorf("failed to register %s: %w", gauges.Name(), err)
	}

	if !container.FeedImporter.Enabled() {
		log.Info().Msg("No news feeds configured, news refresh job disabled")
		return nil
	}

	news := scheduler.NewRefreshNewsJob(container.FeedImporter, NewsRefreshTimeout)
	if err := container.Scheduler.AddJob(cfg.News.RefreshSchedule, news); err != nil {
		return fmt.Errorf("failed to register %s: %w", news.Name(), err)
	}
	return nil
}
