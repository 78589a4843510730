package scheduler

import (
	"context"
	"time"

	"github.com/aristath/folio/internal/modules/intelligence"
)

// Job names
const (
	JobRefreshNews           = "refresh_news"
	JobUpdatePortfolioGauges = "update_portfolio_gauges"
)

// DefaultGaugeSchedule refreshes portfolio gauges once a minute
const DefaultGaugeSchedule = "@every 1m"

// NewsRefresher pulls news feeds
type NewsRefresher interface {
	Refresh(ctx context.Context) (intelligence.RefreshResult, error)
}

// GaugeUpdater recomputes portfolio gauges
type GaugeUpdater interface {
	UpdatePortfolioGauges()
}

// RefreshNewsJob pulls the configured news feeds
type RefreshNewsJob struct {
	refresher NewsRefresher
	timeout   time.Duration
}

// NewRefreshNewsJob creates a news refresh job. Each run is bounded by timeout.
func NewRefreshNewsJob(refresher NewsRefresher, timeout time.Duration) *RefreshNewsJob {
	return &RefreshNewsJob{refresher: refresher, timeout: timeout}
}

// Name returns the job name
func (j *RefreshNewsJob) Name() string {
	return JobRefreshNews
}

// Run executes the job
func (j *RefreshNewsJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	_, err := j.refresher.Refresh(ctx)
	return err
}

// UpdatePortfolioGaugesJob refreshes the portfolio gauges exported as metrics
type UpdatePortfolioGaugesJob struct {
	updater GaugeUpdater
}

// NewUpdatePortfolioGaugesJob creates a gauge refresh job
func NewUpdatePortfolioGaugesJob(updater GaugeUpdater) *UpdatePortfolioGaugesJob {
	return &UpdatePortfolioGaugesJob{updater: updater}
}

// Name returns the job name
func (j *UpdatePortfolioGaugesJob) Name() string {
	return JobUpdatePortfolioGauges
}

// Run executes the job
func (j *UpdatePortfolioGaugesJob) Run() error {
	j.updater.UpdatePortfolioGauges()
	return nil
}
