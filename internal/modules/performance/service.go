package performance

import (
	"github.com/aristath/folio/internal/domain"
	"github.com/rs/zerolog"
)

// VisibilityProvider returns the current widget toggles
type VisibilityProvider interface {
	Widgets() domain.WidgetVisibility
}

// Service serves the generated history and everything computed from it.
// The series is generated once; KPIs are recomputed per request.
type Service struct {
	series     []Point
	input      KPIInput
	snapshots  Snapshots
	visibility VisibilityProvider
	log        zerolog.Logger
}

// NewService creates a performance service over series
func NewService(series []Point, input KPIInput, snapshots Snapshots, visibility VisibilityProvider, log zerolog.Logger) *Service {
	l := log.With().Str("service", "performance").Logger()
	l.Debug().Int("points", len(series)).Msg("Performance series ready")
	return &Service{
		series:     series,
		input:      input,
		snapshots:  snapshots,
		visibility: visibility,
		log:        l,
	}
}

// History returns a copy of the series
func (s *Service) History() []Point {
	out := make([]Point, len(s.series))
	copy(out, s.series)
	return out
}

// KPIs computes the KPI cards
func (s *Service) KPIs() KPIs {
	return ComputeKPIs(s.series, s.input)
}

// Widgets builds the optional widgets for the current visibility
func (s *Service) Widgets() Widgets {
	var visibility domain.WidgetVisibility
	if s.visibility != nil {
		visibility = s.visibility.Widgets()
	}
	return BuildWidgets(s.series, s.snapshots, visibility)
}
