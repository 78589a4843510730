package contributions

import (
	"sync"

	"github.com/rs/zerolog"
)

// Service exposes the contribution plan
type Service struct {
	plan Plan
	mu   sync.RWMutex
	log  zerolog.Logger
}

// NewService creates a contribution service after validating plan
func NewService(plan Plan, log zerolog.Logger) (*Service, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &Service{
		plan: plan,
		log:  log.With().Str("service", "contributions").Logger(),
	}, nil
}

// Plan returns a copy of the plan
func (s *Service) Plan() Plan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := s.plan
	p.Allocations = append(p.Allocations[:0:0], s.plan.Allocations...)
	return p
}

// Split divides amount across the plan
func (s *Service) Split(amount float64) ([]SplitLine, error) {
	lines, err := s.Plan().Split(amount)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Float64("amount", amount).Int("lines", len(lines)).Msg("Contribution split")
	return lines, nil
}
