// Package reliability guards calls to external services.
package reliability

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

// ErrOpen is returned when a call is rejected because the breaker is open
var ErrOpen = errors.New("circuit breaker is open")

// BreakerConfig tunes when a breaker trips and how long it stays open
type BreakerConfig struct {
	Interval            time.Duration
	Timeout             time.Duration
	ConsecutiveFailures uint32
	MinRequests         uint32
	FailureRatio        float64
}

// DefaultBreakerConfig returns the settings used for feed and model calls
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Interval:            60 * time.Second,
		Timeout:             60 * time.Second,
		ConsecutiveFailures: 3,
		MinRequests:         20,
		FailureRatio:        0.05,
	}
}

// Breaker wraps a gobreaker circuit breaker with logging
type Breaker struct {
	cb  *gobreaker.CircuitBreaker
	log zerolog.Logger
}

// NewBreaker creates a named breaker
func NewBreaker(name string, cfg BreakerConfig, log zerolog.Logger) *Breaker {
	b := &Breaker{log: log.With().Str("component", "breaker").Str("breaker", name).Logger()}

	st := gobreaker.Settings{
		Name:     name,
		Interval: cfg.Interval,
		Timeout:  cfg.Timeout,
	}
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		if counts.ConsecutiveFailures >= cfg.ConsecutiveFailures {
			return true
		}
		if counts.Requests < cfg.MinRequests {
			return false
		}
		return float64(counts.TotalFailures)/float64(counts.Requests) > cfg.FailureRatio
	}
	st.OnStateChange = func(name string, from, to gobreaker.State) {
		b.log.Warn().
			Str("from", from.String()).
			Str("to", to.String()).
			Msg("Circuit breaker state changed")
	}

	b.cb = gobreaker.NewCircuitBreaker(st)
	return b
}

// Execute runs fn through the breaker. Rejections surface as ErrOpen.
func (b *Breaker) Execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := b.cb.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, ErrOpen
	}
	return result, err
}

// State returns the current breaker state name
func (b *Breaker) State() string {
	return b.cb.State().String()
}
