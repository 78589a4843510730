package intelligence

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aristath/folio/internal/domain"
	"github.com/aristath/folio/internal/events"
	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"
	"golang.org/x/time/rate"
)

// Report service errors
var (
	ErrRateLimited = errors.New("report generation rate limit exceeded")
	ErrNoReport    = errors.New("no report has been generated yet")
)

// InputSource assembles the current report input
type InputSource interface {
	ReportInput() ReportInput
}

// ReportState is the last generated report and its lifecycle status
type ReportState struct {
	Status      domain.Status `json:"status"`
	Markdown    string        `json:"markdown,omitempty"`
	Generator   string        `json:"generator,omitempty"`
	GeneratedAt *time.Time    `json:"generated_at,omitempty"`
	Error       string        `json:"error,omitempty"`
}

// ReportService generates reports on demand and keeps the latest one
type ReportService struct {
	reporter Reporter
	source   InputSource
	limiter  *rate.Limiter
	emitter  EventEmitter

	mu          sync.RWMutex
	status      domain.Status
	markdown    string
	generatedAt time.Time
	lastErr     string

	log zerolog.Logger
}

// NewReportService creates a report service allowing perMinute generations per minute
func NewReportService(reporter Reporter, source InputSource, perMinute int, emitter EventEmitter, log zerolog.Logger) *ReportService {
	if perMinute <= 0 {
		perMinute = 1
	}
	return &ReportService{
		reporter: reporter,
		source:   source,
		limiter:  rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
		emitter:  emitter,
		status:   domain.StatusReady,
		log:      log.With().Str("service", "report").Logger(),
	}
}

// Generate produces a new report and stores it as the current one.
// A failed generation keeps the previous report.
func (s *ReportService) Generate(ctx context.Context) (ReportState, error) {
	if !s.limiter.Allow() {
		return s.Current(), ErrRateLimited
	}

	s.mu.Lock()
	s.status = domain.StatusLoading
	s.mu.Unlock()

	in := s.source.ReportInput()
	if in.GeneratedAt.IsZero() {
		in.GeneratedAt = time.Now()
	}

	markdown, err := s.reporter.Generate(ctx, in)
	if err != nil {
		s.mu.Lock()
		s.status = domain.StatusError
		s.lastErr = err.Error()
		s.mu.Unlock()

		s.log.Error().Err(err).Str("generator", s.reporter.Name()).Msg("Failed to generate report")
		return s.Current(), fmt.Errorf("failed to generate report: %w", err)
	}

	s.mu.Lock()
	s.status = domain.StatusReady
	s.markdown = markdown
	s.generatedAt = in.GeneratedAt
	s.lastErr = ""
	s.mu.Unlock()

	if s.emitter != nil {
		s.emitter.EmitTyped("intelligence", &events.ReportGeneratedData{
			Generator: s.reporter.Name(),
			Length:    len(markdown),
		})
	}

	s.log.Info().Str("generator", s.reporter.Name()).Int("length", len(markdown)).Msg("Report generated")
	return s.Current(), nil
}

// Current returns the latest report state
func (s *ReportService) Current() ReportState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := ReportState{
		Status:   s.status,
		Markdown: s.markdown,
		Error:    s.lastErr,
	}
	if s.markdown != "" {
		st.Generator = s.reporter.Name()
		t := s.generatedAt
		st.GeneratedAt = &t
	}
	return st
}

// Markdown returns the latest report
func (s *ReportService) Markdown() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.markdown == "" {
		return "", ErrNoReport
	}
	return s.markdown, nil
}

// HTML renders the latest report as HTML
func (s *ReportService) HTML() (string, error) {
	md, err := s.Markdown()
	if err != nil {
		return "", err
	}
	return RenderHTML(md)
}

// RenderHTML converts markdown to HTML
func RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return buf.String(), nil
}
