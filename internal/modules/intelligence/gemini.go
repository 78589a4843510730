package intelligence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aristath/folio/internal/modules/metrics"
	"github.com/aristath/folio/internal/reliability"
	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

// ErrEmptyResponse is returned when the model answers with no text
var ErrEmptyResponse = errors.New("model returned an empty response")

// ContentGenerator is the subset of the genai models API the reporter uses
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

const systemInstruction = `You are a portfolio analyst writing a short intelligence report for a retail investor.
Answer in markdown with these sections: Market Overview, Key Observations, Argentina Exposure,
Risk Assessment, Dividend Forecast. Use only the figures provided. Do not give personalised advice.`

// GeminiReporter asks a Gemini model to write the report
type GeminiReporter struct {
	models  ContentGenerator
	model   string
	breaker *reliability.Breaker
	log     zerolog.Logger
}

// NewGeminiClient creates a genai client for the Gemini API
func NewGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return client, nil
}

// NewGeminiReporter creates a reporter over models, typically client.Models
func NewGeminiReporter(models ContentGenerator, model string, breaker *reliability.Breaker, log zerolog.Logger) *GeminiReporter {
	return &GeminiReporter{
		models:  models,
		model:   model,
		breaker: breaker,
		log:     log.With().Str("service", "gemini_reporter").Logger(),
	}
}

// Name identifies the reporter in events and status
func (r *GeminiReporter) Name() string {
	return "gemini"
}

// Generate sends the prompt through the breaker and returns the model's markdown
func (r *GeminiReporter) Generate(ctx context.Context, in ReportInput) (string, error) {
	prompt := BuildPrompt(in)
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}

	call := func() (interface{}, error) {
		return r.models.GenerateContent(ctx, r.model, genai.Text(prompt), config)
	}

	var raw interface{}
	var err error
	if r.breaker != nil {
		raw, err = r.breaker.Execute(call)
	} else {
		raw, err = call()
	}
	if err != nil {
		return "", fmt.Errorf("failed to generate report: %w", err)
	}

	resp, _ := raw.(*genai.GenerateContentResponse)
	if resp == nil {
		return "", ErrEmptyResponse
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}

	r.log.Debug().Str("model", r.model).Int("length", len(text)).Msg("Report generated")
	return text, nil
}

// BuildPrompt renders the report input as plain facts for a model
func BuildPrompt(in ReportInput) string {
	cur := in.Currency
	if cur == "" {
		cur = DefaultCurrency
	}
	s := in.View.Summary

	var b strings.Builder
	fmt.Fprintf(&b, "Report date: %s\n", in.GeneratedAt.Format("2006-01-02"))
	fmt.Fprintf(&b, "Total value: %s\n", FormatMoney(s.TotalValue, cur))
	fmt.Fprintf(&b, "Total unrealized P/L: %s\n", FormatMoney(s.TotalUnrealizedPL, cur))
	fmt.Fprintf(&b, "Weighted risk (1-10): %.1f\n", s.WeightedRisk)
	fmt.Fprintf(&b, "Portfolio beta: %.2f\n", in.PortfolioBeta)
	fmt.Fprintf(&b, "Projected annual dividend: %s\n\n", FormatMoney(in.ProjectedAnnualDividend, cur))

	fmt.Fprintf(&b, "Holdings (ticker, sector, geography, value, P/L %%, portfolio %%):\n")
	holdings, _ := metrics.Sort(in.View.Derived, metrics.SortByTotalValue, metrics.Descending)
	for _, a := range holdings {
		fmt.Fprintf(&b, "- %s, %s, %s, %s, %.1f%%, %.1f%%\n",
			a.Ticker, a.Sector, a.Geography, FormatMoney(a.TotalValue, cur), a.UnrealizedPLPercent, a.PortfolioPercent)
	}

	fmt.Fprintf(&b, "\nSector allocation:\n")
	for _, bucket := range in.View.BySector {
		fmt.Fprintf(&b, "- %s: %.1f%%\n", bucket.Category, bucket.Value)
	}
	fmt.Fprintf(&b, "\nGeography allocation:\n")
	for _, bucket := range in.View.ByGeography {
		fmt.Fprintf(&b, "- %s: %.1f%%\n", bucket.Category, bucket.Value)
	}

	if len(in.News) > 0 {
		fmt.Fprintf(&b, "\nRecent news:\n")
		for _, n := range in.News {
			fmt.Fprintf(&b, "- [%s, %s] %s", n.Category, n.Sentiment, n.Title)
			if len(n.RelatedTickers) > 0 {
				fmt.Fprintf(&b, " (%s)", strings.Join(n.RelatedTickers, ", "))
			}
			fmt.Fprintf(&b, "\n")
		}
	}
	return b.String()
}

// FallbackReporter tries primary first and falls back on any error
type FallbackReporter struct {
	primary  Reporter
	fallback Reporter
	log      zerolog.Logger
}

// NewFallbackReporter chains two reporters
func NewFallbackReporter(primary, fallback Reporter, log zerolog.Logger) *FallbackReporter {
	return &FallbackReporter{
		primary:  primary,
		fallback: fallback,
		log:      log.With().Str("service", "fallback_reporter").Logger(),
	}
}

// Name identifies the reporter in events and status
func (r *FallbackReporter) Name() string {
	return r.primary.Name() + "+" + r.fallback.Name()
}

// Generate returns the primary report, or the fallback report when the primary fails
func (r *FallbackReporter) Generate(ctx context.Context, in ReportInput) (string, error) {
	report, err := r.primary.Generate(ctx, in)
	if err == nil {
		return report, nil
	}

	r.log.Warn().Err(err).
		Str("primary", r.primary.Name()).
		Str("fallback", r.fallback.Name()).
		Msg("Primary reporter failed, using fallback")
	return r.fallback.Generate(ctx, in)
}
