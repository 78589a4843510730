package intelligence

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aristath/folio/internal/fixtures"
	"github.com/aristath/folio/internal/modules/portfolio"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func seededInput() ReportInput {
	seed := fixtures.Default()
	return ReportInput{
		GeneratedAt:             time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC),
		View:                    portfolio.ComputeView(seed.Assets),
		News:                    seed.News,
		PortfolioBeta:           1.15,
		ProjectedAnnualDividend: seed.ProjectedAnnualDividend,
		Currency:                "USD",
	}
}

type failingReporter struct{}

func (failingReporter) Name() string { return "broken" }

func (failingReporter) Generate(context.Context, ReportInput) (string, error) {
	return "", errors.New("quota exceeded")
}

type fakeModels struct {
	text   string
	err    error
	prompt string
	model  string
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: "model", Parts: []*genai.Part{{Text: f.text}}}},
		},
	}, nil
}

func TestTemplateReporter_Sections(t *testing.T) {
	report, err := NewTemplateReporter().Generate(context.Background(), seededInput())
	require.NoError(t, err)

	for _, section := range []string{
		"## Portfolio Intelligence Report",
		"### Market Overview",
		"### Key Observations",
		"### Argentina Exposure",
		"### Risk Assessment",
		"### Dividend Forecast",
	} {
		assert.Contains(t, report, section)
	}

	assert.Contains(t, report, "March 15, 2026")
	assert.Contains(t, report, "across 8 holdings")
	assert.Contains(t, report, "6 positive, 2 neutral and 0 negative")
	assert.Contains(t, report, "1. **NVDA** is at +73.8% unrealized, supported by \"NVIDIA Announces Next-Gen AI Chips at GTC 2026\"")
	assert.Contains(t, report, "ALUA.BA, BBAR, MELI")
	assert.Contains(t, report, "Portfolio beta: 1.15")
	assert.Contains(t, report, "$2,840.00")
	assert.Contains(t, report, "$710.00 per quarter")
}

func TestTemplateReporter_EmptyPortfolio(t *testing.T) {
	in := ReportInput{GeneratedAt: time.Now(), View: portfolio.ComputeView(nil)}
	report, err := NewTemplateReporter().Generate(context.Background(), in)
	require.NoError(t, err)
	assert.Contains(t, report, "No holdings to observe.")
	assert.Contains(t, report, "No Argentine holdings.")
}

func TestTemplateReporter_UnknownCurrency(t *testing.T) {
	in := seededInput()
	in.Currency = "XYZ"
	_, err := NewTemplateReporter().Generate(context.Background(), in)
	assert.Error(t, err)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$2,840.00", FormatMoney(2840, "USD"))
	assert.Equal(t, "$0.01", FormatMoney(0.005, "USD"))
	assert.Equal(t, "12.50 XYZ", FormatMoney(12.5, "XYZ"))
}

func TestRiskAction(t *testing.T) {
	assert.Equal(t, "reduce exposure to high-risk positions", riskAction(7.5))
	assert.Equal(t, "maintain current allocation and monitor high-risk positions", riskAction(5))
	assert.Equal(t, "room to add growth exposure", riskAction(3.2))
}

func TestGeminiReporter_Generate(t *testing.T) {
	models := &fakeModels{text: "## Report\n\nAll good."}
	reporter := NewGeminiReporter(models, "gemini-2.0-flash", nil, zerolog.Nop())

	report, err := reporter.Generate(context.Background(), seededInput())
	require.NoError(t, err)
	assert.Equal(t, "## Report\n\nAll good.", report)
	assert.Equal(t, "gemini-2.0-flash", models.model)
	assert.Contains(t, models.prompt, "Report date: 2026-03-15")
	assert.Contains(t, models.prompt, "- NVDA, Tech, US")
	assert.Contains(t, models.prompt, "Recent news:")
}

func TestGeminiReporter_EmptyResponse(t *testing.T) {
	reporter := NewGeminiReporter(&fakeModels{text: "  "}, "m", nil, zerolog.Nop())
	_, err := reporter.Generate(context.Background(), seededInput())
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestFallbackReporter(t *testing.T) {
	fallback := NewFallbackReporter(failingReporter{}, NewTemplateReporter(), zerolog.Nop())
	assert.Equal(t, "broken+template", fallback.Name())

	report, err := fallback.Generate(context.Background(), seededInput())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(report, "## Portfolio Intelligence Report"))
}
