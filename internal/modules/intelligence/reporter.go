package intelligence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/aristath/folio/internal/domain"
	"github.com/aristath/folio/internal/modules/metrics"
	"github.com/aristath/folio/internal/modules/portfolio"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a report input carries no currency
const DefaultCurrency = money.USD

// Risk thresholds on the weighted risk score
const (
	HighRiskThreshold     = 7.0
	ElevatedRiskThreshold = 5.0
)

// ReportInput is everything a reporter may describe
type ReportInput struct {
	GeneratedAt             time.Time
	View                    portfolio.View
	News                    []domain.NewsItem
	PortfolioBeta           float64
	ProjectedAnnualDividend float64
	Currency                string
}

// Reporter produces a markdown intelligence report
type Reporter interface {
	Name() string
	Generate(ctx context.Context, in ReportInput) (string, error)
}

// TemplateReporter renders a deterministic report from the input alone
type TemplateReporter struct{}

// NewTemplateReporter creates a template reporter
func NewTemplateReporter() *TemplateReporter {
	return &TemplateReporter{}
}

// Name identifies the reporter in events and status
func (r *TemplateReporter) Name() string {
	return "template"
}

// Generate renders the report
func (r *TemplateReporter) Generate(ctx context.Context, in ReportInput) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	cur := in.Currency
	if cur == "" {
		cur = DefaultCurrency
	}
	if money.GetCurrency(cur) == nil {
		return "", fmt.Errorf("unknown currency %q", cur)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Portfolio Intelligence Report\n\n")
	fmt.Fprintf(&b, "_Generated on %s_\n\n", in.GeneratedAt.Format("January 2, 2006"))

	writeMarketOverview(&b, in, cur)
	writeKeyObservations(&b, in)
	writeArgentinaExposure(&b, in)
	writeRiskAssessment(&b, in)
	writeDividendForecast(&b, in, cur)

	return b.String(), nil
}

func writeMarketOverview(b *strings.Builder, in ReportInput, cur string) {
	s := in.View.Summary
	plPercent := 0.0
	if cost := s.TotalValue - s.TotalUnrealizedPL; cost > 0 {
		plPercent = s.TotalUnrealizedPL / cost * 100
	}

	positive, neutral, negative := sentimentCounts(in.News)

	fmt.Fprintf(b, "### Market Overview\n\n")
	fmt.Fprintf(b, "The portfolio is worth %s across %d holdings, with an unrealized P/L of %s (%s%%). ",
		FormatMoney(s.TotalValue, cur),
		len(in.View.Derived),
		FormatMoney(s.TotalUnrealizedPL, cur),
		signed(plPercent, 1))
	fmt.Fprintf(b, "News flow: %d positive, %d neutral and %d negative headlines.\n\n", positive, neutral, negative)
}

func writeKeyObservations(b *strings.Builder, in ReportInput) {
	fmt.Fprintf(b, "### Key Observations\n\n")

	movers, err := metrics.Sort(in.View.Derived, metrics.SortByUnrealizedPLPercent, metrics.Descending)
	if err != nil || len(movers) == 0 {
		fmt.Fprintf(b, "No holdings to observe.\n\n")
		return
	}
	if len(movers) > 3 {
		movers = movers[:3]
	}

	for i, a := range movers {
		fmt.Fprintf(b, "%d. **%s** is at %s%% unrealized", i+1, a.Ticker, signed(a.UnrealizedPLPercent, 1))
		if headline := positiveHeadline(in.News, a.Ticker); headline != "" {
			fmt.Fprintf(b, ", supported by \"%s\"", headline)
		}
		fmt.Fprintf(b, ".\n")
	}
	fmt.Fprintf(b, "\n")
}

func writeArgentinaExposure(b *strings.Builder, in ReportInput) {
	share := 0.0
	for _, bucket := range in.View.ByGeography {
		if bucket.Category == string(domain.GeographyArgentina) {
			share = bucket.Value
		}
	}

	var tickers []string
	for _, a := range in.View.Derived {
		if a.Geography == domain.GeographyArgentina {
			tickers = append(tickers, a.Ticker)
		}
	}

	fmt.Fprintf(b, "### Argentina Exposure\n\n")
	if len(tickers) == 0 {
		fmt.Fprintf(b, "No Argentine holdings.\n\n")
		return
	}
	fmt.Fprintf(b, "Argentina accounts for %.1f%% of the portfolio through %s.\n\n", share, strings.Join(tickers, ", "))
}

func writeRiskAssessment(b *strings.Builder, in ReportInput) {
	risk := in.View.Summary.WeightedRisk

	fmt.Fprintf(b, "### Risk Assessment\n\n")
	fmt.Fprintf(b, "- Weighted risk: %.1f / %d\n", risk, domain.MaxRiskLevel)
	fmt.Fprintf(b, "- Portfolio beta: %.2f\n", in.PortfolioBeta)
	fmt.Fprintf(b, "- Recommended action: %s\n\n", riskAction(risk))
}

func writeDividendForecast(b *strings.Builder, in ReportInput, cur string) {
	annual := in.ProjectedAnnualDividend
	yield := 0.0
	if in.View.Summary.TotalValue > 0 {
		yield = annual / in.View.Summary.TotalValue * 100
	}

	fmt.Fprintf(b, "### Dividend Forecast\n\n")
	fmt.Fprintf(b, "Projected annual dividends of %s (%s per quarter), a %.2f%% yield on current value.\n",
		FormatMoney(annual, cur),
		FormatMoney(annual/4, cur),
		yield)
}

func riskAction(weightedRisk float64) string {
	switch {
	case weightedRisk > HighRiskThreshold:
		return "reduce exposure to high-risk positions"
	case weightedRisk >= ElevatedRiskThreshold:
		return "maintain current allocation and monitor high-risk positions"
	default:
		return "room to add growth exposure"
	}
}

func sentimentCounts(news []domain.NewsItem) (positive, neutral, negative int) {
	for _, n := range news {
		switch n.Sentiment {
		case domain.SentimentPositive:
			positive++
		case domain.SentimentNegative:
			negative++
		default:
			neutral++
		}
	}
	return positive, neutral, negative
}

// positiveHeadline returns the most positive headline mentioning ticker
func positiveHeadline(news []domain.NewsItem, ticker string) string {
	best := ""
	bestScore := 0
	for _, n := range news {
		if n.Sentiment != domain.SentimentPositive || !n.HasTicker(ticker) {
			continue
		}
		if best == "" || n.SentimentScore > bestScore {
			best = n.Title
			bestScore = n.SentimentScore
		}
	}
	return best
}

func signed(v float64, places int32) string {
	d := decimal.NewFromFloat(v).Round(places)
	if d.IsPositive() {
		return "+" + d.StringFixed(places)
	}
	return d.StringFixed(places)
}

// FormatMoney formats amount in the currency's display format, e.g. $2,840.00
func FormatMoney(amount float64, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return decimal.NewFromFloat(amount).StringFixed(2) + " " + currency
	}

	factor, _ := decimal.NewFromInt(10).PowInt32(int32(cur.Fraction))
	minor := decimal.NewFromFloat(amount).Mul(factor).Round(0)
	return money.New(minor.IntPart(), cur.Code).Display()
}
