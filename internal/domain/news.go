package domain

import "time"

// NewsCategory groups news items on the intelligence page
type NewsCategory string

const (
	CategoryAssetImpact     NewsCategory = "Asset Impact"
	CategoryRegulationWatch NewsCategory = "Regulation Watch"
	CategoryMarketUpdate    NewsCategory = "Market Update"
)

// Sentiment is the tone of a news item
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
)

// Sentiment score bounds (inclusive)
const (
	MinSentimentScore = -100
	MaxSentimentScore = 100
)

// NewsItem is a headline related to zero or more held tickers
type NewsItem struct {
	ID             string       `json:"id" yaml:"id"`
	Title          string       `json:"title" yaml:"title"`
	Summary        string       `json:"summary" yaml:"summary"`
	Source         string       `json:"source" yaml:"source"`
	URL            string       `json:"url,omitempty" yaml:"url,omitempty"`
	PublishedAt    time.Time    `json:"published_at" yaml:"published_at"`
	RelatedTickers []string     `json:"related_tickers" yaml:"related_tickers"`
	Sentiment      Sentiment    `json:"sentiment" yaml:"sentiment"`
	Category       NewsCategory `json:"category" yaml:"category"`
	SentimentScore int          `json:"sentiment_score" yaml:"sentiment_score"`
}

// HasTicker reports whether the item mentions ticker
func (n NewsItem) HasTicker(ticker string) bool {
	ticker = NormalizeTicker(ticker)
	for _, t := range n.RelatedTickers {
		if NormalizeTicker(t) == ticker {
			return true
		}
	}
	return false
}

// ContributionAllocation is one slice of the monthly contribution plan
type ContributionAllocation struct {
	ID         string  `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	Ticker     string  `json:"ticker" yaml:"ticker"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
	Color      string  `json:"color" yaml:"color"`
}

// TickerMetric is a per-ticker indicator snapshot such as beta or RSI
type TickerMetric struct {
	Ticker string  `json:"ticker" yaml:"ticker"`
	Value  float64 `json:"value" yaml:"value"`
}
