package intelligence

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/aristath/folio/internal/domain"
	"github.com/aristath/folio/internal/events"
	"github.com/aristath/folio/internal/reliability"
	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
	"github.com/rs/zerolog"
)

// EventEmitter publishes typed events
type EventEmitter interface {
	EmitTyped(module string, data events.EventData)
}

// FeedParser fetches and parses one RSS or Atom feed
type FeedParser interface {
	ParseURLWithContext(feedURL string, ctx context.Context) (*gofeed.Feed, error)
}

// TickerSource lists the tickers currently held
type TickerSource interface {
	Tickers() []string
}

// RefreshResult summarises one import run
type RefreshResult struct {
	Sources int `json:"sources"`
	Failed  int `json:"failed"`
	Fetched int `json:"fetched"`
	Added   int `json:"added"`
}

// ImportStatus reports the state of the last import run
type ImportStatus struct {
	Status      domain.Status `json:"status"`
	Feeds       int           `json:"feeds"`
	LastRefresh *time.Time    `json:"last_refresh,omitempty"`
	LastError   string        `json:"last_error,omitempty"`
	Breaker     string        `json:"breaker"`
}

// FeedImporter pulls configured feeds into the news repository
type FeedImporter struct {
	urls    []string
	parser  FeedParser
	breaker *reliability.Breaker
	repo    *NewsRepository
	tickers TickerSource
	emitter EventEmitter

	mu          sync.RWMutex
	status      domain.Status
	lastRefresh time.Time
	lastErr     string

	log zerolog.Logger
}

// NewFeedImporter creates an importer for urls. A nil parser uses gofeed's default parser.
func NewFeedImporter(
	urls []string,
	parser FeedParser,
	breaker *reliability.Breaker,
	repo *NewsRepository,
	tickers TickerSource,
	emitter EventEmitter,
	log zerolog.Logger,
) *FeedImporter {
	if parser == nil {
		parser = gofeed.NewParser()
	}
	return &FeedImporter{
		urls:    urls,
		parser:  parser,
		breaker: breaker,
		repo:    repo,
		tickers: tickers,
		emitter: emitter,
		status:  domain.StatusReady,
		log:     log.With().Str("service", "feed_importer").Logger(),
	}
}

// Enabled reports whether any feed is configured
func (f *FeedImporter) Enabled() bool {
	return len(f.urls) > 0
}

// Refresh fetches every feed and merges new items. A failing feed does not stop the others;
// an error is returned only when every feed failed.
func (f *FeedImporter) Refresh(ctx context.Context) (RefreshResult, error) {
	result := RefreshResult{Sources: len(f.urls)}
	if !f.Enabled() {
		return result, nil
	}

	f.setStatus(domain.StatusLoading, "")
	held := f.tickers.Tickers()

	var fetched []domain.NewsItem
	var lastErr error
	for _, feedURL := range f.urls {
		items, err := f.fetch(ctx, feedURL, held)
		if err != nil {
			result.Failed++
			lastErr = err
			f.log.Warn().Err(err).Str("url", feedURL).Msg("Failed to fetch feed")
			continue
		}
		fetched = append(fetched, items...)
	}

	result.Fetched = len(fetched)
	result.Added = f.repo.Merge(fetched)

	if result.Failed == result.Sources {
		f.setStatus(domain.StatusError, lastErr.Error())
		return result, fmt.Errorf("failed to refresh news: %w", lastErr)
	}

	f.mu.Lock()
	f.status = domain.StatusReady
	f.lastRefresh = time.Now()
	f.lastErr = ""
	f.mu.Unlock()

	if f.emitter != nil {
		f.emitter.EmitTyped("intelligence", &events.NewsRefreshedData{
			Items:   result.Added,
			Sources: result.Sources,
			Failed:  result.Failed,
		})
	}

	f.log.Info().
		Int("sources", result.Sources).
		Int("failed", result.Failed).
		Int("added", result.Added).
		Msg("News refreshed")
	return result, nil
}

// Status returns the state of the last import run
func (f *FeedImporter) Status() ImportStatus {
	f.mu.RLock()
	defer f.mu.RUnlock()

	st := ImportStatus{
		Status:    f.status,
		Feeds:     len(f.urls),
		LastError: f.lastErr,
	}
	if f.breaker != nil {
		st.Breaker = f.breaker.State()
	}
	if !f.lastRefresh.IsZero() {
		t := f.lastRefresh
		st.LastRefresh = &t
	}
	return st
}

func (f *FeedImporter) setStatus(status domain.Status, errMsg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
	f.lastErr = errMsg
}

func (f *FeedImporter) fetch(ctx context.Context, feedURL string, held []string) ([]domain.NewsItem, error) {
	parse := func() (interface{}, error) {
		return f.parser.ParseURLWithContext(feedURL, ctx)
	}

	var raw interface{}
	var err error
	if f.breaker != nil {
		raw, err = f.breaker.Execute(parse)
	} else {
		raw, err = parse()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed %s: %w", feedURL, err)
	}

	feed, ok := raw.(*gofeed.Feed)
	if !ok || feed == nil {
		return nil, fmt.Errorf("failed to parse feed %s: empty result", feedURL)
	}
	return convertFeed(feed, feedURL, held), nil
}

func convertFeed(feed *gofeed.Feed, feedURL string, held []string) []domain.NewsItem {
	source := strings.TrimSpace(feed.Title)
	if source == "" {
		source = hostOf(feedURL)
	}

	items := make([]domain.NewsItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		if it == nil || strings.TrimSpace(it.Title) == "" {
			continue
		}

		summary := cleanHTML(it.Description)
		if summary == "" {
			summary = cleanHTML(it.Content)
		}

		item := domain.NewsItem{
			ID:             itemID(it),
			Title:          strings.TrimSpace(it.Title),
			Summary:        summary,
			Source:         source,
			URL:            it.Link,
			PublishedAt:    publishedAt(it),
			RelatedTickers: MatchTickers(it.Title+" "+summary, held),
			Sentiment:      domain.SentimentNeutral,
		}
		if len(item.RelatedTickers) > 0 {
			item.Category = domain.CategoryAssetImpact
		} else {
			item.Category = domain.CategoryMarketUpdate
		}
		items = append(items, item)
	}
	return items
}

// MatchTickers returns the tickers that appear as whole words in text, in held order
func MatchTickers(text string, held []string) []string {
	matched := make([]string, 0)
	for _, ticker := range held {
		if ticker == "" {
			continue
		}
		pattern := `(^|[^A-Za-z0-9])` + regexp.QuoteMeta(ticker) + `([^A-Za-z0-9]|$)`
		if regexp.MustCompile(pattern).MatchString(text) {
			matched = append(matched, ticker)
		}
	}
	return matched
}

func itemID(it *gofeed.Item) string {
	key := it.GUID
	if key == "" {
		key = it.Link
	}
	if key == "" {
		key = it.Title
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String()
}

func publishedAt(it *gofeed.Item) time.Time {
	if it.PublishedParsed != nil {
		return *it.PublishedParsed
	}
	if it.UpdatedParsed != nil {
		return *it.UpdatedParsed
	}
	return time.Now().UTC()
}

func hostOf(feedURL string) string {
	u, err := url.Parse(feedURL)
	if err != nil || u.Host == "" {
		return feedURL
	}
	return u.Host
}

// cleanHTML strips markup from a feed description
func cleanHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<body>" + s + "</body>"))
	if err != nil {
		return s
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
