// Package intelligence provides the news feed and the portfolio intelligence report.
package intelligence

import (
	"sort"
	"strings"
	"sync"

	"github.com/aristath/folio/internal/domain"
	"github.com/rs/zerolog"
)

// Filter narrows a news listing. Zero values match everything.
type Filter struct {
	Category domain.NewsCategory
	Ticker   string
}

func (f Filter) matches(item domain.NewsItem) bool {
	if f.Category != "" && item.Category != f.Category {
		return false
	}
	if f.Ticker != "" && !item.HasTicker(f.Ticker) {
		return false
	}
	return true
}

// NewsRepository is an in-memory news store
type NewsRepository struct {
	items []domain.NewsItem
	mu    sync.RWMutex
	log   zerolog.Logger
}

// NewNewsRepository creates an empty news repository
func NewNewsRepository(log zerolog.Logger) *NewsRepository {
	return &NewsRepository{
		log: log.With().Str("repository", "news_inmemory").Logger(),
	}
}

// List returns the items matching f, newest first
func (r *NewsRepository) List(f Filter) []domain.NewsItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.NewsItem, 0, len(r.items))
	for _, item := range r.items {
		if f.matches(item) {
			result = append(result, item)
		}
	}
	sortNewestFirst(result)
	return result
}

// Replace swaps the whole collection
func (r *NewsRepository) Replace(items []domain.NewsItem) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append([]domain.NewsItem(nil), items...)
	r.log.Debug().Int("count", len(items)).Msg("Replaced news items")
}

// Merge adds items whose id and url are not already known and returns how many were added
func (r *NewsRepository) Merge(items []domain.NewsItem) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make(map[string]bool, len(r.items))
	urls := make(map[string]bool, len(r.items))
	for _, item := range r.items {
		ids[item.ID] = true
		if item.URL != "" {
			urls[item.URL] = true
		}
	}

	added := 0
	for _, item := range items {
		if ids[item.ID] || (item.URL != "" && urls[item.URL]) {
			continue
		}
		r.items = append(r.items, item)
		ids[item.ID] = true
		if item.URL != "" {
			urls[item.URL] = true
		}
		added++
	}

	r.log.Debug().Int("received", len(items)).Int("added", added).Msg("Merged news items")
	return added
}

// Len returns the number of stored items
func (r *NewsRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

func sortNewestFirst(items []domain.NewsItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})
}

// ParseCategory accepts a category name or its slug ("asset-impact"), case-insensitively
func ParseCategory(s string) (domain.NewsCategory, bool) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", " "))
	for _, c := range []domain.NewsCategory{
		domain.CategoryAssetImpact,
		domain.CategoryRegulationWatch,
		domain.CategoryMarketUpdate,
	} {
		if strings.ToLower(string(c)) == norm {
			return c, true
		}
	}
	return "", false
}
