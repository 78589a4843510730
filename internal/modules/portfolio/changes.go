package portfolio

import (
	"github.com/aristath/folio/internal/events"
	"github.com/aristath/folio/internal/modules/metrics"
)

// EventEmitter publishes typed events
type EventEmitter interface {
	EmitTyped(module string, data events.EventData)
}

// Subscriber registers bus handlers
type Subscriber interface {
	Subscribe(eventType events.EventType, handler events.Handler) func()
}

// WatchHoldings emits PORTFOLIO_CHANGED after every holdings mutation.
// The returned function stops watching.
func (s *Service) WatchHoldings(bus Subscriber, emitter EventEmitter) func() {
	handler := func(event *events.Event) {
		assets := s.holdings.List()
		summary := Summarize(metrics.Derive(assets))
		emitter.EmitTyped("portfolio", &events.PortfolioChangedData{
			AssetCount: len(assets),
			TotalValue: summary.TotalValue,
		})
		s.log.Debug().
			Str("trigger", string(event.Type)).
			Int("asset_count", len(assets)).
			Msg("Portfolio changed")
	}

	unsubs := []func(){
		bus.Subscribe(events.AssetCreated, handler),
		bus.Subscribe(events.AssetUpdated, handler),
		bus.Subscribe(events.AssetDeleted, handler),
	}
	return func() {
		for _, unsub := range unsubs {
			unsub()
		}
	}
}
