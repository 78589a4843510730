package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aristath/folio/internal/domain"
	"github.com/aristath/folio/internal/modules/performance"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type allVisible struct{}

func (allVisible) Widgets() domain.WidgetVisibility {
	return domain.WidgetVisibility{Volatility: true, Beta: true, RSI: true}
}

func TestRoutes(t *testing.T) {
	svc := performance.NewService(
		performance.GenerateSeries(performance.DefaultStart, 365, 42),
		performance.KPIInput{MaxDrawdownLimit: 20, ProjectedAnnualDividend: 2840},
		performance.Snapshots{Beta: []domain.TickerMetric{{Ticker: "SPY", Value: 1}}},
		allVisible{},
		zerolog.Nop(),
	)
	router := chi.NewRouter()
	NewHandler(svc, zerolog.Nop()).RegisterRoutes(router)

	t.Run("history", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/performance/history", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Points []performance.Point `json:"points"`
			Count  int                 `json:"count"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, 53, body.Count)
		assert.Equal(t, "2025-02-01", body.Points[0].Date)
	})

	t.Run("kpis", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/performance/kpis", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			KPIs performance.KPIs `json:"kpis"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, 20.0, body.KPIs.MaxDrawdownLimit)
		assert.Equal(t, 2840.0, body.KPIs.ProjectedAnnualDividend)
	})

	t.Run("widgets", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/performance/widgets", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var widgets performance.Widgets
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&widgets))
		assert.True(t, widgets.Visibility.RSI)
		assert.NotEmpty(t, widgets.Volatility)
		assert.Len(t, widgets.Beta, 1)
	})
}
