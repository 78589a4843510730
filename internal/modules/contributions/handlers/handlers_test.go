package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aristath/folio/internal/domain"
	"github.com/aristath/folio/internal/modules/contributions"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *chi.Mux {
	t.Helper()
	svc, err := contributions.NewService(contributions.Plan{
		Allocations: []domain.ContributionAllocation{
			{Ticker: "CASH", Percentage: 60},
			{Ticker: "MSFT", Percentage: 40},
		},
		MonthlyGoal:     700,
		CurrentProgress: 350,
	}, zerolog.Nop())
	require.NoError(t, err)

	router := chi.NewRouter()
	NewHandler(svc, zerolog.Nop()).RegisterRoutes(router)
	return router
}

func TestHandleGetPlan(t *testing.T) {
	rec := httptest.NewRecorder()
	setupRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contributions/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		ProgressPercent float64                   `json:"progress_percent"`
		GoalSplit       []contributions.SplitLine `json:"goal_split"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, 50.0, body.ProgressPercent)
	require.Len(t, body.GoalSplit, 2)
	assert.Equal(t, 420.0, body.GoalSplit[0].Amount)
}

func TestHandleSplit(t *testing.T) {
	router := setupRouter(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid", `{"amount":1000}`, http.StatusOK},
		{"negative", `{"amount":-5}`, http.StatusBadRequest},
		{"malformed", `amount=5`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contributions/split", strings.NewReader(tt.body)))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestNewService_RejectsInvalidPlan(t *testing.T) {
	_, err := contributions.NewService(contributions.Plan{
		Allocations: []domain.ContributionAllocation{{Ticker: "CASH", Percentage: 90}},
	}, zerolog.Nop())
	assert.Error(t, err)
}
