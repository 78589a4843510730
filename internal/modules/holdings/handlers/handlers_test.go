package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aristath/folio/internal/domain"
	"github.com/aristath/folio/internal/modules/holdings"
	"github.com/aristath/folio/internal/modules/portfolio"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (*chi.Mux, *holdings.Store) {
	t.Helper()
	store := holdings.NewStore(nil, zerolog.Nop())
	handler := NewHandler(store, portfolio.NewService(store, 0, zerolog.Nop()), zerolog.Nop())

	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router, store
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const nvdaBody = `{"ticker":"nvda","name":"NVIDIA","quantity":25,"avg_price":285,"current_price":495.22,"sector":"Tech","geography":"US","risk_level":8}`

func TestCreateAndGetAsset(t *testing.T) {
	router, _ := setupRouter(t)

	rec := do(router, http.MethodPost, "/assets/", nvdaBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.Asset
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "NVDA", created.Ticker)

	rec = do(router, http.MethodGet, "/assets/"+created.ID+"/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched domain.Asset
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&fetched))
	assert.Equal(t, created, fetched)
}

func TestCreateAsset_ValidationError(t *testing.T) {
	router, store := setupRouter(t)

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"negative quantity", `{"ticker":"X","quantity":-1,"avg_price":1,"sector":"Tech","geography":"US","risk_level":5}`, "quantity"},
		{"risk too high", `{"ticker":"X","quantity":1,"avg_price":1,"sector":"Tech","geography":"US","risk_level":11}`, "riskLevel"},
		{"unknown sector", `{"ticker":"X","quantity":1,"avg_price":1,"sector":"Energy","geography":"US","risk_level":5}`, "sector"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(router, http.MethodPost, "/assets/", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.wantField, body["field"])
		})
	}
	assert.Equal(t, 0, store.Len())
}

func TestCreateAsset_OverflowingValueKeepsPortfolioReadable(t *testing.T) {
	router, store := setupRouter(t)
	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/assets/", nvdaBody).Code)

	rec := do(router, http.MethodPost, "/assets/",
		`{"ticker":"X","quantity":1e200,"avg_price":1,"current_price":1e200,"sector":"Tech","geography":"US","risk_level":5}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "quantity", body["field"])
	assert.Equal(t, 1, store.Len())

	rec = do(router, http.MethodGet, "/assets/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "NVDA")
}

func TestCreateAsset_InvalidBody(t *testing.T) {
	router, _ := setupRouter(t)
	rec := do(router, http.MethodPost, "/assets/", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateAsset(t *testing.T) {
	router, store := setupRouter(t)
	asset, err := store.Create(domain.AssetInput{Ticker: "MSFT", Quantity: 12, AvgPrice: 285, CurrentPrice: 378.91, Sector: domain.SectorTech, Geography: domain.GeographyUS, RiskLevel: 4})
	require.NoError(t, err)

	rec := do(router, http.MethodPatch, "/assets/"+asset.ID+"/", `{"quantity":20}`)
	require.Equal(t, http.StatusOK, rec.Code)

	updated, err := store.Get(asset.ID)
	require.NoError(t, err)
	assert.Equal(t, 20.0, updated.Quantity)
	assert.Equal(t, 285.0, updated.AvgPrice)

	rec = do(router, http.MethodPatch, "/assets/"+asset.ID+"/", `{"risk_level":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(router, http.MethodPatch, "/assets/nonexistent-id/", `{"quantity":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteAsset(t *testing.T) {
	router, store := setupRouter(t)
	asset, err := store.Create(domain.AssetInput{Ticker: "SPY", Quantity: 1, AvgPrice: 400, CurrentPrice: 450, Sector: domain.SectorETF, Geography: domain.GeographyUS, RiskLevel: 3})
	require.NoError(t, err)

	rec := do(router, http.MethodDelete, "/assets/"+asset.ID+"/", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(router, http.MethodDelete, "/assets/"+asset.ID+"/", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(router, http.MethodDelete, "/assets/nonexistent-id/", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListAssets_Sorted(t *testing.T) {
	router, store := setupRouter(t)
	for _, in := range []domain.AssetInput{
		{Ticker: "A", Quantity: 10, AvgPrice: 100, CurrentPrice: 110, Sector: domain.SectorTech, Geography: domain.GeographyUS, RiskLevel: 5},
		{Ticker: "B", Quantity: 10, AvgPrice: 50, CurrentPrice: 40, Sector: domain.SectorFinancial, Geography: domain.GeographyUS, RiskLevel: 5},
	} {
		_, err := store.Create(in)
		require.NoError(t, err)
	}

	rec := do(router, http.MethodGet, "/assets/?sort=totalValue&dir=asc", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Assets []domain.DerivedAsset `json:"assets"`
		Count  int                   `json:"count"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, 2, body.Count)
	assert.Equal(t, "B", body.Assets[0].Ticker)
	assert.InDelta(t, 26.667, body.Assets[0].PortfolioPercent, 0.001)

	rec = do(router, http.MethodGet, "/assets/?sort=color", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
