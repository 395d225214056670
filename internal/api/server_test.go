package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/infrastructure/cache"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/config"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/domain"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/scheduler"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/usecases/authenticating"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/usecases/insighting"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func testStore() *domain.SalesStore {
	return domain.NewSalesStore([]domain.SalesRecord{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Value: 10, Quantity: 2, Category: "A", Region: "N", Product: "P1"},
		{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Value: 20, Quantity: 1, Category: "B", Region: "S", Product: "P2"},
		{Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Value: 5, Quantity: 4, Category: "A", Region: "N", Product: "P1"},
	})
}

func newTestServer(t *testing.T, cfg *config.Config) (*Server, *cache.MemoryCache) {
	t.Helper()

	memory := cache.NewMemoryCache(cache.DefaultMaxEntries)
	service := insighting.NewService(cfg, testStore()).WithCache(memory, time.Hour)
	warmup := scheduler.NewCacheWarmupService(service, cfg)

	srv, err := New(cfg, service, authenticating.NewService(cfg), memory, warmup)
	require.NoError(t, err)

	return srv, memory
}

func TestServer_DashboardWithoutAuth(t *testing.T) {
	srv, memory := newTestServer(t, &config.Config{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard?category=A", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))

	var dashboard domain.Dashboard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dashboard))
	assert.Equal(t, 2, dashboard.RecordCount)
	assert.InDelta(t, 40.0, dashboard.KPIs.TotalRevenue, 1e-9)
	assert.Equal(t, 1, memory.Len())
}

func TestServer_Authentication(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("senha-forte"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{Auth: config.Auth{
		Secret:            "segredo",
		AdminEmail:        "admin@dashboard.local",
		AdminPasswordHash: string(hash),
		TokenTTL:          time.Hour,
	}}
	srv, _ := newTestServer(t, cfg)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/analytics/kpis", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/login",
		strings.NewReader(`{"email":"admin@dashboard.local","password":"senha-forte"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	req := httptest.NewRequest(http.MethodGet, "/v1/analytics/kpis", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var kpis domain.KPIs
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &kpis))
	assert.InDelta(t, 60.0, kpis.TotalRevenue, 1e-9)
	assert.Equal(t, 7, kpis.TotalQuantity)
	assert.InDelta(t, 60.0/7.0, kpis.AverageTicket, 1e-9)
}

func TestServer_Healthcheck(t *testing.T) {
	srv, _ := newTestServer(t, &config.Config{Auth: config.Auth{Secret: "segredo"}})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cache":"ok"`)
}

func TestServer_CronStatus(t *testing.T) {
	srv, _ := newTestServer(t, &config.Config{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cache-warmup"`)
}
