package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/api/handler/router"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/domain"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/usecases/authenticating"
	authmocks "github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/usecases/authenticating/mocks"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/usecases/insighting"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/usecases/insighting/mocks"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/pkg/apiErrors"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/pkg/middleware"
)

func defaultSpec() domain.FilterSpec {
	return domain.FilterSpec{
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 31, 23, 59, 59, 999999999, time.UTC),
		Category:  domain.AllValues,
		Region:    domain.AllValues,
	}
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func withAdmin(r *http.Request) *http.Request {
	claims := &domain.Claims{UserEmail: "admin@dashboard.local", UserRoleID: domain.RoleAdmin}
	return r.WithContext(context.WithValue(r.Context(), middleware.ContextKeyUser, claims))
}

func TestParseFilterSpec(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    domain.FilterSpec
		wantErr bool
	}{
		{
			name:  "sem parâmetros usa o período completo",
			query: "",
			want:  defaultSpec(),
		},
		{
			name:  "data final sem hora cobre o dia inteiro",
			query: "start_date=2024-01-10&end_date=2024-01-15&category=Eletrônicos",
			want: domain.FilterSpec{
				StartDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2024, 1, 15, 23, 59, 59, 999999999, time.UTC),
				Category:  "Eletrônicos",
				Region:    domain.AllValues,
			},
		},
		{
			name:  "região vazia vira all",
			query: "region=",
			want:  defaultSpec(),
		},
		{
			name:    "data inválida",
			query:   "start_date=31/01/2024",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/analytics/kpis?"+tt.query, nil)

			spec, err := parseFilterSpec(req, defaultSpec())

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidFilter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, spec)
		})
	}
}

func TestParsePagination(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/sales?page=3&page_size=5000", nil)
	page, err := parsePagination(req)
	require.NoError(t, err)
	assert.Equal(t, pagination{Page: 3, PageSize: maxPageSize}, page)

	req = httptest.NewRequest(http.MethodGet, "/v1/sales?page=0", nil)
	_, err = parsePagination(req)
	assert.ErrorIs(t, err, errInvalidNumber)

	from, to := pagination{Page: 2, PageSize: 2}.bounds(5)
	assert.Equal(t, 2, from)
	assert.Equal(t, 4, to)

	from, to = pagination{Page: 9, PageSize: 2}.bounds(5)
	assert.Equal(t, 5, from)
	assert.Equal(t, 5, to)

	from, to = pagination{Page: 3, PageSize: 2}.bounds(5)
	assert.Equal(t, 4, from)
	assert.Equal(t, 5, to)

	from, to = pagination{Page: 1 << 62, PageSize: 4}.bounds(3)
	assert.Equal(t, 3, from)
	assert.Equal(t, 3, to)

	from, to = pagination{Page: 1, PageSize: 10}.bounds(0)
	assert.Equal(t, 0, from)
	assert.Equal(t, 0, to)
}

func TestGetKPIs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockInsighter(ctrl)
	service.EXPECT().DefaultSpec().Return(defaultSpec())
	service.EXPECT().GetKPIs(gomock.Any(), defaultSpec()).Return(domain.KPIs{TotalRevenue: 60, TotalQuantity: 3, AverageTicket: 20})

	rec := httptest.NewRecorder()
	GetKPIs(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/analytics/kpis", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"total_revenue":60,"total_quantity":3,"average_ticket":20}`, rec.Body.String())
}

func TestAnalytics_InvalidFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockInsighter(ctrl)
	service.EXPECT().DefaultSpec().Return(defaultSpec()).AnyTimes()

	handlers := map[string]http.Handler{
		"dashboard":         GetDashboard(service),
		"sales-evolution":   GetSalesEvolution(service),
		"sales-by-category": GetSalesByCategory(service),
		"region-heatmap":    GetRegionHeatmap(service),
		"trend":             GetTrendAnalysis(service),
		"sales":             ListSales(service),
		"export":            ExportSales(service),
	}

	for name, h := range handlers {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?end_date=ontem", nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, apiErrors.ErrInvalidFilter, decodeAPIError(t, rec).Code)
		})
	}
}

func TestGetTopProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockInsighter(ctrl)
	service.EXPECT().DefaultSpec().Return(defaultSpec()).AnyTimes()

	t.Run("n informado", func(t *testing.T) {
		service.EXPECT().GetTopProducts(gomock.Any(), defaultSpec(), 5).Return([]domain.ProductRevenue{{Product: "P1", Revenue: 10}})

		rec := httptest.NewRecorder()
		GetTopProducts(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/analytics/top-products?n=5", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"product":"P1","revenue":10}]`, rec.Body.String())
	})

	t.Run("n ausente delega o padrão ao serviço", func(t *testing.T) {
		service.EXPECT().GetTopProducts(gomock.Any(), defaultSpec(), 0).Return([]domain.ProductRevenue{})

		rec := httptest.NewRecorder()
		GetTopProducts(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/analytics/top-products", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("n inválido", func(t *testing.T) {
		rec := httptest.NewRecorder()
		GetTopProducts(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/analytics/top-products?n=-1", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
	})
}

func TestGetSalesForecast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockInsighter(ctrl)
	service.EXPECT().DefaultSpec().Return(defaultSpec()).AnyTimes()
	service.EXPECT().GetSalesForecast(gomock.Any(), defaultSpec(), 7).Return(domain.SalesForecast{
		DailySales: []domain.DailySales{{DayOffset: 0, Revenue: 10}},
	})

	rec := httptest.NewRecorder()
	GetSalesForecast(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/analytics/forecast?horizon=7", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"daily_sales":[{"day_offset":0,"revenue":10}],"trend_line":null,"future_offsets":null,"future_sales":null}`, rec.Body.String())

	rec = httptest.NewRecorder()
	GetSalesForecast(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/analytics/forecast?horizon=abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockInsighter(ctrl)
	service.EXPECT().DefaultSpec().Return(defaultSpec()).AnyTimes()

	t.Run("sucesso", func(t *testing.T) {
		service.EXPECT().
			GetDashboard(gomock.Any(), defaultSpec(), insighting.DashboardOptions{TopN: 3, Horizon: 10}).
			Return(&domain.Dashboard{Filters: defaultSpec(), RecordCount: 42}, nil)

		rec := httptest.NewRecorder()
		GetDashboard(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard?n=3&horizon=10", nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var dashboard domain.Dashboard
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dashboard))
		assert.Equal(t, 42, dashboard.RecordCount)
	})

	t.Run("erro no cálculo", func(t *testing.T) {
		service.EXPECT().
			GetDashboard(gomock.Any(), defaultSpec(), insighting.DashboardOptions{}).
			Return(nil, context.Canceled)

		rec := httptest.NewRecorder()
		GetDashboard(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrInternalServer, decodeAPIError(t, rec).Code)
	})
}

func salesView(n int) domain.FilteredView {
	records := make([]domain.SalesRecord, n)
	for i := range records {
		records[i] = domain.SalesRecord{
			Date:     time.Date(2024, 1, 1+i, 0, 0, 0, 0, time.UTC),
			Value:    10,
			Quantity: 1,
			Category: "A",
			Region:   "N",
			Product:  "P1",
			Revenue:  10,
			Month:    "2024-01",
			Year:     2024,
		}
	}

	return domain.FilteredView{Spec: defaultSpec(), Records: records}
}

func TestListSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockInsighter(ctrl)
	service.EXPECT().DefaultSpec().Return(defaultSpec()).AnyTimes()
	service.EXPECT().FilteredView(gomock.Any(), defaultSpec()).Return(salesView(5)).AnyTimes()

	tests := []struct {
		name       string
		query      string
		wantDays   []int
		wantTotal  int
		wantPages  int
		wantStatus int
	}{
		{name: "segunda página", query: "page=2&page_size=2", wantDays: []int{3, 4}, wantTotal: 5, wantPages: 3, wantStatus: http.StatusOK},
		{name: "última página incompleta", query: "page=3&page_size=2", wantDays: []int{5}, wantTotal: 5, wantPages: 3, wantStatus: http.StatusOK},
		{name: "página além do fim", query: "page=10&page_size=2", wantDays: []int{}, wantTotal: 5, wantPages: 3, wantStatus: http.StatusOK},
		{name: "página muito grande", query: "page=4611686018427387904&page_size=4", wantDays: []int{}, wantTotal: 5, wantPages: 2, wantStatus: http.StatusOK},
		{name: "padrão", query: "", wantDays: []int{1, 2, 3, 4, 5}, wantTotal: 5, wantPages: 1, wantStatus: http.StatusOK},
		{name: "page_size inválido", query: "page_size=x", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			ListSales(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sales?"+tt.query, nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var page SalesPage
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
			assert.Equal(t, tt.wantTotal, page.Total)
			assert.Equal(t, tt.wantPages, page.TotalPages)

			days := make([]int, 0, len(page.Records))
			for _, record := range page.Records {
				days = append(days, record.Date.Day())
			}
			assert.Equal(t, tt.wantDays, days)
		})
	}
}

func TestListSales_EmptyView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockInsighter(ctrl)
	service.EXPECT().DefaultSpec().Return(defaultSpec())
	service.EXPECT().FilteredView(gomock.Any(), gomock.Any()).Return(domain.FilteredView{Spec: defaultSpec()})

	rec := httptest.NewRecorder()
	ListSales(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sales", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"records":[]`)
	assert.Contains(t, rec.Body.String(), `"total_pages":0`)
}

func TestExportSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockInsighter(ctrl)
	service.EXPECT().DefaultSpec().Return(defaultSpec())
	service.EXPECT().FilteredView(gomock.Any(), gomock.Any()).Return(salesView(2))

	rec := httptest.NewRecorder()
	ExportSales(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sales/export?category=A", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Regexp(t, `^attachment; filename="dados_exportados_[0-9a-z]{12}\.csv"$`, rec.Header().Get("Content-Disposition"))

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "data,valor,quantidade,categoria,regiao,produto,receita,mes,ano", lines[0])
	assert.Equal(t, "2024-01-01 00:00:00,10,1,A,N,P1,10,2024-01,2024", lines[1])
}

func TestGetFilterOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	service := mocks.NewMockInsighter(ctrl)
	service.EXPECT().GetFilterOptions().Return(domain.FilterOptions{
		Categories: []string{"A", "B"},
		Regions:    []string{"N"},
		StartDate:  &start,
		EndDate:    &start,
	})

	rec := httptest.NewRecorder()
	GetFilterOptions(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/filters", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"categories":["A","B"],"regions":["N"],"start_date":"2024-01-01T00:00:00Z","end_date":"2024-01-01T00:00:00Z"}`, rec.Body.String())
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		body       string
		setup      func(m *authmocks.MockAuthenticator)
		wantStatus int
		wantCode   string
	}{
		{
			name: "sucesso",
			body: `{"email":"admin@dashboard.local","password":"senha"}`,
			setup: func(m *authmocks.MockAuthenticator) {
				m.EXPECT().LoginUser("admin@dashboard.local", "senha").Return("token-jwt", nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "credenciais inválidas",
			body: `{"email":"admin@dashboard.local","password":"errada"}`,
			setup: func(m *authmocks.MockAuthenticator) {
				m.EXPECT().LoginUser(gomock.Any(), gomock.Any()).Return("", authenticating.NewAuthError(
					authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Usuário ou senha incorretos"))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidCredentials,
		},
		{
			name: "erro sem código",
			body: `{"email":"a","password":"b"}`,
			setup: func(m *authmocks.MockAuthenticator) {
				m.EXPECT().LoginUser(gomock.Any(), gomock.Any()).Return("", errors.New("falha inesperada"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrInternalServer,
		},
		{
			name:       "corpo inválido",
			body:       `{`,
			setup:      func(m *authmocks.MockAuthenticator) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := authmocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			rec := httptest.NewRecorder()
			Login(auth).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
				return
			}
			assert.JSONEq(t, `{"token":"token-jwt"}`, rec.Body.String())
		})
	}
}

type fakeJob struct {
	started bool
	status  map[string]any
}

func (f *fakeJob) TriggerManualSync() bool {
	if f.started {
		return false
	}
	f.started = true
	return true
}

func (f *fakeJob) GetStatus() map[string]any {
	return f.status
}

func TestCronJobs(t *testing.T) {
	job := &fakeJob{status: map[string]any{"sync_enabled": true}}
	rt := router.New(router.WithRoutes(CronJobs(CronJobServices{CacheWarmupService: job})...))

	run := func(cronType string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, withAdmin(httptest.NewRequest(http.MethodPost, "/v1/cron/"+cronType+"/run", nil)))
		return rec
	}

	rec := run("cache-warmup")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.JSONEq(t, `{"message":"Cron job iniciada com sucesso","type":"cache-warmup"}`, rec.Body.String())

	rec = run("cache-warmup")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, apiErrors.ErrConflict, decodeAPIError(t, rec).Code)

	rec = run("meta")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, withAdmin(httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"cache-warmup":{"sync_enabled":true}}`, rec.Body.String())
}

func TestCronJobs_RequiresAdmin(t *testing.T) {
	rt := router.New(router.WithRoutes(CronJobs(CronJobServices{CacheWarmupService: &fakeJob{}})...))

	viewer := &domain.Claims{UserEmail: "viewer@dashboard.local", UserRoleID: domain.RoleViewer}
	req := httptest.NewRequest(http.MethodPost, "/v1/cron/cache-warmup/run", nil)
	req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, viewer))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCronJobs_ServiceUnavailable(t *testing.T) {
	rt := router.New(router.WithRoutes(CronJobs(CronJobServices{})...))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, withAdmin(httptest.NewRequest(http.MethodPost, "/v1/cron/cache-warmup/run", nil)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, withAdmin(httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)))
	assert.JSONEq(t, `{}`, rec.Body.String())
}

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error {
	return f.err
}

func TestHealthcheckHandler(t *testing.T) {
	tests := []struct {
		name      string
		pinger    Pinger
		wantCache string
	}{
		{name: "sem cache", pinger: nil, wantCache: "disabled"},
		{name: "cache ok", pinger: fakePinger{}, wantCache: "ok"},
		{name: "cache fora do ar", pinger: fakePinger{err: errors.New("connection refused")}, wantCache: "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HealthcheckHandler(tt.pinger).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

			assert.Equal(t, http.StatusOK, rec.Code)

			var response HealthcheckResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, "ok", response.Status)
			assert.Equal(t, tt.wantCache, response.Cache)
		})
	}
}
