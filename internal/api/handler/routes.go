package handler

import (
	"net/http"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/api/handler/router"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/usecases/authenticating"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/usecases/insighting"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/pkg/middleware"
)

func Healthcheck(cache Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(cache),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Analytics(service insighting.Insighter) []router.Route {
	allRoles := []func(http.Handler) http.Handler{middleware.AllRoles()}

	return []router.Route{
		{
			Path:        "/v1/filters",
			Method:      http.MethodGet,
			Handler:     GetFilterOptions(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/analytics/kpis",
			Method:      http.MethodGet,
			Handler:     GetKPIs(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/analytics/sales-evolution",
			Method:      http.MethodGet,
			Handler:     GetSalesEvolution(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/analytics/sales-by-category",
			Method:      http.MethodGet,
			Handler:     GetSalesByCategory(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/analytics/top-products",
			Method:      http.MethodGet,
			Handler:     GetTopProducts(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/analytics/region-heatmap",
			Method:      http.MethodGet,
			Handler:     GetRegionHeatmap(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/analytics/trend",
			Method:      http.MethodGet,
			Handler:     GetTrendAnalysis(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/analytics/forecast",
			Method:      http.MethodGet,
			Handler:     GetSalesForecast(service),
			Middlewares: allRoles,
		},
	}
}

func Sales(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales",
			Method:      http.MethodGet,
			Handler:     ListSales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales/export",
			Method:      http.MethodGet,
			Handler:     ExportSales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
