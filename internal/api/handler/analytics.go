package handler

import (
	"net/http"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/domain"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/usecases/insighting"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/pkg/apiErrors"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/pkg/log"
)

type filteredHandlerFunc func(w http.ResponseWriter, r *http.Request, spec domain.FilterSpec)

// withFilterSpec interpreta o filtro da query antes de chamar o handler
func withFilterSpec(service insighting.Insighter, next filteredHandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spec, err := parseFilterSpec(r, service.DefaultSpec())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("analytics: filtro inválido")
			writeFilterError(w, err)
			return
		}

		next(w, r, spec)
	})
}

// GetDashboard retorna todas as agregações do filtro em uma única resposta
func GetDashboard(service insighting.Insighter) http.Handler {
	return withFilterSpec(service, func(w http.ResponseWriter, r *http.Request, spec domain.FilterSpec) {
		logger := log.ForContext(r.Context())

		n, err := parsePositiveInt(r, "n", 0)
		if err != nil {
			writeParamError(w, err)
			return
		}

		horizon, err := parsePositiveInt(r, "horizon", 0)
		if err != nil {
			writeParamError(w, err)
			return
		}

		dashboard, err := service.GetDashboard(r.Context(), spec, insighting.DashboardOptions{TopN: n, Horizon: horizon})
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao calcular agregações")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular o dashboard", nil)
			return
		}

		logger.WithFields(log.Fields{
			"category":     spec.Category,
			"region":       spec.Region,
			"record_count": dashboard.RecordCount,
		}).Info("dashboard: agregações calculadas")

		writeJSON(w, r, http.StatusOK, dashboard)
	})
}

func GetKPIs(service insighting.Insighter) http.Handler {
	return withFilterSpec(service, func(w http.ResponseWriter, r *http.Request, spec domain.FilterSpec) {
		writeJSON(w, r, http.StatusOK, service.GetKPIs(r.Context(), spec))
	})
}

func GetSalesEvolution(service insighting.Insighter) http.Handler {
	return withFilterSpec(service, func(w http.ResponseWriter, r *http.Request, spec domain.FilterSpec) {
		writeJSON(w, r, http.StatusOK, service.GetSalesEvolution(r.Context(), spec))
	})
}

func GetSalesByCategory(service insighting.Insighter) http.Handler {
	return withFilterSpec(service, func(w http.ResponseWriter, r *http.Request, spec domain.FilterSpec) {
		writeJSON(w, r, http.StatusOK, service.GetSalesByCategory(r.Context(), spec))
	})
}

// GetTopProducts aceita o parâmetro n (quantidade de produtos)
func GetTopProducts(service insighting.Insighter) http.Handler {
	return withFilterSpec(service, func(w http.ResponseWriter, r *http.Request, spec domain.FilterSpec) {
		n, err := parsePositiveInt(r, "n", 0)
		if err != nil {
			writeParamError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, service.GetTopProducts(r.Context(), spec, n))
	})
}

func GetRegionHeatmap(service insighting.Insighter) http.Handler {
	return withFilterSpec(service, func(w http.ResponseWriter, r *http.Request, spec domain.FilterSpec) {
		writeJSON(w, r, http.StatusOK, service.GetRegionHeatmap(r.Context(), spec))
	})
}

func GetTrendAnalysis(service insighting.Insighter) http.Handler {
	return withFilterSpec(service, func(w http.ResponseWriter, r *http.Request, spec domain.FilterSpec) {
		writeJSON(w, r, http.StatusOK, service.GetTrendAnalysis(r.Context(), spec))
	})
}

// GetSalesForecast aceita o parâmetro horizon (dias projetados)
func GetSalesForecast(service insighting.Insighter) http.Handler {
	return withFilterSpec(service, func(w http.ResponseWriter, r *http.Request, spec domain.FilterSpec) {
		horizon, err := parsePositiveInt(r, "horizon", 0)
		if err != nil {
			writeParamError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, service.GetSalesForecast(r.Context(), spec, horizon))
	})
}

// GetFilterOptions lista categorias, regiões e o período disponível para os seletores
func GetFilterOptions(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.GetFilterOptions())
	})
}
