package handler

import (
	"fmt"
	"net/http"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/domain"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/usecases/exporting"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/usecases/insighting"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/pkg/log"
)

// SalesPage é uma página dos registros de uma visão filtrada
type SalesPage struct {
	Filters    domain.FilterSpec    `json:"filters"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	Total      int                  `json:"total"`
	TotalPages int                  `json:"total_pages"`
	Records    []domain.SalesRecord `json:"records"`
}

// ListSales retorna os registros da visão filtrada, paginados por page e page_size
func ListSales(service insighting.Insighter) http.Handler {
	return withFilterSpec(service, func(w http.ResponseWriter, r *http.Request, spec domain.FilterSpec) {
		page, err := parsePagination(r)
		if err != nil {
			writeParamError(w, err)
			return
		}

		view := service.FilteredView(r.Context(), spec)
		total := view.Len()
		from, to := page.bounds(total)

		records := view.Records[from:to]
		if records == nil {
			records = []domain.SalesRecord{}
		}

		writeJSON(w, r, http.StatusOK, SalesPage{
			Filters:    view.Spec,
			Page:       page.Page,
			PageSize:   page.PageSize,
			Total:      total,
			TotalPages: (total + page.PageSize - 1) / page.PageSize,
			Records:    records,
		})
	})
}

// ExportSales devolve a visão filtrada completa como anexo CSV
func ExportSales(service insighting.Insighter) http.Handler {
	return withFilterSpec(service, func(w http.ResponseWriter, r *http.Request, spec domain.FilterSpec) {
		logger := log.ForContext(r.Context())

		view := service.FilteredView(r.Context(), spec)
		fileName := exporting.FileName()

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))

		if err := exporting.WriteCSV(w, view); err != nil {
			// Cabeçalhos já enviados, resta registrar a falha
			logger.WithError(err).Error("export: erro ao escrever CSV")
			return
		}

		logger.WithFields(log.Fields{
			"file_name": fileName,
			"records":   view.Len(),
		}).Info("export: CSV gerado")
	})
}
