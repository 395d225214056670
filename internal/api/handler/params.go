package handler

import (
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/domain"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/pkg/apiErrors"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultPageSize = 100
	maxPageSize     = 1000
)

var errInvalidNumber = errors.New("valor numérico inválido")

// parseFilterSpec lê start_date, end_date, category e region da query string.
// Datas ausentes caem no período completo do dataset.
func parseFilterSpec(r *http.Request, defaults domain.FilterSpec) (domain.FilterSpec, error) {
	query := r.URL.Query()

	start := query.Get("start_date")
	if start == "" {
		start = defaults.StartDate.UTC().Format(time.RFC3339Nano)
	}

	end := query.Get("end_date")
	if end == "" {
		end = defaults.EndDate.UTC().Format(time.RFC3339Nano)
	}

	return domain.NewFilterSpec(start, end, query.Get("category"), query.Get("region"))
}

// parsePositiveInt lê um inteiro positivo da query; ausente retorna fallback
func parsePositiveInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, errors.Wrapf(errInvalidNumber, "%s=%q", name, raw)
	}

	return value, nil
}

type pagination struct {
	Page     int
	PageSize int
}

func parsePagination(r *http.Request) (pagination, error) {
	page, err := parsePositiveInt(r, "page", 1)
	if err != nil {
		return pagination{}, err
	}

	pageSize, err := parsePositiveInt(r, "page_size", defaultPageSize)
	if err != nil {
		return pagination{}, err
	}

	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return pagination{Page: page, PageSize: pageSize}, nil
}

// bounds retorna o intervalo [from, to) da página dentro de total registros
func (p pagination) bounds(total int) (from, to int) {
	// compara antes de multiplicar para não estourar int com páginas enormes
	if p.PageSize <= 0 || p.Page-1 >= (total+p.PageSize-1)/p.PageSize {
		return total, total
	}

	from = (p.Page - 1) * p.PageSize
	to = from + p.PageSize
	if to > total {
		to = total
	}

	return from, to
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("erro ao codificar resposta")
	}
}

func writeFilterError(w http.ResponseWriter, err error) {
	apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, "Filtro inválido", map[string]any{
		"error": err.Error(),
	})
}

func writeParamError(w http.ResponseWriter, err error) {
	apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro inválido", map[string]any{
		"error": err.Error(),
	})
}
