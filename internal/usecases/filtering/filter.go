package filtering

import (
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/domain"
)

// Apply seleciona os registros do store que atendem ao filtro, preservando a ordem de carga.
// Não altera o store; um resultado vazio é uma visão válida.
func Apply(store *domain.SalesStore, spec domain.FilterSpec) domain.FilteredView {
	view := domain.FilteredView{Spec: spec, Records: []domain.SalesRecord{}}
	if store == nil {
		return view
	}

	for _, record := range store.Records() {
		if !spec.Contains(record.Date) {
			continue
		}
		if !spec.MatchesCategory(record.Category) || !spec.MatchesRegion(record.Region) {
			continue
		}

		view.Records = append(view.Records, record)
	}

	return view
}

// Options monta os valores disponíveis para os seletores de categoria, região e período
func Options(store *domain.SalesStore) domain.FilterOptions {
	options := domain.FilterOptions{
		Categories: []string{},
		Regions:    []string{},
	}
	if store == nil {
		return options
	}

	options.Categories = store.Categories()
	options.Regions = store.Regions()

	if minDate, maxDate, ok := store.DateRange(); ok {
		options.StartDate = &minDate
		options.EndDate = &maxDate
	}

	return options
}

// FullRange retorna o filtro que cobre todo o dataset, com categoria e região "all"
func FullRange(store *domain.SalesStore) domain.FilterSpec {
	spec := domain.FilterSpec{Category: domain.AllValues, Region: domain.AllValues}
	if store == nil {
		return spec
	}

	if minDate, maxDate, ok := store.DateRange(); ok {
		spec.StartDate = minDate
		spec.EndDate = maxDate
	}

	return spec
}
