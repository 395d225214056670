package cache

import (
	"time"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/domain"
)

func scenarioView() domain.FilteredView {
	spec := domain.FilterSpec{
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 2, 1, 23, 59, 59, 999999999, time.UTC),
		Category:  domain.AllValues,
		Region:    domain.AllValues,
	}

	return domain.FilteredView{
		Spec: spec,
		Records: domain.Derive([]domain.SalesRecord{
			{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Value: 10, Quantity: 2, Category: "A", Region: "N", Product: "P1"},
			{Date: time.Date(2024, 1, 2, 13, 7, 42, 123456789, time.UTC), Value: 19.99, Quantity: 1, Category: "B", Region: "S", Product: "P2"},
			{Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Value: 0.1 + 0.2, Quantity: 4, Category: "A", Region: "N", Product: "P1"},
		}),
	}
}
