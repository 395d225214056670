package insighting

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_insighter.go -package=mocks

import (
	"context"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/domain"
)

// Insighter define as consultas analíticas servidas pela API
type Insighter interface {
	// FilteredView retorna os registros que atendem ao filtro, usando o cache quando disponível
	FilteredView(ctx context.Context, spec domain.FilterSpec) domain.FilteredView

	GetKPIs(ctx context.Context, spec domain.FilterSpec) domain.KPIs
	GetSalesEvolution(ctx context.Context, spec domain.FilterSpec) []domain.MonthlyRevenue
	GetSalesByCategory(ctx context.Context, spec domain.FilterSpec) []domain.CategoryRevenue
	GetTopProducts(ctx context.Context, spec domain.FilterSpec, n int) []domain.ProductRevenue
	GetRegionHeatmap(ctx context.Context, spec domain.FilterSpec) domain.RegionCategoryPivot
	GetTrendAnalysis(ctx context.Context, spec domain.FilterSpec) domain.TrendAnalysis
	GetSalesForecast(ctx context.Context, spec domain.FilterSpec, horizon int) domain.SalesForecast

	// GetDashboard calcula todas as agregações de uma vez sobre a mesma visão
	GetDashboard(ctx context.Context, spec domain.FilterSpec, opts DashboardOptions) (*domain.Dashboard, error)

	// GetFilterOptions lista categorias, regiões e o período disponível
	GetFilterOptions() domain.FilterOptions

	// DefaultSpec é o filtro inicial do dashboard: todo o período, todas as categorias e regiões
	DefaultSpec() domain.FilterSpec
}
