package insighting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/infrastructure/cache"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/config"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/domain"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/usecases/analyzing"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/usecases/filtering"
)

// DashboardOptions controla os parâmetros das agregações parametrizáveis do dashboard
type DashboardOptions struct {
	TopN    int
	Horizon int
}

// Service liga o store de vendas, o cache de visões e o motor de agregação.
// É criado uma única vez na inicialização e compartilhado entre as requisições.
type Service struct {
	cfg      *config.Config
	store    *domain.SalesStore
	cache    cache.Cache
	cacheTTL time.Duration
	useCache bool
}

// NewService cria uma nova instância do serviço de insights, inicialmente sem cache
func NewService(cfg *config.Config, store *domain.SalesStore) *Service {
	return &Service{
		cfg:      cfg,
		store:    store,
		cache:    cache.NewNoopCache(),
		useCache: false,
	}
}

// WithCache habilita o uso de cache de visões filtradas
func (s *Service) WithCache(c cache.Cache, ttl time.Duration) *Service {
	if c == nil {
		return s
	}

	s.cache = c
	s.cacheTTL = ttl
	s.useCache = true
	return s
}

// FilteredView busca a visão no cache; em caso de miss ou falha do cache
// recalcula a partir do store e tenta gravar o resultado
func (s *Service) FilteredView(ctx context.Context, spec domain.FilterSpec) domain.FilteredView {
	if !s.useCache {
		return filtering.Apply(s.store, spec)
	}

	key := cache.KeyOf(spec)
	logger := logrus.WithField("cache_key", key)

	result := s.cache.Get(ctx, key)
	switch result.Status {
	case cache.Hit:
		logger.Debug("Visão filtrada encontrada no cache")
		return result.View
	case cache.Unavailable:
		logger.WithError(result.Err).Warn("Cache indisponível, calculando visão a partir do dataset")
	default:
		logger.Debug("Visão filtrada não encontrada no cache")
	}

	view := filtering.Apply(s.store, spec)

	if err := s.cache.Put(ctx, key, view, s.cacheTTL); err != nil {
		logger.WithError(err).Warn("Erro ao gravar visão filtrada no cache")
	}

	return view
}

// RefreshView recalcula a visão e sobrescreve a entrada do cache, renovando o TTL
func (s *Service) RefreshView(ctx context.Context, spec domain.FilterSpec) error {
	view := filtering.Apply(s.store, spec)
	if !s.useCache {
		return nil
	}

	return s.cache.Put(ctx, cache.KeyOf(spec), view, s.cacheTTL)
}

func (s *Service) GetKPIs(ctx context.Context, spec domain.FilterSpec) domain.KPIs {
	return analyzing.KPIs(s.FilteredView(ctx, spec))
}

func (s *Service) GetSalesEvolution(ctx context.Context, spec domain.FilterSpec) []domain.MonthlyRevenue {
	return analyzing.SalesEvolution(s.FilteredView(ctx, spec))
}

func (s *Service) GetSalesByCategory(ctx context.Context, spec domain.FilterSpec) []domain.CategoryRevenue {
	return analyzing.SalesByCategory(s.FilteredView(ctx, spec))
}

func (s *Service) GetTopProducts(ctx context.Context, spec domain.FilterSpec, n int) []domain.ProductRevenue {
	return analyzing.TopProducts(s.FilteredView(ctx, spec), s.topN(n))
}

// GetRegionHeatmap monta a tabela região x categoria com as regiões e categorias da visão
func (s *Service) GetRegionHeatmap(ctx context.Context, spec domain.FilterSpec) domain.RegionCategoryPivot {
	return analyzing.RegionCategoryPivot(s.FilteredView(ctx, spec), nil, nil)
}

func (s *Service) GetTrendAnalysis(ctx context.Context, spec domain.FilterSpec) domain.TrendAnalysis {
	return analyzing.TrendAnalysis(s.FilteredView(ctx, spec))
}

func (s *Service) GetSalesForecast(ctx context.Context, spec domain.FilterSpec, horizon int) domain.SalesForecast {
	return analyzing.SalesForecast(s.FilteredView(ctx, spec), s.horizon(horizon))
}

// GetDashboard resolve a visão uma única vez e calcula as agregações em paralelo
func (s *Service) GetDashboard(ctx context.Context, spec domain.FilterSpec, opts DashboardOptions) (*domain.Dashboard, error) {
	view := s.FilteredView(ctx, spec)

	dashboard := &domain.Dashboard{
		Filters:     spec,
		RecordCount: view.Len(),
	}

	g, gctx := errgroup.WithContext(ctx)
	run := func(compute func()) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			compute()
			return nil
		})
	}

	// Cada goroutine escreve em um campo diferente do dashboard
	run(func() { dashboard.KPIs = analyzing.KPIs(view) })
	run(func() { dashboard.SalesEvolution = analyzing.SalesEvolution(view) })
	run(func() { dashboard.SalesByCategory = analyzing.SalesByCategory(view) })
	run(func() { dashboard.TopProducts = analyzing.TopProducts(view, s.topN(opts.TopN)) })
	run(func() { dashboard.RegionHeatmap = analyzing.RegionCategoryPivot(view, nil, nil) })
	run(func() { dashboard.Trend = analyzing.TrendAnalysis(view) })
	run(func() { dashboard.Forecast = analyzing.SalesForecast(view, s.horizon(opts.Horizon)) })

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return dashboard, nil
}

func (s *Service) GetFilterOptions() domain.FilterOptions {
	return filtering.Options(s.store)
}

func (s *Service) DefaultSpec() domain.FilterSpec {
	return filtering.FullRange(s.store)
}

// topN usa o valor da requisição, depois o configurado e por último o padrão do motor
func (s *Service) topN(n int) int {
	if n > 0 {
		return n
	}
	if s.cfg != nil && s.cfg.Analytics.TopN > 0 {
		return s.cfg.Analytics.TopN
	}

	return analyzing.DefaultTopN
}

func (s *Service) horizon(h int) int {
	if h > 0 {
		return h
	}
	if s.cfg != nil && s.cfg.Analytics.ForecastHorizon > 0 {
		return s.cfg.Analytics.ForecastHorizon
	}

	return analyzing.DefaultHorizon
}
