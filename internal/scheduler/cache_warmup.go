package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/config"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/domain"
)

const (
	// MaxConcurrentWarmups limita quantas visões são recalculadas ao mesmo tempo
	MaxConcurrentWarmups = 4

	manualWarmupTimeout = 5 * time.Minute
)

// ViewWarmer é o que o aquecimento precisa do serviço de insights
type ViewWarmer interface {
	DefaultSpec() domain.FilterSpec
	GetFilterOptions() domain.FilterOptions
	RefreshView(ctx context.Context, spec domain.FilterSpec) error
}

// CacheWarmupConfig representa a configuração do agendador de aquecimento do cache
type CacheWarmupConfig struct {
	CronSchedule string
	Enabled      bool
}

// WarmupResult resume uma execução do aquecimento
type WarmupResult struct {
	Total  int `json:"total"`
	Warmed int `json:"warmed"`
	Failed int `json:"failed"`
}

// CacheWarmupService pré-calcula e grava no cache as visões dos filtros mais usados:
// o período completo e uma visão por categoria e por região
type CacheWarmupService struct {
	scheduler           *gocron.Scheduler
	config              CacheWarmupConfig
	warmer              ViewWarmer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          WarmupResult
}

// NewCacheWarmupService cria uma nova instância do serviço de aquecimento do cache
func NewCacheWarmupService(warmer ViewWarmer, appConfig *config.Config) *CacheWarmupService {
	warmupConfig := CacheWarmupConfig{
		CronSchedule: appConfig.CacheWarmup.CronSchedule,
		Enabled:      appConfig.CacheWarmup.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": warmupConfig.CronSchedule,
		"enabled":       warmupConfig.Enabled,
	}).Info("Configuração do aquecimento de cache carregada")

	return &CacheWarmupService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    warmupConfig,
		warmer:    warmer,
	}
}

// Start inicia o agendador
func (s *CacheWarmupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Aquecimento de cache desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de aquecimento de cache")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.WarmUp(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento de cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de aquecimento de cache")
		s.scheduler.Stop()
	}()

	return nil
}

// WarmUp recalcula todas as visões pré-definidas. Retorna ok falso quando já existe uma execução em andamento.
func (s *CacheWarmupService) WarmUp(ctx context.Context) (result WarmupResult, ok bool) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Aquecimento de cache já em andamento, ignorando")
		return WarmupResult{}, false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()
	specs := s.presetSpecs()
	result = s.refreshAll(ctx, specs)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastResult = result
	s.syncMutex.Unlock()

	entry := logrus.WithFields(logrus.Fields{
		"job":         "cache-warmup",
		"total":       result.Total,
		"warmed":      result.Warmed,
		"failed":      result.Failed,
		"duration_ms": time.Since(startTime).Milliseconds(),
	})
	if result.Failed > 0 {
		entry.Warn("Aquecimento de cache concluído com falhas")
	} else {
		entry.Info("Aquecimento de cache concluído")
	}

	return result, true
}

func (s *CacheWarmupService) refreshAll(ctx context.Context, specs []domain.FilterSpec) WarmupResult {
	result := WarmupResult{Total: len(specs)}

	semaphore := make(chan struct{}, MaxConcurrentWarmups)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, spec := range specs {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(spec domain.FilterSpec) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			err := s.warmer.RefreshView(ctx, spec)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				logrus.WithError(err).WithFields(logrus.Fields{
					"category": spec.Category,
					"region":   spec.Region,
				}).Warn("Falha ao aquecer visão no cache")
				return
			}
			result.Warmed++
		}(spec)
	}

	wg.Wait()

	return result
}

// presetSpecs monta os filtros pré-definidos: período completo sem filtro,
// uma visão por categoria e uma visão por região
func (s *CacheWarmupService) presetSpecs() []domain.FilterSpec {
	base := s.warmer.DefaultSpec()
	options := s.warmer.GetFilterOptions()

	specs := make([]domain.FilterSpec, 0, 1+len(options.Categories)+len(options.Regions))
	specs = append(specs, base)

	for _, category := range options.Categories {
		spec := base
		spec.Category = category
		specs = append(specs, spec)
	}

	for _, region := range options.Regions {
		spec := base
		spec.Region = region
		specs = append(specs, spec)
	}

	return specs
}

// TriggerManualSync inicia manualmente um aquecimento em segundo plano.
// Retorna falso quando já existe um em andamento.
func (s *CacheWarmupService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Aquecimento de cache já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando aquecimento manual de cache")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), manualWarmupTimeout)
		defer cancel()
		s.WarmUp(ctx)
	}()

	return true
}

// IsRunning informa se existe um aquecimento em andamento
func (s *CacheWarmupService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *CacheWarmupService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"sync_max_concurrent":    MaxConcurrentWarmups,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_result":       s.lastResult,
	}
}
