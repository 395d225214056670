package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/infrastructure/cache"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/infrastructure/database/postgres"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/infrastructure/integrator/httpsource"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/infrastructure/repository"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/infrastructure/storage/s3source"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/api"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/config"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/scheduler"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/usecases/authenticating"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/usecases/ingesting"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/usecases/insighting"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// O dataset é carregado uma única vez; qualquer erro aqui impede a subida da API
	source, closeSource := dataSource(ctx, cfg)
	store, err := ingesting.Load(ctx, source)
	closeSource()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o dataset de vendas")
	}

	cacheBackend := newCache(ctx, cfg)

	insightService := insighting.NewService(cfg, store)
	if cacheBackend != nil {
		insightService = insightService.WithCache(cacheBackend, cfg.Cache.TTL)
	}

	authenticator := authenticating.NewService(cfg)
	if !authenticator.Enabled() {
		logrus.Warn("AUTH_SECRET não configurado: API aberta sem autenticação")
	}

	var warmupService *scheduler.CacheWarmupService
	if cacheBackend != nil {
		warmupService = scheduler.NewCacheWarmupService(insightService, cfg)
		if err := warmupService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador de aquecimento de cache")
		} else {
			logrus.Info("Agendador de aquecimento de cache iniciado com sucesso")
		}
	}

	server, err := api.New(cfg, insightService, authenticator, cacheBackend, warmupService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// dataSource escolhe a origem do dataset conforme DATA_SOURCE.
// A função devolvida libera recursos da fonte depois da carga.
func dataSource(ctx context.Context, cfg *config.Config) (ingesting.Source, func()) {
	switch cfg.Data.Source {
	case config.DataSourceS3:
		source, err := s3source.NewFromConfig(ctx, cfg.Data.S3Region, cfg.Data.S3Bucket, cfg.Data.S3Key)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao configurar a fonte S3")
		}
		return source, func() {}

	case config.DataSourceHTTP:
		source, err := httpsource.NewSource(cfg.Data.HTTPURL, cfg.Data.HTTPToken, cfg.Data.HTTPTimeout)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao configurar a fonte HTTP")
		}
		return source, func() {}

	case config.DataSourcePostgres:
		conn := pgconn(ctx, cfg.Database)
		return repository.NewSalesRepository(conn, cfg.Data.PostgresTable), func() {
			if err := conn.Close(); err != nil {
				logrus.WithError(err).Warn("Erro ao fechar conexão com PostgreSQL")
			}
		}

	default:
		return ingesting.NewFileSource(cfg.Data.CSVPath), func() {}
	}
}

// newCache cria o backend configurado. Sem Redis disponível a API segue com cache em memória.
func newCache(ctx context.Context, cfg *config.Config) cache.Cache {
	switch cfg.Cache.Backend {
	case config.CacheBackendNone:
		logrus.Info("Cache de visões desabilitado")
		return nil

	case config.CacheBackendMemory:
		logrus.WithField("max_entries", cfg.Cache.MemoryMaxEntries).Info("Usando cache em memória")
		return cache.NewMemoryCache(cfg.Cache.MemoryMaxEntries)

	default:
		redisCache, err := cache.NewRedisCache(cache.RedisOptions{
			URL:              cfg.Redis.URL,
			KeyPrefix:        cfg.Cache.KeyPrefix,
			DialTimeout:      cfg.Redis.DialTimeout,
			OperationTimeout: cfg.Redis.OperationTimeout,
		})
		if err == nil {
			err = redisCache.Ping(ctx)
			if err == nil {
				logrus.Info("Conexão com Redis estabelecida com sucesso")
				return redisCache
			}
			_ = redisCache.Close()
		}

		logrus.WithError(err).Warn("Redis indisponível, usando cache em memória")
		return cache.NewMemoryCache(cfg.Cache.MemoryMaxEntries)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
