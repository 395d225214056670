package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/infrastructure/cache"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/api/handler"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/api/handler/router"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/config"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/scheduler"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/usecases/authenticating"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/usecases/insighting"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
	cache      cache.Cache
}

// New monta as rotas e a cadeia de middlewares. cacheBackend e warmupService podem ser nil.
func New(
	config *config.Config,
	insightService insighting.Insighter,
	authenticator authenticating.Authenticator,
	cacheBackend cache.Cache,
	warmupService *scheduler.CacheWarmupService,
) (*Server, error) {
	cronServices := handler.CronJobServices{}
	if warmupService != nil {
		cronServices.CacheWarmupService = warmupService
	}

	var pinger handler.Pinger
	if cacheBackend != nil {
		pinger = cacheBackend
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(pinger)...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Analytics(insightService)...),
		router.WithRoutes(handler.Sales(insightService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins...),
		middleware.AuthMiddleware(authenticator),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
		cache: cacheBackend,
	}

	return srv, nil
}

// Handler expõe a cadeia completa, usada nos testes
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

// Shutdown encerra o servidor HTTP e fecha a conexão com o cache
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	logrus.Info("Servidor HTTP desligado com sucesso")

	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar o cache")
		}
	}

	return nil
}
