package cache

import (
	"context"
	"time"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/domain"
)

// NoopCache desativa o cache: toda consulta é um Miss
type NoopCache struct{}

func NewNoopCache() NoopCache {
	return NoopCache{}
}

func (NoopCache) Get(context.Context, string) Result {
	return miss()
}

func (NoopCache) Put(context.Context, string, domain.FilteredView, time.Duration) error {
	return nil
}

func (NoopCache) Ping(context.Context) error {
	return nil
}

func (NoopCache) Close() error {
	return nil
}
