package cache

//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks

import (
	"context"
	"time"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/domain"
)

// DefaultTTL é o tempo de vida padrão de uma visão filtrada no cache
const DefaultTTL = time.Hour

// Cache guarda visões filtradas indexadas pela chave do filtro.
// Falhas do backend nunca são propagadas como erro em Get: viram um Result Unavailable.
type Cache interface {
	Get(ctx context.Context, key string) Result
	Put(ctx context.Context, key string, view domain.FilteredView, ttl time.Duration) error
	Ping(ctx context.Context) error
	Close() error
}

// Status indica o desfecho de uma consulta ao cache
type Status int

const (
	// Miss indica que a chave não está no cache (ou expirou)
	Miss Status = iota
	// Hit indica que a visão foi encontrada
	Hit
	// Unavailable indica que o backend falhou (conexão, timeout ou payload inválido)
	Unavailable
)

func (s Status) String() string {
	switch s {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	case Unavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Result é o retorno explícito de Get. View só é válido quando Status == Hit
// e Err só é preenchido quando Status == Unavailable.
type Result struct {
	Status Status
	View   domain.FilteredView
	Err    error
}

// IsHit informa se a visão foi encontrada
func (r Result) IsHit() bool {
	return r.Status == Hit
}

func hit(view domain.FilteredView) Result {
	return Result{Status: Hit, View: view}
}

func miss() Result {
	return Result{Status: Miss}
}

func unavailable(err error) Result {
	return Result{Status: Unavailable, Err: err}
}

func ttlOrDefault(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return DefaultTTL
	}

	return ttl
}
