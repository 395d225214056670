package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/domain"
)

// DefaultMaxEntries é a capacidade padrão do cache em memória
const DefaultMaxEntries = 256

// MemoryCache é um cache LRU em memória com TTL por entrada.
// Entradas expiradas são removidas na próxima consulta.
type MemoryCache struct {
	mu         sync.Mutex
	maxEntries int
	items      map[string]*list.Element
	lru        *list.List
	now        func() time.Time
}

type memoryItem struct {
	key       string
	view      domain.FilteredView
	expiresAt time.Time
}

// MemoryOption customiza o MemoryCache
type MemoryOption func(*MemoryCache)

// WithClock substitui o relógio usado para calcular expiração
func WithClock(now func() time.Time) MemoryOption {
	return func(c *MemoryCache) {
		c.now = now
	}
}

// NewMemoryCache cria o cache com a capacidade informada (<= 0 usa DefaultMaxEntries)
func NewMemoryCache(maxEntries int, opts ...MemoryOption) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	c := &MemoryCache{
		maxEntries: maxEntries,
		items:      make(map[string]*list.Element),
		lru:        list.New(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *MemoryCache) Get(_ context.Context, key string) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, exists := c.items[key]
	if !exists {
		return miss()
	}

	item := elem.Value.(*memoryItem)
	if !c.now().Before(item.expiresAt) {
		c.removeElement(elem)
		return miss()
	}

	c.lru.MoveToFront(elem)
	return hit(item.view)
}

func (c *MemoryCache) Put(_ context.Context, key string, view domain.FilteredView, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Cópia dos registros para que o chamador não altere a entrada
	stored := domain.FilteredView{
		Spec:    view.Spec,
		Records: append(make([]domain.SalesRecord, 0, len(view.Records)), view.Records...),
	}

	item := &memoryItem{
		key:       key,
		view:      stored,
		expiresAt: c.now().Add(ttlOrDefault(ttl)),
	}

	if elem, exists := c.items[key]; exists {
		elem.Value = item
		c.lru.MoveToFront(elem)
		return nil
	}

	c.items[key] = c.lru.PushFront(item)

	if c.lru.Len() > c.maxEntries {
		if oldest := c.lru.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}

	return nil
}

func (c *MemoryCache) Ping(context.Context) error {
	return nil
}

// Close descarta todas as entradas
func (c *MemoryCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.lru.Init()

	return nil
}

// Len retorna a quantidade de entradas, incluindo as expiradas ainda não removidas
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

func (c *MemoryCache) removeElement(elem *list.Element) {
	item := elem.Value.(*memoryItem)
	delete(c.items, item.key)
	c.lru.Remove(elem)
}
