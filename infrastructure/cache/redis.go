package cache

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/domain"
)

const (
	DefaultDialTimeout      = time.Second
	DefaultOperationTimeout = 500 * time.Millisecond
)

// RedisClient é o subconjunto do cliente go-redis usado pelo cache
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// RedisOptions configura a conexão com o Redis
type RedisOptions struct {
	URL              string
	KeyPrefix        string
	DialTimeout      time.Duration
	OperationTimeout time.Duration
}

// RedisCache guarda as visões serializadas no Redis com SET ... EX ttl
type RedisCache struct {
	client           RedisClient
	keyPrefix        string
	operationTimeout time.Duration
}

// NewRedisCache cria o cliente a partir da URL (redis://host:port/db).
// Não abre conexão: use Ping para validar o backend.
func NewRedisCache(opts RedisOptions) (*RedisCache, error) {
	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, errors.Wrap(err, "URL do Redis inválida")
	}

	if opts.DialTimeout <= 0 {
		opts.DialTimeout = DefaultDialTimeout
	}
	if opts.OperationTimeout <= 0 {
		opts.OperationTimeout = DefaultOperationTimeout
	}

	redisOpts.DialTimeout = opts.DialTimeout
	redisOpts.ReadTimeout = opts.OperationTimeout
	redisOpts.WriteTimeout = opts.OperationTimeout

	return NewRedisCacheWithClient(redis.NewClient(redisOpts), opts.KeyPrefix, opts.OperationTimeout), nil
}

// NewRedisCacheWithClient usa um cliente já criado
func NewRedisCacheWithClient(client RedisClient, keyPrefix string, operationTimeout time.Duration) *RedisCache {
	if operationTimeout <= 0 {
		operationTimeout = DefaultOperationTimeout
	}

	return &RedisCache{
		client:           client,
		keyPrefix:        keyPrefix,
		operationTimeout: operationTimeout,
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) Result {
	ctx, cancel := context.WithTimeout(ctx, c.operationTimeout)
	defer cancel()

	data, err := c.client.Get(ctx, PrefixedKey(c.keyPrefix, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return miss()
	}
	if err != nil {
		return unavailable(errors.Wrap(err, "falha ao ler do Redis"))
	}

	view, err := Decode(data)
	if err != nil {
		return unavailable(err)
	}

	return hit(view)
}

func (c *RedisCache) Put(ctx context.Context, key string, view domain.FilteredView, ttl time.Duration) error {
	data, err := Encode(view)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, c.operationTimeout)
	defer cancel()

	if err := c.client.Set(ctx, PrefixedKey(c.keyPrefix, key), data, ttlOrDefault(ttl)).Err(); err != nil {
		return errors.Wrap(err, "falha ao gravar no Redis")
	}

	return nil
}

func (c *RedisCache) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.operationTimeout)
	defer cancel()

	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
