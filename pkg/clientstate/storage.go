package clientstate

import (
	"context"
	"errors"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned by Storage.Get when the key holds no value.
var ErrNotFound = errors.New("clientstate: key not found")

// Storage is the durable key-value slot behind the session store and the
// per-feature state containers. Implementations must tolerate repeated
// deletes of absent keys.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// MemoryStorage keeps state for the lifetime of the process.
type MemoryStorage struct {
	cache *cache.Cache
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		cache: cache.New(cache.NoExpiration, 10*time.Minute),
	}
}

func (s *MemoryStorage) Get(ctx context.Context, key string) ([]byte, error) {
	if x, found := s.cache.Get(key); found {
		return x.([]byte), nil
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) Set(ctx context.Context, key string, value []byte) error {
	buf := make([]byte, len(value))
	copy(buf, value)
	s.cache.Set(key, buf, cache.NoExpiration)
	return nil
}

func (s *MemoryStorage) Delete(ctx context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}

// RedisStorage persists state across processes, used when the SDK runs
// behind a long-lived service rather than a single CLI invocation.
type RedisStorage struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStorage(client *redis.Client, ttl time.Duration) *RedisStorage {
	return &RedisStorage{client: client, ttl: ttl}
}

func (s *RedisStorage) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	return val, err
}

func (s *RedisStorage) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, key, value, s.ttl).Err()
}

func (s *RedisStorage) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
