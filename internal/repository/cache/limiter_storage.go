package cache

import (
	"context"
	"time"

	"github.com/campus-api/internal/domain/repository"
)

const (
	limiterKeyPrefix = "ratelimit:"
	storageTimeout   = 2 * time.Second
)

// LimiterStorage реализует fiber.Storage поверх кеша, чтобы лимит был общим для всех реплик
type LimiterStorage struct {
	cache  repository.CacheRepository
	prefix string
}

func NewLimiterStorage(cache repository.CacheRepository) *LimiterStorage {
	return &LimiterStorage{
		cache:  cache,
		prefix: limiterKeyPrefix,
	}
}

func (s *LimiterStorage) Get(key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()
	return s.cache.Get(ctx, s.prefix+key)
}

func (s *LimiterStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()
	return s.cache.Set(ctx, s.prefix+key, val, exp)
}

func (s *LimiterStorage) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()
	return s.cache.Delete(ctx, s.prefix+key)
}

func (s *LimiterStorage) Reset() error {
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()
	return s.cache.DeleteByPrefix(ctx, s.prefix)
}

// Close - соединением владеет Redis
func (s *LimiterStorage) Close() error {
	return nil
}
