package cache

import (
	"context"
	"time"

	"github.com/heritage-archive/content-service/internal/domain"
	"github.com/heritage-archive/content-service/internal/domain/repository"
)

// noopCache - кеш, который ничего не хранит (CACHE_ENABLED=false)
type noopCache struct{}

// NewNoopCacheRepository возвращает кеш без хранения: каждый Get - промах
func NewNoopCacheRepository() repository.CacheRepository {
	return noopCache{}
}

func (noopCache) Get(context.Context, string) ([]byte, error) { return nil, nil }

func (noopCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (noopCache) Delete(context.Context, ...string) error { return nil }

func (noopCache) Version(context.Context, string) (int64, error) { return 0, nil }

func (noopCache) BumpVersion(context.Context, string) (int64, error) { return 0, nil }

func (noopCache) GetStats(context.Context) (*domain.Statistics, error) { return nil, nil }

func (noopCache) SetStats(context.Context, *domain.Statistics, time.Duration) error { return nil }
