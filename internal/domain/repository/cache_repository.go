package repository

import (
	"context"
	"time"

	"github.com/heritage-archive/content-service/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу; nil, nil при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значения из кеша
	Delete(ctx context.Context, keys ...string) error

	// Version возвращает значение счётчика поколений; 0 если счётчика ещё нет
	Version(ctx context.Context, key string) (int64, error)

	// BumpVersion атомарно увеличивает счётчик поколений и возвращает новое значение
	BumpVersion(ctx context.Context, key string) (int64, error)

	// GetStats получает статистику из кеша
	GetStats(ctx context.Context) (*domain.Statistics, error)

	// SetStats сохраняет статистику в кеше
	SetStats(ctx context.Context, stats *domain.Statistics, ttl time.Duration) error
}
