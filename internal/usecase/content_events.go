package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/heritage-archive/content-service/internal/domain"
	"github.com/heritage-archive/content-service/internal/domain/repository"
	apperrors "github.com/heritage-archive/content-service/internal/pkg/errors"
	"go.uber.org/zap"
)

// contentEvents - побочные эффекты успешной записи: сброс кеша и событие в стрим.
// Сбои логируются и не влияют на результат запроса.
type contentEvents struct {
	cacheRepo repository.CacheRepository
	publisher repository.EventPublisher
	logger    *zap.Logger
}

func (e *contentEvents) changed(ctx context.Context, kind domain.RecordKind, key string, action domain.ContentAction) {
	if _, err := e.cacheRepo.BumpVersion(ctx, domain.ListVersionKey(kind)); err != nil {
		e.logger.Warn("Failed to invalidate list cache",
			zap.String("kind", string(kind)),
			zap.Error(err))
	}
	if err := e.cacheRepo.Delete(ctx, domain.StatsCacheKey); err != nil {
		e.logger.Warn("Failed to invalidate stats cache",
			zap.String("kind", string(kind)),
			zap.Error(err))
	}

	event := domain.NewContentChangedEvent(kind, key, action)
	if err := e.publisher.PublishToStream(ctx, domain.StreamContentChanged, event); err != nil {
		e.logger.Warn("Failed to publish content event",
			zap.String("kind", string(kind)),
			zap.String("key", key),
			zap.String("action", string(action)),
			zap.Error(err))
	}
}

// listCached читает полный список из кеша текущего поколения, при промахе - из хранилища
// с записью в кеш. Поколение читается до загрузки: если запись произошла во время
// загрузки, результат ляжет под уже устаревший ключ.
func listCached[T any](
	ctx context.Context,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	kind domain.RecordKind,
	ttl time.Duration,
	load func(context.Context) ([]T, error),
) ([]T, error) {
	version, err := cacheRepo.Version(ctx, domain.ListVersionKey(kind))
	if err != nil {
		logger.Warn("Failed to read list cache version, bypassing cache",
			zap.String("kind", string(kind)), zap.Error(err))
		return load(ctx)
	}
	key := domain.ListCacheKey(kind, version)

	cached, err := cacheRepo.Get(ctx, key)
	if err != nil {
		logger.Warn("Failed to get list from cache", zap.String("key", key), zap.Error(err))
	}
	if cached != nil {
		var items []T
		if err := json.Unmarshal(cached, &items); err == nil && items != nil {
			logger.Debug("List fetched from cache", zap.String("key", key))
			return items, nil
		}
		logger.Warn("Discarding unreadable cached list", zap.String("key", key))
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(items); err != nil {
		logger.Warn("Failed to marshal list for cache", zap.String("key", key), zap.Error(err))
	} else if err := cacheRepo.Set(ctx, key, data, ttl); err != nil {
		logger.Warn("Failed to cache list", zap.String("key", key), zap.Error(err))
	}

	return items, nil
}

// storeError переводит ошибки хранилища в ошибки API; прочие возвращаются как есть (500)
func storeError(err error, notFound *apperrors.AppError, keyField string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return notFound
	case errors.Is(err, domain.ErrDuplicateKey):
		return apperrors.ErrDuplicateKey.WithDetails(map[string]interface{}{"field": keyField})
	default:
		return err
	}
}
