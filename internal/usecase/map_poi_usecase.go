package usecase

import (
	"context"
	"time"

	"github.com/heritage-archive/content-service/internal/domain"
	"github.com/heritage-archive/content-service/internal/domain/repository"
	apperrors "github.com/heritage-archive/content-service/internal/pkg/errors"
	"github.com/heritage-archive/content-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// MapPOIUseCase - операции над точками карты (ключ - id)
type MapPOIUseCase struct {
	repo      repository.MapPOIRepository
	cacheRepo repository.CacheRepository
	events    *contentEvents
	logger    *zap.Logger
	listTTL   time.Duration
}

// NewMapPOIUseCase создает новый экземпляр MapPOIUseCase
func NewMapPOIUseCase(
	repo repository.MapPOIRepository,
	cacheRepo repository.CacheRepository,
	publisher repository.EventPublisher,
	logger *zap.Logger,
	listTTL time.Duration,
) *MapPOIUseCase {
	return &MapPOIUseCase{
		repo:      repo,
		cacheRepo: cacheRepo,
		events:    &contentEvents{cacheRepo: cacheRepo, publisher: publisher, logger: logger},
		logger:    logger,
		listTTL:   listTTL,
	}
}

// List возвращает все точки в порядке хранения
func (uc *MapPOIUseCase) List(ctx context.Context) ([]*domain.MapPOI, error) {
	pois, err := listCached(ctx, uc.cacheRepo, uc.logger, domain.KindMap, uc.listTTL, uc.repo.List)
	if err != nil {
		uc.logger.Error("Failed to list map POIs", zap.Error(err))
		return nil, err
	}
	return pois, nil
}

func (uc *MapPOIUseCase) Get(ctx context.Context, id string) (*domain.MapPOI, error) {
	poi, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, uc.fail("get", id, err)
	}
	return poi, nil
}

func (uc *MapPOIUseCase) Create(ctx context.Context, req *dto.MapPOIRequest) (*domain.MapPOI, error) {
	poi := req.ToDomain()
	if err := uc.repo.Create(ctx, poi); err != nil {
		return nil, uc.fail("create", poi.ID, err)
	}

	uc.logger.Info("Map POI created", zap.String("id", poi.ID))
	uc.events.changed(ctx, domain.KindMap, poi.ID, domain.ActionCreated)
	return poi, nil
}

// Replace полностью перезаписывает точку с ключом id
func (uc *MapPOIUseCase) Replace(ctx context.Context, id string, req *dto.MapPOIRequest) (*domain.MapPOI, error) {
	updated, err := uc.repo.Replace(ctx, id, req.ToDomain())
	if err != nil {
		return nil, uc.fail("replace", id, err)
	}

	uc.logger.Info("Map POI replaced", zap.String("id", id))
	uc.events.changed(ctx, domain.KindMap, updated.ID, domain.ActionReplaced)
	return updated, nil
}

func (uc *MapPOIUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return uc.fail("delete", id, err)
	}

	uc.logger.Info("Map POI deleted", zap.String("id", id))
	uc.events.changed(ctx, domain.KindMap, id, domain.ActionDeleted)
	return nil
}

func (uc *MapPOIUseCase) fail(op, id string, err error) error {
	mapped := storeError(err, apperrors.ErrMapPOINotFound, "id")
	if mapped == err {
		uc.logger.Error("Map POI operation failed", zap.String("op", op), zap.String("id", id), zap.Error(err))
	}
	return mapped
}
