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

// CollectionUseCase - операции над коллекциями (ключ - collection_id)
type CollectionUseCase struct {
	repo      repository.CollectionRepository
	cacheRepo repository.CacheRepository
	events    *contentEvents
	logger    *zap.Logger
	listTTL   time.Duration
}

// NewCollectionUseCase создает новый экземпляр CollectionUseCase
func NewCollectionUseCase(
	repo repository.CollectionRepository,
	cacheRepo repository.CacheRepository,
	publisher repository.EventPublisher,
	logger *zap.Logger,
	listTTL time.Duration,
) *CollectionUseCase {
	return &CollectionUseCase{
		repo:      repo,
		cacheRepo: cacheRepo,
		events:    &contentEvents{cacheRepo: cacheRepo, publisher: publisher, logger: logger},
		logger:    logger,
		listTTL:   listTTL,
	}
}

func (uc *CollectionUseCase) List(ctx context.Context) ([]*domain.Collection, error) {
	collections, err := listCached(ctx, uc.cacheRepo, uc.logger, domain.KindCollections, uc.listTTL, uc.repo.List)
	if err != nil {
		uc.logger.Error("Failed to list collections", zap.Error(err))
		return nil, err
	}
	return collections, nil
}

func (uc *CollectionUseCase) Get(ctx context.Context, collectionID string) (*domain.Collection, error) {
	c, err := uc.repo.GetByID(ctx, collectionID)
	if err != nil {
		return nil, uc.fail("get", collectionID, err)
	}
	return c, nil
}

func (uc *CollectionUseCase) Create(ctx context.Context, req *dto.CollectionRequest) (*domain.Collection, error) {
	c := req.ToDomain()
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, uc.fail("create", c.CollectionID, err)
	}

	uc.logger.Info("Collection created", zap.String("collection_id", c.CollectionID))
	uc.events.changed(ctx, domain.KindCollections, c.CollectionID, domain.ActionCreated)
	return c, nil
}

func (uc *CollectionUseCase) Replace(ctx context.Context, collectionID string, req *dto.CollectionRequest) (*domain.Collection, error) {
	updated, err := uc.repo.Replace(ctx, collectionID, req.ToDomain())
	if err != nil {
		return nil, uc.fail("replace", collectionID, err)
	}

	uc.logger.Info("Collection replaced", zap.String("collection_id", collectionID))
	uc.events.changed(ctx, domain.KindCollections, updated.CollectionID, domain.ActionReplaced)
	return updated, nil
}

func (uc *CollectionUseCase) Delete(ctx context.Context, collectionID string) error {
	if err := uc.repo.Delete(ctx, collectionID); err != nil {
		return uc.fail("delete", collectionID, err)
	}

	uc.logger.Info("Collection deleted", zap.String("collection_id", collectionID))
	uc.events.changed(ctx, domain.KindCollections, collectionID, domain.ActionDeleted)
	return nil
}

func (uc *CollectionUseCase) fail(op, collectionID string, err error) error {
	mapped := storeError(err, apperrors.ErrCollectionNotFound, "collection_id")
	if mapped == err {
		uc.logger.Error("Collection operation failed",
			zap.String("op", op),
			zap.String("collection_id", collectionID),
			zap.Error(err))
	}
	return mapped
}
