package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/heritage-archive/content-service/internal/domain"
	"github.com/heritage-archive/content-service/internal/domain/repository"
	apperrors "github.com/heritage-archive/content-service/internal/pkg/errors"
	"github.com/heritage-archive/content-service/internal/usecase/dto"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// TimelineUseCase - операции над элементами таймлайна.
// Адресация по идентичности хранилища (_id), а не по порядковому id.
type TimelineUseCase struct {
	repo      repository.TimelineRepository
	cacheRepo repository.CacheRepository
	events    *contentEvents
	logger    *zap.Logger
	listTTL   time.Duration
}

// NewTimelineUseCase создает новый экземпляр TimelineUseCase
func NewTimelineUseCase(
	repo repository.TimelineRepository,
	cacheRepo repository.CacheRepository,
	publisher repository.EventPublisher,
	logger *zap.Logger,
	listTTL time.Duration,
) *TimelineUseCase {
	return &TimelineUseCase{
		repo:      repo,
		cacheRepo: cacheRepo,
		events:    &contentEvents{cacheRepo: cacheRepo, publisher: publisher, logger: logger},
		logger:    logger,
		listTTL:   listTTL,
	}
}

// List возвращает элементы по возрастанию id
func (uc *TimelineUseCase) List(ctx context.Context) ([]*domain.TimelineItem, error) {
	items, err := listCached(ctx, uc.cacheRepo, uc.logger, domain.KindTimeline, uc.listTTL, uc.repo.List)
	if err != nil {
		uc.logger.Error("Failed to list timeline items", zap.Error(err))
		return nil, err
	}
	return items, nil
}

// Get ищет элемент по hex-представлению _id; некорректный идентификатор - не найдено
func (uc *TimelineUseCase) Get(ctx context.Context, id string) (*domain.TimelineItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrTimelineItemNotFound
	}

	item, err := uc.repo.GetByID(ctx, oid)
	if err != nil {
		return nil, uc.fail("get", id, err)
	}
	return item, nil
}

func (uc *TimelineUseCase) Create(ctx context.Context, req *dto.TimelineItemRequest) (*domain.TimelineItem, error) {
	item := req.ToDomain()
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, uc.fail("create", strconv.Itoa(item.ID), err)
	}

	uc.logger.Info("Timeline item created",
		zap.String("_id", item.ObjectID.Hex()),
		zap.Int("id", item.ID))
	uc.events.changed(ctx, domain.KindTimeline, item.ObjectID.Hex(), domain.ActionCreated)
	return item, nil
}

func (uc *TimelineUseCase) Replace(ctx context.Context, id string, req *dto.TimelineItemRequest) (*domain.TimelineItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrTimelineItemNotFound
	}

	updated, err := uc.repo.Replace(ctx, oid, req.ToDomain())
	if err != nil {
		return nil, uc.fail("replace", id, err)
	}

	uc.logger.Info("Timeline item replaced", zap.String("_id", id))
	uc.events.changed(ctx, domain.KindTimeline, id, domain.ActionReplaced)
	return updated, nil
}

func (uc *TimelineUseCase) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrTimelineItemNotFound
	}

	if err := uc.repo.Delete(ctx, oid); err != nil {
		return uc.fail("delete", id, err)
	}

	uc.logger.Info("Timeline item deleted", zap.String("_id", id))
	uc.events.changed(ctx, domain.KindTimeline, id, domain.ActionDeleted)
	return nil
}

func (uc *TimelineUseCase) fail(op, id string, err error) error {
	mapped := storeError(err, apperrors.ErrTimelineItemNotFound, "id")
	if mapped == err {
		uc.logger.Error("Timeline operation failed", zap.String("op", op), zap.String("id", id), zap.Error(err))
	}
	return mapped
}
