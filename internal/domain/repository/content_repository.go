package repository

import (
	"context"

	"github.com/heritage-archive/content-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MapPOIRepository определяет методы для работы с точками карты.
// Адресация по логическому ключу id.
type MapPOIRepository interface {
	List(ctx context.Context) ([]*domain.MapPOI, error)
	GetByID(ctx context.Context, id string) (*domain.MapPOI, error)
	Create(ctx context.Context, poi *domain.MapPOI) error
	Replace(ctx context.Context, id string, poi *domain.MapPOI) (*domain.MapPOI, error)
	Delete(ctx context.Context, id string) error
}

// TimelineRepository определяет методы для работы с элементами таймлайна.
// Адресация по идентичности хранилища, список отсортирован по id.
type TimelineRepository interface {
	List(ctx context.Context) ([]*domain.TimelineItem, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TimelineItem, error)
	Create(ctx context.Context, item *domain.TimelineItem) error
	Replace(ctx context.Context, id primitive.ObjectID, item *domain.TimelineItem) (*domain.TimelineItem, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// CollectionRepository определяет методы для работы с коллекциями.
// Адресация по логическому ключу collection_id.
type CollectionRepository interface {
	List(ctx context.Context) ([]*domain.Collection, error)
	GetByID(ctx context.Context, collectionID string) (*domain.Collection, error)
	Create(ctx context.Context, collection *domain.Collection) error
	Replace(ctx context.Context, collectionID string, collection *domain.Collection) (*domain.Collection, error)
	Delete(ctx context.Context, collectionID string) error
}
