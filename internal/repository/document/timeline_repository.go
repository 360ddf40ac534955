package document

import (
	"context"
	"fmt"

	"github.com/heritage-archive/content-service/internal/domain"
	"github.com/heritage-archive/content-service/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// timelineSortField - порядок выдачи таймлайна
const timelineSortField = "id"

type timelineRepository struct {
	coll repository.DocumentCollection
}

// NewTimelineRepository создает репозиторий элементов таймлайна
func NewTimelineRepository(store repository.DocumentStore) repository.TimelineRepository {
	return &timelineRepository{coll: store.Collection(domain.CollectionTimelineItems)}
}

// List возвращает элементы по возрастанию id
func (r *timelineRepository) List(ctx context.Context) ([]*domain.TimelineItem, error) {
	items := []*domain.TimelineItem{}
	if err := r.coll.Find(ctx, repository.FindOptions{SortBy: timelineSortField}, &items); err != nil {
		return nil, fmt.Errorf("list timeline items: %w", err)
	}
	return items, nil
}

func (r *timelineRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TimelineItem, error) {
	var item domain.TimelineItem
	if err := r.coll.FindOne(ctx, repository.ByObjectID(id), &item); err != nil {
		return nil, fmt.Errorf("get timeline item %s: %w", id.Hex(), err)
	}
	return &item, nil
}

func (r *timelineRepository) Create(ctx context.Context, item *domain.TimelineItem) error {
	item.ObjectID = primitive.NilObjectID
	oid, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return fmt.Errorf("create timeline item %d: %w", item.ID, err)
	}
	item.ObjectID = oid
	return nil
}

func (r *timelineRepository) Replace(ctx context.Context, id primitive.ObjectID, item *domain.TimelineItem) (*domain.TimelineItem, error) {
	item.ObjectID = primitive.NilObjectID

	var updated domain.TimelineItem
	if err := r.coll.FindOneAndReplace(ctx, repository.ByObjectID(id), item, &updated); err != nil {
		return nil, fmt.Errorf("replace timeline item %s: %w", id.Hex(), err)
	}
	return &updated, nil
}

func (r *timelineRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := r.coll.DeleteOne(ctx, repository.ByObjectID(id)); err != nil {
		return fmt.Errorf("delete timeline item %s: %w", id.Hex(), err)
	}
	return nil
}
