package document

import (
	"context"
	"fmt"

	"github.com/heritage-archive/content-service/internal/domain"
	"github.com/heritage-archive/content-service/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mapPOIRepository struct {
	coll repository.DocumentCollection
}

// NewMapPOIRepository создает репозиторий точек карты
func NewMapPOIRepository(store repository.DocumentStore) repository.MapPOIRepository {
	return &mapPOIRepository{coll: store.Collection(domain.CollectionMapPOIs)}
}

func (r *mapPOIRepository) List(ctx context.Context) ([]*domain.MapPOI, error) {
	pois := []*domain.MapPOI{}
	if err := r.coll.Find(ctx, repository.FindOptions{}, &pois); err != nil {
		return nil, fmt.Errorf("list map pois: %w", err)
	}
	return pois, nil
}

func (r *mapPOIRepository) GetByID(ctx context.Context, id string) (*domain.MapPOI, error) {
	var poi domain.MapPOI
	if err := r.coll.FindOne(ctx, repository.ByField("id", id), &poi); err != nil {
		return nil, fmt.Errorf("get map poi %q: %w", id, err)
	}
	return &poi, nil
}

// Create вставляет точку и проставляет ей назначенную идентичность
func (r *mapPOIRepository) Create(ctx context.Context, poi *domain.MapPOI) error {
	poi.ObjectID = primitive.NilObjectID
	oid, err := r.coll.InsertOne(ctx, poi)
	if err != nil {
		return fmt.Errorf("create map poi %q: %w", poi.ID, err)
	}
	poi.ObjectID = oid
	return nil
}

func (r *mapPOIRepository) Replace(ctx context.Context, id string, poi *domain.MapPOI) (*domain.MapPOI, error) {
	poi.ObjectID = primitive.NilObjectID

	var updated domain.MapPOI
	if err := r.coll.FindOneAndReplace(ctx, repository.ByField("id", id), poi, &updated); err != nil {
		return nil, fmt.Errorf("replace map poi %q: %w", id, err)
	}
	return &updated, nil
}

func (r *mapPOIRepository) Delete(ctx context.Context, id string) error {
	if err := r.coll.DeleteOne(ctx, repository.ByField("id", id)); err != nil {
		return fmt.Errorf("delete map poi %q: %w", id, err)
	}
	return nil
}
