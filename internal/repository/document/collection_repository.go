package document

import (
	"context"
	"fmt"

	"github.com/heritage-archive/content-service/internal/domain"
	"github.com/heritage-archive/content-service/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type collectionRepository struct {
	coll repository.DocumentCollection
}

// NewCollectionRepository создает репозиторий коллекций
func NewCollectionRepository(store repository.DocumentStore) repository.CollectionRepository {
	return &collectionRepository{coll: store.Collection(domain.CollectionCollections)}
}

func (r *collectionRepository) List(ctx context.Context) ([]*domain.Collection, error) {
	collections := []*domain.Collection{}
	if err := r.coll.Find(ctx, repository.FindOptions{}, &collections); err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return collections, nil
}

func (r *collectionRepository) GetByID(ctx context.Context, collectionID string) (*domain.Collection, error) {
	var c domain.Collection
	if err := r.coll.FindOne(ctx, repository.ByField("collection_id", collectionID), &c); err != nil {
		return nil, fmt.Errorf("get collection %q: %w", collectionID, err)
	}
	return &c, nil
}

func (r *collectionRepository) Create(ctx context.Context, c *domain.Collection) error {
	c.ObjectID = primitive.NilObjectID
	oid, err := r.coll.InsertOne(ctx, c)
	if err != nil {
		return fmt.Errorf("create collection %q: %w", c.CollectionID, err)
	}
	c.ObjectID = oid
	return nil
}

func (r *collectionRepository) Replace(ctx context.Context, collectionID string, c *domain.Collection) (*domain.Collection, error) {
	c.ObjectID = primitive.NilObjectID

	var updated domain.Collection
	if err := r.coll.FindOneAndReplace(ctx, repository.ByField("collection_id", collectionID), c, &updated); err != nil {
		return nil, fmt.Errorf("replace collection %q: %w", collectionID, err)
	}
	return &updated, nil
}

func (r *collectionRepository) Delete(ctx context.Context, collectionID string) error {
	if err := r.coll.DeleteOne(ctx, repository.ByField("collection_id", collectionID)); err != nil {
		return fmt.Errorf("delete collection %q: %w", collectionID, err)
	}
	return nil
}
