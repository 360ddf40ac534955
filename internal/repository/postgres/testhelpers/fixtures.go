package testhelpers

import (
	"context"
	"fmt"

	"github.com/heritage-archive/content-service/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoadFixtures вставляет документы в коллекцию по порядку и возвращает их идентичности
func LoadFixtures(ctx context.Context, coll repository.DocumentCollection, docs ...interface{}) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(docs))
	for i, doc := range docs {
		id, err := coll.InsertOne(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("load fixture %d into %s: %w", i, coll.Name(), err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
