package document

import (
	"context"
	"fmt"

	"github.com/heritage-archive/content-service/internal/domain"
	"github.com/heritage-archive/content-service/internal/domain/repository"
)

type keyIndex struct {
	field  string
	unique bool
}

// keyIndexes - индексы по ключам каждой коллекции.
// id таймлайна - только ключ сортировки, повторы допустимы.
var keyIndexes = map[string]keyIndex{
	domain.CollectionMapPOIs:       {field: "id", unique: true},
	domain.CollectionTimelineItems: {field: "id", unique: false},
	domain.CollectionCollections:   {field: "collection_id", unique: true},
}

// EnsureIndexes создаёт индексы по ключам всех коллекций.
// Вызывается один раз при старте, до обслуживания запросов.
func EnsureIndexes(ctx context.Context, store repository.DocumentStore) error {
	for _, kind := range domain.AllKinds() {
		name := kind.CollectionName()
		idx := keyIndexes[name]
		if err := store.EnsureIndex(ctx, name, idx.field, idx.unique); err != nil {
			return fmt.Errorf("ensure indexes for %s: %w", kind, err)
		}
	}
	return nil
}
