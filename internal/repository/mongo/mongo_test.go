package mongo_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/heritage-archive/content-service/internal/config"
	"github.com/heritage-archive/content-service/internal/domain"
	"github.com/heritage-archive/content-service/internal/domain/repository"
	mongoStore "github.com/heritage-archive/content-service/internal/repository/mongo"
)

// getTestStore подключается к локальной MongoDB; тест пропускается, если она недоступна
func getTestStore(t *testing.T) *mongoStore.Store {
	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	store, err := mongoStore.New(&config.MongoConfig{
		URI:            uri,
		Database:       "fkth_test",
		ConnectTimeout: 2 * time.Second,
	}, zap.NewNop())
	if err != nil {
		t.Skipf("MongoDB not available for integration tests: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close(context.Background())
	})
	return store
}

type testDoc struct {
	ObjectID primitive.ObjectID `bson:"_id,omitempty"`
	Key      string             `bson:"key"`
	Order    int                `bson:"order"`
	Note     string             `bson:"note,omitempty"`
}

func newTestCollection(t *testing.T, store *mongoStore.Store) repository.DocumentCollection {
	ctx := context.Background()
	name := "test_docs_" + primitive.NewObjectID().Hex()
	require.NoError(t, store.EnsureIndex(ctx, name, "key", true))
	return store.Collection(name)
}

func TestStore_CRUD(t *testing.T) {
	store := getTestStore(t)
	ctx := context.Background()
	coll := newTestCollection(t, store)

	id, err := coll.InsertOne(ctx, &testDoc{Key: "b", Order: 2, Note: "first"})
	require.NoError(t, err)
	assert.False(t, id.IsZero())

	_, err = coll.InsertOne(ctx, &testDoc{Key: "a", Order: 1})
	require.NoError(t, err)

	t.Run("find sorted", func(t *testing.T) {
		var docs []testDoc
		require.NoError(t, coll.Find(ctx, repository.FindOptions{SortBy: "order"}, &docs))
		require.Len(t, docs, 2)
		assert.Equal(t, "a", docs[0].Key)
		assert.Equal(t, "b", docs[1].Key)
	})

	t.Run("find one by field and identity", func(t *testing.T) {
		var byKey testDoc
		require.NoError(t, coll.FindOne(ctx, repository.ByField("key", "b"), &byKey))
		assert.Equal(t, id, byKey.ObjectID)

		var byID testDoc
		require.NoError(t, coll.FindOne(ctx, repository.ByObjectID(id), &byID))
		assert.Equal(t, "b", byID.Key)
	})

	t.Run("duplicate key", func(t *testing.T) {
		_, err := coll.InsertOne(ctx, &testDoc{Key: "a"})
		assert.ErrorIs(t, err, domain.ErrDuplicateKey)
	})

	t.Run("replace drops omitted fields", func(t *testing.T) {
		var replaced testDoc
		err := coll.FindOneAndReplace(ctx, repository.ByField("key", "b"), &testDoc{Key: "b", Order: 3}, &replaced)
		require.NoError(t, err)
		assert.Equal(t, id, replaced.ObjectID)
		assert.Equal(t, 3, replaced.Order)
		assert.Empty(t, replaced.Note)
	})

	t.Run("replace missing", func(t *testing.T) {
		var replaced testDoc
		err := coll.FindOneAndReplace(ctx, repository.ByField("key", "zzz"), &testDoc{Key: "zzz"}, &replaced)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("count and delete", func(t *testing.T) {
		n, err := coll.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		require.NoError(t, coll.DeleteOne(ctx, repository.ByField("key", "a")))
		assert.ErrorIs(t, coll.DeleteOne(ctx, repository.ByField("key", "a")), domain.ErrNotFound)

		var missing testDoc
		assert.ErrorIs(t, coll.FindOne(ctx, repository.ByField("key", "a"), &missing), domain.ErrNotFound)
	})
}

func TestStore_Health(t *testing.T) {
	store := getTestStore(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.NoError(t, store.Health(ctx))
}
