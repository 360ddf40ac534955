package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/heritage-archive/content-service/internal/domain"
	"github.com/heritage-archive/content-service/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type collection struct {
	coll *mongo.Collection
}

func (c *collection) Name() string {
	return c.coll.Name()
}

func (c *collection) Find(ctx context.Context, opts repository.FindOptions, results interface{}) error {
	findOpts := options.Find()
	if opts.SortBy != "" {
		findOpts.SetSort(bson.D{{Key: opts.SortBy, Value: 1}, {Key: repository.IDField, Value: 1}})
	}

	cursor, err := c.coll.Find(ctx, bson.D{}, findOpts)
	if err != nil {
		return fmt.Errorf("find in %s: %w", c.Name(), err)
	}

	if err := cursor.All(ctx, results); err != nil {
		return fmt.Errorf("decode %s: %w", c.Name(), err)
	}
	return nil
}

func (c *collection) FindOne(ctx context.Context, filter repository.Filter, result interface{}) error {
	err := c.coll.FindOne(ctx, toBSON(filter)).Decode(result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find one in %s: %w", c.Name(), err)
	}
	return nil
}

func (c *collection) InsertOne(ctx context.Context, doc interface{}) (primitive.ObjectID, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, translateWriteError(c.Name(), "insert", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert into %s: unexpected _id type %T", c.Name(), res.InsertedID)
	}
	return id, nil
}

func (c *collection) FindOneAndReplace(ctx context.Context, filter repository.Filter, doc interface{}, result interface{}) error {
	opts := options.FindOneAndReplace().SetReturnDocument(options.After)

	err := c.coll.FindOneAndReplace(ctx, toBSON(filter), doc, opts).Decode(result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrNotFound
	}
	if err != nil {
		return translateWriteError(c.Name(), "replace", err)
	}
	return nil
}

func (c *collection) DeleteOne(ctx context.Context, filter repository.Filter) error {
	res, err := c.coll.DeleteOne(ctx, toBSON(filter))
	if err != nil {
		return fmt.Errorf("delete from %s: %w", c.Name(), err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *collection) Count(ctx context.Context) (int64, error) {
	n, err := c.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", c.Name(), err)
	}
	return n, nil
}

func toBSON(f repository.Filter) bson.D {
	return bson.D{{Key: f.Field, Value: f.Value}}
}

func translateWriteError(coll, op string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s %s: %w", op, coll, domain.ErrDuplicateKey)
	}
	return fmt.Errorf("%s %s: %w", op, coll, err)
}
