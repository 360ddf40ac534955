package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/heritage-archive/content-service/internal/config"
	"github.com/heritage-archive/content-service/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Store - подключение к MongoDB, создаётся один раз на процесс
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

var _ repository.DocumentStore = (*Store)(nil)

// New подключается к MongoDB и проверяет соединение.
// Ошибка подключения фатальна для вызывающего, повторов нет.
func New(cfg *config.MongoConfig, logger *zap.Logger) (*Store, error) {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logger.Info("MongoDB connected",
		zap.String("database", cfg.Database),
	)

	return &Store{
		client: client,
		db:     client.Database(cfg.Database),
		logger: logger,
	}, nil
}

// Collection возвращает handle коллекции
func (s *Store) Collection(name string) repository.DocumentCollection {
	return &collection{coll: s.db.Collection(name)}
}

// EnsureIndex создаёт возрастающий индекс по полю
func (s *Store) EnsureIndex(ctx context.Context, coll, field string, unique bool) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetUnique(unique),
	}

	name, err := s.db.Collection(coll).Indexes().CreateOne(ctx, model)
	if err != nil {
		return fmt.Errorf("create index %s.%s: %w", coll, field, err)
	}

	s.logger.Debug("Index ensured",
		zap.String("collection", coll),
		zap.String("index", name),
		zap.Bool("unique", unique),
	)
	return nil
}

func (s *Store) Health(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	s.logger.Info("Closing MongoDB connection")
	return s.client.Disconnect(ctx)
}
