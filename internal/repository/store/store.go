package store

import (
	"context"
	"fmt"

	"github.com/heritage-archive/content-service/internal/config"
	"github.com/heritage-archive/content-service/internal/domain/repository"
	"github.com/heritage-archive/content-service/internal/repository/document"
	"github.com/heritage-archive/content-service/internal/repository/mongo"
	"github.com/heritage-archive/content-service/internal/repository/postgres"
	"go.uber.org/zap"
)

// Open создаёт документное хранилище выбранного драйвера и индексы логических ключей.
// Вызывается один раз при старте процесса.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.DocumentStore, error) {
	var (
		s   repository.DocumentStore
		err error
	)

	switch cfg.Store.Driver {
	case config.StoreDriverMongo:
		s, err = mongo.New(&cfg.Mongo, logger)
	case config.StoreDriverPostgres:
		var db *postgres.DB
		db, err = postgres.New(ctx, &cfg.Database, logger)
		if err == nil {
			s = postgres.NewDocumentStore(db, logger)
		}
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Store.Driver, err)
	}

	if err := document.EnsureIndexes(ctx, s); err != nil {
		_ = s.Close(ctx)
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	logger.Info("Document store ready", zap.String("driver", cfg.Store.Driver))
	return s, nil
}
