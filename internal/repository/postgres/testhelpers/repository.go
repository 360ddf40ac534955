package testhelpers

import (
	"github.com/heritage-archive/content-service/internal/repository/postgres"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// NewDocumentStoreForTest создаёт документное хранилище поверх тестовой базы
func NewDocumentStoreForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DocumentStore {
	return postgres.NewDocumentStore(postgres.Wrap(db, logger), logger)
}
