package document

import (
	"context"
	"fmt"
	"time"

	"github.com/heritage-archive/content-service/internal/domain"
	"github.com/heritage-archive/content-service/internal/domain/repository"
	"go.uber.org/zap"
)

type statsRepository struct {
	store  repository.DocumentStore
	logger *zap.Logger
}

// NewStatsRepository создает репозиторий статистики по коллекциям хранилища
func NewStatsRepository(store repository.DocumentStore, logger *zap.Logger) repository.StatsRepository {
	return &statsRepository{
		store:  store,
		logger: logger,
	}
}

// GetStatistics считает документы каждого типа
func (r *statsRepository) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	stats := &domain.Statistics{LastUpdated: time.Now().UTC()}

	counts := []struct {
		kind   domain.RecordKind
		target *int64
	}{
		{domain.KindMap, &stats.MapPOIs},
		{domain.KindTimeline, &stats.TimelineItems},
		{domain.KindCollections, &stats.Collections},
	}

	for _, c := range counts {
		n, err := r.store.Collection(c.kind.CollectionName()).Count(ctx)
		if err != nil {
			r.logger.Error("failed to count documents", zap.String("kind", string(c.kind)), zap.Error(err))
			return nil, fmt.Errorf("count %s: %w", c.kind, err)
		}
		*c.target = n
		stats.Total += n
	}

	return stats, nil
}
