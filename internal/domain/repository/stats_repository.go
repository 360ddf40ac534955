package repository

import (
	"context"

	"github.com/heritage-archive/content-service/internal/domain"
)

// StatsRepository интерфейс для работы со статистикой
type StatsRepository interface {
	// GetStatistics возвращает количество записей по всем типам
	GetStatistics(ctx context.Context) (*domain.Statistics, error)
}
