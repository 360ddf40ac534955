package repository

import (
	"context"

	"github.com/heritage-archive/content-service/internal/domain"
)

// EventPublisher публикует события в стрим
type EventPublisher interface {
	// PublishToStream публикует сообщение в стрим
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}

// StreamRepository - интерфейс для работы с Redis Streams
type StreamRepository interface {
	EventPublisher

	// CreateConsumerGroup создаёт consumer group
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeBatch читает до maxCount новых сообщений группы
	ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error)

	// AckMessages подтверждает обработку сообщений
	AckMessages(ctx context.Context, stream, group string, messageIDs []string) error
}
