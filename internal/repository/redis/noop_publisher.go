package redis

import (
	"context"

	"github.com/heritage-archive/content-service/internal/domain/repository"
)

type noopPublisher struct{}

// NewNoopPublisher возвращает издателя, который отбрасывает события (Redis отключён)
func NewNoopPublisher() repository.EventPublisher {
	return noopPublisher{}
}

func (noopPublisher) PublishToStream(context.Context, string, interface{}) error {
	return nil
}
