package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamContentChanged = "stream:content:changed"
)

// ContentAction - тип изменения записи
type ContentAction string

const (
	ActionCreated  ContentAction = "created"
	ActionReplaced ContentAction = "replaced"
	ActionDeleted  ContentAction = "deleted"
)

// ContentChangedEvent - событие об изменении записи архива
type ContentChangedEvent struct {
	EventID    uuid.UUID     `json:"event_id"`
	Kind       RecordKind    `json:"kind"`
	Key        string        `json:"key"`
	Action     ContentAction `json:"action"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// NewContentChangedEvent создает событие с новым идентификатором
func NewContentChangedEvent(kind RecordKind, key string, action ContentAction) ContentChangedEvent {
	return ContentChangedEvent{
		EventID:    uuid.New(),
		Kind:       kind,
		Key:        key,
		Action:     action,
		OccurredAt: time.Now().UTC(),
	}
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
