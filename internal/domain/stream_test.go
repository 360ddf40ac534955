package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewContentChangedEvent(t *testing.T) {
	event := NewContentChangedEvent(KindCollections, "c1", ActionDeleted)

	assert.NotEqual(t, uuid.Nil, event.EventID)
	assert.Equal(t, KindCollections, event.Kind)
	assert.Equal(t, "c1", event.Key)
	assert.Equal(t, ActionDeleted, event.Action)
	assert.False(t, event.OccurredAt.IsZero())
}

func TestRecordKind_CollectionName(t *testing.T) {
	tests := []struct {
		kind     RecordKind
		expected string
	}{
		{KindMap, CollectionMapPOIs},
		{KindTimeline, CollectionTimelineItems},
		{KindCollections, CollectionCollections},
		{RecordKind("films"), ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.CollectionName())
			assert.Equal(t, tt.expected != "", tt.kind.Valid())
		})
	}
}

func TestListCacheKey(t *testing.T) {
	assert.Equal(t, "content:list:timeline:v0", ListCacheKey(KindTimeline, 0))
	assert.Equal(t, "content:list:map:v12", ListCacheKey(KindMap, 12))
	assert.Equal(t, "content:list-version:collections", ListVersionKey(KindCollections))
	assert.NotEqual(t, ListCacheKey(KindMap, 1), ListCacheKey(KindMap, 2))
}
