package content_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/heritage-archive/content-service/internal/domain"
	"github.com/heritage-archive/content-service/internal/worker"
	"github.com/heritage-archive/content-service/internal/worker/content"
)

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, maxCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	args := m.Called(ctx, stream, group, messageIDs)
	return args.Error(0)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *MockCacheRepository) Version(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCacheRepository) BumpVersion(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCacheRepository) GetStats(ctx context.Context) (*domain.Statistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistics), args.Error(1)
}

func (m *MockCacheRepository) SetStats(ctx context.Context, stats *domain.Statistics, ttl time.Duration) error {
	args := m.Called(ctx, stats, ttl)
	return args.Error(0)
}

// MockStatsRefresher is a mock of StatsRefresher
type MockStatsRefresher struct {
	mock.Mock
}

func (m *MockStatsRefresher) RefreshStatistics(ctx context.Context) (*domain.Statistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistics), args.Error(1)
}

const (
	group    = "content-event-workers"
	consumer = "content-worker-test"
)

func newWorker(stream *MockStreamRepository, cache *MockCacheRepository, stats *MockStatsRefresher) *content.EventWorker {
	return content.NewEventWorker(stream, cache, stats, content.Config{
		ConsumerGroup: group,
		ConsumerName:  consumer,
		BatchSize:     5,
		MaxRetries:    2,
	}, zap.NewNop())
}

func eventMessage(t *testing.T, id string, kind domain.RecordKind) domain.StreamMessage {
	t.Helper()
	data, err := json.Marshal(domain.NewContentChangedEvent(kind, "key-"+id, domain.ActionCreated))
	require.NoError(t, err)
	return domain.StreamMessage{ID: id, Data: string(data)}
}

func TestEventWorker_Name(t *testing.T) {
	w := newWorker(&MockStreamRepository{}, &MockCacheRepository{}, &MockStatsRefresher{})

	assert.Equal(t, "content-events", w.Name())
	assert.Equal(t, domain.StreamContentChanged, w.Stream())
	assert.Equal(t, group, w.ConsumerGroup())
	assert.Equal(t, consumer, w.ConsumerName())
}

func TestEventWorker_ProcessBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("empty stream", func(t *testing.T) {
		stream := &MockStreamRepository{}
		stream.On("ConsumeBatch", ctx, domain.StreamContentChanged, group, consumer, 5).Return(nil, nil)
		cache := &MockCacheRepository{}
		stats := &MockStatsRefresher{}

		processed, err := newWorker(stream, cache, stats).ProcessBatch(ctx)
		require.NoError(t, err)
		assert.Zero(t, processed)
		stream.AssertNotCalled(t, "AckMessages", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		stats.AssertNotCalled(t, "RefreshStatistics", mock.Anything)
	})

	t.Run("invalidates affected kinds and acks everything", func(t *testing.T) {
		messages := []domain.StreamMessage{
			eventMessage(t, "1-0", domain.KindTimeline),
			eventMessage(t, "2-0", domain.KindMap),
			{ID: "3-0", Data: "{not json"},
			{ID: "4-0", Data: `{"kind":"films","key":"x","action":"created"}`},
			{ID: "5-0"},
			eventMessage(t, "6-0", domain.KindMap),
		}

		stream := &MockStreamRepository{}
		stream.On("ConsumeBatch", ctx, domain.StreamContentChanged, group, consumer, 5).Return(messages, nil)
		stream.On("AckMessages", ctx, domain.StreamContentChanged, group,
			[]string{"1-0", "2-0", "3-0", "4-0", "5-0", "6-0"}).Return(nil).Once()

		cache := &MockCacheRepository{}
		cache.On("BumpVersion", ctx, domain.ListVersionKey(domain.KindMap)).Return(int64(4), nil).Once()
		cache.On("BumpVersion", ctx, domain.ListVersionKey(domain.KindTimeline)).Return(int64(2), nil).Once()
		cache.On("Delete", ctx, []string{domain.StatsCacheKey}).Return(nil).Once()

		stats := &MockStatsRefresher{}
		stats.On("RefreshStatistics", ctx).Return(&domain.Statistics{Total: 3}, nil).Once()

		processed, err := newWorker(stream, cache, stats).ProcessBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 6, processed)

		stream.AssertExpectations(t)
		cache.AssertExpectations(t)
		stats.AssertExpectations(t)
	})

	t.Run("only malformed messages are acked without refresh", func(t *testing.T) {
		stream := &MockStreamRepository{}
		stream.On("ConsumeBatch", ctx, domain.StreamContentChanged, group, consumer, 5).
			Return([]domain.StreamMessage{{ID: "9-0", Data: "garbage"}}, nil)
		stream.On("AckMessages", ctx, domain.StreamContentChanged, group, []string{"9-0"}).Return(nil)

		cache := &MockCacheRepository{}
		stats := &MockStatsRefresher{}

		processed, err := newWorker(stream, cache, stats).ProcessBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, processed)
		cache.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		cache.AssertNotCalled(t, "BumpVersion", mock.Anything, mock.Anything)
		stats.AssertNotCalled(t, "RefreshStatistics", mock.Anything)
	})

	t.Run("stats refresh is retried then acked", func(t *testing.T) {
		stream := &MockStreamRepository{}
		stream.On("ConsumeBatch", ctx, domain.StreamContentChanged, group, consumer, 5).
			Return([]domain.StreamMessage{eventMessage(t, "1-0", domain.KindCollections)}, nil)
		stream.On("AckMessages", ctx, domain.StreamContentChanged, group, []string{"1-0"}).Return(nil)

		cache := &MockCacheRepository{}
		cache.On("BumpVersion", ctx, mock.Anything).Return(int64(0), errors.New("redis down"))
		cache.On("Delete", ctx, mock.Anything).Return(errors.New("redis down"))

		stats := &MockStatsRefresher{}
		stats.On("RefreshStatistics", ctx).Return(nil, errors.New("store down")).Twice()

		processed, err := newWorker(stream, cache, stats).ProcessBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, processed)
		stats.AssertNumberOfCalls(t, "RefreshStatistics", 2)
		stream.AssertCalled(t, "AckMessages", ctx, domain.StreamContentChanged, group, []string{"1-0"})
	})

	t.Run("consume error", func(t *testing.T) {
		stream := &MockStreamRepository{}
		stream.On("ConsumeBatch", ctx, domain.StreamContentChanged, group, consumer, 5).
			Return(nil, errors.New("connection refused"))

		_, err := newWorker(stream, &MockCacheRepository{}, &MockStatsRefresher{}).ProcessBatch(ctx)
		assert.Error(t, err)
	})

	t.Run("ack error is reported", func(t *testing.T) {
		stream := &MockStreamRepository{}
		stream.On("ConsumeBatch", ctx, domain.StreamContentChanged, group, consumer, 5).
			Return([]domain.StreamMessage{{ID: "1-0", Data: "garbage"}}, nil)
		stream.On("AckMessages", ctx, domain.StreamContentChanged, group, []string{"1-0"}).
			Return(errors.New("redis down"))

		processed, err := newWorker(stream, &MockCacheRepository{}, &MockStatsRefresher{}).ProcessBatch(ctx)
		assert.Error(t, err)
		assert.Equal(t, 1, processed)
	})
}

func TestEventWorker_StartAndStop(t *testing.T) {
	stream := &MockStreamRepository{}
	stream.On("CreateConsumerGroup", mock.Anything, domain.StreamContentChanged, group).Return(nil)
	polled := make(chan struct{}, 1)
	stream.On("ConsumeBatch", mock.Anything, domain.StreamContentChanged, group, consumer, 5).
		Run(func(mock.Arguments) {
			select {
			case polled <- struct{}{}:
			default:
			}
		}).
		Return(nil, nil)

	w := newWorker(stream, &MockCacheRepository{}, &MockStatsRefresher{})

	manager := worker.NewWorkerManager(zap.NewNop(), 5*time.Second)
	manager.Register(w)
	require.NoError(t, manager.Start(context.Background()))

	select {
	case <-polled:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not poll the stream")
	}

	require.NoError(t, manager.Stop())
	assert.True(t, w.IsStopped())
}

func TestEventWorker_StartFailsWithoutGroup(t *testing.T) {
	stream := &MockStreamRepository{}
	stream.On("CreateConsumerGroup", mock.Anything, domain.StreamContentChanged, group).
		Return(errors.New("NOAUTH"))

	err := newWorker(stream, &MockCacheRepository{}, &MockStatsRefresher{}).Start(context.Background())
	assert.Error(t, err)
}
