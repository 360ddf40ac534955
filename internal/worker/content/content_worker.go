package content

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/heritage-archive/content-service/internal/domain"
	"github.com/heritage-archive/content-service/internal/domain/repository"
	"github.com/heritage-archive/content-service/internal/worker"
	"go.uber.org/zap"
)

const (
	errorPause      = time.Second
	emptyQueuePause = 100 * time.Millisecond
	retryBackoff    = 200 * time.Millisecond
)

var errMalformedEvent = errors.New("malformed content event")

// StatsRefresher пересчитывает статистику и обновляет её кеш
type StatsRefresher interface {
	RefreshStatistics(ctx context.Context) (*domain.Statistics, error)
}

// Config - параметры чтения стрима
type Config struct {
	ConsumerGroup string
	ConsumerName  string
	BatchSize     int
	MaxRetries    int
}

// EventWorker обрабатывает события об изменении записей архива:
// сбрасывает кеш списков затронутых типов и пересчитывает статистику
type EventWorker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	cacheRepo  repository.CacheRepository
	stats      StatsRefresher
	batchSize  int
	maxRetries int
}

// NewEventWorker создает новый EventWorker
func NewEventWorker(
	streamRepo repository.StreamRepository,
	cacheRepo repository.CacheRepository,
	stats StatsRefresher,
	cfg Config,
	logger *zap.Logger,
) *EventWorker {
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 10
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 1
	}

	return &EventWorker{
		BaseWorker: worker.NewBaseWorker(
			"content-events",
			domain.StreamContentChanged,
			cfg.ConsumerGroup,
			cfg.ConsumerName,
			logger,
		),
		streamRepo: streamRepo,
		cacheRepo:  cacheRepo,
		stats:      stats,
		batchSize:  batchSize,
		maxRetries: maxRetries,
	}
}

// Start запускает цикл чтения; возвращается после Stop или отмены ctx
func (w *EventWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting content event worker",
		zap.String("stream", w.Stream()),
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, w.Stream(), w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()
		default:
		}

		processed, err := w.ProcessBatch(ctx)
		if err != nil {
			logger.Error("Failed to process batch", zap.Error(err))
			if !w.Pause(errorPause) {
				return nil
			}
			continue
		}

		if processed == 0 && !w.Pause(emptyQueuePause) {
			return nil
		}
	}
}

// ProcessBatch читает и обрабатывает одну пачку сообщений.
// Возвращает количество прочитанных сообщений, включая битые.
func (w *EventWorker) ProcessBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(ctx, w.Stream(), w.ConsumerGroup(), w.ConsumerName(), w.batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}
	if len(messages) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(messages))
	kinds := make(map[domain.RecordKind]struct{})

	for _, msg := range messages {
		ids = append(ids, msg.ID)

		event, err := parseEvent(msg)
		if err != nil {
			// битое сообщение подтверждается, чтобы не застревать в pending
			logger.Warn("Skipping malformed message",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			continue
		}

		logger.Debug("Content changed",
			zap.String("event_id", event.EventID.String()),
			zap.String("kind", string(event.Kind)),
			zap.String("key", event.Key),
			zap.String("action", string(event.Action)))
		kinds[event.Kind] = struct{}{}
	}

	if len(kinds) > 0 {
		w.invalidate(ctx, kinds)
		if err := w.refreshStats(ctx); err != nil {
			logger.Error("Statistics refresh failed, acknowledging anyway", zap.Error(err))
		}
	}

	if err := w.streamRepo.AckMessages(ctx, w.Stream(), w.ConsumerGroup(), ids); err != nil {
		return len(messages), fmt.Errorf("failed to ack messages: %w", err)
	}

	logger.Info("Batch processed",
		zap.Int("messages", len(messages)),
		zap.Int("kinds", len(kinds)))
	return len(messages), nil
}

// invalidate переводит списки затронутых типов на новое поколение и сбрасывает статистику
func (w *EventWorker) invalidate(ctx context.Context, kinds map[domain.RecordKind]struct{}) {
	for _, kind := range domain.AllKinds() {
		if _, ok := kinds[kind]; !ok {
			continue
		}
		if _, err := w.cacheRepo.BumpVersion(ctx, domain.ListVersionKey(kind)); err != nil {
			w.Logger().Warn("Failed to invalidate list cache", zap.String("kind", string(kind)), zap.Error(err))
		}
	}

	if err := w.cacheRepo.Delete(ctx, domain.StatsCacheKey); err != nil {
		w.Logger().Warn("Failed to invalidate stats cache", zap.Error(err))
	}
}

func (w *EventWorker) refreshStats(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		stats, err := w.stats.RefreshStatistics(ctx)
		if err == nil {
			w.Logger().Debug("Statistics refreshed", zap.Int64("total", stats.Total))
			return nil
		}

		lastErr = err
		w.Logger().Warn("Statistics refresh attempt failed",
			zap.Int("attempt", attempt),
			zap.Error(err))
		if attempt < w.maxRetries && !w.Pause(retryBackoff*time.Duration(attempt)) {
			break
		}
	}
	return lastErr
}

func parseEvent(msg domain.StreamMessage) (*domain.ContentChangedEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("%w: empty payload", errMalformedEvent)
	}

	var event domain.ContentChangedEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedEvent, err)
	}
	if !event.Kind.Valid() {
		return nil, fmt.Errorf("%w: unknown kind %q", errMalformedEvent, event.Kind)
	}
	return &event, nil
}
