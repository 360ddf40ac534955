package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heritage-archive/content-service/internal/config"
	"github.com/heritage-archive/content-service/internal/pkg/logger"
	"github.com/heritage-archive/content-service/internal/repository/cache"
	"github.com/heritage-archive/content-service/internal/repository/document"
	redisRepo "github.com/heritage-archive/content-service/internal/repository/redis"
	"github.com/heritage-archive/content-service/internal/repository/store"
	"github.com/heritage-archive/content-service/internal/usecase"
	"github.com/heritage-archive/content-service/internal/worker"
	"github.com/heritage-archive/content-service/internal/worker/content"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "content-worker")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Content Event Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.String("consumer_name", cfg.Worker.ConsumerName),
		zap.Int("batch_size", cfg.Worker.BatchSize),
		zap.Int("max_retries", cfg.Worker.MaxRetries))

	// 3. Open document store
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	docStore, err := store.Open(ctx, cfg, log)
	cancel()
	if err != nil {
		log.Fatal("Failed to open document store", zap.Error(err))
	}
	defer func() {
		if err := docStore.Close(context.Background()); err != nil {
			log.Error("Failed to close document store", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Initialize repositories and use cases
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log, cfg.Worker.StreamReadTimeout)
	statsUC := usecase.NewStatsUseCase(document.NewStatsRepository(docStore, log), cacheRepo, log, cfg.Cache.StatsTTL)

	// 6. Initialize workers
	eventWorker := content.NewEventWorker(streamRepo, cacheRepo, statsUC, content.Config{
		ConsumerGroup: cfg.Worker.ConsumerGroup,
		ConsumerName:  cfg.Worker.ConsumerName,
		BatchSize:     cfg.Worker.BatchSize,
		MaxRetries:    cfg.Worker.MaxRetries,
	}, log)

	workerManager := worker.NewWorkerManager(log, worker.DefaultShutdownTimeout)
	workerManager.Register(eventWorker)

	// 7. Start workers
	runCtx, stop := context.WithCancel(context.Background())
	defer stop()

	if err := workerManager.Start(runCtx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	// Let the current batch finish, then cancel blocking reads
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}
	stop()

	log.Info("Worker shutdown complete")
}
