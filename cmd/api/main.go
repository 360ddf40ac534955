package main

// @title Heritage Archive Content API
// @version 1.0.0
// @description Сервис содержимого цифрового архива: точки интерактивной карты с VR-турами,
// @description элементы таймлайна и коллекции фото/фильмов на иврите и английском.
// @description
// @description Чтение открыто всем, запись требует сессии администратора
// @description (cookie session_token или заголовок Authorization: Bearer).

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey AdminSession
// @in header
// @name Authorization

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/heritage-archive/content-service/docs/swagger"
	"github.com/heritage-archive/content-service/internal/config"
	httpDelivery "github.com/heritage-archive/content-service/internal/delivery/http"
	"github.com/heritage-archive/content-service/internal/delivery/http/handler"
	"github.com/heritage-archive/content-service/internal/domain/repository"
	"github.com/heritage-archive/content-service/internal/pkg/auth"
	"github.com/heritage-archive/content-service/internal/pkg/logger"
	"github.com/heritage-archive/content-service/internal/repository/cache"
	"github.com/heritage-archive/content-service/internal/repository/document"
	redisRepo "github.com/heritage-archive/content-service/internal/repository/redis"
	"github.com/heritage-archive/content-service/internal/repository/store"
	"github.com/heritage-archive/content-service/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "content-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Heritage Archive Content Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("public_base_url", cfg.Server.PublicBaseURL),
		zap.String("store_driver", cfg.Store.Driver),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
	)

	// 3. Open document store (once, before serving)
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	docStore, err := store.Open(ctx, cfg, log)
	cancel()
	if err != nil {
		log.Fatal("Failed to open document store", zap.Error(err))
	}

	// 4. Connect to Redis (cache + event stream)
	var (
		redisClient *cache.Redis
		cacheRepo   repository.CacheRepository
		publisher   repository.EventPublisher
	)
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		cacheRepo = cache.NewCacheRepository(redisClient)
		publisher = redisRepo.NewStreamRepository(redisClient.Client(), log, cfg.Worker.StreamReadTimeout)
	} else {
		log.Warn("Cache disabled, content events will not be published")
		cacheRepo = cache.NewNoopCacheRepository()
		publisher = redisRepo.NewNoopPublisher()
	}

	// 5. Initialize Repositories
	mapRepo := document.NewMapPOIRepository(docStore)
	timelineRepo := document.NewTimelineRepository(docStore)
	collectionRepo := document.NewCollectionRepository(docStore)
	statsRepo := document.NewStatsRepository(docStore, log)

	log.Info("Repositories initialized")

	// 6. Initialize Use Cases
	jwtManager, err := auth.NewJWTManager(cfg.Auth.SessionSecret, cfg.Auth.SessionTTL)
	if err != nil {
		log.Fatal("Failed to initialize session manager", zap.Error(err))
	}

	authUC := usecase.NewAuthUseCase(&cfg.Auth, jwtManager, log)
	mapUC := usecase.NewMapPOIUseCase(mapRepo, cacheRepo, publisher, log, cfg.Cache.ListCacheTTL)
	timelineUC := usecase.NewTimelineUseCase(timelineRepo, cacheRepo, publisher, log, cfg.Cache.ListCacheTTL)
	collectionUC := usecase.NewCollectionUseCase(collectionRepo, cacheRepo, publisher, log, cfg.Cache.ListCacheTTL)
	statsUC := usecase.NewStatsUseCase(statsRepo, cacheRepo, log, cfg.Cache.StatsTTL)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP Handlers
	checks := map[string]handler.HealthChecker{"store": docStore}
	if redisClient != nil {
		checks["redis"] = redisClient
	}

	server := httpDelivery.NewServer(
		cfg,
		log,
		authUC,
		handler.NewMapPOIHandler(mapUC, log),
		handler.NewTimelineHandler(timelineUC, log),
		handler.NewCollectionHandler(collectionUC, log),
		handler.NewAuthHandler(authUC, cfg.Auth.CookieSecure, log),
		handler.NewStatsHandler(statsUC, log),
		handler.NewHealthHandler(checks, log),
	)

	log.Info("HTTP server initialized")

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := docStore.Close(ctx); err != nil {
		log.Error("Failed to close document store", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
