package http

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/heritage-archive/content-service/internal/config"
	"github.com/heritage-archive/content-service/internal/delivery/http/handler"
	"github.com/heritage-archive/content-service/internal/delivery/http/middleware"
	apperrors "github.com/heritage-archive/content-service/internal/pkg/errors"
	"github.com/heritage-archive/content-service/internal/pkg/utils"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// contentHandler - CRUD-обработчик одного типа записей
type contentHandler interface {
	List(c *fiber.Ctx) error
	Get(c *fiber.Ctx) error
	Create(c *fiber.Ctx) error
	Replace(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	sessions middleware.SessionValidator

	// Handlers
	mapHandler        *handler.MapPOIHandler
	timelineHandler   *handler.TimelineHandler
	collectionHandler *handler.CollectionHandler
	authHandler       *handler.AuthHandler
	statsHandler      *handler.StatsHandler
	healthHandler     *handler.HealthHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	sessions middleware.SessionValidator,
	mapHandler *handler.MapPOIHandler,
	timelineHandler *handler.TimelineHandler,
	collectionHandler *handler.CollectionHandler,
	authHandler *handler.AuthHandler,
	statsHandler *handler.StatsHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Heritage Archive Content Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    cfg.Server.BodyLimit,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		sessions:          sessions,
		mapHandler:        mapHandler,
		timelineHandler:   timelineHandler,
		collectionHandler: collectionHandler,
		authHandler:       authHandler,
		statsHandler:      statsHandler,
		healthHandler:     healthHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.Security())
	s.app.Use(middleware.CORS(s.config.Server.AllowedOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	requireAdmin := middleware.RequireAdmin(s.sessions)

	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Admin studio: статика только для администратора
	s.app.Use("/admin", middleware.AdminPages(s.sessions, s.config.Admin.RedirectPath))
	s.app.Static("/admin", s.config.Admin.StaticDir)

	api := s.app.Group("/api")

	api.Get("/health", s.healthHandler.Health)
	api.Get("/stats", s.statsHandler.GetStatistics)

	// Auth routes
	authGroup := api.Group("/auth")
	authGroup.Post("/login", s.authHandler.Login)
	authGroup.Post("/logout", s.authHandler.Logout)
	authGroup.Get("/session", requireAdmin, s.authHandler.Session)

	// Content routes; запись только с сессией, до разбора тела
	s.registerContent(api, "/map", s.mapHandler, requireAdmin)
	s.registerContent(api, "/timeline", s.timelineHandler, requireAdmin)
	s.registerContent(api, "/collections", s.collectionHandler, requireAdmin)
}

func (s *Server) registerContent(api fiber.Router, path string, h contentHandler, requireAdmin fiber.Handler) {
	api.Get(path, h.List)
	api.Post(path, requireAdmin, h.Create)
	api.Get(path+"/:id", h.Get)
	api.Put(path+"/:id", requireAdmin, h.Replace)
	api.Delete(path+"/:id", requireAdmin, h.Delete)
}

// App - доступ к fiber.App (для тестов через app.Test)
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки, не обработанные хендлерами, в общем конверте
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			if fe.Code == fiber.StatusNotFound {
				return utils.SendError(c, apperrors.ErrRouteNotFound)
			}
			return c.Status(fe.Code).JSON(utils.ErrorResponse{
				Success: false,
				Error:   fe.Message,
			})
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}
