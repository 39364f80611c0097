package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/museums-api/internal/config"
	"github.com/museums-api/internal/delivery/http/handler"
	"github.com/museums-api/internal/delivery/http/middleware"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	museumHandler   *handler.MuseumHandler
	favoriteHandler *handler.FavoriteHandler
	tourHandler     *handler.TourHandler
	adminHandler    *handler.AdminHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	museumHandler *handler.MuseumHandler,
	favoriteHandler *handler.FavoriteHandler,
	tourHandler *handler.TourHandler,
	adminHandler *handler.AdminHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Museums Of London API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		museumHandler:   museumHandler,
		favoriteHandler: favoriteHandler,
		tourHandler:     tourHandler,
		adminHandler:    adminHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api")

	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Museums Of London API"})
	})

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"backend": s.config.Storage.Backend,
		})
	})

	// Museum routes: literal paths раньше параметризованного :id
	api.Get("/museums", s.museumHandler.List)
	api.Get("/museums/featured", s.museumHandler.Featured)
	api.Get("/museums/categories", s.museumHandler.Categories)
	api.Get("/museums/:id", s.museumHandler.GetByID)

	// Favorite routes
	api.Get("/favorites", s.favoriteHandler.List)
	api.Get("/favorites/check/:id", s.favoriteHandler.Check)
	api.Post("/favorites/:id", s.favoriteHandler.Add)
	api.Delete("/favorites/:id", s.favoriteHandler.Remove)

	// Tour routes
	api.Get("/tours", s.tourHandler.ListPredefined)
	api.Get("/tours/custom/list", s.tourHandler.ListCustom)
	api.Post("/tours/custom", s.tourHandler.CreateCustom)
	api.Delete("/tours/custom/:id", s.tourHandler.DeleteCustom)
	api.Get("/tours/:id/route", s.tourHandler.Route)

	// Admin routes
	api.Post("/admin/verify", s.adminHandler.VerifyPIN)
	api.Post("/admin/museums", s.adminHandler.CreateMuseum)
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

// App - доступ к приложению Fiber, используется в тестах через app.Test
func (s *Server) App() *fiber.App {
	return s.app
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
