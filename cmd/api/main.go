package main

// @title Museums Of London API
// @version 1.0.0
// @description Каталог лондонских музеев с избранным, пешеходными турами и админским добавлением музеев.
// @description
// @description Основные возможности:
// @description - Каталог музеев с поиском, фильтрами по категории и бесплатному входу
// @description - Избранное единственного пользователя
// @description - Предустановленные и пользовательские туры с разрешением музеев
// @description - Экспорт маршрута тура в Google Maps
// @description - Добавление музеев, защищённое PIN

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/museums-api/docs"
	"github.com/museums-api/internal/config"
	httpDelivery "github.com/museums-api/internal/delivery/http"
	"github.com/museums-api/internal/delivery/http/handler"
	"github.com/museums-api/internal/domain/repository"
	"github.com/museums-api/internal/pkg/logger"
	"github.com/museums-api/internal/repository/memory"
	"github.com/museums-api/internal/repository/postgres"
	"github.com/museums-api/internal/repository/redisrepo"
	"github.com/museums-api/internal/repository/seed"
	"github.com/museums-api/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Museums Of London API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("storage_backend", cfg.Storage.Backend),
		zap.String("favorites_backend", cfg.Storage.FavoritesBackend),
	)

	// 3. Initialize repositories according to the configured backend
	var (
		museumRepo   repository.MuseumRepository
		favoriteRepo repository.FavoriteRepository
		tourRepo     repository.TourRepository
	)

	switch cfg.Storage.Backend {
	case config.StoragePostgres:
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()

		migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := db.Migrate(migrateCtx); err != nil {
			log.Fatal("Failed to migrate database", zap.Error(err))
		}

		museumRepo = postgres.NewMuseumRepository(db)
		favoriteRepo = postgres.NewFavoriteRepository(db)
		tourRepo = postgres.NewTourRepository(db)
	default:
		museumRepo = memory.NewMuseumRepository()
		favoriteRepo = memory.NewFavoriteRepository()
		tourRepo = memory.NewTourRepository()
	}

	if cfg.Storage.FavoritesBackend == config.FavoritesRedis {
		redisClient, err := redisrepo.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()

		favoriteRepo = redisrepo.NewFavoriteRepository(redisClient)
	}

	log.Info("Repositories initialized")

	// 4. Seed catalog and predefined tours
	seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := seed.Apply(seedCtx, museumRepo, tourRepo, cfg.Catalog.Seed, log); err != nil {
		log.Fatal("Failed to seed catalog", zap.Error(err))
	}

	// 5. Initialize use cases
	catalogUC := usecase.NewCatalogUseCase(museumRepo, log)
	favoritesUC := usecase.NewFavoritesUseCase(favoriteRepo, museumRepo, log)
	tourUC := usecase.NewTourUseCase(tourRepo, museumRepo, log)
	adminUC := usecase.NewAdminUseCase(museumRepo, cfg.Admin.PIN, log)

	log.Info("Use cases initialized")

	// 6. Initialize HTTP handlers
	museumHandler := handler.NewMuseumHandler(catalogUC, log)
	favoriteHandler := handler.NewFavoriteHandler(favoritesUC, log)
	tourHandler := handler.NewTourHandler(tourUC, log)
	adminHandler := handler.NewAdminHandler(adminUC, log)

	// 7. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		museumHandler,
		favoriteHandler,
		tourHandler,
		adminHandler,
	)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
