package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"trailfit_backend/database"
	_ "trailfit_backend/docs"
	"trailfit_backend/internal/auth"
	"trailfit_backend/internal/config"
	"trailfit_backend/internal/handlers"
	"trailfit_backend/internal/logger"
	"trailfit_backend/internal/middleware"
	"trailfit_backend/internal/routes"
	"trailfit_backend/internal/services"
	"trailfit_backend/internal/storage"
	"trailfit_backend/internal/validator"
)

func Run() {
	cfg, err := config.Load("")
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Open(cfg.Database)
	if err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	defer database.Close(gormDB)

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	storageInstance, err := storage.NewStorage(context.Background(), cfg.Storage)
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	ginRouter := SetupRouter(cfg, gormDB, storageInstance)

	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           ginRouter,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}

// SetupRouter собирает сервисы, хэндлеры и маршруты поверх готовых БД и хранилища.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, storageInstance storage.Storage) *gin.Engine {
	tokens := auth.NewTokenService(cfg.JWT)

	// 1. Инициализируем сервисы
	serviceContainer := services.NewServiceContainer(tokens, storageInstance, cfg.Upload.AllowedExtension)

	// 2. Инициализируем хэндлеры
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New(), cfg.Upload)

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter(cfg, gormDB)

	// 4. Регистрация маршрутов
	routes.RegisterRoutes(ginRouter, appHandlers, middleware.AuthMiddleware(serviceContainer.AuthService))

	return ginRouter
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = cfg.Upload.MaxMemory
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS))
	router.Use(middleware.DBMiddleware(db))
	return router
}
