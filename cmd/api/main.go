package main

// @title Campus API
// @version 1.0.0
// @description Информация о кампусе: точки питания и их меню, столовые с недельным меню, автобусные остановки, маршруты и расписание.
// @description
// @description Чтение открыто всем. Создание, изменение и удаление требуют заголовок x-api-key.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	_ "github.com/campus-api/docs"
	"github.com/campus-api/internal/config"
	httpDelivery "github.com/campus-api/internal/delivery/http"
	"github.com/campus-api/internal/delivery/http/handler"
	"github.com/campus-api/internal/domain/repository"
	"github.com/campus-api/internal/pkg/logger"
	"github.com/campus-api/internal/repository/cache"
	"github.com/campus-api/internal/repository/postgres"
	redisrepo "github.com/campus-api/internal/repository/redis"
	"github.com/campus-api/internal/usecase"
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

	log.Info("Starting Campus API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
		zap.Int("api_keys", len(cfg.Auth.APIKeys)),
	)
	if len(cfg.Auth.APIKeys) == 0 {
		log.Warn("API_KEYS is empty, every write request will be rejected")
	}

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	// 4. Connect to Redis (optional)
	var (
		redisClient    *cache.Redis
		redisPinger    handler.Pinger
		limiterStorage fiber.Storage
		streamRepo     repository.StreamRepository
	)
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		redisPinger = redisClient
		limiterStorage = cache.NewLimiterStorage(cache.NewCacheRepository(redisClient))
		streamRepo = redisrepo.NewStreamRepository(redisClient.Client(), log)
		log.Info("Redis connected, rate limit and change events use it")
	} else {
		log.Info("Redis disabled, rate limit is per process and change events are off")
	}

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	log.Info("All connections healthy")

	// 6. Initialize Repositories
	outletRepo := postgres.NewFoodOutletRepository(db)
	menuItemRepo := postgres.NewMenuItemRepository(db)
	messRepo := postgres.NewMessRepository(db)
	messMenuRepo := postgres.NewMessMenuRepository(db)
	messMenuItemRepo := postgres.NewMessMenuItemRepository(db)
	busTypeRepo := postgres.NewBusTypeRepository(db)
	busStopRepo := postgres.NewBusStopRepository(db)
	busRouteRepo := postgres.NewBusRouteRepository(db)
	busScheduleRepo := postgres.NewBusScheduleRepository(db)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	events := usecase.NewEventPublisher(streamRepo, cfg.Events.Stream, log)

	outletUC := usecase.NewFoodOutletUseCase(outletRepo, menuItemRepo, events, log)
	messUC := usecase.NewMessUseCase(messRepo, messMenuRepo, events, log)
	messMenuUC := usecase.NewMessMenuUseCase(messMenuRepo, messMenuItemRepo, events, log)
	busUC := usecase.NewBusUseCase(busTypeRepo, busStopRepo, busRouteRepo, busScheduleRepo, events, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	handlers := httpDelivery.Handlers{
		Outlet:   handler.NewFoodOutletHandler(outletUC, log),
		Mess:     handler.NewMessHandler(messUC, log),
		MessMenu: handler.NewMessMenuHandler(messMenuUC, log),
		Bus:      handler.NewBusHandler(busUC, log),
		Health:   handler.NewHealthHandler(db, redisPinger, log),
	}

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, handlers, limiterStorage)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close database", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
