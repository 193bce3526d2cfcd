package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/campus-api/internal/config"
	"github.com/campus-api/internal/delivery/http/handler"
	"github.com/campus-api/internal/delivery/http/middleware"
	"github.com/campus-api/internal/pkg/errors"
	"github.com/campus-api/internal/pkg/utils"
)

// Handlers - набор обработчиков, из которых собирается таблица маршрутов
type Handlers struct {
	Outlet   *handler.FoodOutletHandler
	Mess     *handler.MessHandler
	MessMenu *handler.MessMenuHandler
	Bus      *handler.BusHandler
	Health   *handler.HealthHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	handlers Handlers

	// limiterStorage == nil - лимитер хранит счётчики в памяти
	limiterStorage fiber.Storage
}

// NewServer - создание нового HTTP сервера
func NewServer(cfg *config.Config, logger *zap.Logger, handlers Handlers, limiterStorage fiber.Storage) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Campus API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		handlers:       handlers,
		limiterStorage: limiterStorage,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - для тестов через app.Test
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	apiKey := middleware.APIKey(s.config.Auth.APIKeys, s.logger)
	limit := middleware.RateLimit(s.config.RateLimit.Max, s.config.RateLimit.Window, s.limiterStorage, s.logger)

	// запись доступна только с ключом и под лимитом
	admin := func(h fiber.Handler) []fiber.Handler {
		return []fiber.Handler{apiKey, limit, h}
	}

	health := s.handlers.Health
	s.app.Get("/", apiKey, health.Root)
	s.app.Get("/health", health.Health)

	// Food outlets
	outlet := s.handlers.Outlet
	s.app.Get("/food-outlet", outlet.List)
	s.app.Get("/food-outlet/:id", outlet.Get)
	s.app.Post("/food-outlet", admin(outlet.Create)...)
	s.app.Put("/food-outlet/:id", admin(outlet.Update)...)
	s.app.Delete("/food-outlet/:id", admin(outlet.Delete)...)

	s.app.Get("/search/food-outlet", outlet.Search)
	s.app.Post("/search/food-outlet", outlet.SearchBody)

	s.app.Get("/food-outlet_menu_food-item", outlet.ListMenuItems)
	s.app.Get("/food-outlet_menu_food-item/:id", outlet.GetMenuItem)
	s.app.Post("/food-outlet/:id/menu/food-item", admin(outlet.AddMenuItem)...)
	s.app.Put("/food-outlet/:id/menu/food-item/:item_id", admin(outlet.UpdateMenuItem)...)
	s.app.Delete("/food-outlet/:id/menu/food-item/:item_id", admin(outlet.DeleteMenuItem)...)

	// Mess
	mess := s.handlers.Mess
	s.app.Get("/mess", mess.List)
	s.app.Get("/mess/:id", mess.Get)
	s.app.Get("/mess/:id/menu", mess.CurrentMenu)
	s.app.Get("/mess/:id/menu/:day", mess.DayMenu)
	s.app.Post("/mess", admin(mess.Create)...)
	s.app.Put("/mess/:id", admin(mess.Update)...)
	s.app.Put("/mess/:mess_id/menu/:menu_id", admin(mess.SetMenu)...)
	s.app.Delete("/mess/:id", admin(mess.Delete)...)

	s.app.Get("/search/mess", mess.Search)
	s.app.Post("/search/mess", mess.SearchBody)

	// Mess menus
	menu := s.handlers.MessMenu
	s.app.Get("/mess_menu", menu.List)
	s.app.Get("/mess_menu/:id", menu.Get)
	s.app.Post("/mess_menu", admin(menu.Create)...)
	s.app.Put("/mess_menu/:id", admin(menu.Update)...)
	s.app.Delete("/mess_menu/:id", admin(menu.Delete)...)

	s.app.Get("/mess_menu_item", menu.ListItems)
	s.app.Get("/mess_menu_item/:id", menu.GetItem)
	s.app.Post("/mess_menu_item", admin(menu.CreateItem)...)
	s.app.Put("/mess_menu_item/:id", admin(menu.UpdateItem)...)
	s.app.Delete("/mess_menu_item/:id", admin(menu.DeleteItem)...)

	// Bus
	bus := s.handlers.Bus
	s.app.Get("/bus_type", bus.ListTypes)
	s.app.Get("/bus_type/:id", bus.GetType)
	s.app.Post("/bus_type", admin(bus.CreateType)...)
	s.app.Put("/bus_type/:id", admin(bus.UpdateType)...)
	s.app.Delete("/bus_type/:id", admin(bus.DeleteType)...)

	s.app.Get("/bus_stop", bus.ListStops)
	s.app.Get("/bus_stop/:id", bus.GetStop)
	s.app.Post("/bus_stop", admin(bus.CreateStop)...)
	s.app.Put("/bus_stop/:id", admin(bus.UpdateStop)...)
	s.app.Delete("/bus_stop/:id", admin(bus.DeleteStop)...)

	s.app.Get("/bus_route", bus.ListRoutes)
	s.app.Get("/bus_route/:id", bus.GetRoute)
	s.app.Post("/bus_route", admin(bus.CreateRoute)...)
	s.app.Put("/bus_route/:id", admin(bus.UpdateRoute)...)
	s.app.Delete("/bus_route/:id", admin(bus.DeleteRoute)...)

	s.app.Get("/bus_schedule", bus.ListSchedules)
	s.app.Get("/bus_schedule/:id", bus.GetSchedule)
	s.app.Post("/bus_schedule", admin(bus.CreateSchedule)...)
	s.app.Put("/bus_schedule/:id", admin(bus.UpdateSchedule)...)
	s.app.Delete("/bus_schedule/:id", admin(bus.DeleteSchedule)...)
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

// customErrorHandler - ошибки fiber (404 маршрута, 405, слишком большое тело) в том же формате {"detail"}
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if e, ok := err.(*fiber.Error); ok {
			if e.Code >= fiber.StatusInternalServerError {
				logger.Error("HTTP Error",
					zap.String("path", c.Path()),
					zap.Int("status", e.Code),
					zap.Error(err),
				)
			}
			return utils.SendDetail(c, e.Code, e.Message)
		}
		if _, ok := errors.As(err); ok {
			return utils.SendError(c, logger, err)
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.SendDetail(c, fiber.StatusInternalServerError, errors.ErrInternalServer.Message)
	}
}
