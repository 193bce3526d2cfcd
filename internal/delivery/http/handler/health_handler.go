package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/campus-api/internal/usecase/dto"
)

const healthTimeout = 2 * time.Second

// Pinger - зависимость, умеющая проверить своё состояние
type Pinger interface {
	Health(ctx context.Context) error
}

type HealthHandler struct {
	db     Pinger
	redis  Pinger
	logger *zap.Logger
}

// NewHealthHandler - redis может быть nil, если кеш выключен
func NewHealthHandler(db, redis Pinger, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		redis:  redis,
		logger: logger,
	}
}

// Root godoc
// @Summary Проверка ключа API
// @Tags Root
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.MessageResponse
// @Router / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(dto.MessageResponse{Message: "hello world"})
}

// Health godoc
// @Summary Состояние сервиса
// @Tags Root
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), healthTimeout)
	defer cancel()

	resp := dto.HealthResponse{Status: "healthy", Database: "up"}
	status := fiber.StatusOK

	if err := h.db.Health(ctx); err != nil {
		h.logger.Error("Database health check failed", zap.Error(err))
		resp.Status, resp.Database = "unhealthy", "down"
		status = fiber.StatusServiceUnavailable
	}

	if h.redis != nil {
		resp.Redis = "up"
		if err := h.redis.Health(ctx); err != nil {
			// без Redis сервис работает, лимитер и события деградируют
			h.logger.Warn("Redis health check failed", zap.Error(err))
			resp.Redis = "down"
			if status == fiber.StatusOK {
				resp.Status = "degraded"
			}
		}
	}

	return c.Status(status).JSON(resp)
}
