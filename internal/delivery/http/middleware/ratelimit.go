package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"go.uber.org/zap"

	"github.com/campus-api/internal/pkg/errors"
	"github.com/campus-api/internal/pkg/utils"
)

// RateLimit ограничивает запросы с одного IP.
// storage == nil - счётчики в памяти процесса.
func RateLimit(max int, window time.Duration, storage fiber.Storage, logger *zap.Logger) fiber.Handler {
	cfg := limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return "ip:" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			logger.Warn("Rate limit reached",
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			return utils.SendError(c, logger, errors.ErrTooManyRequests)
		},
	}
	if storage != nil {
		cfg.Storage = storage
	}
	return limiter.New(cfg)
}
