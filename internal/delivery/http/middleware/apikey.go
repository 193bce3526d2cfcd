package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/campus-api/internal/pkg/errors"
	"github.com/campus-api/internal/pkg/utils"
)

const APIKeyHeader = "x-api-key"

// APIKey - статический список ключей; без заголовка 400, с чужим ключом 403
func APIKey(keys []string, logger *zap.Logger) fiber.Handler {
	allowed := make([][]byte, 0, len(keys))
	for _, k := range keys {
		if k != "" {
			allowed = append(allowed, []byte(k))
		}
	}

	return func(c *fiber.Ctx) error {
		key := c.Get(APIKeyHeader)
		if key == "" {
			return utils.SendError(c, logger, errors.ErrMissingAPIKey)
		}

		for _, k := range allowed {
			if subtle.ConstantTimeCompare([]byte(key), k) == 1 {
				return c.Next()
			}
		}

		logger.Warn("Rejected API key",
			zap.String("path", c.Path()),
			zap.String("request_id", RequestID(c)),
		)
		return utils.SendError(c, logger, errors.ErrInvalidAPIKey)
	}
}
