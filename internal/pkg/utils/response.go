package utils

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/campus-api/internal/pkg/errors"
)

// ErrorResponse - тело ответа при любой ошибке
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// SendSuccess - 200 с JSON телом
func SendSuccess(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// SendCreated - 201 с JSON телом
func SendCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// SendNoContent - 204 без тела
func SendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// SendDetail - произвольный статус с фиксированным сообщением
func SendDetail(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(ErrorResponse{Detail: detail})
}

// SendError - преобразование ошибки в HTTP ответ; внутренние детали наружу не уходят
func SendError(c *fiber.Ctx, logger *zap.Logger, err error) error {
	if appErr, ok := errors.As(err); ok {
		if appErr.StatusCode >= fiber.StatusInternalServerError && logger != nil {
			logger.Error("Request failed",
				zap.String("path", c.Path()),
				zap.String("code", appErr.Code),
				zap.Error(err),
			)
		}
		return SendDetail(c, appErr.StatusCode, appErr.Message)
	}

	// Unknown error - return 500
	if logger != nil {
		logger.Error("Unhandled error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return SendDetail(c, fiber.StatusInternalServerError, errors.ErrInternalServer.Message)
}
