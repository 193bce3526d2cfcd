package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/campus-api/internal/pkg/errors"
	"github.com/campus-api/internal/pkg/validator"
)

// paramID - положительный целочисленный параметр пути
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.ErrInvalidID
	}
	return id, nil
}

// bindBody разбирает JSON тело и валидирует его
func bindBody(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return errors.ErrInvalidBody
	}
	return validate(req)
}

// bindQuery - то же для query-параметров
func bindQuery(c *fiber.Ctx, req interface{}) error {
	if err := c.QueryParser(req); err != nil {
		return errors.ErrInvalidRequest
	}
	return validate(req)
}

func validate(req interface{}) error {
	if err := validator.Validate(req); err != nil {
		return errors.New(
			"VALIDATION_FAILED",
			errors.KindInvalidRequest,
			validator.Describe(err),
			fiber.StatusBadRequest,
		)
	}
	return nil
}

// orEmpty - пустой список сериализуется как [], а не null
func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
