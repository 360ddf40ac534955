package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	apperrors "github.com/heritage-archive/content-service/internal/pkg/errors"
	"github.com/heritage-archive/content-service/internal/pkg/validator"
)

// decodeBody разбирает и валидирует JSON-тело; все нарушения возвращаются одной ошибкой 400
func decodeBody(c *fiber.Ctx, dst interface{}) error {
	if verr := validator.DecodeAndValidate(c.Body(), dst); verr != nil {
		return verr.ToAppError()
	}
	return nil
}

// pathKey возвращает декодированный ключ записи из пути.
// Fiber отдаёт параметры в исходном percent-encoded виде; '+' остаётся плюсом.
func pathKey(c *fiber.Ctx) (string, error) {
	raw := c.Params("id")
	key, err := url.PathUnescape(raw)
	if err != nil {
		return "", apperrors.ErrValidation.
			WithMessage("id must be a valid percent-encoded path segment").
			WithDetails(map[string]interface{}{"field": "id", "value": raw})
	}
	return key, nil
}
