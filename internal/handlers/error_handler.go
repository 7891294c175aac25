package handlers

import (
	"errors"

	"productos/internal/dto"
	"productos/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders errors returned from handlers as an ErrorResponse.
// *fiber.Error keeps its status code; everything else becomes a 500.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.NewErrorResponse(fe.Message))
		}

		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("unhandled error")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewErrorResponse(
			"Error interno del servidor",
		))
	}
}
