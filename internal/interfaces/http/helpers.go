package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jcastano/gestion-api/internal/application/dto"
	"github.com/jcastano/gestion-api/internal/domain"
)

// paramID lee el parámetro :id como entero. domain.ErrInvalidInput si no lo es.
func paramID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}

// Todas las fallas se registran con su contexto antes de responder; el
// cuerpo de error siempre es {message, error?}.

func notFound(c *fiber.Ctx, log zerolog.Logger, msg string) error {
	log.Warn().Str("path", c.Path()).Msg(msg)
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: msg})
}

func badRequest(c *fiber.Ctx, log zerolog.Logger, msg string) error {
	log.Warn().Str("path", c.Path()).Msg(msg)
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: msg})
}

func internalError(c *fiber.Ctx, log zerolog.Logger, err error, msg string) error {
	log.Error().Err(err).Str("path", c.Path()).Msg(msg)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Message: msg,
		Error:   err.Error(),
	})
}
