package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jcastano/gestion-api/internal/application/dto"
	"github.com/jcastano/gestion-api/internal/application/usecase"
	"github.com/jcastano/gestion-api/internal/domain"
)

// MovimientoHandler maneja las peticiones HTTP de movimientos (solo lectura).
type MovimientoHandler struct {
	uc  *usecase.MovimientoUseCase
	log zerolog.Logger
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(uc *usecase.MovimientoUseCase, log zerolog.Logger) *MovimientoHandler {
	return &MovimientoHandler{uc: uc, log: log.With().Str("handler", "movimientos").Logger()}
}

// List godoc
// @Summary      Listar movimientos con filtro opcional de fechas
// @Tags         movements
// @Produce      json
// @Param        start_date  query  string  false  "Fecha inicial YYYY-MM-DD (inclusive)"
// @Param        end_date    query  string  false  "Fecha final YYYY-MM-DD (inclusive, fin de día)"
// @Success      200  {array}   dto.MovimientoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /movements [get]
func (h *MovimientoHandler) List(c *fiber.Ctx) error {
	var req dto.MovimientoFilterRequest
	if err := c.QueryParser(&req); err != nil {
		return badRequest(c, h.log, "Parámetros de filtro inválidos")
	}
	movimientos, err := h.uc.List(c.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, h.log, "Parámetros de filtro inválidos")
		}
		return internalError(c, h.log, err, "Error al obtener los movimientos")
	}
	return c.JSON(movimientos)
}
