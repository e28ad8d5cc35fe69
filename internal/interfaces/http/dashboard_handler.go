package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jcastano/gestion-api/internal/application/analytics"
)

// DashboardHandler expone las estadísticas compuestas del negocio.
type DashboardHandler struct {
	uc  *analytics.DashboardUseCase
	log zerolog.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log.With().Str("handler", "dashboard").Logger()}
}

// GetStats godoc
// @Summary      Estadísticas del dashboard
// @Description  Resumen general, top de productos y clientes, ventas por mes
// @Description  y facturas recientes, en una sola respuesta.
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /analytics/dashboard [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.Context())
	if err != nil {
		return internalError(c, h.log, err, "Error al obtener las estadísticas del dashboard")
	}
	return c.JSON(stats)
}
