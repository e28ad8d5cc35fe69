package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jcastano/gestion-api/internal/application/dto"
	"github.com/jcastano/gestion-api/internal/application/usecase"
	"github.com/jcastano/gestion-api/internal/domain"
	"github.com/jcastano/gestion-api/internal/domain/device"
)

// FacturaHandler maneja las peticiones HTTP de facturas.
type FacturaHandler struct {
	uc  *usecase.FacturaUseCase
	log zerolog.Logger
}

// NewFacturaHandler construye el handler.
func NewFacturaHandler(uc *usecase.FacturaUseCase, log zerolog.Logger) *FacturaHandler {
	return &FacturaHandler{uc: uc, log: log.With().Str("handler", "facturas").Logger()}
}

// List godoc
// @Summary      Listar facturas con filtros opcionales
// @Tags         invoices
// @Produce      json
// @Param        start_date  query  string  false  "Fecha inicial YYYY-MM-DD (inclusive)"
// @Param        end_date    query  string  false  "Fecha final YYYY-MM-DD (inclusive, fin de día)"
// @Param        client      query  string  false  "Subcadena del nombre del cliente"
// @Success      200  {array}   dto.FacturaResumenResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /invoices [get]
func (h *FacturaHandler) List(c *fiber.Ctx) error {
	var req dto.FacturaFilterRequest
	if err := c.QueryParser(&req); err != nil {
		return badRequest(c, h.log, "Parámetros de filtro inválidos")
	}
	facturas, err := h.uc.List(c.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, h.log, "Parámetros de filtro inválidos")
		}
		return internalError(c, h.log, err, "Error al obtener las facturas")
	}
	return c.JSON(facturas)
}

// GetByID godoc
// @Summary      Detalle de una factura (respuesta según dispositivo)
// @Tags         invoices
// @Produce      json
// @Param        id  path  int  true  "ID de la factura"
// @Success      200  {object}  dto.FacturaDetalleDesktopResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /invoices/{id} [get]
//
// Los clientes móviles reciben además availableProducts y availableClients
// (FacturaDetalleMobileResponse) para poder generar facturas en sitio.
func (h *FacturaHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, h.log, "ID de factura inválido")
	}

	if GetDeviceType(c) == device.Mobile {
		resp, err := h.uc.GetDetalleMobile(c.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return notFound(c, h.log, "Factura no encontrada")
			}
			return internalError(c, h.log, err, "Error al obtener la factura")
		}
		return c.JSON(resp)
	}

	resp, err := h.uc.GetDetalleDesktop(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, h.log, "Factura no encontrada")
		}
		return internalError(c, h.log, err, "Error al obtener la factura")
	}
	return c.JSON(resp)
}

// Create godoc
// @Summary      Crear factura (resuelve el cliente por nombre exacto)
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFacturaRequest  true  "Datos de la factura"
// @Success      201  {object}  dto.CreateFacturaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /invoices [post]
func (h *FacturaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFacturaRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, h.log, "Cuerpo de la petición inválido")
	}

	resp, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, h.log,
				fmt.Sprintf("No se encontró el cliente con nombre: %s", in.Cliente))
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, h.log, "Faltan datos obligatorios")
		}
		return internalError(c, h.log, err, "Error al crear la factura")
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Update godoc
// @Summary      Actualizar factura
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la factura"
// @Param        body  body  dto.UpdateFacturaRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /invoices/{id} [put]
func (h *FacturaHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, h.log, "ID de factura inválido")
	}
	var in dto.UpdateFacturaRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, h.log, "Cuerpo de la petición inválido")
	}

	if err := h.uc.Update(c.Context(), id, in); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, h.log, "Factura no encontrada")
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, h.log, "Faltan datos obligatorios")
		}
		return internalError(c, h.log, err, "Error al actualizar la factura")
	}
	return c.JSON(dto.MessageResponse{Message: "Factura actualizada correctamente"})
}

// Delete godoc
// @Summary      Eliminar factura
// @Tags         invoices
// @Produce      json
// @Param        id  path  int  true  "ID de la factura"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /invoices/{id} [delete]
func (h *FacturaHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, h.log, "ID de factura inválido")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, h.log, "Factura no encontrada")
		}
		return internalError(c, h.log, err, "Error al eliminar la factura")
	}
	return c.JSON(dto.MessageResponse{Message: "Factura eliminada correctamente"})
}
