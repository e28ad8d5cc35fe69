package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jcastano/gestion-api/internal/application/dto"
	"github.com/jcastano/gestion-api/internal/application/usecase"
	"github.com/jcastano/gestion-api/internal/domain"
)

// ClienteHandler maneja las peticiones HTTP de clientes.
type ClienteHandler struct {
	uc  *usecase.ClienteUseCase
	log zerolog.Logger
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *usecase.ClienteUseCase, log zerolog.Logger) *ClienteHandler {
	return &ClienteHandler{uc: uc, log: log.With().Str("handler", "clientes").Logger()}
}

// List godoc
// @Summary      Listar clientes
// @Tags         clients
// @Produce      json
// @Success      200  {array}  dto.ClienteResponse
// @Router       /clients [get]
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	clientes, err := h.uc.List(c.Context())
	if err != nil {
		return internalError(c, h.log, err, "Error al obtener los clientes")
	}
	return c.JSON(clientes)
}

// GetByID godoc
// @Summary      Obtener un cliente por ID
// @Tags         clients
// @Produce      json
// @Param        id  path  int  true  "ID del cliente"
// @Success      200  {object}  dto.ClienteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /clients/{id} [get]
func (h *ClienteHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, h.log, "ID de cliente inválido")
	}
	cliente, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, h.log, "Cliente no encontrado")
		}
		return internalError(c, h.log, err, "Error al obtener el cliente")
	}
	return c.JSON(cliente)
}

// Create godoc
// @Summary      Crear cliente
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClienteRequest  true  "Datos del cliente"
// @Success      201  {object}  dto.ClienteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /clients [post]
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, h.log, "Cuerpo de la petición inválido")
	}
	cliente, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, h.log, "El nombre del cliente es obligatorio")
		}
		return internalError(c, h.log, err, "Error al crear el cliente")
	}
	return c.Status(fiber.StatusCreated).JSON(cliente)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del cliente"
// @Param        body  body  dto.UpdateClienteRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /clients/{id} [put]
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, h.log, "ID de cliente inválido")
	}
	var in dto.UpdateClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, h.log, "Cuerpo de la petición inválido")
	}
	if err := h.uc.Update(c.Context(), id, in); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, h.log, "Cliente no encontrado")
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, h.log, "El nombre del cliente es obligatorio")
		}
		return internalError(c, h.log, err, "Error al actualizar el cliente")
	}
	return c.JSON(dto.MessageResponse{Message: "Cliente actualizado correctamente"})
}

// Delete godoc
// @Summary      Eliminar cliente
// @Tags         clients
// @Produce      json
// @Param        id  path  int  true  "ID del cliente"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /clients/{id} [delete]
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, h.log, "ID de cliente inválido")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, h.log, "Cliente no encontrado")
		}
		return internalError(c, h.log, err, "Error al eliminar el cliente")
	}
	return c.JSON(dto.MessageResponse{Message: "Cliente eliminado correctamente"})
}
