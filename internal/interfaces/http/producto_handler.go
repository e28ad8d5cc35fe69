package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jcastano/gestion-api/internal/application/dto"
	"github.com/jcastano/gestion-api/internal/application/usecase"
	"github.com/jcastano/gestion-api/internal/domain"
)

// ProductoHandler maneja las peticiones HTTP del catálogo de productos.
type ProductoHandler struct {
	uc  *usecase.ProductoUseCase
	log zerolog.Logger
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCase, log zerolog.Logger) *ProductoHandler {
	return &ProductoHandler{uc: uc, log: log.With().Str("handler", "productos").Logger()}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Success      200  {array}  dto.ProductoResponse
// @Router       /products [get]
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	productos, err := h.uc.List(c.Context())
	if err != nil {
		return internalError(c, h.log, err, "Error al obtener los productos")
	}
	return c.JSON(productos)
}

// GetByID godoc
// @Summary      Obtener un producto por ID
// @Tags         products
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [get]
func (h *ProductoHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, h.log, "ID de producto inválido")
	}
	producto, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, h.log, "Producto no encontrado")
		}
		return internalError(c, h.log, err, "Error al obtener el producto")
	}
	return c.JSON(producto)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductoRequest  true  "Datos del producto"
// @Success      201  {object}  dto.ProductoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /products [post]
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, h.log, "Cuerpo de la petición inválido")
	}
	producto, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, h.log, "Nombre y precio unitario son obligatorios")
		}
		return internalError(c, h.log, err, "Error al crear el producto")
	}
	return c.Status(fiber.StatusCreated).JSON(producto)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdateProductoRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [put]
func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, h.log, "ID de producto inválido")
	}
	var in dto.UpdateProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, h.log, "Cuerpo de la petición inválido")
	}
	if err := h.uc.Update(c.Context(), id, in); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, h.log, "Producto no encontrado")
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, h.log, "Nombre y precio unitario son obligatorios")
		}
		return internalError(c, h.log, err, "Error al actualizar el producto")
	}
	return c.JSON(dto.MessageResponse{Message: "Producto actualizado correctamente"})
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [delete]
func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, h.log, "ID de producto inválido")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, h.log, "Producto no encontrado")
		}
		return internalError(c, h.log, err, "Error al eliminar el producto")
	}
	return c.JSON(dto.MessageResponse{Message: "Producto eliminado correctamente"})
}
