package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jcastano/gestion-api/internal/application/dto"
	"github.com/jcastano/gestion-api/internal/application/export"
	"github.com/jcastano/gestion-api/internal/domain"
)

// ExportHandler genera los reportes descargables de facturas y movimientos.
type ExportHandler struct {
	uc  *export.ExportUseCase
	log zerolog.Logger
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.ExportUseCase, log zerolog.Logger) *ExportHandler {
	return &ExportHandler{uc: uc, log: log.With().Str("handler", "export").Logger()}
}

// ExportFacturasPDF godoc
// @Summary      Exportar facturas como PDF
// @Tags         export
// @Produce      application/pdf
// @Param        start_date  query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        end_date    query  string  false  "Fecha final YYYY-MM-DD"
// @Param        client      query  string  false  "Subcadena del nombre del cliente"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /export/invoices/pdf [get]
func (h *ExportHandler) ExportFacturasPDF(c *fiber.Ctx) error {
	return h.exportFacturas(c, export.FormatPDF)
}

// ExportFacturasExcel godoc
// @Summary      Exportar facturas como hoja de cálculo XLSX
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        start_date  query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        end_date    query  string  false  "Fecha final YYYY-MM-DD"
// @Param        client      query  string  false  "Subcadena del nombre del cliente"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /export/invoices/excel [get]
func (h *ExportHandler) ExportFacturasExcel(c *fiber.Ctx) error {
	return h.exportFacturas(c, export.FormatExcel)
}

// ExportMovimientosPDF godoc
// @Summary      Exportar movimientos como PDF
// @Tags         export
// @Produce      application/pdf
// @Param        start_date  query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        end_date    query  string  false  "Fecha final YYYY-MM-DD"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /export/movements/pdf [get]
func (h *ExportHandler) ExportMovimientosPDF(c *fiber.Ctx) error {
	return h.exportMovimientos(c, export.FormatPDF)
}

// ExportMovimientosExcel godoc
// @Summary      Exportar movimientos como hoja de cálculo XLSX
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        start_date  query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        end_date    query  string  false  "Fecha final YYYY-MM-DD"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /export/movements/excel [get]
func (h *ExportHandler) ExportMovimientosExcel(c *fiber.Ctx) error {
	return h.exportMovimientos(c, export.FormatExcel)
}

func (h *ExportHandler) exportFacturas(c *fiber.Ctx, format export.Format) error {
	var req dto.FacturaFilterRequest
	if err := c.QueryParser(&req); err != nil {
		return badRequest(c, h.log, "Parámetros de filtro inválidos")
	}
	file, err := h.uc.ExportFacturas(c.Context(), req, format)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, h.log, "Parámetros de filtro inválidos")
		}
		return internalError(c, h.log, err, "Error al exportar las facturas")
	}
	return sendFile(c, file)
}

func (h *ExportHandler) exportMovimientos(c *fiber.Ctx, format export.Format) error {
	var req dto.MovimientoFilterRequest
	if err := c.QueryParser(&req); err != nil {
		return badRequest(c, h.log, "Parámetros de filtro inválidos")
	}
	file, err := h.uc.ExportMovimientos(c.Context(), req, format)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, h.log, "Parámetros de filtro inválidos")
		}
		return internalError(c, h.log, err, "Error al exportar los movimientos")
	}
	return sendFile(c, file)
}

// sendFile envía el documento como adjunto descargable.
func sendFile(c *fiber.Ctx, file *export.File) error {
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+file.Filename)
	return c.Send(file.Content)
}
