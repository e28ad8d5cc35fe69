package export

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jcastano/gestion-api/internal/application/dto"
	"github.com/jcastano/gestion-api/internal/application/usecase"
	"github.com/jcastano/gestion-api/internal/domain"
	"github.com/jcastano/gestion-api/internal/domain/repository"
)

// Format formato de salida del reporte.
type Format string

const (
	FormatPDF   Format = "pdf"
	FormatExcel Format = "excel"
)

// Tipos MIME de los documentos generados.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// File documento generado, listo para enviar como adjunto.
type File struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportUseCase reejecuta la consulta filtrada (misma semántica que los
// listados), calcula el conteo y la suma de montos, y delega el dibujo en el
// renderer del formato pedido. El documento se envía directo como cuerpo de
// la respuesta; no hay limpieza parcial que hacer ante un fallo.
type ExportUseCase struct {
	facturas    repository.FacturaRepository
	movimientos repository.MovimientoRepository
	pdf         Renderer
	excel       Renderer
}

// NewExportUseCase construye el caso de uso con ambos renderers.
func NewExportUseCase(
	facturas repository.FacturaRepository,
	movimientos repository.MovimientoRepository,
	pdf Renderer,
	excel Renderer,
) *ExportUseCase {
	return &ExportUseCase{facturas: facturas, movimientos: movimientos, pdf: pdf, excel: excel}
}

// ExportFacturas genera el reporte de facturas en el formato indicado.
func (uc *ExportUseCase) ExportFacturas(ctx context.Context, req dto.FacturaFilterRequest, format Format) (*File, error) {
	filter, err := usecase.ParseFacturaFilter(req)
	if err != nil {
		return nil, err
	}
	filas, err := uc.facturas.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("export facturas: %w", err)
	}

	total := decimal.Zero
	for _, f := range filas {
		total = total.Add(f.Total)
	}

	doc := FacturasDocument{
		Filtros: FiltrosAplicados{
			Desde:   req.StartDate,
			Hasta:   req.EndDate,
			Cliente: req.Client,
		},
		Filas:      filas,
		Cantidad:   len(filas),
		MontoTotal: total,
	}

	switch format {
	case FormatPDF:
		content, err := uc.pdf.RenderFacturas(doc)
		if err != nil {
			return nil, fmt.Errorf("render facturas PDF: %w", err)
		}
		return &File{Content: content, ContentType: ContentTypePDF, Filename: "facturas.pdf"}, nil
	case FormatExcel:
		content, err := uc.excel.RenderFacturas(doc)
		if err != nil {
			return nil, fmt.Errorf("render facturas Excel: %w", err)
		}
		return &File{Content: content, ContentType: ContentTypeXLSX, Filename: "facturas.xlsx"}, nil
	default:
		return nil, fmt.Errorf("%w: formato %q", domain.ErrInvalidInput, format)
	}
}

// ExportMovimientos genera el reporte de movimientos en el formato indicado.
func (uc *ExportUseCase) ExportMovimientos(ctx context.Context, req dto.MovimientoFilterRequest, format Format) (*File, error) {
	filter, err := usecase.ParseMovimientoFilter(req)
	if err != nil {
		return nil, err
	}
	filas, err := uc.movimientos.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("export movimientos: %w", err)
	}

	total := decimal.Zero
	for _, m := range filas {
		total = total.Add(m.Total)
	}

	doc := MovimientosDocument{
		Filtros: FiltrosAplicados{
			Desde: req.StartDate,
			Hasta: req.EndDate,
		},
		Filas:      filas,
		Cantidad:   len(filas),
		MontoTotal: total,
	}

	switch format {
	case FormatPDF:
		content, err := uc.pdf.RenderMovimientos(doc)
		if err != nil {
			return nil, fmt.Errorf("render movimientos PDF: %w", err)
		}
		return &File{Content: content, ContentType: ContentTypePDF, Filename: "movimientos.pdf"}, nil
	case FormatExcel:
		content, err := uc.excel.RenderMovimientos(doc)
		if err != nil {
			return nil, fmt.Errorf("render movimientos Excel: %w", err)
		}
		return &File{Content: content, ContentType: ContentTypeXLSX, Filename: "movimientos.xlsx"}, nil
	default:
		return nil, fmt.Errorf("%w: formato %q", domain.ErrInvalidInput, format)
	}
}
