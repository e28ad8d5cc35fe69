// Package export implementa la exportación de reportes tabulares de
// facturas y movimientos a PDF y hoja de cálculo.
package export

import (
	"github.com/shopspring/decimal"

	"github.com/jcastano/gestion-api/internal/domain/entity"
)

// FiltrosAplicados filtros activos del reporte, ya formateados para mostrar
// en el bloque "Filtros aplicados" del documento.
type FiltrosAplicados struct {
	Desde   string // YYYY-MM-DD, vacío si no aplica
	Hasta   string
	Cliente string
}

// Any indica si hay al menos un filtro activo.
func (f FiltrosAplicados) Any() bool {
	return f.Desde != "" || f.Hasta != "" || f.Cliente != ""
}

// FacturasDocument datos listos para renderizar el reporte de facturas.
// Cantidad y MontoTotal ya vienen calculados sobre las filas filtradas; el
// renderer solo los pinta en la fila resumen.
type FacturasDocument struct {
	Filtros    FiltrosAplicados
	Filas      []*entity.FacturaResumen
	Cantidad   int
	MontoTotal decimal.Decimal
}

// MovimientosDocument datos listos para renderizar el reporte de movimientos.
type MovimientosDocument struct {
	Filtros    FiltrosAplicados
	Filas      []*entity.MovimientoResumen
	Cantidad   int
	MontoTotal decimal.Decimal
}

// Renderer puerto de renderizado de documentos tabulares. Implementado por
// infrastructure/pdf (Maroto) e infrastructure/excel (excelize).
type Renderer interface {
	RenderFacturas(doc FacturasDocument) ([]byte, error)
	RenderMovimientos(doc MovimientosDocument) ([]byte, error)
}
