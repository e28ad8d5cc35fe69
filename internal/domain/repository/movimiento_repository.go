package repository

import (
	"context"
	"time"

	"github.com/jcastano/gestion-api/internal/domain/entity"
)

// MovimientoFilter filtro por rango de fechas de la factura asociada.
type MovimientoFilter struct {
	Desde *time.Time // inclusive
	Hasta *time.Time // inclusive; extendido a fin de día al parsear
}

// Empty indica si no hay ningún filtro activo.
func (f MovimientoFilter) Empty() bool {
	return f.Desde == nil && f.Hasta == nil
}

// MovimientoRepository consultas de solo lectura sobre movimientos.
// No hay operaciones de escritura: los movimientos nacen con la factura.
type MovimientoRepository interface {
	// List devuelve movimientos con cliente, producto y fecha de factura
	// resueltos, ordenados por fecha descendente.
	List(ctx context.Context, filter MovimientoFilter) ([]*entity.MovimientoResumen, error)
}
