package repository

import (
	"context"
	"time"

	"github.com/jcastano/gestion-api/internal/domain/entity"
)

// FacturaFilter filtro tipado para el listado de facturas. Los campos
// opcionales se omiten del WHERE cuando están en cero; así se evita el
// armado de SQL por índice posicional al agregar o quitar filtros.
type FacturaFilter struct {
	Desde   *time.Time // inclusive
	Hasta   *time.Time // inclusive; ya extendido a fin de día al parsear
	Cliente string     // subcadena del nombre, case-insensitive
}

// Empty indica si no hay ningún filtro activo.
func (f FacturaFilter) Empty() bool {
	return f.Desde == nil && f.Hasta == nil && f.Cliente == ""
}

// FacturaRepository define el puerto de persistencia para Factura.
type FacturaRepository interface {
	// List devuelve las facturas que cumplen el filtro, ordenadas por fecha
	// descendente, con el nombre del cliente resuelto.
	List(ctx context.Context, filter FacturaFilter) ([]*entity.FacturaResumen, error)
	// GetByID une la factura con su cliente. (nil, nil) si no existe.
	GetByID(ctx context.Context, id int) (*entity.FacturaDetalle, error)
	// ListLineas carga las líneas (movimientos unidos a productos) de la factura.
	ListLineas(ctx context.Context, facturaID int) ([]entity.LineaFactura, error)
	Create(ctx context.Context, f *entity.Factura) (int, error)
	// Update actualiza id_cliente, fecha y total. domain.ErrNotFound si no
	// afecta ninguna fila.
	Update(ctx context.Context, f *entity.Factura) error
	// Delete elimina la factura. domain.ErrNotFound si no afecta ninguna fila.
	Delete(ctx context.Context, id int) error
}
