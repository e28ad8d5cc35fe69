package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jcastano/gestion-api/internal/domain/entity"
	"github.com/jcastano/gestion-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo consultas de solo lectura sobre movimientos.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// movimientoWhere compila el filtro de fechas sobre la fecha de la factura.
func movimientoWhere(filter repository.MovimientoFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.Desde != nil {
		args = append(args, *filter.Desde)
		conds = append(conds, fmt.Sprintf("f.fecha >= $%d", len(args)))
	}
	if filter.Hasta != nil {
		args = append(args, *filter.Hasta)
		conds = append(conds, fmt.Sprintf("f.fecha <= $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " AND " + strings.Join(conds, " AND "), args
}

// List devuelve los movimientos con cliente, producto y fecha de factura
// resueltos, más recientes primero. La factura se une con LEFT JOIN porque
// id_factura puede quedar huérfano solo en tránsito de un borrado; cliente y
// producto se unen con INNER JOIN igual que el listado original.
func (r *MovimientoRepo) List(ctx context.Context, filter repository.MovimientoFilter) ([]*entity.MovimientoResumen, error) {
	where, args := movimientoWhere(filter)
	query := `
		SELECT m.id_movimiento, c.nombre, p.nombre, m.cantidad,
		       m.precio_unitario_facturado, m.precio_total_linea, f.fecha
		FROM movimientos m
		LEFT JOIN facturas f ON m.id_factura = f.id_factura
		INNER JOIN clientes c ON m.id_cliente = c.id_cliente
		INNER JOIN productos p ON m.id_producto = p.id_producto
		WHERE 1=1` + where + `
		ORDER BY f.fecha DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovimientoResumen
	for rows.Next() {
		var m entity.MovimientoResumen
		if err := rows.Scan(&m.ID, &m.Cliente, &m.Producto, &m.Cantidad, &m.Precio, &m.Total, &m.Fecha); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
