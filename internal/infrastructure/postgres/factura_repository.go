package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jcastano/gestion-api/internal/domain"
	"github.com/jcastano/gestion-api/internal/domain/entity"
	"github.com/jcastano/gestion-api/internal/domain/repository"
)

var _ repository.FacturaRepository = (*FacturaRepo)(nil)

// FacturaRepo implementación de FacturaRepository (usable con pool o tx).
type FacturaRepo struct {
	q Querier
}

// NewFacturaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFacturaRepository(q Querier) *FacturaRepo {
	return &FacturaRepo{q: q}
}

// facturaWhere compila el filtro tipado en una cláusula conjuntiva con sus
// argumentos. Los filtros ausentes no aportan condición; el índice de
// parámetro se deriva de len(args), nunca se lleva a mano.
func facturaWhere(filter repository.FacturaFilter) (string, []any) {
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
	if filter.Cliente != "" {
		args = append(args, "%"+filter.Cliente+"%")
		conds = append(conds, fmt.Sprintf("c.nombre ILIKE $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " AND " + strings.Join(conds, " AND "), args
}

// List devuelve las facturas que cumplen el filtro, más recientes primero.
func (r *FacturaRepo) List(ctx context.Context, filter repository.FacturaFilter) ([]*entity.FacturaResumen, error) {
	where, args := facturaWhere(filter)
	query := `
		SELECT f.id_factura, c.nombre, f.fecha, f.total, f.products
		FROM facturas f
		INNER JOIN clientes c ON f.id_cliente = c.id_cliente
		WHERE 1=1` + where + `
		ORDER BY f.fecha DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list facturas: %w", err)
	}
	defer rows.Close()
	var list []*entity.FacturaResumen
	for rows.Next() {
		var f entity.FacturaResumen
		if err := rows.Scan(&f.ID, &f.Cliente, &f.Fecha, &f.Total, &f.Products); err != nil {
			return nil, fmt.Errorf("scan factura: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// GetByID une la factura con su cliente. (nil, nil) si no existe.
func (r *FacturaRepo) GetByID(ctx context.Context, id int) (*entity.FacturaDetalle, error) {
	query := `
		SELECT f.id_factura, c.nombre, c.id_cliente, f.fecha, f.total, f.products
		FROM facturas f
		INNER JOIN clientes c ON f.id_cliente = c.id_cliente
		WHERE f.id_factura = $1`
	var d entity.FacturaDetalle
	err := r.q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Cliente, &d.ClienteID, &d.Fecha, &d.Total, &d.Products,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get factura: %w", err)
	}
	return &d, nil
}

// ListLineas carga las líneas de la factura desde movimientos unidos a productos.
func (r *FacturaRepo) ListLineas(ctx context.Context, facturaID int) ([]entity.LineaFactura, error) {
	query := `
		SELECT m.id_producto, p.nombre, m.cantidad,
		       m.precio_unitario_facturado, m.precio_total_linea
		FROM movimientos m
		INNER JOIN productos p ON m.id_producto = p.id_producto
		WHERE m.id_factura = $1`
	rows, err := r.q.Query(ctx, query, facturaID)
	if err != nil {
		return nil, fmt.Errorf("list lineas de factura: %w", err)
	}
	defer rows.Close()
	var lineas []entity.LineaFactura
	for rows.Next() {
		var l entity.LineaFactura
		if err := rows.Scan(&l.ProductoID, &l.Nombre, &l.Cantidad, &l.Precio, &l.Total); err != nil {
			return nil, fmt.Errorf("scan linea: %w", err)
		}
		lineas = append(lineas, l)
	}
	return lineas, rows.Err()
}

// Create inserta una factura y devuelve el ID generado. El campo products
// viaja tal cual (semántica opaca, no se interpreta aquí).
func (r *FacturaRepo) Create(ctx context.Context, f *entity.Factura) (int, error) {
	query := `
		INSERT INTO facturas (id_cliente, fecha, total, products)
		VALUES ($1, $2, $3, $4) RETURNING id_factura`
	var id int
	err := r.q.QueryRow(ctx, query, f.ClienteID, f.Fecha, f.Total, f.Products).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert factura: %w", err)
	}
	return id, nil
}

// Update actualiza id_cliente, fecha y total de la factura.
func (r *FacturaRepo) Update(ctx context.Context, f *entity.Factura) error {
	query := `
		UPDATE facturas SET id_cliente = $2, fecha = $3, total = $4
		WHERE id_factura = $1`
	tag, err := r.q.Exec(ctx, query, f.ID, f.ClienteID, f.Fecha, f.Total)
	if err != nil {
		return fmt.Errorf("update factura: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la factura; sus movimientos caen en cascada.
func (r *FacturaRepo) Delete(ctx context.Context, id int) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM facturas WHERE id_factura = $1`, id)
	if err != nil {
		return fmt.Errorf("delete factura: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
