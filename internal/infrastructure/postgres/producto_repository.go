package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastano/gestion-api/internal/domain"
	"github.com/jcastano/gestion-api/internal/domain/entity"
	"github.com/jcastano/gestion-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación de ProductoRepository (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// List devuelve el catálogo completo ordenado por nombre.
func (r *ProductoRepo) List(ctx context.Context) ([]*entity.Producto, error) {
	query := `
		SELECT id_producto, nombre, precio_unitario, stock
		FROM productos ORDER BY nombre`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Nombre, &p.PrecioUnitario, &p.Stock); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (r *ProductoRepo) GetByID(ctx context.Context, id int) (*entity.Producto, error) {
	query := `
		SELECT id_producto, nombre, precio_unitario, stock
		FROM productos WHERE id_producto = $1`
	var p entity.Producto
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Nombre, &p.PrecioUnitario, &p.Stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// Create persiste un nuevo producto y devuelve su ID generado.
func (r *ProductoRepo) Create(ctx context.Context, p *entity.Producto) (int, error) {
	query := `
		INSERT INTO productos (nombre, precio_unitario, stock)
		VALUES ($1, $2, $3) RETURNING id_producto`
	var id int
	if err := r.q.QueryRow(ctx, query, p.Nombre, p.PrecioUnitario, p.Stock).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert producto: %w", err)
	}
	return id, nil
}

// Update actualiza un producto. domain.ErrNotFound si no afecta ninguna fila.
func (r *ProductoRepo) Update(ctx context.Context, p *entity.Producto) error {
	query := `
		UPDATE productos SET nombre = $2, precio_unitario = $3, stock = $4
		WHERE id_producto = $1`
	tag, err := r.q.Exec(ctx, query, p.ID, p.Nombre, p.PrecioUnitario, p.Stock)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto. Sus movimientos caen en cascada.
func (r *ProductoRepo) Delete(ctx context.Context, id int) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM productos WHERE id_producto = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
