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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// List devuelve todos los clientes ordenados por nombre.
func (r *ClienteRepo) List(ctx context.Context) ([]*entity.Cliente, error) {
	query := `
		SELECT id_cliente, nombre, direccion, telefono
		FROM clientes ORDER BY nombre`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Direccion, &c.Telefono); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// GetByID obtiene un cliente por ID. (nil, nil) si no existe.
func (r *ClienteRepo) GetByID(ctx context.Context, id int) (*entity.Cliente, error) {
	query := `
		SELECT id_cliente, nombre, direccion, telefono
		FROM clientes WHERE id_cliente = $1`
	var c entity.Cliente
	err := r.q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Nombre, &c.Direccion, &c.Telefono)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// GetByNombre busca un cliente por nombre exacto. (nil, nil) si no existe.
func (r *ClienteRepo) GetByNombre(ctx context.Context, nombre string) (*entity.Cliente, error) {
	query := `
		SELECT id_cliente, nombre, direccion, telefono
		FROM clientes WHERE nombre = $1 LIMIT 1`
	var c entity.Cliente
	err := r.q.QueryRow(ctx, query, nombre).Scan(&c.ID, &c.Nombre, &c.Direccion, &c.Telefono)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente por nombre: %w", err)
	}
	return &c, nil
}

// Create persiste un nuevo cliente y devuelve su ID generado.
func (r *ClienteRepo) Create(ctx context.Context, c *entity.Cliente) (int, error) {
	query := `
		INSERT INTO clientes (nombre, direccion, telefono)
		VALUES ($1, $2, $3) RETURNING id_cliente`
	var id int
	if err := r.q.QueryRow(ctx, query, c.Nombre, c.Direccion, c.Telefono).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert cliente: %w", err)
	}
	return id, nil
}

// Update actualiza un cliente. domain.ErrNotFound si no afecta ninguna fila.
func (r *ClienteRepo) Update(ctx context.Context, c *entity.Cliente) error {
	query := `
		UPDATE clientes SET nombre = $2, direccion = $3, telefono = $4
		WHERE id_cliente = $1`
	tag, err := r.q.Exec(ctx, query, c.ID, c.Nombre, c.Direccion, c.Telefono)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente por ID. Las facturas y movimientos asociados
// quedan con id_cliente en NULL (ON DELETE SET NULL).
func (r *ClienteRepo) Delete(ctx context.Context, id int) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM clientes WHERE id_cliente = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
