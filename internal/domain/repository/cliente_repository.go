package repository

import (
	"context"

	"github.com/jcastano/gestion-api/internal/domain/entity"
)

// ClienteRepository define el puerto de persistencia para Cliente.
type ClienteRepository interface {
	List(ctx context.Context) ([]*entity.Cliente, error)
	GetByID(ctx context.Context, id int) (*entity.Cliente, error)
	// GetByNombre busca por nombre exacto (lo usa la creación de facturas).
	// Devuelve (nil, nil) si no existe.
	GetByNombre(ctx context.Context, nombre string) (*entity.Cliente, error)
	Create(ctx context.Context, c *entity.Cliente) (int, error)
	Update(ctx context.Context, c *entity.Cliente) error
	Delete(ctx context.Context, id int) error
}
