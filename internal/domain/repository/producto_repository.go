package repository

import (
	"context"

	"github.com/jcastano/gestion-api/internal/domain/entity"
)

// ProductoRepository define el puerto de persistencia para Producto.
type ProductoRepository interface {
	List(ctx context.Context) ([]*entity.Producto, error)
	GetByID(ctx context.Context, id int) (*entity.Producto, error)
	Create(ctx context.Context, p *entity.Producto) (int, error)
	Update(ctx context.Context, p *entity.Producto) error
	Delete(ctx context.Context, id int) error
}
