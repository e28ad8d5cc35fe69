package usecase

import (
	"context"

	"github.com/jcastano/gestion-api/internal/application/dto"
	"github.com/jcastano/gestion-api/internal/domain"
	"github.com/jcastano/gestion-api/internal/domain/entity"
	"github.com/jcastano/gestion-api/internal/domain/repository"
)

// ProductoUseCase operaciones CRUD sobre el catálogo de productos.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// List devuelve el catálogo completo.
func (uc *ProductoUseCase) List(ctx context.Context) ([]dto.ProductoResponse, error) {
	productos, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, toProductoResponse(p))
	}
	return out, nil
}

// GetByID devuelve un producto o domain.ErrNotFound.
func (uc *ProductoUseCase) GetByID(ctx context.Context, id int) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProductoResponse(p)
	return &resp, nil
}

// Create valida y persiste un producto nuevo.
func (uc *ProductoUseCase) Create(ctx context.Context, in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" || in.Precio == nil {
		return nil, domain.ErrInvalidInput
	}
	p := &entity.Producto{
		Nombre:         in.Nombre,
		PrecioUnitario: *in.Precio,
		Stock:          in.Stock,
	}
	id, err := uc.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	resp := toProductoResponse(p)
	return &resp, nil
}

// Update actualiza un producto existente.
func (uc *ProductoUseCase) Update(ctx context.Context, id int, in dto.UpdateProductoRequest) error {
	if in.Nombre == "" || in.Precio == nil {
		return domain.ErrInvalidInput
	}
	return uc.repo.Update(ctx, &entity.Producto{
		ID:             id,
		Nombre:         in.Nombre,
		PrecioUnitario: *in.Precio,
		Stock:          in.Stock,
	})
}

// Delete elimina un producto; sus movimientos caen en cascada.
func (uc *ProductoUseCase) Delete(ctx context.Context, id int) error {
	return uc.repo.Delete(ctx, id)
}

func toProductoResponse(p *entity.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:     p.ID,
		Nombre: p.Nombre,
		Precio: p.PrecioUnitario,
		Stock:  p.Stock,
	}
}
