package usecase

import (
	"context"

	"github.com/jcastano/gestion-api/internal/application/dto"
	"github.com/jcastano/gestion-api/internal/domain"
	"github.com/jcastano/gestion-api/internal/domain/entity"
	"github.com/jcastano/gestion-api/internal/domain/repository"
)

// ClienteUseCase operaciones CRUD sobre clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// List devuelve todos los clientes.
func (uc *ClienteUseCase) List(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		out = append(out, toClienteResponse(c))
	}
	return out, nil
}

// GetByID devuelve un cliente o domain.ErrNotFound.
func (uc *ClienteUseCase) GetByID(ctx context.Context, id int) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	resp := toClienteResponse(c)
	return &resp, nil
}

// Create valida y persiste un cliente nuevo.
func (uc *ClienteUseCase) Create(ctx context.Context, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Cliente{
		Nombre:    in.Nombre,
		Direccion: in.Direccion,
		Telefono:  in.Telefono,
	}
	id, err := uc.repo.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	c.ID = id
	resp := toClienteResponse(c)
	return &resp, nil
}

// Update actualiza un cliente existente.
func (uc *ClienteUseCase) Update(ctx context.Context, id int, in dto.UpdateClienteRequest) error {
	if in.Nombre == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Update(ctx, &entity.Cliente{
		ID:        id,
		Nombre:    in.Nombre,
		Direccion: in.Direccion,
		Telefono:  in.Telefono,
	})
}

// Delete elimina un cliente; sus facturas quedan con cliente en NULL.
func (uc *ClienteUseCase) Delete(ctx context.Context, id int) error {
	return uc.repo.Delete(ctx, id)
}

func toClienteResponse(c *entity.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Direccion: c.Direccion,
		Telefono:  c.Telefono,
	}
}
