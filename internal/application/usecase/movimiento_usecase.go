package usecase

import (
	"context"

	"github.com/jcastano/gestion-api/internal/application/dto"
	"github.com/jcastano/gestion-api/internal/domain/repository"
)

// MovimientoUseCase listado de movimientos (solo lectura: los movimientos
// nacen junto con la factura, esta API no los crea ni modifica).
type MovimientoUseCase struct {
	repo repository.MovimientoRepository
}

// NewMovimientoUseCase construye el caso de uso.
func NewMovimientoUseCase(repo repository.MovimientoRepository) *MovimientoUseCase {
	return &MovimientoUseCase{repo: repo}
}

// List devuelve los movimientos filtrados por rango de fechas de factura.
func (uc *MovimientoUseCase) List(ctx context.Context, req dto.MovimientoFilterRequest) ([]dto.MovimientoResponse, error) {
	filter, err := ParseMovimientoFilter(req)
	if err != nil {
		return nil, err
	}
	movimientos, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimientoResponse, 0, len(movimientos))
	for _, m := range movimientos {
		resp := dto.MovimientoResponse{
			ID:       m.ID,
			Cliente:  m.Cliente,
			Producto: m.Producto,
			Cantidad: m.Cantidad,
			Precio:   m.Precio,
			Total:    m.Total,
		}
		if m.Fecha != nil {
			fecha := m.Fecha.Format(fechaLayout)
			resp.Fecha = &fecha
		}
		out = append(out, resp)
	}
	return out, nil
}
