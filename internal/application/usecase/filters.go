package usecase

import (
	"fmt"
	"time"

	"github.com/jcastano/gestion-api/internal/application/dto"
	"github.com/jcastano/gestion-api/internal/domain"
	"github.com/jcastano/gestion-api/internal/domain/repository"
)

// fechaLayout formato de fechas en query params y cuerpos (YYYY-MM-DD).
const fechaLayout = "2006-01-02"

// ParseFacturaFilter convierte los query params en el filtro tipado del
// repositorio. La cota superior se extiende a fin de día para que el rango
// sea inclusivo también en el extremo derecho.
func ParseFacturaFilter(req dto.FacturaFilterRequest) (repository.FacturaFilter, error) {
	var filter repository.FacturaFilter

	if req.StartDate != "" {
		desde, err := time.Parse(fechaLayout, req.StartDate)
		if err != nil {
			return filter, fmt.Errorf("%w: start_date inválida: %s", domain.ErrInvalidInput, req.StartDate)
		}
		filter.Desde = &desde
	}
	if req.EndDate != "" {
		hasta, err := time.Parse(fechaLayout, req.EndDate)
		if err != nil {
			return filter, fmt.Errorf("%w: end_date inválida: %s", domain.ErrInvalidInput, req.EndDate)
		}
		finDeDia := endOfDay(hasta)
		filter.Hasta = &finDeDia
	}
	filter.Cliente = req.Client

	return filter, nil
}

// ParseMovimientoFilter convierte los query params del listado de movimientos.
func ParseMovimientoFilter(req dto.MovimientoFilterRequest) (repository.MovimientoFilter, error) {
	var filter repository.MovimientoFilter

	if req.StartDate != "" {
		desde, err := time.Parse(fechaLayout, req.StartDate)
		if err != nil {
			return filter, fmt.Errorf("%w: start_date inválida: %s", domain.ErrInvalidInput, req.StartDate)
		}
		filter.Desde = &desde
	}
	if req.EndDate != "" {
		hasta, err := time.Parse(fechaLayout, req.EndDate)
		if err != nil {
			return filter, fmt.Errorf("%w: end_date inválida: %s", domain.ErrInvalidInput, req.EndDate)
		}
		finDeDia := endOfDay(hasta)
		filter.Hasta = &finDeDia
	}

	return filter, nil
}

// endOfDay lleva la fecha a las 23:59:59 del mismo día.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
