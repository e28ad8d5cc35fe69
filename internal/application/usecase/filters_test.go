package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastano/gestion-api/internal/application/dto"
	"github.com/jcastano/gestion-api/internal/application/usecase"
	"github.com/jcastano/gestion-api/internal/domain"
)

func TestParseFacturaFilter_SinParametros(t *testing.T) {
	filter, err := usecase.ParseFacturaFilter(dto.FacturaFilterRequest{})
	require.NoError(t, err)
	assert.True(t, filter.Empty(), "sin query params el filtro debe quedar vacío")
}

func TestParseFacturaFilter_RangoCompleto(t *testing.T) {
	filter, err := usecase.ParseFacturaFilter(dto.FacturaFilterRequest{
		StartDate: "2024-01-15",
		EndDate:   "2024-02-20",
		Client:    "Acme",
	})
	require.NoError(t, err)

	require.NotNil(t, filter.Desde)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *filter.Desde)

	// La cota superior se extiende a fin de día para que el rango sea
	// inclusivo también a la derecha.
	require.NotNil(t, filter.Hasta)
	assert.Equal(t, time.Date(2024, 2, 20, 23, 59, 59, 0, time.UTC), *filter.Hasta)

	assert.Equal(t, "Acme", filter.Cliente)
}

func TestParseFacturaFilter_FechaInvalida(t *testing.T) {
	_, err := usecase.ParseFacturaFilter(dto.FacturaFilterRequest{StartDate: "15/01/2024"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput),
		"una fecha mal formada debe envolver domain.ErrInvalidInput")

	_, err = usecase.ParseFacturaFilter(dto.FacturaFilterRequest{EndDate: "no-es-fecha"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestParseMovimientoFilter_FinDeDia(t *testing.T) {
	filter, err := usecase.ParseMovimientoFilter(dto.MovimientoFilterRequest{
		EndDate: "2024-06-30",
	})
	require.NoError(t, err)
	require.NotNil(t, filter.Hasta)
	assert.Equal(t, 23, filter.Hasta.Hour())
	assert.Equal(t, 59, filter.Hasta.Minute())
	assert.Equal(t, 59, filter.Hasta.Second())
}

func TestParseMovimientoFilter_FechaInvalida(t *testing.T) {
	_, err := usecase.ParseMovimientoFilter(dto.MovimientoFilterRequest{StartDate: "2024-13-99"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
