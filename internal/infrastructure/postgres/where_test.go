package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastano/gestion-api/internal/domain/repository"
)

// Tests internos del armado de WHERE: los índices de parámetro se derivan de
// len(args), así que agregar o quitar filtros no puede desalinearlos.

func timePtr(t time.Time) *time.Time { return &t }

func TestFacturaWhere_SinFiltros(t *testing.T) {
	where, args := facturaWhere(repository.FacturaFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestFacturaWhere_TodosLosFiltros(t *testing.T) {
	desde := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	hasta := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)

	where, args := facturaWhere(repository.FacturaFilter{
		Desde:   timePtr(desde),
		Hasta:   timePtr(hasta),
		Cliente: "Acme",
	})

	assert.Equal(t, " AND f.fecha >= $1 AND f.fecha <= $2 AND c.nombre ILIKE $3", where)
	require.Len(t, args, 3)
	assert.Equal(t, desde, args[0])
	assert.Equal(t, hasta, args[1])
	assert.Equal(t, "%Acme%", args[2], "el patrón ILIKE envuelve la subcadena en %")
}

// Con solo el filtro de cliente, el índice debe ser $1, no $3.
func TestFacturaWhere_SoloCliente_IndiceCorrecto(t *testing.T) {
	where, args := facturaWhere(repository.FacturaFilter{Cliente: "Bodega"})

	assert.Equal(t, " AND c.nombre ILIKE $1", where)
	require.Len(t, args, 1)
	assert.Equal(t, "%Bodega%", args[0])
}

func TestFacturaWhere_SoloHasta(t *testing.T) {
	hasta := time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)
	where, args := facturaWhere(repository.FacturaFilter{Hasta: timePtr(hasta)})

	assert.Equal(t, " AND f.fecha <= $1", where)
	assert.Len(t, args, 1)
}

func TestMovimientoWhere_RangoCompleto(t *testing.T) {
	desde := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	hasta := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)

	where, args := movimientoWhere(repository.MovimientoFilter{
		Desde: timePtr(desde),
		Hasta: timePtr(hasta),
	})

	assert.Equal(t, " AND f.fecha >= $1 AND f.fecha <= $2", where)
	assert.Len(t, args, 2)
}

func TestMovimientoWhere_Vacio(t *testing.T) {
	where, args := movimientoWhere(repository.MovimientoFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}
