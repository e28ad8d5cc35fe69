package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Tests internos de las ventanas temporales del dashboard. Los límites se
// calculan en Go y viajan como parámetros time.Time, así que las reglas de
// inclusión/exclusión se verifican aquí sin base de datos.

func TestMesActual_RangoDelMesEnCurso(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	inicio, fin := mesActual(now)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), inicio)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), fin)
}

// Una factura del mes pasado queda fuera del rango [inicio, fin) del mes en
// curso (no cuenta para ventas_mes) aunque sí entra en el total general, que
// no filtra por fecha.
func TestMesActual_ExcluyeMesAnterior(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	inicio, fin := mesActual(now)

	mesPasado := time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)
	assert.True(t, mesPasado.Before(inicio), "factura de febrero no entra en la ventana de marzo")

	esteMes := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, esteMes.Before(inicio))
	assert.True(t, esteMes.Before(fin), "el primer día del mes sí entra")

	ultimoDia := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	assert.True(t, ultimoDia.Before(fin), "el último día del mes sí entra")

	mesSiguiente := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, mesSiguiente.Before(fin), "abril queda fuera: el extremo derecho es exclusivo")
}

// Cruce de año: en enero el mes anterior es diciembre del año pasado.
func TestMesActual_CruceDeAno(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	inicio, _ := mesActual(now)

	diciembre := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	assert.True(t, diciembre.Before(inicio))
}

func TestInicioVentanaMeses_CubreMesesCompletos(t *testing.T) {
	now := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)

	// 6 meses incluido el actual: enero..junio de 2024.
	inicio := inicioVentanaMeses(now, 6)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), inicio)

	// Un solo mes: solo el mes en curso.
	inicio = inicioVentanaMeses(now, 1)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), inicio)
}

func TestInicioVentanaMeses_CruceDeAno(t *testing.T) {
	now := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	inicio := inicioVentanaMeses(now, 6)
	assert.Equal(t, time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC), inicio,
		"6 meses desde febrero retrocede hasta septiembre del año anterior")
}
