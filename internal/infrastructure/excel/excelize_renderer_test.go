package excel_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jcastano/gestion-api/internal/application/export"
	"github.com/jcastano/gestion-api/internal/domain/entity"
	"github.com/jcastano/gestion-api/internal/infrastructure/excel"
)

func intPtr(v int) *int { return &v }

func facturasDoc() export.FacturasDocument {
	fecha := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	return export.FacturasDocument{
		Filas: []*entity.FacturaResumen{
			{ID: 1, Cliente: "Acme S.A.", Fecha: fecha, Total: decimal.NewFromFloat(100.25), Products: intPtr(3)},
			{ID: 2, Cliente: "Bodega Central", Fecha: fecha, Total: decimal.NewFromFloat(49.75)},
		},
		Cantidad:   2,
		MontoTotal: decimal.NewFromFloat(150),
	}
}

func TestRenderFacturas_LibroLegible(t *testing.T) {
	r := excel.NewExcelizeRenderer()
	content, err := r.RenderFacturas(facturasDoc())
	require.NoError(t, err)
	require.NotEmpty(t, content)

	// El libro debe poder reabrirse y contener la hoja con los datos.
	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err, "el contenido debe ser un XLSX válido")
	defer f.Close()

	rows, err := f.GetRows("Facturas")
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	assert.Equal(t, []string{"ID Factura", "Cliente", "Productos", "Total", "Fecha"}, rows[0])

	// Fila 2: primera factura
	require.GreaterOrEqual(t, len(rows), 2)
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "Acme S.A.", rows[1][1])

	// La última fila no vacía es el TOTAL
	ultima := rows[len(rows)-1]
	assert.Contains(t, ultima, "TOTAL")
}

func TestRenderMovimientos_LibroLegible(t *testing.T) {
	r := excel.NewExcelizeRenderer()
	content, err := r.RenderMovimientos(export.MovimientosDocument{
		Filas: []*entity.MovimientoResumen{
			{ID: 1, Cliente: "Acme S.A.", Producto: "Tornillo", Cantidad: 10, Total: decimal.NewFromFloat(15)},
		},
		Cantidad:   1,
		MontoTotal: decimal.NewFromFloat(15),
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Movimientos")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"ID Movimiento", "Cliente", "Producto", "Cantidad", "Precio Total"}, rows[0])
}

func TestRenderFacturas_SinFilas(t *testing.T) {
	r := excel.NewExcelizeRenderer()
	content, err := r.RenderFacturas(export.FacturasDocument{MontoTotal: decimal.Zero})
	require.NoError(t, err, "un reporte vacío igual debe generarse")

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Facturas")
	require.NoError(t, err)
	require.NotEmpty(t, rows, "al menos la cabecera debe estar presente")
}
