// Package excel renderiza los reportes de exportación como hoja de cálculo
// XLSX usando excelize: cabecera con estilo (negrilla, fondo azul), formato
// de moneda en la columna de montos y fila TOTAL al final.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jcastano/gestion-api/internal/application/export"
)

// Estilo de la cabecera: texto blanco en negrilla sobre fondo azul.
const headerFillColor = "007AFF"

// Formato de moneda de la columna de montos.
const currencyFormat = "$#,##0.00"

var _ export.Renderer = (*ExcelizeRenderer)(nil)

// ExcelizeRenderer implementa export.Renderer con excelize.
type ExcelizeRenderer struct{}

// NewExcelizeRenderer construye el renderer.
func NewExcelizeRenderer() *ExcelizeRenderer { return &ExcelizeRenderer{} }

// RenderFacturas genera el XLSX del reporte de facturas.
// Columnas: ID Factura | Cliente | Productos | Total | Fecha.
func (r *ExcelizeRenderer) RenderFacturas(doc export.FacturasDocument) ([]byte, error) {
	const sheet = "Facturas"
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("excel: nombrar hoja: %w", err)
	}

	headers := []string{"ID Factura", "Cliente", "Productos", "Total", "Fecha"}
	widths := []float64{15, 30, 15, 15, 20}
	if err := writeHeader(f, sheet, headers, widths); err != nil {
		return nil, err
	}

	fila := 2
	for _, fac := range doc.Filas {
		var products any
		if fac.Products != nil {
			products = *fac.Products
		}
		total, _ := fac.Total.Float64()
		values := []any{fac.ID, fac.Cliente, products, total, fac.Fecha.Format("02/01/2006")}
		if err := writeRow(f, sheet, fila, values); err != nil {
			return nil, err
		}
		fila++
	}

	// Formato de moneda en la columna Total (D), solo filas de datos
	if fila > 2 {
		if err := setCurrencyColumn(f, sheet, "D", fila-1); err != nil {
			return nil, err
		}
	}

	// Fila en blanco y fila TOTAL en negrilla; la etiqueta va en la columna
	// anterior a la del monto.
	fila++
	montoTotal, _ := doc.MontoTotal.Float64()
	if err := writeTotalRow(f, sheet, fila, 3, montoTotal); err != nil {
		return nil, err
	}

	return bytes(f)
}

// RenderMovimientos genera el XLSX del reporte de movimientos.
// Columnas: ID Movimiento | Cliente | Producto | Cantidad | Precio Total.
func (r *ExcelizeRenderer) RenderMovimientos(doc export.MovimientosDocument) ([]byte, error) {
	const sheet = "Movimientos"
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("excel: nombrar hoja: %w", err)
	}

	headers := []string{"ID Movimiento", "Cliente", "Producto", "Cantidad", "Precio Total"}
	widths := []float64{15, 30, 30, 12, 15}
	if err := writeHeader(f, sheet, headers, widths); err != nil {
		return nil, err
	}

	fila := 2
	for _, mov := range doc.Filas {
		total, _ := mov.Total.Float64()
		values := []any{mov.ID, mov.Cliente, mov.Producto, mov.Cantidad, total}
		if err := writeRow(f, sheet, fila, values); err != nil {
			return nil, err
		}
		fila++
	}

	// Formato de moneda en la columna Precio Total (E), solo filas de datos
	if fila > 2 {
		if err := setCurrencyColumn(f, sheet, "E", fila-1); err != nil {
			return nil, err
		}
	}

	fila++
	montoTotal, _ := doc.MontoTotal.Float64()
	if err := writeTotalRow(f, sheet, fila, 4, montoTotal); err != nil {
		return nil, err
	}

	return bytes(f)
}

// writeHeader escribe la fila 1 con los títulos, aplica el estilo de
// cabecera y fija los anchos de columna.
func writeHeader(f *excelize.File, sheet string, headers []string, widths []float64) error {
	for i, h := range headers {
		celda, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("excel: celda de cabecera: %w", err)
		}
		if err := f.SetCellValue(sheet, celda, h); err != nil {
			return fmt.Errorf("excel: escribir cabecera: %w", err)
		}
		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("excel: nombre de columna: %w", err)
		}
		if err := f.SetColWidth(sheet, colName, colName, widths[i]); err != nil {
			return fmt.Errorf("excel: ancho de columna: %w", err)
		}
	}

	estilo, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFillColor}},
	})
	if err != nil {
		return fmt.Errorf("excel: estilo de cabecera: %w", err)
	}
	fin, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return fmt.Errorf("excel: rango de cabecera: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", fin, estilo); err != nil {
		return fmt.Errorf("excel: aplicar estilo de cabecera: %w", err)
	}
	return nil
}

// writeRow escribe una fila de datos a partir de la columna A.
func writeRow(f *excelize.File, sheet string, fila int, values []any) error {
	for i, v := range values {
		if v == nil {
			continue
		}
		celda, err := excelize.CoordinatesToCellName(i+1, fila)
		if err != nil {
			return fmt.Errorf("excel: celda de datos: %w", err)
		}
		if err := f.SetCellValue(sheet, celda, v); err != nil {
			return fmt.Errorf("excel: escribir fila: %w", err)
		}
	}
	return nil
}

// writeTotalRow escribe la fila TOTAL en negrilla: la etiqueta en la columna
// labelCol (1-based) y el monto en la siguiente.
func writeTotalRow(f *excelize.File, sheet string, fila, labelCol int, monto float64) error {
	etiqueta, err := excelize.CoordinatesToCellName(labelCol, fila)
	if err != nil {
		return fmt.Errorf("excel: celda TOTAL: %w", err)
	}
	if err := f.SetCellValue(sheet, etiqueta, "TOTAL"); err != nil {
		return fmt.Errorf("excel: escribir TOTAL: %w", err)
	}
	valor, err := excelize.CoordinatesToCellName(labelCol+1, fila)
	if err != nil {
		return fmt.Errorf("excel: celda de monto total: %w", err)
	}
	if err := f.SetCellValue(sheet, valor, monto); err != nil {
		return fmt.Errorf("excel: escribir monto total: %w", err)
	}

	negrilla, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("excel: estilo TOTAL: %w", err)
	}
	inicio, _ := excelize.CoordinatesToCellName(1, fila)
	if err := f.SetCellStyle(sheet, inicio, etiqueta, negrilla); err != nil {
		return fmt.Errorf("excel: aplicar estilo TOTAL: %w", err)
	}

	// El monto combina negrilla y formato de moneda (SetCellStyle reemplaza,
	// no mezcla, así que el estilo va completo).
	formato := currencyFormat
	negrillaMoneda, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: &formato,
	})
	if err != nil {
		return fmt.Errorf("excel: estilo de monto total: %w", err)
	}
	if err := f.SetCellStyle(sheet, valor, valor, negrillaMoneda); err != nil {
		return fmt.Errorf("excel: aplicar estilo de monto total: %w", err)
	}
	return nil
}

// setCurrencyColumn aplica el formato de moneda a la columna de montos en
// las filas de datos (2..ultimaFila).
func setCurrencyColumn(f *excelize.File, sheet, col string, ultimaFila int) error {
	formato := currencyFormat
	estilo, err := f.NewStyle(&excelize.Style{CustomNumFmt: &formato})
	if err != nil {
		return fmt.Errorf("excel: estilo de moneda: %w", err)
	}
	inicio := fmt.Sprintf("%s2", col)
	fin := fmt.Sprintf("%s%d", col, ultimaFila)
	if err := f.SetCellStyle(sheet, inicio, fin, estilo); err != nil {
		return fmt.Errorf("excel: aplicar formato de moneda: %w", err)
	}
	return nil
}

func bytes(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}
