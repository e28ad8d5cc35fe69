// Package pdf renderiza los reportes tabulares de exportación usando
// Maroto v2.
//
// Layout de la página:
//
//	┌───────────────────────────────────────────────┐
//	│                TÍTULO (centrado)               │
//	│  Filtros aplicados: Desde / Hasta / Cliente    │
//	│  ───────────────────────────────────────────   │
//	│  CABECERA: ID | Cliente | ... | Total | Fecha  │
//	│  ... una fila por registro ...                 │
//	│  ───────────────────────────────────────────   │
//	│          Total de registros / Monto total      │
//	└───────────────────────────────────────────────┘
//
// La paginación corre por cuenta de Maroto: al agotarse el alto de página se
// abre una nueva antes de seguir pintando filas.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jcastano/gestion-api/internal/application/export"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 122, Blue: 255}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Largo máximo de los textos en el PDF (los campos largos se recortan solo
// en esta representación, no en la hoja de cálculo).
const (
	maxClienteFacturas    = 20
	maxClienteMovimientos = 15
	maxProducto           = 20
)

var _ export.Renderer = (*MarotoRenderer)(nil)

// MarotoRenderer implementa export.Renderer con Maroto v2.
type MarotoRenderer struct{}

// NewMarotoRenderer construye el renderer.
func NewMarotoRenderer() *MarotoRenderer { return &MarotoRenderer{} }

// RenderFacturas genera el PDF del reporte de facturas.
func (r *MarotoRenderer) RenderFacturas(doc export.FacturasDocument) ([]byte, error) {
	m := newReport("Reporte de Facturas", doc.Filtros)

	// Cabecera de la tabla
	m.AddRows(headerRow(
		cell{"ID", 1, align.Left},
		cell{"Cliente", 4, align.Left},
		cell{"Productos", 2, align.Center},
		cell{"Total", 3, align.Right},
		cell{"Fecha", 2, align.Right},
	))

	for _, f := range doc.Filas {
		products := "0"
		if f.Products != nil {
			products = fmt.Sprintf("%d", *f.Products)
		}
		m.AddRows(dataRow(
			cell{fmt.Sprintf("%d", f.ID), 1, align.Left},
			cell{truncate(f.Cliente, maxClienteFacturas), 4, align.Left},
			cell{products, 2, align.Center},
			cell{"$" + f.Total.StringFixed(2), 3, align.Right},
			cell{f.Fecha.Format("02/01/2006"), 2, align.Right},
		))
	}

	m.AddRows(summaryRows(
		fmt.Sprintf("Total de facturas: %d", doc.Cantidad),
		"Monto total: $"+doc.MontoTotal.StringFixed(2),
	)...)

	return generate(m)
}

// RenderMovimientos genera el PDF del reporte de movimientos.
func (r *MarotoRenderer) RenderMovimientos(doc export.MovimientosDocument) ([]byte, error) {
	m := newReport("Reporte de Movimientos", doc.Filtros)

	m.AddRows(headerRow(
		cell{"Cliente", 3, align.Left},
		cell{"Producto", 4, align.Left},
		cell{"Cantidad", 2, align.Center},
		cell{"Precio Total", 3, align.Right},
	))

	for _, mov := range doc.Filas {
		m.AddRows(dataRow(
			cell{truncate(mov.Cliente, maxClienteMovimientos), 3, align.Left},
			cell{truncate(mov.Producto, maxProducto), 4, align.Left},
			cell{fmt.Sprintf("%d", mov.Cantidad), 2, align.Center},
			cell{"$" + mov.Total.StringFixed(2), 3, align.Right},
		))
	}

	m.AddRows(summaryRows(
		fmt.Sprintf("Total de movimientos: %d", doc.Cantidad),
		"Monto total: $"+doc.MontoTotal.StringFixed(2),
	)...)

	return generate(m)
}

// ── Construcción del documento ───────────────────────────────────────────────

// newReport crea el documento con el título centrado y, si hay filtros
// activos, el bloque "Filtros aplicados".
func newReport(titulo string, filtros export.FiltrosAplicados) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(titulo, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(12).Add(
		col.New(12).Add(
			text.New(titulo, props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Center,
				Color: colorPrimary, Top: 1,
			}),
		),
	))

	if filtros.Any() {
		componentes := []core.Component{
			text.New("Filtros aplicados:", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1,
			}),
		}
		top := 5.0
		if filtros.Desde != "" {
			componentes = append(componentes, text.New("Desde: "+filtros.Desde,
				props.Text{Size: 8, Color: colorGray, Top: top}))
			top += 4
		}
		if filtros.Hasta != "" {
			componentes = append(componentes, text.New("Hasta: "+filtros.Hasta,
				props.Text{Size: 8, Color: colorGray, Top: top}))
			top += 4
		}
		if filtros.Cliente != "" {
			componentes = append(componentes, text.New("Cliente: "+filtros.Cliente,
				props.Text{Size: 8, Color: colorGray, Top: top}))
			top += 4
		}
		m.AddRows(row.New(top + 2).Add(col.New(12).Add(componentes...)))
	}

	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	return m
}

// cell celda de la tabla: valor, ancho en columnas de grilla y alineación.
type cell struct {
	valor string
	size  int
	align align.Type
}

// headerRow cabecera de tabla en negrilla.
func headerRow(cells ...cell) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		cols = append(cols, col.New(c.size).Add(text.New(c.valor, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: c.align,
			Color: colorPrimary, Top: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

// dataRow fila de datos.
func dataRow(cells ...cell) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		cols = append(cols, col.New(c.size).Add(text.New(c.valor, props.Text{
			Size: 8, Align: c.align, Top: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

// summaryRows bloque final: conteo y monto total alineados a la derecha.
func summaryRows(lineas ...string) []core.Row {
	rows := []core.Row{line.NewRow(3, props.Line{Color: colorGray, Thickness: 0.3})}
	for _, l := range lineas {
		rows = append(rows, row.New(7).Add(
			col.New(12).Add(text.New(l, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			})),
		))
	}
	return rows
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// truncate recorta s a max caracteres (solo para la vista PDF). El corte es
// por runas: los nombres con tildes o eñes no pueden partirse a media
// secuencia UTF-8.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
