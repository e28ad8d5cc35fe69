package export_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastano/gestion-api/internal/application/dto"
	"github.com/jcastano/gestion-api/internal/application/export"
	"github.com/jcastano/gestion-api/internal/domain"
	"github.com/jcastano/gestion-api/internal/domain/entity"
	"github.com/jcastano/gestion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeFacturaLister struct {
	filas      []*entity.FacturaResumen
	lastFilter repository.FacturaFilter
}

func (f *fakeFacturaLister) List(_ context.Context, filter repository.FacturaFilter) ([]*entity.FacturaResumen, error) {
	f.lastFilter = filter
	return f.filas, nil
}

func (f *fakeFacturaLister) GetByID(context.Context, int) (*entity.FacturaDetalle, error) {
	return nil, nil
}
func (f *fakeFacturaLister) ListLineas(context.Context, int) ([]entity.LineaFactura, error) {
	return nil, nil
}
func (f *fakeFacturaLister) Create(context.Context, *entity.Factura) (int, error) { return 0, nil }
func (f *fakeFacturaLister) Update(context.Context, *entity.Factura) error        { return nil }
func (f *fakeFacturaLister) Delete(context.Context, int) error                    { return nil }

type fakeMovimientoLister struct {
	filas []*entity.MovimientoResumen
}

func (f *fakeMovimientoLister) List(context.Context, repository.MovimientoFilter) ([]*entity.MovimientoResumen, error) {
	return f.filas, nil
}

// fakeRenderer captura el documento recibido y devuelve un contenido marcado.
type fakeRenderer struct {
	marca          []byte
	facturasDoc    *export.FacturasDocument
	movimientosDoc *export.MovimientosDocument
}

func (f *fakeRenderer) RenderFacturas(doc export.FacturasDocument) ([]byte, error) {
	f.facturasDoc = &doc
	return f.marca, nil
}

func (f *fakeRenderer) RenderMovimientos(doc export.MovimientosDocument) ([]byte, error) {
	f.movimientosDoc = &doc
	return f.marca, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func facturasDePrueba() []*entity.FacturaResumen {
	fecha := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return []*entity.FacturaResumen{
		{ID: 1, Cliente: "Acme S.A.", Fecha: fecha, Total: decimal.NewFromFloat(100.25)},
		{ID: 2, Cliente: "Bodega Central", Fecha: fecha, Total: decimal.NewFromFloat(49.75)},
		{ID: 3, Cliente: "Acme S.A.", Fecha: fecha, Total: decimal.NewFromFloat(250)},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestExportFacturas_ConteoYMontoCoinciden(t *testing.T) {
	pdf := &fakeRenderer{marca: []byte("pdf-bytes")}
	excel := &fakeRenderer{marca: []byte("xlsx-bytes")}
	uc := export.NewExportUseCase(
		&fakeFacturaLister{filas: facturasDePrueba()},
		&fakeMovimientoLister{},
		pdf, excel,
	)

	file, err := uc.ExportFacturas(context.Background(), dto.FacturaFilterRequest{}, export.FormatPDF)
	require.NoError(t, err)

	require.NotNil(t, pdf.facturasDoc)
	assert.Equal(t, 3, pdf.facturasDoc.Cantidad,
		"el conteo del resumen debe ser el número de filas renderizadas")
	assert.True(t, pdf.facturasDoc.MontoTotal.Equal(decimal.NewFromFloat(400)),
		"el monto total debe ser la suma exacta de los totales (decimal, no float)")

	assert.Equal(t, []byte("pdf-bytes"), file.Content)
	assert.Equal(t, export.ContentTypePDF, file.ContentType)
	assert.Equal(t, "facturas.pdf", file.Filename)
}

func TestExportFacturas_FormatoExcel(t *testing.T) {
	pdf := &fakeRenderer{marca: []byte("pdf-bytes")}
	excel := &fakeRenderer{marca: []byte("xlsx-bytes")}
	uc := export.NewExportUseCase(
		&fakeFacturaLister{filas: facturasDePrueba()},
		&fakeMovimientoLister{},
		pdf, excel,
	)

	file, err := uc.ExportFacturas(context.Background(), dto.FacturaFilterRequest{}, export.FormatExcel)
	require.NoError(t, err)

	assert.Nil(t, pdf.facturasDoc, "el formato excel no debe tocar el renderer PDF")
	require.NotNil(t, excel.facturasDoc)
	assert.Equal(t, export.ContentTypeXLSX, file.ContentType)
	assert.Equal(t, "facturas.xlsx", file.Filename)
}

// El export reusa la misma semántica de filtros que el listado, incluida la
// extensión de end_date a fin de día.
func TestExportFacturas_FiltroLlegaAlRepositorio(t *testing.T) {
	repo := &fakeFacturaLister{}
	uc := export.NewExportUseCase(repo, &fakeMovimientoLister{},
		&fakeRenderer{}, &fakeRenderer{})

	_, err := uc.ExportFacturas(context.Background(), dto.FacturaFilterRequest{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
		Client:    "Acme",
	}, export.FormatPDF)
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.Desde)
	require.NotNil(t, repo.lastFilter.Hasta)
	assert.Equal(t, 23, repo.lastFilter.Hasta.Hour(), "end_date debe extenderse a fin de día")
	assert.Equal(t, "Acme", repo.lastFilter.Cliente)
}

func TestExportFacturas_SinFilas_DocumentoVacio(t *testing.T) {
	pdf := &fakeRenderer{marca: []byte("pdf-bytes")}
	uc := export.NewExportUseCase(&fakeFacturaLister{}, &fakeMovimientoLister{},
		pdf, &fakeRenderer{})

	_, err := uc.ExportFacturas(context.Background(), dto.FacturaFilterRequest{}, export.FormatPDF)
	require.NoError(t, err, "sin resultados igual se genera el documento, con cero filas")

	require.NotNil(t, pdf.facturasDoc)
	assert.Equal(t, 0, pdf.facturasDoc.Cantidad)
	assert.True(t, pdf.facturasDoc.MontoTotal.IsZero())
}

func TestExportFacturas_FechaInvalida(t *testing.T) {
	uc := export.NewExportUseCase(&fakeFacturaLister{}, &fakeMovimientoLister{},
		&fakeRenderer{}, &fakeRenderer{})

	_, err := uc.ExportFacturas(context.Background(),
		dto.FacturaFilterRequest{StartDate: "no-es-fecha"}, export.FormatPDF)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestExportFacturas_FormatoDesconocido(t *testing.T) {
	uc := export.NewExportUseCase(&fakeFacturaLister{}, &fakeMovimientoLister{},
		&fakeRenderer{}, &fakeRenderer{})

	_, err := uc.ExportFacturas(context.Background(), dto.FacturaFilterRequest{}, export.Format("csv"))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestExportMovimientos_ConteoYMonto(t *testing.T) {
	excel := &fakeRenderer{marca: []byte("xlsx-bytes")}
	uc := export.NewExportUseCase(&fakeFacturaLister{}, &fakeMovimientoLister{
		filas: []*entity.MovimientoResumen{
			{ID: 1, Cliente: "Acme S.A.", Producto: "Tornillo", Cantidad: 10, Total: decimal.NewFromFloat(15)},
			{ID: 2, Cliente: "Acme S.A.", Producto: "Martillo", Cantidad: 1, Total: decimal.NewFromFloat(25)},
		},
	}, &fakeRenderer{}, excel)

	file, err := uc.ExportMovimientos(context.Background(), dto.MovimientoFilterRequest{}, export.FormatExcel)
	require.NoError(t, err)

	require.NotNil(t, excel.movimientosDoc)
	assert.Equal(t, 2, excel.movimientosDoc.Cantidad)
	assert.True(t, excel.movimientosDoc.MontoTotal.Equal(decimal.NewFromFloat(40)))
	assert.Equal(t, "movimientos.xlsx", file.Filename)
}
