package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastano/gestion-api/internal/application/analytics"
	"github.com/jcastano/gestion-api/internal/application/export"
	"github.com/jcastano/gestion-api/internal/application/usecase"
	"github.com/jcastano/gestion-api/internal/domain/entity"
	"github.com/jcastano/gestion-api/internal/domain/repository"
	apphttp "github.com/jcastano/gestion-api/internal/interfaces/http"
)

const (
	uaIPhone = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Mobile/15E148 Safari/604.1"
	uaChrome = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0.0.0 Safari/537.36"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (solo lo que los handlers de facturas tocan)
// ──────────────────────────────────────────────────────────────────────────────

type stubClienteRepo struct{ clientes []*entity.Cliente }

func (s *stubClienteRepo) List(context.Context) ([]*entity.Cliente, error) { return s.clientes, nil }
func (s *stubClienteRepo) GetByID(_ context.Context, id int) (*entity.Cliente, error) {
	for _, c := range s.clientes {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (s *stubClienteRepo) GetByNombre(_ context.Context, nombre string) (*entity.Cliente, error) {
	for _, c := range s.clientes {
		if c.Nombre == nombre {
			return c, nil
		}
	}
	return nil, nil
}
func (s *stubClienteRepo) Create(_ context.Context, c *entity.Cliente) (int, error) { return 1, nil }
func (s *stubClienteRepo) Update(context.Context, *entity.Cliente) error            { return nil }
func (s *stubClienteRepo) Delete(context.Context, int) error                        { return nil }

type stubProductoRepo struct{ productos []*entity.Producto }

func (s *stubProductoRepo) List(context.Context) ([]*entity.Producto, error) {
	return s.productos, nil
}
func (s *stubProductoRepo) GetByID(context.Context, int) (*entity.Producto, error) { return nil, nil }
func (s *stubProductoRepo) Create(context.Context, *entity.Producto) (int, error)  { return 1, nil }
func (s *stubProductoRepo) Update(context.Context, *entity.Producto) error         { return nil }
func (s *stubProductoRepo) Delete(context.Context, int) error                      { return nil }

type stubFacturaRepo struct {
	detalles map[int]*entity.FacturaDetalle
	lineas   map[int][]entity.LineaFactura
}

func (s *stubFacturaRepo) List(context.Context, repository.FacturaFilter) ([]*entity.FacturaResumen, error) {
	return nil, nil
}
func (s *stubFacturaRepo) GetByID(_ context.Context, id int) (*entity.FacturaDetalle, error) {
	return s.detalles[id], nil
}
func (s *stubFacturaRepo) ListLineas(_ context.Context, id int) ([]entity.LineaFactura, error) {
	return s.lineas[id], nil
}
func (s *stubFacturaRepo) Create(context.Context, *entity.Factura) (int, error) { return 100, nil }
func (s *stubFacturaRepo) Update(context.Context, *entity.Factura) error        { return nil }
func (s *stubFacturaRepo) Delete(context.Context, int) error                    { return nil }

type stubMovimientoRepo struct{}

func (stubMovimientoRepo) List(context.Context, repository.MovimientoFilter) ([]*entity.MovimientoResumen, error) {
	return nil, nil
}

type stubTxRunner struct {
	clientes *stubClienteRepo
	facturas *stubFacturaRepo
}

func (s *stubTxRunner) Run(ctx context.Context, fn func(
	clienteRepo repository.ClienteRepository,
	facturaRepo repository.FacturaRepository,
) error) error {
	return fn(s.clientes, s.facturas)
}

// buildTestApp arma la aplicación completa sobre fakes en memoria.
func buildTestApp() *fiber.App {
	clientes := &stubClienteRepo{clientes: []*entity.Cliente{
		{ID: 1, Nombre: "Acme S.A."},
	}}
	productos := &stubProductoRepo{productos: []*entity.Producto{
		{ID: 1, Nombre: "Tornillo", PrecioUnitario: decimal.NewFromFloat(1.50), Stock: 500},
	}}
	facturas := &stubFacturaRepo{
		detalles: map[int]*entity.FacturaDetalle{
			7: {
				ID: 7, Cliente: "Acme S.A.", ClienteID: 1,
				Fecha: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
				Total: decimal.NewFromFloat(15),
			},
		},
		lineas: map[int][]entity.LineaFactura{
			7: {{ProductoID: 1, Nombre: "Tornillo", Cantidad: 10,
				Precio: decimal.NewFromFloat(1.50), Total: decimal.NewFromFloat(15)}},
		},
	}
	tx := &stubTxRunner{clientes: clientes, facturas: facturas}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ClienteUC:    usecase.NewClienteUseCase(clientes),
		ProductoUC:   usecase.NewProductoUseCase(productos),
		FacturaUC:    usecase.NewFacturaUseCase(facturas, clientes, productos, tx),
		MovimientoUC: usecase.NewMovimientoUseCase(stubMovimientoRepo{}),
		DashboardUC:  analytics.NewDashboardUseCase(nil),
		ExportUC:     export.NewExportUseCase(facturas, stubMovimientoRepo{}, nil, nil),
		Log:          zerolog.Nop(),
	})
	return app
}

func doGet(t *testing.T, app *fiber.App, path, userAgent string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Detalle de factura según dispositivo
// ──────────────────────────────────────────────────────────────────────────────

func TestGetFactura_Escritorio_RespuestaAngosta(t *testing.T) {
	app := buildTestApp()
	resp := doGet(t, app, "/invoices/7", uaChrome)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)

	assert.Equal(t, "desktop", body["deviceType"])
	assert.Contains(t, body, "invoice")
	assert.NotContains(t, body, "availableProducts",
		"escritorio no debe llevar los catálogos")
	assert.NotContains(t, body, "availableClients")
}

func TestGetFactura_Movil_IncluyeCatalogos(t *testing.T) {
	app := buildTestApp()
	resp := doGet(t, app, "/invoices/7", uaIPhone)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)

	assert.Equal(t, "mobile", body["deviceType"])
	assert.Contains(t, body, "availableProducts")
	assert.Contains(t, body, "availableClients")

	invoice, ok := body["invoice"].(map[string]any)
	require.True(t, ok)
	lineas, ok := invoice["products"].([]any)
	require.True(t, ok, "en el detalle products debe ser el arreglo de líneas")
	assert.Len(t, lineas, 1)
}

func TestGetFactura_NoExiste_404(t *testing.T) {
	app := buildTestApp()
	resp := doGet(t, app, "/invoices/999", uaChrome)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Factura no encontrada", body["message"])
	assert.NotContains(t, body, "error", "el 404 no lleva detalle de error interno")
}

func TestGetFactura_IDNoNumerico_400(t *testing.T) {
	app := buildTestApp()
	resp := doGet(t, app, "/invoices/abc", uaChrome)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación de facturas
// ──────────────────────────────────────────────────────────────────────────────

func doPost(t *testing.T, app *fiber.App, path, payload string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestCreateFactura_Exitosa_201(t *testing.T) {
	app := buildTestApp()
	resp := doPost(t, app, "/invoices",
		`{"cliente":"Acme S.A.","fecha":"2024-03-10","total":150.50}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Factura creada correctamente", body["message"])

	factura, ok := body["factura"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), factura["id_cliente"])
}

func TestCreateFactura_ClienteDesconocido_404(t *testing.T) {
	app := buildTestApp()
	resp := doPost(t, app, "/invoices",
		`{"cliente":"No Existe","fecha":"2024-03-10","total":150.50}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "No se encontró el cliente con nombre: No Existe", body["message"])
}

func TestCreateFactura_FaltanDatos_400(t *testing.T) {
	app := buildTestApp()
	resp := doPost(t, app, "/invoices", `{"cliente":"Acme S.A."}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Faltan datos obligatorios", body["message"])
}

// Cliente inexistente Y datos faltantes: gana el 404.
func TestCreateFactura_ClienteDesconocidoYDatosFaltantes_404(t *testing.T) {
	app := buildTestApp()
	resp := doPost(t, app, "/invoices", `{"cliente":"No Existe"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
