package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// Resumen totales generales del dashboard.
type Resumen struct {
	TotalClientes      int
	TotalProductos     int
	TotalFacturas      int
	TotalVentas        decimal.Decimal
	VentasMesActual    decimal.Decimal
	ProductosStockBajo int
}

// TopProducto producto con su cantidad total vendida (0 si no tiene movimientos).
type TopProducto struct {
	ID           int
	Nombre       string
	TotalVendido decimal.Decimal
}

// TopCliente cliente con el número de facturas y el total gastado (0 si no tiene).
type TopCliente struct {
	ID            int
	Nombre        string
	TotalFacturas int
	TotalGastado  decimal.Decimal
}

// VentaMensual total facturado en un mes calendario (formato YYYY-MM).
type VentaMensual struct {
	Mes   string
	Total decimal.Decimal
}

// AnalyticsRepository consultas agregadas de solo lectura para el dashboard.
// Cada consulta es independiente; el dashboard es una foto best-effort sin
// consistencia transaccional entre subconsultas.
type AnalyticsRepository interface {
	GetResumen(ctx context.Context) (*Resumen, error)
	GetTopProductos(ctx context.Context, limit int) ([]TopProducto, error)
	GetTopClientes(ctx context.Context, limit int) ([]TopCliente, error)
	// GetVentasPorMes agrupa por mes calendario los últimos `meses` meses,
	// en orden ascendente.
	GetVentasPorMes(ctx context.Context, meses int) ([]VentaMensual, error)
	GetFacturasRecientes(ctx context.Context, limit int) ([]FacturaRecienteRow, error)
}

// FacturaRecienteRow factura reciente con el nombre del cliente resuelto.
type FacturaRecienteRow struct {
	ID       int
	Cliente  string
	Total    decimal.Decimal
	Fecha    string // YYYY-MM-DD
	Products *int
}
