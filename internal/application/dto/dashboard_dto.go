package dto

import "github.com/shopspring/decimal"

// DashboardResponse respuesta de GET /analytics/dashboard. Foto best-effort:
// cada bloque proviene de una consulta independiente.
type DashboardResponse struct {
	Overview       OverviewDTO              `json:"overview"`
	TopProducts    []TopProductoDTO         `json:"topProducts"`
	TopClients     []TopClienteDTO          `json:"topClients"`
	SalesByMonth   []VentaMensualDTO        `json:"salesByMonth"`
	RecentInvoices []FacturaResumenResponse `json:"recentInvoices"`
}

// OverviewDTO KPIs generales del negocio.
type OverviewDTO struct {
	TotalClients      int             `json:"totalClients"`
	TotalProducts     int             `json:"totalProducts"`
	TotalInvoices     int             `json:"totalInvoices"`
	TotalSales        decimal.Decimal `json:"totalSales"`
	CurrentMonthSales decimal.Decimal `json:"currentMonthSales"`
	LowStockProducts  int             `json:"lowStockProducts"`
}

// TopProductoDTO producto del top 5 por cantidad vendida (0 si no vendió).
type TopProductoDTO struct {
	ID           int             `json:"id_producto"`
	Nombre       string          `json:"nombre"`
	TotalVendido decimal.Decimal `json:"total_vendido"`
}

// TopClienteDTO cliente del top 5 por total facturado (0 si no tiene facturas).
type TopClienteDTO struct {
	ID            int             `json:"id_cliente"`
	Nombre        string          `json:"nombre"`
	TotalFacturas int             `json:"total_facturas"`
	TotalGastado  decimal.Decimal `json:"total_gastado"`
}

// VentaMensualDTO total facturado de un mes calendario.
type VentaMensualDTO struct {
	Mes   string          `json:"mes"`
	Total decimal.Decimal `json:"total"`
}
