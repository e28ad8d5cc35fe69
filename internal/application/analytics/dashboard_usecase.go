// Package analytics contiene el caso de uso del dashboard de estadísticas
// del negocio.
package analytics

import (
	"context"
	"fmt"

	"github.com/jcastano/gestion-api/internal/application/dto"
	"github.com/jcastano/gestion-api/internal/domain/repository"
)

const (
	dashboardTopN        = 5 // productos y clientes en los widgets de top
	dashboardRecientes   = 5 // facturas recientes
	dashboardMesesVentas = 6 // meses del histograma de ventas
)

// DashboardUseCase arma las estadísticas compuestas del dashboard.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). Las
// subconsultas son independientes entre sí; el resultado es una foto
// best-effort sin consistencia transaccional entre bloques.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetStats ejecuta la batería de agregados y arma la respuesta compuesta.
//
// Cuatro grupos en paralelo:
//  1. Resumen (conteos, total de ventas, ventas del mes, stock bajo)
//  2. Tops (productos por cantidad vendida + clientes por total facturado)
//  3. Ventas por mes (últimos 6 meses, ascendente)
//  4. Facturas recientes (últimas 5 por fecha)
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardResponse, error) {
	type resumenResult struct {
		resumen *repository.Resumen
		err     error
	}
	type topsResult struct {
		productos []repository.TopProducto
		clientes  []repository.TopCliente
		err       error
	}
	type ventasResult struct {
		ventas []repository.VentaMensual
		err    error
	}
	type recientesResult struct {
		facturas []repository.FacturaRecienteRow
		err      error
	}

	resumenCh := make(chan resumenResult, 1)
	topsCh := make(chan topsResult, 1)
	ventasCh := make(chan ventasResult, 1)
	recientesCh := make(chan recientesResult, 1)

	go func() {
		r, err := uc.analyticsRepo.GetResumen(ctx)
		resumenCh <- resumenResult{r, err}
	}()
	go func() {
		productos, err := uc.analyticsRepo.GetTopProductos(ctx, dashboardTopN)
		if err != nil {
			topsCh <- topsResult{err: err}
			return
		}
		clientes, err := uc.analyticsRepo.GetTopClientes(ctx, dashboardTopN)
		topsCh <- topsResult{productos: productos, clientes: clientes, err: err}
	}()
	go func() {
		v, err := uc.analyticsRepo.GetVentasPorMes(ctx, dashboardMesesVentas)
		ventasCh <- ventasResult{v, err}
	}()
	go func() {
		f, err := uc.analyticsRepo.GetFacturasRecientes(ctx, dashboardRecientes)
		recientesCh <- recientesResult{f, err}
	}()

	resumen := <-resumenCh
	tops := <-topsCh
	ventas := <-ventasCh
	recientes := <-recientesCh

	if resumen.err != nil {
		return nil, fmt.Errorf("dashboard: resumen: %w", resumen.err)
	}
	if tops.err != nil {
		return nil, fmt.Errorf("dashboard: tops: %w", tops.err)
	}
	if ventas.err != nil {
		return nil, fmt.Errorf("dashboard: ventas por mes: %w", ventas.err)
	}
	if recientes.err != nil {
		return nil, fmt.Errorf("dashboard: facturas recientes: %w", recientes.err)
	}

	resp := &dto.DashboardResponse{
		Overview: dto.OverviewDTO{
			TotalClients:      resumen.resumen.TotalClientes,
			TotalProducts:     resumen.resumen.TotalProductos,
			TotalInvoices:     resumen.resumen.TotalFacturas,
			TotalSales:        resumen.resumen.TotalVentas,
			CurrentMonthSales: resumen.resumen.VentasMesActual,
			LowStockProducts:  resumen.resumen.ProductosStockBajo,
		},
		TopProducts:    make([]dto.TopProductoDTO, 0, len(tops.productos)),
		TopClients:     make([]dto.TopClienteDTO, 0, len(tops.clientes)),
		SalesByMonth:   make([]dto.VentaMensualDTO, 0, len(ventas.ventas)),
		RecentInvoices: make([]dto.FacturaResumenResponse, 0, len(recientes.facturas)),
	}

	for _, p := range tops.productos {
		resp.TopProducts = append(resp.TopProducts, dto.TopProductoDTO{
			ID: p.ID, Nombre: p.Nombre, TotalVendido: p.TotalVendido,
		})
	}
	for _, c := range tops.clientes {
		resp.TopClients = append(resp.TopClients, dto.TopClienteDTO{
			ID: c.ID, Nombre: c.Nombre, TotalFacturas: c.TotalFacturas, TotalGastado: c.TotalGastado,
		})
	}
	for _, v := range ventas.ventas {
		resp.SalesByMonth = append(resp.SalesByMonth, dto.VentaMensualDTO{Mes: v.Mes, Total: v.Total})
	}
	for _, f := range recientes.facturas {
		resp.RecentInvoices = append(resp.RecentInvoices, dto.FacturaResumenResponse{
			ID: f.ID, Cliente: f.Cliente, Fecha: f.Fecha, Total: f.Total, Products: f.Products,
		})
	}

	return resp, nil
}
