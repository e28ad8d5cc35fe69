// Package http contiene los handlers Fiber, el middleware de dispositivo y
// el registro de rutas de la API.
package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jcastano/gestion-api/internal/application/analytics"
	"github.com/jcastano/gestion-api/internal/application/export"
	"github.com/jcastano/gestion-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClienteUC    *usecase.ClienteUseCase
	ProductoUC   *usecase.ProductoUseCase
	FacturaUC    *usecase.FacturaUseCase
	MovimientoUC *usecase.MovimientoUseCase
	DashboardUC  *analytics.DashboardUseCase
	ExportUC     *export.ExportUseCase
	Log          zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Clients
	clients := app.Group("/clients")
	clienteHandler := NewClienteHandler(deps.ClienteUC, deps.Log)
	clients.Get("/", clienteHandler.List)
	clients.Post("/", clienteHandler.Create)
	clients.Get("/:id", clienteHandler.GetByID)
	clients.Put("/:id", clienteHandler.Update)
	clients.Delete("/:id", clienteHandler.Delete)

	// Products
	products := app.Group("/products")
	productoHandler := NewProductoHandler(deps.ProductoUC, deps.Log)
	products.Get("/", productoHandler.List)
	products.Post("/", productoHandler.Create)
	products.Get("/:id", productoHandler.GetByID)
	products.Put("/:id", productoHandler.Update)
	products.Delete("/:id", productoHandler.Delete)

	// Invoices — el detalle cambia de forma según el dispositivo, por eso
	// el grupo lleva el middleware de clasificación de User-Agent.
	invoices := app.Group("/invoices", DeviceMiddleware())
	facturaHandler := NewFacturaHandler(deps.FacturaUC, deps.Log)
	invoices.Get("/", facturaHandler.List)
	invoices.Post("/", facturaHandler.Create)
	invoices.Get("/:id", facturaHandler.GetByID)
	invoices.Put("/:id", facturaHandler.Update)
	invoices.Delete("/:id", facturaHandler.Delete)

	// Movements (solo lectura)
	movements := app.Group("/movements")
	movimientoHandler := NewMovimientoHandler(deps.MovimientoUC, deps.Log)
	movements.Get("/", movimientoHandler.List)

	// Analytics
	analyticsGroup := app.Group("/analytics")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Log)
	analyticsGroup.Get("/dashboard", dashboardHandler.GetStats)

	// Export (descargas PDF / Excel)
	exportGroup := app.Group("/export")
	exportHandler := NewExportHandler(deps.ExportUC, deps.Log)
	exportGroup.Get("/invoices/pdf", exportHandler.ExportFacturasPDF)
	exportGroup.Get("/invoices/excel", exportHandler.ExportFacturasExcel)
	exportGroup.Get("/movements/pdf", exportHandler.ExportMovimientosPDF)
	exportGroup.Get("/movements/excel", exportHandler.ExportMovimientosExcel)
}
