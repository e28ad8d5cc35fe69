package dto

import "github.com/shopspring/decimal"

// FacturaFilterRequest query params del listado/exportación de facturas.
type FacturaFilterRequest struct {
	StartDate string `query:"start_date"` // YYYY-MM-DD, inclusive
	EndDate   string `query:"end_date"`   // YYYY-MM-DD, inclusive (se extiende a fin de día)
	Client    string `query:"client"`     // subcadena del nombre, case-insensitive
}

// FacturaResumenResponse fila del listado de facturas.
type FacturaResumenResponse struct {
	ID       int             `json:"id"`
	Cliente  string          `json:"cliente"`
	Fecha    string          `json:"fecha"`
	Total    decimal.Decimal `json:"total"`
	Products *int            `json:"products"`
}

// CreateFacturaRequest cuerpo de POST /invoices. El cliente se resuelve por
// nombre exacto; products viaja opaco.
type CreateFacturaRequest struct {
	Cliente  string           `json:"cliente"`
	Fecha    string           `json:"fecha"`
	Total    *decimal.Decimal `json:"total"`
	Products *int             `json:"products"`
}

// FacturaCreadaDTO factura recién creada.
type FacturaCreadaDTO struct {
	IDFactura int             `json:"id_factura"`
	IDCliente int             `json:"id_cliente"`
	Fecha     string          `json:"fecha"`
	Total     decimal.Decimal `json:"total"`
}

// CreateFacturaResponse respuesta 201 de POST /invoices.
type CreateFacturaResponse struct {
	Message string           `json:"message"`
	Factura FacturaCreadaDTO `json:"factura"`
}

// UpdateFacturaRequest cuerpo de PUT /invoices/:id.
type UpdateFacturaRequest struct {
	IDCliente *int             `json:"id_cliente"`
	Fecha     string           `json:"fecha"`
	Total     *decimal.Decimal `json:"total"`
}

// LineaFacturaDTO línea de detalle (movimiento unido a producto).
type LineaFacturaDTO struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Total    decimal.Decimal `json:"total"`
}

// FacturaDetalleDTO detalle de una factura. En el detalle la clave products
// transporta las líneas, no el entero opaco del esquema.
type FacturaDetalleDTO struct {
	ID        int               `json:"id"`
	Cliente   string            `json:"cliente"`
	IDCliente int               `json:"id_cliente"`
	Fecha     string            `json:"fecha"`
	Total     decimal.Decimal   `json:"total"`
	Products  []LineaFacturaDTO `json:"products"`
}

// Respuesta del detalle según dispositivo: dos variantes explícitas en lugar
// de inyección condicional de campos.

// FacturaDetalleDesktopResponse variante escritorio: solo el detalle.
type FacturaDetalleDesktopResponse struct {
	Invoice    FacturaDetalleDTO `json:"invoice"`
	DeviceType string            `json:"deviceType"`
}

// FacturaDetalleMobileResponse variante móvil: incluye además los catálogos
// completos para poder generar facturas desde el dispositivo.
type FacturaDetalleMobileResponse struct {
	Invoice           FacturaDetalleDTO  `json:"invoice"`
	AvailableProducts []ProductoResponse `json:"availableProducts"`
	AvailableClients  []ClienteResponse  `json:"availableClients"`
	DeviceType        string             `json:"deviceType"`
}
