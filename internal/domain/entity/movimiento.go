package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movimiento es una línea de venta: vincula factura, producto y cliente con
// la cantidad y el precio al momento de la venta. PrecioTotalLinea se
// almacena de forma redundante (se espera cantidad × precio, no se impone).
//
// Desde esta API los movimientos son de solo lectura: nacen junto con la
// factura y solo se consultan.
type Movimiento struct {
	ID                      int
	FacturaID               *int // ON DELETE CASCADE con la factura
	ClienteID               *int // ON DELETE SET NULL con el cliente
	ProductoID              *int // ON DELETE CASCADE con el producto
	Cantidad                int
	PrecioUnitarioFacturado decimal.Decimal
	PrecioTotalLinea        decimal.Decimal
}

// MovimientoResumen fila del listado/exportación de movimientos, con los
// nombres de cliente y producto y la fecha de la factura ya resueltos.
type MovimientoResumen struct {
	ID       int
	Cliente  string
	Producto string
	Cantidad int
	Precio   decimal.Decimal
	Total    decimal.Decimal
	Fecha    *time.Time // NULL si la factura ya no existe
}
