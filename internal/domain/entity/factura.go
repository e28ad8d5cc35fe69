package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Factura representa una factura emitida.
//
// El total NO se deriva de los movimientos: ambos se almacenan por separado
// y pueden divergir. El campo Products es un entero de semántica no
// aclarada en el esquema heredado; se conserva y transporta de forma opaca.
type Factura struct {
	ID        int
	ClienteID *int // NULL si el cliente fue eliminado (ON DELETE SET NULL)
	Products  *int // opaco, se pasa tal cual
	Fecha     time.Time
	Total     decimal.Decimal
}

// FacturaResumen fila del listado de facturas: factura + nombre del cliente.
type FacturaResumen struct {
	ID       int
	Cliente  string
	Fecha    time.Time
	Total    decimal.Decimal
	Products *int
}

// FacturaDetalle factura con los datos del cliente y sus líneas.
type FacturaDetalle struct {
	ID        int
	Cliente   string
	ClienteID int
	Fecha     time.Time
	Total     decimal.Decimal
	Products  *int
	Lineas    []LineaFactura
}

// LineaFactura línea de detalle de una factura (movimiento + producto).
type LineaFactura struct {
	ProductoID int
	Nombre     string
	Cantidad   int
	Precio     decimal.Decimal
	Total      decimal.Decimal
}
