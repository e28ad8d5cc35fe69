package entity

import "github.com/shopspring/decimal"

// Producto representa un producto del catálogo.
// Stock >= 0 por convención; la capa de datos no lo impone.
type Producto struct {
	ID             int
	Nombre         string
	PrecioUnitario decimal.Decimal
	Stock          int
}
