package dto

import "github.com/shopspring/decimal"

// MovimientoFilterRequest query params del listado/exportación de movimientos.
type MovimientoFilterRequest struct {
	StartDate string `query:"start_date"` // YYYY-MM-DD, inclusive
	EndDate   string `query:"end_date"`   // YYYY-MM-DD, inclusive (se extiende a fin de día)
}

// MovimientoResponse fila del listado de movimientos.
type MovimientoResponse struct {
	ID       int             `json:"id_movimiento"`
	Cliente  string          `json:"client"`
	Producto string          `json:"product"`
	Cantidad int             `json:"cantidad"`
	Precio   decimal.Decimal `json:"precio_unitario_facturado"`
	Total    decimal.Decimal `json:"precio_total_linea"`
	Fecha    *string         `json:"fecha"`
}
