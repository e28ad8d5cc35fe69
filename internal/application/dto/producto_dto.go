package dto

import "github.com/shopspring/decimal"

// ProductoResponse producto serializado con los alias de salida del API.
type ProductoResponse struct {
	ID     int             `json:"id"`
	Nombre string          `json:"name"`
	Precio decimal.Decimal `json:"price"`
	Stock  int             `json:"stock"`
}

// CreateProductoRequest cuerpo de POST /products.
type CreateProductoRequest struct {
	Nombre string           `json:"nombre"`
	Precio *decimal.Decimal `json:"precio_unitario"`
	Stock  int              `json:"stock"`
}

// UpdateProductoRequest cuerpo de PUT /products/:id.
type UpdateProductoRequest struct {
	Nombre string           `json:"nombre"`
	Precio *decimal.Decimal `json:"precio_unitario"`
	Stock  int              `json:"stock"`
}
