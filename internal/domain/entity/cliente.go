package entity

// Cliente representa un cliente del negocio. Referenciado por facturas y
// movimientos (ON DELETE SET NULL en ambos).
type Cliente struct {
	ID        int
	Nombre    string
	Direccion *string // opcional
	Telefono  *string // opcional
}
