package dto

// ClienteResponse cliente serializado con los alias de salida del API.
type ClienteResponse struct {
	ID        int     `json:"id"`
	Nombre    string  `json:"name"`
	Direccion *string `json:"address"`
	Telefono  *string `json:"phone"`
}

// CreateClienteRequest cuerpo de POST /clients.
type CreateClienteRequest struct {
	Nombre    string  `json:"nombre"`
	Direccion *string `json:"direccion"`
	Telefono  *string `json:"telefono"`
}

// UpdateClienteRequest cuerpo de PUT /clients/:id.
type UpdateClienteRequest struct {
	Nombre    string  `json:"nombre"`
	Direccion *string `json:"direccion"`
	Telefono  *string `json:"telefono"`
}
