package dto

import "github.com/aarondl/null/v8"

type SocioDTO struct {
	ID        int         `json:"id"`
	Nombre    string      `json:"nombre"`
	CIF       string      `json:"cif"`
	Direccion null.String `json:"direccion"`
	Telefono  null.String `json:"telefono"`
	Email     null.String `json:"email"`
	Activo    bool        `json:"activo"`
	CreatedAt string      `json:"created_at"`
	UpdatedAt string      `json:"updated_at"`
}

type CreateSocioDTO struct {
	Nombre    string      `json:"nombre" validate:"required,min=2"`
	CIF       string      `json:"cif" validate:"required"`
	Direccion null.String `json:"direccion"`
	Telefono  null.String `json:"telefono"`
	Email     null.String `json:"email" validate:"omitempty"`
}

type UpdateSocioDTO struct {
	Nombre    null.String `json:"nombre"`
	CIF       null.String `json:"cif"`
	Direccion null.String `json:"direccion"`
	Telefono  null.String `json:"telefono"`
	Email     null.String `json:"email"`
	Activo    null.Bool   `json:"activo"`
}

// ShortSocioDTO es la versión reducida para selectores.
type ShortSocioDTO struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}
