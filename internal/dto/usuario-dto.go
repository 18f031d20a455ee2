package dto

import "github.com/aarondl/null/v8"

type UsuarioDTO struct {
	ID        int         `json:"id"`
	Nombre    string      `json:"nombre"`
	Email     string      `json:"email"`
	Rol       ShortRolDTO `json:"rol"`
	Activo    bool        `json:"activo"`
	CreatedAt string      `json:"created_at"`
	UpdatedAt string      `json:"updated_at"`
}

type CreateUsuarioDTO struct {
	Nombre   string `json:"nombre" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	RolID    int    `json:"rol_id" validate:"required,gt=0"`
}

type UpdateUsuarioDTO struct {
	Nombre null.String `json:"nombre"`
	Email  null.String `json:"email" validate:"omitempty"`
	RolID  null.Int    `json:"rol_id"`
	Activo null.Bool   `json:"activo"`
}

type ShortUsuarioDTO struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}
