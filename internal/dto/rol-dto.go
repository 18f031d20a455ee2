package dto

import "github.com/aarondl/null/v8"

type RolDTO struct {
	ID          int         `json:"id"`
	Nombre      string      `json:"nombre"`
	Descripcion null.String `json:"descripcion"`
	Permisos    []int       `json:"permisos"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
}

type CreateRolDTO struct {
	Nombre      string      `json:"nombre" validate:"required,min=2"`
	Descripcion null.String `json:"descripcion"`
}

type UpdateRolDTO struct {
	Nombre      null.String `json:"nombre"`
	Descripcion null.String `json:"descripcion"`
}

// AssignPermisosDTO transporta la selección de la pantalla de roles:
// subgrupo → etiquetas marcadas.
type AssignPermisosDTO struct {
	Seleccion map[string][]string `json:"seleccion" validate:"required"`
}

// AssignPermisosResultDTO devuelve los IDs asignados y las etiquetas que no
// existían en el catálogo.
type AssignPermisosResultDTO struct {
	Permisos     []int    `json:"permisos"`
	SinCatalogar []string `json:"sin_catalogar,omitempty"`
}

type ShortRolDTO struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// PermisoDTO es una entrada del catálogo estático de permisos.
type PermisoDTO struct {
	ID       int    `json:"id"`
	Etiqueta string `json:"etiqueta"`
	Subgrupo string `json:"subgrupo"`
}
