package dto

import "github.com/aarondl/null/v8"

type MaquinariaDTO struct {
	ID        int              `json:"id"`
	Nombre    string           `json:"nombre"`
	Matricula string           `json:"matricula"`
	Tipo      string           `json:"tipo"`
	Proyecto  ShortProyectoDTO `json:"proyecto"`
	CosteHora float64          `json:"coste_hora"`
	CreatedAt string           `json:"created_at"`
	UpdatedAt string           `json:"updated_at"`
}

type CreateMaquinariaDTO struct {
	Nombre     string   `json:"nombre" validate:"required,min=2"`
	Matricula  string   `json:"matricula" validate:"required"`
	Tipo       string   `json:"tipo" validate:"required"`
	ProyectoID null.Int `json:"proyecto_id"`
	CosteHora  float64  `json:"coste_hora" validate:"gte=0"`
}

type UpdateMaquinariaDTO struct {
	Nombre     null.String  `json:"nombre"`
	Matricula  null.String  `json:"matricula"`
	Tipo       null.String  `json:"tipo"`
	ProyectoID null.Int     `json:"proyecto_id"`
	CosteHora  null.Float64 `json:"coste_hora"`
}

type ShortMaquinariaDTO struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}
