package dto

import "github.com/aarondl/null/v8"

type MaterialDTO struct {
	ID             int              `json:"id"`
	Nombre         string           `json:"nombre"`
	Categoria      string           `json:"categoria"`
	Unidad         string           `json:"unidad"`
	Cantidad       float64          `json:"cantidad"`
	PrecioUnitario float64          `json:"precio_unitario"`
	Proyecto       ShortProyectoDTO `json:"proyecto"`
	CreatedAt      string           `json:"created_at"`
	UpdatedAt      string           `json:"updated_at"`
}

type CreateMaterialDTO struct {
	Nombre         string   `json:"nombre" validate:"required,min=2"`
	Categoria      string   `json:"categoria" validate:"required"`
	Unidad         string   `json:"unidad" validate:"required"`
	Cantidad       float64  `json:"cantidad" validate:"gte=0"`
	PrecioUnitario float64  `json:"precio_unitario" validate:"gte=0"`
	ProyectoID     null.Int `json:"proyecto_id"`
}

type UpdateMaterialDTO struct {
	Nombre         null.String  `json:"nombre"`
	Categoria      null.String  `json:"categoria"`
	Unidad         null.String  `json:"unidad"`
	Cantidad       null.Float64 `json:"cantidad"`
	PrecioUnitario null.Float64 `json:"precio_unitario"`
	ProyectoID     null.Int     `json:"proyecto_id"`
}
