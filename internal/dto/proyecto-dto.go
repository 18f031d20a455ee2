package dto

import "github.com/aarondl/null/v8"

type ProyectoDTO struct {
	ID          int           `json:"id"`
	Nombre      string        `json:"nombre"`
	Socio       ShortSocioDTO `json:"socio"`
	Direccion   null.String   `json:"direccion"`
	FechaInicio string        `json:"fecha_inicio"`
	FechaFin    null.String   `json:"fecha_fin"`
	Presupuesto float64       `json:"presupuesto"`
	Estado      string        `json:"estado"`
	CreatedAt   string        `json:"created_at"`
	UpdatedAt   string        `json:"updated_at"`
}

type CreateProyectoDTO struct {
	Nombre      string      `json:"nombre" validate:"required,min=2"`
	SocioID     int         `json:"socio_id" validate:"required,gt=0"`
	Direccion   null.String `json:"direccion"`
	FechaInicio string      `json:"fecha_inicio" validate:"required"`
	FechaFin    null.String `json:"fecha_fin"`
	Presupuesto float64     `json:"presupuesto" validate:"gte=0"`
	Estado      string      `json:"estado" validate:"omitempty,oneof=activo pausado finalizado"`
}

type UpdateProyectoDTO struct {
	Nombre      null.String  `json:"nombre"`
	SocioID     null.Int     `json:"socio_id"`
	Direccion   null.String  `json:"direccion"`
	FechaInicio null.String  `json:"fecha_inicio"`
	FechaFin    null.String  `json:"fecha_fin"`
	Presupuesto null.Float64 `json:"presupuesto"`
	Estado      null.String  `json:"estado" validate:"omitempty"`
}

type ShortProyectoDTO struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}
