package dto

import "github.com/aarondl/null/v8"

type PendienteDTO struct {
	ID          int              `json:"id"`
	Titulo      string           `json:"titulo"`
	Descripcion null.String      `json:"descripcion"`
	Estado      string           `json:"estado"`
	Proyecto    ShortProyectoDTO `json:"proyecto"`
	AsignadoA   null.Int         `json:"asignado_a"`
	FechaLimite null.String      `json:"fecha_limite"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

type CreatePendienteDTO struct {
	Titulo      string      `json:"titulo" validate:"required,min=2"`
	Descripcion null.String `json:"descripcion"`
	Estado      string      `json:"estado" validate:"omitempty,oneof=no_iniciado pendiente completado"`
	ProyectoID  null.Int    `json:"proyecto_id"`
	AsignadoA   null.Int    `json:"asignado_a"`
	FechaLimite null.String `json:"fecha_limite"`
}

type UpdatePendienteDTO struct {
	Titulo      null.String `json:"titulo"`
	Descripcion null.String `json:"descripcion"`
	Estado      null.String `json:"estado" validate:"omitempty,oneof=no_iniciado pendiente completado"`
	ProyectoID  null.Int    `json:"proyecto_id"`
	AsignadoA   null.Int    `json:"asignado_a"`
	FechaLimite null.String `json:"fecha_limite"`
}

type CambiarEstadoPendienteDTO struct {
	Estado string `json:"estado" validate:"required,oneof=no_iniciado pendiente completado"`
}
