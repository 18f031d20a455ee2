package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

const (
	PendienteNoIniciado = "no_iniciado"
	PendienteActivo     = "pendiente"
	PendienteCompletado = "completado"
)

// Pendiente es una tarea con estado no_iniciado → pendiente → completado.
type Pendiente struct {
	ID          int
	Titulo      string
	Descripcion null.String
	Estado      string
	ProyectoID  null.Int
	AsignadoA   null.Int
	FechaLimite null.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
